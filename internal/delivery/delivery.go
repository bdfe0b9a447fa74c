// Package delivery defines the contract every transport adapter fulfills.
package delivery

import "context"

// Delivery is a long-running inbound adapter such as an HTTP server.
// Serve blocks until the adapter stops or fails.
type Delivery interface {
	Serve(ctx context.Context) error
}
