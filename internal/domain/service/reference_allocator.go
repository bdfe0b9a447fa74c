package service

import "context"

// ReferenceAllocator hands out unique, human-readable order reference numbers.
// Uniqueness comes from an atomically incremented counter in the backing
// store; the random letter suffix is decorative and must never be relied on.
type ReferenceAllocator interface {
	// NextReferenceNumber returns the next reference number, e.g. "ORD000042QK".
	// A counter fetch failure propagates; no reference is ever fabricated.
	NextReferenceNumber(ctx context.Context) (string, error)
}
