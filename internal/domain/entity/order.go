package entity

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatus enumerates the lifecycle of an order. The only transition is
// active -> completed, triggered by an explicit update call.
type OrderStatus string

const (
	OrderStatusActive    OrderStatus = "active"
	OrderStatusCompleted OrderStatus = "completed"
)

// Order is a customer purchase. ReferenceNumber is the human-facing unique
// identifier, distinct from the internal row ID; line items link to it rather
// than to the row ID.
type Order struct {
	ID              int64       `json:"id"`
	UserID          uuid.UUID   `json:"user_id"`
	ReferenceNumber string      `json:"reference_number"`
	Status          OrderStatus `json:"status"`
	LineItems       []*LineItem `json:"line_items,omitempty"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

// LineItem is one (product, quantity) pair attached to an order.
type LineItem struct {
	ReferenceNumber string `json:"reference_number"`
	ProductID       int64  `json:"product_id"`
	Quantity        int    `json:"quantity"`
}
