package usecase

import (
	"context"
	"time"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// LineItemInput is one (product, quantity) pair of a new order.
type LineItemInput struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

// CreateOrderInput defines the data required to place an order.
type CreateOrderInput struct {
	UserID uuid.UUID
	Items  []LineItemInput
}

// --- Output DTOs ---

// CreateOrderOutput returns the identifiers of a freshly placed order.
type CreateOrderOutput struct {
	OrderID         int64  `json:"order_id"`
	ReferenceNumber string `json:"reference_number"`
}

// OrderLineView is a line item with its catalog product joined in.
type OrderLineView struct {
	Product  *entity.Product `json:"product"`
	Quantity int             `json:"quantity"`
}

// OrderView is an order assembled for the client: header fields plus line
// items with product details. Assembly uses batched lookups, one query per
// table regardless of how many orders are listed.
type OrderView struct {
	ReferenceNumber string             `json:"reference_number"`
	UserID          uuid.UUID          `json:"user_id"`
	Status          entity.OrderStatus `json:"status"`
	Items           []*OrderLineView   `json:"items"`
	CreatedAt       time.Time          `json:"created_at"`
}

// OrderUsecase defines the interface for order business operations.
type OrderUsecase interface {
	// CreateOrder allocates a reference number, then writes the order row and
	// its line items atomically.
	CreateOrder(ctx context.Context, input *CreateOrderInput) (*CreateOrderOutput, error)

	// GetOrder fetches a single order by its reference number, with line
	// items and product details joined in.
	GetOrder(ctx context.Context, referenceNumber string) (*OrderView, error)

	ListUserOrders(ctx context.Context, userID uuid.UUID) ([]*OrderView, error)
	ListAllOrders(ctx context.Context) ([]*OrderView, error)

	// CompleteOrder transitions an order to completed. Completing an order
	// that is already completed succeeds without effect.
	CompleteOrder(ctx context.Context, referenceNumber string) error
}
