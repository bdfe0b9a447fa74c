package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// CartEntry pairs a cart row with its catalog product, assembled with one
// batched product lookup per request.
type CartEntry struct {
	Product  *entity.Product `json:"product"`
	Quantity int             `json:"quantity"`
}

// CartUsecase defines the interface for shopping-cart business operations.
type CartUsecase interface {
	GetCart(ctx context.Context, userID uuid.UUID) ([]*CartEntry, error)
	AddToCart(ctx context.Context, userID uuid.UUID, productID int64, quantity int) error
	UpdateCartQuantity(ctx context.Context, userID uuid.UUID, productID int64, quantity int) error
	RemoveFromCart(ctx context.Context, userID uuid.UUID, productID int64) error
}
