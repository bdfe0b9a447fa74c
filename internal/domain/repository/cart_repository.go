package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCartItemNotFound is returned when a cart update targets a row that does not exist.
var ErrCartItemNotFound = errors.New("cart item not found")

// CartRepository defines the standard operations for cart persistence.
type CartRepository interface {
	// FindByUser retrieves every cart item belonging to a user.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.CartItem, error)

	// Add inserts a cart item.
	Add(ctx context.Context, item *entity.CartItem) error

	// UpdateQuantity changes the quantity of an existing cart item.
	UpdateQuantity(ctx context.Context, userID uuid.UUID, productID int64, quantity int) error

	// Remove deletes one product from a user's cart.
	Remove(ctx context.Context, userID uuid.UUID, productID int64) error
}
