package repository

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// FavoriteRepository defines the standard operations for favorites persistence.
type FavoriteRepository interface {
	// FindByUser retrieves every favorite belonging to a user.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Favorite, error)

	// Add inserts a favorite.
	Add(ctx context.Context, favorite *entity.Favorite) error

	// Remove deletes one product from a user's favorites.
	Remove(ctx context.Context, userID uuid.UUID, productID int64) error
}
