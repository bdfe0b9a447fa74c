package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// FavoriteUsecase defines the interface for favorites business operations.
type FavoriteUsecase interface {
	// GetFavorites returns the full product records a user has saved.
	GetFavorites(ctx context.Context, userID uuid.UUID) ([]*entity.Product, error)

	AddFavorite(ctx context.Context, userID uuid.UUID, productID int64) error
	RemoveFavorite(ctx context.Context, userID uuid.UUID, productID int64) error
}
