package repository

import (
	"context"

	"storefront/internal/domain/entity"
)

// ReviewRepository defines the standard operations for review persistence.
type ReviewRepository interface {
	// FindByProduct retrieves every review of a product.
	FindByProduct(ctx context.Context, productID int64) ([]*entity.Review, error)

	// Create persists a new review and backfills the generated ID.
	Create(ctx context.Context, review *entity.Review) error
}
