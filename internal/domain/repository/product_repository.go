package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"
)

// ErrProductNotFound is returned when a product lookup matches no row.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines the standard operations for catalog persistence.
type ProductRepository interface {
	// FindVisible retrieves every product with the visibility flag set.
	FindVisible(ctx context.Context) ([]*entity.Product, error)

	// FindByID retrieves a single product by its unique ID.
	FindByID(ctx context.Context, id int64) (*entity.Product, error)

	// FindByIDs retrieves products for a set of IDs in one query.
	// Order-detail assembly depends on this being a single batched statement.
	FindByIDs(ctx context.Context, ids []int64) ([]*entity.Product, error)

	// FindByName retrieves a product by its unique name.
	FindByName(ctx context.Context, name string) (*entity.Product, error)

	// Create persists a new product.
	Create(ctx context.Context, product *entity.Product) error

	// Update modifies an existing product.
	Update(ctx context.Context, product *entity.Product) error

	// Delete removes a product by its ID.
	Delete(ctx context.Context, id int64) error

	// SetFeatured toggles the featured flag on a product.
	SetFeatured(ctx context.Context, id int64, featured bool) error
}
