package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// --- Input DTOs ---

// CreateProductInput defines the data required to add a catalog item.
type CreateProductInput struct {
	Name          string
	Description   string
	Category      string
	Brand         string
	Dimensions    string
	Price         float64
	StockQuantity int
	IsVisible     bool
	IsFeatured    bool
}

// UpdateProductInput defines the data for a full product update.
type UpdateProductInput struct {
	ID            int64
	Name          string
	Description   string
	Category      string
	Brand         string
	Dimensions    string
	Price         float64
	StockQuantity int
	IsVisible     bool
}

// CatalogUsecase defines the interface for catalog-related business operations.
type CatalogUsecase interface {
	// ListVisibleProducts returns the public catalog: visible products only.
	ListVisibleProducts(ctx context.Context) ([]*entity.Product, error)

	GetProduct(ctx context.Context, id int64) (*entity.Product, error)
	CreateProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error)
	UpdateProduct(ctx context.Context, input *UpdateProductInput) (*entity.Product, error)
	DeleteProduct(ctx context.Context, id int64) error
	SetProductFeatured(ctx context.Context, id int64, featured bool) error
}
