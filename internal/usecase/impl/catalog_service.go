package impl

import (
	"context"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// CatalogServiceParams holds dependencies for catalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	ProductRepo repository.ProductRepository
	Logger      *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		productRepo: params.ProductRepo,
		logger:      params.Logger,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListVisibleProducts returns the public catalog.
func (srv *catalogService) ListVisibleProducts(ctx context.Context) ([]*entity.Product, error) {
	products, err := srv.productRepo.FindVisible(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list visible products")
	}

	return products, nil
}

// GetProduct retrieves a single product by ID.
func (srv *catalogService) GetProduct(ctx context.Context, id int64) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProductNotFound, "product lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find product by ID")
	}

	return product, nil
}

// CreateProduct adds a catalog item. The unique name constraint backs the
// duplicate check; the repository surfaces the collision as a domain error.
func (srv *catalogService) CreateProduct(ctx context.Context, input *usecase.CreateProductInput) (*entity.Product, error) {
	if input.Name == "" || input.Price < 0 {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "product name and non-negative price are required")
	}

	product := &entity.Product{
		Name:          input.Name,
		Description:   input.Description,
		Category:      input.Category,
		Brand:         input.Brand,
		Dimensions:    input.Dimensions,
		Price:         input.Price,
		StockQuantity: input.StockQuantity,
		IsVisible:     input.IsVisible,
		IsFeatured:    input.IsFeatured,
	}

	if err := srv.productRepo.Create(ctx, product); err != nil {
		srv.log(ctx).Warn("Failed to create product", slog.String("name", input.Name), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create product")
	}

	srv.log(ctx).Info("Product created", slog.Int64("productID", product.ID), slog.String("name", product.Name))

	return product, nil
}

// UpdateProduct applies a full update to an existing product.
func (srv *catalogService) UpdateProduct(ctx context.Context, input *usecase.UpdateProductInput) (*entity.Product, error) {
	if input.Name == "" || input.Price < 0 {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "product name and non-negative price are required")
	}

	product := &entity.Product{
		ID:            input.ID,
		Name:          input.Name,
		Description:   input.Description,
		Category:      input.Category,
		Brand:         input.Brand,
		Dimensions:    input.Dimensions,
		Price:         input.Price,
		StockQuantity: input.StockQuantity,
		IsVisible:     input.IsVisible,
	}

	if err := srv.productRepo.Update(ctx, product); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProductNotFound, "product update failed")
		}

		return nil, errors.Wrap(err, "failed to update product")
	}

	return srv.GetProduct(ctx, input.ID)
}

// DeleteProduct removes a product from the catalog.
func (srv *catalogService) DeleteProduct(ctx context.Context, id int64) error {
	if err := srv.productRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return errors.Wrap(domainerrors.ErrProductNotFound, "product delete failed")
		}

		return errors.Wrap(err, "failed to delete product")
	}

	srv.log(ctx).Info("Product deleted", slog.Int64("productID", id))

	return nil
}

// SetProductFeatured toggles the featured flag on a product.
func (srv *catalogService) SetProductFeatured(ctx context.Context, id int64, featured bool) error {
	if err := srv.productRepo.SetFeatured(ctx, id, featured); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return errors.Wrap(domainerrors.ErrProductNotFound, "product feature toggle failed")
		}

		return errors.Wrap(err, "failed to set product featured flag")
	}

	return nil
}
