package impl

import (
	"context"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// cartService implements the CartUsecase interface.
type cartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// CartServiceParams holds dependencies for cartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	CartRepo    repository.CartRepository
	ProductRepo repository.ProductRepository
	Logger      *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	return &cartService{
		cartRepo:    params.CartRepo,
		productRepo: params.ProductRepo,
		logger:      params.Logger,
	}
}

func (srv *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetCart returns the user's cart with product details joined in. One batched
// product lookup serves the whole cart.
func (srv *cartService) GetCart(ctx context.Context, userID uuid.UUID) ([]*usecase.CartEntry, error) {
	items, err := srv.cartRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cart")
	}

	productIDs := make([]int64, 0, len(items))
	for _, item := range items {
		productIDs = append(productIDs, item.ProductID)
	}

	products, err := srv.productRepo.FindByIDs(ctx, productIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cart products")
	}

	productsByID := make(map[int64]*entity.Product, len(products))
	for _, product := range products {
		productsByID[product.ID] = product
	}

	entries := make([]*usecase.CartEntry, 0, len(items))
	for _, item := range items {
		product, ok := productsByID[item.ProductID]
		if !ok {
			// Product was removed from the catalog after it entered the cart.
			srv.log(ctx).Warn("Cart references missing product", slog.Any("userID", userID), slog.Int64("productID", item.ProductID))

			continue
		}

		entries = append(entries, &usecase.CartEntry{
			Product:  product,
			Quantity: item.Quantity,
		})
	}

	return entries, nil
}

// AddToCart places a product in the user's cart.
func (srv *cartService) AddToCart(ctx context.Context, userID uuid.UUID, productID int64, quantity int) error {
	if quantity <= 0 {
		return errors.Wrap(domainerrors.ErrValidationFailed, "quantity must be positive")
	}

	if _, err := srv.productRepo.FindByID(ctx, productID); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return errors.Wrap(domainerrors.ErrProductNotFound, "cannot add missing product to cart")
		}

		return errors.Wrap(err, "failed to verify product before adding to cart")
	}

	item := &entity.CartItem{
		UserID:    userID,
		ProductID: productID,
		Quantity:  quantity,
	}

	if err := srv.cartRepo.Add(ctx, item); err != nil {
		return errors.Wrap(err, "failed to add cart item")
	}

	return nil
}

// UpdateCartQuantity changes the quantity of a product already in the cart.
func (srv *cartService) UpdateCartQuantity(ctx context.Context, userID uuid.UUID, productID int64, quantity int) error {
	if quantity <= 0 {
		return errors.Wrap(domainerrors.ErrValidationFailed, "quantity must be positive")
	}

	if err := srv.cartRepo.UpdateQuantity(ctx, userID, productID, quantity); err != nil {
		if errors.Is(err, repository.ErrCartItemNotFound) {
			return errors.Wrap(domainerrors.ErrCartItemNotFound, "cart update failed")
		}

		return errors.Wrap(err, "failed to update cart quantity")
	}

	return nil
}

// RemoveFromCart deletes a product from the user's cart.
func (srv *cartService) RemoveFromCart(ctx context.Context, userID uuid.UUID, productID int64) error {
	if err := srv.cartRepo.Remove(ctx, userID, productID); err != nil {
		if errors.Is(err, repository.ErrCartItemNotFound) {
			return errors.Wrap(domainerrors.ErrCartItemNotFound, "cart removal failed")
		}

		return errors.Wrap(err, "failed to remove cart item")
	}

	return nil
}
