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

// favoriteService implements the FavoriteUsecase interface.
type favoriteService struct {
	favoriteRepo repository.FavoriteRepository
	productRepo  repository.ProductRepository
	logger       *slog.Logger
}

// FavoriteServiceParams holds dependencies for favoriteService, injected by Fx.
type FavoriteServiceParams struct {
	fx.In

	FavoriteRepo repository.FavoriteRepository
	ProductRepo  repository.ProductRepository
	Logger       *slog.Logger
}

// NewFavoriteService is the constructor for favoriteService.
func NewFavoriteService(params FavoriteServiceParams) usecase.FavoriteUsecase {
	return &favoriteService{
		favoriteRepo: params.FavoriteRepo,
		productRepo:  params.ProductRepo,
		logger:       params.Logger,
	}
}

func (srv *favoriteService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetFavorites returns the product records a user has saved, preserving the
// save order. Products since removed from the catalog are skipped.
func (srv *favoriteService) GetFavorites(ctx context.Context, userID uuid.UUID) ([]*entity.Product, error) {
	favorites, err := srv.favoriteRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load favorites")
	}

	productIDs := make([]int64, 0, len(favorites))
	for _, favorite := range favorites {
		productIDs = append(productIDs, favorite.ProductID)
	}

	products, err := srv.productRepo.FindByIDs(ctx, productIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load favorite products")
	}

	productsByID := make(map[int64]*entity.Product, len(products))
	for _, product := range products {
		productsByID[product.ID] = product
	}

	ordered := make([]*entity.Product, 0, len(favorites))
	for _, favorite := range favorites {
		if product, ok := productsByID[favorite.ProductID]; ok {
			ordered = append(ordered, product)
		}
	}

	return ordered, nil
}

// AddFavorite saves a product for later.
func (srv *favoriteService) AddFavorite(ctx context.Context, userID uuid.UUID, productID int64) error {
	if _, err := srv.productRepo.FindByID(ctx, productID); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return errors.Wrap(domainerrors.ErrProductNotFound, "cannot favorite missing product")
		}

		return errors.Wrap(err, "failed to verify product before favoriting")
	}

	favorite := &entity.Favorite{
		UserID:    userID,
		ProductID: productID,
	}

	if err := srv.favoriteRepo.Add(ctx, favorite); err != nil {
		return errors.Wrap(err, "failed to add favorite")
	}

	srv.log(ctx).Debug("Favorite added", slog.Any("userID", userID), slog.Int64("productID", productID))

	return nil
}

// RemoveFavorite deletes a saved product.
func (srv *favoriteService) RemoveFavorite(ctx context.Context, userID uuid.UUID, productID int64) error {
	if err := srv.favoriteRepo.Remove(ctx, userID, productID); err != nil {
		return errors.Wrap(err, "failed to remove favorite")
	}

	return nil
}
