package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// favoriteRepository implements the repository.FavoriteRepository interface.
type favoriteRepository struct {
	db *gorm.DB
}

// NewFavoriteRepository is the constructor for favoriteRepository.
func NewFavoriteRepository(db *gorm.DB) repository.FavoriteRepository {
	return &favoriteRepository{
		db: db,
	}
}

// FindByUser retrieves every favorite belonging to a user.
func (repo *favoriteRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Favorite, error) {
	ctx, cancel := statementContext(ctx)
	defer cancel()

	var favoriteModels []*model.FavoriteModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&favoriteModels).Error; err != nil {
		if isStatementTimeout(err) {
			return nil, domainerrors.NewDatabaseTimeoutError(err, "find favorites by user")
		}

		return nil, errors.Wrap(err, "failed to find favorites by user")
	}

	favorites := make([]*entity.Favorite, 0, len(favoriteModels))
	for _, favoriteM := range favoriteModels {
		favorites = append(favorites, toFavoriteDomain(favoriteM))
	}

	return favorites, nil
}

// Add inserts a favorite. Re-adding an existing favorite is a silent no-op.
func (repo *favoriteRepository) Add(ctx context.Context, favorite *entity.Favorite) error {
	ctx, cancel := statementContext(ctx)
	defer cancel()

	favoriteM := fromFavoriteDomain(favorite)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(favoriteM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrProductNotFound
		}
		if isStatementTimeout(err) {
			return domainerrors.NewDatabaseTimeoutError(err, "add favorite")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to add favorite")
	}

	favorite.CreatedAt = favoriteM.CreatedAt

	return nil
}

// Remove deletes one product from a user's favorites. Removing a product that
// was never favorited is a silent no-op, matching the add side.
func (repo *favoriteRepository) Remove(ctx context.Context, userID uuid.UUID, productID int64) error {
	ctx, cancel := statementContext(ctx)
	defer cancel()

	result := repo.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&model.FavoriteModel{})

	if result.Error != nil {
		if isStatementTimeout(result.Error) {
			return domainerrors.NewDatabaseTimeoutError(result.Error, "remove favorite")
		}

		return errors.Wrap(result.Error, "failed to remove favorite")
	}

	return nil
}

// --- Mapper Functions ---

func toFavoriteDomain(data *model.FavoriteModel) *entity.Favorite {
	if data == nil {
		return nil
	}

	return &entity.Favorite{
		UserID:    data.UserID,
		ProductID: data.ProductID,
		CreatedAt: data.CreatedAt,
	}
}

func fromFavoriteDomain(data *entity.Favorite) *model.FavoriteModel {
	if data == nil {
		return nil
	}

	return &model.FavoriteModel{
		UserID:    data.UserID,
		ProductID: data.ProductID,
		CreatedAt: data.CreatedAt,
	}
}
