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

// cartRepository implements the repository.CartRepository interface.
type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository is the constructor for cartRepository.
func NewCartRepository(db *gorm.DB) repository.CartRepository {
	return &cartRepository{
		db: db,
	}
}

// FindByUser retrieves every cart item belonging to a user.
func (repo *cartRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.CartItem, error) {
	ctx, cancel := statementContext(ctx)
	defer cancel()

	var itemModels []*model.CartItemModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&itemModels).Error; err != nil {
		if isStatementTimeout(err) {
			return nil, domainerrors.NewDatabaseTimeoutError(err, "find cart items by user")
		}

		return nil, errors.Wrap(err, "failed to find cart items by user")
	}

	items := make([]*entity.CartItem, 0, len(itemModels))
	for _, itemM := range itemModels {
		items = append(items, toCartItemDomain(itemM))
	}

	return items, nil
}

// Add inserts a cart item. Re-adding a product already in the cart overwrites
// the stored quantity instead of failing on the composite key.
func (repo *cartRepository) Add(ctx context.Context, item *entity.CartItem) error {
	ctx, cancel := statementContext(ctx)
	defer cancel()

	itemM := fromCartItemDomain(item)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "product_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"quantity", "updated_at"}),
		}).
		Create(itemM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrProductNotFound
		}
		if isStatementTimeout(err) {
			return domainerrors.NewDatabaseTimeoutError(err, "add cart item")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to add cart item")
	}

	item.CreatedAt = itemM.CreatedAt
	item.UpdatedAt = itemM.UpdatedAt

	return nil
}

// UpdateQuantity changes the quantity of an existing cart item.
func (repo *cartRepository) UpdateQuantity(ctx context.Context, userID uuid.UUID, productID int64, quantity int) error {
	ctx, cancel := statementContext(ctx)
	defer cancel()

	result := repo.db.WithContext(ctx).
		Model(&model.CartItemModel{}).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Update("quantity", quantity)

	if result.Error != nil {
		if isStatementTimeout(result.Error) {
			return domainerrors.NewDatabaseTimeoutError(result.Error, "update cart quantity")
		}

		return errors.Wrap(result.Error, "failed to update cart quantity")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCartItemNotFound
	}

	return nil
}

// Remove deletes one product from a user's cart.
func (repo *cartRepository) Remove(ctx context.Context, userID uuid.UUID, productID int64) error {
	ctx, cancel := statementContext(ctx)
	defer cancel()

	result := repo.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&model.CartItemModel{})

	if result.Error != nil {
		if isStatementTimeout(result.Error) {
			return domainerrors.NewDatabaseTimeoutError(result.Error, "remove cart item")
		}

		return errors.Wrap(result.Error, "failed to remove cart item")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCartItemNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toCartItemDomain(data *model.CartItemModel) *entity.CartItem {
	if data == nil {
		return nil
	}

	return &entity.CartItem{
		UserID:    data.UserID,
		ProductID: data.ProductID,
		Quantity:  data.Quantity,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromCartItemDomain(data *entity.CartItem) *model.CartItemModel {
	if data == nil {
		return nil
	}

	return &model.CartItemModel{
		UserID:    data.UserID,
		ProductID: data.ProductID,
		Quantity:  data.Quantity,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
