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
)

// orderRepository implements the repository.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{
		db: db,
	}
}

// Create persists a new order row and backfills the generated ID.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	ctx, cancel := statementContext(ctx)
	defer cancel()

	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound
		}
		if isStatementTimeout(err) {
			return domainerrors.NewDatabaseTimeoutError(err, "create order")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	// Update the entity with generated values
	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt

	return nil
}

// AddLineItems persists the line items of an order in one batched insert.
func (repo *orderRepository) AddLineItems(ctx context.Context, items []*entity.LineItem) error {
	if len(items) == 0 {
		return nil
	}

	ctx, cancel := statementContext(ctx)
	defer cancel()

	itemModels := make([]*model.OrderLineItemModel, 0, len(items))
	for _, item := range items {
		itemModels = append(itemModels, fromLineItemDomain(item))
	}

	if err := repo.db.WithContext(ctx).Create(&itemModels).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrProductNotFound
		}
		if isStatementTimeout(err) {
			return domainerrors.NewDatabaseTimeoutError(err, "add order line items")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to add order line items")
	}

	return nil
}

// FindByReference retrieves a single order by its reference number.
func (repo *orderRepository) FindByReference(ctx context.Context, referenceNumber string) (*entity.Order, error) {
	ctx, cancel := statementContext(ctx)
	defer cancel()

	var orderM model.OrderModel

	if err := repo.db.WithContext(ctx).
		Where("reference_number = ?", referenceNumber).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}
		if isStatementTimeout(err) {
			return nil, domainerrors.NewDatabaseTimeoutError(err, "find order by reference")
		}

		return nil, errors.Wrap(err, "failed to find order by reference")
	}

	return toOrderDomain(&orderM), nil
}

// FindByUser retrieves all orders belonging to a user, newest first.
func (repo *orderRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	ctx, cancel := statementContext(ctx)
	defer cancel()

	var orderModels []*model.OrderModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orderModels).Error; err != nil {
		if isStatementTimeout(err) {
			return nil, domainerrors.NewDatabaseTimeoutError(err, "find orders by user")
		}

		return nil, errors.Wrap(err, "failed to find orders by user")
	}

	return toOrderDomainSlice(orderModels), nil
}

// FindAll retrieves every order across all users, newest first.
func (repo *orderRepository) FindAll(ctx context.Context) ([]*entity.Order, error) {
	ctx, cancel := statementContext(ctx)
	defer cancel()

	var orderModels []*model.OrderModel

	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&orderModels).Error; err != nil {
		if isStatementTimeout(err) {
			return nil, domainerrors.NewDatabaseTimeoutError(err, "find all orders")
		}

		return nil, errors.Wrap(err, "failed to find all orders")
	}

	return toOrderDomainSlice(orderModels), nil
}

// FindLineItems retrieves the line items of a set of orders in one query.
func (repo *orderRepository) FindLineItems(ctx context.Context, referenceNumbers []string) ([]*entity.LineItem, error) {
	if len(referenceNumbers) == 0 {
		return []*entity.LineItem{}, nil
	}

	ctx, cancel := statementContext(ctx)
	defer cancel()

	var itemModels []*model.OrderLineItemModel

	if err := repo.db.WithContext(ctx).
		Where("reference_number IN ?", referenceNumbers).
		Find(&itemModels).Error; err != nil {
		if isStatementTimeout(err) {
			return nil, domainerrors.NewDatabaseTimeoutError(err, "find order line items")
		}

		return nil, errors.Wrap(err, "failed to find order line items")
	}

	items := make([]*entity.LineItem, 0, len(itemModels))
	for _, itemM := range itemModels {
		items = append(items, toLineItemDomain(itemM))
	}

	return items, nil
}

// MarkCompleted transitions an order to completed. Updating an order that is
// already completed affects the row again and stays a no-op in effect, which
// keeps the call idempotent.
func (repo *orderRepository) MarkCompleted(ctx context.Context, referenceNumber string) error {
	ctx, cancel := statementContext(ctx)
	defer cancel()

	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("reference_number = ?", referenceNumber).
		Update("status", string(entity.OrderStatusCompleted))

	if result.Error != nil {
		if isStatementTimeout(result.Error) {
			return domainerrors.NewDatabaseTimeoutError(result.Error, "mark order completed")
		}

		return errors.Wrap(result.Error, "failed to mark order completed")
	}

	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toOrderDomain converts a GORM OrderModel to a domain Order entity.
func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	return &entity.Order{
		ID:              data.ID,
		UserID:          data.UserID,
		ReferenceNumber: data.ReferenceNumber,
		Status:          entity.OrderStatus(data.Status),
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

func toOrderDomainSlice(data []*model.OrderModel) []*entity.Order {
	orders := make([]*entity.Order, 0, len(data))
	for _, orderM := range data {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders
}

// fromOrderDomain converts a domain Order entity to a GORM OrderModel.
func fromOrderDomain(data *entity.Order) *model.OrderModel {
	if data == nil {
		return nil
	}

	return &model.OrderModel{
		ID:              data.ID,
		UserID:          data.UserID,
		ReferenceNumber: data.ReferenceNumber,
		Status:          string(data.Status),
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

// toLineItemDomain converts a GORM OrderLineItemModel to a domain LineItem.
func toLineItemDomain(data *model.OrderLineItemModel) *entity.LineItem {
	if data == nil {
		return nil
	}

	return &entity.LineItem{
		ReferenceNumber: data.ReferenceNumber,
		ProductID:       data.ProductID,
		Quantity:        data.Quantity,
	}
}

// fromLineItemDomain converts a domain LineItem to a GORM OrderLineItemModel.
func fromLineItemDomain(data *entity.LineItem) *model.OrderLineItemModel {
	if data == nil {
		return nil
	}

	return &model.OrderLineItemModel{
		ReferenceNumber: data.ReferenceNumber,
		ProductID:       data.ProductID,
		Quantity:        data.Quantity,
	}
}
