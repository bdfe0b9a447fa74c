package impl

import (
	"context"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// orderService implements the OrderUsecase interface.
type orderService struct {
	txManager    repository.TransactionManager
	orderRepo    repository.OrderRepository
	productRepo  repository.ProductRepository
	refAllocator service.ReferenceAllocator
	logger       *slog.Logger
}

// OrderServiceParams holds dependencies for orderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	OrderRepo    repository.OrderRepository
	ProductRepo  repository.ProductRepository
	RefAllocator service.ReferenceAllocator
	Logger       *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		txManager:    params.TxManager,
		orderRepo:    params.OrderRepo,
		productRepo:  params.ProductRepo,
		refAllocator: params.RefAllocator,
		logger:       params.Logger,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateOrder places a new order: validate the items, verify the products in
// one batched lookup, allocate a reference number, then write the order row
// and its line items in a single transaction. A failure after allocation
// burns the sequence value, which is acceptable; gaps carry no meaning.
func (srv *orderService) CreateOrder(ctx context.Context, input *usecase.CreateOrderInput) (*usecase.CreateOrderOutput, error) {
	if len(input.Items) == 0 {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "order must contain at least one item")
	}

	productIDs := make([]int64, 0, len(input.Items))
	for _, item := range input.Items {
		if item.ProductID <= 0 {
			return nil, errors.Wrap(domainerrors.ErrValidationFailed, "item product id must be positive")
		}
		if item.Quantity <= 0 {
			return nil, errors.Wrap(domainerrors.ErrValidationFailed, "item quantity must be positive")
		}
		productIDs = append(productIDs, item.ProductID)
	}

	products, err := srv.productRepo.FindByIDs(ctx, productIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to verify order products")
	}

	known := make(map[int64]struct{}, len(products))
	for _, product := range products {
		known[product.ID] = struct{}{}
	}
	for _, item := range input.Items {
		if _, ok := known[item.ProductID]; !ok {
			return nil, errors.Wrap(domainerrors.ErrProductNotFound, "order references missing product")
		}
	}

	referenceNumber, err := srv.refAllocator.NextReferenceNumber(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to allocate order reference", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to allocate order reference number")
	}

	order := &entity.Order{
		UserID:          input.UserID,
		ReferenceNumber: referenceNumber,
		Status:          entity.OrderStatusActive,
	}

	lineItems := make([]*entity.LineItem, 0, len(input.Items))
	for _, item := range input.Items {
		lineItems = append(lineItems, &entity.LineItem{
			ReferenceNumber: referenceNumber,
			ProductID:       item.ProductID,
			Quantity:        item.Quantity,
		})
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.OrderRepo()

		if err := orderRepo.Create(ctx, order); err != nil {
			return errors.Wrap(err, "failed to create order row")
		}

		return orderRepo.AddLineItems(ctx, lineItems)
	})

	if err != nil {
		srv.log(ctx).Error("Failed to execute order creation transaction", slog.String("reference", referenceNumber), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute order creation transaction")
	}

	srv.log(ctx).Info("Order placed", slog.String("reference", referenceNumber), slog.Any("userID", input.UserID))

	return &usecase.CreateOrderOutput{
		OrderID:         order.ID,
		ReferenceNumber: referenceNumber,
	}, nil
}

// GetOrder assembles a single order with product details.
func (srv *orderService) GetOrder(ctx context.Context, referenceNumber string) (*usecase.OrderView, error) {
	if referenceNumber == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "reference number is required")
	}

	order, err := srv.orderRepo.FindByReference(ctx, referenceNumber)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, errors.Wrap(domainerrors.ErrOrderNotFound, "order lookup failed")
		}

		return nil, errors.Wrap(err, "failed to load order")
	}

	views, err := srv.assembleOrderViews(ctx, []*entity.Order{order})
	if err != nil {
		return nil, err
	}

	return views[0], nil
}

// ListUserOrders assembles a user's orders with product details.
func (srv *orderService) ListUserOrders(ctx context.Context, userID uuid.UUID) ([]*usecase.OrderView, error) {
	orders, err := srv.orderRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load user orders")
	}

	return srv.assembleOrderViews(ctx, orders)
}

// ListAllOrders assembles every order in the system with product details.
func (srv *orderService) ListAllOrders(ctx context.Context) ([]*usecase.OrderView, error) {
	orders, err := srv.orderRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load orders")
	}

	return srv.assembleOrderViews(ctx, orders)
}

// assembleOrderViews joins orders, line items, and products using one query
// per table, independent of the number of orders.
func (srv *orderService) assembleOrderViews(ctx context.Context, orders []*entity.Order) ([]*usecase.OrderView, error) {
	if len(orders) == 0 {
		return []*usecase.OrderView{}, nil
	}

	references := make([]string, 0, len(orders))
	for _, order := range orders {
		references = append(references, order.ReferenceNumber)
	}

	lineItems, err := srv.orderRepo.FindLineItems(ctx, references)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load order line items")
	}

	productIDs := make([]int64, 0, len(lineItems))
	seen := make(map[int64]struct{}, len(lineItems))
	for _, item := range lineItems {
		if _, ok := seen[item.ProductID]; ok {
			continue
		}
		seen[item.ProductID] = struct{}{}
		productIDs = append(productIDs, item.ProductID)
	}

	products, err := srv.productRepo.FindByIDs(ctx, productIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load order products")
	}

	productsByID := make(map[int64]*entity.Product, len(products))
	for _, product := range products {
		productsByID[product.ID] = product
	}

	itemsByReference := make(map[string][]*usecase.OrderLineView, len(orders))
	for _, item := range lineItems {
		product, ok := productsByID[item.ProductID]
		if !ok {
			srv.log(ctx).Warn("Order line references missing product", slog.String("reference", item.ReferenceNumber), slog.Int64("productID", item.ProductID))

			continue
		}

		itemsByReference[item.ReferenceNumber] = append(itemsByReference[item.ReferenceNumber], &usecase.OrderLineView{
			Product:  product,
			Quantity: item.Quantity,
		})
	}

	views := make([]*usecase.OrderView, 0, len(orders))
	for _, order := range orders {
		items := itemsByReference[order.ReferenceNumber]
		if items == nil {
			items = []*usecase.OrderLineView{}
		}

		views = append(views, &usecase.OrderView{
			ReferenceNumber: order.ReferenceNumber,
			UserID:          order.UserID,
			Status:          order.Status,
			Items:           items,
			CreatedAt:       order.CreatedAt,
		})
	}

	return views, nil
}

// CompleteOrder transitions an order to completed. Repeated completions of
// the same order succeed without effect.
func (srv *orderService) CompleteOrder(ctx context.Context, referenceNumber string) error {
	if referenceNumber == "" {
		return errors.Wrap(domainerrors.ErrValidationFailed, "reference number is required")
	}

	if err := srv.orderRepo.MarkCompleted(ctx, referenceNumber); err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return errors.Wrap(domainerrors.ErrOrderNotFound, "order completion failed")
		}

		return errors.Wrap(err, "failed to mark order completed")
	}

	srv.log(ctx).Info("Order completed", slog.String("reference", referenceNumber))

	return nil
}
