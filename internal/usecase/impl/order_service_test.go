package impl

import (
	"context"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	mockSvc "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// orderServiceFixtures holds all test dependencies for order service tests.
type orderServiceFixtures struct {
	service      usecase.OrderUsecase
	txManager    *mockRepo.MockTransactionManager
	orderRepo    *mockRepo.MockOrderRepository
	productRepo  *mockRepo.MockProductRepository
	refAllocator *mockSvc.MockReferenceAllocator
}

func createTestOrderService(t *testing.T) orderServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	refAllocator := mockSvc.NewMockReferenceAllocator(t)

	service := NewOrderService(OrderServiceParams{
		TxManager:    txManager,
		OrderRepo:    orderRepo,
		ProductRepo:  productRepo,
		RefAllocator: refAllocator,
		Logger:       newDiscardLogger(),
	})

	return orderServiceFixtures{
		service:      service,
		txManager:    txManager,
		orderRepo:    orderRepo,
		productRepo:  productRepo,
		refAllocator: refAllocator,
	}
}

func TestOrderService_CreateOrder_Success(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()
	input := &usecase.CreateOrderInput{
		UserID: userID,
		Items: []usecase.LineItemInput{
			{ProductID: 1, Quantity: 2},
			{ProductID: 2, Quantity: 1},
		},
	}

	products := []*entity.Product{
		{ID: 1, Name: "Desk Lamp"},
		{ID: 2, Name: "Notebook"},
	}

	fx.productRepo.EXPECT().FindByIDs(ctx, []int64{1, 2}).Return(products, nil)
	fx.refAllocator.EXPECT().NextReferenceNumber(ctx).Return("ORD000042QK", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)

			mockFactory.EXPECT().OrderRepo().Return(mockOrderRepo)

			mockOrderRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Order")).
				Run(func(ctx context.Context, order *entity.Order) {
					assert.Equal(t, "ORD000042QK", order.ReferenceNumber)
					assert.Equal(t, entity.OrderStatusActive, order.Status)
					order.ID = 7
				}).
				Return(nil)

			mockOrderRepo.EXPECT().
				AddLineItems(ctx, mock.AnythingOfType("[]*entity.LineItem")).
				Run(func(ctx context.Context, items []*entity.LineItem) {
					require.Len(t, items, 2)
					assert.Equal(t, "ORD000042QK", items[0].ReferenceNumber)
					assert.Equal(t, 2, items[0].Quantity)
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	output, err := fx.service.CreateOrder(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, int64(7), output.OrderID)
	assert.Equal(t, "ORD000042QK", output.ReferenceNumber)
}

func TestOrderService_CreateOrder_EmptyItems(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	input := &usecase.CreateOrderInput{
		UserID: uuid.New(),
		Items:  []usecase.LineItemInput{},
	}

	output, err := fx.service.CreateOrder(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestOrderService_CreateOrder_NonPositiveQuantity(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	input := &usecase.CreateOrderInput{
		UserID: uuid.New(),
		Items: []usecase.LineItemInput{
			{ProductID: 1, Quantity: 0},
		},
	}

	output, err := fx.service.CreateOrder(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestOrderService_CreateOrder_NonPositiveProductID(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	input := &usecase.CreateOrderInput{
		UserID: uuid.New(),
		Items: []usecase.LineItemInput{
			{ProductID: -3, Quantity: 1},
		},
	}

	// Malformed input never reaches the store.
	output, err := fx.service.CreateOrder(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestOrderService_CreateOrder_UnknownProduct(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	input := &usecase.CreateOrderInput{
		UserID: uuid.New(),
		Items: []usecase.LineItemInput{
			{ProductID: 1, Quantity: 1},
			{ProductID: 99, Quantity: 1},
		},
	}

	// Only one of the two products exists.
	products := []*entity.Product{
		{ID: 1, Name: "Desk Lamp"},
	}

	fx.productRepo.EXPECT().FindByIDs(ctx, []int64{1, 99}).Return(products, nil)

	output, err := fx.service.CreateOrder(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
}

func TestOrderService_CreateOrder_AllocatorError(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	input := &usecase.CreateOrderInput{
		UserID: uuid.New(),
		Items: []usecase.LineItemInput{
			{ProductID: 1, Quantity: 1},
		},
	}

	products := []*entity.Product{
		{ID: 1, Name: "Desk Lamp"},
	}

	fx.productRepo.EXPECT().FindByIDs(ctx, []int64{1}).Return(products, nil)
	fx.refAllocator.EXPECT().NextReferenceNumber(ctx).Return("", errors.New("sequence unavailable"))

	output, err := fx.service.CreateOrder(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.Contains(t, err.Error(), "failed to allocate order reference number")
}

func TestOrderService_CreateOrder_TransactionError(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	input := &usecase.CreateOrderInput{
		UserID: uuid.New(),
		Items: []usecase.LineItemInput{
			{ProductID: 1, Quantity: 1},
		},
	}

	products := []*entity.Product{
		{ID: 1, Name: "Desk Lamp"},
	}

	fx.productRepo.EXPECT().FindByIDs(ctx, []int64{1}).Return(products, nil)
	fx.refAllocator.EXPECT().NextReferenceNumber(ctx).Return("ORD000043AB", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(errors.New("deadlock detected"))

	output, err := fx.service.CreateOrder(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.Contains(t, err.Error(), "failed to execute order creation transaction")
}

func TestOrderService_ListUserOrders_JoinsProducts(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()
	now := time.Now()

	orders := []*entity.Order{
		{ID: 1, UserID: userID, ReferenceNumber: "ORD000001AA", Status: entity.OrderStatusActive, CreatedAt: now},
		{ID: 2, UserID: userID, ReferenceNumber: "ORD000002BB", Status: entity.OrderStatusCompleted, CreatedAt: now},
	}

	lineItems := []*entity.LineItem{
		{ReferenceNumber: "ORD000001AA", ProductID: 10, Quantity: 2},
		{ReferenceNumber: "ORD000001AA", ProductID: 11, Quantity: 1},
		{ReferenceNumber: "ORD000002BB", ProductID: 10, Quantity: 3},
	}

	products := []*entity.Product{
		{ID: 10, Name: "Desk Lamp"},
		{ID: 11, Name: "Notebook"},
	}

	fx.orderRepo.EXPECT().FindByUser(ctx, userID).Return(orders, nil)
	fx.orderRepo.EXPECT().
		FindLineItems(ctx, []string{"ORD000001AA", "ORD000002BB"}).
		Return(lineItems, nil)
	// Product 10 appears in two orders but is fetched once.
	fx.productRepo.EXPECT().FindByIDs(ctx, []int64{10, 11}).Return(products, nil)

	views, err := fx.service.ListUserOrders(ctx, userID)

	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, "ORD000001AA", views[0].ReferenceNumber)
	require.Len(t, views[0].Items, 2)
	assert.Equal(t, "Desk Lamp", views[0].Items[0].Product.Name)
	assert.Equal(t, 2, views[0].Items[0].Quantity)
	require.Len(t, views[1].Items, 1)
	assert.Equal(t, 3, views[1].Items[0].Quantity)
}

func TestOrderService_ListUserOrders_Empty(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.orderRepo.EXPECT().FindByUser(ctx, userID).Return([]*entity.Order{}, nil)

	views, err := fx.service.ListUserOrders(ctx, userID)

	require.NoError(t, err)
	assert.NotNil(t, views)
	assert.Empty(t, views)
}

func TestOrderService_ListAllOrders_OrderWithoutItems(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()

	orders := []*entity.Order{
		{ID: 1, UserID: uuid.New(), ReferenceNumber: "ORD000005CC", Status: entity.OrderStatusActive},
	}

	fx.orderRepo.EXPECT().FindAll(ctx).Return(orders, nil)
	fx.orderRepo.EXPECT().FindLineItems(ctx, []string{"ORD000005CC"}).Return([]*entity.LineItem{}, nil)
	fx.productRepo.EXPECT().FindByIDs(ctx, []int64{}).Return([]*entity.Product{}, nil)

	views, err := fx.service.ListAllOrders(ctx)

	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.NotNil(t, views[0].Items)
	assert.Empty(t, views[0].Items)
}

func TestOrderService_GetOrder_JoinsProducts(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()

	order := &entity.Order{
		ID:              1,
		UserID:          userID,
		ReferenceNumber: "ORD000042QK",
		Status:          entity.OrderStatusActive,
	}

	lineItems := []*entity.LineItem{
		{ReferenceNumber: "ORD000042QK", ProductID: 10, Quantity: 2},
		{ReferenceNumber: "ORD000042QK", ProductID: 11, Quantity: 1},
	}

	products := []*entity.Product{
		{ID: 10, Name: "Desk Lamp"},
		{ID: 11, Name: "Notebook"},
	}

	fx.orderRepo.EXPECT().FindByReference(ctx, "ORD000042QK").Return(order, nil)
	fx.orderRepo.EXPECT().FindLineItems(ctx, []string{"ORD000042QK"}).Return(lineItems, nil)
	fx.productRepo.EXPECT().FindByIDs(ctx, []int64{10, 11}).Return(products, nil)

	view, err := fx.service.GetOrder(ctx, "ORD000042QK")

	require.NoError(t, err)
	assert.Equal(t, "ORD000042QK", view.ReferenceNumber)
	assert.Equal(t, userID, view.UserID)
	require.Len(t, view.Items, 2)
	assert.Equal(t, "Desk Lamp", view.Items[0].Product.Name)
	assert.Equal(t, 2, view.Items[0].Quantity)
	assert.Equal(t, "Notebook", view.Items[1].Product.Name)
	assert.Equal(t, 1, view.Items[1].Quantity)
}

func TestOrderService_GetOrder_NotFound(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()

	fx.orderRepo.EXPECT().FindByReference(ctx, "ORD999999ZZ").Return(nil, repository.ErrOrderNotFound)

	view, err := fx.service.GetOrder(ctx, "ORD999999ZZ")

	assert.Error(t, err)
	assert.Nil(t, view)
	assert.True(t, errors.Is(err, domainerrors.ErrOrderNotFound))
}

func TestOrderService_GetOrder_EmptyReference(t *testing.T) {
	fx := createTestOrderService(t)

	view, err := fx.service.GetOrder(context.Background(), "")

	assert.Error(t, err)
	assert.Nil(t, view)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestOrderService_CompleteOrder_Success(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()

	fx.orderRepo.EXPECT().MarkCompleted(ctx, "ORD000042QK").Return(nil)

	err := fx.service.CompleteOrder(ctx, "ORD000042QK")
	assert.NoError(t, err)
}

func TestOrderService_CompleteOrder_Idempotent(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()

	// Completing an already-completed order is a no-op that still succeeds.
	fx.orderRepo.EXPECT().MarkCompleted(ctx, "ORD000042QK").Return(nil).Times(2)

	require.NoError(t, fx.service.CompleteOrder(ctx, "ORD000042QK"))
	require.NoError(t, fx.service.CompleteOrder(ctx, "ORD000042QK"))
}

func TestOrderService_CompleteOrder_NotFound(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()

	fx.orderRepo.EXPECT().MarkCompleted(ctx, "ORD999999ZZ").Return(repository.ErrOrderNotFound)

	err := fx.service.CompleteOrder(ctx, "ORD999999ZZ")
	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrOrderNotFound))
}

func TestOrderService_CompleteOrder_EmptyReference(t *testing.T) {
	fx := createTestOrderService(t)

	err := fx.service.CompleteOrder(context.Background(), "")
	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}
