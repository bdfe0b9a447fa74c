package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// cartServiceFixtures holds all test dependencies for cart service tests.
type cartServiceFixtures struct {
	service     usecase.CartUsecase
	cartRepo    *mockRepo.MockCartRepository
	productRepo *mockRepo.MockProductRepository
}

func createTestCartService(t *testing.T) cartServiceFixtures {
	cartRepo := mockRepo.NewMockCartRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)

	service := NewCartService(CartServiceParams{
		CartRepo:    cartRepo,
		ProductRepo: productRepo,
		Logger:      newDiscardLogger(),
	})

	return cartServiceFixtures{
		service:     service,
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

func TestCartService_GetCart_JoinsProducts(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()

	items := []*entity.CartItem{
		{UserID: userID, ProductID: 1, Quantity: 2},
		{UserID: userID, ProductID: 2, Quantity: 1},
	}

	products := []*entity.Product{
		{ID: 1, Name: "Desk Lamp", Price: 39.90},
		{ID: 2, Name: "Notebook", Price: 4.50},
	}

	fx.cartRepo.EXPECT().FindByUser(ctx, userID).Return(items, nil)
	fx.productRepo.EXPECT().FindByIDs(ctx, []int64{1, 2}).Return(products, nil)

	entries, err := fx.service.GetCart(ctx, userID)

	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "Desk Lamp", entries[0].Product.Name)
	assert.Equal(t, 2, entries[0].Quantity)
}

func TestCartService_GetCart_SkipsMissingProduct(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()

	items := []*entity.CartItem{
		{UserID: userID, ProductID: 1, Quantity: 2},
		{UserID: userID, ProductID: 2, Quantity: 1},
	}

	// Product 2 was removed from the catalog after being carted.
	products := []*entity.Product{
		{ID: 1, Name: "Desk Lamp"},
	}

	fx.cartRepo.EXPECT().FindByUser(ctx, userID).Return(items, nil)
	fx.productRepo.EXPECT().FindByIDs(ctx, []int64{1, 2}).Return(products, nil)

	entries, err := fx.service.GetCart(ctx, userID)

	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, int64(1), entries[0].Product.ID)
}

func TestCartService_AddToCart_Success(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.productRepo.EXPECT().FindByID(ctx, int64(1)).Return(&entity.Product{ID: 1}, nil)
	fx.cartRepo.EXPECT().
		Add(ctx, mock.AnythingOfType("*entity.CartItem")).
		Run(func(ctx context.Context, item *entity.CartItem) {
			assert.Equal(t, userID, item.UserID)
			assert.Equal(t, int64(1), item.ProductID)
			assert.Equal(t, 3, item.Quantity)
		}).
		Return(nil)

	err := fx.service.AddToCart(ctx, userID, 1, 3)
	assert.NoError(t, err)
}

func TestCartService_AddToCart_NonPositiveQuantity(t *testing.T) {
	fx := createTestCartService(t)

	err := fx.service.AddToCart(context.Background(), uuid.New(), 1, 0)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestCartService_AddToCart_UnknownProduct(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()

	fx.productRepo.EXPECT().FindByID(ctx, int64(99)).Return(nil, repository.ErrProductNotFound)

	err := fx.service.AddToCart(ctx, uuid.New(), 99, 1)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
}

func TestCartService_UpdateCartQuantity_NotFound(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.cartRepo.EXPECT().
		UpdateQuantity(ctx, userID, int64(1), 5).
		Return(repository.ErrCartItemNotFound)

	err := fx.service.UpdateCartQuantity(ctx, userID, 1, 5)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrCartItemNotFound))
}

func TestCartService_RemoveFromCart_Success(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.cartRepo.EXPECT().Remove(ctx, userID, int64(1)).Return(nil)

	err := fx.service.RemoveFromCart(ctx, userID, 1)
	assert.NoError(t, err)
}
