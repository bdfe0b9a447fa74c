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

// paymentServiceFixtures holds all test dependencies for payment service tests.
type paymentServiceFixtures struct {
	service     usecase.PaymentUsecase
	paymentRepo *mockRepo.MockPaymentRepository
}

func createTestPaymentService(t *testing.T) paymentServiceFixtures {
	paymentRepo := mockRepo.NewMockPaymentRepository(t)

	service := NewPaymentService(PaymentServiceParams{
		PaymentRepo: paymentRepo,
		Logger:      newDiscardLogger(),
	})

	return paymentServiceFixtures{
		service:     service,
		paymentRepo: paymentRepo,
	}
}

func TestPaymentService_RegisterIntent_Success(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	input := &usecase.RegisterIntentInput{
		UserID:          uuid.New(),
		PaymentIntentID: "pi_123",
	}

	fx.paymentRepo.EXPECT().
		RegisterIntent(ctx, mock.AnythingOfType("*entity.PaymentIntent")).
		Return(nil)

	intent, err := fx.service.RegisterIntent(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "pi_123", intent.IntentID)
	assert.Equal(t, input.UserID, intent.UserID)
}

func TestPaymentService_RegisterIntent_MissingID(t *testing.T) {
	fx := createTestPaymentService(t)

	intent, err := fx.service.RegisterIntent(context.Background(), &usecase.RegisterIntentInput{
		UserID: uuid.New(),
	})

	assert.Error(t, err)
	assert.Nil(t, intent)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestPaymentService_HandleProviderEvent_Paid_Success(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	userID := uuid.New()
	event := &usecase.ProviderEvent{
		Type:            usecase.EventPaymentPaid,
		PaymentIntentID: "pi_123",
		PaymentID:       "pay_456",
	}

	intent := &entity.PaymentIntent{
		ID:       1,
		UserID:   userID,
		IntentID: "pi_123",
	}

	fx.paymentRepo.EXPECT().ResolveIntent(ctx, "pi_123").Return(intent, nil)
	fx.paymentRepo.EXPECT().
		CreatePayment(ctx, mock.AnythingOfType("*entity.Payment")).
		Run(func(ctx context.Context, payment *entity.Payment) {
			assert.Equal(t, userID, payment.UserID)
			assert.Equal(t, "pi_123", payment.IntentID)
			assert.Equal(t, "pay_456", payment.PaymentID)
		}).
		Return(nil)

	err := fx.service.HandleProviderEvent(ctx, event)
	assert.NoError(t, err)
}

func TestPaymentService_HandleProviderEvent_Paid_DuplicateDelivery(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	event := &usecase.ProviderEvent{
		Type:            usecase.EventPaymentPaid,
		PaymentIntentID: "pi_123",
		PaymentID:       "pay_456",
	}

	intent := &entity.PaymentIntent{
		ID:       1,
		UserID:   uuid.New(),
		IntentID: "pi_123",
	}

	fx.paymentRepo.EXPECT().ResolveIntent(ctx, "pi_123").Return(intent, nil)
	fx.paymentRepo.EXPECT().
		CreatePayment(ctx, mock.AnythingOfType("*entity.Payment")).
		Return(repository.ErrDuplicatePayment)

	// A redelivered event is not an error; the provider must see success.
	err := fx.service.HandleProviderEvent(ctx, event)
	assert.NoError(t, err)
}

func TestPaymentService_HandleProviderEvent_Paid_UnresolvedIntent(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	event := &usecase.ProviderEvent{
		Type:            usecase.EventPaymentPaid,
		PaymentIntentID: "pi_unknown",
		PaymentID:       "pay_456",
	}

	fx.paymentRepo.EXPECT().
		ResolveIntent(ctx, "pi_unknown").
		Return(nil, repository.ErrPaymentIntentNotFound)

	err := fx.service.HandleProviderEvent(ctx, event)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrPaymentIntentUnresolved))
}

func TestPaymentService_HandleProviderEvent_Paid_MissingIdentifiers(t *testing.T) {
	fx := createTestPaymentService(t)

	event := &usecase.ProviderEvent{
		Type:      usecase.EventPaymentPaid,
		PaymentID: "pay_456",
	}

	err := fx.service.HandleProviderEvent(context.Background(), event)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestPaymentService_HandleProviderEvent_Failed(t *testing.T) {
	fx := createTestPaymentService(t)

	event := &usecase.ProviderEvent{
		Type:            usecase.EventPaymentFailed,
		PaymentIntentID: "pi_123",
		PaymentID:       "pay_456",
	}

	err := fx.service.HandleProviderEvent(context.Background(), event)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrPaymentDeclined))
}

func TestPaymentService_HandleProviderEvent_UnknownType(t *testing.T) {
	fx := createTestPaymentService(t)

	event := &usecase.ProviderEvent{
		Type: "payment.refunded",
	}

	err := fx.service.HandleProviderEvent(context.Background(), event)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUnknownWebhookEvent))
}

func TestPaymentService_RecordTransaction_Success(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	input := &usecase.CreateTransactionInput{
		UserID:          uuid.New(),
		PaymentID:       "pay_456",
		ReferenceNumber: "ORD000042QK",
		Amount:          129.99,
		PaymentMethod:   "card",
	}

	fx.paymentRepo.EXPECT().
		CreateTransaction(ctx, mock.AnythingOfType("*entity.Transaction")).
		Return(nil)

	transaction, err := fx.service.RecordTransaction(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "pay_456", transaction.PaymentID)
	assert.Equal(t, "ORD000042QK", transaction.ReferenceNumber)
	assert.Equal(t, 129.99, transaction.Amount)
}

func TestPaymentService_RecordTransaction_InvalidAmount(t *testing.T) {
	fx := createTestPaymentService(t)

	input := &usecase.CreateTransactionInput{
		UserID:          uuid.New(),
		PaymentID:       "pay_456",
		ReferenceNumber: "ORD000042QK",
		Amount:          0,
	}

	transaction, err := fx.service.RecordTransaction(context.Background(), input)

	assert.Error(t, err)
	assert.Nil(t, transaction)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestPaymentService_GetTransactionByPaymentID_NotFound(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()

	fx.paymentRepo.EXPECT().
		FindTransactionByPaymentID(ctx, "pay_missing").
		Return(nil, repository.ErrTransactionNotFound)

	transaction, err := fx.service.GetTransactionByPaymentID(ctx, "pay_missing")

	assert.Error(t, err)
	assert.Nil(t, transaction)
	assert.True(t, errors.Is(err, domainerrors.ErrTransactionNotFound))
}
