package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// Provider webhook event types the backend understands. Anything else is
// rejected outright so silently dropped events never look healthy.
const (
	EventPaymentPaid   = "payment.paid"
	EventPaymentFailed = "payment.failed"
)

// --- Input DTOs ---

// RegisterIntentInput defines the data required to register a payment intent
// before checkout redirects to the provider.
type RegisterIntentInput struct {
	UserID          uuid.UUID
	PaymentIntentID string
}

// ProviderEvent is a webhook notification flattened out of the provider's
// nested envelope by the delivery layer.
type ProviderEvent struct {
	Type            string
	PaymentIntentID string
	PaymentID       string
}

// CreateTransactionInput defines the settlement details a client reports
// after checkout completes.
type CreateTransactionInput struct {
	UserID          uuid.UUID
	PaymentID       string
	ReferenceNumber string
	Amount          float64
	PaymentMethod   string
}

// PaymentUsecase defines the interface for payment business operations.
type PaymentUsecase interface {
	RegisterIntent(ctx context.Context, input *RegisterIntentInput) (*entity.PaymentIntent, error)

	// HandleProviderEvent reconciles a webhook event against registered
	// intents. Redelivered events succeed without double-booking; events
	// whose intent cannot be resolved fail so the provider retries later.
	HandleProviderEvent(ctx context.Context, event *ProviderEvent) error

	RecordTransaction(ctx context.Context, input *CreateTransactionInput) (*entity.Transaction, error)
	ListTransactions(ctx context.Context) ([]*entity.Transaction, error)
	GetTransactionByPaymentID(ctx context.Context, paymentID string) (*entity.Transaction, error)
}
