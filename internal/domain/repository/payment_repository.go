package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"
)

// ErrPaymentIntentNotFound is returned when no registered intent matches a
// provider intent identifier.
var ErrPaymentIntentNotFound = errors.New("payment intent not found")

// ErrDuplicatePayment is returned when a payment insert collides with an
// existing row for the same provider payment ID. Callers treat it as
// "already processed", not as a failure.
var ErrDuplicatePayment = errors.New("payment already recorded")

// ErrTransactionNotFound is returned when a transaction lookup matches no row.
var ErrTransactionNotFound = errors.New("transaction not found")

// PaymentRepository defines the standard operations for payment-intent,
// payment-ledger, and transaction persistence.
type PaymentRepository interface {
	// RegisterIntent persists a new payment intent.
	RegisterIntent(ctx context.Context, intent *entity.PaymentIntent) error

	// ResolveIntent retrieves the most recently registered intent matching the
	// provider intent identifier. Registration is not unique per intent ID, so
	// recency ordering keeps resolution deterministic.
	ResolveIntent(ctx context.Context, intentID string) (*entity.PaymentIntent, error)

	// CreatePayment appends a payment ledger entry. A provider payment ID that
	// was already recorded yields ErrDuplicatePayment.
	CreatePayment(ctx context.Context, payment *entity.Payment) error

	// CreateTransaction persists a settlement record and backfills the generated ID.
	CreateTransaction(ctx context.Context, transaction *entity.Transaction) error

	// FindTransactions retrieves every settlement record.
	FindTransactions(ctx context.Context) ([]*entity.Transaction, error)

	// FindTransactionByPaymentID retrieves one settlement record by provider payment ID.
	FindTransactionByPaymentID(ctx context.Context, paymentID string) (*entity.Transaction, error)
}
