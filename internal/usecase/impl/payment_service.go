package impl

import (
	"context"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// paymentService implements the PaymentUsecase interface.
type paymentService struct {
	paymentRepo repository.PaymentRepository
	logger      *slog.Logger
}

// PaymentServiceParams holds dependencies for paymentService, injected by Fx.
type PaymentServiceParams struct {
	fx.In

	PaymentRepo repository.PaymentRepository
	Logger      *slog.Logger
}

// NewPaymentService is the constructor for paymentService.
func NewPaymentService(params PaymentServiceParams) usecase.PaymentUsecase {
	return &paymentService{
		paymentRepo: params.PaymentRepo,
		logger:      params.Logger,
	}
}

func (srv *paymentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterIntent records a provider intent identifier before checkout hands
// off to the provider, so the later webhook can be attributed to a user.
func (srv *paymentService) RegisterIntent(ctx context.Context, input *usecase.RegisterIntentInput) (*entity.PaymentIntent, error) {
	if input.PaymentIntentID == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "payment intent ID is required")
	}

	intent := &entity.PaymentIntent{
		UserID:   input.UserID,
		IntentID: input.PaymentIntentID,
	}

	if err := srv.paymentRepo.RegisterIntent(ctx, intent); err != nil {
		srv.log(ctx).Error("Failed to register payment intent", slog.String("intentID", input.PaymentIntentID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to register payment intent")
	}

	srv.log(ctx).Info("Payment intent registered", slog.String("intentID", intent.IntentID), slog.Any("userID", intent.UserID))

	return intent, nil
}

// HandleProviderEvent reconciles a webhook notification. A paid event books a
// ledger entry for the user who registered the intent; redelivery of the same
// event is detected on the payment ID and reported as success so the provider
// stops retrying. A failed event and an unknown event type both surface as
// errors with distinct status codes.
func (srv *paymentService) HandleProviderEvent(ctx context.Context, event *usecase.ProviderEvent) error {
	switch event.Type {
	case usecase.EventPaymentPaid:
		return srv.handlePaymentPaid(ctx, event)
	case usecase.EventPaymentFailed:
		srv.log(ctx).Warn("Provider reported payment failure", slog.String("intentID", event.PaymentIntentID), slog.String("paymentID", event.PaymentID))

		return errors.Wrap(domainerrors.ErrPaymentDeclined, "provider reported payment failure")
	default:
		srv.log(ctx).Warn("Unknown webhook event type", slog.String("type", event.Type))

		return errors.Wrap(domainerrors.ErrUnknownWebhookEvent, "unhandled event type")
	}
}

func (srv *paymentService) handlePaymentPaid(ctx context.Context, event *usecase.ProviderEvent) error {
	if event.PaymentIntentID == "" || event.PaymentID == "" {
		return errors.Wrap(domainerrors.ErrValidationFailed, "event is missing payment identifiers")
	}

	intent, err := srv.paymentRepo.ResolveIntent(ctx, event.PaymentIntentID)
	if err != nil {
		if errors.Is(err, repository.ErrPaymentIntentNotFound) {
			srv.log(ctx).Warn("Webhook references unregistered intent", slog.String("intentID", event.PaymentIntentID))

			return errors.Wrap(domainerrors.ErrPaymentIntentUnresolved, "no intent registered for event")
		}

		return errors.Wrap(err, "failed to resolve payment intent")
	}

	payment := &entity.Payment{
		UserID:    intent.UserID,
		IntentID:  event.PaymentIntentID,
		PaymentID: event.PaymentID,
	}

	if err := srv.paymentRepo.CreatePayment(ctx, payment); err != nil {
		if errors.Is(err, repository.ErrDuplicatePayment) {
			// Redelivered event: the payment is already booked. Succeed so
			// the provider stops retrying.
			srv.log(ctx).Info("Duplicate webhook delivery ignored", slog.String("paymentID", event.PaymentID))

			return nil
		}

		return errors.Wrap(err, "failed to record payment")
	}

	srv.log(ctx).Info("Payment recorded", slog.String("paymentID", payment.PaymentID), slog.Any("userID", payment.UserID))

	return nil
}

// RecordTransaction persists the settlement details a client reports after
// checkout completes.
func (srv *paymentService) RecordTransaction(ctx context.Context, input *usecase.CreateTransactionInput) (*entity.Transaction, error) {
	if input.PaymentID == "" || input.ReferenceNumber == "" || input.Amount <= 0 {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "payment ID, reference number and positive amount are required")
	}

	transaction := &entity.Transaction{
		UserID:          input.UserID,
		PaymentID:       input.PaymentID,
		ReferenceNumber: input.ReferenceNumber,
		Amount:          input.Amount,
		PaymentMethod:   input.PaymentMethod,
	}

	if err := srv.paymentRepo.CreateTransaction(ctx, transaction); err != nil {
		srv.log(ctx).Error("Failed to record transaction", slog.String("paymentID", input.PaymentID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to record transaction")
	}

	return transaction, nil
}

// ListTransactions returns every settlement record.
func (srv *paymentService) ListTransactions(ctx context.Context) ([]*entity.Transaction, error) {
	transactions, err := srv.paymentRepo.FindTransactions(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list transactions")
	}

	return transactions, nil
}

// GetTransactionByPaymentID returns one settlement record by provider payment ID.
func (srv *paymentService) GetTransactionByPaymentID(ctx context.Context, paymentID string) (*entity.Transaction, error) {
	transaction, err := srv.paymentRepo.FindTransactionByPaymentID(ctx, paymentID)
	if err != nil {
		if errors.Is(err, repository.ErrTransactionNotFound) {
			return nil, errors.Wrap(domainerrors.ErrTransactionNotFound, "transaction lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find transaction by payment ID")
	}

	return transaction, nil
}
