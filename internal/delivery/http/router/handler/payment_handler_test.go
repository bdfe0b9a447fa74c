package handler

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubPaymentUsecase records the event it receives and replies with a canned error.
type stubPaymentUsecase struct {
	receivedEvent *usecase.ProviderEvent
	handleErr     error
}

func (s *stubPaymentUsecase) RegisterIntent(ctx context.Context, input *usecase.RegisterIntentInput) (*entity.PaymentIntent, error) {
	return nil, nil
}

func (s *stubPaymentUsecase) HandleProviderEvent(ctx context.Context, event *usecase.ProviderEvent) error {
	s.receivedEvent = event

	return s.handleErr
}

func (s *stubPaymentUsecase) RecordTransaction(ctx context.Context, input *usecase.CreateTransactionInput) (*entity.Transaction, error) {
	return nil, nil
}

func (s *stubPaymentUsecase) ListTransactions(ctx context.Context) ([]*entity.Transaction, error) {
	return nil, nil
}

func (s *stubPaymentUsecase) GetTransactionByPaymentID(ctx context.Context, paymentID string) (*entity.Transaction, error) {
	return nil, nil
}

const webhookEnvelope = `{
	"data": {
		"attributes": {
			"type": "payment.paid",
			"data": {
				"id": "pay_456",
				"attributes": {
					"payment_intent_id": "pi_123"
				}
			}
		}
	}
}`

func postWebhook(t *testing.T, stub *stubPaymentUsecase, body string) *httptest.ResponseRecorder {
	t.Helper()

	handler := &PaymentHandler{
		paymentUC: stub,
		logger:    slog.Default(),
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/webhook", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.HandleWebhook(c)
	require.NoError(t, err)

	return rec
}

func TestPaymentHandler_HandleWebhook_FlattensEnvelope(t *testing.T) {
	stub := &stubPaymentUsecase{}

	rec := postWebhook(t, stub, webhookEnvelope)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, stub.receivedEvent)
	assert.Equal(t, "payment.paid", stub.receivedEvent.Type)
	assert.Equal(t, "pi_123", stub.receivedEvent.PaymentIntentID)
	assert.Equal(t, "pay_456", stub.receivedEvent.PaymentID)
}

func TestPaymentHandler_HandleWebhook_FailedEventAnswers409(t *testing.T) {
	stub := &stubPaymentUsecase{
		handleErr: errors.Wrap(domainerrors.ErrPaymentDeclined, "provider reported payment failure"),
	}

	rec := postWebhook(t, stub, webhookEnvelope)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "PAYMENT_DECLINED")
}

func TestPaymentHandler_HandleWebhook_UnresolvedIntentAnswers422(t *testing.T) {
	stub := &stubPaymentUsecase{
		handleErr: errors.Wrap(domainerrors.ErrPaymentIntentUnresolved, "no intent registered for event"),
	}

	rec := postWebhook(t, stub, webhookEnvelope)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "PAYMENT_INTENT_UNRESOLVED")
}

func TestPaymentHandler_HandleWebhook_UnknownEventAnswers400(t *testing.T) {
	stub := &stubPaymentUsecase{
		handleErr: errors.Wrap(domainerrors.ErrUnknownWebhookEvent, "unhandled event type"),
	}

	rec := postWebhook(t, stub, webhookEnvelope)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "UNKNOWN_WEBHOOK_EVENT")
}
