package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PaymentHandlerParams holds dependencies for PaymentHandler, injected by Fx.
type PaymentHandlerParams struct {
	fx.In

	PaymentUC usecase.PaymentUsecase
	Logger    *slog.Logger
}

// PaymentHandler holds dependencies for payment and webhook handlers
type PaymentHandler struct {
	paymentUC usecase.PaymentUsecase
	logger    *slog.Logger
}

// NewPaymentHandler is the constructor for PaymentHandler
func NewPaymentHandler(params PaymentHandlerParams) *PaymentHandler {
	return &PaymentHandler{
		paymentUC: params.PaymentUC,
		logger:    params.Logger,
	}
}

// RegisterIntentRequest represents the request body for registering a payment intent
type RegisterIntentRequest struct {
	UserID          uuid.UUID `json:"user_id" validate:"required"`
	PaymentIntentID string    `json:"payment_intent_id" validate:"required"`
}

// WebhookRequest mirrors the provider's nested event envelope. The event type,
// intent identifier and payment identifier each live at a different depth.
type WebhookRequest struct {
	Data struct {
		Attributes struct {
			Type string `json:"type"`
			Data struct {
				ID         string `json:"id"`
				Attributes struct {
					PaymentIntentID string `json:"payment_intent_id"`
				} `json:"attributes"`
			} `json:"data"`
		} `json:"attributes"`
	} `json:"data"`
}

// CreateTransactionRequest represents the request body for recording a settlement
type CreateTransactionRequest struct {
	PaymentID       string  `json:"payment_id" validate:"required"`
	ReferenceNumber string  `json:"reference_number" validate:"required"`
	Amount          float64 `json:"amount" validate:"required,gt=0"`
	PaymentMethod   string  `json:"payment_method"`
}

// RegisterIntent handles registering a provider intent before checkout
func (h *PaymentHandler) RegisterIntent(c echo.Context) error {
	var req RegisterIntentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid payment intent input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	intent, err := h.paymentUC.RegisterIntent(c.Request().Context(), &usecase.RegisterIntentInput{
		UserID:          req.UserID,
		PaymentIntentID: req.PaymentIntentID,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, intent)
}

// HandleWebhook handles provider payment notifications. A redelivered paid
// event answers 200 so the provider stops retrying.
func (h *PaymentHandler) HandleWebhook(c echo.Context) error {
	var req WebhookRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid webhook payload")
	}

	event := &usecase.ProviderEvent{
		Type:            req.Data.Attributes.Type,
		PaymentIntentID: req.Data.Attributes.Data.Attributes.PaymentIntentID,
		PaymentID:       req.Data.Attributes.Data.ID,
	}

	if err := h.paymentUC.HandleProviderEvent(c.Request().Context(), event); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Webhook processed successfully"})
}

// RecordTransaction handles recording settlement details after checkout
func (h *PaymentHandler) RecordTransaction(c echo.Context) error {
	userID, err := parseUserID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid user ID")
	}

	var req CreateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid transaction input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	transaction, err := h.paymentUC.RecordTransaction(c.Request().Context(), &usecase.CreateTransactionInput{
		UserID:          userID,
		PaymentID:       req.PaymentID,
		ReferenceNumber: req.ReferenceNumber,
		Amount:          req.Amount,
		PaymentMethod:   req.PaymentMethod,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, transaction)
}

// ListTransactions handles retrieving every settlement record
func (h *PaymentHandler) ListTransactions(c echo.Context) error {
	transactions, err := h.paymentUC.ListTransactions(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, transactions)
}

// GetTransaction handles retrieving one settlement record by provider payment ID
func (h *PaymentHandler) GetTransaction(c echo.Context) error {
	paymentID := c.Param("payment_id")
	if paymentID == "" {
		return response.BadRequest(c, "INVALID_ID", "Payment ID is required")
	}

	transaction, err := h.paymentUC.GetTransactionByPaymentID(c.Request().Context(), paymentID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, transaction)
}
