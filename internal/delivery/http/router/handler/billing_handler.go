package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// BillingHandlerParams holds dependencies for BillingHandler, injected by Fx.
type BillingHandlerParams struct {
	fx.In

	BillingUC usecase.BillingUsecase
	Logger    *slog.Logger
}

// BillingHandler holds dependencies for billing-address handlers
type BillingHandler struct {
	billingUC usecase.BillingUsecase
	logger    *slog.Logger
}

// NewBillingHandler is the constructor for BillingHandler
func NewBillingHandler(params BillingHandlerParams) *BillingHandler {
	return &BillingHandler{
		billingUC: params.BillingUC,
		logger:    params.Logger,
	}
}

// BillingAddressRequest represents the request body for saving a billing address
type BillingAddressRequest struct {
	FirstName    string `json:"first_name" validate:"required"`
	LastName     string `json:"last_name" validate:"required"`
	Email        string `json:"email" validate:"required,email"`
	PhoneNumber  string `json:"phone_number" validate:"required"`
	AddressLine1 string `json:"address_line_1" validate:"required"`
	AddressLine2 string `json:"address_line_2"`
	City         string `json:"city" validate:"required"`
	PostalCode   string `json:"postal_code" validate:"required"`
}

// ListBillingAddresses handles retrieving the user's saved addresses
func (h *BillingHandler) ListBillingAddresses(c echo.Context) error {
	userID, err := parseUserID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid user ID")
	}

	addresses, err := h.billingUC.ListBillingAddresses(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, addresses)
}

// AddBillingAddress handles saving a new billing address
func (h *BillingHandler) AddBillingAddress(c echo.Context) error {
	userID, err := parseUserID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid user ID")
	}

	var req BillingAddressRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid billing address input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	address, err := h.billingUC.AddBillingAddress(c.Request().Context(), &usecase.CreateBillingAddressInput{
		UserID:       userID,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		PhoneNumber:  req.PhoneNumber,
		AddressLine1: req.AddressLine1,
		AddressLine2: req.AddressLine2,
		City:         req.City,
		PostalCode:   req.PostalCode,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, address)
}

// DeleteBillingAddress handles removing one of the user's saved addresses
func (h *BillingHandler) DeleteBillingAddress(c echo.Context) error {
	userID, err := parseUserID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid user ID")
	}

	billingID, err := strconv.ParseInt(c.Param("billing_id"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid billing address ID")
	}

	if err := h.billingUC.DeleteBillingAddress(c.Request().Context(), userID, billingID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Billing address deleted successfully"})
}
