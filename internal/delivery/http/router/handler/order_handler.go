package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrderUC usecase.OrderUsecase
	Logger  *slog.Logger
}

// OrderHandler holds dependencies for order handlers
type OrderHandler struct {
	orderUC usecase.OrderUsecase
	logger  *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{
		orderUC: params.OrderUC,
		logger:  params.Logger,
	}
}

// OrderLineRequest is one (product, quantity) pair in an order request
type OrderLineRequest struct {
	ProductID int64 `json:"product_id" validate:"required,gt=0"`
	Quantity  int   `json:"quantity" validate:"required,gt=0"`
}

// CreateOrderRequest represents the request body for placing an order
type CreateOrderRequest struct {
	Products []OrderLineRequest `json:"products" validate:"required,min=1,dive"`
}

// CreateOrder handles placing a new order
func (h *OrderHandler) CreateOrder(c echo.Context) error {
	userID, err := parseUserID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid user ID")
	}

	var req CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	items := make([]usecase.LineItemInput, 0, len(req.Products))
	for _, line := range req.Products {
		items = append(items, usecase.LineItemInput{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
		})
	}

	output, err := h.orderUC.CreateOrder(c.Request().Context(), &usecase.CreateOrderInput{
		UserID: userID,
		Items:  items,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, output)
}

// GetOrder handles retrieving a single order by its reference number
func (h *OrderHandler) GetOrder(c echo.Context) error {
	referenceNumber := c.Param("reference_number")
	if referenceNumber == "" {
		return response.BadRequest(c, "INVALID_ID", "Reference number is required")
	}

	order, err := h.orderUC.GetOrder(c.Request().Context(), referenceNumber)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order)
}

// ListUserOrders handles retrieving a user's orders with product details
func (h *OrderHandler) ListUserOrders(c echo.Context) error {
	userID, err := parseUserID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid user ID")
	}

	orders, err := h.orderUC.ListUserOrders(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, orders)
}

// ListAllOrders handles retrieving every order in the system
func (h *OrderHandler) ListAllOrders(c echo.Context) error {
	orders, err := h.orderUC.ListAllOrders(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, orders)
}

// CompleteOrder handles transitioning an order to completed
func (h *OrderHandler) CompleteOrder(c echo.Context) error {
	referenceNumber := c.Param("reference_number")
	if referenceNumber == "" {
		return response.BadRequest(c, "INVALID_ID", "Reference number is required")
	}

	if err := h.orderUC.CompleteOrder(c.Request().Context(), referenceNumber); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Order completed successfully"})
}
