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

// CatalogHandlerParams holds dependencies for CatalogHandler, injected by Fx.
type CatalogHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	Logger    *slog.Logger
}

// CatalogHandler holds dependencies for product-catalog handlers
type CatalogHandler struct {
	catalogUC usecase.CatalogUsecase
	logger    *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler
func NewCatalogHandler(params CatalogHandlerParams) *CatalogHandler {
	return &CatalogHandler{
		catalogUC: params.CatalogUC,
		logger:    params.Logger,
	}
}

// ProductRequest represents the request body for creating or updating a product
type ProductRequest struct {
	Name          string  `json:"name" validate:"required"`
	Description   string  `json:"description"`
	Category      string  `json:"category"`
	Brand         string  `json:"brand"`
	Dimensions    string  `json:"dimensions"`
	Price         float64 `json:"price" validate:"gte=0"`
	StockQuantity int     `json:"stock_quantity" validate:"gte=0"`
	IsVisible     bool    `json:"is_visible"`
	IsFeatured    bool    `json:"is_featured"`
}

func parseProductID(c echo.Context, param string) (int64, error) {
	return strconv.ParseInt(c.Param(param), 10, 64)
}

// ListProducts handles retrieving the public catalog
func (h *CatalogHandler) ListProducts(c echo.Context) error {
	products, err := h.catalogUC.ListVisibleProducts(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, products)
}

// GetProduct handles retrieving a single product
func (h *CatalogHandler) GetProduct(c echo.Context) error {
	id, err := parseProductID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	product, err := h.catalogUC.GetProduct(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, product)
}

// CreateProduct handles adding a catalog item
func (h *CatalogHandler) CreateProduct(c echo.Context) error {
	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	product, err := h.catalogUC.CreateProduct(c.Request().Context(), &usecase.CreateProductInput{
		Name:          req.Name,
		Description:   req.Description,
		Category:      req.Category,
		Brand:         req.Brand,
		Dimensions:    req.Dimensions,
		Price:         req.Price,
		StockQuantity: req.StockQuantity,
		IsVisible:     req.IsVisible,
		IsFeatured:    req.IsFeatured,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, product)
}

// UpdateProduct handles a full product update
func (h *CatalogHandler) UpdateProduct(c echo.Context) error {
	id, err := parseProductID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	product, err := h.catalogUC.UpdateProduct(c.Request().Context(), &usecase.UpdateProductInput{
		ID:            id,
		Name:          req.Name,
		Description:   req.Description,
		Category:      req.Category,
		Brand:         req.Brand,
		Dimensions:    req.Dimensions,
		Price:         req.Price,
		StockQuantity: req.StockQuantity,
		IsVisible:     req.IsVisible,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, product)
}

// DeleteProduct handles removing a catalog item
func (h *CatalogHandler) DeleteProduct(c echo.Context) error {
	id, err := parseProductID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	if err := h.catalogUC.DeleteProduct(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Product deleted successfully"})
}

// FeatureProduct handles marking a product as featured
func (h *CatalogHandler) FeatureProduct(c echo.Context) error {
	id, err := parseProductID(c, "product_id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	if err := h.catalogUC.SetProductFeatured(c.Request().Context(), id, true); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Product featured successfully"})
}

// UnfeatureProduct handles clearing a product's featured flag
func (h *CatalogHandler) UnfeatureProduct(c echo.Context) error {
	id, err := parseProductID(c, "product_id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	if err := h.catalogUC.SetProductFeatured(c.Request().Context(), id, false); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Product unfeatured successfully"})
}
