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

// ReviewHandlerParams holds dependencies for ReviewHandler, injected by Fx.
type ReviewHandlerParams struct {
	fx.In

	ReviewUC usecase.ReviewUsecase
	Logger   *slog.Logger
}

// ReviewHandler holds dependencies for product-review handlers
type ReviewHandler struct {
	reviewUC usecase.ReviewUsecase
	logger   *slog.Logger
}

// NewReviewHandler is the constructor for ReviewHandler
func NewReviewHandler(params ReviewHandlerParams) *ReviewHandler {
	return &ReviewHandler{
		reviewUC: params.ReviewUC,
		logger:   params.Logger,
	}
}

// CreateReviewRequest represents the request body for posting a review
type CreateReviewRequest struct {
	UserID  uuid.UUID `json:"user_id" validate:"required"`
	Rating  int       `json:"rating" validate:"required,gte=1,lte=5"`
	Comment string    `json:"comment"`
}

// ListProductReviews handles retrieving a product's reviews with reviewer names
func (h *ReviewHandler) ListProductReviews(c echo.Context) error {
	productID, err := parseProductID(c, "product_id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	// The requesting user's own reviews are attributed as "You".
	requestingUserID, err := uuid.Parse(c.Param("user_id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid user ID")
	}

	reviews, err := h.reviewUC.ListProductReviews(c.Request().Context(), productID, requestingUserID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, reviews)
}

// AddReview handles posting a review on a product
func (h *ReviewHandler) AddReview(c echo.Context) error {
	productID, err := parseProductID(c, "product_id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	var req CreateReviewRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid review input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	review, err := h.reviewUC.AddReview(c.Request().Context(), &usecase.CreateReviewInput{
		UserID:    req.UserID,
		ProductID: productID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, review)
}
