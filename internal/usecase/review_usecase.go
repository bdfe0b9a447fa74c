package usecase

import (
	"context"
	"time"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateReviewInput defines the data required to post a review.
type CreateReviewInput struct {
	UserID    uuid.UUID
	ProductID int64
	Rating    int
	Comment   string
}

// ReviewView is a review decorated with its reviewer's display name. The
// requesting user sees their own reviews attributed as "You".
type ReviewView struct {
	ID           int64     `json:"id"`
	ReviewerName string    `json:"reviewer_name"`
	Rating       int       `json:"rating"`
	Comment      string    `json:"comment"`
	CreatedAt    time.Time `json:"created_at"`
}

// ReviewUsecase defines the interface for product-review business operations.
type ReviewUsecase interface {
	// ListProductReviews returns the reviews of a product with reviewer names
	// resolved in one batched user lookup.
	ListProductReviews(ctx context.Context, productID int64, requestingUserID uuid.UUID) ([]*ReviewView, error)

	AddReview(ctx context.Context, input *CreateReviewInput) (*entity.Review, error)
}
