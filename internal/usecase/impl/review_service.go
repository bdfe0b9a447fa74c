package impl

import (
	"context"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	minRating = 1
	maxRating = 5

	// Shown when the reviewer's account no longer exists.
	anonymousReviewer = "Anonymous"
	// Shown on the requesting user's own reviews.
	ownReviewer = "You"
)

// reviewService implements the ReviewUsecase interface.
type reviewService struct {
	reviewRepo  repository.ReviewRepository
	userRepo    repository.UserRepository
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// ReviewServiceParams holds dependencies for reviewService, injected by Fx.
type ReviewServiceParams struct {
	fx.In

	ReviewRepo  repository.ReviewRepository
	UserRepo    repository.UserRepository
	ProductRepo repository.ProductRepository
	Logger      *slog.Logger
}

// NewReviewService is the constructor for reviewService.
func NewReviewService(params ReviewServiceParams) usecase.ReviewUsecase {
	return &reviewService{
		reviewRepo:  params.ReviewRepo,
		userRepo:    params.UserRepo,
		productRepo: params.ProductRepo,
		logger:      params.Logger,
	}
}

func (srv *reviewService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListProductReviews returns the reviews of a product with reviewer names
// resolved through one batched user lookup, never one query per review.
func (srv *reviewService) ListProductReviews(ctx context.Context, productID int64, requestingUserID uuid.UUID) ([]*usecase.ReviewView, error) {
	reviews, err := srv.reviewRepo.FindByProduct(ctx, productID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load product reviews")
	}

	userIDs := make([]uuid.UUID, 0, len(reviews))
	seen := make(map[uuid.UUID]struct{}, len(reviews))
	for _, review := range reviews {
		if _, ok := seen[review.UserID]; ok {
			continue
		}
		seen[review.UserID] = struct{}{}
		userIDs = append(userIDs, review.UserID)
	}

	reviewers, err := srv.userRepo.FindByIDs(ctx, userIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load reviewer names")
	}

	namesByID := make(map[uuid.UUID]string, len(reviewers))
	for _, reviewer := range reviewers {
		namesByID[reviewer.ID] = reviewer.FullName()
	}

	views := make([]*usecase.ReviewView, 0, len(reviews))
	for _, review := range reviews {
		name := anonymousReviewer
		if review.UserID == requestingUserID {
			name = ownReviewer
		} else if resolved, ok := namesByID[review.UserID]; ok {
			name = resolved
		}

		views = append(views, &usecase.ReviewView{
			ID:           review.ID,
			ReviewerName: name,
			Rating:       review.Rating,
			Comment:      review.Comment,
			CreatedAt:    review.CreatedAt,
		})
	}

	return views, nil
}

// AddReview posts a review on a product.
func (srv *reviewService) AddReview(ctx context.Context, input *usecase.CreateReviewInput) (*entity.Review, error) {
	if input.Rating < minRating || input.Rating > maxRating {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "rating must be between 1 and 5")
	}

	if _, err := srv.productRepo.FindByID(ctx, input.ProductID); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProductNotFound, "cannot review missing product")
		}

		return nil, errors.Wrap(err, "failed to verify product before reviewing")
	}

	review := &entity.Review{
		UserID:    input.UserID,
		ProductID: input.ProductID,
		Rating:    input.Rating,
		Comment:   input.Comment,
	}

	if err := srv.reviewRepo.Create(ctx, review); err != nil {
		srv.log(ctx).Warn("Failed to create review", slog.Int64("productID", input.ProductID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create review")
	}

	return review, nil
}
