package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// reviewServiceFixtures holds all test dependencies for review service tests.
type reviewServiceFixtures struct {
	service     usecase.ReviewUsecase
	reviewRepo  *mockRepo.MockReviewRepository
	userRepo    *mockRepo.MockUserRepository
	productRepo *mockRepo.MockProductRepository
}

func createTestReviewService(t *testing.T) reviewServiceFixtures {
	reviewRepo := mockRepo.NewMockReviewRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)

	service := NewReviewService(ReviewServiceParams{
		ReviewRepo:  reviewRepo,
		UserRepo:    userRepo,
		ProductRepo: productRepo,
		Logger:      newDiscardLogger(),
	})

	return reviewServiceFixtures{
		service:     service,
		reviewRepo:  reviewRepo,
		userRepo:    userRepo,
		productRepo: productRepo,
	}
}

func TestReviewService_ListProductReviews_ResolvesNames(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	requestingUserID := uuid.New()
	otherUserID := uuid.New()
	deletedUserID := uuid.New()

	reviews := []*entity.Review{
		{ID: 1, UserID: requestingUserID, ProductID: 1, Rating: 5, Comment: "Great"},
		{ID: 2, UserID: otherUserID, ProductID: 1, Rating: 3, Comment: "Okay"},
		{ID: 3, UserID: deletedUserID, ProductID: 1, Rating: 1, Comment: "Bad"},
	}

	// The deleted user's account no longer resolves.
	reviewers := []*entity.User{
		{ID: requestingUserID, FirstName: "Req", LastName: "User"},
		{ID: otherUserID, FirstName: "Jane", LastName: "Smith"},
	}

	fx.reviewRepo.EXPECT().FindByProduct(ctx, int64(1)).Return(reviews, nil)
	fx.userRepo.EXPECT().
		FindByIDs(ctx, []uuid.UUID{requestingUserID, otherUserID, deletedUserID}).
		Return(reviewers, nil)

	views, err := fx.service.ListProductReviews(ctx, 1, requestingUserID)

	require.NoError(t, err)
	require.Len(t, views, 3)
	assert.Equal(t, "You", views[0].ReviewerName)
	assert.Equal(t, "Jane Smith", views[1].ReviewerName)
	assert.Equal(t, "Anonymous", views[2].ReviewerName)
}

func TestReviewService_ListProductReviews_DeduplicatesReviewerLookup(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	reviewerID := uuid.New()

	reviews := []*entity.Review{
		{ID: 1, UserID: reviewerID, ProductID: 1, Rating: 4},
		{ID: 2, UserID: reviewerID, ProductID: 1, Rating: 5},
	}

	reviewers := []*entity.User{
		{ID: reviewerID, FirstName: "Jane", LastName: "Smith"},
	}

	fx.reviewRepo.EXPECT().FindByProduct(ctx, int64(1)).Return(reviews, nil)
	// The repeated reviewer appears once in the batched lookup.
	fx.userRepo.EXPECT().FindByIDs(ctx, []uuid.UUID{reviewerID}).Return(reviewers, nil)

	views, err := fx.service.ListProductReviews(ctx, 1, uuid.New())

	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, "Jane Smith", views[0].ReviewerName)
	assert.Equal(t, "Jane Smith", views[1].ReviewerName)
}

func TestReviewService_AddReview_Success(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	input := &usecase.CreateReviewInput{
		UserID:    uuid.New(),
		ProductID: 1,
		Rating:    4,
		Comment:   "Solid product",
	}

	fx.productRepo.EXPECT().FindByID(ctx, int64(1)).Return(&entity.Product{ID: 1}, nil)
	fx.reviewRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Review")).
		Return(nil)

	review, err := fx.service.AddReview(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, 4, review.Rating)
	assert.Equal(t, input.UserID, review.UserID)
}

func TestReviewService_AddReview_RatingOutOfRange(t *testing.T) {
	fx := createTestReviewService(t)

	input := &usecase.CreateReviewInput{
		UserID:    uuid.New(),
		ProductID: 1,
		Rating:    6,
	}

	review, err := fx.service.AddReview(context.Background(), input)

	assert.Error(t, err)
	assert.Nil(t, review)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestReviewService_AddReview_UnknownProduct(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	input := &usecase.CreateReviewInput{
		UserID:    uuid.New(),
		ProductID: 99,
		Rating:    3,
	}

	fx.productRepo.EXPECT().FindByID(ctx, int64(99)).Return(nil, repository.ErrProductNotFound)

	review, err := fx.service.AddReview(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, review)
	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
}
