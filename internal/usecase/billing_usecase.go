package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateBillingAddressInput defines the data required to save a billing address.
type CreateBillingAddressInput struct {
	UserID       uuid.UUID
	FirstName    string
	LastName     string
	Email        string
	PhoneNumber  string
	AddressLine1 string
	AddressLine2 string
	City         string
	PostalCode   string
}

// BillingUsecase defines the interface for billing-address business operations.
type BillingUsecase interface {
	ListBillingAddresses(ctx context.Context, userID uuid.UUID) ([]*entity.BillingAddress, error)
	AddBillingAddress(ctx context.Context, input *CreateBillingAddressInput) (*entity.BillingAddress, error)
	DeleteBillingAddress(ctx context.Context, userID uuid.UUID, billingID int64) error
}
