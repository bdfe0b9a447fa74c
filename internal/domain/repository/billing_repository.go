package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrBillingAddressNotFound is returned when a billing-address lookup matches no row.
var ErrBillingAddressNotFound = errors.New("billing address not found")

// BillingAddressRepository defines the standard operations for billing-address persistence.
type BillingAddressRepository interface {
	// FindByUser retrieves every billing address belonging to a user.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.BillingAddress, error)

	// Create persists a new billing address and backfills the generated ID.
	Create(ctx context.Context, address *entity.BillingAddress) error

	// Delete removes one billing address of a user.
	Delete(ctx context.Context, userID uuid.UUID, billingID int64) error
}
