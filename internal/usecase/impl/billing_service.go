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

// billingService implements the BillingUsecase interface.
type billingService struct {
	billingRepo repository.BillingAddressRepository
	logger      *slog.Logger
}

// BillingServiceParams holds dependencies for billingService, injected by Fx.
type BillingServiceParams struct {
	fx.In

	BillingRepo repository.BillingAddressRepository
	Logger      *slog.Logger
}

// NewBillingService is the constructor for billingService.
func NewBillingService(params BillingServiceParams) usecase.BillingUsecase {
	return &billingService{
		billingRepo: params.BillingRepo,
		logger:      params.Logger,
	}
}

func (srv *billingService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListBillingAddresses returns every billing address of a user.
func (srv *billingService) ListBillingAddresses(ctx context.Context, userID uuid.UUID) ([]*entity.BillingAddress, error) {
	addresses, err := srv.billingRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list billing addresses")
	}

	return addresses, nil
}

// AddBillingAddress saves a new billing address for a user.
func (srv *billingService) AddBillingAddress(ctx context.Context, input *usecase.CreateBillingAddressInput) (*entity.BillingAddress, error) {
	if input.FirstName == "" || input.LastName == "" || input.Email == "" ||
		input.PhoneNumber == "" || input.AddressLine1 == "" || input.City == "" || input.PostalCode == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "missing required billing fields")
	}

	address := &entity.BillingAddress{
		UserID:       input.UserID,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        input.Email,
		PhoneNumber:  input.PhoneNumber,
		AddressLine1: input.AddressLine1,
		AddressLine2: input.AddressLine2,
		City:         input.City,
		PostalCode:   input.PostalCode,
	}

	if err := srv.billingRepo.Create(ctx, address); err != nil {
		srv.log(ctx).Warn("Failed to create billing address", slog.Any("userID", input.UserID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create billing address")
	}

	return address, nil
}

// DeleteBillingAddress removes one billing address of a user.
func (srv *billingService) DeleteBillingAddress(ctx context.Context, userID uuid.UUID, billingID int64) error {
	if err := srv.billingRepo.Delete(ctx, userID, billingID); err != nil {
		if errors.Is(err, repository.ErrBillingAddressNotFound) {
			return errors.Wrap(domainerrors.ErrBillingAddressNotFound, "billing address delete failed")
		}

		return errors.Wrap(err, "failed to delete billing address")
	}

	return nil
}
