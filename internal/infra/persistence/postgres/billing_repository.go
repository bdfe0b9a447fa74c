package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// billingRepository implements the repository.BillingAddressRepository interface.
type billingRepository struct {
	db *gorm.DB
}

// NewBillingRepository is the constructor for billingRepository.
func NewBillingRepository(db *gorm.DB) repository.BillingAddressRepository {
	return &billingRepository{
		db: db,
	}
}

// FindByUser retrieves every billing address belonging to a user.
func (repo *billingRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.BillingAddress, error) {
	ctx, cancel := statementContext(ctx)
	defer cancel()

	var addressModels []*model.BillingAddressModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&addressModels).Error; err != nil {
		if isStatementTimeout(err) {
			return nil, domainerrors.NewDatabaseTimeoutError(err, "find billing addresses by user")
		}

		return nil, errors.Wrap(err, "failed to find billing addresses by user")
	}

	addresses := make([]*entity.BillingAddress, 0, len(addressModels))
	for _, addressM := range addressModels {
		addresses = append(addresses, toBillingAddressDomain(addressM))
	}

	return addresses, nil
}

// Create persists a new billing address and backfills the generated ID.
func (repo *billingRepository) Create(ctx context.Context, address *entity.BillingAddress) error {
	ctx, cancel := statementContext(ctx)
	defer cancel()

	addressM := fromBillingAddressDomain(address)

	if err := repo.db.WithContext(ctx).Create(addressM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required billing information")
		}
		if isStatementTimeout(err) {
			return domainerrors.NewDatabaseTimeoutError(err, "create billing address")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create billing address")
	}

	// Update the entity with generated values
	address.ID = addressM.ID
	address.CreatedAt = addressM.CreatedAt

	return nil
}

// Delete removes one billing address of a user. The user filter keeps one
// user from deleting another user's address by guessing IDs.
func (repo *billingRepository) Delete(ctx context.Context, userID uuid.UUID, billingID int64) error {
	ctx, cancel := statementContext(ctx)
	defer cancel()

	result := repo.db.WithContext(ctx).
		Where("user_id = ? AND billing_id = ?", userID, billingID).
		Delete(&model.BillingAddressModel{})

	if result.Error != nil {
		if isStatementTimeout(result.Error) {
			return domainerrors.NewDatabaseTimeoutError(result.Error, "delete billing address")
		}

		return errors.Wrap(result.Error, "failed to delete billing address")
	}

	if result.RowsAffected == 0 {
		return repository.ErrBillingAddressNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toBillingAddressDomain(data *model.BillingAddressModel) *entity.BillingAddress {
	if data == nil {
		return nil
	}

	return &entity.BillingAddress{
		ID:           data.ID,
		UserID:       data.UserID,
		FirstName:    data.FirstName,
		LastName:     data.LastName,
		Email:        data.Email,
		PhoneNumber:  data.PhoneNumber,
		AddressLine1: data.AddressLine1,
		AddressLine2: data.AddressLine2,
		City:         data.City,
		PostalCode:   data.PostalCode,
		CreatedAt:    data.CreatedAt,
	}
}

func fromBillingAddressDomain(data *entity.BillingAddress) *model.BillingAddressModel {
	if data == nil {
		return nil
	}

	return &model.BillingAddressModel{
		ID:           data.ID,
		UserID:       data.UserID,
		FirstName:    data.FirstName,
		LastName:     data.LastName,
		Email:        data.Email,
		PhoneNumber:  data.PhoneNumber,
		AddressLine1: data.AddressLine1,
		AddressLine2: data.AddressLine2,
		City:         data.City,
		PostalCode:   data.PostalCode,
		CreatedAt:    data.CreatedAt,
	}
}
