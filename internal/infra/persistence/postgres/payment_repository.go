package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// paymentRepository implements the repository.PaymentRepository interface.
type paymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository is the constructor for paymentRepository.
func NewPaymentRepository(db *gorm.DB) repository.PaymentRepository {
	return &paymentRepository{
		db: db,
	}
}

// RegisterIntent persists a new payment intent. Intent IDs are not unique;
// each registration adds a row and resolution picks the newest.
func (repo *paymentRepository) RegisterIntent(ctx context.Context, intent *entity.PaymentIntent) error {
	ctx, cancel := statementContext(ctx)
	defer cancel()

	intentM := fromPaymentIntentDomain(intent)

	if err := repo.db.WithContext(ctx).Create(intentM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound
		}
		if isStatementTimeout(err) {
			return domainerrors.NewDatabaseTimeoutError(err, "register payment intent")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to register payment intent")
	}

	// Update the entity with generated values
	intent.ID = intentM.ID
	intent.CreatedAt = intentM.CreatedAt

	return nil
}

// ResolveIntent retrieves the most recently registered intent matching the
// provider intent identifier.
func (repo *paymentRepository) ResolveIntent(ctx context.Context, intentID string) (*entity.PaymentIntent, error) {
	ctx, cancel := statementContext(ctx)
	defer cancel()

	var intentM model.PaymentIntentModel

	if err := repo.db.WithContext(ctx).
		Where("payment_intent_id = ?", intentID).
		Order("created_at DESC").
		First(&intentM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPaymentIntentNotFound
		}
		if isStatementTimeout(err) {
			return nil, domainerrors.NewDatabaseTimeoutError(err, "resolve payment intent")
		}

		return nil, errors.Wrap(err, "failed to resolve payment intent")
	}

	return toPaymentIntentDomain(&intentM), nil
}

// CreatePayment appends a payment ledger entry. The unique index on
// payment_id turns a redelivered webhook into ErrDuplicatePayment.
func (repo *paymentRepository) CreatePayment(ctx context.Context, payment *entity.Payment) error {
	ctx, cancel := statementContext(ctx)
	defer cancel()

	paymentM := fromPaymentDomain(payment)

	if err := repo.db.WithContext(ctx).Create(paymentM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicatePayment
		}
		if isStatementTimeout(err) {
			return domainerrors.NewDatabaseTimeoutError(err, "create payment")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create payment")
	}

	payment.ID = paymentM.ID
	payment.CreatedAt = paymentM.CreatedAt

	return nil
}

// CreateTransaction persists a settlement record and backfills the generated ID.
func (repo *paymentRepository) CreateTransaction(ctx context.Context, transaction *entity.Transaction) error {
	ctx, cancel := statementContext(ctx)
	defer cancel()

	transactionM := fromTransactionDomain(transaction)

	if err := repo.db.WithContext(ctx).Create(transactionM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required transaction information")
		}
		if isStatementTimeout(err) {
			return domainerrors.NewDatabaseTimeoutError(err, "create transaction")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create transaction")
	}

	transaction.ID = transactionM.ID
	transaction.CreatedAt = transactionM.CreatedAt

	return nil
}

// FindTransactions retrieves every settlement record, newest first.
func (repo *paymentRepository) FindTransactions(ctx context.Context) ([]*entity.Transaction, error) {
	ctx, cancel := statementContext(ctx)
	defer cancel()

	var transactionModels []*model.TransactionModel

	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&transactionModels).Error; err != nil {
		if isStatementTimeout(err) {
			return nil, domainerrors.NewDatabaseTimeoutError(err, "find transactions")
		}

		return nil, errors.Wrap(err, "failed to find transactions")
	}

	transactions := make([]*entity.Transaction, 0, len(transactionModels))
	for _, transactionM := range transactionModels {
		transactions = append(transactions, toTransactionDomain(transactionM))
	}

	return transactions, nil
}

// FindTransactionByPaymentID retrieves one settlement record by provider payment ID.
func (repo *paymentRepository) FindTransactionByPaymentID(ctx context.Context, paymentID string) (*entity.Transaction, error) {
	ctx, cancel := statementContext(ctx)
	defer cancel()

	var transactionM model.TransactionModel

	if err := repo.db.WithContext(ctx).
		Where("payment_id = ?", paymentID).
		First(&transactionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTransactionNotFound
		}
		if isStatementTimeout(err) {
			return nil, domainerrors.NewDatabaseTimeoutError(err, "find transaction by payment ID")
		}

		return nil, errors.Wrap(err, "failed to find transaction by payment ID")
	}

	return toTransactionDomain(&transactionM), nil
}

// --- Mapper Functions ---

func toPaymentIntentDomain(data *model.PaymentIntentModel) *entity.PaymentIntent {
	if data == nil {
		return nil
	}

	return &entity.PaymentIntent{
		ID:        data.ID,
		UserID:    data.UserID,
		IntentID:  data.IntentID,
		CreatedAt: data.CreatedAt,
	}
}

func fromPaymentIntentDomain(data *entity.PaymentIntent) *model.PaymentIntentModel {
	if data == nil {
		return nil
	}

	return &model.PaymentIntentModel{
		ID:        data.ID,
		UserID:    data.UserID,
		IntentID:  data.IntentID,
		CreatedAt: data.CreatedAt,
	}
}

func toPaymentDomain(data *model.PaymentModel) *entity.Payment {
	if data == nil {
		return nil
	}

	return &entity.Payment{
		ID:        data.ID,
		UserID:    data.UserID,
		IntentID:  data.IntentID,
		PaymentID: data.PaymentID,
		CreatedAt: data.CreatedAt,
	}
}

func fromPaymentDomain(data *entity.Payment) *model.PaymentModel {
	if data == nil {
		return nil
	}

	return &model.PaymentModel{
		ID:        data.ID,
		UserID:    data.UserID,
		IntentID:  data.IntentID,
		PaymentID: data.PaymentID,
		CreatedAt: data.CreatedAt,
	}
}

func toTransactionDomain(data *model.TransactionModel) *entity.Transaction {
	if data == nil {
		return nil
	}

	return &entity.Transaction{
		ID:              data.ID,
		UserID:          data.UserID,
		PaymentID:       data.PaymentID,
		ReferenceNumber: data.ReferenceNumber,
		Amount:          data.Amount,
		PaymentMethod:   data.PaymentMethod,
		CreatedAt:       data.CreatedAt,
	}
}

func fromTransactionDomain(data *entity.Transaction) *model.TransactionModel {
	if data == nil {
		return nil
	}

	return &model.TransactionModel{
		ID:              data.ID,
		UserID:          data.UserID,
		PaymentID:       data.PaymentID,
		ReferenceNumber: data.ReferenceNumber,
		Amount:          data.Amount,
		PaymentMethod:   data.PaymentMethod,
		CreatedAt:       data.CreatedAt,
	}
}
