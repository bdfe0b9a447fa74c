package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrOrderNotFound is returned when an order lookup matches no row.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository defines the standard operations for order persistence.
// Create and AddLineItems are separate statements so the use case can run
// them inside one transaction via the TransactionManager.
type OrderRepository interface {
	// Create persists a new order row and backfills the generated ID.
	Create(ctx context.Context, order *entity.Order) error

	// AddLineItems persists the line items of an order, linked by reference number.
	AddLineItems(ctx context.Context, items []*entity.LineItem) error

	// FindByReference retrieves a single order by its reference number.
	FindByReference(ctx context.Context, referenceNumber string) (*entity.Order, error)

	// FindByUser retrieves all orders belonging to a user.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)

	// FindAll retrieves every order across all users.
	FindAll(ctx context.Context) ([]*entity.Order, error)

	// FindLineItems retrieves the line items of a set of orders in one query.
	FindLineItems(ctx context.Context, referenceNumbers []string) ([]*entity.LineItem, error)

	// MarkCompleted transitions an order to completed. Calling it on an
	// already-completed order is a no-op; a missing order yields ErrOrderNotFound.
	MarkCompleted(ctx context.Context, referenceNumber string) error
}
