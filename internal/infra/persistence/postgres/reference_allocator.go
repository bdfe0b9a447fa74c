package postgres

import (
	"context"
	"fmt"
	"math/rand/v2"

	"storefront/config"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const defaultReferencePrefix = "ORD"

// sequenceReferenceAllocator implements service.ReferenceAllocator on top of a
// PostgreSQL sequence. nextval() is atomic across connections, so concurrent
// allocations can never hand out the same number.
type sequenceReferenceAllocator struct {
	db     *gorm.DB
	prefix string
}

// NewReferenceAllocator is the constructor for sequenceReferenceAllocator.
func NewReferenceAllocator(db *gorm.DB, cfg *config.Config) service.ReferenceAllocator {
	prefix := defaultReferencePrefix
	if cfg != nil && cfg.Order != nil && cfg.Order.ReferencePrefix != "" {
		prefix = cfg.Order.ReferencePrefix
	}

	return &sequenceReferenceAllocator{
		db:     db,
		prefix: prefix,
	}
}

// NextReferenceNumber fetches the next sequence value and formats it with the
// configured prefix and a two-letter random suffix.
func (a *sequenceReferenceAllocator) NextReferenceNumber(ctx context.Context) (string, error) {
	ctx, cancel := statementContext(ctx)
	defer cancel()

	var next int64
	if err := a.db.WithContext(ctx).
		Raw("SELECT nextval(?)", referenceSequence).
		Scan(&next).Error; err != nil {
		if isStatementTimeout(err) {
			return "", domainerrors.NewDatabaseTimeoutError(err, "fetch next order reference value")
		}

		return "", errors.Wrap(err, "failed to fetch next order reference value")
	}

	return formatReference(a.prefix, next, randomLetters(2)), nil
}

// formatReference builds e.g. "ORD000042QK". Values beyond six digits simply
// widen the number; the format never truncates.
func formatReference(prefix string, seq int64, suffix string) string {
	return fmt.Sprintf("%s%06d%s", prefix, seq, suffix)
}

func randomLetters(n int) string {
	letters := make([]byte, n)
	for i := range letters {
		letters[i] = byte('A' + rand.IntN(26))
	}

	return string(letters)
}
