package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatReference(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "ORD000042QK", formatReference("ORD", 42, "QK"))
	assert.Equal(t, "ORD000001AA", formatReference("ORD", 1, "AA"))
	// Sequence values past six digits widen instead of truncating.
	assert.Equal(t, "ORD1234567ZZ", formatReference("ORD", 1234567, "ZZ"))
}

func TestRandomLetters(t *testing.T) {
	t.Parallel()

	for range 50 {
		suffix := randomLetters(2)
		assert.Len(t, suffix, 2)
		assert.Regexp(t, `^[A-Z]{2}$`, suffix)
	}
}
