package pg

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/MaxwellWhoSquats/acex/internal/domain"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		transient bool
	}{
		{"serialization failure", &pgconn.PgError{Code: "40001"}, true},
		{"deadlock", &pgconn.PgError{Code: "40P01"}, true},
		{"admin shutdown", &pgconn.PgError{Code: "57P01"}, true},
		{"too many connections", &pgconn.PgError{Code: "53300"}, true},
		{"connection failure class", &pgconn.PgError{Code: "08006"}, true},
		{"wrapped deadlock", fmt.Errorf("apply delta: %w", &pgconn.PgError{Code: "40P01"}), true},
		{"deadline", context.DeadlineExceeded, true},
		{"check violation", &pgconn.PgError{Code: "23514"}, false},
		{"unique violation", &pgconn.PgError{Code: "23505"}, false},
		{"no rows", pgx.ErrNoRows, false},
		{"plain", errors.New("boom"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.transient, IsTransient(tt.err))

			got := Classify(tt.err)
			assert.Equal(t, tt.transient, errors.Is(got, domain.ErrStoreUnavailable))
			assert.ErrorIs(t, got, tt.err)
		})
	}

	assert.NoError(t, Classify(nil))
	already := fmt.Errorf("%w: x", domain.ErrStoreUnavailable)
	assert.Same(t, already, Classify(already))
}

func TestIsOutOfRange(t *testing.T) {
	assert.True(t, IsOutOfRange(fmt.Errorf("apply delta: %w", &pgconn.PgError{Code: "22003"})))
	assert.False(t, IsOutOfRange(&pgconn.PgError{Code: "23514"}))
	assert.False(t, IsOutOfRange(errors.New("boom")))
	assert.False(t, IsTransient(&pgconn.PgError{Code: "22003"}))
}
