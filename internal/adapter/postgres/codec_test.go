package postgres

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crowd-escrow/internal/core/domain"
)

func TestTranslate(t *testing.T) {
	plain := errors.New("boom")
	tests := []struct {
		name   string
		err    error
		target error
	}{
		{"unique violation", &pgconn.PgError{Code: codeUniqueViolation, ConstraintName: "campaigns_pkey"}, domain.ErrAlreadyExists},
		{"foreign key violation", &pgconn.PgError{Code: codeForeignKeyViolation, ConstraintName: "donations_campaign_fkey"}, domain.ErrNotFound},
		{"wrapped unique violation", fmt.Errorf("insert: %w", &pgconn.PgError{Code: codeUniqueViolation}), domain.ErrAlreadyExists},
		{"other pg error", &pgconn.PgError{Code: codeSerializationFailure}, nil},
		{"plain error", plain, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := translate(tt.err)
			if tt.target == nil {
				assert.Same(t, tt.err, got)
				return
			}
			assert.ErrorIs(t, got, tt.target)
		})
	}

	got := translate(&pgconn.PgError{Code: codeUniqueViolation, ConstraintName: "campaigns_pkey"})
	assert.Contains(t, got.Error(), "campaigns_pkey")
}

func TestIsRetryable(t *testing.T) {
	assert.True(t, isRetryable(&pgconn.PgError{Code: codeSerializationFailure}))
	assert.True(t, isRetryable(&pgconn.PgError{Code: codeDeadlockDetected}))
	assert.True(t, isRetryable(fmt.Errorf("commit: %w", &pgconn.PgError{Code: codeSerializationFailure})))
	assert.False(t, isRetryable(&pgconn.PgError{Code: codeUniqueViolation}))
	assert.False(t, isRetryable(errors.New("conn reset by peer")))
	assert.False(t, isRetryable(nil))
}

func TestNumericRoundTrip(t *testing.T) {
	for _, v := range []uint64{0, 1, 1_000_000, math.MaxUint64} {
		got, err := parseNumeric(numeric(v))
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}
	assert.Equal(t, "18446744073709551615", numeric(math.MaxUint64))

	for _, bad := range []string{"", "-1", "abc", "18446744073709551616", "1.5"} {
		_, err := parseNumeric(bad)
		assert.Error(t, err, bad)
	}
}
