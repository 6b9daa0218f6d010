package repository

import (
	"context"
	"errors"
	"fmt"
	"testing"

	errs "github.com/amirhossein-jamali/stars-roulette/internal/domain/error"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestErrorClassifier_Classify(t *testing.T) {
	c := NewErrorClassifier()

	testCases := []struct {
		name string
		err  error
		want ErrorType
	}{
		{"nil", nil, ""},
		{"unique violation", &pgconn.PgError{Code: pgerrcode.UniqueViolation}, DuplicateKeyError},
		{"wrapped unique violation", fmt.Errorf("insert: %w", &pgconn.PgError{Code: pgerrcode.UniqueViolation}), DuplicateKeyError},
		{"deadlock", &pgconn.PgError{Code: pgerrcode.DeadlockDetected}, LockError},
		{"serialization", &pgconn.PgError{Code: pgerrcode.SerializationFailure}, LockError},
		{"connection exception", &pgconn.PgError{Code: pgerrcode.ConnectionFailure}, TransientError},
		{"check violation", &pgconn.PgError{Code: pgerrcode.CheckViolation}, ConstraintError},
		{"message fallback duplicate", errors.New(`duplicate key value violates unique constraint "uq_payments_charge_id"`), DuplicateKeyError},
		{"message fallback reset", errors.New("read: connection reset by peer"), TransientError},
		{"unknown", errors.New("something else"), ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, c.Classify(tc.err))
		})
	}
}

func TestErrorClassifier_Map(t *testing.T) {
	c := NewErrorClassifier()

	assert.NoError(t, c.Map(nil, errs.ErrUserNotFound, "get user"))
	assert.ErrorIs(t, c.Map(gorm.ErrRecordNotFound, errs.ErrUserNotFound, "get user"), errs.ErrUserNotFound)
	assert.ErrorIs(t, c.Map(&pgconn.PgError{Code: pgerrcode.LockNotAvailable}, errs.ErrUserNotFound, "lock"), errs.ErrUserLocked)
	assert.ErrorIs(t, c.Map(&pgconn.PgError{Code: pgerrcode.CheckViolation}, nil, "update"), errs.ErrConstraintViolation)
	assert.ErrorIs(t, c.Map(context.Canceled, nil, "update"), context.Canceled)
	assert.ErrorIs(t, c.Map(errors.New("boom"), nil, "update"), errs.ErrDatabaseConnection)
}
