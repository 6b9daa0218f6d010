package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	errs "github.com/amirhossein-jamali/stars-roulette/internal/domain/error"
	coreport "github.com/amirhossein-jamali/stars-roulette/internal/domain/port/core"
	"github.com/amirhossein-jamali/stars-roulette/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// UserLockRepository implements leased user locks using GORM
type UserLockRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewUserLockRepository creates a new UserLockRepository instance
func NewUserLockRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *UserLockRepository {
	return &UserLockRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// AcquireLock takes or renews the lease of a user. An unexpired lease of a
// different holder leaves the row untouched and yields ErrUserLocked.
func (r *UserLockRepository) AcquireLock(ctx context.Context, userID int64, holder string, duration time.Duration) error {
	now := r.timeProvider.Now()
	expiresAt := now.Add(duration)

	// The upsert only overwrites an expired lease or our own one
	result := r.db.WithContext(ctx).Exec(`
		INSERT INTO user_locks (user_id, holder, locked_at, expires_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (user_id) DO UPDATE
		SET holder = EXCLUDED.holder,
		    locked_at = EXCLUDED.locked_at,
		    expires_at = EXCLUDED.expires_at
		WHERE user_locks.expires_at <= ? OR user_locks.holder = EXCLUDED.holder`,
		userID, holder, now, expiresAt,
		now,
	)

	if result.Error != nil {
		if isContextError(result.Error) {
			return fmt.Errorf("lock acquisition timeout: %w", result.Error)
		}
		r.logger.Error("Database error acquiring lock", map[string]any{
			"user_id": userID,
			"error":   result.Error.Error(),
		})
		return r.errorClassifier.Map(result.Error, errs.ErrUserNotFound, "acquire user lock")
	}

	if result.RowsAffected == 0 {
		r.logger.Debug("User is already locked", map[string]any{
			"user_id": userID,
			"holder":  holder,
		})
		return errs.ErrUserLocked
	}

	r.logger.Debug("Lock acquired", map[string]any{
		"user_id":    userID,
		"holder":     holder,
		"expires_at": expiresAt,
	})
	return nil
}

func isContextError(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
}

// ReleaseLock drops the lease if it is still ours. Failing to release is not
// fatal since the lease expires on its own.
func (r *UserLockRepository) ReleaseLock(ctx context.Context, userID int64, holder string) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND holder = ?", userID, holder).
		Delete(&model.UserLock{})

	if result.Error != nil {
		if isContextError(result.Error) {
			r.logger.Warn("Context ended while releasing lock, lease will expire", map[string]any{
				"user_id": userID,
				"error":   result.Error.Error(),
			})
			return nil
		}
		return r.errorClassifier.Map(result.Error, errs.ErrUserNotFound, "release user lock")
	}
	return nil
}

// CleanupExpired removes every expired lease and reports how many
func (r *UserLockRepository) CleanupExpired(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("expires_at <= ?", r.timeProvider.Now()).
		Delete(&model.UserLock{})
	if result.Error != nil {
		return 0, r.errorClassifier.Map(result.Error, errs.ErrUserNotFound, "cleanup user locks")
	}
	return result.RowsAffected, nil
}
