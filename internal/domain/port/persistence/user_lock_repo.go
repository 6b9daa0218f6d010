package persistence

import (
	"context"
	"time"
)

// UserLockRepository manages short-lived per-user leases shared by every
// API replica
type UserLockRepository interface {
	// AcquireLock takes the lease of a user for holder. An expired lease of
	// another holder is taken over.
	//
	// Possible errors:
	// - ErrUserLocked: If another holder owns a live lease
	// - ErrDatabaseConnection: If database connection fails
	AcquireLock(ctx context.Context, userID int64, holder string, duration time.Duration) error

	// ReleaseLock drops the lease if holder still owns it
	ReleaseLock(ctx context.Context, userID int64, holder string) error

	// CleanupExpired deletes leases past their expiry and returns how many
	CleanupExpired(ctx context.Context) (int64, error)
}
