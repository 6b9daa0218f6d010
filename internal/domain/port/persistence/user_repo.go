package persistence

import (
	"context"

	"github.com/amirhossein-jamali/stars-roulette/internal/domain/entity"
)

// UserRepository defines the methods to read and mutate user rows
type UserRepository interface {
	// GetByID retrieves a user by Telegram id
	//
	// Possible errors:
	// - ErrUserNotFound: If user with specified ID doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	GetByID(ctx context.Context, id int64) (*entity.User, error)

	// GetForUpdate retrieves a user and holds its row lock until the
	// surrounding transaction ends. Every mutation of balance or tickets
	// must read the user through this method.
	//
	// Possible errors:
	// - ErrUserNotFound: If user with specified ID doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	GetForUpdate(ctx context.Context, id int64) (*entity.User, error)

	// EnsureExists creates an empty user row unless one exists already.
	// Returns true when the row was created by this call.
	EnsureExists(ctx context.Context, user *entity.User) (bool, error)

	// Update persists counters and referrer of a user
	//
	// Possible errors:
	// - ErrUserNotFound: If user doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	Update(ctx context.Context, user *entity.User) error

	// ReferralSummary aggregates invitees, their deposits and the bonus
	// earned per referrer, most invitees first
	ReferralSummary(ctx context.Context, filter entity.ReferralFilter) ([]entity.ReferralSummaryRow, error)

	// ReferralDetails lists the invitees of one referrer, newest first
	ReferralDetails(ctx context.Context, referrerID int64, filter entity.ReferralFilter) ([]entity.ReferralDetailRow, error)
}
