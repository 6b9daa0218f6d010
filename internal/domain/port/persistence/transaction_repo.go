package persistence

import (
	"context"

	"github.com/amirhossein-jamali/stars-roulette/internal/domain/entity"
)

// TransactionRepository defines access to the append-only ledger
type TransactionRepository interface {
	// Create appends a ledger row and assigns its ID
	//
	// Possible errors:
	// - ErrUserNotFound: If referenced user does not exist
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, transaction *entity.Transaction) error

	// GetByIDForUpdate retrieves a ledger row and locks it for the rest of
	// the transaction. Used by the resale market to consume a lot.
	//
	// Possible errors:
	// - ErrTransactionNotFound: If no row has the given ID
	// - ErrDatabaseConnection: If database connection fails
	GetByIDForUpdate(ctx context.Context, id int64) (*entity.Transaction, error)

	// UpdateMeta rewrites the meta document of an existing row. The only
	// caller is the resale market, marking a lot as sold.
	UpdateMeta(ctx context.Context, transaction *entity.Transaction) error

	// ListByUser returns the latest rows of a user, newest first
	ListByUser(ctx context.Context, userID int64, limit int) ([]*entity.Transaction, error)
}
