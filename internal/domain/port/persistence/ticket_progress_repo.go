package persistence

import (
	"context"

	"github.com/amirhossein-jamali/stars-roulette/internal/domain/entity"
)

// TicketProgressRepository maintains the denormalized per-user, per-code
// ticket accrual (won minus resold) next to the ledger
type TicketProgressRepository interface {
	// GetByUser returns the accrual of every item code of a user
	GetByUser(ctx context.Context, userID int64) (entity.ProgressMap, error)

	// Add applies a signed delta to one code of a user
	Add(ctx context.Context, userID int64, prizeCode string, delta int64) error

	// Reconcile rebuilds the table from the ledger's lot descriptors and
	// returns the number of rows that had drifted
	Reconcile(ctx context.Context) (int64, error)
}
