package persistence

import (
	"context"
)

// UnitOfWork defines an interface for coordinating transaction operations
// across multiple repositories to maintain data consistency
type UnitOfWork interface {
	// Begin starts a new transaction and returns a transactional context
	Begin(ctx context.Context) (context.Context, error)

	// Commit commits the transaction in the given context
	Commit(ctx context.Context) error

	// Rollback rolls back the transaction in the given context
	Rollback(ctx context.Context) error

	// Repositories below are bound to the transaction carried by ctx, or
	// run in autocommit mode when ctx carries none.

	GetUserRepository(ctx context.Context) UserRepository
	GetTransactionRepository(ctx context.Context) TransactionRepository
	GetPaymentRepository(ctx context.Context) PaymentRepository
	GetCaseRepository(ctx context.Context) CaseRepository
	GetTicketProgressRepository(ctx context.Context) TicketProgressRepository
	GetWithdrawRequestRepository(ctx context.Context) WithdrawRequestRepository
	GetPrizeRequestRepository(ctx context.Context) PrizeRequestRepository
	GetUserLockRepository(ctx context.Context) UserLockRepository
}
