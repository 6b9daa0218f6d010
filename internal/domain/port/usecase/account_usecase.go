package usecase

import (
	"context"

	"github.com/amirhossein-jamali/stars-roulette/internal/domain/entity"
)

// WithdrawResult is returned after a withdraw request was funded
type WithdrawResult struct {
	Request *entity.WithdrawRequest
	Balance int64
}

// PrizeRequestResult is returned after a physical prize request was funded
type PrizeRequestResult struct {
	Request         *entity.PrizeRequest
	TicketsSneakers int64
	TicketsBracelet int64
}

// InvoiceRequest describes a Stars deposit the user wants to make
type InvoiceRequest struct {
	Amount      int64
	Title       string
	Description string
}

// AccountUseCase defines the per-user account operations of the mini app
type AccountUseCase interface {
	// EnsureUser lazily creates the user on its first authenticated call
	EnsureUser(ctx context.Context, userID int64) error

	// GetProfile returns balance, tickets, admin flag and referral link
	GetProfile(ctx context.Context, userID int64) (*entity.Profile, error)

	// History returns the latest ledger rows of the user, newest first
	History(ctx context.Context, userID int64) ([]*entity.Transaction, error)

	// Withdraw debits the balance and queues a cash-out request
	Withdraw(ctx context.Context, userID int64, amount int64) (*WithdrawResult, error)

	// RequestPrize spends tickets and queues a physical prize request
	RequestPrize(ctx context.Context, userID int64, prizeType string) (*PrizeRequestResult, error)

	// CreateInvoice issues a Stars payment link. Nothing is credited here.
	CreateInvoice(ctx context.Context, userID int64, req InvoiceRequest) (string, error)
}
