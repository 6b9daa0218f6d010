package usecase

import (
	"context"

	"github.com/amirhossein-jamali/stars-roulette/internal/domain/entity"
)

// AdjustRequest is a manual correction of a user's counters
type AdjustRequest struct {
	AdminID       int64
	UserID        int64
	BalanceDelta  int64
	SneakersDelta int64
	BraceletDelta int64
	Note          string
}

// AdminUseCase defines the back-office operations
type AdminUseCase interface {
	GetCases(ctx context.Context) ([]*entity.CaseConfig, error)

	// PutCases replaces the whole case set after validating every entry
	PutCases(ctx context.Context, cases []entity.RawCase) ([]*entity.CaseConfig, error)

	GetPrizeWeights(ctx context.Context, caseID string) (*entity.CaseConfig, error)

	// PutPrizeWeights edits weight and enable flag of the prizes of one case
	PutPrizeWeights(ctx context.Context, caseID string, items []entity.PrizeWeight) (*entity.CaseConfig, error)

	ListWithdrawRequests(ctx context.Context) ([]*entity.WithdrawRequest, error)

	// SetWithdrawStatus moves a withdraw request; rejection refunds the balance
	SetWithdrawStatus(ctx context.Context, requestID int64, status string) (*entity.WithdrawRequest, error)

	ListPrizeRequests(ctx context.Context) ([]*entity.PrizeRequest, error)

	// SetPrizeRequestStatus moves a prize request; rejection refunds the tickets
	SetPrizeRequestStatus(ctx context.Context, requestID int64, status string) (*entity.PrizeRequest, error)

	// Adjust applies a manual correction with its own ledger row
	Adjust(ctx context.Context, req AdjustRequest) (*entity.User, error)
}
