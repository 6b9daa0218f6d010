package persistence

import (
	"context"

	"github.com/amirhossein-jamali/stars-roulette/internal/domain/entity"
)

// WithdrawRequestRepository stores the cash-out queue
type WithdrawRequestRepository interface {
	Create(ctx context.Context, req *entity.WithdrawRequest) error

	// GetForUpdate retrieves and locks a request
	//
	// Possible errors:
	// - ErrRequestNotFound: If no request has the given ID
	GetForUpdate(ctx context.Context, id int64) (*entity.WithdrawRequest, error)

	Update(ctx context.Context, req *entity.WithdrawRequest) error

	// ListRecent returns the newest requests first
	ListRecent(ctx context.Context, limit int) ([]*entity.WithdrawRequest, error)

	// PendingTotals counts pending requests and sums their amounts
	PendingTotals(ctx context.Context) (count int64, amount int64, err error)
}

// PrizeRequestRepository stores the physical prize queue
type PrizeRequestRepository interface {
	Create(ctx context.Context, req *entity.PrizeRequest) error

	// GetForUpdate retrieves and locks a request
	//
	// Possible errors:
	// - ErrRequestNotFound: If no request has the given ID
	GetForUpdate(ctx context.Context, id int64) (*entity.PrizeRequest, error)

	Update(ctx context.Context, req *entity.PrizeRequest) error

	// ListRecent returns the newest requests first
	ListRecent(ctx context.Context, limit int) ([]*entity.PrizeRequest, error)

	// CountByStatus counts requests in one status
	CountByStatus(ctx context.Context, status entity.RequestStatus) (int64, error)
}
