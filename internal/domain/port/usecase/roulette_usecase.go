package usecase

import (
	"context"

	"github.com/amirhossein-jamali/stars-roulette/internal/domain/entity"
)

// RouletteUseCase defines the spin and resale operations
type RouletteUseCase interface {
	// ListCases returns the enabled, normalized cases for the client
	ListCases(ctx context.Context) ([]*entity.CaseConfig, error)

	// Spin debits the case cost, draws a prize and settles it atomically
	Spin(ctx context.Context, userID int64, caseID string) (*entity.SpinResult, error)

	// SellTicketLot sells the unsold rest of a lot back for Stars
	SellTicketLot(ctx context.Context, userID int64, transactionID int64) (*entity.SellResult, error)
}
