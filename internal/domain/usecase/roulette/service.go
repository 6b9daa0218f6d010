package roulette

import (
	"context"
	"errors"

	"github.com/amirhossein-jamali/stars-roulette/internal/domain/entity"
	errs "github.com/amirhossein-jamali/stars-roulette/internal/domain/error"
	coreport "github.com/amirhossein-jamali/stars-roulette/internal/domain/port/core"
	"github.com/amirhossein-jamali/stars-roulette/internal/domain/port/provider"
	"github.com/amirhossein-jamali/stars-roulette/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/stars-roulette/internal/domain/usecase/ledger"
)

// Service implements the spin and resale operations
type Service struct {
	executor     *ledger.Executor
	resolver     *Resolver
	selector     *Selector
	economy      provider.EconomySource
	logger       coreport.Logger
	timeProvider coreport.TimeProvider

	// afterDebit runs inside the spin unit right after the debit row was
	// written. Tests use it to inject failures.
	afterDebit func(ctx context.Context) error
}

var _ usecase.RouletteUseCase = (*Service)(nil)

// NewService creates the roulette service
func NewService(
	executor *ledger.Executor,
	resolver *Resolver,
	selector *Selector,
	economy provider.EconomySource,
	logger coreport.Logger,
	timeProvider coreport.TimeProvider,
) *Service {
	return &Service{
		executor:     executor,
		resolver:     resolver,
		selector:     selector,
		economy:      economy,
		logger:       logger,
		timeProvider: timeProvider,
	}
}

// ListCases returns the enabled cases for the client
func (s *Service) ListCases(ctx context.Context) ([]*entity.CaseConfig, error) {
	cases, err := s.resolver.List(ctx, s.economy.Snapshot())
	if err != nil {
		return nil, err
	}

	out := make([]*entity.CaseConfig, 0, len(cases))
	for _, c := range cases {
		if c.Enabled {
			out = append(out, c)
		}
	}
	return out, nil
}

// isRejection reports errors raised before anything was written. They are
// returned to the caller as they are
func isRejection(err error) bool {
	return errs.IsStateConflictError(err) ||
		errs.IsValidationError(err) ||
		errs.IsNotFoundError(err) ||
		errors.Is(err, errs.ErrUserLocked) ||
		errors.Is(err, errs.ErrShuttingDown) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded)
}
