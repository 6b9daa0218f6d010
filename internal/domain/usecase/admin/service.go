package admin

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/amirhossein-jamali/stars-roulette/internal/domain/entity"
	errs "github.com/amirhossein-jamali/stars-roulette/internal/domain/error"
	coreport "github.com/amirhossein-jamali/stars-roulette/internal/domain/port/core"
	"github.com/amirhossein-jamali/stars-roulette/internal/domain/port/provider"
	"github.com/amirhossein-jamali/stars-roulette/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/stars-roulette/internal/domain/usecase/ledger"
	"github.com/amirhossein-jamali/stars-roulette/internal/domain/usecase/roulette"
)

const (
	queueLimit    = 200
	maxNoteLength = 200
)

// Service implements the back-office operations
type Service struct {
	executor     *ledger.Executor
	resolver     *roulette.Resolver
	economy      provider.EconomySource
	logger       coreport.Logger
	timeProvider coreport.TimeProvider
}

var _ usecase.AdminUseCase = (*Service)(nil)

// NewService creates the admin service
func NewService(
	executor *ledger.Executor,
	resolver *roulette.Resolver,
	economy provider.EconomySource,
	logger coreport.Logger,
	timeProvider coreport.TimeProvider,
) *Service {
	return &Service{
		executor:     executor,
		resolver:     resolver,
		economy:      economy,
		logger:       logger,
		timeProvider: timeProvider,
	}
}

// GetCases returns every case, enabled or not
func (s *Service) GetCases(ctx context.Context) ([]*entity.CaseConfig, error) {
	return s.resolver.List(ctx, s.economy.Snapshot())
}

// PutCases validates every case and replaces the stored set. Nothing is
// written when any case fails validation.
func (s *Service) PutCases(ctx context.Context, cases []entity.RawCase) ([]*entity.CaseConfig, error) {
	if len(cases) == 0 {
		return nil, fmt.Errorf("%w: at least one case is required", errs.ErrInvalidCase)
	}

	settings := s.economy.Snapshot()
	normalized := make([]entity.RawCase, 0, len(cases))
	seen := make(map[string]struct{}, len(cases))
	for _, rc := range cases {
		c, err := entity.NormalizeCase(rc, settings.DefaultSpinCost)
		if err != nil {
			return nil, err
		}
		if _, dup := seen[c.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate case id %s", errs.ErrInvalidCase, c.ID)
		}
		seen[c.ID] = struct{}{}
		normalized = append(normalized, c.ToRaw())
	}

	err := s.executor.InTransaction(ctx, func(ctx context.Context, tx *ledger.Tx) error {
		return tx.Cases.ReplaceAll(ctx, normalized)
	})
	if err != nil {
		s.logger.Error("Failed to save cases", map[string]any{"error": err.Error()})
		return nil, err
	}

	s.logger.Info("Cases replaced", map[string]any{"count": len(normalized)})
	return s.resolver.List(ctx, settings)
}

// GetPrizeWeights returns one case with its prize table
func (s *Service) GetPrizeWeights(ctx context.Context, caseID string) (*entity.CaseConfig, error) {
	raw, err := s.executor.Read(ctx).Cases.Get(ctx, caseID)
	if err != nil {
		return nil, err
	}
	return entity.NormalizeCase(*raw, s.economy.Snapshot().DefaultSpinCost)
}

// PutPrizeWeights edits weight and enable flag of the prizes of one case
func (s *Service) PutPrizeWeights(ctx context.Context, caseID string, items []entity.PrizeWeight) (*entity.CaseConfig, error) {
	settings := s.economy.Snapshot()

	var updated *entity.CaseConfig
	err := s.executor.InTransaction(ctx, func(ctx context.Context, tx *ledger.Tx) error {
		raw, err := tx.Cases.Get(ctx, caseID)
		if err != nil {
			return err
		}
		c, err := entity.NormalizeCase(*raw, settings.DefaultSpinCost)
		if err != nil {
			return err
		}
		c.ApplyWeights(items)
		if err := tx.Cases.Save(ctx, c.ToRaw()); err != nil {
			return err
		}
		updated = c
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Prize weights updated", map[string]any{
		"case_id": caseID,
		"items":   len(items),
	})
	return updated, nil
}

// ListWithdrawRequests returns the newest withdraw requests
func (s *Service) ListWithdrawRequests(ctx context.Context) ([]*entity.WithdrawRequest, error) {
	return s.executor.Read(ctx).Withdraws.ListRecent(ctx, queueLimit)
}

// ListPrizeRequests returns the newest prize requests
func (s *Service) ListPrizeRequests(ctx context.Context) ([]*entity.PrizeRequest, error) {
	return s.executor.Read(ctx).PrizeRequests.ListRecent(ctx, queueLimit)
}

// SetWithdrawStatus moves a withdraw request. Rejection returns the amount
// to the user with its own ledger row.
func (s *Service) SetWithdrawStatus(ctx context.Context, requestID int64, status string) (*entity.WithdrawRequest, error) {
	target, err := entity.ParseRequestStatus(status)
	if err != nil {
		return nil, err
	}

	// The owner is needed to queue the unit behind the user's other work;
	// the request is read again under lock inside the unit.
	owner, err := s.withdrawOwner(ctx, requestID)
	if err != nil {
		return nil, err
	}

	var out *entity.WithdrawRequest
	err = s.executor.Execute(ctx, owner, func(ctx context.Context, tx *ledger.Tx) error {
		req, err := tx.Withdraws.GetForUpdate(ctx, requestID)
		if err != nil {
			return err
		}
		if err := req.TransitionTo(target, s.timeProvider); err != nil {
			return err
		}

		if target == entity.StatusRejected {
			user, err := tx.Users.GetForUpdate(ctx, req.UserID)
			if err != nil {
				return err
			}
			if err := user.Credit(req.Amount, s.timeProvider); err != nil {
				return err
			}
			row, err := entity.NewTransaction(
				req.UserID,
				req.Amount,
				"Withdraw request rejected, refund",
				&entity.WithdrawRefundMeta{WithdrawRequestID: req.ID},
				s.timeProvider,
			)
			if err != nil {
				return err
			}
			if err := tx.Transactions.Create(ctx, row); err != nil {
				return fmt.Errorf("write refund row: %w", err)
			}
			if err := tx.Users.Update(ctx, user); err != nil {
				return fmt.Errorf("update user: %w", err)
			}
		}

		if err := tx.Withdraws.Update(ctx, req); err != nil {
			return fmt.Errorf("update withdraw request: %w", err)
		}
		out = req
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Withdraw request status changed", map[string]any{
		"request_id": requestID,
		"status":     string(target),
	})
	return out, nil
}

// SetPrizeRequestStatus moves a prize request. Rejection returns the spent
// tickets to the user with its own ledger row.
func (s *Service) SetPrizeRequestStatus(ctx context.Context, requestID int64, status string) (*entity.PrizeRequest, error) {
	target, err := entity.ParseRequestStatus(status)
	if err != nil {
		return nil, err
	}

	owner, err := s.prizeRequestOwner(ctx, requestID)
	if err != nil {
		return nil, err
	}

	var out *entity.PrizeRequest
	err = s.executor.Execute(ctx, owner, func(ctx context.Context, tx *ledger.Tx) error {
		req, err := tx.PrizeRequests.GetForUpdate(ctx, requestID)
		if err != nil {
			return err
		}
		if err := req.TransitionTo(target, s.timeProvider); err != nil {
			return err
		}

		if target == entity.StatusRejected {
			user, err := tx.Users.GetForUpdate(ctx, req.UserID)
			if err != nil {
				return err
			}
			tickets := req.PrizeType.RedemptionCost()
			if err := user.AddTickets(req.PrizeType, tickets, s.timeProvider); err != nil {
				return err
			}
			row, err := entity.NewTransaction(
				req.UserID,
				0,
				"Prize request rejected, tickets returned",
				&entity.PrizeRequestRefundMeta{PrizeRequestID: req.ID, PrizeType: req.PrizeType, Tickets: tickets},
				s.timeProvider,
			)
			if err != nil {
				return err
			}
			if err := tx.Transactions.Create(ctx, row); err != nil {
				return fmt.Errorf("write refund row: %w", err)
			}
			if err := tx.Users.Update(ctx, user); err != nil {
				return fmt.Errorf("update user: %w", err)
			}
		}

		if err := tx.PrizeRequests.Update(ctx, req); err != nil {
			return fmt.Errorf("update prize request: %w", err)
		}
		out = req
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Prize request status changed", map[string]any{
		"request_id": requestID,
		"status":     string(target),
	})
	return out, nil
}

// Adjust applies a manual correction of balance and tickets. The whole
// correction is refused when any counter would end up negative.
func (s *Service) Adjust(ctx context.Context, req usecase.AdjustRequest) (*entity.User, error) {
	if req.UserID <= 0 {
		return nil, errs.ErrInvalidUserID
	}
	note := strings.TrimSpace(req.Note)
	if utf8.RuneCountInString(note) > maxNoteLength {
		note = string([]rune(note)[:maxNoteLength])
	}

	var out *entity.User
	err := s.executor.Execute(ctx, req.UserID, func(ctx context.Context, tx *ledger.Tx) error {
		if err := ledger.EnsureUsers(ctx, tx.Users, s.timeProvider, req.UserID); err != nil {
			return err
		}
		user, err := tx.Users.GetForUpdate(ctx, req.UserID)
		if err != nil {
			return err
		}
		if err := user.Adjust(req.BalanceDelta, req.SneakersDelta, req.BraceletDelta, s.timeProvider); err != nil {
			return err
		}

		desc := "Admin adjustment"
		if note != "" {
			desc += ": " + note
		}
		row, err := entity.NewTransaction(
			req.UserID,
			req.BalanceDelta,
			desc,
			&entity.AdminAdjustMeta{
				By:                   req.AdminID,
				BalanceDelta:         req.BalanceDelta,
				TicketsSneakersDelta: req.SneakersDelta,
				TicketsBraceletDelta: req.BraceletDelta,
				Note:                 note,
			},
			s.timeProvider,
		)
		if err != nil {
			return err
		}
		if err := tx.Transactions.Create(ctx, row); err != nil {
			return fmt.Errorf("write adjustment row: %w", err)
		}
		if err := tx.Users.Update(ctx, user); err != nil {
			return fmt.Errorf("update user: %w", err)
		}
		out = user
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("User adjusted by admin", map[string]any{
		"admin_id":       req.AdminID,
		"user_id":        req.UserID,
		"balance_delta":  req.BalanceDelta,
		"sneakers_delta": req.SneakersDelta,
		"bracelet_delta": req.BraceletDelta,
	})
	return out, nil
}

// PendingDigest summarizes the queues waiting for an admin
func (s *Service) PendingDigest(ctx context.Context) (*entity.PendingDigest, error) {
	tx := s.executor.Read(ctx)
	count, amount, err := tx.Withdraws.PendingTotals(ctx)
	if err != nil {
		return nil, err
	}
	newPrizes, err := tx.PrizeRequests.CountByStatus(ctx, entity.StatusNew)
	if err != nil {
		return nil, err
	}
	return &entity.PendingDigest{
		PendingWithdraws: count,
		PendingAmount:    amount,
		NewPrizeRequests: newPrizes,
	}, nil
}

// ReconcileTicketProgress rebuilds the denormalized ticket progress from
// the ledger and returns how many rows had drifted
func (s *Service) ReconcileTicketProgress(ctx context.Context) (int64, error) {
	var drifted int64
	err := s.executor.InTransaction(ctx, func(ctx context.Context, tx *ledger.Tx) error {
		n, err := tx.Progress.Reconcile(ctx)
		drifted = n
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("reconcile ticket progress: %w", err)
	}
	if drifted > 0 {
		s.logger.Warn("Ticket progress drift repaired", map[string]any{"rows": drifted})
	}
	return drifted, nil
}

func (s *Service) withdrawOwner(ctx context.Context, requestID int64) (int64, error) {
	if requestID <= 0 {
		return 0, errs.ErrRequestNotFound
	}
	var owner int64
	err := s.executor.InTransaction(ctx, func(ctx context.Context, tx *ledger.Tx) error {
		req, err := tx.Withdraws.GetForUpdate(ctx, requestID)
		if err != nil {
			return err
		}
		owner = req.UserID
		return nil
	})
	return owner, err
}

func (s *Service) prizeRequestOwner(ctx context.Context, requestID int64) (int64, error) {
	if requestID <= 0 {
		return 0, errs.ErrRequestNotFound
	}
	var owner int64
	err := s.executor.InTransaction(ctx, func(ctx context.Context, tx *ledger.Tx) error {
		req, err := tx.PrizeRequests.GetForUpdate(ctx, requestID)
		if err != nil {
			return err
		}
		owner = req.UserID
		return nil
	})
	return owner, err
}
