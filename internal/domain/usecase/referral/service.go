package referral

import (
	"context"
	"fmt"

	"github.com/amirhossein-jamali/stars-roulette/internal/domain/entity"
	errs "github.com/amirhossein-jamali/stars-roulette/internal/domain/error"
	coreport "github.com/amirhossein-jamali/stars-roulette/internal/domain/port/core"
	"github.com/amirhossein-jamali/stars-roulette/internal/domain/port/provider"
	"github.com/amirhossein-jamali/stars-roulette/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/stars-roulette/internal/domain/usecase/ledger"
)

const (
	summaryLimit = 500
	detailsLimit = 2000
)

// Service binds referrers and reports on them
type Service struct {
	executor     *ledger.Executor
	economy      provider.EconomySource
	logger       coreport.Logger
	timeProvider coreport.TimeProvider
}

var _ usecase.ReferralUseCase = (*Service)(nil)

// NewService creates the referral service
func NewService(
	executor *ledger.Executor,
	economy provider.EconomySource,
	logger coreport.Logger,
	timeProvider coreport.TimeProvider,
) *Service {
	return &Service{
		executor:     executor,
		economy:      economy,
		logger:       logger,
		timeProvider: timeProvider,
	}
}

// BindReferral sets the referrer of a user once and pays the configured
// signup bonuses in the same unit. Self-referral, a non-positive referrer
// and a second bind are no-ops reporting Bound=false.
func (s *Service) BindReferral(ctx context.Context, userID int64, referrerID int64) (*entity.BindResult, error) {
	if userID <= 0 {
		return nil, errs.ErrInvalidUserID
	}
	if referrerID <= 0 || referrerID == userID {
		s.logger.Debug("Referral bind ignored", map[string]any{
			"user_id":     userID,
			"referrer_id": referrerID,
		})
		return &entity.BindResult{Bound: false}, nil
	}

	settings := s.economy.Snapshot()
	result := &entity.BindResult{}

	err := s.executor.Execute(ctx, userID, func(ctx context.Context, tx *ledger.Tx) error {
		if err := ledger.EnsureUsers(ctx, tx.Users, s.timeProvider, userID, referrerID); err != nil {
			return err
		}
		locked, err := ledger.LockUsers(ctx, tx.Users, userID, referrerID)
		if err != nil {
			return err
		}
		invitee, referrer := locked[userID], locked[referrerID]

		if !invitee.BindReferrer(referrerID, s.timeProvider) {
			return nil
		}
		result.Bound = true

		if bonus := settings.ReferralSignupBonusReferrer; bonus > 0 {
			if err := s.credit(ctx, tx, referrer, bonus,
				fmt.Sprintf("Bonus for inviting user %d", userID),
				&entity.ReferralSignupReferrerMeta{InviteeID: userID},
			); err != nil {
				return err
			}
		}
		if bonus := settings.ReferralSignupBonusInvitee; bonus > 0 {
			if err := s.credit(ctx, tx, invitee, bonus,
				fmt.Sprintf("Welcome bonus from referrer %d", referrerID),
				&entity.ReferralSignupInviteeMeta{ReferrerID: referrerID},
			); err != nil {
				return err
			}
		}

		if err := tx.Users.Update(ctx, referrer); err != nil {
			return fmt.Errorf("update referrer: %w", err)
		}
		if err := tx.Users.Update(ctx, invitee); err != nil {
			return fmt.Errorf("update invitee: %w", err)
		}
		return nil
	})
	if err != nil {
		s.logger.Error("Referral bind failed", map[string]any{
			"user_id":     userID,
			"referrer_id": referrerID,
			"error":       err.Error(),
		})
		return nil, err
	}

	s.logger.Info("Referral bind processed", map[string]any{
		"user_id":     userID,
		"referrer_id": referrerID,
		"bound":       result.Bound,
	})
	return result, nil
}

func (s *Service) credit(
	ctx context.Context,
	tx *ledger.Tx,
	user *entity.User,
	amount int64,
	desc string,
	meta entity.TransactionMeta,
) error {
	if err := user.Credit(amount, s.timeProvider); err != nil {
		return err
	}
	row, err := entity.NewTransaction(user.ID, amount, desc, meta, s.timeProvider)
	if err != nil {
		return err
	}
	if err := tx.Transactions.Create(ctx, row); err != nil {
		return fmt.Errorf("write referral row: %w", err)
	}
	return nil
}

// Summary aggregates invitees, their deposits and bonuses per referrer
func (s *Service) Summary(ctx context.Context, filter entity.ReferralFilter) ([]entity.ReferralSummaryRow, error) {
	if filter.Limit <= 0 || filter.Limit > summaryLimit {
		filter.Limit = summaryLimit
	}
	return s.executor.Read(ctx).Users.ReferralSummary(ctx, filter)
}

// Details lists the invitees of one referrer
func (s *Service) Details(ctx context.Context, referrerID int64, filter entity.ReferralFilter) ([]entity.ReferralDetailRow, error) {
	if referrerID <= 0 {
		return nil, errs.ErrInvalidUserID
	}
	if filter.Limit <= 0 || filter.Limit > detailsLimit {
		filter.Limit = detailsLimit
	}
	return s.executor.Read(ctx).Users.ReferralDetails(ctx, referrerID, filter)
}
