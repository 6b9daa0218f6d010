package payment

import (
	"context"
	"errors"
	"fmt"

	"github.com/amirhossein-jamali/stars-roulette/internal/domain/entity"
	errs "github.com/amirhossein-jamali/stars-roulette/internal/domain/error"
	coreport "github.com/amirhossein-jamali/stars-roulette/internal/domain/port/core"
	"github.com/amirhossein-jamali/stars-roulette/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/stars-roulette/internal/domain/port/provider"
	"github.com/amirhossein-jamali/stars-roulette/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/stars-roulette/internal/domain/usecase/ledger"
)

// errAlreadyProcessed unwinds a unit that lost the race on the charge id
var errAlreadyProcessed = errors.New("payment already processed")

// Service credits settled payments exactly once per charge id
type Service struct {
	executor     *ledger.Executor
	idempotency  *ledger.IdempotencyHandler
	uow          persistence.UnitOfWork
	economy      provider.EconomySource
	logger       coreport.Logger
	timeProvider coreport.TimeProvider
}

var _ usecase.PaymentUseCase = (*Service)(nil)

// NewService creates the payment service
func NewService(
	executor *ledger.Executor,
	uow persistence.UnitOfWork,
	economy provider.EconomySource,
	logger coreport.Logger,
	timeProvider coreport.TimeProvider,
) *Service {
	return &Service{
		executor:     executor,
		idempotency:  ledger.NewIdempotencyHandler(uow.GetPaymentRepository(context.Background())),
		uow:          uow,
		economy:      economy,
		logger:       logger,
		timeProvider: timeProvider,
	}
}

// ConfirmPayment records a payment, credits the payer and pays the
// referrer's share, all in one unit. A charge id that was already recorded
// yields PaymentAlreadyProcessed and changes nothing.
func (s *Service) ConfirmPayment(
	ctx context.Context,
	userID int64,
	chargeID string,
	totalAmount int64,
) (*entity.PaymentResult, error) {
	if userID <= 0 {
		return nil, errs.ErrInvalidUserID
	}
	if err := entity.ValidateChargeID(chargeID); err != nil {
		return nil, err
	}
	if totalAmount <= 0 {
		return nil, errs.ErrInvalidAmount
	}

	done, err := s.idempotency.AlreadyProcessed(ctx, chargeID)
	if err != nil {
		return nil, err
	}
	if done {
		return s.alreadyProcessed(userID, chargeID), nil
	}

	settings := s.economy.Snapshot()
	result := &entity.PaymentResult{Outcome: entity.PaymentCredited}

	err = s.executor.Execute(ctx, userID, func(ctx context.Context, tx *ledger.Tx) error {
		// Re-check under the unit: a concurrent delivery may have committed
		// since the first check.
		exists, err := tx.Payments.ExistsByChargeID(ctx, chargeID)
		if err != nil {
			return err
		}
		if exists {
			return errAlreadyProcessed
		}

		if err := ledger.EnsureUsers(ctx, tx.Users, s.timeProvider, userID); err != nil {
			return err
		}
		snapshot, err := tx.Users.GetByID(ctx, userID)
		if err != nil {
			return err
		}

		ids := []int64{userID}
		if snapshot.ReferrerID != nil {
			if err := ledger.EnsureUsers(ctx, tx.Users, s.timeProvider, *snapshot.ReferrerID); err != nil {
				return err
			}
			ids = append(ids, *snapshot.ReferrerID)
		}
		locked, err := ledger.LockUsers(ctx, tx.Users, ids...)
		if err != nil {
			return err
		}
		payer := locked[userID]

		// The first read was unlocked: a bind may have committed before the
		// payer row was locked.
		if refID := derefOr(payer.ReferrerID, 0); refID > 0 {
			if _, ok := locked[refID]; !ok {
				if err := ledger.EnsureUsers(ctx, tx.Users, s.timeProvider, refID); err != nil {
					return err
				}
				referrer, err := tx.Users.GetForUpdate(ctx, refID)
				if err != nil {
					return err
				}
				locked[refID] = referrer
			}
		}

		payment, err := entity.NewPayment(userID, chargeID, totalAmount, s.timeProvider)
		if err != nil {
			return err
		}
		if err := tx.Payments.Create(ctx, payment); err != nil {
			if errors.Is(err, errs.ErrDuplicatePayment) {
				return errAlreadyProcessed
			}
			return fmt.Errorf("record payment: %w", err)
		}

		if err := payer.Credit(totalAmount, s.timeProvider); err != nil {
			return err
		}
		deposit, err := entity.NewTransaction(
			userID,
			totalAmount,
			"Stars deposit",
			&entity.DepositMeta{TelegramPaymentChargeID: payment.TelegramPaymentChargeID},
			s.timeProvider,
		)
		if err != nil {
			return err
		}
		if err := tx.Transactions.Create(ctx, deposit); err != nil {
			return fmt.Errorf("write deposit row: %w", err)
		}
		if err := tx.Users.Update(ctx, payer); err != nil {
			return fmt.Errorf("update payer: %w", err)
		}
		result.Credited = totalAmount
		result.Balance = payer.Balance()

		referrer, ok := locked[derefOr(payer.ReferrerID, 0)]
		bonus := settings.ReferralBonus(totalAmount)
		if !ok || referrer.ID == payer.ID || bonus <= 0 {
			return nil
		}

		if err := referrer.Credit(bonus, s.timeProvider); err != nil {
			return err
		}
		bonusTx, err := entity.NewTransaction(
			referrer.ID,
			bonus,
			fmt.Sprintf("Referral bonus %d%% for deposit of invitee %d", settings.ReferralBonusPercent, userID),
			&entity.ReferralBonusMeta{
				InviteeID:       userID,
				PaymentChargeID: payment.TelegramPaymentChargeID,
				Percent:         settings.ReferralBonusPercent,
			},
			s.timeProvider,
		)
		if err != nil {
			return err
		}
		if err := tx.Transactions.Create(ctx, bonusTx); err != nil {
			return fmt.Errorf("write referral bonus row: %w", err)
		}
		if err := tx.Users.Update(ctx, referrer); err != nil {
			return fmt.Errorf("update referrer: %w", err)
		}
		result.ReferrerBonus = bonus
		return nil
	})
	if errors.Is(err, errAlreadyProcessed) {
		return s.alreadyProcessed(userID, chargeID), nil
	}
	if err != nil {
		s.logger.Error("Payment confirmation failed", map[string]any{
			"user_id":   userID,
			"charge_id": chargeID,
			"amount":    totalAmount,
			"error":     err.Error(),
		})
		return nil, err
	}

	s.logger.Info("Payment credited", map[string]any{
		"user_id":        userID,
		"charge_id":      chargeID,
		"amount":         totalAmount,
		"referrer_bonus": result.ReferrerBonus,
	})
	return result, nil
}

func (s *Service) alreadyProcessed(userID int64, chargeID string) *entity.PaymentResult {
	s.logger.Info("Duplicate payment confirmation ignored", map[string]any{
		"user_id":   userID,
		"charge_id": chargeID,
	})
	return &entity.PaymentResult{Outcome: entity.PaymentAlreadyProcessed}
}

func derefOr(p *int64, def int64) int64 {
	if p == nil {
		return def
	}
	return *p
}
