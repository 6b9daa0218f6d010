package roulette

import (
	"context"
	"fmt"

	"github.com/amirhossein-jamali/stars-roulette/internal/domain/entity"
	errs "github.com/amirhossein-jamali/stars-roulette/internal/domain/error"
	"github.com/amirhossein-jamali/stars-roulette/internal/domain/usecase/ledger"
)

// Spin debits the case cost, draws a prize and settles it as one atomic
// unit. Any failure after the debit rolls the whole unit back.
func (s *Service) Spin(ctx context.Context, userID int64, caseID string) (*entity.SpinResult, error) {
	if userID <= 0 {
		return nil, errs.ErrInvalidUserID
	}

	settings := s.economy.Snapshot()
	c, err := s.resolver.Resolve(ctx, caseID, settings)
	if err != nil {
		return nil, err
	}

	var result *entity.SpinResult
	err = s.executor.ExecuteLeased(ctx, userID, func(ctx context.Context, tx *ledger.Tx) error {
		user, err := tx.Users.GetForUpdate(ctx, userID)
		if err != nil {
			return err
		}

		cost := c.SpinCost
		if err := user.Debit(cost, s.timeProvider); err != nil {
			return err
		}

		spinTx, err := entity.NewTransaction(
			userID,
			-cost,
			fmt.Sprintf("Spin %s (%s)", c.Title, c.ID),
			&entity.SpinMeta{RouletteID: c.ID, CaseCost: cost},
			s.timeProvider,
		)
		if err != nil {
			return err
		}
		if err := tx.Transactions.Create(ctx, spinTx); err != nil {
			return fmt.Errorf("write spin row: %w", err)
		}

		if s.afterDebit != nil {
			if err := s.afterDebit(ctx); err != nil {
				return err
			}
		}

		progress := entity.ProgressMap{}
		if settings.OverlayEnabled() {
			if progress, err = tx.Progress.GetByUser(ctx, userID); err != nil {
				return fmt.Errorf("load ticket progress: %w", err)
			}
		}

		prize, overridden, err := s.selector.Select(c, progress, settings)
		if err != nil {
			return err
		}

		winTx, err := s.settle(ctx, tx, user, c, prize)
		if err != nil {
			return err
		}

		if err := tx.Users.Update(ctx, user); err != nil {
			return fmt.Errorf("update user: %w", err)
		}

		result = &entity.SpinResult{
			RouletteID:      c.ID,
			Cost:            cost,
			Balance:         user.Balance(),
			TicketsSneakers: user.TicketsSneakers(),
			TicketsBracelet: user.TicketsBracelet(),
			Prize:           prize,
			SpinTxID:        spinTx.ID,
			WinTxID:         winTx.ID,
			Overridden:      overridden,
		}
		return nil
	})
	if err != nil {
		if isRejection(err) {
			s.logger.Info("Spin rejected", map[string]any{
				"user_id": userID,
				"case_id": c.ID,
				"error":   err.Error(),
			})
			return nil, err
		}
		s.logger.Error("Spin failed, rolled back", map[string]any{
			"user_id": userID,
			"case_id": c.ID,
			"error":   err.Error(),
		})
		return nil, errs.NewSpinFailedError(userID, c.ID, err)
	}

	s.logger.Info("Spin settled", map[string]any{
		"user_id":    userID,
		"case_id":    c.ID,
		"prize_code": result.Prize.Code,
		"prize_kind": string(result.Prize.Kind),
		"overridden": result.Overridden,
		"balance":    result.Balance,
	})
	return result, nil
}

// settle applies the prize effect to the locked user and appends its win row
func (s *Service) settle(
	ctx context.Context,
	tx *ledger.Tx,
	user *entity.User,
	c *entity.CaseConfig,
	prize entity.Prize,
) (*entity.Transaction, error) {
	var (
		amount int64
		desc   string
		meta   entity.TransactionMeta
	)

	switch prize.Kind {
	case entity.PrizeStars:
		if err := user.Credit(prize.Amount, s.timeProvider); err != nil {
			return nil, err
		}
		amount = prize.Amount
		desc = fmt.Sprintf("Win stars +%d", prize.Amount)
		meta = &entity.StarsWinMeta{
			PrizeCode:  prize.Code,
			RouletteID: c.ID,
			CaseCost:   c.SpinCost,
			Rarity:     prize.Rarity,
		}

	case entity.PrizeDiscount:
		desc = "Win discount " + prize.Title
		meta = &entity.DiscountWinMeta{
			PrizeCode:  prize.Code,
			Percent:    prize.Amount,
			RouletteID: c.ID,
			CaseCost:   c.SpinCost,
			Rarity:     prize.Rarity,
		}

	default:
		qty := prize.TicketQuantity()
		kind := prize.TicketKind()
		if err := user.AddTickets(kind, qty, s.timeProvider); err != nil {
			return nil, err
		}
		if err := tx.Progress.Add(ctx, user.ID, prize.Code, qty); err != nil {
			return nil, fmt.Errorf("update ticket progress: %w", err)
		}
		desc = "Win item " + prize.Title
		meta = &entity.TicketLotMeta{
			PrizeCode:          prize.Code,
			Amount:             prize.Amount,
			HiddenTicketsAdded: qty,
			HiddenTicketsSold:  0,
			HiddenTicketKind:   kind,
			RouletteID:         c.ID,
			CaseCost:           c.SpinCost,
			Rarity:             prize.Rarity,
		}
	}

	winTx, err := entity.NewTransaction(user.ID, amount, desc, meta, s.timeProvider)
	if err != nil {
		return nil, err
	}
	if err := tx.Transactions.Create(ctx, winTx); err != nil {
		return nil, fmt.Errorf("write win row: %w", err)
	}
	return winTx, nil
}
