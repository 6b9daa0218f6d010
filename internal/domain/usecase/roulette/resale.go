package roulette

import (
	"context"
	"fmt"

	"github.com/amirhossein-jamali/stars-roulette/internal/domain/entity"
	errs "github.com/amirhossein-jamali/stars-roulette/internal/domain/error"
	"github.com/amirhossein-jamali/stars-roulette/internal/domain/usecase/ledger"
)

// SellTicketLot sells every unsold ticket of a lot at the buy-back price.
// A lot is always consumed as a whole.
func (s *Service) SellTicketLot(ctx context.Context, userID int64, transactionID int64) (*entity.SellResult, error) {
	if userID <= 0 {
		return nil, errs.ErrInvalidUserID
	}
	if transactionID <= 0 {
		return nil, errs.ErrTransactionNotFound
	}

	settings := s.economy.Snapshot()

	var result *entity.SellResult
	err := s.executor.ExecuteLeased(ctx, userID, func(ctx context.Context, tx *ledger.Tx) error {
		user, err := tx.Users.GetForUpdate(ctx, userID)
		if err != nil {
			return err
		}

		lotTx, err := tx.Transactions.GetByIDForUpdate(ctx, transactionID)
		if err != nil {
			return err
		}
		if lotTx.UserID != userID {
			return errs.ErrTransactionNotFound
		}
		lot, ok := lotTx.TicketLot()
		if !ok {
			return errs.ErrNotTicketLot
		}

		left := lot.Left()
		if left <= 0 {
			return errs.ErrLotExhausted
		}

		kind := lot.HiddenTicketKind
		if kind == "" {
			kind = entity.TicketKindForPrizeCode(lot.PrizeCode)
		}
		if available := user.Tickets(kind); available < left {
			return errs.NewInsufficientTicketsError(userID, string(kind), left, available)
		}

		unitPrice := settings.BuybackUnitPrice(lot.CaseCost)
		if unitPrice <= 0 {
			return errs.ErrNoBuybackPrice
		}
		total := unitPrice * left

		if err := user.SpendTickets(kind, left, s.timeProvider); err != nil {
			return err
		}
		if err := user.Credit(total, s.timeProvider); err != nil {
			return err
		}

		lot.MarkSold()
		if err := tx.Transactions.UpdateMeta(ctx, lotTx); err != nil {
			return fmt.Errorf("mark lot sold: %w", err)
		}

		saleTx, err := entity.NewTransaction(
			userID,
			total,
			fmt.Sprintf("Sell tickets %s x%d", lot.PrizeCode, left),
			&entity.TicketSaleMeta{
				TicketSellTxID:   lotTx.ID,
				PrizeCode:        lot.PrizeCode,
				HiddenTicketKind: kind,
				Quantity:         left,
				UnitPrice:        unitPrice,
				SellPercent:      settings.SellPercent,
			},
			s.timeProvider,
		)
		if err != nil {
			return err
		}
		if err := tx.Transactions.Create(ctx, saleTx); err != nil {
			return fmt.Errorf("write sale row: %w", err)
		}

		if err := tx.Progress.Add(ctx, userID, lot.PrizeCode, -left); err != nil {
			return fmt.Errorf("update ticket progress: %w", err)
		}
		if err := tx.Users.Update(ctx, user); err != nil {
			return fmt.Errorf("update user: %w", err)
		}

		result = &entity.SellResult{
			Credited:        total,
			Quantity:        left,
			UnitPrice:       unitPrice,
			Balance:         user.Balance(),
			TicketsSneakers: user.TicketsSneakers(),
			TicketsBracelet: user.TicketsBracelet(),
		}
		return nil
	})
	if err != nil {
		fields := errs.LogFieldsOf(err)
		fields["user_id"] = userID
		fields["transaction_id"] = transactionID
		if isRejection(err) {
			s.logger.Info("Ticket lot sale rejected", fields)
		} else {
			s.logger.Error("Ticket lot sale failed", fields)
		}
		return nil, err
	}

	s.logger.Info("Ticket lot sold", map[string]any{
		"user_id":        userID,
		"transaction_id": transactionID,
		"quantity":       result.Quantity,
		"credited":       result.Credited,
	})
	return result, nil
}
