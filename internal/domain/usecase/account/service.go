package account

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/amirhossein-jamali/stars-roulette/internal/domain/entity"
	errs "github.com/amirhossein-jamali/stars-roulette/internal/domain/error"
	coreport "github.com/amirhossein-jamali/stars-roulette/internal/domain/port/core"
	"github.com/amirhossein-jamali/stars-roulette/internal/domain/port/provider"
	"github.com/amirhossein-jamali/stars-roulette/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/stars-roulette/internal/domain/usecase/ledger"
)

const historyLimit = 50

// Service implements the per-user account operations
type Service struct {
	executor     *ledger.Executor
	economy      provider.EconomySource
	admins       provider.AdminDirectory
	invoices     coreport.InvoiceProvider
	logger       coreport.Logger
	timeProvider coreport.TimeProvider
	botUsername  string
}

var _ usecase.AccountUseCase = (*Service)(nil)

// NewService creates the account service. invoices may be nil when no bot
// token is configured; CreateInvoice then fails with ErrInvoiceUnavailable.
func NewService(
	executor *ledger.Executor,
	economy provider.EconomySource,
	admins provider.AdminDirectory,
	invoices coreport.InvoiceProvider,
	logger coreport.Logger,
	timeProvider coreport.TimeProvider,
	botUsername string,
) *Service {
	return &Service{
		executor:     executor,
		economy:      economy,
		admins:       admins,
		invoices:     invoices,
		logger:       logger,
		timeProvider: timeProvider,
		botUsername:  strings.TrimPrefix(botUsername, "@"),
	}
}

// EnsureUser lazily creates the user row
func (s *Service) EnsureUser(ctx context.Context, userID int64) error {
	u, err := entity.NewUser(userID, s.timeProvider)
	if err != nil {
		return err
	}
	created, err := s.executor.Read(ctx).Users.EnsureExists(ctx, u)
	if err != nil {
		return fmt.Errorf("ensure user: %w", err)
	}
	if created {
		s.logger.Info("User created", map[string]any{"user_id": userID})
	}
	return nil
}

// GetProfile returns the account summary of a user
func (s *Service) GetProfile(ctx context.Context, userID int64) (*entity.Profile, error) {
	if err := s.EnsureUser(ctx, userID); err != nil {
		return nil, err
	}
	u, err := s.executor.Read(ctx).Users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &entity.Profile{
		UserID:          u.ID,
		Balance:         u.Balance(),
		TicketsSneakers: u.TicketsSneakers(),
		TicketsBracelet: u.TicketsBracelet(),
		IsAdmin:         s.admins.IsAdmin(userID),
		RefLink:         fmt.Sprintf("https://t.me/%s?start=ref_%d", s.botUsername, userID),
	}, nil
}

// History returns the latest ledger rows of a user
func (s *Service) History(ctx context.Context, userID int64) ([]*entity.Transaction, error) {
	if userID <= 0 {
		return nil, errs.ErrInvalidUserID
	}
	return s.executor.Read(ctx).Transactions.ListByUser(ctx, userID, historyLimit)
}

// Withdraw debits amount right away and queues a pending request that an
// admin settles out-of-band
func (s *Service) Withdraw(ctx context.Context, userID int64, amount int64) (*usecase.WithdrawResult, error) {
	if userID <= 0 {
		return nil, errs.ErrInvalidUserID
	}
	settings := s.economy.Snapshot()
	if amount <= 0 {
		return nil, errs.ErrInvalidAmount
	}
	if amount < settings.MinWithdraw {
		return nil, errs.NewBelowMinimumError(settings.MinWithdraw, amount)
	}

	var result *usecase.WithdrawResult
	err := s.executor.Execute(ctx, userID, func(ctx context.Context, tx *ledger.Tx) error {
		user, err := tx.Users.GetForUpdate(ctx, userID)
		if err != nil {
			return err
		}
		if err := user.Debit(amount, s.timeProvider); err != nil {
			return err
		}

		req := entity.NewWithdrawRequest(userID, amount, s.timeProvider)
		if err := tx.Withdraws.Create(ctx, req); err != nil {
			return fmt.Errorf("create withdraw request: %w", err)
		}

		row, err := entity.NewTransaction(
			userID,
			-amount,
			"Stars withdraw request",
			&entity.WithdrawMeta{WithdrawRequestID: req.ID},
			s.timeProvider,
		)
		if err != nil {
			return err
		}
		if err := tx.Transactions.Create(ctx, row); err != nil {
			return fmt.Errorf("write withdraw row: %w", err)
		}
		if err := tx.Users.Update(ctx, user); err != nil {
			return fmt.Errorf("update user: %w", err)
		}

		result = &usecase.WithdrawResult{Request: req, Balance: user.Balance()}
		return nil
	})
	if err != nil {
		s.logRejection("Withdraw rejected", userID, err)
		return nil, err
	}

	s.logger.Info("Withdraw requested", map[string]any{
		"user_id":    userID,
		"amount":     amount,
		"request_id": result.Request.ID,
	})
	return result, nil
}

// RequestPrize spends the redemption cost in tickets and queues a new
// physical prize request
func (s *Service) RequestPrize(ctx context.Context, userID int64, prizeType string) (*usecase.PrizeRequestResult, error) {
	if userID <= 0 {
		return nil, errs.ErrInvalidUserID
	}
	kind, err := entity.ParseTicketKind(prizeType)
	if err != nil {
		return nil, err
	}
	cost := kind.RedemptionCost()

	var result *usecase.PrizeRequestResult
	err = s.executor.Execute(ctx, userID, func(ctx context.Context, tx *ledger.Tx) error {
		user, err := tx.Users.GetForUpdate(ctx, userID)
		if err != nil {
			return err
		}
		if err := user.SpendTickets(kind, cost, s.timeProvider); err != nil {
			return err
		}

		req := entity.NewPrizeRequest(userID, kind, s.timeProvider)
		if err := tx.PrizeRequests.Create(ctx, req); err != nil {
			return fmt.Errorf("create prize request: %w", err)
		}

		row, err := entity.NewTransaction(
			userID,
			0,
			"Prize request: "+string(kind),
			&entity.PrizeRedemptionMeta{PrizeRequestID: req.ID, PrizeType: kind, Tickets: cost},
			s.timeProvider,
		)
		if err != nil {
			return err
		}
		if err := tx.Transactions.Create(ctx, row); err != nil {
			return fmt.Errorf("write prize request row: %w", err)
		}
		if err := tx.Users.Update(ctx, user); err != nil {
			return fmt.Errorf("update user: %w", err)
		}

		result = &usecase.PrizeRequestResult{
			Request:         req,
			TicketsSneakers: user.TicketsSneakers(),
			TicketsBracelet: user.TicketsBracelet(),
		}
		return nil
	})
	if err != nil {
		s.logRejection("Prize request rejected", userID, err)
		return nil, err
	}

	s.logger.Info("Prize requested", map[string]any{
		"user_id":    userID,
		"prize_type": string(kind),
		"request_id": result.Request.ID,
	})
	return result, nil
}

// CreateInvoice issues a Stars invoice link for a deposit. The balance is
// only credited once the payment is confirmed.
func (s *Service) CreateInvoice(ctx context.Context, userID int64, req usecase.InvoiceRequest) (string, error) {
	if userID <= 0 {
		return "", errs.ErrInvalidUserID
	}
	settings := s.economy.Snapshot()
	if req.Amount <= 0 || req.Amount > settings.MaxInvoiceAmount {
		return "", errs.ErrInvalidAmount
	}
	if s.invoices == nil {
		return "", errs.ErrInvoiceUnavailable
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		title = "Top up"
	}
	desc := strings.TrimSpace(req.Description)
	if desc == "" {
		desc = fmt.Sprintf("Top up %d Stars", req.Amount)
	}

	link, err := s.invoices.CreateInvoiceLink(ctx, coreport.Invoice{
		UserID:      userID,
		Amount:      req.Amount,
		Title:       title,
		Description: desc,
		Payload:     DepositPayload(userID, req.Amount),
	})
	if err != nil {
		s.logger.Error("Invoice creation failed", map[string]any{
			"user_id": userID,
			"amount":  req.Amount,
			"error":   err.Error(),
		})
		return "", fmt.Errorf("%w: %v", errs.ErrInvoiceUnavailable, err)
	}
	return link, nil
}

const depositPayloadPrefix = "deposit:"

// DepositPayload is the invoice payload the bot recognizes as a deposit
func DepositPayload(userID, amount int64) string {
	return fmt.Sprintf("%s%d:%d", depositPayloadPrefix, userID, amount)
}

// ParseDepositPayload reads back a payload built by DepositPayload
func ParseDepositPayload(payload string) (userID, amount int64, ok bool) {
	rest, found := strings.CutPrefix(payload, depositPayloadPrefix)
	if !found {
		return 0, 0, false
	}
	uid, amt, found := strings.Cut(rest, ":")
	if !found {
		return 0, 0, false
	}
	userID, err := strconv.ParseInt(uid, 10, 64)
	if err != nil || userID <= 0 {
		return 0, 0, false
	}
	amount, err = strconv.ParseInt(amt, 10, 64)
	if err != nil || amount <= 0 {
		return 0, 0, false
	}
	return userID, amount, true
}

func (s *Service) logRejection(msg string, userID int64, err error) {
	fields := errs.LogFieldsOf(err)
	fields["user_id"] = userID
	if errs.IsStateConflictError(err) || errs.IsValidationError(err) ||
		errors.Is(err, errs.ErrInsufficientBalance) {
		s.logger.Info(msg, fields)
		return
	}
	s.logger.Error(msg, fields)
}
