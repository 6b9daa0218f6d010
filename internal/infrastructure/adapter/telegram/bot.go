package telegram

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"strconv"
	"strings"
	"sync"

	"github.com/mymmrac/telego"
	tu "github.com/mymmrac/telego/telegoutil"

	"github.com/amirhossein-jamali/stars-roulette/internal/domain/entity"
	errs "github.com/amirhossein-jamali/stars-roulette/internal/domain/error"
	coreport "github.com/amirhossein-jamali/stars-roulette/internal/domain/port/core"
	"github.com/amirhossein-jamali/stars-roulette/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/stars-roulette/internal/domain/usecase/account"
)

const refPrefix = "ref_"

// BotOptions tunes the update loop
type BotOptions struct {
	PollTimeoutSeconds int
	MaxInflight        int
	WebAppURL          string
	// SupportChatIDs receive an alert when a paid deposit cannot be credited
	SupportChatIDs []int64
}

// Bot consumes bot updates: /start with a referral code, pre-checkout
// queries and successful Stars payments
type Bot struct {
	api       API
	accounts  usecase.AccountUseCase
	payments  usecase.PaymentUseCase
	referrals usecase.ReferralUseCase
	notifier  coreport.Notifier
	logger    coreport.Logger
	opts      BotOptions

	inflight chan struct{}
	wg       sync.WaitGroup
}

// NewBot creates the update loop
func NewBot(
	api API,
	accounts usecase.AccountUseCase,
	payments usecase.PaymentUseCase,
	referrals usecase.ReferralUseCase,
	notifier coreport.Notifier,
	logger coreport.Logger,
	opts BotOptions,
) *Bot {
	if opts.MaxInflight <= 0 {
		opts.MaxInflight = 32
	}
	if opts.PollTimeoutSeconds <= 0 {
		opts.PollTimeoutSeconds = 30
	}
	return &Bot{
		api:       api,
		accounts:  accounts,
		payments:  payments,
		referrals: referrals,
		notifier:  notifier,
		logger:    logger,
		opts:      opts,
		inflight:  make(chan struct{}, opts.MaxInflight),
	}
}

// Run long-polls updates until ctx is done, then waits for the updates in
// flight to finish
func (b *Bot) Run(ctx context.Context) error {
	updates, err := b.api.UpdatesViaLongPolling(ctx, &telego.GetUpdatesParams{
		Timeout:        b.opts.PollTimeoutSeconds,
		AllowedUpdates: []string{"message", "pre_checkout_query"},
	})
	if err != nil {
		return fmt.Errorf("start long polling: %w", err)
	}

	b.logger.Info("Bot started", map[string]any{
		"max_inflight": b.opts.MaxInflight,
		"timeout_sec":  b.opts.PollTimeoutSeconds,
	})
	defer b.wg.Wait()

	for {
		select {
		case <-ctx.Done():
			b.logger.Info("Bot stopping", nil)
			return nil
		case update, ok := <-updates:
			if !ok {
				b.logger.Info("Update channel closed, bot stopped", nil)
				return nil
			}
			select {
			case b.inflight <- struct{}{}:
			case <-ctx.Done():
				return nil
			}
			b.wg.Add(1)
			go func(upd telego.Update) {
				defer func() {
					<-b.inflight
					b.wg.Done()
				}()
				b.HandleUpdate(ctx, upd)
			}(update)
		}
	}
}

// HandleUpdate processes one update. Panics are recovered and logged.
func (b *Bot) HandleUpdate(ctx context.Context, update telego.Update) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("Panic while handling update", map[string]any{
				"update_id": update.UpdateID,
				"panic":     fmt.Sprint(r),
				"stack":     string(debug.Stack()),
			})
		}
	}()

	switch {
	case update.PreCheckoutQuery != nil:
		b.handlePreCheckout(ctx, update.PreCheckoutQuery)
	case update.Message != nil && update.Message.SuccessfulPayment != nil:
		b.handleSuccessfulPayment(ctx, update.Message)
	case update.Message != nil && strings.HasPrefix(update.Message.Text, "/start"):
		b.handleStart(ctx, update.Message)
	}
}

func (b *Bot) handleStart(ctx context.Context, msg *telego.Message) {
	if msg.From == nil {
		return
	}
	userID := msg.From.ID

	if err := b.accounts.EnsureUser(ctx, userID); err != nil {
		b.logger.Error("Failed to ensure user on /start", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		return
	}

	if referrerID, ok := parseStartReferrer(msg.Text); ok {
		if _, err := b.referrals.BindReferral(ctx, userID, referrerID); err != nil {
			b.logger.Error("Referral bind from /start failed", map[string]any{
				"user_id":     userID,
				"referrer_id": referrerID,
				"error":       err.Error(),
			})
		}
	}

	reply := tu.Message(tu.ID(msg.Chat.ID), "Welcome! Open the roulette to spin cases for Stars and prizes.")
	if b.opts.WebAppURL != "" {
		reply = reply.WithReplyMarkup(tu.InlineKeyboard(tu.InlineKeyboardRow(
			tu.InlineKeyboardButton("Open roulette").WithWebApp(tu.WebAppInfo(b.opts.WebAppURL)),
		)))
	}
	b.send(ctx, reply)
}

// parseStartReferrer reads the referrer id from "/start ref_<id>"
func parseStartReferrer(text string) (int64, bool) {
	fields := strings.Fields(text)
	if len(fields) < 2 {
		return 0, false
	}
	raw, ok := strings.CutPrefix(fields[1], refPrefix)
	if !ok {
		return 0, false
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// handlePreCheckout approves Stars deposits issued for the paying user
func (b *Bot) handlePreCheckout(ctx context.Context, q *telego.PreCheckoutQuery) {
	params := &telego.AnswerPreCheckoutQueryParams{PreCheckoutQueryID: q.ID, Ok: true}

	userID, amount, ok := account.ParseDepositPayload(q.InvoicePayload)
	switch {
	case q.Currency != StarsCurrency:
		params.Ok, params.ErrorMessage = false, "Only Telegram Stars are accepted."
	case !ok:
		params.Ok, params.ErrorMessage = false, "Unknown invoice."
	case userID != q.From.ID || amount != int64(q.TotalAmount):
		params.Ok, params.ErrorMessage = false, "This invoice was issued for another payment."
	}

	if err := b.api.AnswerPreCheckoutQuery(ctx, params); err != nil {
		b.logger.Error("Failed to answer pre-checkout query", map[string]any{
			"user_id": q.From.ID,
			"error":   err.Error(),
		})
		return
	}
	b.logger.Info("Pre-checkout answered", map[string]any{
		"user_id": q.From.ID,
		"amount":  q.TotalAmount,
		"ok":      params.Ok,
	})
}

func (b *Bot) handleSuccessfulPayment(ctx context.Context, msg *telego.Message) {
	payment := msg.SuccessfulPayment
	if msg.From == nil || payment.Currency != StarsCurrency {
		return
	}

	result, err := b.payments.ConfirmPayment(ctx, msg.From.ID, payment.TelegramPaymentChargeID, int64(payment.TotalAmount))
	if err != nil {
		b.logger.Error("Payment confirmation failed", map[string]any{
			"user_id":   msg.From.ID,
			"charge_id": payment.TelegramPaymentChargeID,
			"amount":    payment.TotalAmount,
			"error":     err.Error(),
		})
		if errors.Is(err, errs.ErrShuttingDown) {
			return
		}
		text := "We could not credit your payment yet. Please contact support and keep your payment receipt."
		alert := fmt.Sprintf("Deposit not credited: user %d, charge %s, %d Stars: %v",
			msg.From.ID, payment.TelegramPaymentChargeID, payment.TotalAmount, err)
		if b.alertSupport(ctx, alert) {
			text = "We could not credit your payment yet. Support has been notified."
		}
		b.send(ctx, tu.Message(tu.ID(msg.Chat.ID), text))
		return
	}

	text := fmt.Sprintf("Payment received: +%d Stars. Balance: %d.", result.Credited, result.Balance)
	if result.Outcome == entity.PaymentAlreadyProcessed {
		text = "This payment was already credited."
	}
	b.send(ctx, tu.Message(tu.ID(msg.Chat.ID), text))
}

// alertSupport reports whether at least one support chat got the alert
func (b *Bot) alertSupport(ctx context.Context, text string) bool {
	if b.notifier == nil {
		return false
	}
	delivered := false
	for _, chatID := range b.opts.SupportChatIDs {
		if err := b.notifier.Notify(ctx, chatID, text); err != nil {
			b.logger.Warn("Failed to alert support chat", map[string]any{
				"chat_id": chatID,
				"error":   err.Error(),
			})
			continue
		}
		delivered = true
	}
	return delivered
}

func (b *Bot) send(ctx context.Context, params *telego.SendMessageParams) {
	if _, err := b.api.SendMessage(ctx, params); err != nil {
		b.logger.Warn("Failed to send bot message", map[string]any{
			"chat_id": params.ChatID.ID,
			"error":   err.Error(),
		})
	}
}
