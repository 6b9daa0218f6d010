package telegram

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/mymmrac/telego"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/stars-roulette/internal/domain/entity"
	"github.com/amirhossein-jamali/stars-roulette/internal/infrastructure/adapter/logger"
	mockcore "github.com/amirhossein-jamali/stars-roulette/mocks/port/core"
	mockusecase "github.com/amirhossein-jamali/stars-roulette/mocks/port/usecase"
)

type botFixture struct {
	api       *fakeAPI
	accounts  *mockusecase.MockAccountUseCase
	payments  *mockusecase.MockPaymentUseCase
	referrals *mockusecase.MockReferralUseCase
	notifier  *mockcore.MockNotifier
	bot       *Bot
}

func newBotFixture(t *testing.T) *botFixture {
	f := &botFixture{
		api:       newFakeAPI(),
		accounts:  mockusecase.NewMockAccountUseCase(t),
		payments:  mockusecase.NewMockPaymentUseCase(t),
		referrals: mockusecase.NewMockReferralUseCase(t),
		notifier:  mockcore.NewMockNotifier(t),
	}
	f.bot = NewBot(f.api, f.accounts, f.payments, f.referrals, f.notifier, logger.NewNoopLogger(), BotOptions{
		MaxInflight:    2,
		WebAppURL:      "https://example.org/app",
		SupportChatIDs: []int64{900},
	})
	return f
}

func startMessage(userID int64, text string) telego.Update {
	return telego.Update{Message: &telego.Message{
		From: &telego.User{ID: userID},
		Chat: telego.Chat{ID: userID},
		Text: text,
	}}
}

func TestBot_StartWithReferral(t *testing.T) {
	f := newBotFixture(t)
	f.accounts.EXPECT().EnsureUser(mock.Anything, int64(42)).Return(nil).Once()
	f.referrals.EXPECT().BindReferral(mock.Anything, int64(42), int64(7)).
		Return(&entity.BindResult{Bound: true}, nil).Once()

	f.bot.HandleUpdate(context.Background(), startMessage(42, "/start ref_7"))

	sent := f.api.sent()
	require.Len(t, sent, 1)
	assert.Equal(t, int64(42), sent[0].ChatID.ID)
	assert.NotNil(t, sent[0].ReplyMarkup)
}

func TestBot_StartWithoutReferral(t *testing.T) {
	f := newBotFixture(t)
	f.accounts.EXPECT().EnsureUser(mock.Anything, int64(42)).Return(nil).Times(2)

	f.bot.HandleUpdate(context.Background(), startMessage(42, "/start"))
	f.bot.HandleUpdate(context.Background(), startMessage(42, "/start promo"))

	f.referrals.AssertNotCalled(t, "BindReferral", mock.Anything, mock.Anything, mock.Anything)
	sent := f.api.sent()
	require.Len(t, sent, 2)
	for _, msg := range sent {
		assert.Equal(t, int64(42), msg.ChatID.ID)
		assert.NotNil(t, msg.ReplyMarkup)
	}
}

func TestParseStartReferrer(t *testing.T) {
	tests := []struct {
		text string
		id   int64
		ok   bool
	}{
		{"/start ref_7", 7, true},
		{"/start ref_", 0, false},
		{"/start ref_-3", 0, false},
		{"/start abc", 0, false},
		{"/start", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			id, ok := parseStartReferrer(tt.text)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.id, id)
		})
	}
}

func TestBot_PreCheckout(t *testing.T) {
	tests := []struct {
		name     string
		query    telego.PreCheckoutQuery
		approved bool
	}{
		{
			name:     "matching deposit",
			query:    telego.PreCheckoutQuery{ID: "q", From: telego.User{ID: 42}, Currency: "XTR", TotalAmount: 250, InvoicePayload: "deposit:42:250"},
			approved: true,
		},
		{
			name:  "other currency",
			query: telego.PreCheckoutQuery{ID: "q", From: telego.User{ID: 42}, Currency: "USD", TotalAmount: 250, InvoicePayload: "deposit:42:250"},
		},
		{
			name:  "foreign payload",
			query: telego.PreCheckoutQuery{ID: "q", From: telego.User{ID: 42}, Currency: "XTR", TotalAmount: 250, InvoicePayload: "gift"},
		},
		{
			name:  "other user",
			query: telego.PreCheckoutQuery{ID: "q", From: telego.User{ID: 43}, Currency: "XTR", TotalAmount: 250, InvoicePayload: "deposit:42:250"},
		},
		{
			name:  "amount mismatch",
			query: telego.PreCheckoutQuery{ID: "q", From: telego.User{ID: 42}, Currency: "XTR", TotalAmount: 1, InvoicePayload: "deposit:42:250"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newBotFixture(t)
			q := tt.query
			f.bot.HandleUpdate(context.Background(), telego.Update{PreCheckoutQuery: &q})

			require.Len(t, f.api.answers, 1)
			assert.Equal(t, tt.approved, f.api.answers[0].Ok)
			assert.Equal(t, "q", f.api.answers[0].PreCheckoutQueryID)
			if !tt.approved {
				assert.NotEmpty(t, f.api.answers[0].ErrorMessage)
			}
		})
	}
}

func paymentUpdate(userID int64, chargeID string, amount int) telego.Update {
	return telego.Update{Message: &telego.Message{
		From: &telego.User{ID: userID},
		Chat: telego.Chat{ID: userID},
		SuccessfulPayment: &telego.SuccessfulPayment{
			Currency:                "XTR",
			TotalAmount:             amount,
			InvoicePayload:          "deposit:42:500",
			TelegramPaymentChargeID: chargeID,
		},
	}}
}

func TestBot_SuccessfulPayment(t *testing.T) {
	f := newBotFixture(t)
	f.payments.EXPECT().ConfirmPayment(mock.Anything, int64(42), "charge-1", int64(500)).
		Return(&entity.PaymentResult{Outcome: entity.PaymentCredited, Credited: 500, Balance: 500}, nil).Once()

	f.bot.HandleUpdate(context.Background(), paymentUpdate(42, "charge-1", 500))

	sent := f.api.sent()
	require.Len(t, sent, 1)
	assert.Contains(t, sent[0].Text, "+500")
}

func TestBot_SuccessfulPaymentDuplicate(t *testing.T) {
	f := newBotFixture(t)
	f.payments.EXPECT().ConfirmPayment(mock.Anything, int64(42), "charge-1", int64(500)).
		Return(&entity.PaymentResult{Outcome: entity.PaymentAlreadyProcessed}, nil).Once()

	f.bot.HandleUpdate(context.Background(), paymentUpdate(42, "charge-1", 500))

	sent := f.api.sent()
	require.Len(t, sent, 1)
	assert.Contains(t, sent[0].Text, "already")
}

func TestBot_PanicIsRecovered(t *testing.T) {
	f := newBotFixture(t)
	f.payments.EXPECT().ConfirmPayment(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, int64, string, int64) (*entity.PaymentResult, error) {
			panic("boom")
		}).Once()

	assert.NotPanics(t, func() {
		f.bot.HandleUpdate(context.Background(), paymentUpdate(42, "charge-1", 500))
	})
}

func TestBot_PaymentFailureNotifiesUser(t *testing.T) {
	alert := mock.MatchedBy(func(text string) bool {
		return strings.Contains(text, "charge-1") && strings.Contains(text, "user 42")
	})

	t.Run("support alerted", func(t *testing.T) {
		f := newBotFixture(t)
		f.payments.EXPECT().ConfirmPayment(mock.Anything, int64(42), "charge-1", int64(500)).
			Return(nil, errors.New("db down")).Once()
		f.notifier.EXPECT().Notify(mock.Anything, int64(900), alert).Return(nil).Once()

		f.bot.HandleUpdate(context.Background(), paymentUpdate(42, "charge-1", 500))

		sent := f.api.sent()
		require.Len(t, sent, 1)
		assert.Equal(t, int64(42), sent[0].ChatID.ID)
		assert.Contains(t, sent[0].Text, "Support has been notified")
	})

	t.Run("alert undelivered", func(t *testing.T) {
		f := newBotFixture(t)
		f.payments.EXPECT().ConfirmPayment(mock.Anything, int64(42), "charge-1", int64(500)).
			Return(nil, errors.New("db down")).Once()
		f.notifier.EXPECT().Notify(mock.Anything, int64(900), alert).Return(errors.New("blocked")).Once()

		f.bot.HandleUpdate(context.Background(), paymentUpdate(42, "charge-1", 500))

		sent := f.api.sent()
		require.Len(t, sent, 1)
		assert.Contains(t, sent[0].Text, "contact support")
		assert.NotContains(t, sent[0].Text, "notified")
	})
}

func TestBot_RunStopsOnContext(t *testing.T) {
	f := newBotFixture(t)
	f.accounts.EXPECT().EnsureUser(mock.Anything, int64(5)).Return(nil).Once()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- f.bot.Run(ctx) }()

	f.api.updates <- startMessage(5, "/start")
	require.Eventually(t, func() bool { return len(f.api.sent()) == 1 }, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("bot did not stop")
	}
}
