package account

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/stars-roulette/internal/domain/entity"
	errs "github.com/amirhossein-jamali/stars-roulette/internal/domain/error"
	coreport "github.com/amirhossein-jamali/stars-roulette/internal/domain/port/core"
	"github.com/amirhossein-jamali/stars-roulette/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/stars-roulette/internal/domain/usecase/ledger"
	"github.com/amirhossein-jamali/stars-roulette/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/stars-roulette/internal/infrastructure/adapter/memory"
	timeadapter "github.com/amirhossein-jamali/stars-roulette/internal/infrastructure/adapter/time"
	mockcore "github.com/amirhossein-jamali/stars-roulette/mocks/port/core"
	mockprovider "github.com/amirhossein-jamali/stars-roulette/mocks/port/provider"
)

var epoch = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

type fixture struct {
	svc      *Service
	store    *memory.Store
	admins   *mockprovider.MockAdminDirectory
	invoices *mockcore.MockInvoiceProvider
}

func newFixture(t *testing.T, withInvoices bool) *fixture {
	t.Helper()

	store := memory.NewStore()
	clock := timeadapter.NewManualTimeProvider(epoch)
	uow := memory.NewUnitOfWork(store)
	log := logger.NewNoopLogger()
	executor := ledger.NewExecutor(uow, log, clock, ledger.Options{})
	t.Cleanup(executor.Shutdown)

	economy := mockprovider.NewMockEconomySource(t)
	economy.EXPECT().Snapshot().Return(entity.DefaultEconomySettings()).Maybe()
	admins := mockprovider.NewMockAdminDirectory(t)

	f := &fixture{store: store, admins: admins}
	var invoices coreport.InvoiceProvider
	if withInvoices {
		f.invoices = mockcore.NewMockInvoiceProvider(t)
		invoices = f.invoices
	}
	f.svc = NewService(executor, economy, admins, invoices, log, clock, "@stars_roulette_bot")
	return f
}

func (f *fixture) putUser(id, balance, sneakers, bracelet int64) {
	f.store.PutUser(entity.RestoreUser(id, balance, sneakers, bracelet, nil, epoch, epoch))
}

func TestService_GetProfile(t *testing.T) {
	f := newFixture(t, false)
	f.admins.EXPECT().IsAdmin(int64(7)).Return(true)

	p, err := f.svc.GetProfile(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, int64(7), p.UserID)
	assert.Zero(t, p.Balance)
	assert.True(t, p.IsAdmin)
	assert.Equal(t, "https://t.me/stars_roulette_bot?start=ref_7", p.RefLink)

	_, ok := f.store.User(7)
	assert.True(t, ok, "profile creates the user lazily")
}

func TestService_EnsureUserIsIdempotent(t *testing.T) {
	f := newFixture(t, false)
	f.putUser(7, 500, 1, 2)

	require.NoError(t, f.svc.EnsureUser(context.Background(), 7))

	u, _ := f.store.User(7)
	assert.Equal(t, int64(500), u.Balance())
	assert.ErrorIs(t, f.svc.EnsureUser(context.Background(), 0), errs.ErrInvalidUserID)
}

func TestService_History(t *testing.T) {
	f := newFixture(t, false)
	f.putUser(1, 100_000, 0, 0)

	for range 60 {
		_, err := f.svc.Withdraw(context.Background(), 1, 1000)
		require.NoError(t, err)
	}

	rows, err := f.svc.History(context.Background(), 1)

	require.NoError(t, err)
	assert.Len(t, rows, 50)
	assert.Greater(t, rows[0].ID, rows[1].ID, "newest first")
}

func TestService_Withdraw(t *testing.T) {
	t.Run("Debits and queues a pending request", func(t *testing.T) {
		f := newFixture(t, false)
		f.putUser(1, 1500, 0, 0)

		res, err := f.svc.Withdraw(context.Background(), 1, 1000)

		require.NoError(t, err)
		assert.Equal(t, int64(500), res.Balance)
		assert.Equal(t, entity.StatusPending, res.Request.Status)
		assert.Positive(t, res.Request.ID)

		rows := f.store.Transactions(1)
		require.Len(t, rows, 1)
		assert.Equal(t, entity.TxWithdraw, rows[0].Type)
		assert.Equal(t, int64(-1000), rows[0].Amount)
		meta, ok := rows[0].Meta.(*entity.WithdrawMeta)
		require.True(t, ok)
		assert.Equal(t, res.Request.ID, meta.WithdrawRequestID)
	})

	t.Run("Below minimum", func(t *testing.T) {
		f := newFixture(t, false)
		f.putUser(1, 5000, 0, 0)

		_, err := f.svc.Withdraw(context.Background(), 1, 999)

		var belowErr *errs.BelowMinimumError
		require.ErrorAs(t, err, &belowErr)
		assert.Equal(t, int64(1000), belowErr.Minimum)
		assert.Empty(t, f.store.Transactions(1))
	})

	t.Run("Insufficient balance", func(t *testing.T) {
		f := newFixture(t, false)
		f.putUser(1, 999, 0, 0)

		_, err := f.svc.Withdraw(context.Background(), 1, 1000)

		assert.True(t, errs.IsInsufficientBalanceError(err))
		u, _ := f.store.User(1)
		assert.Equal(t, int64(999), u.Balance())
	})

	t.Run("Request write failure rolls back the debit", func(t *testing.T) {
		f := newFixture(t, false)
		f.putUser(1, 2000, 0, 0)
		f.store.FailOn("withdraws.create", errors.New("connection reset"))

		_, err := f.svc.Withdraw(context.Background(), 1, 1000)

		require.Error(t, err)
		u, _ := f.store.User(1)
		assert.Equal(t, int64(2000), u.Balance())
	})

	t.Run("Invalid amount", func(t *testing.T) {
		f := newFixture(t, false)

		_, err := f.svc.Withdraw(context.Background(), 1, 0)

		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	})
}

func TestService_RequestPrize(t *testing.T) {
	testCases := []struct {
		name         string
		prizeType    string
		sneakers     int64
		bracelet     int64
		wantErr      error
		wantSneakers int64
		wantBracelet int64
	}{
		{"Sneakers", "sneakers", 12, 0, nil, 2, 0},
		{"Bracelet", "bracelet", 0, 5, nil, 0, 0},
		{"Not enough sneakers tickets", "sneakers", 9, 50, errs.ErrInsufficientTickets, 9, 50},
		{"Unknown prize type", "watch", 100, 100, errs.ErrInvalidPrizeType, 100, 100},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t, false)
			f.putUser(1, 0, tc.sneakers, tc.bracelet)

			res, err := f.svc.RequestPrize(context.Background(), 1, tc.prizeType)

			u, _ := f.store.User(1)
			assert.Equal(t, tc.wantSneakers, u.TicketsSneakers())
			assert.Equal(t, tc.wantBracelet, u.TicketsBracelet())
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				assert.Empty(t, f.store.Transactions(1))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, entity.StatusNew, res.Request.Status)
			rows := f.store.Transactions(1)
			require.Len(t, rows, 1)
			assert.Zero(t, rows[0].Amount)
			assert.IsType(t, &entity.PrizeRedemptionMeta{}, rows[0].Meta)
		})
	}
}

func TestService_CreateInvoice(t *testing.T) {
	t.Run("Issues a link with a deposit payload", func(t *testing.T) {
		f := newFixture(t, true)
		f.invoices.EXPECT().
			CreateInvoiceLink(mock.Anything, coreport.Invoice{
				UserID:      1,
				Amount:      250,
				Title:       "Top up",
				Description: "Top up 250 Stars",
				Payload:     "deposit:1:250",
			}).
			Return("https://t.me/$invoice", nil)

		link, err := f.svc.CreateInvoice(context.Background(), 1, usecase.InvoiceRequest{Amount: 250})

		require.NoError(t, err)
		assert.Equal(t, "https://t.me/$invoice", link)
		assert.Empty(t, f.store.Transactions(1), "nothing is credited before payment")
	})

	t.Run("Provider failure", func(t *testing.T) {
		f := newFixture(t, true)
		f.invoices.EXPECT().CreateInvoiceLink(mock.Anything, mock.Anything).Return("", errors.New("Bad Request"))

		_, err := f.svc.CreateInvoice(context.Background(), 1, usecase.InvoiceRequest{Amount: 10})

		assert.ErrorIs(t, err, errs.ErrInvoiceUnavailable)
	})

	t.Run("No bot configured", func(t *testing.T) {
		f := newFixture(t, false)

		_, err := f.svc.CreateInvoice(context.Background(), 1, usecase.InvoiceRequest{Amount: 10})

		assert.ErrorIs(t, err, errs.ErrInvoiceUnavailable)
	})

	t.Run("Amount out of range", func(t *testing.T) {
		f := newFixture(t, true)

		for _, amount := range []int64{0, -1, entity.DefaultMaxInvoiceAmount + 1} {
			_, err := f.svc.CreateInvoice(context.Background(), 1, usecase.InvoiceRequest{Amount: amount})
			assert.ErrorIs(t, err, errs.ErrInvalidAmount)
		}
	})
}

func TestParseDepositPayload(t *testing.T) {
	testCases := []struct {
		payload    string
		wantOK     bool
		wantUser   int64
		wantAmount int64
	}{
		{DepositPayload(42, 500), true, 42, 500},
		{"deposit:1:1", true, 1, 1},
		{"deposit:0:10", false, 0, 0},
		{"deposit:5:-3", false, 0, 0},
		{"deposit:5", false, 0, 0},
		{"deposit:x:10", false, 0, 0},
		{"spin:1:10", false, 0, 0},
		{"", false, 0, 0},
	}

	for _, tc := range testCases {
		t.Run(fmt.Sprintf("%q", tc.payload), func(t *testing.T) {
			uid, amount, ok := ParseDepositPayload(tc.payload)

			assert.Equal(t, tc.wantOK, ok)
			assert.Equal(t, tc.wantUser, uid)
			assert.Equal(t, tc.wantAmount, amount)
		})
	}
}
