package admin

import (
	"context"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/stars-roulette/internal/domain/entity"
	errs "github.com/amirhossein-jamali/stars-roulette/internal/domain/error"
	"github.com/amirhossein-jamali/stars-roulette/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/stars-roulette/internal/domain/usecase/account"
	"github.com/amirhossein-jamali/stars-roulette/internal/domain/usecase/ledger"
	"github.com/amirhossein-jamali/stars-roulette/internal/domain/usecase/roulette"
	"github.com/amirhossein-jamali/stars-roulette/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/stars-roulette/internal/infrastructure/adapter/memory"
	"github.com/amirhossein-jamali/stars-roulette/internal/infrastructure/adapter/random"
	timeadapter "github.com/amirhossein-jamali/stars-roulette/internal/infrastructure/adapter/time"
	mockprovider "github.com/amirhossein-jamali/stars-roulette/mocks/port/provider"
)

var epoch = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

type fixture struct {
	svc      *Service
	accounts *account.Service
	spins    *roulette.Service
	store    *memory.Store
	uow      *memory.UnitOfWork
}

func newFixture(t *testing.T) *fixture {
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
	resolver := roulette.NewResolver(uow, log)

	// Draws always land on the first prize of the case
	spins := roulette.NewService(executor, resolver, roulette.NewSelector(random.NewSequence(0)), economy, log, clock)

	return &fixture{
		svc:      NewService(executor, resolver, economy, log, clock),
		accounts: account.NewService(executor, economy, admins, nil, log, clock, "bot"),
		spins:    spins,
		store:    store,
		uow:      uow,
	}
}

func (f *fixture) putUser(id, balance, sneakers, bracelet int64) {
	f.store.PutUser(entity.RestoreUser(id, balance, sneakers, bracelet, nil, epoch, epoch))
}

func (f *fixture) balance(t *testing.T, id int64) int64 {
	t.Helper()
	u, ok := f.store.User(id)
	require.True(t, ok)
	return u.Balance()
}

func TestService_Cases(t *testing.T) {
	t.Run("Empty store is seeded with defaults", func(t *testing.T) {
		f := newFixture(t)

		cases, err := f.svc.GetCases(context.Background())

		require.NoError(t, err)
		require.Len(t, cases, 1)
		assert.Equal(t, "r1", cases[0].ID)
	})

	t.Run("Replace all cases", func(t *testing.T) {
		f := newFixture(t)
		disabled := false

		cases, err := f.svc.PutCases(context.Background(), []entity.RawCase{
			{ID: "b", Prizes: []entity.RawPrize{{Code: "stars_10", Type: "stars", Amount: 10, Weight: 1}}},
			{ID: "a", SpinCost: 50, Enabled: &disabled},
		})

		require.NoError(t, err)
		require.Len(t, cases, 2)
		assert.Equal(t, "a", cases[0].ID)
		assert.False(t, cases[0].Enabled)
		assert.Equal(t, entity.DefaultSpinCost, cases[1].SpinCost)
	})

	t.Run("Nothing is written when one case is invalid", func(t *testing.T) {
		f := newFixture(t)
		f.store.PutCases(entity.DefaultCases()...)

		testCases := [][]entity.RawCase{
			nil,
			{{ID: "a"}, {ID: "a"}},
			{{ID: "a"}, {ID: ""}},
			{{ID: "a", Prizes: []entity.RawPrize{{Code: "x", Type: "car"}}}},
		}
		for _, cases := range testCases {
			_, err := f.svc.PutCases(context.Background(), cases)
			assert.ErrorIs(t, err, errs.ErrInvalidCase)
		}

		cases, err := f.svc.GetCases(context.Background())
		require.NoError(t, err)
		require.Len(t, cases, 1)
		assert.Equal(t, "r1", cases[0].ID)
	})
}

func TestService_PrizeWeights(t *testing.T) {
	f := newFixture(t)
	f.store.PutCases(entity.DefaultCases()...)

	updated, err := f.svc.PutPrizeWeights(context.Background(), "r1", []entity.PrizeWeight{
		{Code: "stars_50", Weight: 0, Enabled: true},
		{Code: "shoes", Weight: 40, Enabled: false},
	})
	require.NoError(t, err)
	p, _ := updated.PrizeByCode("shoes")
	assert.Equal(t, int64(40), p.Weight)
	assert.False(t, p.Enabled)

	got, err := f.svc.GetPrizeWeights(context.Background(), "r1")
	require.NoError(t, err)
	p, _ = got.PrizeByCode("stars_50")
	assert.Zero(t, p.Weight)
	assert.False(t, p.Eligible())

	_, err = f.svc.PutPrizeWeights(context.Background(), "nope", nil)
	assert.ErrorIs(t, err, errs.ErrUnknownCase)
}

func TestService_SetWithdrawStatus(t *testing.T) {
	t.Run("Rejection refunds the amount", func(t *testing.T) {
		f := newFixture(t)
		f.putUser(1, 1500, 0, 0)
		res, err := f.accounts.Withdraw(context.Background(), 1, 1000)
		require.NoError(t, err)

		_, err = f.svc.SetWithdrawStatus(context.Background(), res.Request.ID, "processing")
		require.NoError(t, err)
		req, err := f.svc.SetWithdrawStatus(context.Background(), res.Request.ID, "rejected")
		require.NoError(t, err)

		assert.Equal(t, entity.StatusRejected, req.Status)
		assert.Equal(t, int64(1500), f.balance(t, 1))
		rows := f.store.Transactions(1)
		require.Len(t, rows, 2)
		refund, ok := rows[1].Meta.(*entity.WithdrawRefundMeta)
		require.True(t, ok)
		assert.Equal(t, res.Request.ID, refund.WithdrawRequestID)
		assert.Equal(t, int64(1000), rows[1].Amount)

		t.Run("Terminal status is final", func(t *testing.T) {
			_, err := f.svc.SetWithdrawStatus(context.Background(), res.Request.ID, "rejected")
			assert.ErrorIs(t, err, errs.ErrInvalidStatusTransition)
			assert.Equal(t, int64(1500), f.balance(t, 1))
		})
	})

	t.Run("Completion keeps the debit", func(t *testing.T) {
		f := newFixture(t)
		f.putUser(1, 1500, 0, 0)
		res, err := f.accounts.Withdraw(context.Background(), 1, 1000)
		require.NoError(t, err)

		_, err = f.svc.SetWithdrawStatus(context.Background(), res.Request.ID, "completed")

		require.NoError(t, err)
		assert.Equal(t, int64(500), f.balance(t, 1))
		assert.Len(t, f.store.Transactions(1), 1)
	})

	t.Run("Errors", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.SetWithdrawStatus(context.Background(), 1, "done")
		assert.ErrorIs(t, err, errs.ErrInvalidStatus)

		_, err = f.svc.SetWithdrawStatus(context.Background(), 99, "completed")
		assert.ErrorIs(t, err, errs.ErrRequestNotFound)

		_, err = f.svc.SetWithdrawStatus(context.Background(), 0, "completed")
		assert.ErrorIs(t, err, errs.ErrRequestNotFound)
	})
}

func TestService_SetPrizeRequestStatus(t *testing.T) {
	f := newFixture(t)
	f.putUser(1, 0, 3, 5)
	res, err := f.accounts.RequestPrize(context.Background(), 1, "bracelet")
	require.NoError(t, err)
	require.Zero(t, res.TicketsBracelet)

	_, err = f.svc.SetPrizeRequestStatus(context.Background(), res.Request.ID, "pending")
	assert.ErrorIs(t, err, errs.ErrInvalidStatus)

	req, err := f.svc.SetPrizeRequestStatus(context.Background(), res.Request.ID, "rejected")
	require.NoError(t, err)
	assert.Equal(t, entity.StatusRejected, req.Status)

	u, _ := f.store.User(1)
	assert.Equal(t, int64(5), u.TicketsBracelet())
	assert.Equal(t, int64(3), u.TicketsSneakers())

	rows := f.store.Transactions(1)
	require.Len(t, rows, 2)
	refund, ok := rows[1].Meta.(*entity.PrizeRequestRefundMeta)
	require.True(t, ok)
	assert.Equal(t, int64(5), refund.Tickets)
	assert.Equal(t, entity.TicketBracelet, refund.PrizeType)

	list, err := f.svc.ListPrizeRequests(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, entity.StatusRejected, list[0].Status)
}

func TestService_Adjust(t *testing.T) {
	t.Run("Applies every delta with one row", func(t *testing.T) {
		f := newFixture(t)
		f.putUser(1, 100, 1, 1)

		u, err := f.svc.Adjust(context.Background(), usecase.AdjustRequest{
			AdminID:       9,
			UserID:        1,
			BalanceDelta:  -40,
			SneakersDelta: 4,
			BraceletDelta: -1,
			Note:          "  goodwill  ",
		})

		require.NoError(t, err)
		assert.Equal(t, int64(60), u.Balance())
		assert.Equal(t, int64(5), u.TicketsSneakers())
		assert.Zero(t, u.TicketsBracelet())

		rows := f.store.Transactions(1)
		require.Len(t, rows, 1)
		assert.Equal(t, entity.TxAdminAdjust, rows[0].Type)
		assert.Equal(t, int64(-40), rows[0].Amount)
		assert.Equal(t, "Admin adjustment: goodwill", rows[0].Description)
		meta, ok := rows[0].Meta.(*entity.AdminAdjustMeta)
		require.True(t, ok)
		assert.Equal(t, int64(9), meta.By)
		assert.Equal(t, "goodwill", meta.Note)
	})

	t.Run("Creates the user when missing", func(t *testing.T) {
		f := newFixture(t)

		u, err := f.svc.Adjust(context.Background(), usecase.AdjustRequest{UserID: 5, BalanceDelta: 10})

		require.NoError(t, err)
		assert.Equal(t, int64(10), u.Balance())
	})

	t.Run("Refused when a counter would go negative", func(t *testing.T) {
		f := newFixture(t)
		f.putUser(1, 100, 0, 0)

		_, err := f.svc.Adjust(context.Background(), usecase.AdjustRequest{UserID: 1, BalanceDelta: 50, SneakersDelta: -1})

		assert.ErrorIs(t, err, errs.ErrNegativeBalance)
		assert.Equal(t, int64(100), f.balance(t, 1))
		assert.Empty(t, f.store.Transactions(1))
	})

	t.Run("Long notes are cut", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.Adjust(context.Background(), usecase.AdjustRequest{UserID: 1, Note: strings.Repeat("é", 300)})

		require.NoError(t, err)
		meta := f.store.Transactions(1)[0].Meta.(*entity.AdminAdjustMeta)
		assert.Equal(t, 200, utf8.RuneCountInString(meta.Note))
	})
}

func TestService_PendingDigest(t *testing.T) {
	f := newFixture(t)
	f.putUser(1, 5000, 10, 0)

	for _, amount := range []int64{1000, 1200, 1300} {
		_, err := f.accounts.Withdraw(context.Background(), 1, amount)
		require.NoError(t, err)
	}
	_, err := f.accounts.RequestPrize(context.Background(), 1, "sneakers")
	require.NoError(t, err)

	withdraws, err := f.svc.ListWithdrawRequests(context.Background())
	require.NoError(t, err)
	require.Len(t, withdraws, 3)
	_, err = f.svc.SetWithdrawStatus(context.Background(), withdraws[0].ID, "completed")
	require.NoError(t, err)

	digest, err := f.svc.PendingDigest(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(2), digest.PendingWithdraws)
	assert.Equal(t, 3500-withdraws[0].Amount, digest.PendingAmount)
	assert.Equal(t, int64(1), digest.NewPrizeRequests)
}

func TestService_ReconcileTicketProgress(t *testing.T) {
	f := newFixture(t)
	f.store.PutCases(entity.RawCase{
		ID:       "r1",
		SpinCost: 100,
		Prizes:   []entity.RawPrize{{Code: "bracelet", Type: "item", Amount: 2, Weight: 1}},
	})
	f.putUser(1, 300, 0, 0)

	for range 3 {
		_, err := f.spins.Spin(context.Background(), 1, "r1")
		require.NoError(t, err)
	}
	require.Equal(t, int64(6), f.store.Progress(1)["bracelet"])

	n, err := f.svc.ReconcileTicketProgress(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)

	progress := f.uow.GetTicketProgressRepository(context.Background())
	require.NoError(t, progress.Add(context.Background(), 1, "bracelet", 5))
	require.NoError(t, progress.Add(context.Background(), 2, "shoes", 1))

	n, err = f.svc.ReconcileTicketProgress(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
	assert.Equal(t, int64(6), f.store.Progress(1)["bracelet"])
	assert.Zero(t, f.store.Progress(2)["shoes"])
}
