package roulette

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/stars-roulette/internal/domain/entity"
	errs "github.com/amirhossein-jamali/stars-roulette/internal/domain/error"
	"github.com/amirhossein-jamali/stars-roulette/internal/domain/usecase/ledger"
	"github.com/amirhossein-jamali/stars-roulette/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/stars-roulette/internal/infrastructure/adapter/memory"
	"github.com/amirhossein-jamali/stars-roulette/internal/infrastructure/adapter/random"
	timeadapter "github.com/amirhossein-jamali/stars-roulette/internal/infrastructure/adapter/time"
	mockprovider "github.com/amirhossein-jamali/stars-roulette/mocks/port/provider"
)

var epoch = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func ptr[T any](v T) *T { return &v }

// Draw values below 10 hit stars_50, 10..19 hit shoes
func testCase() entity.RawCase {
	return entity.RawCase{
		ID:       "r1",
		Title:    "Classic",
		SpinCost: 150,
		Prizes: []entity.RawPrize{
			{Code: "stars_50", Type: "stars", Amount: 50, Weight: 10},
			{Code: "shoes", Type: "item", Amount: 1, Weight: 10},
		},
	}
}

type fixture struct {
	svc   *Service
	store *memory.Store
}

func newFixture(t *testing.T, draws ...int64) *fixture {
	t.Helper()

	store := memory.NewStore()
	clock := timeadapter.NewManualTimeProvider(epoch)
	store.SetClock(clock.Now)
	store.PutCases(testCase(), entity.RawCase{
		ID:       "r9",
		SpinCost: 10,
		Prizes:   []entity.RawPrize{{Code: "discount_10", Type: "discount", Amount: 10, Weight: 1}},
		Enabled:  ptr(false),
	})

	uow := memory.NewUnitOfWork(store)
	log := logger.NewNoopLogger()
	executor := ledger.NewExecutor(uow, log, clock, ledger.Options{})
	t.Cleanup(executor.Shutdown)

	settings := entity.DefaultEconomySettings()
	economy := mockprovider.NewMockEconomySource(t)
	economy.EXPECT().Snapshot().Return(settings).Maybe()

	svc := NewService(executor, NewResolver(uow, log), NewSelector(random.NewSequence(draws...)), economy, log, clock)
	return &fixture{svc: svc, store: store}
}

func (f *fixture) putUser(id, balance int64) {
	f.store.PutUser(entity.RestoreUser(id, balance, 0, 0, nil, epoch, epoch))
}

func (f *fixture) user(t *testing.T, id int64) *entity.User {
	t.Helper()
	u, ok := f.store.User(id)
	require.True(t, ok)
	return u
}

func TestService_ListCases(t *testing.T) {
	f := newFixture(t)

	cases, err := f.svc.ListCases(context.Background())

	require.NoError(t, err)
	require.Len(t, cases, 1)
	assert.Equal(t, "r1", cases[0].ID)
	assert.Equal(t, int64(20), cases[0].Slots)
}

func TestService_SpinStarsPrize(t *testing.T) {
	f := newFixture(t, 3)
	f.putUser(1, 200)

	res, err := f.svc.Spin(context.Background(), 1, "r1")

	require.NoError(t, err)
	assert.Equal(t, "stars_50", res.Prize.Code)
	assert.Equal(t, int64(150), res.Cost)
	assert.Equal(t, int64(100), res.Balance)
	assert.Equal(t, int64(100), f.user(t, 1).Balance())

	rows := f.store.Transactions(1)
	require.Len(t, rows, 2)
	assert.Equal(t, entity.TxSpin, rows[0].Type)
	assert.Equal(t, int64(-150), rows[0].Amount)
	assert.Equal(t, res.SpinTxID, rows[0].ID)
	assert.Equal(t, entity.TxWin, rows[1].Type)
	assert.Equal(t, int64(50), rows[1].Amount)
	assert.IsType(t, &entity.StarsWinMeta{}, rows[1].Meta)
}

func TestService_SpinUnknownCaseFallsBack(t *testing.T) {
	f := newFixture(t, 0)
	f.putUser(1, 150)

	res, err := f.svc.Spin(context.Background(), 1, "gone")

	require.NoError(t, err)
	assert.Equal(t, "r1", res.RouletteID)
}

func TestService_SpinRejections(t *testing.T) {
	t.Run("Insufficient balance", func(t *testing.T) {
		f := newFixture(t, 0)
		f.putUser(1, 149)

		_, err := f.svc.Spin(context.Background(), 1, "r1")

		assert.True(t, errs.IsInsufficientBalanceError(err))
		assert.Equal(t, int64(149), f.user(t, 1).Balance())
		assert.Empty(t, f.store.Transactions(1))
	})

	t.Run("Unknown user", func(t *testing.T) {
		f := newFixture(t, 0)

		_, err := f.svc.Spin(context.Background(), 5, "r1")

		assert.ErrorIs(t, err, errs.ErrUserNotFound)
	})

	t.Run("Invalid user id", func(t *testing.T) {
		f := newFixture(t, 0)

		_, err := f.svc.Spin(context.Background(), 0, "r1")

		assert.ErrorIs(t, err, errs.ErrInvalidUserID)
	})
}

func TestService_SpinIsAtomic(t *testing.T) {
	t.Run("Failure after the debit", func(t *testing.T) {
		f := newFixture(t, 0)
		f.putUser(1, 500)
		cause := errors.New("connection reset")
		f.svc.afterDebit = func(context.Context) error { return cause }

		_, err := f.svc.Spin(context.Background(), 1, "r1")

		var spinErr *errs.SpinFailedError
		require.ErrorAs(t, err, &spinErr)
		assert.ErrorIs(t, err, cause)
		assert.Equal(t, "r1", spinErr.CaseID)
		assert.Equal(t, int64(500), f.user(t, 1).Balance())
		assert.Empty(t, f.store.Transactions(1))
	})

	t.Run("Failure while writing the win row", func(t *testing.T) {
		f := newFixture(t, 15)
		f.putUser(1, 500)
		f.store.FailOn("progress.add", errors.New("deadlock detected"))

		_, err := f.svc.Spin(context.Background(), 1, "r1")

		assert.ErrorIs(t, err, errs.ErrSpinFailed)
		u := f.user(t, 1)
		assert.Equal(t, int64(500), u.Balance())
		assert.Zero(t, u.TicketsSneakers())
		assert.Empty(t, f.store.Transactions(1))
		assert.Empty(t, f.store.Progress(1))
	})
}

func TestService_ConcurrentSpinsStopAtZero(t *testing.T) {
	f := newFixture(t, 3)
	f.putUser(1, 3*100)
	f.store.PutCases(entity.RawCase{
		ID:       "r1",
		SpinCost: 100,
		Prizes:   []entity.RawPrize{{Code: "discount_10", Type: "discount", Amount: 10, Weight: 1}},
	})

	var wg sync.WaitGroup
	results := make(chan error, 8)
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.svc.Spin(context.Background(), 1, "r1")
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var ok, insufficient int
	for err := range results {
		switch {
		case err == nil:
			ok++
		case errs.IsInsufficientBalanceError(err):
			insufficient++
		}
	}
	assert.Equal(t, 3, ok)
	assert.Equal(t, 5, insufficient)
	assert.Zero(t, f.user(t, 1).Balance())
	assert.Len(t, f.store.Transactions(1), 6)
}

func TestService_SellTicketLot(t *testing.T) {
	f := newFixture(t, 15)
	f.putUser(1, 150)

	spin, err := f.svc.Spin(context.Background(), 1, "r1")
	require.NoError(t, err)
	require.Equal(t, "shoes", spin.Prize.Code)
	assert.Equal(t, int64(1), spin.TicketsSneakers)
	assert.Equal(t, int64(1), f.store.Progress(1)["shoes"])

	sold, err := f.svc.SellTicketLot(context.Background(), 1, spin.WinTxID)

	require.NoError(t, err)
	assert.Equal(t, int64(1), sold.Quantity)
	assert.Equal(t, int64(75), sold.UnitPrice)
	assert.Equal(t, int64(75), sold.Credited)
	assert.Equal(t, int64(75), sold.Balance)
	assert.Zero(t, sold.TicketsSneakers)
	assert.Zero(t, f.store.Progress(1)["shoes"])

	rows := f.store.Transactions(1)
	require.Len(t, rows, 3)
	lot, ok := rows[1].TicketLot()
	require.True(t, ok)
	assert.Zero(t, lot.Left())
	sale, ok := rows[2].Meta.(*entity.TicketSaleMeta)
	require.True(t, ok)
	assert.Equal(t, spin.WinTxID, sale.TicketSellTxID)
	assert.Equal(t, int64(50), sale.SellPercent)

	t.Run("A lot is sold at most once", func(t *testing.T) {
		_, err := f.svc.SellTicketLot(context.Background(), 1, spin.WinTxID)

		assert.ErrorIs(t, err, errs.ErrLotExhausted)
		assert.Equal(t, int64(75), f.user(t, 1).Balance())
		assert.Len(t, f.store.Transactions(1), 3)
	})

	t.Run("Only the owner can sell", func(t *testing.T) {
		f.putUser(2, 0)

		_, err := f.svc.SellTicketLot(context.Background(), 2, spin.WinTxID)

		assert.ErrorIs(t, err, errs.ErrTransactionNotFound)
	})

	t.Run("Rows without a lot", func(t *testing.T) {
		_, err := f.svc.SellTicketLot(context.Background(), 1, spin.SpinTxID)

		assert.ErrorIs(t, err, errs.ErrNotTicketLot)
	})

	t.Run("Missing row", func(t *testing.T) {
		_, err := f.svc.SellTicketLot(context.Background(), 1, 999)
		assert.ErrorIs(t, err, errs.ErrTransactionNotFound)

		_, err = f.svc.SellTicketLot(context.Background(), 1, 0)
		assert.ErrorIs(t, err, errs.ErrTransactionNotFound)
	})
}

func TestService_SellRequiresTickets(t *testing.T) {
	f := newFixture(t, 15)
	f.putUser(1, 150)

	spin, err := f.svc.Spin(context.Background(), 1, "r1")
	require.NoError(t, err)

	// tickets already spent on a redemption elsewhere
	u := f.user(t, 1)
	f.store.PutUser(entity.RestoreUser(1, u.Balance(), 0, 0, nil, epoch, epoch))

	_, err = f.svc.SellTicketLot(context.Background(), 1, spin.WinTxID)

	assert.ErrorIs(t, err, errs.ErrInsufficientTickets)
	assert.Zero(t, f.user(t, 1).Balance())
}

func TestService_LotConservation(t *testing.T) {
	f := newFixture(t, 0)
	f.store.PutCases(entity.RawCase{
		ID:       "r3",
		Title:    "Triple",
		SpinCost: 150,
		Prizes:   []entity.RawPrize{{Code: "shoes", Type: "item", Amount: 3, Weight: 5}},
	})
	f.putUser(1, 150)

	spin, err := f.svc.Spin(context.Background(), 1, "r3")

	require.NoError(t, err)
	require.Equal(t, "shoes", spin.Prize.Code)
	assert.Equal(t, int64(3), spin.TicketsSneakers)
	assert.Equal(t, int64(3), f.store.Progress(1)["shoes"])
	lot, ok := f.store.Transactions(1)[1].TicketLot()
	require.True(t, ok)
	assert.Equal(t, int64(3), lot.Left())

	sold, err := f.svc.SellTicketLot(context.Background(), 1, spin.WinTxID)

	require.NoError(t, err)
	assert.Equal(t, int64(3), sold.Quantity)
	assert.Equal(t, int64(75), sold.UnitPrice)
	assert.Equal(t, int64(225), sold.Credited)
	assert.Equal(t, int64(225), f.user(t, 1).Balance())
	assert.Zero(t, sold.TicketsSneakers)
	assert.Zero(t, f.store.Progress(1)["shoes"])
	lot, ok = f.store.Transactions(1)[1].TicketLot()
	require.True(t, ok)
	assert.Zero(t, lot.Left())

	_, err = f.svc.SellTicketLot(context.Background(), 1, spin.WinTxID)

	assert.ErrorIs(t, err, errs.ErrLotExhausted)
	assert.Equal(t, int64(225), f.user(t, 1).Balance())
	assert.Len(t, f.store.Transactions(1), 3)
}

func TestService_SpinWithoutEligiblePrizeRollsBack(t *testing.T) {
	f := newFixture(t, 0)
	f.store.PutCases(entity.RawCase{
		ID:       "r4",
		Title:    "Empty",
		SpinCost: 100,
		Prizes: []entity.RawPrize{
			{Code: "stars_50", Type: "stars", Amount: 50, Weight: 0},
			{Code: "shoes", Type: "item", Amount: 1, Weight: 10, Enabled: ptr(false)},
		},
	})
	f.putUser(1, 500)

	_, err := f.svc.Spin(context.Background(), 1, "r4")

	assert.ErrorIs(t, err, errs.ErrNoEligiblePrize)
	assert.Equal(t, int64(500), f.user(t, 1).Balance())
	assert.Empty(t, f.store.Transactions(1))
	assert.Empty(t, f.store.Progress(1))
}
