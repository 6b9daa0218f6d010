package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/stars-roulette/internal/domain/entity"
	errs "github.com/amirhossein-jamali/stars-roulette/internal/domain/error"
	timeadapter "github.com/amirhossein-jamali/stars-roulette/internal/infrastructure/adapter/time"
)

var epoch = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func TestUnitOfWork_Isolation(t *testing.T) {
	store := NewStore()
	uow := NewUnitOfWork(store)
	store.PutUser(entity.RestoreUser(1, 100, 0, 0, nil, epoch, epoch))
	clock := timeadapter.NewManualTimeProvider(epoch)

	t.Run("Rollback discards every write", func(t *testing.T) {
		ctx, err := uow.Begin(context.Background())
		require.NoError(t, err)

		users := uow.GetUserRepository(ctx)
		u, err := users.GetForUpdate(ctx, 1)
		require.NoError(t, err)
		require.NoError(t, u.Credit(50, clock))
		require.NoError(t, users.Update(ctx, u))
		row, err := entity.NewTransaction(1, 50, "credit", &entity.AdminAdjustMeta{BalanceDelta: 50}, clock)
		require.NoError(t, err)
		require.NoError(t, uow.GetTransactionRepository(ctx).Create(ctx, row))

		require.NoError(t, uow.Rollback(ctx))

		committed, _ := store.User(1)
		assert.Equal(t, int64(100), committed.Balance())
		assert.Empty(t, store.Transactions(1))
	})

	t.Run("Commit publishes", func(t *testing.T) {
		ctx, err := uow.Begin(context.Background())
		require.NoError(t, err)
		users := uow.GetUserRepository(ctx)
		u, _ := users.GetForUpdate(ctx, 1)
		require.NoError(t, u.Debit(30, clock))
		require.NoError(t, users.Update(ctx, u))

		require.NoError(t, uow.Commit(ctx))

		committed, _ := store.User(1)
		assert.Equal(t, int64(70), committed.Balance())
		assert.Error(t, uow.Commit(ctx), "a unit commits once")
	})

	t.Run("Nested units are refused", func(t *testing.T) {
		ctx, err := uow.Begin(context.Background())
		require.NoError(t, err)
		defer func() { _ = uow.Rollback(ctx) }()

		_, err = uow.Begin(ctx)
		assert.Error(t, err)
	})
}

func TestStore_FailOn(t *testing.T) {
	store := NewStore()
	uow := NewUnitOfWork(store)
	boom := errors.New("boom")

	store.FailOn("users.ensure", boom)
	_, err := uow.GetUserRepository(context.Background()).EnsureExists(context.Background(), entity.RestoreUser(1, 0, 0, 0, nil, epoch, epoch))
	assert.ErrorIs(t, err, boom)

	store.FailOn("users.ensure", nil)
	created, err := uow.GetUserRepository(context.Background()).EnsureExists(context.Background(), entity.RestoreUser(1, 0, 0, 0, nil, epoch, epoch))
	require.NoError(t, err)
	assert.True(t, created)
}

func TestStore_RefusesNegativeCounters(t *testing.T) {
	store := NewStore()
	uow := NewUnitOfWork(store)
	store.PutUser(entity.RestoreUser(1, 10, 0, 0, nil, epoch, epoch))

	err := uow.GetUserRepository(context.Background()).Update(context.Background(), entity.RestoreUser(1, -1, 0, 0, nil, epoch, epoch))

	assert.ErrorIs(t, err, errs.ErrNegativeBalance)
}

func TestStore_Payments(t *testing.T) {
	store := NewStore()
	payments := NewUnitOfWork(store).GetPaymentRepository(context.Background())
	ctx := context.Background()

	p := &entity.Payment{UserID: 1, TelegramPaymentChargeID: "ch_1", TotalAmount: 10, CreatedAt: epoch}
	require.NoError(t, payments.Create(ctx, p))
	assert.Equal(t, int64(1), p.ID)

	dup := *p
	assert.ErrorIs(t, payments.Create(ctx, &dup), errs.ErrDuplicatePayment)

	exists, err := payments.ExistsByChargeID(ctx, "ch_1")
	require.NoError(t, err)
	assert.True(t, exists)
	assert.Equal(t, 1, store.PaymentCount())
}

func TestStore_Leases(t *testing.T) {
	store := NewStore()
	clock := timeadapter.NewManualTimeProvider(epoch)
	store.SetClock(clock.Now)
	locks := NewUnitOfWork(store).GetUserLockRepository(context.Background())
	ctx := context.Background()

	require.NoError(t, locks.AcquireLock(ctx, 1, "a", time.Minute))
	assert.Equal(t, "a", store.LockHolder(1))

	require.NoError(t, locks.AcquireLock(ctx, 1, "a", time.Minute), "holder may renew")
	assert.ErrorIs(t, locks.AcquireLock(ctx, 1, "b", time.Minute), errs.ErrUserLocked)

	require.NoError(t, locks.ReleaseLock(ctx, 1, "b"))
	assert.Equal(t, "a", store.LockHolder(1), "only the holder releases")

	clock.Advance(2 * time.Minute)
	require.NoError(t, locks.AcquireLock(ctx, 1, "b", time.Minute), "expired lease is taken over")
	assert.Equal(t, "b", store.LockHolder(1))

	require.NoError(t, locks.AcquireLock(ctx, 2, "a", time.Second))
	clock.Advance(5 * time.Second)
	n, err := locks.CleanupExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	assert.Empty(t, store.LockHolder(2))
	assert.Equal(t, "b", store.LockHolder(1))
}
