package ledger

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
	"github.com/amirhossein-jamali/stars-roulette/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/stars-roulette/internal/infrastructure/adapter/memory"
	timeadapter "github.com/amirhossein-jamali/stars-roulette/internal/infrastructure/adapter/time"
)

var epoch = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestExecutor(t *testing.T, opts Options) (*Executor, *memory.Store, *timeadapter.ManualTimeProvider) {
	t.Helper()
	store := memory.NewStore()
	clock := timeadapter.NewManualTimeProvider(epoch)
	store.SetClock(clock.Now)
	e := NewExecutor(memory.NewUnitOfWork(store), logger.NewNoopLogger(), clock, opts)
	t.Cleanup(e.Shutdown)
	return e, store, clock
}

func creditWork(userID, amount int64, clock *timeadapter.ManualTimeProvider) Work {
	return func(ctx context.Context, tx *Tx) error {
		if err := EnsureUsers(ctx, tx.Users, clock, userID); err != nil {
			return err
		}
		u, err := tx.Users.GetForUpdate(ctx, userID)
		if err != nil {
			return err
		}
		if err := u.Credit(amount, clock); err != nil {
			return err
		}
		return tx.Users.Update(ctx, u)
	}
}

func TestExecutor_Execute(t *testing.T) {
	t.Run("Commits work", func(t *testing.T) {
		e, store, clock := newTestExecutor(t, Options{})

		err := e.Execute(context.Background(), 1, creditWork(1, 100, clock))

		require.NoError(t, err)
		u, ok := store.User(1)
		require.True(t, ok)
		assert.Equal(t, int64(100), u.Balance())
	})

	t.Run("Rolls back on error", func(t *testing.T) {
		e, store, clock := newTestExecutor(t, Options{})
		boom := errors.New("boom")

		err := e.Execute(context.Background(), 1, func(ctx context.Context, tx *Tx) error {
			if err := creditWork(1, 100, clock)(ctx, tx); err != nil {
				return err
			}
			return boom
		})

		assert.ErrorIs(t, err, boom)
		_, ok := store.User(1)
		assert.False(t, ok)
	})

	t.Run("Recovers panics as internal errors", func(t *testing.T) {
		e, store, clock := newTestExecutor(t, Options{})

		err := e.Execute(context.Background(), 1, func(ctx context.Context, tx *Tx) error {
			_ = creditWork(1, 100, clock)(ctx, tx)
			panic("bad state")
		})

		assert.ErrorIs(t, err, errs.ErrInternalServer)
		_, ok := store.User(1)
		assert.False(t, ok)

		require.NoError(t, e.Execute(context.Background(), 1, creditWork(1, 5, clock)))
	})

	t.Run("Commit failure is reported", func(t *testing.T) {
		e, store, clock := newTestExecutor(t, Options{})
		store.FailOn("commit", errors.New("disk full"))

		err := e.Execute(context.Background(), 1, creditWork(1, 100, clock))

		assert.ErrorContains(t, err, "commit transaction")
		_, ok := store.User(1)
		assert.False(t, ok)
	})

	t.Run("Canceled context", func(t *testing.T) {
		e, _, clock := newTestExecutor(t, Options{})
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := e.Execute(ctx, 1, creditWork(1, 100, clock))

		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestExecutor_SerializesPerUser(t *testing.T) {
	e, store, clock := newTestExecutor(t, Options{QueueSize: 4})
	const workers, perWorker = 8, 25

	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range perWorker {
				assert.NoError(t, e.Execute(context.Background(), 7, creditWork(7, 1, clock)))
			}
		}()
	}
	wg.Wait()

	u, ok := store.User(7)
	require.True(t, ok)
	assert.Equal(t, int64(workers*perWorker), u.Balance())
}

func TestExecutor_IdleWorkersExit(t *testing.T) {
	e, _, clock := newTestExecutor(t, Options{IdleTimeout: 200 * time.Millisecond})

	require.NoError(t, e.Execute(context.Background(), 1, creditWork(1, 1, clock)))
	require.NoError(t, e.Execute(context.Background(), 2, creditWork(2, 1, clock)))
	assert.Equal(t, 2, e.ActiveQueues())

	assert.Eventually(t, func() bool {
		return e.ActiveQueues() == 0
	}, 3*time.Second, 20*time.Millisecond)

	require.NoError(t, e.Execute(context.Background(), 1, creditWork(1, 1, clock)))
}

func TestExecutor_Shutdown(t *testing.T) {
	e, _, clock := newTestExecutor(t, Options{})
	require.NoError(t, e.Execute(context.Background(), 1, creditWork(1, 1, clock)))

	e.Shutdown()
	e.Shutdown()

	err := e.Execute(context.Background(), 1, creditWork(1, 1, clock))
	assert.ErrorIs(t, err, errs.ErrShuttingDown)
}

func TestExecutor_ExecuteLeased(t *testing.T) {
	t.Run("Lease is released after the work", func(t *testing.T) {
		e, store, clock := newTestExecutor(t, Options{Holder: "replica-a"})

		err := e.ExecuteLeased(context.Background(), 1, creditWork(1, 10, clock))

		require.NoError(t, err)
		assert.Empty(t, store.LockHolder(1))
	})

	t.Run("Lease held by another replica", func(t *testing.T) {
		store := memory.NewStore()
		clock := timeadapter.NewManualTimeProvider(epoch)
		store.SetClock(clock.Now)
		uow := memory.NewUnitOfWork(store)
		log := logger.NewNoopLogger()

		require.NoError(t, uow.GetUserLockRepository(context.Background()).
			AcquireLock(context.Background(), 1, "replica-b", time.Minute))

		e := NewExecutor(uow, log, clock, Options{Holder: "replica-a"})
		defer e.Shutdown()

		err := e.ExecuteLeased(context.Background(), 1, creditWork(1, 10, clock))
		assert.ErrorIs(t, err, errs.ErrUserLocked)

		clock.Advance(2 * time.Minute)
		n, err := e.CleanupExpiredLeases(context.Background())
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)

		require.NoError(t, e.ExecuteLeased(context.Background(), 1, creditWork(1, 10, clock)))
		u, _ := store.User(1)
		assert.Equal(t, int64(10), u.Balance())
	})
}

func TestExecutor_InTransaction(t *testing.T) {
	e, _, _ := newTestExecutor(t, Options{})

	err := e.InTransaction(context.Background(), func(ctx context.Context, tx *Tx) error {
		return tx.Cases.ReplaceAll(ctx, entity.DefaultCases())
	})

	require.NoError(t, err)
	cases, err := e.Read(context.Background()).Cases.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, cases, 1)
}

func TestLockUsers(t *testing.T) {
	e, store, _ := newTestExecutor(t, Options{})
	store.PutUser(entity.RestoreUser(3, 0, 0, 0, nil, epoch, epoch))
	store.PutUser(entity.RestoreUser(1, 0, 0, 0, nil, epoch, epoch))

	err := e.Execute(context.Background(), 1, func(ctx context.Context, tx *Tx) error {
		users, err := LockUsers(ctx, tx.Users, 3, 1, 3)
		if err != nil {
			return err
		}
		assert.Len(t, users, 2)

		_, err = LockUsers(ctx, tx.Users, 1, 99)
		return err
	})

	assert.ErrorIs(t, err, errs.ErrUserNotFound)
}
