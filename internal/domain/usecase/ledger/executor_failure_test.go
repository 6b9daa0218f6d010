package ledger

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	errs "github.com/amirhossein-jamali/stars-roulette/internal/domain/error"
	timeadapter "github.com/amirhossein-jamali/stars-roulette/internal/infrastructure/adapter/time"
	mockcore "github.com/amirhossein-jamali/stars-roulette/mocks/port/core"
	mockpersistence "github.com/amirhossein-jamali/stars-roulette/mocks/port/persistence"
)

type mockedExecutor struct {
	executor *Executor
	uow      *mockpersistence.MockUnitOfWork
	locks    *mockpersistence.MockUserLockRepository
	logger   *mockcore.MockLogger
}

// newMockedExecutor wires an executor to a mocked unit of work. Repository
// getters are optional; the unit's Begin, Commit and Rollback are not.
func newMockedExecutor(t *testing.T, opts Options) *mockedExecutor {
	t.Helper()

	uow := mockpersistence.NewMockUnitOfWork(t)
	uow.EXPECT().GetUserRepository(mock.Anything).Return(mockpersistence.NewMockUserRepository(t)).Maybe()
	uow.EXPECT().GetTransactionRepository(mock.Anything).Return(mockpersistence.NewMockTransactionRepository(t)).Maybe()
	uow.EXPECT().GetPaymentRepository(mock.Anything).Return(mockpersistence.NewMockPaymentRepository(t)).Maybe()
	uow.EXPECT().GetCaseRepository(mock.Anything).Return(mockpersistence.NewMockCaseRepository(t)).Maybe()
	uow.EXPECT().GetTicketProgressRepository(mock.Anything).Return(mockpersistence.NewMockTicketProgressRepository(t)).Maybe()
	uow.EXPECT().GetWithdrawRequestRepository(mock.Anything).Return(mockpersistence.NewMockWithdrawRequestRepository(t)).Maybe()
	uow.EXPECT().GetPrizeRequestRepository(mock.Anything).Return(mockpersistence.NewMockPrizeRequestRepository(t)).Maybe()

	locks := mockpersistence.NewMockUserLockRepository(t)
	uow.EXPECT().GetUserLockRepository(mock.Anything).Return(locks).Maybe()

	log := mockcore.NewMockLogger(t)
	log.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	log.EXPECT().Info(mock.Anything, mock.Anything).Maybe()

	e := NewExecutor(uow, log, timeadapter.NewManualTimeProvider(epoch), opts)
	t.Cleanup(e.Shutdown)
	return &mockedExecutor{executor: e, uow: uow, locks: locks, logger: log}
}

func passContext(ctx context.Context) (context.Context, error) { return ctx, nil }

func TestExecutor_TransactionFailures(t *testing.T) {
	t.Run("Begin failure skips the work", func(t *testing.T) {
		m := newMockedExecutor(t, Options{})
		boom := errors.New("pool exhausted")
		m.uow.EXPECT().Begin(mock.Anything).Return(nil, boom).Once()

		ran := false
		err := m.executor.Execute(context.Background(), 1, func(context.Context, *Tx) error {
			ran = true
			return nil
		})

		assert.ErrorIs(t, err, boom)
		assert.ErrorContains(t, err, "begin transaction")
		assert.False(t, ran)
		m.uow.AssertNotCalled(t, "Commit", mock.Anything)
		m.uow.AssertNotCalled(t, "Rollback", mock.Anything)
	})

	t.Run("Rollback failure keeps the work error", func(t *testing.T) {
		m := newMockedExecutor(t, Options{})
		boom := errors.New("boom")
		m.uow.EXPECT().Begin(mock.Anything).RunAndReturn(passContext).Once()
		m.uow.EXPECT().Rollback(mock.Anything).Return(errors.New("connection reset")).Once()
		m.logger.EXPECT().Error("Rollback failed", mock.MatchedBy(func(fields map[string]any) bool {
			return fields["original_error"] == "boom" && fields["error"] == "connection reset"
		})).Once()

		err := m.executor.Execute(context.Background(), 1, func(context.Context, *Tx) error {
			return boom
		})

		assert.Equal(t, boom, err)
		m.uow.AssertNotCalled(t, "Commit", mock.Anything)
	})

	t.Run("Commit failure is wrapped", func(t *testing.T) {
		m := newMockedExecutor(t, Options{})
		boom := errors.New("serialization failure")
		m.uow.EXPECT().Begin(mock.Anything).RunAndReturn(passContext).Once()
		m.uow.EXPECT().Commit(mock.Anything).Return(boom).Once()

		err := m.executor.Execute(context.Background(), 1, func(_ context.Context, tx *Tx) error {
			assert.NotNil(t, tx.Users)
			assert.NotNil(t, tx.PrizeRequests)
			return nil
		})

		assert.ErrorIs(t, err, boom)
		assert.ErrorContains(t, err, "commit transaction")
	})
}

func TestExecutor_LeaseFailures(t *testing.T) {
	opts := Options{Holder: "node-a", LockTTL: 5 * time.Second}

	t.Run("Release failure does not fail committed work", func(t *testing.T) {
		m := newMockedExecutor(t, opts)
		m.locks.EXPECT().AcquireLock(mock.Anything, int64(1), "node-a", 5*time.Second).Return(nil).Once()
		m.uow.EXPECT().Begin(mock.Anything).RunAndReturn(passContext).Once()
		m.uow.EXPECT().Commit(mock.Anything).Return(nil).Once()
		m.locks.EXPECT().ReleaseLock(mock.Anything, int64(1), "node-a").Return(errors.New("connection reset")).Once()
		m.logger.EXPECT().Warn("Failed to release user lease", mock.MatchedBy(func(fields map[string]any) bool {
			return fields["user_id"] == int64(1) && fields["error"] == "connection reset"
		})).Once()

		ran := false
		err := m.executor.ExecuteLeased(context.Background(), 1, func(context.Context, *Tx) error {
			ran = true
			return nil
		})

		require.NoError(t, err)
		assert.True(t, ran)
	})

	t.Run("Lease held elsewhere opens no transaction", func(t *testing.T) {
		m := newMockedExecutor(t, opts)
		m.locks.EXPECT().AcquireLock(mock.Anything, int64(1), "node-a", 5*time.Second).Return(errs.ErrUserLocked).Once()
		m.logger.EXPECT().Warn("User lease held by another replica", mock.Anything).Once()

		err := m.executor.ExecuteLeased(context.Background(), 1, func(context.Context, *Tx) error {
			t.Error("work must not run without the lease")
			return nil
		})

		assert.ErrorIs(t, err, errs.ErrUserLocked)
		m.uow.AssertNotCalled(t, "Begin", mock.Anything)
		m.locks.AssertNotCalled(t, "ReleaseLock", mock.Anything, mock.Anything, mock.Anything)
	})
}
