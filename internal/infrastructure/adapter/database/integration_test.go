package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/stars-roulette/internal/domain/entity"
	errs "github.com/amirhossein-jamali/stars-roulette/internal/domain/error"
	"github.com/amirhossein-jamali/stars-roulette/internal/infrastructure/adapter/logger"
)

func TestUnitOfWork_CommitAndRollback(t *testing.T) {
	tdb := NewTestDBManager(t, logger.NewNoopLogger())
	uow := tdb.Manager.CreateUnitOfWork()
	ctx := context.Background()

	u, err := entity.NewUser(1001, tdb.TimeProvider)
	require.NoError(t, err)
	created, err := uow.GetUserRepository(ctx).EnsureExists(ctx, u)
	require.NoError(t, err)
	assert.True(t, created)

	txCtx, err := uow.Begin(ctx)
	require.NoError(t, err)
	locked, err := uow.GetUserRepository(txCtx).GetForUpdate(txCtx, 1001)
	require.NoError(t, err)
	require.NoError(t, locked.Credit(500, tdb.TimeProvider))
	require.NoError(t, uow.GetUserRepository(txCtx).Update(txCtx, locked))
	require.NoError(t, uow.Rollback(txCtx))

	got, err := uow.GetUserRepository(ctx).GetByID(ctx, 1001)
	require.NoError(t, err)
	assert.Equal(t, int64(0), got.Balance())

	txCtx, err = uow.Begin(ctx)
	require.NoError(t, err)
	locked, err = uow.GetUserRepository(txCtx).GetForUpdate(txCtx, 1001)
	require.NoError(t, err)
	require.NoError(t, locked.Credit(500, tdb.TimeProvider))
	require.NoError(t, uow.GetUserRepository(txCtx).Update(txCtx, locked))
	row, err := entity.NewTransaction(1001, 500, "Deposit", &entity.DepositMeta{TelegramPaymentChargeID: "c-1"}, tdb.TimeProvider)
	require.NoError(t, err)
	require.NoError(t, uow.GetTransactionRepository(txCtx).Create(txCtx, row))
	require.NoError(t, uow.Commit(txCtx))

	got, err = uow.GetUserRepository(ctx).GetByID(ctx, 1001)
	require.NoError(t, err)
	assert.Equal(t, int64(500), got.Balance())

	rows, err := uow.GetTransactionRepository(ctx).ListByUser(ctx, 1001, 10)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, entity.MetaDeposit, rows[0].Meta.Kind())
}

func TestPaymentRepository_DuplicateCharge(t *testing.T) {
	tdb := NewTestDBManager(t, logger.NewNoopLogger())
	uow := tdb.Manager.CreateUnitOfWork()
	ctx := context.Background()

	u, _ := entity.NewUser(2002, tdb.TimeProvider)
	_, err := uow.GetUserRepository(ctx).EnsureExists(ctx, u)
	require.NoError(t, err)

	p, err := entity.NewPayment(2002, "charge-x", 100, tdb.TimeProvider)
	require.NoError(t, err)
	require.NoError(t, uow.GetPaymentRepository(ctx).Create(ctx, p))

	dup, _ := entity.NewPayment(2002, "charge-x", 100, tdb.TimeProvider)
	err = uow.GetPaymentRepository(ctx).Create(ctx, dup)
	assert.True(t, errors.Is(err, errs.ErrDuplicatePayment))
}

func TestUserLockRepository_Lease(t *testing.T) {
	tdb := NewTestDBManager(t, logger.NewNoopLogger())
	uow := tdb.Manager.CreateUnitOfWork()
	ctx := context.Background()
	locks := uow.GetUserLockRepository(ctx)

	require.NoError(t, locks.AcquireLock(ctx, 7, "a", time.Minute))
	assert.ErrorIs(t, locks.AcquireLock(ctx, 7, "b", time.Minute), errs.ErrUserLocked)
	require.NoError(t, locks.AcquireLock(ctx, 7, "a", time.Minute))
	require.NoError(t, locks.ReleaseLock(ctx, 7, "a"))
	require.NoError(t, locks.AcquireLock(ctx, 7, "b", time.Millisecond))

	time.Sleep(10 * time.Millisecond)
	n, err := locks.CleanupExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestMigrate_SeedsDefaultCases(t *testing.T) {
	tdb := NewTestDBManager(t, logger.NewNoopLogger())
	ctx := context.Background()

	cases, err := tdb.Manager.CreateUnitOfWork().GetCaseRepository(ctx).List(ctx)
	require.NoError(t, err)
	assert.Len(t, cases, len(entity.DefaultCases()))

	// a second run is a no-op
	require.NoError(t, tdb.Manager.Migrate(ctx))
	require.NoError(t, tdb.Manager.Ping(ctx))
}
