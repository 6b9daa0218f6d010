package referral

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/stars-roulette/internal/domain/entity"
	errs "github.com/amirhossein-jamali/stars-roulette/internal/domain/error"
	"github.com/amirhossein-jamali/stars-roulette/internal/domain/usecase/ledger"
	"github.com/amirhossein-jamali/stars-roulette/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/stars-roulette/internal/infrastructure/adapter/memory"
	timeadapter "github.com/amirhossein-jamali/stars-roulette/internal/infrastructure/adapter/time"
	mockprovider "github.com/amirhossein-jamali/stars-roulette/mocks/port/provider"
)

var epoch = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestService(t *testing.T, settings entity.EconomySettings) (*Service, *memory.Store) {
	t.Helper()

	store := memory.NewStore()
	clock := timeadapter.NewManualTimeProvider(epoch)
	uow := memory.NewUnitOfWork(store)
	log := logger.NewNoopLogger()
	executor := ledger.NewExecutor(uow, log, clock, ledger.Options{})
	t.Cleanup(executor.Shutdown)

	economy := mockprovider.NewMockEconomySource(t)
	economy.EXPECT().Snapshot().Return(settings).Maybe()

	return NewService(executor, economy, log, clock), store
}

func TestService_BindReferral(t *testing.T) {
	t.Run("Binds and creates both users", func(t *testing.T) {
		svc, store := newTestService(t, entity.DefaultEconomySettings())

		res, err := svc.BindReferral(context.Background(), 2, 1)

		require.NoError(t, err)
		assert.True(t, res.Bound)
		invitee, ok := store.User(2)
		require.True(t, ok)
		require.NotNil(t, invitee.ReferrerID)
		assert.Equal(t, int64(1), *invitee.ReferrerID)
		_, ok = store.User(1)
		assert.True(t, ok)
		assert.Empty(t, store.Transactions(1))
	})

	t.Run("Second bind keeps the first referrer", func(t *testing.T) {
		svc, store := newTestService(t, entity.DefaultEconomySettings())

		_, err := svc.BindReferral(context.Background(), 2, 1)
		require.NoError(t, err)
		res, err := svc.BindReferral(context.Background(), 2, 3)

		require.NoError(t, err)
		assert.False(t, res.Bound)
		invitee, _ := store.User(2)
		assert.Equal(t, int64(1), *invitee.ReferrerID)
	})

	t.Run("Self referral is ignored", func(t *testing.T) {
		svc, store := newTestService(t, entity.DefaultEconomySettings())

		res, err := svc.BindReferral(context.Background(), 2, 2)

		require.NoError(t, err)
		assert.False(t, res.Bound)
		_, ok := store.User(2)
		assert.False(t, ok)
	})

	t.Run("Invalid user", func(t *testing.T) {
		svc, _ := newTestService(t, entity.DefaultEconomySettings())

		_, err := svc.BindReferral(context.Background(), 0, 1)

		assert.ErrorIs(t, err, errs.ErrInvalidUserID)
	})

	t.Run("Signup bonuses are paid once", func(t *testing.T) {
		settings := entity.DefaultEconomySettings()
		settings.ReferralSignupBonusReferrer = 25
		settings.ReferralSignupBonusInvitee = 10
		svc, store := newTestService(t, settings)

		_, err := svc.BindReferral(context.Background(), 2, 1)
		require.NoError(t, err)
		_, err = svc.BindReferral(context.Background(), 2, 1)
		require.NoError(t, err)

		referrer, _ := store.User(1)
		invitee, _ := store.User(2)
		assert.Equal(t, int64(25), referrer.Balance())
		assert.Equal(t, int64(10), invitee.Balance())

		require.Len(t, store.Transactions(1), 1)
		assert.IsType(t, &entity.ReferralSignupReferrerMeta{}, store.Transactions(1)[0].Meta)
		require.Len(t, store.Transactions(2), 1)
		assert.IsType(t, &entity.ReferralSignupInviteeMeta{}, store.Transactions(2)[0].Meta)
	})
}

func TestService_Reports(t *testing.T) {
	svc, _ := newTestService(t, entity.DefaultEconomySettings())
	ctx := context.Background()

	for _, invitee := range []int64{10, 11, 12} {
		_, err := svc.BindReferral(ctx, invitee, 1)
		require.NoError(t, err)
	}
	_, err := svc.BindReferral(ctx, 20, 2)
	require.NoError(t, err)

	t.Run("Summary orders by invite count", func(t *testing.T) {
		rows, err := svc.Summary(ctx, entity.ReferralFilter{})

		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, int64(1), rows[0].ReferrerID)
		assert.Equal(t, int64(3), rows[0].InvitedCount)
		assert.Equal(t, int64(2), rows[1].ReferrerID)
	})

	t.Run("Summary filtered by invitee", func(t *testing.T) {
		q := int64(20)
		rows, err := svc.Summary(ctx, entity.ReferralFilter{Query: &q})

		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, int64(2), rows[0].ReferrerID)
	})

	t.Run("Details", func(t *testing.T) {
		rows, err := svc.Details(ctx, 1, entity.ReferralFilter{})

		require.NoError(t, err)
		assert.Len(t, rows, 3)

		limited, err := svc.Details(ctx, 1, entity.ReferralFilter{Limit: 2})
		require.NoError(t, err)
		assert.Len(t, limited, 2)

		_, err = svc.Details(ctx, 0, entity.ReferralFilter{})
		assert.ErrorIs(t, err, errs.ErrInvalidUserID)
	})
}
