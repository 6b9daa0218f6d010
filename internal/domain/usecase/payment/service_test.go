package payment

import (
	"context"
	"errors"
	"strings"
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
	timeadapter "github.com/amirhossein-jamali/stars-roulette/internal/infrastructure/adapter/time"
	mockprovider "github.com/amirhossein-jamali/stars-roulette/mocks/port/provider"
)

var epoch = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestService(t *testing.T, bonusPercent int64) (*Service, *memory.Store) {
	t.Helper()

	store := memory.NewStore()
	clock := timeadapter.NewManualTimeProvider(epoch)
	uow := memory.NewUnitOfWork(store)
	log := logger.NewNoopLogger()
	executor := ledger.NewExecutor(uow, log, clock, ledger.Options{})
	t.Cleanup(executor.Shutdown)

	settings := entity.DefaultEconomySettings()
	settings.ReferralBonusPercent = bonusPercent
	economy := mockprovider.NewMockEconomySource(t)
	economy.EXPECT().Snapshot().Return(settings).Maybe()

	return NewService(executor, uow, economy, log, clock), store
}

func TestService_ConfirmPayment(t *testing.T) {
	t.Run("Credits a new user", func(t *testing.T) {
		svc, store := newTestService(t, 0)

		res, err := svc.ConfirmPayment(context.Background(), 42, "ch_1", 500)

		require.NoError(t, err)
		assert.Equal(t, entity.PaymentCredited, res.Outcome)
		assert.Equal(t, int64(500), res.Credited)
		assert.Equal(t, int64(500), res.Balance)
		assert.Zero(t, res.ReferrerBonus)

		u, ok := store.User(42)
		require.True(t, ok)
		assert.Equal(t, int64(500), u.Balance())

		rows := store.Transactions(42)
		require.Len(t, rows, 1)
		assert.Equal(t, entity.TxDeposit, rows[0].Type)
		meta, ok := rows[0].Meta.(*entity.DepositMeta)
		require.True(t, ok)
		assert.Equal(t, "ch_1", meta.TelegramPaymentChargeID)
	})

	t.Run("Redelivery is a no-op", func(t *testing.T) {
		svc, store := newTestService(t, 0)

		_, err := svc.ConfirmPayment(context.Background(), 42, "ch_1", 500)
		require.NoError(t, err)
		res, err := svc.ConfirmPayment(context.Background(), 42, "ch_1", 500)

		require.NoError(t, err)
		assert.Equal(t, entity.PaymentAlreadyProcessed, res.Outcome)
		assert.Zero(t, res.Credited)
		assert.Equal(t, 1, store.PaymentCount())
		u, _ := store.User(42)
		assert.Equal(t, int64(500), u.Balance())
		assert.Len(t, store.Transactions(42), 1)
	})

	t.Run("Concurrent deliveries credit once", func(t *testing.T) {
		svc, store := newTestService(t, 0)

		var wg sync.WaitGroup
		outcomes := make(chan entity.PaymentOutcome, 16)
		for range 16 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				res, err := svc.ConfirmPayment(context.Background(), 42, "ch_dup", 300)
				if assert.NoError(t, err) {
					outcomes <- res.Outcome
				}
			}()
		}
		wg.Wait()
		close(outcomes)

		credited := 0
		for o := range outcomes {
			if o == entity.PaymentCredited {
				credited++
			}
		}
		assert.Equal(t, 1, credited)
		assert.Equal(t, 1, store.PaymentCount())
		u, _ := store.User(42)
		assert.Equal(t, int64(300), u.Balance())
	})

	t.Run("Referrer receives a share", func(t *testing.T) {
		svc, store := newTestService(t, 10)
		ref := int64(1)
		store.PutUser(entity.RestoreUser(2, 0, 0, 0, &ref, epoch, epoch))

		res, err := svc.ConfirmPayment(context.Background(), 2, "ch_ref", 1000)

		require.NoError(t, err)
		assert.Equal(t, int64(100), res.ReferrerBonus)

		referrer, ok := store.User(1)
		require.True(t, ok)
		assert.Equal(t, int64(100), referrer.Balance())

		rows := store.Transactions(1)
		require.Len(t, rows, 1)
		assert.Equal(t, entity.TxReferral, rows[0].Type)
		bonus, ok := rows[0].Meta.(*entity.ReferralBonusMeta)
		require.True(t, ok)
		assert.Equal(t, int64(2), bonus.InviteeID)
		assert.Equal(t, "ch_ref", bonus.PaymentChargeID)
	})

	t.Run("Small deposits round the share down to nothing", func(t *testing.T) {
		svc, store := newTestService(t, 10)
		ref := int64(1)
		store.PutUser(entity.RestoreUser(2, 0, 0, 0, &ref, epoch, epoch))

		res, err := svc.ConfirmPayment(context.Background(), 2, "ch_small", 9)

		require.NoError(t, err)
		assert.Zero(t, res.ReferrerBonus)
		assert.Empty(t, store.Transactions(1))
	})

	t.Run("Failed write leaves nothing behind", func(t *testing.T) {
		svc, store := newTestService(t, 0)
		store.FailOn("transactions.create", errors.New("connection reset"))

		_, err := svc.ConfirmPayment(context.Background(), 42, "ch_fail", 500)

		require.Error(t, err)
		assert.Zero(t, store.PaymentCount())
		_, ok := store.User(42)
		assert.False(t, ok)

		store.FailOn("transactions.create", nil)
		res, err := svc.ConfirmPayment(context.Background(), 42, "ch_fail", 500)
		require.NoError(t, err)
		assert.Equal(t, entity.PaymentCredited, res.Outcome)
	})
}

func TestService_ConfirmPaymentValidation(t *testing.T) {
	svc, store := newTestService(t, 0)

	testCases := []struct {
		name     string
		userID   int64
		chargeID string
		amount   int64
		wantErr  error
	}{
		{"Invalid user", 0, "ch", 10, errs.ErrInvalidUserID},
		{"Empty charge id", 1, "  ", 10, errs.ErrInvalidChargeID},
		{"Charge id too long", 1, strings.Repeat("x", entity.MaxChargeIDLength+1), 10, errs.ErrInvalidChargeID},
		{"Zero amount", 1, "ch", 0, errs.ErrInvalidAmount},
		{"Negative amount", 1, "ch", -5, errs.ErrInvalidAmount},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.ConfirmPayment(context.Background(), tc.userID, tc.chargeID, tc.amount)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
	assert.Zero(t, store.PaymentCount())
}
