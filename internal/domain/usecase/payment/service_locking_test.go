package payment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/stars-roulette/internal/domain/entity"
	"github.com/amirhossein-jamali/stars-roulette/internal/domain/usecase/ledger"
	"github.com/amirhossein-jamali/stars-roulette/internal/infrastructure/adapter/logger"
	timeadapter "github.com/amirhossein-jamali/stars-roulette/internal/infrastructure/adapter/time"
	mockpersistence "github.com/amirhossein-jamali/stars-roulette/mocks/port/persistence"
	mockprovider "github.com/amirhossein-jamali/stars-roulette/mocks/port/provider"
)

// The referrer is bound between the unlocked read of the payer and the row
// lock. The locked row is authoritative and the referrer still gets paid.
func TestService_ConfirmPaymentReferrerBoundWhileLocking(t *testing.T) {
	ctx := context.Background()
	referrerID := int64(1)

	users := mockpersistence.NewMockUserRepository(t)
	txs := mockpersistence.NewMockTransactionRepository(t)
	payments := mockpersistence.NewMockPaymentRepository(t)

	uow := mockpersistence.NewMockUnitOfWork(t)
	uow.EXPECT().GetUserRepository(mock.Anything).Return(users).Maybe()
	uow.EXPECT().GetTransactionRepository(mock.Anything).Return(txs).Maybe()
	uow.EXPECT().GetPaymentRepository(mock.Anything).Return(payments).Maybe()
	uow.EXPECT().GetCaseRepository(mock.Anything).Return(mockpersistence.NewMockCaseRepository(t)).Maybe()
	uow.EXPECT().GetTicketProgressRepository(mock.Anything).Return(mockpersistence.NewMockTicketProgressRepository(t)).Maybe()
	uow.EXPECT().GetWithdrawRequestRepository(mock.Anything).Return(mockpersistence.NewMockWithdrawRequestRepository(t)).Maybe()
	uow.EXPECT().GetPrizeRequestRepository(mock.Anything).Return(mockpersistence.NewMockPrizeRequestRepository(t)).Maybe()
	uow.EXPECT().Begin(mock.Anything).RunAndReturn(func(ctx context.Context) (context.Context, error) {
		return ctx, nil
	}).Once()
	uow.EXPECT().Commit(mock.Anything).Return(nil).Once()

	payments.EXPECT().ExistsByChargeID(mock.Anything, "ch_1").Return(false, nil).Times(2)
	users.EXPECT().EnsureExists(mock.Anything, mock.Anything).Return(false, nil).Times(2)
	users.EXPECT().GetByID(mock.Anything, int64(2)).
		Return(entity.RestoreUser(2, 0, 0, 0, nil, epoch, epoch), nil).Once()
	users.EXPECT().GetForUpdate(mock.Anything, int64(2)).
		Return(entity.RestoreUser(2, 0, 0, 0, &referrerID, epoch, epoch), nil).Once()
	users.EXPECT().GetForUpdate(mock.Anything, referrerID).
		Return(entity.RestoreUser(referrerID, 0, 0, 0, nil, epoch, epoch), nil).Once()
	payments.EXPECT().Create(mock.Anything, mock.AnythingOfType("*entity.Payment")).Return(nil).Once()
	txs.EXPECT().Create(mock.Anything, mock.AnythingOfType("*entity.Transaction")).Return(nil).Times(2)
	users.EXPECT().Update(mock.Anything, mock.MatchedBy(func(u *entity.User) bool {
		return u.ID == 2 && u.Balance() == 1000
	})).Return(nil).Once()
	users.EXPECT().Update(mock.Anything, mock.MatchedBy(func(u *entity.User) bool {
		return u.ID == referrerID && u.Balance() == 100
	})).Return(nil).Once()

	clock := timeadapter.NewManualTimeProvider(epoch)
	log := logger.NewNoopLogger()
	executor := ledger.NewExecutor(uow, log, clock, ledger.Options{})
	t.Cleanup(executor.Shutdown)
	settings := entity.DefaultEconomySettings()
	settings.ReferralBonusPercent = 10
	economy := mockprovider.NewMockEconomySource(t)
	economy.EXPECT().Snapshot().Return(settings).Once()

	res, err := NewService(executor, uow, economy, log, clock).ConfirmPayment(ctx, 2, "ch_1", 1000)

	require.NoError(t, err)
	assert.Equal(t, entity.PaymentCredited, res.Outcome)
	assert.Equal(t, int64(1000), res.Balance)
	assert.Equal(t, int64(100), res.ReferrerBonus)
	uow.AssertNotCalled(t, "Rollback", mock.Anything)
}
