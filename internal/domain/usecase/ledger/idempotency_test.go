package ledger

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mockpersistence "github.com/amirhossein-jamali/stars-roulette/mocks/port/persistence"
)

func TestIdempotencyHandler_AlreadyProcessed(t *testing.T) {
	t.Run("Recorded charge", func(t *testing.T) {
		payments := mockpersistence.NewMockPaymentRepository(t)
		payments.EXPECT().ExistsByChargeID(context.Background(), "ch_1").Return(true, nil).Once()

		done, err := NewIdempotencyHandler(payments).AlreadyProcessed(context.Background(), "ch_1")

		require.NoError(t, err)
		assert.True(t, done)
	})

	t.Run("New charge", func(t *testing.T) {
		payments := mockpersistence.NewMockPaymentRepository(t)
		payments.EXPECT().ExistsByChargeID(context.Background(), "ch_2").Return(false, nil).Once()

		done, err := NewIdempotencyHandler(payments).AlreadyProcessed(context.Background(), "ch_2")

		require.NoError(t, err)
		assert.False(t, done)
	})

	t.Run("Lookup failure is not treated as processed", func(t *testing.T) {
		payments := mockpersistence.NewMockPaymentRepository(t)
		boom := errors.New("db down")
		payments.EXPECT().ExistsByChargeID(context.Background(), "ch_3").Return(true, boom).Once()

		done, err := NewIdempotencyHandler(payments).AlreadyProcessed(context.Background(), "ch_3")

		assert.ErrorIs(t, err, boom)
		assert.ErrorContains(t, err, "check payment charge id")
		assert.False(t, done)
	})
}
