package entity

import (
	"testing"
	"time"

	errs "github.com/amirhossein-jamali/stars-roulette/internal/domain/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeCase(t *testing.T) {
	t.Run("Defaults are filled in", func(t *testing.T) {
		c, err := NormalizeCase(RawCase{
			ID: " r2 ",
			Prizes: []RawPrize{
				{Code: "stars_50", Type: "Stars", Amount: 50, Weight: 6},
				{Code: "shoes", Amount: 1, Weight: 4},
			},
		}, 150)

		require.NoError(t, err)
		assert.Equal(t, "r2", c.ID)
		assert.Equal(t, "r2", c.Title)
		assert.Equal(t, int64(150), c.SpinCost)
		assert.Equal(t, int64(10), c.Slots)
		assert.True(t, c.Enabled)
		assert.Equal(t, PrizeStars, c.Prizes[0].Kind)
		assert.Equal(t, PrizeItem, c.Prizes[1].Kind)
		assert.Equal(t, "shoes", c.Prizes[1].Title)
	})

	t.Run("Empty prize table gets default slots", func(t *testing.T) {
		c, err := NormalizeCase(RawCase{ID: "empty"}, 150)

		require.NoError(t, err)
		assert.Equal(t, int64(20), c.Slots)
		assert.Empty(t, c.EligiblePrizes())
	})

	t.Run("Negative values are clamped", func(t *testing.T) {
		c, err := NormalizeCase(RawCase{
			ID:       "r3",
			SpinCost: -4,
			Prizes:   []RawPrize{{Code: "x", Type: "item", Amount: -2, Weight: -9}},
		}, 0)

		require.NoError(t, err)
		assert.Equal(t, int64(1), c.SpinCost)
		assert.Zero(t, c.Prizes[0].Weight)
		assert.Zero(t, c.Prizes[0].Amount)
		assert.Equal(t, int64(1), c.Prizes[0].TicketQuantity())
	})

	t.Run("Missing id", func(t *testing.T) {
		_, err := NormalizeCase(RawCase{ID: "  "}, 150)
		assert.ErrorIs(t, err, errs.ErrInvalidCase)
	})

	t.Run("Unknown prize type", func(t *testing.T) {
		_, err := NormalizeCase(RawCase{ID: "r1", Prizes: []RawPrize{{Code: "x", Type: "car"}}}, 150)
		assert.ErrorIs(t, err, errs.ErrInvalidCase)
	})
}

func TestPrizeRarity(t *testing.T) {
	testCases := []struct {
		kind     PrizeKind
		code     string
		weight   int64
		expected Rarity
	}{
		{PrizeStars, "stars_500", 2, RarityYellow},
		{PrizeStars, "stars_200", 10, RarityPurple},
		{PrizeStars, "stars_50", 30, RarityBlue},
		{PrizeDiscount, "discount_50", 5, RarityRed},
		{PrizeDiscount, "discount_25", 8, RarityPurple},
		{PrizeDiscount, "discount_10", 20, RarityBlue},
		{PrizeItem, "vip_full_look", 1, RarityYellow},
		{PrizeItem, "shoes", 2, RarityRed},
		{PrizeItem, "bracelet", 5, RarityPurple},
		{PrizeItem, "socks", 12, RarityBlue},
	}

	for _, tc := range testCases {
		t.Run(tc.code, func(t *testing.T) {
			assert.Equal(t, tc.expected, DefaultRarity(tc.kind, tc.code, tc.weight))
		})
	}

	t.Run("Explicit rarity wins when valid", func(t *testing.T) {
		valid, invalid := "Red", "gold"

		p, err := NormalizePrize(RawPrize{Code: "stars_50", Type: "stars", Weight: 30, Rarity: &valid})
		require.NoError(t, err)
		assert.Equal(t, RarityRed, p.Rarity)

		p, err = NormalizePrize(RawPrize{Code: "stars_50", Type: "stars", Weight: 30, Rarity: &invalid})
		require.NoError(t, err)
		assert.Equal(t, RarityBlue, p.Rarity)
	})
}

func TestCaseConfigWeights(t *testing.T) {
	c, err := NormalizeCase(DefaultCases()[0], DefaultSpinCost)
	require.NoError(t, err)

	c.ApplyWeights([]PrizeWeight{
		{Code: "stars_500", Weight: 0, Enabled: true},
		{Code: "shoes", Weight: -3, Enabled: false},
		{Code: "unknown", Weight: 100, Enabled: true},
	})

	stars, ok := c.PrizeByCode("stars_500")
	require.True(t, ok)
	assert.False(t, stars.Eligible())

	shoes, _ := c.PrizeByCode("shoes")
	assert.Zero(t, shoes.Weight)
	assert.False(t, shoes.Enabled)

	_, ok = c.PrizeByCode("unknown")
	assert.False(t, ok)

	for _, p := range c.EligiblePrizes() {
		assert.NotEqual(t, "stars_500", p.Code)
		assert.NotEqual(t, "shoes", p.Code)
	}
	assert.Len(t, c.EligiblePrizes(), len(c.Prizes)-2)
}

func TestCaseConfigRoundTrip(t *testing.T) {
	c, err := NormalizeCase(DefaultCases()[0], DefaultSpinCost)
	require.NoError(t, err)

	back, err := NormalizeCase(c.ToRaw(), 1)
	require.NoError(t, err)
	assert.Equal(t, c, back)

	clone := c.Clone()
	clone.Prizes[0].Weight = 999
	assert.NotEqual(t, int64(999), c.Prizes[0].Weight)
}

func TestRequestStatusTransitions(t *testing.T) {
	tp := fixedClock(t, time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC))

	t.Run("Withdraw requests", func(t *testing.T) {
		testCases := []struct {
			from, to RequestStatus
			wantErr  error
		}{
			{StatusPending, StatusProcessing, nil},
			{StatusPending, StatusCompleted, nil},
			{StatusPending, StatusRejected, nil},
			{StatusProcessing, StatusCompleted, nil},
			{StatusProcessing, StatusPending, errs.ErrInvalidStatusTransition},
			{StatusCompleted, StatusRejected, errs.ErrInvalidStatusTransition},
			{StatusRejected, StatusProcessing, errs.ErrInvalidStatusTransition},
			{StatusPending, StatusNew, errs.ErrInvalidStatus},
		}

		for _, tc := range testCases {
			t.Run(string(tc.from)+"->"+string(tc.to), func(t *testing.T) {
				req := NewWithdrawRequest(1, 1000, tp)
				req.Status = tc.from

				err := req.TransitionTo(tc.to, tp)

				if tc.wantErr != nil {
					assert.ErrorIs(t, err, tc.wantErr)
					assert.Equal(t, tc.from, req.Status)
				} else {
					assert.NoError(t, err)
					assert.Equal(t, tc.to, req.Status)
				}
			})
		}
	})

	t.Run("Prize requests start as new", func(t *testing.T) {
		req := NewPrizeRequest(1, TicketBracelet, tp)
		assert.Equal(t, StatusNew, req.Status)

		assert.ErrorIs(t, req.TransitionTo(StatusPending, tp), errs.ErrInvalidStatus)
		require.NoError(t, req.TransitionTo(StatusProcessing, tp))
		require.NoError(t, req.TransitionTo(StatusRejected, tp))
		assert.True(t, req.Status.Terminal())
		assert.ErrorIs(t, req.TransitionTo(StatusCompleted, tp), errs.ErrInvalidStatusTransition)
	})

	t.Run("Parse", func(t *testing.T) {
		s, err := ParseRequestStatus("processing")
		assert.NoError(t, err)
		assert.Equal(t, StatusProcessing, s)

		_, err = ParseRequestStatus("done")
		assert.ErrorIs(t, err, errs.ErrInvalidStatus)
	})
}
