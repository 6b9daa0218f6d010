package roulette

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/stars-roulette/internal/domain/entity"
	errs "github.com/amirhossein-jamali/stars-roulette/internal/domain/error"
	"github.com/amirhossein-jamali/stars-roulette/internal/infrastructure/adapter/random"
	mockcore "github.com/amirhossein-jamali/stars-roulette/mocks/port/core"
)

func prize(code string, kind entity.PrizeKind, weight int64) entity.Prize {
	return entity.Prize{Code: code, Title: code, Kind: kind, Amount: 1, Weight: weight, Enabled: true}
}

func overlayCase() *entity.CaseConfig {
	return &entity.CaseConfig{
		ID:       "r1",
		Title:    "Classic",
		SpinCost: 150,
		Slots:    20,
		Enabled:  true,
		Prizes: []entity.Prize{
			prize("stars_50", entity.PrizeStars, 10),
			prize("shoes", entity.PrizeItem, 10),
		},
	}
}

func overlaySettings(boost int64) entity.EconomySettings {
	s := entity.DefaultEconomySettings()
	s.NearTargetBoostPercent = boost
	return s
}

func TestSelector_DrawFollowsWeights(t *testing.T) {
	selector := NewSelector(random.NewSeeded(7, 11))
	prizes := []entity.Prize{
		prize("a", entity.PrizeStars, 10),
		prize("b", entity.PrizeStars, 0),
		prize("c", entity.PrizeStars, 5),
	}

	const draws = 150_000
	counts := map[string]int{}
	for range draws {
		p, err := selector.Draw(prizes)
		require.NoError(t, err)
		counts[p.Code]++
	}

	assert.Zero(t, counts["b"], "zero-weight prize must never be drawn")
	assert.Equal(t, draws, counts["a"]+counts["c"])
	ratio := float64(counts["a"]) / float64(counts["c"])
	assert.InDelta(t, 2.0, ratio, 0.06)
}

func TestSelector_DrawSkipsDisabled(t *testing.T) {
	selector := NewSelector(random.NewSequence(0, 1, 2, 3))
	disabled := prize("a", entity.PrizeStars, 100)
	disabled.Enabled = false
	prizes := []entity.Prize{disabled, prize("b", entity.PrizeDiscount, 1)}

	for range 4 {
		p, err := selector.Draw(prizes)
		require.NoError(t, err)
		assert.Equal(t, "b", p.Code)
	}
}

func TestSelector_NoEligiblePrize(t *testing.T) {
	selector := NewSelector(random.NewSequence(0))

	_, err := selector.Draw([]entity.Prize{prize("a", entity.PrizeStars, 0)})
	assert.ErrorIs(t, err, errs.ErrNoEligiblePrize)

	_, err = selector.Draw(nil)
	assert.ErrorIs(t, err, errs.ErrNoEligiblePrize)
}

func TestSelector_NearTarget(t *testing.T) {
	testCases := []struct {
		name           string
		draws          []int64
		boost          int64
		progress       entity.ProgressMap
		wantCode       string
		wantOverridden bool
	}{
		{
			name:     "Overlay disabled keeps the base draw",
			draws:    []int64{15},
			boost:    0,
			progress: entity.ProgressMap{"shoes": 9},
			wantCode: "shoes",
		},
		{
			name:           "Final ticket is re-rolled",
			draws:          []int64{15, 0, 0},
			boost:          10,
			progress:       entity.ProgressMap{"shoes": 9},
			wantCode:       "stars_50",
			wantOverridden: true,
		},
		{
			name:     "Final ticket survives a lost penalty roll",
			draws:    []int64{15, 99},
			boost:    10,
			progress: entity.ProgressMap{"shoes": 9},
			wantCode: "shoes",
		},
		{
			name:           "Near target boost pulls toward the item",
			draws:          []int64{0, 0, 0},
			boost:          50,
			progress:       entity.ProgressMap{"shoes": 8},
			wantCode:       "shoes",
			wantOverridden: true,
		},
		{
			name:     "Boost roll lost",
			draws:    []int64{0, 50},
			boost:    50,
			progress: entity.ProgressMap{"shoes": 8},
			wantCode: "stars_50",
		},
		{
			name:     "Far from target is untouched",
			draws:    []int64{0},
			boost:    50,
			progress: entity.ProgressMap{"shoes": 2},
			wantCode: "stars_50",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			selector := NewSelector(random.NewSequence(tc.draws...))

			p, overridden, err := selector.Select(overlayCase(), tc.progress, overlaySettings(tc.boost))

			require.NoError(t, err)
			assert.Equal(t, tc.wantCode, p.Code)
			assert.Equal(t, tc.wantOverridden, overridden)
		})
	}
}

func TestSelector_FinalTicketThrottle(t *testing.T) {
	selector := NewSelector(random.NewSeeded(3, 5))
	c := overlayCase()
	c.Prizes[0].Weight = 1
	c.Prizes[1].Weight = 100
	settings := overlaySettings(10)
	progress := entity.ProgressMap{"shoes": 9}

	const draws = 20_000
	var drawnFinal, rerolled int
	for range draws {
		base, err := selector.Draw(c.Prizes)
		require.NoError(t, err)
		if base.Code != "shoes" {
			continue
		}
		drawnFinal++
		if final, overridden := selector.ApplyNearTarget(base, c, progress, settings); overridden {
			assert.NotEqual(t, "shoes", final.Code)
			rerolled++
		}
	}

	require.Positive(t, drawnFinal)
	share := float64(rerolled) / float64(drawnFinal)
	assert.GreaterOrEqual(t, share, 0.70)
	assert.InDelta(t, float64(settings.FinalTicketPenaltyPercent())/100, share, 0.02)
}

func TestSelector_DrawSkipsIneligibleWeight(t *testing.T) {
	rng := mockcore.NewMockRandomSource(t)
	// Total weight counts eligible prizes only: 10 + 5.
	rng.EXPECT().Int64N(int64(15)).Return(10).Once()
	prizes := []entity.Prize{
		prize("a", entity.PrizeStars, 10),
		prize("off", entity.PrizeStars, 0),
		prize("b", entity.PrizeDiscount, 5),
	}

	got, err := NewSelector(rng).Draw(prizes)

	require.NoError(t, err)
	assert.Equal(t, "b", got.Code)
}
