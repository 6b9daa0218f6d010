package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTicketTarget(t *testing.T) {
	settings := DefaultEconomySettings()
	settings.TicketTargets = map[string]int64{"bracelet": 7, "broken": 0}

	assert.Equal(t, int64(10), settings.TicketTarget("shoes"))
	assert.Equal(t, int64(7), settings.TicketTarget("bracelet"))
	assert.Equal(t, int64(5), settings.TicketTarget("vip_full_look"))
	assert.Equal(t, int64(5), settings.TicketTarget("broken"))
}

func TestBuybackUnitPrice(t *testing.T) {
	testCases := []struct {
		name        string
		sellPercent int64
		caseCost    int64
		expected    int64
	}{
		{"Half of the case cost", 50, 150, 75},
		{"Rounds down", 33, 100, 33},
		{"Zero percent", 0, 150, 0},
		{"Free case", 50, 0, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			settings := DefaultEconomySettings()
			settings.SellPercent = tc.sellPercent

			assert.Equal(t, tc.expected, settings.BuybackUnitPrice(tc.caseCost))
		})
	}
}

func TestReferralBonus(t *testing.T) {
	settings := DefaultEconomySettings()
	assert.Zero(t, settings.ReferralBonus(1000))

	settings.ReferralBonusPercent = 10
	assert.Equal(t, int64(100), settings.ReferralBonus(1000))
	assert.Equal(t, int64(0), settings.ReferralBonus(9))
	assert.Zero(t, settings.ReferralBonus(-5))
}

func TestFinalTicketPenaltyPercent(t *testing.T) {
	testCases := []struct {
		boost    int64
		expected int64
	}{
		{0, 97},
		{2, 97},
		{10, 95},
		{40, 80},
		{60, 70},
		{100, 70},
		{250, 70},
	}

	for _, tc := range testCases {
		settings := DefaultEconomySettings()
		settings.NearTargetBoostPercent = tc.boost

		got := settings.FinalTicketPenaltyPercent()

		assert.Equal(t, tc.expected, got, "boost %d", tc.boost)
		assert.GreaterOrEqual(t, got, int64(70))
		assert.LessOrEqual(t, got, int64(97))
	}
}

func TestEconomyClone(t *testing.T) {
	settings := DefaultEconomySettings()
	settings.TicketTargets["shoes"] = 12

	c := settings.Clone()
	c.TicketTargets["shoes"] = 3

	assert.Equal(t, int64(12), settings.TicketTarget("shoes"))
	assert.NotNil(t, EconomySettings{}.Clone().TicketTargets)
}

func TestTicketKinds(t *testing.T) {
	assert.Equal(t, TicketBracelet, TicketKindForPrizeCode("bracelet"))
	assert.Equal(t, TicketSneakers, TicketKindForPrizeCode("shoes"))
	assert.Equal(t, TicketSneakers, TicketKindForPrizeCode("vip_full_look"))

	kind, err := ParseTicketKind("bracelet")
	assert.NoError(t, err)
	assert.Equal(t, int64(5), kind.RedemptionCost())
	assert.Equal(t, int64(10), TicketSneakers.RedemptionCost())

	_, err = ParseTicketKind("watch")
	assert.Error(t, err)

	progress := ProgressMap{"shoes": 8}
	assert.Equal(t, int64(2), progress.Left("shoes", 10))
	assert.Equal(t, int64(5), progress.Left("bracelet", 5))
	assert.Zero(t, ProgressMap{"shoes": 12}.Left("shoes", 10))
}
