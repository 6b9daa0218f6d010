package entity

import "maps"

// Economy defaults
const (
	DefaultSpinCost         int64 = 150
	DefaultSellPercent      int64 = 50
	DefaultMinWithdraw      int64 = 1000
	DefaultMaxInvoiceAmount int64 = 1_000_000

	shoesTicketTarget   int64 = 10
	defaultTicketTarget int64 = 5

	penaltyFloorPercent int64 = 70
	penaltyCapPercent   int64 = 97
)

// EconomySettings is an immutable snapshot of the tunable economy, taken
// once per request
type EconomySettings struct {
	DefaultSpinCost             int64
	SellPercent                 int64
	NearTargetBoostPercent      int64
	TicketTargets               map[string]int64
	ReferralBonusPercent        int64
	ReferralSignupBonusReferrer int64
	ReferralSignupBonusInvitee  int64
	MinWithdraw                 int64
	MaxInvoiceAmount            int64
}

// DefaultEconomySettings returns the built-in economy
func DefaultEconomySettings() EconomySettings {
	return EconomySettings{
		DefaultSpinCost:  DefaultSpinCost,
		SellPercent:      DefaultSellPercent,
		TicketTargets:    map[string]int64{},
		MinWithdraw:      DefaultMinWithdraw,
		MaxInvoiceAmount: DefaultMaxInvoiceAmount,
	}
}

// TicketTarget is the collection target of an item prize code
func (s EconomySettings) TicketTarget(code string) int64 {
	if t, ok := s.TicketTargets[code]; ok && t > 0 {
		return t
	}
	if code == "shoes" {
		return shoesTicketTarget
	}
	return defaultTicketTarget
}

// BuybackUnitPrice is the resale price of one ticket won in a case of caseCost
func (s EconomySettings) BuybackUnitPrice(caseCost int64) int64 {
	if caseCost <= 0 || s.SellPercent <= 0 {
		return 0
	}
	return caseCost * s.SellPercent / 100
}

// ReferralBonus is the referrer's share of a deposit
func (s EconomySettings) ReferralBonus(totalAmount int64) int64 {
	if s.ReferralBonusPercent <= 0 || totalAmount <= 0 {
		return 0
	}
	return totalAmount * s.ReferralBonusPercent / 100
}

// OverlayEnabled reports whether the near-target overlay runs at all
func (s EconomySettings) OverlayEnabled() bool {
	return s.NearTargetBoostPercent > 0
}

// BoostPercent is the configured boost clamped to 0..100
func (s EconomySettings) BoostPercent() int64 {
	return min(100, max(0, s.NearTargetBoostPercent))
}

// FinalTicketPenaltyPercent is the probability, in percent, that a draw
// completing a ticket target is re-rolled. It stays within 70..97.
func (s EconomySettings) FinalTicketPenaltyPercent() int64 {
	return max(penaltyFloorPercent, min(penaltyCapPercent, 100-max(1, s.BoostPercent()/2)))
}

// Clone returns a copy that shares no map with s
func (s EconomySettings) Clone() EconomySettings {
	c := s
	c.TicketTargets = maps.Clone(s.TicketTargets)
	if c.TicketTargets == nil {
		c.TicketTargets = map[string]int64{}
	}
	return c
}
