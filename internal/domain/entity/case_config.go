package entity

import (
	"fmt"
	"strings"

	errs "github.com/amirhossein-jamali/stars-roulette/internal/domain/error"
)

const defaultSlots = 20

// CaseConfig is a normalized, admin-configured weighted prize table
type CaseConfig struct {
	ID       string
	Title    string
	SpinCost int64
	Slots    int64
	Prizes   []Prize
	Enabled  bool
}

// EligiblePrizes returns the prizes taking part in the base draw, in table order
func (c *CaseConfig) EligiblePrizes() []Prize {
	out := make([]Prize, 0, len(c.Prizes))
	for _, p := range c.Prizes {
		if p.Eligible() {
			out = append(out, p)
		}
	}
	return out
}

// PrizeByCode finds a prize by code
func (c *CaseConfig) PrizeByCode(code string) (Prize, bool) {
	for _, p := range c.Prizes {
		if p.Code == code {
			return p, true
		}
	}
	return Prize{}, false
}

// Clone returns a copy that shares nothing with c
func (c *CaseConfig) Clone() *CaseConfig {
	cp := *c
	cp.Prizes = append([]Prize(nil), c.Prizes...)
	return &cp
}

// RawCase is an un-normalized case as it arrives from storage or the admin API
type RawCase struct {
	ID       string     `json:"id"`
	Title    string     `json:"title"`
	SpinCost int64      `json:"spin_cost"`
	Slots    int64      `json:"slots"`
	Prizes   []RawPrize `json:"prizes"`
	Enabled  *bool      `json:"is_enabled,omitempty"`
}

// NormalizeCase coerces every field of a raw case to its type and bounds.
// A missing spin cost falls back to defaultSpinCost, missing slots to the
// total weight (or 20 when that is zero).
func NormalizeCase(raw RawCase, defaultSpinCost int64) (*CaseConfig, error) {
	id := strings.TrimSpace(raw.ID)
	if id == "" {
		return nil, fmt.Errorf("%w: case id is required", errs.ErrInvalidCase)
	}

	prizes := make([]Prize, 0, len(raw.Prizes))
	var totalWeight int64
	for i, rp := range raw.Prizes {
		p, err := NormalizePrize(rp)
		if err != nil {
			return nil, fmt.Errorf("case %s prize #%d: %w", id, i, err)
		}
		prizes = append(prizes, p)
		totalWeight += p.Weight
	}

	title := strings.TrimSpace(raw.Title)
	if title == "" {
		title = id
	}

	spinCost := raw.SpinCost
	if spinCost <= 0 {
		spinCost = defaultSpinCost
	}
	spinCost = max(1, spinCost)

	slots := raw.Slots
	if slots <= 0 {
		slots = totalWeight
	}
	if slots <= 0 {
		slots = defaultSlots
	}

	enabled := true
	if raw.Enabled != nil {
		enabled = *raw.Enabled
	}

	return &CaseConfig{
		ID:       id,
		Title:    title,
		SpinCost: spinCost,
		Slots:    slots,
		Prizes:   prizes,
		Enabled:  enabled,
	}, nil
}

// ToRaw converts a normalized case back to its stored form
func (c *CaseConfig) ToRaw() RawCase {
	prizes := make([]RawPrize, 0, len(c.Prizes))
	for _, p := range c.Prizes {
		prizes = append(prizes, p.ToRaw())
	}
	enabled := c.Enabled
	return RawCase{
		ID:       c.ID,
		Title:    c.Title,
		SpinCost: c.SpinCost,
		Slots:    c.Slots,
		Prizes:   prizes,
		Enabled:  &enabled,
	}
}

// PrizeWeight is an admin edit of one prize's weight and enable flag
type PrizeWeight struct {
	Code    string
	Weight  int64
	Enabled bool
}

// ApplyWeights updates weight and enable flag of matching prize codes.
// Unknown codes are ignored and weights are clamped to zero.
func (c *CaseConfig) ApplyWeights(items []PrizeWeight) {
	byCode := make(map[string]PrizeWeight, len(items))
	for _, it := range items {
		byCode[it.Code] = it
	}
	for i := range c.Prizes {
		if w, ok := byCode[c.Prizes[i].Code]; ok {
			c.Prizes[i].Weight = max(0, w.Weight)
			c.Prizes[i].Enabled = w.Enabled
		}
	}
}

func ptr[T any](v T) *T { return &v }

// DefaultCases is the seed written when no case is configured yet
func DefaultCases() []RawCase {
	return []RawCase{
		{
			ID:       "r1",
			Title:    "Classic",
			SpinCost: 150,
			Prizes: []RawPrize{
				{Code: "stars_50", Title: "50 Stars", Type: string(PrizeStars), Amount: 50, Weight: 30},
				{Code: "stars_100", Title: "100 Stars", Type: string(PrizeStars), Amount: 100, Weight: 15},
				{Code: "stars_500", Title: "500 Stars", Type: string(PrizeStars), Amount: 500, Weight: 2},
				{Code: "discount_10", Title: "10% discount", Type: string(PrizeDiscount), Amount: 10, Weight: 20},
				{Code: "discount_25", Title: "25% discount", Type: string(PrizeDiscount), Amount: 25, Weight: 8},
				{Code: "shoes", Title: "Sneakers", Type: string(PrizeItem), Amount: 1, Weight: 12},
				{Code: "bracelet", Title: "Bracelet", Type: string(PrizeItem), Amount: 1, Weight: 12},
				{Code: "vip_full_look", Title: "VIP full look", Type: string(PrizeItem), Amount: 1, Weight: 1, Rarity: ptr(string(RarityYellow))},
			},
			Enabled: ptr(true),
		},
	}
}
