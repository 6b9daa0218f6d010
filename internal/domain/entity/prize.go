package entity

import (
	"fmt"
	"strings"

	errs "github.com/amirhossein-jamali/stars-roulette/internal/domain/error"
)

// PrizeKind is the closed set of prize variants a case can award
type PrizeKind string

const (
	PrizeItem     PrizeKind = "item"
	PrizeStars    PrizeKind = "stars"
	PrizeDiscount PrizeKind = "discount"
)

// ParsePrizeKind converts a stored type string to a PrizeKind. An empty
// string defaults to item.
func ParsePrizeKind(s string) (PrizeKind, error) {
	switch PrizeKind(strings.ToLower(strings.TrimSpace(s))) {
	case "", PrizeItem:
		return PrizeItem, nil
	case PrizeStars:
		return PrizeStars, nil
	case PrizeDiscount:
		return PrizeDiscount, nil
	default:
		return "", fmt.Errorf("%w: unknown prize type %q", errs.ErrInvalidCase, s)
	}
}

// Rarity is the display tier of a prize
type Rarity string

const (
	RarityBlue   Rarity = "blue"
	RarityPurple Rarity = "purple"
	RarityRed    Rarity = "red"
	RarityYellow Rarity = "yellow"
)

// Valid reports whether r is one of the fixed tiers
func (r Rarity) Valid() bool {
	switch r {
	case RarityBlue, RarityPurple, RarityRed, RarityYellow:
		return true
	}
	return false
}

var premiumItemMarkers = []string{"vip", "full_look", "exclusive", "limited", "cert_3000"}

// DefaultRarity derives a tier from the prize type, weight and code
func DefaultRarity(kind PrizeKind, code string, weight int64) Rarity {
	switch kind {
	case PrizeStars:
		switch {
		case strings.HasSuffix(code, "1000"), strings.HasSuffix(code, "500"):
			return RarityYellow
		case strings.HasSuffix(code, "300"), strings.HasSuffix(code, "200"):
			return RarityPurple
		}
		return RarityBlue
	case PrizeDiscount:
		switch {
		case strings.Contains(code, "50"), strings.Contains(code, "30"):
			return RarityRed
		case strings.Contains(code, "25"), strings.Contains(code, "20"):
			return RarityPurple
		}
		return RarityBlue
	default:
		for _, marker := range premiumItemMarkers {
			if strings.Contains(code, marker) {
				return RarityYellow
			}
		}
		switch {
		case weight <= 2:
			return RarityRed
		case weight <= 5:
			return RarityPurple
		}
		return RarityBlue
	}
}

// Prize is one entry of a case prize table
type Prize struct {
	Code    string
	Title   string
	Kind    PrizeKind
	Amount  int64 // ticket quantity, Stars amount or discount percent
	Weight  int64
	Enabled bool
	Rarity  Rarity
}

// Eligible reports whether the prize takes part in the base draw
func (p Prize) Eligible() bool {
	return p.Enabled && p.Weight > 0
}

// TicketQuantity is the number of hidden tickets an item prize grants
func (p Prize) TicketQuantity() int64 {
	return max(1, p.Amount)
}

// TicketKind is the counter an item prize accrues to
func (p Prize) TicketKind() TicketKind {
	return TicketKindForPrizeCode(p.Code)
}

// RawPrize is an un-normalized prize as it arrives from storage or the admin API
type RawPrize struct {
	Code    string  `json:"code"`
	Title   string  `json:"title"`
	Type    string  `json:"type"`
	Amount  int64   `json:"amount"`
	Weight  int64   `json:"weight"`
	Enabled *bool   `json:"is_enabled,omitempty"`
	Rarity  *string `json:"rarity,omitempty"`
}

// NormalizePrize coerces a raw prize to its semantic types and bounds
func NormalizePrize(raw RawPrize) (Prize, error) {
	kind, err := ParsePrizeKind(raw.Type)
	if err != nil {
		return Prize{}, err
	}

	code := strings.TrimSpace(raw.Code)
	if code == "" {
		code = "prize"
	}
	title := strings.TrimSpace(raw.Title)
	if title == "" {
		title = code
	}
	weight := max(0, raw.Weight)

	rarity := DefaultRarity(kind, code, weight)
	if raw.Rarity != nil {
		if r := Rarity(strings.ToLower(strings.TrimSpace(*raw.Rarity))); r.Valid() {
			rarity = r
		}
	}

	enabled := true
	if raw.Enabled != nil {
		enabled = *raw.Enabled
	}

	return Prize{
		Code:    code,
		Title:   title,
		Kind:    kind,
		Amount:  max(0, raw.Amount),
		Weight:  weight,
		Enabled: enabled,
		Rarity:  rarity,
	}, nil
}

// ToRaw converts a normalized prize back to its stored form
func (p Prize) ToRaw() RawPrize {
	enabled := p.Enabled
	rarity := string(p.Rarity)
	return RawPrize{
		Code:    p.Code,
		Title:   p.Title,
		Type:    string(p.Kind),
		Amount:  p.Amount,
		Weight:  p.Weight,
		Enabled: &enabled,
		Rarity:  &rarity,
	}
}
