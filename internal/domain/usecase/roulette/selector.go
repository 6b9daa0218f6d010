package roulette

import (
	"slices"

	"github.com/amirhossein-jamali/stars-roulette/internal/domain/entity"
	errs "github.com/amirhossein-jamali/stars-roulette/internal/domain/error"
	coreport "github.com/amirhossein-jamali/stars-roulette/internal/domain/port/core"
)

// Selector draws prizes from a case table
type Selector struct {
	rng coreport.RandomSource
}

// NewSelector creates a selector over the given random source
func NewSelector(rng coreport.RandomSource) *Selector {
	return &Selector{rng: rng}
}

// Draw picks one eligible prize with probability weight / total weight
func (s *Selector) Draw(prizes []entity.Prize) (entity.Prize, error) {
	eligible := make([]entity.Prize, 0, len(prizes))
	for _, p := range prizes {
		if p.Eligible() {
			eligible = append(eligible, p)
		}
	}
	if len(eligible) == 0 {
		return entity.Prize{}, errs.ErrNoEligiblePrize
	}
	return s.pick(eligible, func(p entity.Prize) int64 { return p.Weight }), nil
}

// pick runs a cumulative-weight draw. Every weight must be positive.
func (s *Selector) pick(candidates []entity.Prize, weight func(entity.Prize) int64) entity.Prize {
	var total int64
	for _, p := range candidates {
		total += weight(p)
	}

	r := s.rng.Int64N(total)
	for _, p := range candidates {
		w := weight(p)
		if r < w {
			return p
		}
		r -= w
	}
	return candidates[len(candidates)-1]
}

// rerollWeight gives every alternative a chance, even when disabled from
// the base draw by a zero weight
func rerollWeight(p entity.Prize) int64 {
	return max(1, p.Weight)
}

// roll reports true with the given probability in percent
func (s *Selector) roll(percent int64) bool {
	return s.rng.Int64N(100) < percent
}

// ApplyNearTarget perturbs a base draw depending on how close the user is
// to completing item targets. It returns the final prize and whether the
// base draw was overridden.
//
// A draw that would deliver the last missing ticket of a code is re-rolled
// among the other enabled prizes with FinalTicketPenaltyPercent probability.
// Otherwise, when some codes miss two or three tickets, a draw outside those
// codes is re-rolled among them with BoostPercent probability.
func (s *Selector) ApplyNearTarget(
	drawn entity.Prize,
	c *entity.CaseConfig,
	progress entity.ProgressMap,
	settings entity.EconomySettings,
) (entity.Prize, bool) {
	if !settings.OverlayEnabled() || len(c.Prizes) == 0 {
		return drawn, false
	}

	var oneLeft, boosted []string
	for _, p := range c.Prizes {
		if p.Kind != entity.PrizeItem || slices.Contains(oneLeft, p.Code) || slices.Contains(boosted, p.Code) {
			continue
		}
		switch progress.Left(p.Code, settings.TicketTarget(p.Code)) {
		case 1:
			oneLeft = append(oneLeft, p.Code)
		case 2, 3:
			boosted = append(boosted, p.Code)
		}
	}

	drawnItem := drawn.Kind == entity.PrizeItem

	if drawnItem && slices.Contains(oneLeft, drawn.Code) && s.roll(settings.FinalTicketPenaltyPercent()) {
		var alt []entity.Prize
		for _, p := range c.Prizes {
			if !p.Enabled || (p.Kind == entity.PrizeItem && slices.Contains(oneLeft, p.Code)) {
				continue
			}
			alt = append(alt, p)
		}
		if len(alt) > 0 {
			return s.pick(alt, rerollWeight), true
		}
	}

	if len(boosted) == 0 || (drawnItem && slices.Contains(boosted, drawn.Code)) {
		return drawn, false
	}
	if !s.roll(settings.BoostPercent()) {
		return drawn, false
	}

	var pool []entity.Prize
	for _, p := range c.Prizes {
		if p.Enabled && p.Kind == entity.PrizeItem && slices.Contains(boosted, p.Code) {
			pool = append(pool, p)
		}
	}
	if len(pool) == 0 {
		return drawn, false
	}
	return s.pick(pool, rerollWeight), true
}

// Select draws from the case and applies the near-target overlay
func (s *Selector) Select(
	c *entity.CaseConfig,
	progress entity.ProgressMap,
	settings entity.EconomySettings,
) (entity.Prize, bool, error) {
	drawn, err := s.Draw(c.Prizes)
	if err != nil {
		return entity.Prize{}, false, err
	}
	final, overridden := s.ApplyNearTarget(drawn, c, progress, settings)
	return final, overridden, nil
}
