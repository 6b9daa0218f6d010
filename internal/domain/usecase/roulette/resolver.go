package roulette

import (
	"context"
	"fmt"
	"sort"

	"github.com/amirhossein-jamali/stars-roulette/internal/domain/entity"
	errs "github.com/amirhossein-jamali/stars-roulette/internal/domain/error"
	coreport "github.com/amirhossein-jamali/stars-roulette/internal/domain/port/core"
	"github.com/amirhossein-jamali/stars-roulette/internal/domain/port/persistence"
)

// Resolver loads and normalizes case configurations. Nothing is cached, so
// admin edits apply to the very next draw.
type Resolver struct {
	uow    persistence.UnitOfWork
	logger coreport.Logger
}

// NewResolver creates a case resolver
func NewResolver(uow persistence.UnitOfWork, logger coreport.Logger) *Resolver {
	return &Resolver{uow: uow, logger: logger}
}

// EnsureSeeded writes the default cases when the store holds none
func (r *Resolver) EnsureSeeded(ctx context.Context) error {
	seeded, err := r.uow.GetCaseRepository(ctx).SeedIfEmpty(ctx, entity.DefaultCases())
	if err != nil {
		return fmt.Errorf("seed default cases: %w", err)
	}
	if seeded {
		r.logger.Info("Seeded default cases", map[string]any{"count": len(entity.DefaultCases())})
	}
	return nil
}

// List returns every case, normalized and ordered by id. An empty store is
// seeded first. Stored cases that no longer normalize are skipped.
func (r *Resolver) List(ctx context.Context, settings entity.EconomySettings) ([]*entity.CaseConfig, error) {
	repo := r.uow.GetCaseRepository(ctx)

	raw, err := repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list cases: %w", err)
	}
	if len(raw) == 0 {
		if err := r.EnsureSeeded(ctx); err != nil {
			return nil, err
		}
		if raw, err = repo.List(ctx); err != nil {
			return nil, fmt.Errorf("list cases: %w", err)
		}
	}

	out := make([]*entity.CaseConfig, 0, len(raw))
	for _, rc := range raw {
		c, err := entity.NormalizeCase(rc, settings.DefaultSpinCost)
		if err != nil {
			r.logger.Warn("Skipping invalid stored case", map[string]any{
				"case_id": rc.ID,
				"error":   err.Error(),
			})
			continue
		}
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// Resolve returns the requested case. An unknown id falls back to the first
// case by id so that old client links keep working; ErrUnknownCase is only
// returned when no case exists at all.
func (r *Resolver) Resolve(ctx context.Context, caseID string, settings entity.EconomySettings) (*entity.CaseConfig, error) {
	cases, err := r.List(ctx, settings)
	if err != nil {
		return nil, err
	}
	if len(cases) == 0 {
		return nil, errs.ErrUnknownCase
	}

	for _, c := range cases {
		if c.ID == caseID {
			return c, nil
		}
	}

	r.logger.Debug("Unknown case requested, using first case", map[string]any{
		"requested_case": caseID,
		"case_id":        cases[0].ID,
	})
	return cases[0], nil
}
