package persistence

import (
	"context"

	"github.com/amirhossein-jamali/stars-roulette/internal/domain/entity"
)

// CaseRepository stores case configurations in their raw form
type CaseRepository interface {
	// List returns every stored case ordered by id
	List(ctx context.Context) ([]entity.RawCase, error)

	// Get returns one stored case
	//
	// Possible errors:
	// - ErrUnknownCase: If no case has the given id
	Get(ctx context.Context, id string) (*entity.RawCase, error)

	// Save inserts or replaces one case
	Save(ctx context.Context, c entity.RawCase) error

	// ReplaceAll stores exactly the given cases, deleting the others
	ReplaceAll(ctx context.Context, cases []entity.RawCase) error

	// SeedIfEmpty stores the given cases only when no case exists yet.
	// Returns true when the seed was written.
	SeedIfEmpty(ctx context.Context, cases []entity.RawCase) (bool, error)
}
