package ledger

import (
	"context"
	"slices"

	"github.com/amirhossein-jamali/stars-roulette/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/stars-roulette/internal/domain/port/core"
	"github.com/amirhossein-jamali/stars-roulette/internal/domain/port/persistence"
)

// LockUsers row-locks several users in ascending id order, so that two
// units locking the same pair can never deadlock each other
func LockUsers(ctx context.Context, users persistence.UserRepository, ids ...int64) (map[int64]*entity.User, error) {
	ordered := slices.Clone(ids)
	slices.Sort(ordered)
	ordered = slices.Compact(ordered)

	out := make(map[int64]*entity.User, len(ordered))
	for _, id := range ordered {
		u, err := users.GetForUpdate(ctx, id)
		if err != nil {
			return nil, err
		}
		out[id] = u
	}
	return out, nil
}

// EnsureUsers creates missing user rows, ignoring ids that already exist
func EnsureUsers(
	ctx context.Context,
	users persistence.UserRepository,
	timeProvider coreport.TimeProvider,
	ids ...int64,
) error {
	for _, id := range ids {
		u, err := entity.NewUser(id, timeProvider)
		if err != nil {
			return err
		}
		if _, err := users.EnsureExists(ctx, u); err != nil {
			return err
		}
	}
	return nil
}
