package migration

import (
	"context"
	"fmt"

	"github.com/amirhossein-jamali/stars-roulette/internal/domain/entity"
	"github.com/amirhossein-jamali/stars-roulette/internal/infrastructure/adapter/repository"
)

// seedCases stores the built-in cases when the case table is empty
func (m *MigrationManager) seedCases(ctx context.Context) error {
	repo := repository.NewCaseRepository(m.db.WithContext(ctx), m.timeProvider, m.logger)
	seeded, err := repo.SeedIfEmpty(ctx, entity.DefaultCases())
	if err != nil {
		return fmt.Errorf("seed default cases: %w", err)
	}
	if seeded {
		m.logger.Info("Default cases seeded", map[string]any{"count": len(entity.DefaultCases())})
	}
	return nil
}
