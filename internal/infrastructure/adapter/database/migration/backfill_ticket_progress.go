package migration

import (
	"context"

	coreport "github.com/amirhossein-jamali/stars-roulette/internal/domain/port/core"
	"github.com/amirhossein-jamali/stars-roulette/internal/infrastructure/adapter/repository"
	"gorm.io/gorm"
)

// BackfillTicketProgress fills the ticket_progress table, introduced in
// 1.1.0, from the ticket lots already recorded in the ledger
type BackfillTicketProgress struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewBackfillTicketProgress creates a new migration instance
func NewBackfillTicketProgress(db *gorm.DB, logger coreport.Logger) *BackfillTicketProgress {
	return &BackfillTicketProgress{
		db:     db,
		logger: logger,
	}
}

// Run executes the migration
func (m *BackfillTicketProgress) Run(ctx context.Context) error {
	var lots int64
	if err := m.db.WithContext(ctx).Raw(
		`SELECT COUNT(*) FROM transactions WHERE meta->>'hidden_tickets_added' IS NOT NULL`,
	).Scan(&lots).Error; err != nil {
		m.logger.Error("Failed to count ticket lots", map[string]any{"error": err.Error()})
		return err
	}
	if lots == 0 {
		m.logger.Info("No ticket lots to backfill", nil)
		return nil
	}

	repo := repository.NewTicketProgressRepository(m.db.WithContext(ctx), m.logger)
	rows, err := repo.Reconcile(ctx)
	if err != nil {
		return err
	}

	m.logger.Info("Ticket progress backfilled", map[string]any{
		"lots": lots,
		"rows": rows,
	})
	return nil
}
