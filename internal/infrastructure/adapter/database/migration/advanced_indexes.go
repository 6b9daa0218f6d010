package migration

import (
	"context"

	coreport "github.com/amirhossein-jamali/stars-roulette/internal/domain/port/core"
	"gorm.io/gorm"
)

// AdvancedIndexManager manages PostgreSQL-specific indexes GORM tags cannot express
type AdvancedIndexManager struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewAdvancedIndexManager creates a new advanced index manager
func NewAdvancedIndexManager(db *gorm.DB, logger coreport.Logger) *AdvancedIndexManager {
	return &AdvancedIndexManager{
		db:     db,
		logger: logger,
	}
}

var advancedIndexes = []struct {
	name string
	sql  string
}{
	{
		// Resale and reconciliation only look at rows carrying a lot descriptor
		name: "idx_transactions_ticket_lots",
		sql: `CREATE INDEX IF NOT EXISTS idx_transactions_ticket_lots
			ON transactions (user_id, id)
			WHERE meta->>'hidden_tickets_added' IS NOT NULL`,
	},
	{
		name: "idx_transactions_created_at_brin",
		sql: `CREATE INDEX IF NOT EXISTS idx_transactions_created_at_brin
			ON transactions USING BRIN (created_at)
			WITH (pages_per_range = 32)`,
	},
	{
		name: "idx_withdraw_requests_pending",
		sql: `CREATE INDEX IF NOT EXISTS idx_withdraw_requests_pending
			ON withdraw_requests (created_at)
			WHERE status IN ('new', 'pending', 'processing')`,
	},
	{
		name: "idx_prize_requests_pending",
		sql: `CREATE INDEX IF NOT EXISTS idx_prize_requests_pending
			ON prize_requests (created_at)
			WHERE status IN ('new', 'pending', 'processing')`,
	},
	{
		name: "idx_users_referrer_created",
		sql: `CREATE INDEX IF NOT EXISTS idx_users_referrer_created
			ON users (referrer_id, created_at DESC)
			WHERE referrer_id IS NOT NULL`,
	},
}

// CreateAdvancedIndexes creates the partial and BRIN indexes
func (m *AdvancedIndexManager) CreateAdvancedIndexes(ctx context.Context) error {
	m.logger.Info("Creating advanced PostgreSQL indexes", nil)

	for _, idx := range advancedIndexes {
		if err := m.db.WithContext(ctx).Exec(idx.sql).Error; err != nil {
			m.logger.Error("Failed to create index", map[string]any{
				"index": idx.name,
				"error": err.Error(),
			})
			return err
		}
	}
	return nil
}

// CreatePerformanceTweaks applies PostgreSQL storage settings. Failures are
// logged and ignored.
func (m *AdvancedIndexManager) CreatePerformanceTweaks(ctx context.Context) {
	tweaks := map[string]string{
		// users rows are updated on every spin; leave room for HOT updates
		"users_fillfactor":        `ALTER TABLE users SET (fillfactor = 80)`,
		"transactions_user_stats": `ALTER TABLE transactions ALTER COLUMN user_id SET STATISTICS 1000`,
	}
	for name, stmt := range tweaks {
		if err := m.db.WithContext(ctx).Exec(stmt).Error; err != nil {
			m.logger.Warn("Failed to apply performance tweak", map[string]any{
				"tweak": name,
				"error": err.Error(),
			})
		}
	}
}
