package repository

import (
	"context"

	"github.com/amirhossein-jamali/stars-roulette/internal/domain/entity"
	errs "github.com/amirhossein-jamali/stars-roulette/internal/domain/error"
	coreport "github.com/amirhossein-jamali/stars-roulette/internal/domain/port/core"
	"github.com/amirhossein-jamali/stars-roulette/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TicketProgressRepository implements persistence.TicketProgressRepository
// using GORM
type TicketProgressRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewTicketProgressRepository creates a new TicketProgressRepository instance
func NewTicketProgressRepository(db *gorm.DB, logger coreport.Logger) *TicketProgressRepository {
	return &TicketProgressRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// GetByUser returns the positive counters of a user keyed by prize code
func (r *TicketProgressRepository) GetByUser(ctx context.Context, userID int64) (entity.ProgressMap, error) {
	var rows []model.TicketProgress
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND accrued > 0", userID).
		Find(&rows).Error
	if err != nil {
		return nil, r.errorClassifier.Map(err, errs.ErrUserNotFound, "get ticket progress")
	}

	out := make(entity.ProgressMap, len(rows))
	for _, row := range rows {
		out[row.PrizeCode] = row.Accrued
	}
	return out, nil
}

// Add moves one counter by delta, creating it on first use
func (r *TicketProgressRepository) Add(ctx context.Context, userID int64, prizeCode string, delta int64) error {
	row := model.TicketProgress{UserID: userID, PrizeCode: prizeCode, Accrued: delta}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "prize_code"}},
			DoUpdates: clause.Assignments(map[string]any{
				"accrued": gorm.Expr("ticket_progress.accrued + EXCLUDED.accrued"),
			}),
		}).
		Create(&row).Error
	return r.errorClassifier.Map(err, errs.ErrUserNotFound, "add ticket progress")
}

// reconcileSQL rebuilds every counter from the unsold part of the ledger's
// ticket lots and reports how many counters changed
const reconcileSQL = `
WITH expected AS (
	SELECT user_id,
	       meta->>'prize_code' AS prize_code,
	       SUM((meta->>'hidden_tickets_added')::bigint - COALESCE((meta->>'hidden_tickets_sold')::bigint, 0)) AS accrued
	FROM transactions
	WHERE type = 'win' AND meta->>'hidden_tickets_added' IS NOT NULL AND meta->>'ticket_sell_tx_id' IS NULL
	GROUP BY user_id, meta->>'prize_code'
),
drift AS (
	SELECT COALESCE(e.user_id, p.user_id) AS user_id,
	       COALESCE(e.prize_code, p.prize_code) AS prize_code,
	       COALESCE(e.accrued, 0) AS accrued
	FROM expected e
	FULL OUTER JOIN ticket_progress p
	  ON p.user_id = e.user_id AND p.prize_code = e.prize_code
	WHERE COALESCE(e.accrued, 0) IS DISTINCT FROM COALESCE(p.accrued, 0)
)
INSERT INTO ticket_progress (user_id, prize_code, accrued)
SELECT user_id, prize_code, accrued FROM drift
ON CONFLICT (user_id, prize_code) DO UPDATE SET accrued = EXCLUDED.accrued`

// Reconcile repairs drift between the counters and the ledger
func (r *TicketProgressRepository) Reconcile(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).Exec(reconcileSQL)
	if result.Error != nil {
		return 0, r.errorClassifier.Map(result.Error, errs.ErrUserNotFound, "reconcile ticket progress")
	}
	return result.RowsAffected, nil
}
