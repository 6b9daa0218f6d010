package repository

import (
	"context"
	"fmt"

	"github.com/amirhossein-jamali/stars-roulette/internal/domain/entity"
	errs "github.com/amirhossein-jamali/stars-roulette/internal/domain/error"
	coreport "github.com/amirhossein-jamali/stars-roulette/internal/domain/port/core"
	"github.com/amirhossein-jamali/stars-roulette/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UserRepository implements persistence.UserRepository using GORM
type UserRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewUserRepository creates a new UserRepository instance
func NewUserRepository(db *gorm.DB, logger coreport.Logger) *UserRepository {
	return &UserRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func userToEntity(m *model.User) *entity.User {
	return entity.RestoreUser(m.ID, m.Balance, m.TicketsSneakers, m.TicketsBracelet, m.ReferrerID, m.CreatedAt, m.UpdatedAt)
}

// GetByID retrieves a user without locking it
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	var m model.User
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, r.errorClassifier.Map(err, errs.ErrUserNotFound, "get user")
	}
	return userToEntity(&m), nil
}

// GetForUpdate reads a user with SELECT ... FOR UPDATE. Only meaningful
// inside a unit of work.
func (r *UserRepository) GetForUpdate(ctx context.Context, id int64) (*entity.User, error) {
	var m model.User
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}).
		First(&m, id).Error
	if err != nil {
		return nil, r.errorClassifier.Map(err, errs.ErrUserNotFound, "lock user")
	}
	return userToEntity(&m), nil
}

// EnsureExists inserts the user unless a row with its id is present.
// It reports whether a row was created.
func (r *UserRepository) EnsureExists(ctx context.Context, user *entity.User) (bool, error) {
	m := model.User{
		ID:              user.ID,
		Balance:         user.Balance(),
		TicketsSneakers: user.TicketsSneakers(),
		TicketsBracelet: user.TicketsBracelet(),
		ReferrerID:      user.ReferrerID,
		CreatedAt:       user.CreatedAt,
		UpdatedAt:       user.UpdatedAt,
	}
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "id"}}, DoNothing: true}).
		Create(&m)
	if result.Error != nil {
		return false, r.errorClassifier.Map(result.Error, errs.ErrUserNotFound, "ensure user")
	}
	return result.RowsAffected > 0, nil
}

// Update writes the counters and referrer of a user
func (r *UserRepository) Update(ctx context.Context, user *entity.User) error {
	result := r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", user.ID).
		Updates(map[string]any{
			"balance":          user.Balance(),
			"tickets_sneakers": user.TicketsSneakers(),
			"tickets_bracelet": user.TicketsBracelet(),
			"referrer_id":      user.ReferrerID,
			"updated_at":       user.UpdatedAt,
		})
	if result.Error != nil {
		if r.errorClassifier.IsConstraintError(result.Error) {
			return fmt.Errorf("%w: %s", errs.ErrNegativeBalance, result.Error.Error())
		}
		return r.errorClassifier.Map(result.Error, errs.ErrUserNotFound, "update user")
	}
	if result.RowsAffected == 0 {
		r.logger.Warn("User not found during update", map[string]any{"user_id": user.ID})
		return errs.ErrUserNotFound
	}
	return nil
}

type referralSummaryRow struct {
	ReferrerID   int64
	InvitedCount int64
	TotalDeposit int64
	TotalBonus   int64
}

// ReferralSummary aggregates invitees per referrer. Deposits are summed from
// the ledger, bonuses from the referrer's own referral rows.
func (r *UserRepository) ReferralSummary(ctx context.Context, filter entity.ReferralFilter) ([]entity.ReferralSummaryRow, error) {
	q := r.db.WithContext(ctx).
		Table("users AS u").
		Select(`u.referrer_id AS referrer_id,
			COUNT(*) AS invited_count,
			COALESCE(SUM(d.deposit_sum), 0) AS total_deposit,
			COALESCE(MAX(b.bonus_sum), 0) AS total_bonus`).
		Joins(`LEFT JOIN (
			SELECT user_id, SUM(amount) AS deposit_sum FROM transactions
			WHERE type = 'deposit' GROUP BY user_id
		) d ON d.user_id = u.id`).
		Joins(`LEFT JOIN (
			SELECT user_id, SUM(amount) AS bonus_sum FROM transactions
			WHERE type = 'referral' AND meta->>'kind' IN (?, ?) GROUP BY user_id
		) b ON b.user_id = u.referrer_id`,
			string(entity.MetaReferralDepositBonus), string(entity.MetaReferralSignupReferrer)).
		Where("u.referrer_id IS NOT NULL")

	if filter.Query != nil {
		q = q.Where("(u.referrer_id = ? OR u.id = ?)", *filter.Query, *filter.Query)
	}
	if filter.From != nil {
		q = q.Where("u.created_at >= ?", *filter.From)
	}
	if filter.To != nil {
		q = q.Where("u.created_at <= ?", *filter.To)
	}

	var rows []referralSummaryRow
	err := q.Group("u.referrer_id").
		Order("invited_count DESC, referrer_id ASC").
		Limit(filter.Limit).
		Scan(&rows).Error
	if err != nil {
		return nil, r.errorClassifier.Map(err, errs.ErrUserNotFound, "referral summary")
	}

	out := make([]entity.ReferralSummaryRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, entity.ReferralSummaryRow(row))
	}
	return out, nil
}

// ReferralDetails lists the invitees of one referrer, newest first
func (r *UserRepository) ReferralDetails(ctx context.Context, referrerID int64, filter entity.ReferralFilter) ([]entity.ReferralDetailRow, error) {
	q := r.db.WithContext(ctx).
		Table("users AS u").
		Select(`u.id AS user_id, u.created_at AS created_at,
			COALESCE((SELECT SUM(t.amount) FROM transactions t
				WHERE t.user_id = u.id AND t.type = 'deposit'), 0) AS deposit_sum`).
		Where("u.referrer_id = ?", referrerID)
	if filter.From != nil {
		q = q.Where("u.created_at >= ?", *filter.From)
	}
	if filter.To != nil {
		q = q.Where("u.created_at <= ?", *filter.To)
	}

	var rows []entity.ReferralDetailRow
	if err := q.Order("u.created_at DESC, u.id DESC").Limit(filter.Limit).Scan(&rows).Error; err != nil {
		return nil, r.errorClassifier.Map(err, errs.ErrUserNotFound, "referral details")
	}
	return rows, nil
}
