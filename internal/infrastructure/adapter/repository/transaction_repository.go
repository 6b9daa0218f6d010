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

// TransactionRepository implements persistence.TransactionRepository using GORM
type TransactionRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewTransactionRepository creates a new TransactionRepository instance
func NewTransactionRepository(db *gorm.DB, logger coreport.Logger) *TransactionRepository {
	return &TransactionRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func (r *TransactionRepository) modelToEntity(m *model.Transaction) (*entity.Transaction, error) {
	txType := entity.TransactionType(m.Type)
	meta, err := entity.DecodeMeta(txType, m.Meta)
	if err != nil {
		r.logger.Error("Undecodable transaction meta", map[string]any{
			"transaction_id": m.ID,
			"error":          err.Error(),
		})
		return nil, fmt.Errorf("%w: transaction %d: %s", errs.ErrInternalServer, m.ID, err.Error())
	}
	return &entity.Transaction{
		ID:          m.ID,
		UserID:      m.UserID,
		Type:        txType,
		Amount:      m.Amount,
		Description: m.Description,
		Meta:        meta,
		CreatedAt:   m.CreatedAt,
	}, nil
}

// Create appends a ledger row and assigns its id
func (r *TransactionRepository) Create(ctx context.Context, t *entity.Transaction) error {
	meta, err := entity.EncodeMeta(t.Meta)
	if err != nil {
		return fmt.Errorf("%w: %s", errs.ErrInternalServer, err.Error())
	}

	m := model.Transaction{
		UserID:      t.UserID,
		Type:        string(t.Type),
		Amount:      t.Amount,
		Description: t.Description,
		Meta:        meta,
		CreatedAt:   t.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Omit("User").Create(&m).Error; err != nil {
		return r.errorClassifier.Map(err, errs.ErrTransactionNotFound, "create transaction")
	}
	t.ID = m.ID

	r.logger.Debug("Ledger row written", map[string]any{
		"transaction_id": m.ID,
		"user_id":        t.UserID,
		"type":           m.Type,
		"amount":         m.Amount,
	})
	return nil
}

// GetByIDForUpdate loads and row-locks one ledger row
func (r *TransactionRepository) GetByIDForUpdate(ctx context.Context, id int64) (*entity.Transaction, error) {
	var m model.Transaction
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}).
		First(&m, id).Error
	if err != nil {
		return nil, r.errorClassifier.Map(err, errs.ErrTransactionNotFound, "lock transaction")
	}
	return r.modelToEntity(&m)
}

// UpdateMeta rewrites only the meta document of a row; the other columns
// are immutable
func (r *TransactionRepository) UpdateMeta(ctx context.Context, t *entity.Transaction) error {
	meta, err := entity.EncodeMeta(t.Meta)
	if err != nil {
		return fmt.Errorf("%w: %s", errs.ErrInternalServer, err.Error())
	}
	result := r.db.WithContext(ctx).Model(&model.Transaction{}).
		Where("id = ?", t.ID).
		Update("meta", meta)
	if result.Error != nil {
		return r.errorClassifier.Map(result.Error, errs.ErrTransactionNotFound, "update transaction meta")
	}
	if result.RowsAffected == 0 {
		return errs.ErrTransactionNotFound
	}
	return nil
}

// ListByUser returns the newest rows of a user
func (r *TransactionRepository) ListByUser(ctx context.Context, userID int64, limit int) ([]*entity.Transaction, error) {
	var rows []model.Transaction
	q := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("id DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&rows).Error; err != nil {
		return nil, r.errorClassifier.Map(err, errs.ErrTransactionNotFound, "list transactions")
	}

	out := make([]*entity.Transaction, 0, len(rows))
	for i := range rows {
		t, err := r.modelToEntity(&rows[i])
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}
