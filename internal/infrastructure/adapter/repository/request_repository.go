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

// WithdrawRequestRepository implements persistence.WithdrawRequestRepository
type WithdrawRequestRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewWithdrawRequestRepository creates a new WithdrawRequestRepository instance
func NewWithdrawRequestRepository(db *gorm.DB, logger coreport.Logger) *WithdrawRequestRepository {
	return &WithdrawRequestRepository{db: db, logger: logger, errorClassifier: NewErrorClassifier()}
}

func withdrawToEntity(m *model.WithdrawRequest) *entity.WithdrawRequest {
	return &entity.WithdrawRequest{
		ID:        m.ID,
		UserID:    m.UserID,
		Amount:    m.Amount,
		Status:    entity.RequestStatus(m.Status),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func (r *WithdrawRequestRepository) Create(ctx context.Context, req *entity.WithdrawRequest) error {
	m := model.WithdrawRequest{
		UserID:    req.UserID,
		Amount:    req.Amount,
		Status:    string(req.Status),
		CreatedAt: req.CreatedAt,
		UpdatedAt: req.UpdatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return r.errorClassifier.Map(err, errs.ErrRequestNotFound, "create withdraw request")
	}
	req.ID = m.ID
	return nil
}

func (r *WithdrawRequestRepository) GetForUpdate(ctx context.Context, id int64) (*entity.WithdrawRequest, error) {
	var m model.WithdrawRequest
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}).
		First(&m, id).Error
	if err != nil {
		return nil, r.errorClassifier.Map(err, errs.ErrRequestNotFound, "lock withdraw request")
	}
	return withdrawToEntity(&m), nil
}

func (r *WithdrawRequestRepository) Update(ctx context.Context, req *entity.WithdrawRequest) error {
	result := r.db.WithContext(ctx).Model(&model.WithdrawRequest{}).
		Where("id = ?", req.ID).
		Updates(map[string]any{"status": string(req.Status), "updated_at": req.UpdatedAt})
	if result.Error != nil {
		return r.errorClassifier.Map(result.Error, errs.ErrRequestNotFound, "update withdraw request")
	}
	if result.RowsAffected == 0 {
		return errs.ErrRequestNotFound
	}
	return nil
}

// ListRecent returns the newest requests first
func (r *WithdrawRequestRepository) ListRecent(ctx context.Context, limit int) ([]*entity.WithdrawRequest, error) {
	var rows []model.WithdrawRequest
	if err := r.db.WithContext(ctx).Order("id DESC").Limit(limit).Find(&rows).Error; err != nil {
		return nil, r.errorClassifier.Map(err, errs.ErrRequestNotFound, "list withdraw requests")
	}
	out := make([]*entity.WithdrawRequest, 0, len(rows))
	for i := range rows {
		out = append(out, withdrawToEntity(&rows[i]))
	}
	return out, nil
}

// PendingTotals counts pending requests and sums their amounts
func (r *WithdrawRequestRepository) PendingTotals(ctx context.Context) (int64, int64, error) {
	var totals struct {
		Count  int64
		Amount int64
	}
	err := r.db.WithContext(ctx).Model(&model.WithdrawRequest{}).
		Select("COUNT(*) AS count, COALESCE(SUM(amount), 0) AS amount").
		Where("status = ?", string(entity.StatusPending)).
		Scan(&totals).Error
	if err != nil {
		return 0, 0, r.errorClassifier.Map(err, errs.ErrRequestNotFound, "pending withdraw totals")
	}
	return totals.Count, totals.Amount, nil
}

// PrizeRequestRepository implements persistence.PrizeRequestRepository
type PrizeRequestRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewPrizeRequestRepository creates a new PrizeRequestRepository instance
func NewPrizeRequestRepository(db *gorm.DB, logger coreport.Logger) *PrizeRequestRepository {
	return &PrizeRequestRepository{db: db, logger: logger, errorClassifier: NewErrorClassifier()}
}

func prizeRequestToEntity(m *model.PrizeRequest) *entity.PrizeRequest {
	return &entity.PrizeRequest{
		ID:        m.ID,
		UserID:    m.UserID,
		PrizeType: entity.TicketKind(m.PrizeType),
		Status:    entity.RequestStatus(m.Status),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func (r *PrizeRequestRepository) Create(ctx context.Context, req *entity.PrizeRequest) error {
	m := model.PrizeRequest{
		UserID:    req.UserID,
		PrizeType: string(req.PrizeType),
		Status:    string(req.Status),
		CreatedAt: req.CreatedAt,
		UpdatedAt: req.UpdatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return r.errorClassifier.Map(err, errs.ErrRequestNotFound, "create prize request")
	}
	req.ID = m.ID
	return nil
}

func (r *PrizeRequestRepository) GetForUpdate(ctx context.Context, id int64) (*entity.PrizeRequest, error) {
	var m model.PrizeRequest
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}).
		First(&m, id).Error
	if err != nil {
		return nil, r.errorClassifier.Map(err, errs.ErrRequestNotFound, "lock prize request")
	}
	return prizeRequestToEntity(&m), nil
}

func (r *PrizeRequestRepository) Update(ctx context.Context, req *entity.PrizeRequest) error {
	result := r.db.WithContext(ctx).Model(&model.PrizeRequest{}).
		Where("id = ?", req.ID).
		Updates(map[string]any{"status": string(req.Status), "updated_at": req.UpdatedAt})
	if result.Error != nil {
		return r.errorClassifier.Map(result.Error, errs.ErrRequestNotFound, "update prize request")
	}
	if result.RowsAffected == 0 {
		return errs.ErrRequestNotFound
	}
	return nil
}

func (r *PrizeRequestRepository) ListRecent(ctx context.Context, limit int) ([]*entity.PrizeRequest, error) {
	var rows []model.PrizeRequest
	if err := r.db.WithContext(ctx).Order("id DESC").Limit(limit).Find(&rows).Error; err != nil {
		return nil, r.errorClassifier.Map(err, errs.ErrRequestNotFound, "list prize requests")
	}
	out := make([]*entity.PrizeRequest, 0, len(rows))
	for i := range rows {
		out = append(out, prizeRequestToEntity(&rows[i]))
	}
	return out, nil
}

func (r *PrizeRequestRepository) CountByStatus(ctx context.Context, status entity.RequestStatus) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.PrizeRequest{}).
		Where("status = ?", string(status)).
		Count(&n).Error
	if err != nil {
		return 0, r.errorClassifier.Map(err, errs.ErrRequestNotFound, "count prize requests")
	}
	return n, nil
}
