package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/amirhossein-jamali/stars-roulette/internal/domain/entity"
	errs "github.com/amirhossein-jamali/stars-roulette/internal/domain/error"
	coreport "github.com/amirhossein-jamali/stars-roulette/internal/domain/port/core"
	"github.com/amirhossein-jamali/stars-roulette/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CaseRepository implements persistence.CaseRepository using GORM. Prize
// tables are stored as JSON so that fields unknown to this version survive
// a round trip through the admin editor.
type CaseRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewCaseRepository creates a new CaseRepository instance
func NewCaseRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *CaseRepository {
	return &CaseRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func caseToRaw(m *model.CaseConfig) (entity.RawCase, error) {
	raw := entity.RawCase{
		ID:       m.ID,
		Title:    m.Title,
		SpinCost: m.SpinCost,
		Slots:    m.Slots,
		Enabled:  m.IsEnabled,
	}
	if len(m.Prizes) > 0 {
		if err := json.Unmarshal(m.Prizes, &raw.Prizes); err != nil {
			return raw, fmt.Errorf("%w: case %s prizes: %s", errs.ErrInvalidCase, m.ID, err.Error())
		}
	}
	return raw, nil
}

func (r *CaseRepository) rawToModel(c entity.RawCase) (model.CaseConfig, error) {
	prizes := c.Prizes
	if prizes == nil {
		prizes = []entity.RawPrize{}
	}
	data, err := json.Marshal(prizes)
	if err != nil {
		return model.CaseConfig{}, fmt.Errorf("%w: case %s prizes: %s", errs.ErrInvalidCase, c.ID, err.Error())
	}
	enabled := true
	if c.Enabled != nil {
		enabled = *c.Enabled
	}
	return model.CaseConfig{
		ID:        c.ID,
		Title:     c.Title,
		SpinCost:  c.SpinCost,
		Slots:     c.Slots,
		Prizes:    data,
		IsEnabled: &enabled,
		UpdatedAt: r.timeProvider.Now(),
	}, nil
}

// List returns every stored case ordered by id. A row whose prize document
// cannot be parsed is skipped and logged.
func (r *CaseRepository) List(ctx context.Context) ([]entity.RawCase, error) {
	var rows []model.CaseConfig
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, r.errorClassifier.Map(err, errs.ErrUnknownCase, "list cases")
	}

	out := make([]entity.RawCase, 0, len(rows))
	for i := range rows {
		raw, err := caseToRaw(&rows[i])
		if err != nil {
			r.logger.Warn("Skipping stored case", map[string]any{"case_id": rows[i].ID, "error": err.Error()})
			continue
		}
		out = append(out, raw)
	}
	return out, nil
}

// Get returns one case by id
func (r *CaseRepository) Get(ctx context.Context, id string) (*entity.RawCase, error) {
	var m model.CaseConfig
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, r.errorClassifier.Map(err, errs.ErrUnknownCase, "get case")
	}
	raw, err := caseToRaw(&m)
	if err != nil {
		return nil, err
	}
	return &raw, nil
}

// Save upserts one case
func (r *CaseRepository) Save(ctx context.Context, c entity.RawCase) error {
	m, err := r.rawToModel(c)
	if err != nil {
		return err
	}
	err = r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"title", "spin_cost", "slots", "prizes", "is_enabled", "updated_at"}),
		}).
		Create(&m).Error
	return r.errorClassifier.Map(err, errs.ErrUnknownCase, "save case")
}

// ReplaceAll swaps the whole case set. Run it inside a unit of work.
func (r *CaseRepository) ReplaceAll(ctx context.Context, cases []entity.RawCase) error {
	db := r.db.WithContext(ctx)
	if err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&model.CaseConfig{}).Error; err != nil {
		return r.errorClassifier.Map(err, errs.ErrUnknownCase, "clear cases")
	}
	if len(cases) == 0 {
		return nil
	}

	rows := make([]model.CaseConfig, 0, len(cases))
	for _, c := range cases {
		m, err := r.rawToModel(c)
		if err != nil {
			return err
		}
		rows = append(rows, m)
	}
	if err := db.Create(&rows).Error; err != nil {
		return r.errorClassifier.Map(err, errs.ErrUnknownCase, "insert cases")
	}
	return nil
}

// SeedIfEmpty stores cases only when the table has no rows. Concurrent
// seeders are harmless: conflicting ids are skipped.
func (r *CaseRepository) SeedIfEmpty(ctx context.Context, cases []entity.RawCase) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.CaseConfig{}).Count(&count).Error; err != nil {
		return false, r.errorClassifier.Map(err, errs.ErrUnknownCase, "count cases")
	}
	if count > 0 || len(cases) == 0 {
		return false, nil
	}

	rows := make([]model.CaseConfig, 0, len(cases))
	for _, c := range cases {
		m, err := r.rawToModel(c)
		if err != nil {
			return false, err
		}
		rows = append(rows, m)
	}
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&rows)
	if result.Error != nil {
		return false, r.errorClassifier.Map(result.Error, errs.ErrUnknownCase, "seed cases")
	}
	r.logger.Info("Seeded default cases", map[string]any{"count": result.RowsAffected})
	return result.RowsAffected > 0, nil
}
