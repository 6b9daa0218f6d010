package repository

import (
	"context"

	"github.com/amirhossein-jamali/stars-roulette/internal/domain/entity"
	errs "github.com/amirhossein-jamali/stars-roulette/internal/domain/error"
	coreport "github.com/amirhossein-jamali/stars-roulette/internal/domain/port/core"
	"github.com/amirhossein-jamali/stars-roulette/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// PaymentRepository implements persistence.PaymentRepository using GORM
type PaymentRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewPaymentRepository creates a new PaymentRepository instance
func NewPaymentRepository(db *gorm.DB, logger coreport.Logger) *PaymentRepository {
	return &PaymentRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// ExistsByChargeID checks whether a charge id was already recorded
func (r *PaymentRepository) ExistsByChargeID(ctx context.Context, chargeID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Payment{}).
		Where("telegram_payment_charge_id = ?", chargeID).
		Limit(1).
		Count(&count).Error
	if err != nil {
		return false, r.errorClassifier.Map(err, errs.ErrTransactionNotFound, "check payment")
	}
	return count > 0, nil
}

// Create inserts a payment. A concurrent insert of the same charge id loses
// on the unique index and gets ErrDuplicatePayment.
func (r *PaymentRepository) Create(ctx context.Context, p *entity.Payment) error {
	m := model.Payment{
		UserID:                  p.UserID,
		TelegramPaymentChargeID: p.TelegramPaymentChargeID,
		TotalAmount:             p.TotalAmount,
		CreatedAt:               p.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		if r.errorClassifier.IsDuplicateKeyError(err) {
			r.logger.Info("Duplicate payment charge id", map[string]any{
				"charge_id": p.TelegramPaymentChargeID,
				"user_id":   p.UserID,
			})
			return errs.ErrDuplicatePayment
		}
		return r.errorClassifier.Map(err, errs.ErrTransactionNotFound, "create payment")
	}
	p.ID = m.ID
	return nil
}
