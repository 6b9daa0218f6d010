package model

import (
	"time"
)

// Payment is one settled Stars payment. The unique charge id is the
// idempotency barrier of payment confirmation.
type Payment struct {
	ID                      int64     `gorm:"primaryKey;autoIncrement"`
	UserID                  int64     `gorm:"not null;index"`
	TelegramPaymentChargeID string    `gorm:"not null;size:128;uniqueIndex:uq_payments_charge_id"`
	TotalAmount             int64     `gorm:"not null"`
	CreatedAt               time.Time `gorm:"not null"`
}

// TableName specifies the table name for Payment
func (Payment) TableName() string {
	return "payments"
}
