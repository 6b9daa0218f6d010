package entity

import (
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/stars-roulette/internal/domain/error"
	coreport "github.com/amirhossein-jamali/stars-roulette/internal/domain/port/core"
)

// MaxChargeIDLength bounds the external charge identifier
const MaxChargeIDLength = 128

// Payment is one externally settled Stars payment, unique by charge id
type Payment struct {
	ID                      int64
	UserID                  int64
	TelegramPaymentChargeID string
	TotalAmount             int64
	CreatedAt               time.Time
}

// NewPayment validates and creates a payment record
func NewPayment(userID int64, chargeID string, totalAmount int64, timeProvider coreport.TimeProvider) (*Payment, error) {
	if userID <= 0 {
		return nil, errs.ErrInvalidUserID
	}
	if err := ValidateChargeID(chargeID); err != nil {
		return nil, err
	}
	if totalAmount <= 0 {
		return nil, errs.ErrInvalidAmount
	}

	return &Payment{
		UserID:                  userID,
		TelegramPaymentChargeID: strings.TrimSpace(chargeID),
		TotalAmount:             totalAmount,
		CreatedAt:               timeProvider.Now(),
	}, nil
}

// ValidateChargeID checks an external charge identifier
func ValidateChargeID(chargeID string) error {
	id := strings.TrimSpace(chargeID)
	if id == "" || len(id) > MaxChargeIDLength {
		return errs.ErrInvalidChargeID
	}
	return nil
}
