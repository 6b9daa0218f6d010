package dto

import "github.com/amirhossein-jamali/stars-roulette/internal/domain/entity"

// PaymentConfirmQuery is the settlement notice sent by the bot
type PaymentConfirmQuery struct {
	UserID      int64  `form:"user_id" binding:"required,gt=0"`
	ChargeID    string `form:"telegram_payment_charge_id" binding:"required,min=1,max=128"`
	TotalAmount int64  `form:"total_amount" binding:"required,gt=0"`
}

// PaymentConfirmResponse tells whether the charge was credited now or before
type PaymentConfirmResponse struct {
	OK            bool  `json:"ok"`
	Already       bool  `json:"already"`
	Credited      int64 `json:"credited"`
	ReferrerBonus int64 `json:"referrer_bonus,omitempty"`
	Balance       int64 `json:"balance,omitempty"`
}

// NewPaymentConfirmResponse maps a payment result
func NewPaymentConfirmResponse(r *entity.PaymentResult) PaymentConfirmResponse {
	return PaymentConfirmResponse{
		OK:            true,
		Already:       r.Outcome == entity.PaymentAlreadyProcessed,
		Credited:      r.Credited,
		ReferrerBonus: r.ReferrerBonus,
		Balance:       r.Balance,
	}
}

// ReferralBindQuery binds the referrer parsed from a /start deep link
type ReferralBindQuery struct {
	UserID     int64 `form:"user_id" binding:"required,gt=0"`
	ReferrerID int64 `form:"referrer_id" binding:"required,gt=0"`
}

// ReferralBindResponse reports whether a binding happened
type ReferralBindResponse struct {
	OK     bool  `json:"ok"`
	Bound  bool  `json:"bound"`
	UserID int64 `json:"user_id"`
}
