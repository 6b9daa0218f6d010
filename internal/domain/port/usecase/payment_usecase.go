package usecase

import (
	"context"

	"github.com/amirhossein-jamali/stars-roulette/internal/domain/entity"
)

// PaymentUseCase handles settlement events of the external payment provider
type PaymentUseCase interface {
	// ConfirmPayment credits a settled payment at most once per charge id
	ConfirmPayment(ctx context.Context, userID int64, chargeID string, totalAmount int64) (*entity.PaymentResult, error)
}

// ReferralUseCase handles referral acquisition and reporting
type ReferralUseCase interface {
	// BindReferral binds the referrer of a user once
	BindReferral(ctx context.Context, userID int64, referrerID int64) (*entity.BindResult, error)

	// Summary aggregates invitees, deposits and bonuses per referrer
	Summary(ctx context.Context, filter entity.ReferralFilter) ([]entity.ReferralSummaryRow, error)

	// Details lists the invitees of one referrer
	Details(ctx context.Context, referrerID int64, filter entity.ReferralFilter) ([]entity.ReferralDetailRow, error)
}
