package persistence

import (
	"context"

	"github.com/amirhossein-jamali/stars-roulette/internal/domain/entity"
)

// PaymentRepository stores settled payments, unique by external charge id
type PaymentRepository interface {
	// ExistsByChargeID checks whether a charge id was already recorded
	ExistsByChargeID(ctx context.Context, chargeID string) (bool, error)

	// Create inserts a payment. The storage enforces charge id uniqueness.
	//
	// Possible errors:
	// - ErrDuplicatePayment: If the charge id was already recorded
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, payment *entity.Payment) error
}
