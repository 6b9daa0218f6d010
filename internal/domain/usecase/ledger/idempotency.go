package ledger

import (
	"context"
	"fmt"

	"github.com/amirhossein-jamali/stars-roulette/internal/domain/port/persistence"
)

// IdempotencyHandler answers whether an external event was already applied
type IdempotencyHandler struct {
	payments persistence.PaymentRepository
}

// NewIdempotencyHandler creates a new IdempotencyHandler
func NewIdempotencyHandler(payments persistence.PaymentRepository) *IdempotencyHandler {
	return &IdempotencyHandler{payments: payments}
}

// AlreadyProcessed checks whether a payment with the charge id was recorded.
// Callers check before any mutation; the unique constraint on the charge id
// settles races between concurrent deliveries.
func (h *IdempotencyHandler) AlreadyProcessed(ctx context.Context, chargeID string) (bool, error) {
	exists, err := h.payments.ExistsByChargeID(ctx, chargeID)
	if err != nil {
		return false, fmt.Errorf("failed to check payment charge id: %w", err)
	}
	return exists, nil
}
