package handler

import (
	"net/http"

	coreport "github.com/amirhossein-jamali/stars-roulette/internal/domain/port/core"
	"github.com/amirhossein-jamali/stars-roulette/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/stars-roulette/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// InternalHandler serves the callbacks of an external bot process. The
// in-process bot calls the use cases directly.
type InternalHandler struct {
	payments  usecase.PaymentUseCase
	referrals usecase.ReferralUseCase
	logger    coreport.Logger
}

// NewInternalHandler creates a new internal handler instance
func NewInternalHandler(
	payments usecase.PaymentUseCase,
	referrals usecase.ReferralUseCase,
	logger coreport.Logger,
) *InternalHandler {
	return &InternalHandler{payments: payments, referrals: referrals, logger: logger}
}

// ConfirmPayment handles POST /api/internal/payment/confirm. Redelivery of
// a known charge id answers ok with already set.
func (h *InternalHandler) ConfirmPayment(c *gin.Context) {
	var q dto.PaymentConfirmQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		_ = c.Error(invalidRequest(err))
		return
	}

	result, err := h.payments.ConfirmPayment(c.Request.Context(), q.UserID, q.ChargeID, q.TotalAmount)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.NewPaymentConfirmResponse(result))
}

// BindReferral handles POST /api/internal/referral/bind
func (h *InternalHandler) BindReferral(c *gin.Context) {
	var q dto.ReferralBindQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		_ = c.Error(invalidRequest(err))
		return
	}

	result, err := h.referrals.BindReferral(c.Request.Context(), q.UserID, q.ReferrerID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.ReferralBindResponse{OK: true, Bound: result.Bound, UserID: q.UserID})
}
