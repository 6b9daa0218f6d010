package handler

import (
	"net/http"

	domainerr "github.com/amirhossein-jamali/stars-roulette/internal/domain/error"
	coreport "github.com/amirhossein-jamali/stars-roulette/internal/domain/port/core"
	"github.com/amirhossein-jamali/stars-roulette/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/stars-roulette/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/stars-roulette/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// AdminHandler serves the back-office endpoints
type AdminHandler struct {
	admin     usecase.AdminUseCase
	referrals usecase.ReferralUseCase
	logger    coreport.Logger
}

// NewAdminHandler creates a new admin handler instance
func NewAdminHandler(admin usecase.AdminUseCase, referrals usecase.ReferralUseCase, logger coreport.Logger) *AdminHandler {
	return &AdminHandler{admin: admin, referrals: referrals, logger: logger}
}

// GetCases handles GET /api/admin/cases
func (h *AdminHandler) GetCases(c *gin.Context) {
	cases, err := h.admin.GetCases(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.NewCasesResponse(cases))
}

// PutCases handles PUT /api/admin/cases
func (h *AdminHandler) PutCases(c *gin.Context) {
	var req dto.PutCasesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(domainerr.ErrInvalidCase)
		return
	}

	cases, err := h.admin.PutCases(c.Request.Context(), req.Items)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.NewCasesResponse(cases))
}

// GetPrizeWeights handles GET /api/admin/prizes?case_id=
func (h *AdminHandler) GetPrizeWeights(c *gin.Context) {
	cfg, err := h.admin.GetPrizeWeights(c.Request.Context(), c.Query("case_id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.NewPrizeWeightsResponse(cfg))
}

// PutPrizeWeights handles PUT /api/admin/prizes
func (h *AdminHandler) PutPrizeWeights(c *gin.Context) {
	var req dto.PutPrizeWeightsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(invalidRequest(err))
		return
	}
	if req.CaseID == "" {
		req.CaseID = c.Query("case_id")
	}

	cfg, err := h.admin.PutPrizeWeights(c.Request.Context(), req.CaseID, req.Weights())
	if err != nil {
		_ = c.Error(err)
		return
	}

	adminID, _ := middleware.UserID(c)
	h.logger.Info("Prize weights updated", map[string]any{
		"admin_id": adminID,
		"case_id":  cfg.ID,
		"items":    len(req.Items),
	})
	c.JSON(http.StatusOK, dto.NewPrizeWeightsResponse(cfg))
}

// ListWithdraws handles GET /api/admin/withdraws
func (h *AdminHandler) ListWithdraws(c *gin.Context) {
	rows, err := h.admin.ListWithdrawRequests(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}

	items := make([]dto.WithdrawItem, 0, len(rows))
	for _, r := range rows {
		items = append(items, dto.NewWithdrawItem(r))
	}
	c.JSON(http.StatusOK, dto.WithdrawListResponse{Items: items})
}

// SetWithdrawStatus handles POST /api/admin/withdraws/:id/status
func (h *AdminHandler) SetWithdrawStatus(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		_ = c.Error(err)
		return
	}
	var req dto.StatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(domainerr.ErrInvalidStatus)
		return
	}

	updated, err := h.admin.SetWithdrawStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.NewWithdrawItem(updated))
}

// ListPrizeRequests handles GET /api/admin/prize_requests
func (h *AdminHandler) ListPrizeRequests(c *gin.Context) {
	rows, err := h.admin.ListPrizeRequests(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}

	items := make([]dto.PrizeRequestItem, 0, len(rows))
	for _, r := range rows {
		items = append(items, dto.NewPrizeRequestItem(r))
	}
	c.JSON(http.StatusOK, dto.PrizeRequestListResponse{Items: items})
}

// SetPrizeRequestStatus handles POST /api/admin/prize_requests/:id/status
func (h *AdminHandler) SetPrizeRequestStatus(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		_ = c.Error(err)
		return
	}
	var req dto.StatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(domainerr.ErrInvalidStatus)
		return
	}

	updated, err := h.admin.SetPrizeRequestStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.NewPrizeRequestItem(updated))
}

// Adjust handles POST /api/admin/adjust
func (h *AdminHandler) Adjust(c *gin.Context) {
	var req dto.AdjustRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(invalidRequest(err))
		return
	}
	adminID, _ := middleware.UserID(c)

	user, err := h.admin.Adjust(c.Request.Context(), usecase.AdjustRequest{
		AdminID:       adminID,
		UserID:        req.UserID,
		BalanceDelta:  req.BalanceDelta,
		SneakersDelta: req.TicketsSneakersDelta,
		BraceletDelta: req.TicketsBraceletDelta,
		Note:          req.Note,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.NewAdjustResponse(user))
}

// ReferralSummary handles GET /api/admin/referrals/summary
func (h *AdminHandler) ReferralSummary(c *gin.Context) {
	rows, err := h.referrals.Summary(c.Request.Context(), parseReferralFilter(c))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.NewReferralSummaryResponse(rows))
}

// ReferralDetails handles GET /api/admin/referrals/details?referrer_id=
func (h *AdminHandler) ReferralDetails(c *gin.Context) {
	var q struct {
		ReferrerID int64 `form:"referrer_id" binding:"required,gt=0"`
	}
	if err := c.ShouldBindQuery(&q); err != nil {
		_ = c.Error(invalidRequest(err))
		return
	}

	rows, err := h.referrals.Details(c.Request.Context(), q.ReferrerID, parseReferralFilter(c))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.NewReferralDetailsResponse(rows))
}
