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

// RouletteHandler serves the case list, spins and lot resales
type RouletteHandler struct {
	roulette usecase.RouletteUseCase
	logger   coreport.Logger
}

// NewRouletteHandler creates a new roulette handler instance
func NewRouletteHandler(roulette usecase.RouletteUseCase, logger coreport.Logger) *RouletteHandler {
	return &RouletteHandler{roulette: roulette, logger: logger}
}

// ListCases handles GET /api/cases
func (h *RouletteHandler) ListCases(c *gin.Context) {
	cases, err := h.roulette.ListCases(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.NewCasesResponse(cases))
}

// Spin handles POST /api/spin. An empty body spins the default case.
func (h *RouletteHandler) Spin(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		_ = c.Error(domainerr.ErrUnauthorized)
		return
	}

	var req dto.SpinRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			_ = c.Error(invalidRequest(err))
			return
		}
	}

	result, err := h.roulette.Spin(c.Request.Context(), userID, req.RouletteID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.NewSpinResponse(result))
}

// Sell handles POST /api/sell
func (h *RouletteHandler) Sell(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		_ = c.Error(domainerr.ErrUnauthorized)
		return
	}

	var req dto.SellRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(invalidRequest(err))
		return
	}

	result, err := h.roulette.SellTicketLot(c.Request.Context(), userID, req.TransactionID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.NewSellResponse(result))
}
