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

// AccountHandler serves the mini app account endpoints
type AccountHandler struct {
	accounts usecase.AccountUseCase
	logger   coreport.Logger
}

// NewAccountHandler creates a new account handler instance
func NewAccountHandler(accounts usecase.AccountUseCase, logger coreport.Logger) *AccountHandler {
	return &AccountHandler{accounts: accounts, logger: logger}
}

// GetProfile handles GET /api/me
func (h *AccountHandler) GetProfile(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		_ = c.Error(domainerr.ErrUnauthorized)
		return
	}

	profile, err := h.accounts.GetProfile(c.Request.Context(), userID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.NewProfileResponse(profile))
}

// History handles GET /api/history
func (h *AccountHandler) History(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		_ = c.Error(domainerr.ErrUnauthorized)
		return
	}

	rows, err := h.accounts.History(c.Request.Context(), userID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.NewHistoryResponse(rows))
}

// Withdraw handles POST /api/withdraw
func (h *AccountHandler) Withdraw(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		_ = c.Error(domainerr.ErrUnauthorized)
		return
	}

	var req dto.WithdrawRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(invalidRequest(err))
		return
	}

	result, err := h.accounts.Withdraw(c.Request.Context(), userID, req.Amount)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.NewWithdrawResponse(result))
}

// RequestPrize handles POST /api/prize/request
func (h *AccountHandler) RequestPrize(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		_ = c.Error(domainerr.ErrUnauthorized)
		return
	}

	var req dto.PrizeRequestBody
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(domainerr.ErrInvalidPrizeType)
		return
	}

	result, err := h.accounts.RequestPrize(c.Request.Context(), userID, req.PrizeType)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.NewPrizeRequestResponse(result))
}

// CreateInvoice handles POST /api/stars/invoice
func (h *AccountHandler) CreateInvoice(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		_ = c.Error(domainerr.ErrUnauthorized)
		return
	}

	var req dto.InvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(invalidRequest(err))
		return
	}

	link, err := h.accounts.CreateInvoice(c.Request.Context(), userID, usecase.InvoiceRequest{
		Amount:      req.Amount,
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.InvoiceResponse{InvoiceLink: link})
}
