package dto

import (
	"time"

	"github.com/amirhossein-jamali/stars-roulette/internal/domain/entity"
	"github.com/amirhossein-jamali/stars-roulette/internal/domain/port/usecase"
)

// ProfileResponse is the mini app account summary
type ProfileResponse struct {
	UserID          int64  `json:"user_id"`
	Balance         int64  `json:"balance"`
	TicketsSneakers int64  `json:"tickets_sneakers"`
	TicketsBracelet int64  `json:"tickets_bracelet"`
	IsAdmin         bool   `json:"is_admin"`
	RefLink         string `json:"ref_link"`
}

// NewProfileResponse maps a profile view
func NewProfileResponse(p *entity.Profile) ProfileResponse {
	return ProfileResponse{
		UserID:          p.UserID,
		Balance:         p.Balance,
		TicketsSneakers: p.TicketsSneakers,
		TicketsBracelet: p.TicketsBracelet,
		IsAdmin:         p.IsAdmin,
		RefLink:         p.RefLink,
	}
}

// HistoryItem is one ledger row as the client shows it
type HistoryItem struct {
	ID          int64  `json:"id"`
	Type        string `json:"type"`
	Amount      int64  `json:"amount"`
	Description string `json:"description"`
	Date        string `json:"date"`
}

// HistoryResponse wraps the latest ledger rows
type HistoryResponse struct {
	Items []HistoryItem `json:"items"`
}

// NewHistoryResponse maps ledger rows, keeping their order
func NewHistoryResponse(rows []*entity.Transaction) HistoryResponse {
	items := make([]HistoryItem, 0, len(rows))
	for _, t := range rows {
		items = append(items, HistoryItem{
			ID:          t.ID,
			Type:        string(t.Type),
			Amount:      t.Amount,
			Description: t.Description,
			Date:        t.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	return HistoryResponse{Items: items}
}

// WithdrawRequest asks for a Stars cash-out
type WithdrawRequest struct {
	Amount int64 `json:"amount" binding:"required"`
}

// WithdrawResponse reports the funded request and the new balance
type WithdrawResponse struct {
	OK        bool  `json:"ok"`
	RequestID int64 `json:"request_id"`
	Balance   int64 `json:"balance"`
}

// NewWithdrawResponse maps a withdraw result
func NewWithdrawResponse(r *usecase.WithdrawResult) WithdrawResponse {
	return WithdrawResponse{OK: true, RequestID: r.Request.ID, Balance: r.Balance}
}

// PrizeRequestBody asks for a physical prize
type PrizeRequestBody struct {
	PrizeType string `json:"prize_type" binding:"required"`
}

// PrizeRequestResponse reports the funded request and the ticket counters left
type PrizeRequestResponse struct {
	OK              bool  `json:"ok"`
	RequestID       int64 `json:"request_id"`
	TicketsSneakers int64 `json:"tickets_sneakers"`
	TicketsBracelet int64 `json:"tickets_bracelet"`
}

// NewPrizeRequestResponse maps a prize request result
func NewPrizeRequestResponse(r *usecase.PrizeRequestResult) PrizeRequestResponse {
	return PrizeRequestResponse{
		OK:              true,
		RequestID:       r.Request.ID,
		TicketsSneakers: r.TicketsSneakers,
		TicketsBracelet: r.TicketsBracelet,
	}
}

// InvoiceRequest asks for a Stars deposit invoice
type InvoiceRequest struct {
	Amount      int64  `json:"amount" binding:"required"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// InvoiceResponse carries the invoice link the client opens
type InvoiceResponse struct {
	InvoiceLink string `json:"invoice_link"`
}
