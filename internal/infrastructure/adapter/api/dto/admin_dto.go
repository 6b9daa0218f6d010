package dto

import (
	"time"

	"github.com/amirhossein-jamali/stars-roulette/internal/domain/entity"
)

// PutCasesRequest replaces the whole case set
type PutCasesRequest struct {
	Items []entity.RawCase `json:"items" binding:"required"`
}

// PrizeWeightItem is the admin view of one prize's draw weight
type PrizeWeightItem struct {
	Key       string `json:"key"`
	Weight    int64  `json:"weight"`
	IsEnabled bool   `json:"is_enabled"`
}

// PrizeWeightsResponse lists the weights of one case
type PrizeWeightsResponse struct {
	CaseID string            `json:"case_id"`
	Items  []PrizeWeightItem `json:"items"`
}

// NewPrizeWeightsResponse maps a case to its weight table
func NewPrizeWeightsResponse(c *entity.CaseConfig) PrizeWeightsResponse {
	items := make([]PrizeWeightItem, 0, len(c.Prizes))
	for _, p := range c.Prizes {
		items = append(items, PrizeWeightItem{Key: p.Code, Weight: p.Weight, IsEnabled: p.Enabled})
	}
	return PrizeWeightsResponse{CaseID: c.ID, Items: items}
}

// PutPrizeWeightsRequest edits weights of one case. Unknown keys are ignored.
type PutPrizeWeightsRequest struct {
	CaseID string            `json:"case_id"`
	Items  []PrizeWeightItem `json:"items"`
}

// Weights converts the request items
func (r PutPrizeWeightsRequest) Weights() []entity.PrizeWeight {
	out := make([]entity.PrizeWeight, 0, len(r.Items))
	for _, it := range r.Items {
		out = append(out, entity.PrizeWeight{Code: it.Key, Weight: it.Weight, Enabled: it.IsEnabled})
	}
	return out
}

// WithdrawItem is one withdraw request in the admin queue
type WithdrawItem struct {
	ID        int64  `json:"id"`
	UserID    int64  `json:"user_id"`
	Amount    int64  `json:"amount"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
}

// NewWithdrawItem maps a withdraw request
func NewWithdrawItem(r *entity.WithdrawRequest) WithdrawItem {
	return WithdrawItem{
		ID:        r.ID,
		UserID:    r.UserID,
		Amount:    r.Amount,
		Status:    string(r.Status),
		CreatedAt: r.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// WithdrawListResponse wraps the withdraw queue
type WithdrawListResponse struct {
	Items []WithdrawItem `json:"items"`
}

// PrizeRequestItem is one physical prize request in the admin queue
type PrizeRequestItem struct {
	ID        int64  `json:"id"`
	UserID    int64  `json:"user_id"`
	PrizeType string `json:"prize_type"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
}

// NewPrizeRequestItem maps a prize request
func NewPrizeRequestItem(r *entity.PrizeRequest) PrizeRequestItem {
	return PrizeRequestItem{
		ID:        r.ID,
		UserID:    r.UserID,
		PrizeType: string(r.PrizeType),
		Status:    string(r.Status),
		CreatedAt: r.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// PrizeRequestListResponse wraps the prize request queue
type PrizeRequestListResponse struct {
	Items []PrizeRequestItem `json:"items"`
}

// StatusRequest moves a queued request
type StatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// AdjustRequest is a manual correction of a user's counters
type AdjustRequest struct {
	UserID               int64  `json:"user_id" binding:"required,gt=0"`
	BalanceDelta         int64  `json:"balance_delta"`
	TicketsSneakersDelta int64  `json:"tickets_sneakers_delta"`
	TicketsBraceletDelta int64  `json:"tickets_bracelet_delta"`
	Note                 string `json:"note"`
}

// AdjustResponse reports the counters after an adjustment
type AdjustResponse struct {
	OK              bool  `json:"ok"`
	UserID          int64 `json:"user_id"`
	Balance         int64 `json:"balance"`
	TicketsSneakers int64 `json:"tickets_sneakers"`
	TicketsBracelet int64 `json:"tickets_bracelet"`
}

// NewAdjustResponse maps an adjusted user
func NewAdjustResponse(u *entity.User) AdjustResponse {
	return AdjustResponse{
		OK:              true,
		UserID:          u.ID,
		Balance:         u.Balance(),
		TicketsSneakers: u.TicketsSneakers(),
		TicketsBracelet: u.TicketsBracelet(),
	}
}

// ReferralSummaryItem aggregates one referrer
type ReferralSummaryItem struct {
	ReferrerID   int64 `json:"referrer_id"`
	InvitedCount int64 `json:"invited_count"`
	TotalDeposit int64 `json:"total_deposit"`
	TotalBonus   int64 `json:"total_bonus"`
}

// ReferralSummaryResponse wraps the summary rows
type ReferralSummaryResponse struct {
	Items []ReferralSummaryItem `json:"items"`
}

// NewReferralSummaryResponse maps summary rows
func NewReferralSummaryResponse(rows []entity.ReferralSummaryRow) ReferralSummaryResponse {
	items := make([]ReferralSummaryItem, 0, len(rows))
	for _, r := range rows {
		items = append(items, ReferralSummaryItem(r))
	}
	return ReferralSummaryResponse{Items: items}
}

// ReferralInvitee is one invitee of a referrer
type ReferralInvitee struct {
	UserID     int64  `json:"user_id"`
	CreatedAt  string `json:"created_at"`
	DepositSum int64  `json:"deposit_sum"`
}

// ReferralDetailsResponse wraps the invitees of one referrer
type ReferralDetailsResponse struct {
	Invitees []ReferralInvitee `json:"invitees"`
}

// NewReferralDetailsResponse maps invitee rows
func NewReferralDetailsResponse(rows []entity.ReferralDetailRow) ReferralDetailsResponse {
	items := make([]ReferralInvitee, 0, len(rows))
	for _, r := range rows {
		items = append(items, ReferralInvitee{
			UserID:     r.UserID,
			CreatedAt:  r.CreatedAt.UTC().Format(time.RFC3339),
			DepositSum: r.DepositSum,
		})
	}
	return ReferralDetailsResponse{Invitees: items}
}
