package dto

import "github.com/amirhossein-jamali/stars-roulette/internal/domain/entity"

// SpinRequest selects the case to spin. An empty id spins the default case.
type SpinRequest struct {
	RouletteID string `json:"roulette_id" binding:"max=50"`
}

// PrizeView is one prize of a case or a spin outcome
type PrizeView struct {
	Code    string `json:"code"`
	Title   string `json:"title"`
	Type    string `json:"type"`
	Amount  int64  `json:"amount"`
	Weight  int64  `json:"weight"`
	Enabled bool   `json:"is_enabled"`
	Rarity  string `json:"rarity"`
}

// NewPrizeView maps a prize
func NewPrizeView(p entity.Prize) PrizeView {
	return PrizeView{
		Code:    p.Code,
		Title:   p.Title,
		Type:    string(p.Kind),
		Amount:  p.Amount,
		Weight:  p.Weight,
		Enabled: p.Enabled,
		Rarity:  string(p.Rarity),
	}
}

// SpinResponse reports the drawn prize and the counters after settlement
type SpinResponse struct {
	RouletteID      string    `json:"roulette_id"`
	PrizeKey        string    `json:"prize_key"`
	Prize           PrizeView `json:"prize"`
	Cost            int64     `json:"cost"`
	Balance         int64     `json:"balance"`
	TicketsSneakers int64     `json:"tickets_sneakers"`
	TicketsBracelet int64     `json:"tickets_bracelet"`
	SpinTxID        int64     `json:"spin_tx_id"`
	WinTxID         int64     `json:"win_tx_id,omitempty"`
}

// NewSpinResponse maps a spin result
func NewSpinResponse(r *entity.SpinResult) SpinResponse {
	return SpinResponse{
		RouletteID:      r.RouletteID,
		PrizeKey:        r.Prize.Code,
		Prize:           NewPrizeView(r.Prize),
		Cost:            r.Cost,
		Balance:         r.Balance,
		TicketsSneakers: r.TicketsSneakers,
		TicketsBracelet: r.TicketsBracelet,
		SpinTxID:        r.SpinTxID,
		WinTxID:         r.WinTxID,
	}
}

// SellRequest names the ticket lot to sell back
type SellRequest struct {
	TransactionID int64 `json:"transaction_id" binding:"required,gt=0"`
}

// SellResponse reports a lot resale
type SellResponse struct {
	Credited        int64 `json:"credited"`
	Quantity        int64 `json:"quantity"`
	UnitPrice       int64 `json:"unit_price"`
	Balance         int64 `json:"balance"`
	TicketsSneakers int64 `json:"tickets_sneakers"`
	TicketsBracelet int64 `json:"tickets_bracelet"`
}

// NewSellResponse maps a resale result
func NewSellResponse(r *entity.SellResult) SellResponse {
	return SellResponse{
		Credited:        r.Credited,
		Quantity:        r.Quantity,
		UnitPrice:       r.UnitPrice,
		Balance:         r.Balance,
		TicketsSneakers: r.TicketsSneakers,
		TicketsBracelet: r.TicketsBracelet,
	}
}

// CaseView is a normalized case with its full prize table
type CaseView struct {
	ID       string      `json:"id"`
	Title    string      `json:"title"`
	SpinCost int64       `json:"spin_cost"`
	Slots    int64       `json:"slots"`
	Enabled  bool        `json:"is_enabled"`
	Prizes   []PrizeView `json:"prizes"`
}

// CasesResponse wraps a case list
type CasesResponse struct {
	Items []CaseView `json:"items"`
}

// NewCaseView maps a case
func NewCaseView(c *entity.CaseConfig) CaseView {
	prizes := make([]PrizeView, 0, len(c.Prizes))
	for _, p := range c.Prizes {
		prizes = append(prizes, NewPrizeView(p))
	}
	return CaseView{
		ID:       c.ID,
		Title:    c.Title,
		SpinCost: c.SpinCost,
		Slots:    c.Slots,
		Enabled:  c.Enabled,
		Prizes:   prizes,
	}
}

// NewCasesResponse maps a case list
func NewCasesResponse(cases []*entity.CaseConfig) CasesResponse {
	items := make([]CaseView, 0, len(cases))
	for _, c := range cases {
		items = append(items, NewCaseView(c))
	}
	return CasesResponse{Items: items}
}
