package entity

import (
	"encoding/json"
	"fmt"
)

// MetaKind tags the concrete payload stored in a transaction's meta document
type MetaKind string

const (
	MetaDeposit                MetaKind = "deposit"
	MetaSpin                   MetaKind = "spin"
	MetaStarsWin               MetaKind = "stars_win"
	MetaDiscountWin            MetaKind = "discount_win"
	MetaTicketLot              MetaKind = "ticket_lot"
	MetaTicketSale             MetaKind = "ticket_sale"
	MetaPrizeRedemption        MetaKind = "prize_redemption"
	MetaPrizeRequestRefund     MetaKind = "prize_request_refund"
	MetaWithdraw               MetaKind = "withdraw"
	MetaWithdrawRefund         MetaKind = "withdraw_refund"
	MetaReferralDepositBonus   MetaKind = "referral_deposit_bonus"
	MetaReferralSignupReferrer MetaKind = "referral_signup_referrer"
	MetaReferralSignupInvitee  MetaKind = "referral_signup_invitee"
	MetaAdminAdjust            MetaKind = "admin_adjust"
	MetaLegacy                 MetaKind = "legacy"
)

const metaKindKey = "kind"

// TransactionMeta is the closed set of typed payloads a ledger row can carry.
// Each payload fixes the ledger category of the row it belongs to.
type TransactionMeta interface {
	Kind() MetaKind
	TxType() TransactionType
	sealed()
}

// DepositMeta records an externally confirmed Stars payment
type DepositMeta struct {
	TelegramPaymentChargeID string `json:"telegram_payment_charge_id"`
}

// SpinMeta records the debit of one spin
type SpinMeta struct {
	RouletteID string `json:"roulette_id"`
	CaseCost   int64  `json:"case_cost"`
}

// StarsWinMeta records a currency prize
type StarsWinMeta struct {
	PrizeCode  string `json:"prize_code"`
	RouletteID string `json:"roulette_id"`
	CaseCost   int64  `json:"case_cost"`
	Rarity     Rarity `json:"rarity"`
}

// DiscountWinMeta records a discount prize, which has no balance effect
type DiscountWinMeta struct {
	PrizeCode  string `json:"prize_code"`
	Percent    int64  `json:"percent"`
	RouletteID string `json:"roulette_id"`
	CaseCost   int64  `json:"case_cost"`
	Rarity     Rarity `json:"rarity"`
}

// TicketLotMeta is the lot descriptor of an item win: a batch of hidden
// tickets that can later be sold back as a whole.
type TicketLotMeta struct {
	PrizeCode          string     `json:"prize_code"`
	Amount             int64      `json:"amount"`
	HiddenTicketsAdded int64      `json:"hidden_tickets_added"`
	HiddenTicketsSold  int64      `json:"hidden_tickets_sold"`
	HiddenTicketKind   TicketKind `json:"hidden_ticket_kind"`
	RouletteID         string     `json:"roulette_id"`
	CaseCost           int64      `json:"case_cost"`
	Rarity             Rarity     `json:"rarity"`
}

// Left is the number of tickets of the lot not sold yet
func (m *TicketLotMeta) Left() int64 {
	return m.HiddenTicketsAdded - m.HiddenTicketsSold
}

// MarkSold consumes the whole lot
func (m *TicketLotMeta) MarkSold() {
	m.HiddenTicketsSold = m.HiddenTicketsAdded
}

// TicketSaleMeta records the resale of a lot. TicketSellTxID links back to
// the lot's transaction.
type TicketSaleMeta struct {
	TicketSellTxID   int64      `json:"ticket_sell_tx_id"`
	PrizeCode        string     `json:"prize_code"`
	HiddenTicketKind TicketKind `json:"hidden_ticket_kind"`
	Quantity         int64      `json:"quantity"`
	UnitPrice        int64      `json:"unit_price"`
	SellPercent      int64      `json:"sell_percent"`
}

// PrizeRedemptionMeta records tickets spent on a physical prize request
type PrizeRedemptionMeta struct {
	PrizeRequestID int64      `json:"prize_request_id"`
	PrizeType      TicketKind `json:"prize_type"`
	Tickets        int64      `json:"tickets"`
}

// PrizeRequestRefundMeta records tickets returned by a rejected prize request
type PrizeRequestRefundMeta struct {
	PrizeRequestID int64      `json:"prize_request_id"`
	PrizeType      TicketKind `json:"prize_type"`
	Tickets        int64      `json:"tickets"`
}

// WithdrawMeta records the optimistic debit of a withdraw request
type WithdrawMeta struct {
	WithdrawRequestID int64 `json:"withdraw_request_id"`
}

// WithdrawRefundMeta records the credit of a rejected withdraw request
type WithdrawRefundMeta struct {
	WithdrawRequestID int64 `json:"withdraw_request_id"`
}

// ReferralBonusMeta records the referrer's share of an invitee deposit
type ReferralBonusMeta struct {
	InviteeID       int64  `json:"invitee_id"`
	PaymentChargeID string `json:"payment_charge_id"`
	Percent         int64  `json:"percent"`
}

// ReferralSignupReferrerMeta records the referrer's one-time signup bonus
type ReferralSignupReferrerMeta struct {
	InviteeID int64 `json:"invitee_id"`
}

// ReferralSignupInviteeMeta records the invitee's one-time signup bonus
type ReferralSignupInviteeMeta struct {
	ReferrerID int64 `json:"referrer_id"`
}

// AdminAdjustMeta records a manual correction
type AdminAdjustMeta struct {
	By                   int64  `json:"by"`
	BalanceDelta         int64  `json:"balance_delta"`
	TicketsSneakersDelta int64  `json:"tickets_sneakers_delta"`
	TicketsBraceletDelta int64  `json:"tickets_bracelet_delta"`
	Note                 string `json:"note,omitempty"`
}

// LegacyMeta keeps a meta document that carries no known kind
type LegacyMeta struct {
	Type   TransactionType
	Fields map[string]any
}

func (*DepositMeta) Kind() MetaKind                { return MetaDeposit }
func (*SpinMeta) Kind() MetaKind                   { return MetaSpin }
func (*StarsWinMeta) Kind() MetaKind               { return MetaStarsWin }
func (*DiscountWinMeta) Kind() MetaKind            { return MetaDiscountWin }
func (*TicketLotMeta) Kind() MetaKind              { return MetaTicketLot }
func (*TicketSaleMeta) Kind() MetaKind             { return MetaTicketSale }
func (*PrizeRedemptionMeta) Kind() MetaKind        { return MetaPrizeRedemption }
func (*PrizeRequestRefundMeta) Kind() MetaKind     { return MetaPrizeRequestRefund }
func (*WithdrawMeta) Kind() MetaKind               { return MetaWithdraw }
func (*WithdrawRefundMeta) Kind() MetaKind         { return MetaWithdrawRefund }
func (*ReferralBonusMeta) Kind() MetaKind          { return MetaReferralDepositBonus }
func (*ReferralSignupReferrerMeta) Kind() MetaKind { return MetaReferralSignupReferrer }
func (*ReferralSignupInviteeMeta) Kind() MetaKind  { return MetaReferralSignupInvitee }
func (*AdminAdjustMeta) Kind() MetaKind            { return MetaAdminAdjust }
func (*LegacyMeta) Kind() MetaKind                 { return MetaLegacy }

func (*DepositMeta) TxType() TransactionType                { return TxDeposit }
func (*SpinMeta) TxType() TransactionType                   { return TxSpin }
func (*StarsWinMeta) TxType() TransactionType               { return TxWin }
func (*DiscountWinMeta) TxType() TransactionType            { return TxWin }
func (*TicketLotMeta) TxType() TransactionType              { return TxWin }
func (*TicketSaleMeta) TxType() TransactionType             { return TxWin }
func (*PrizeRedemptionMeta) TxType() TransactionType        { return TxWin }
func (*PrizeRequestRefundMeta) TxType() TransactionType     { return TxWin }
func (*WithdrawMeta) TxType() TransactionType               { return TxWithdraw }
func (*WithdrawRefundMeta) TxType() TransactionType         { return TxWithdraw }
func (*ReferralBonusMeta) TxType() TransactionType          { return TxReferral }
func (*ReferralSignupReferrerMeta) TxType() TransactionType { return TxReferral }
func (*ReferralSignupInviteeMeta) TxType() TransactionType  { return TxReferral }
func (*AdminAdjustMeta) TxType() TransactionType            { return TxAdminAdjust }
func (m *LegacyMeta) TxType() TransactionType               { return m.Type }

func (*DepositMeta) sealed()                {}
func (*SpinMeta) sealed()                   {}
func (*StarsWinMeta) sealed()               {}
func (*DiscountWinMeta) sealed()            {}
func (*TicketLotMeta) sealed()              {}
func (*TicketSaleMeta) sealed()             {}
func (*PrizeRedemptionMeta) sealed()        {}
func (*PrizeRequestRefundMeta) sealed()     {}
func (*WithdrawMeta) sealed()               {}
func (*WithdrawRefundMeta) sealed()         {}
func (*ReferralBonusMeta) sealed()          {}
func (*ReferralSignupReferrerMeta) sealed() {}
func (*ReferralSignupInviteeMeta) sealed()  {}
func (*AdminAdjustMeta) sealed()            {}
func (*LegacyMeta) sealed()                 {}

func newMeta(kind MetaKind) (TransactionMeta, bool) {
	switch kind {
	case MetaDeposit:
		return &DepositMeta{}, true
	case MetaSpin:
		return &SpinMeta{}, true
	case MetaStarsWin:
		return &StarsWinMeta{}, true
	case MetaDiscountWin:
		return &DiscountWinMeta{}, true
	case MetaTicketLot:
		return &TicketLotMeta{}, true
	case MetaTicketSale:
		return &TicketSaleMeta{}, true
	case MetaPrizeRedemption:
		return &PrizeRedemptionMeta{}, true
	case MetaPrizeRequestRefund:
		return &PrizeRequestRefundMeta{}, true
	case MetaWithdraw:
		return &WithdrawMeta{}, true
	case MetaWithdrawRefund:
		return &WithdrawRefundMeta{}, true
	case MetaReferralDepositBonus:
		return &ReferralBonusMeta{}, true
	case MetaReferralSignupReferrer:
		return &ReferralSignupReferrerMeta{}, true
	case MetaReferralSignupInvitee:
		return &ReferralSignupInviteeMeta{}, true
	case MetaAdminAdjust:
		return &AdminAdjustMeta{}, true
	}
	return nil, false
}

// EncodeMeta serializes meta as a flat JSON document with a "kind" key
func EncodeMeta(meta TransactionMeta) ([]byte, error) {
	if legacy, ok := meta.(*LegacyMeta); ok {
		if legacy.Fields == nil {
			return []byte("{}"), nil
		}
		return json.Marshal(legacy.Fields)
	}

	body, err := json.Marshal(meta)
	if err != nil {
		return nil, fmt.Errorf("encode %s meta: %w", meta.Kind(), err)
	}
	doc := map[string]json.RawMessage{}
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("encode %s meta: %w", meta.Kind(), err)
	}
	doc[metaKindKey], _ = json.Marshal(meta.Kind())
	return json.Marshal(doc)
}

// DecodeMeta restores the typed payload of a stored row. Documents without a
// known kind come back as LegacyMeta of the row's type.
func DecodeMeta(txType TransactionType, data []byte) (TransactionMeta, error) {
	if len(data) == 0 {
		return &LegacyMeta{Type: txType, Fields: map[string]any{}}, nil
	}

	var head struct {
		Kind MetaKind `json:"kind"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return nil, fmt.Errorf("decode meta: %w", err)
	}

	if head.Kind == "" {
		head.Kind = inferLegacyKind(txType, data)
	}

	meta, ok := newMeta(head.Kind)
	if !ok {
		fields := map[string]any{}
		if err := json.Unmarshal(data, &fields); err != nil {
			return nil, fmt.Errorf("decode meta: %w", err)
		}
		return &LegacyMeta{Type: txType, Fields: fields}, nil
	}
	if err := json.Unmarshal(data, meta); err != nil {
		return nil, fmt.Errorf("decode %s meta: %w", head.Kind, err)
	}
	return meta, nil
}

// inferLegacyKind recognizes rows written before meta documents carried a
// kind, so that old lots stay sellable
func inferLegacyKind(txType TransactionType, data []byte) MetaKind {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return ""
	}
	has := func(key string) bool {
		_, ok := fields[key]
		return ok
	}

	switch {
	case txType == TxWin && has("ticket_sell_tx_id"):
		return MetaTicketSale
	case txType == TxWin && has("hidden_tickets_added"):
		return MetaTicketLot
	case txType == TxSpin && has("roulette_id"):
		return MetaSpin
	case txType == TxDeposit && has("telegram_payment_charge_id"):
		return MetaDeposit
	case txType == TxWithdraw && has("withdraw_request_id"):
		return MetaWithdraw
	}
	return ""
}

// CloneMeta deep-copies a meta payload through its encoding
func CloneMeta(meta TransactionMeta) TransactionMeta {
	if meta == nil {
		return nil
	}
	data, err := EncodeMeta(meta)
	if err != nil {
		return meta
	}
	out, err := DecodeMeta(meta.TxType(), data)
	if err != nil {
		return meta
	}
	return out
}
