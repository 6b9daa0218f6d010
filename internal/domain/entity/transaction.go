package entity

import (
	"fmt"
	"time"
	"unicode/utf8"

	errs "github.com/amirhossein-jamali/stars-roulette/internal/domain/error"
	tport "github.com/amirhossein-jamali/stars-roulette/internal/domain/port/core"
)

// TransactionType is the ledger category of a transaction row
type TransactionType string

// Transaction types
const (
	TxDeposit     TransactionType = "deposit"
	TxSpin        TransactionType = "spin"
	TxWin         TransactionType = "win"
	TxWithdraw    TransactionType = "withdraw"
	TxReferral    TransactionType = "referral"
	TxAdminAdjust TransactionType = "admin_adjust"
)

// Valid reports whether t is a known ledger category
func (t TransactionType) Valid() bool {
	switch t {
	case TxDeposit, TxSpin, TxWin, TxWithdraw, TxReferral, TxAdminAdjust:
		return true
	}
	return false
}

const maxDescriptionLength = 140

// Transaction is an append-only ledger row. Amount is the signed delta that
// was applied to the owner's balance; it is zero for non-monetary rows.
type Transaction struct {
	ID          int64
	UserID      int64
	Type        TransactionType
	Amount      int64
	Description string
	Meta        TransactionMeta
	CreatedAt   time.Time
}

// NewTransaction creates a ledger row whose type is derived from meta
func NewTransaction(
	userID int64,
	amount int64,
	description string,
	meta TransactionMeta,
	timeProvider tport.TimeProvider,
) (*Transaction, error) {
	if userID <= 0 {
		return nil, errs.ErrInvalidUserID
	}
	if meta == nil {
		return nil, fmt.Errorf("%w: transaction meta is required", errs.ErrInvalidRequest)
	}

	return &Transaction{
		UserID:      userID,
		Type:        meta.TxType(),
		Amount:      amount,
		Description: truncateRunes(description, maxDescriptionLength),
		Meta:        meta,
		CreatedAt:   timeProvider.Now(),
	}, nil
}

// TicketLot returns the lot descriptor when the row is a sellable item win
func (t *Transaction) TicketLot() (*TicketLotMeta, bool) {
	lot, ok := t.Meta.(*TicketLotMeta)
	return lot, ok
}

// Clone returns a copy of the row including its meta
func (t *Transaction) Clone() *Transaction {
	c := *t
	c.Meta = CloneMeta(t.Meta)
	return &c
}

func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)
	return string(r[:n])
}
