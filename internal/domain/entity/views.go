package entity

import "time"

// Profile is the user-facing account summary
type Profile struct {
	UserID          int64
	Balance         int64
	TicketsSneakers int64
	TicketsBracelet int64
	IsAdmin         bool
	RefLink         string
}

// SpinResult is the outcome of one settled spin
type SpinResult struct {
	RouletteID      string
	Cost            int64
	Balance         int64
	TicketsSneakers int64
	TicketsBracelet int64
	Prize           Prize
	SpinTxID        int64
	WinTxID         int64
	Overridden      bool
}

// SellResult is the outcome of a lot resale
type SellResult struct {
	Credited        int64
	Quantity        int64
	UnitPrice       int64
	Balance         int64
	TicketsSneakers int64
	TicketsBracelet int64
}

// PaymentOutcome tells whether a confirmation credited or was a duplicate
type PaymentOutcome string

const (
	PaymentCredited         PaymentOutcome = "credited"
	PaymentAlreadyProcessed PaymentOutcome = "already_processed"
)

// PaymentResult is the outcome of a payment confirmation
type PaymentResult struct {
	Outcome       PaymentOutcome
	Credited      int64
	ReferrerBonus int64
	Balance       int64
}

// BindResult is the outcome of a referral binding
type BindResult struct {
	Bound bool
}

// ReferralSummaryRow aggregates one referrer's invitees
type ReferralSummaryRow struct {
	ReferrerID   int64
	InvitedCount int64
	TotalDeposit int64
	TotalBonus   int64
}

// ReferralDetailRow is one invitee of a referrer
type ReferralDetailRow struct {
	UserID     int64
	CreatedAt  time.Time
	DepositSum int64
}

// ReferralFilter narrows referral reports
type ReferralFilter struct {
	Query *int64 // matches referrer or invitee id
	From  *time.Time
	To    *time.Time
	Limit int
}

// PendingDigest counts the admin queues awaiting work
type PendingDigest struct {
	PendingWithdraws int64
	PendingAmount    int64
	NewPrizeRequests int64
}
