package entity

import (
	"time"

	errs "github.com/amirhossein-jamali/stars-roulette/internal/domain/error"
	coreport "github.com/amirhossein-jamali/stars-roulette/internal/domain/port/core"
)

// User is a Telegram user holding a Stars balance and hidden ticket counters
type User struct {
	ID              int64 // Telegram user id, never generated
	balance         int64
	ticketsSneakers int64
	ticketsBracelet int64
	ReferrerID      *int64 // Set at most once
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewUser creates an empty user for the given Telegram id
func NewUser(id int64, timeProvider coreport.TimeProvider) (*User, error) {
	if id <= 0 {
		return nil, errs.ErrInvalidUserID
	}

	now := timeProvider.Now()
	return &User{
		ID:        id,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// RestoreUser rebuilds a user from stored counters (for repositories)
func RestoreUser(id, balance, sneakers, bracelet int64, referrerID *int64, createdAt, updatedAt time.Time) *User {
	return &User{
		ID:              id,
		balance:         balance,
		ticketsSneakers: sneakers,
		ticketsBracelet: bracelet,
		ReferrerID:      referrerID,
		CreatedAt:       createdAt,
		UpdatedAt:       updatedAt,
	}
}

// Balance returns the Stars balance
func (u *User) Balance() int64 {
	return u.balance
}

// TicketsSneakers returns the sneakers ticket counter
func (u *User) TicketsSneakers() int64 {
	return u.ticketsSneakers
}

// TicketsBracelet returns the bracelet ticket counter
func (u *User) TicketsBracelet() int64 {
	return u.ticketsBracelet
}

// Tickets returns the counter for the given kind
func (u *User) Tickets(kind TicketKind) int64 {
	if kind == TicketBracelet {
		return u.ticketsBracelet
	}
	return u.ticketsSneakers
}

// CanAfford reports whether the balance covers amount
func (u *User) CanAfford(amount int64) bool {
	return u.balance >= amount
}

// Debit subtracts amount from the balance, refusing to go below zero
func (u *User) Debit(amount int64, timeProvider coreport.TimeProvider) error {
	if amount < 0 {
		return errs.ErrInvalidAmount
	}
	if u.balance < amount {
		return errs.NewInsufficientBalanceError(u.ID, amount, u.balance)
	}

	u.balance -= amount
	u.UpdatedAt = timeProvider.Now()
	return nil
}

// Credit adds amount to the balance
func (u *User) Credit(amount int64, timeProvider coreport.TimeProvider) error {
	if amount < 0 {
		return errs.ErrInvalidAmount
	}

	u.balance += amount
	u.UpdatedAt = timeProvider.Now()
	return nil
}

// AddTickets increments the counter of the given kind
func (u *User) AddTickets(kind TicketKind, qty int64, timeProvider coreport.TimeProvider) error {
	if qty < 0 {
		return errs.ErrInvalidAmount
	}

	if kind == TicketBracelet {
		u.ticketsBracelet += qty
	} else {
		u.ticketsSneakers += qty
	}
	u.UpdatedAt = timeProvider.Now()
	return nil
}

// SpendTickets decrements the counter of the given kind
func (u *User) SpendTickets(kind TicketKind, qty int64, timeProvider coreport.TimeProvider) error {
	if qty < 0 {
		return errs.ErrInvalidAmount
	}

	available := u.Tickets(kind)
	if available < qty {
		return errs.NewInsufficientTicketsError(u.ID, string(kind), qty, available)
	}

	if kind == TicketBracelet {
		u.ticketsBracelet -= qty
	} else {
		u.ticketsSneakers -= qty
	}
	u.UpdatedAt = timeProvider.Now()
	return nil
}

// Adjust applies signed deltas to every counter at once. Nothing changes
// when any counter would end up negative.
func (u *User) Adjust(balanceDelta, sneakersDelta, braceletDelta int64, timeProvider coreport.TimeProvider) error {
	if u.balance+balanceDelta < 0 ||
		u.ticketsSneakers+sneakersDelta < 0 ||
		u.ticketsBracelet+braceletDelta < 0 {
		return errs.ErrNegativeBalance
	}

	u.balance += balanceDelta
	u.ticketsSneakers += sneakersDelta
	u.ticketsBracelet += braceletDelta
	u.UpdatedAt = timeProvider.Now()
	return nil
}

// HasReferrer reports whether a referrer was already bound
func (u *User) HasReferrer() bool {
	return u.ReferrerID != nil
}

// BindReferrer sets the referrer once. It returns false for self-referral,
// a non-positive id or when a referrer is already bound.
func (u *User) BindReferrer(referrerID int64, timeProvider coreport.TimeProvider) bool {
	if referrerID <= 0 || referrerID == u.ID || u.HasReferrer() {
		return false
	}

	id := referrerID
	u.ReferrerID = &id
	u.UpdatedAt = timeProvider.Now()
	return true
}

// Clone returns a deep copy of the user
func (u *User) Clone() *User {
	c := *u
	if u.ReferrerID != nil {
		id := *u.ReferrerID
		c.ReferrerID = &id
	}
	return &c
}
