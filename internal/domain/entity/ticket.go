package entity

import (
	errs "github.com/amirhossein-jamali/stars-roulette/internal/domain/error"
)

// TicketKind identifies a hidden ticket counter
type TicketKind string

const (
	TicketSneakers TicketKind = "sneakers"
	TicketBracelet TicketKind = "bracelet"
)

// TicketKindForPrizeCode maps an item prize code to its counter: the literal
// code "bracelet" accrues bracelet tickets, anything else sneakers tickets.
func TicketKindForPrizeCode(code string) TicketKind {
	if code == "bracelet" {
		return TicketBracelet
	}
	return TicketSneakers
}

// ParseTicketKind validates a physical prize type chosen by the user
func ParseTicketKind(s string) (TicketKind, error) {
	switch TicketKind(s) {
	case TicketSneakers:
		return TicketSneakers, nil
	case TicketBracelet:
		return TicketBracelet, nil
	default:
		return "", errs.ErrInvalidPrizeType
	}
}

// RedemptionCost is the number of tickets a physical prize costs
func (k TicketKind) RedemptionCost() int64 {
	if k == TicketBracelet {
		return 5
	}
	return 10
}

// TicketProgress is a user's net accrual (won minus resold) of one item code
type TicketProgress struct {
	UserID    int64
	PrizeCode string
	Accrued   int64
}

// ProgressMap indexes accrued tickets by prize code
type ProgressMap map[string]int64

// Left returns how many tickets are still missing to reach target
func (m ProgressMap) Left(code string, target int64) int64 {
	return max(0, target-m[code])
}
