package entity

import (
	"time"

	errs "github.com/amirhossein-jamali/stars-roulette/internal/domain/error"
	coreport "github.com/amirhossein-jamali/stars-roulette/internal/domain/port/core"
)

// RequestStatus is the admin-facing state of a withdraw or prize request
type RequestStatus string

// Request statuses
const (
	StatusNew        RequestStatus = "new"
	StatusPending    RequestStatus = "pending"
	StatusProcessing RequestStatus = "processing"
	StatusCompleted  RequestStatus = "completed"
	StatusRejected   RequestStatus = "rejected"
)

// ParseRequestStatus validates a status string
func ParseRequestStatus(s string) (RequestStatus, error) {
	switch RequestStatus(s) {
	case StatusNew, StatusPending, StatusProcessing, StatusCompleted, StatusRejected:
		return RequestStatus(s), nil
	}
	return "", errs.ErrInvalidStatus
}

// Terminal reports whether no further transition is allowed
func (s RequestStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusRejected
}

// canMove is shared by both queues: the initial status may move to
// processing or straight to a terminal status, processing only to a terminal one.
func canMove(initial, from, to RequestStatus) bool {
	switch from {
	case initial:
		return to == StatusProcessing || to.Terminal()
	case StatusProcessing:
		return to.Terminal()
	}
	return false
}

// WithdrawRequest is a cash-out funded by an immediate balance debit
type WithdrawRequest struct {
	ID        int64
	UserID    int64
	Amount    int64
	Status    RequestStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewWithdrawRequest creates a pending withdraw request
func NewWithdrawRequest(userID, amount int64, timeProvider coreport.TimeProvider) *WithdrawRequest {
	now := timeProvider.Now()
	return &WithdrawRequest{
		UserID:    userID,
		Amount:    amount,
		Status:    StatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// TransitionTo moves the request to status, enforcing the state machine
func (r *WithdrawRequest) TransitionTo(status RequestStatus, timeProvider coreport.TimeProvider) error {
	if status == StatusNew {
		return errs.ErrInvalidStatus
	}
	if !canMove(StatusPending, r.Status, status) {
		return errs.ErrInvalidStatusTransition
	}
	r.Status = status
	r.UpdatedAt = timeProvider.Now()
	return nil
}

// PrizeRequest is a physical prize redemption funded by spent tickets
type PrizeRequest struct {
	ID        int64
	UserID    int64
	PrizeType TicketKind
	Status    RequestStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewPrizeRequest creates a new prize request
func NewPrizeRequest(userID int64, prizeType TicketKind, timeProvider coreport.TimeProvider) *PrizeRequest {
	now := timeProvider.Now()
	return &PrizeRequest{
		UserID:    userID,
		PrizeType: prizeType,
		Status:    StatusNew,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// TransitionTo moves the request to status, enforcing the state machine
func (r *PrizeRequest) TransitionTo(status RequestStatus, timeProvider coreport.TimeProvider) error {
	if status == StatusPending {
		return errs.ErrInvalidStatus
	}
	if !canMove(StatusNew, r.Status, status) {
		return errs.ErrInvalidStatusTransition
	}
	r.Status = status
	r.UpdatedAt = timeProvider.Now()
	return nil
}
