package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInsufficientBalance     = 4001
	CodeInvalidAmount           = 4002
	CodeInvalidUserID           = 4003
	CodeBelowMinimum            = 4004
	CodeInsufficientTickets     = 4005
	CodeInvalidPrizeType        = 4006
	CodeInvalidCase             = 4007
	CodeInvalidStatus           = 4008
	CodeInvalidChargeID         = 4009
	CodeNegativeBalance         = 4010
	CodeInvalidRequest          = 4011
	CodeUnauthorized            = 4101
	CodeForbidden               = 4030
	CodeUserNotFound            = 4040
	CodeTransactionNotFound     = 4041
	CodeRequestNotFound         = 4042
	CodeLotExhausted            = 4090
	CodeNoBuybackPrice          = 4091
	CodeNotTicketLot            = 4092
	CodeNoEligiblePrize         = 4093
	CodeUnknownCase             = 4094
	CodeInvalidStatusTransition = 4095
	CodeUserLocked              = 4230

	// 5xxx - Server errors
	CodeInternalServer     = 5000
	CodeSpinFailed         = 5001
	CodeDatabaseConnection = 5002
	CodeInvoiceUnavailable = 5003
	CodeShuttingDown       = 5030
)

// Base error types
var (
	// ErrInsufficientBalance is returned when a user cannot fund an operation
	ErrInsufficientBalance = errors.New("insufficient balance")

	// ErrInsufficientTickets is returned when a ticket counter cannot cover a deduction
	ErrInsufficientTickets = errors.New("not enough tickets")

	// ErrNegativeBalance is returned when an adjustment would push a counter below zero
	ErrNegativeBalance = errors.New("balance cannot be negative")

	// ErrInvalidAmount is returned for non-positive or out of range amounts
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrInvalidUserID is returned when the user ID is not a positive integer
	ErrInvalidUserID = errors.New("user ID must be positive")

	// ErrBelowMinimum is returned when a withdraw is below the configured minimum
	ErrBelowMinimum = errors.New("amount is below the minimum")

	// ErrInvalidPrizeType is returned for an unknown physical prize type
	ErrInvalidPrizeType = errors.New("invalid prize_type")

	// ErrInvalidCase is returned for a malformed case payload
	ErrInvalidCase = errors.New("invalid case configuration")

	// ErrInvalidStatus is returned for an unknown request status
	ErrInvalidStatus = errors.New("invalid status")

	// ErrInvalidStatusTransition is returned when a request cannot move to the requested status
	ErrInvalidStatusTransition = errors.New("invalid status transition")

	// ErrInvalidChargeID is returned when an external charge id is empty or too long
	ErrInvalidChargeID = errors.New("invalid payment charge id")

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrNoEligiblePrize is returned when a case has no enabled prize with positive weight
	ErrNoEligiblePrize = errors.New("no enabled prizes with positive weight")

	// ErrUnknownCase is returned when no case is configured at all
	ErrUnknownCase = errors.New("unknown case")

	// ErrSpinFailed is returned when a spin could not be settled and was rolled back
	ErrSpinFailed = errors.New("spin failed")

	// ErrLotExhausted is returned when a ticket lot has nothing left to sell
	ErrLotExhausted = errors.New("ticket lot already sold")

	// ErrNoBuybackPrice is returned when a lot has no case cost to price the resale
	ErrNoBuybackPrice = errors.New("ticket lot has no buy-back price")

	// ErrNotTicketLot is returned when a transaction does not carry a ticket lot
	ErrNotTicketLot = errors.New("transaction is not a ticket lot")

	// ErrDuplicatePayment is returned by storage when a charge id was already recorded
	ErrDuplicatePayment = errors.New("payment with this charge id already exists")

	// ErrUserNotFound is returned when the requested user doesn't exist
	ErrUserNotFound = errors.New("user not found")

	// ErrTransactionNotFound is returned when the requested transaction doesn't exist
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrRequestNotFound is returned when a withdraw or prize request doesn't exist
	ErrRequestNotFound = errors.New("request not found")

	// ErrUserLocked is returned when a user is locked by another operation
	ErrUserLocked = errors.New("user is locked by another operation")

	// ErrUnauthorized is returned when the caller identity could not be established
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden is returned when the caller lacks the required role or token
	ErrForbidden = errors.New("forbidden")

	// ErrInvoiceUnavailable is returned when the payment provider cannot issue an invoice
	ErrInvoiceUnavailable = errors.New("invoice provider unavailable")

	// ErrShuttingDown is returned for work submitted after shutdown began
	ErrShuttingDown = errors.New("service is shutting down")

	// ErrDatabaseConnection is returned when there's a problem talking to the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrConstraintViolation is returned when a database constraint is violated
	ErrConstraintViolation = errors.New("database constraint violation")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInsufficientBalance):
		return CodeInsufficientBalance
	case errors.Is(err, ErrInsufficientTickets):
		return CodeInsufficientTickets
	case errors.Is(err, ErrNegativeBalance):
		return CodeNegativeBalance
	case errors.Is(err, ErrInvalidAmount):
		return CodeInvalidAmount
	case errors.Is(err, ErrInvalidUserID):
		return CodeInvalidUserID
	case errors.Is(err, ErrBelowMinimum):
		return CodeBelowMinimum
	case errors.Is(err, ErrInvalidPrizeType):
		return CodeInvalidPrizeType
	case errors.Is(err, ErrInvalidCase):
		return CodeInvalidCase
	case errors.Is(err, ErrInvalidStatus):
		return CodeInvalidStatus
	case errors.Is(err, ErrInvalidStatusTransition):
		return CodeInvalidStatusTransition
	case errors.Is(err, ErrInvalidChargeID):
		return CodeInvalidChargeID
	case errors.Is(err, ErrInvalidRequest):
		return CodeInvalidRequest
	case errors.Is(err, ErrNoEligiblePrize):
		return CodeNoEligiblePrize
	case errors.Is(err, ErrUnknownCase):
		return CodeUnknownCase
	case errors.Is(err, ErrLotExhausted):
		return CodeLotExhausted
	case errors.Is(err, ErrNoBuybackPrice):
		return CodeNoBuybackPrice
	case errors.Is(err, ErrNotTicketLot):
		return CodeNotTicketLot
	case errors.Is(err, ErrUserNotFound):
		return CodeUserNotFound
	case errors.Is(err, ErrTransactionNotFound):
		return CodeTransactionNotFound
	case errors.Is(err, ErrRequestNotFound):
		return CodeRequestNotFound
	case errors.Is(err, ErrUserLocked):
		return CodeUserLocked
	case errors.Is(err, ErrUnauthorized):
		return CodeUnauthorized
	case errors.Is(err, ErrForbidden):
		return CodeForbidden
	case errors.Is(err, ErrSpinFailed):
		return CodeSpinFailed
	case errors.Is(err, ErrDatabaseConnection):
		return CodeDatabaseConnection
	case errors.Is(err, ErrInvoiceUnavailable):
		return CodeInvoiceUnavailable
	case errors.Is(err, ErrShuttingDown):
		return CodeShuttingDown
	default:
		return CodeInternalServer
	}
}

// InsufficientBalanceError provides detailed error information for insufficient balance
type InsufficientBalanceError struct {
	UserID    int64
	Required  int64
	Available int64
}

// Error implements the error interface
func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient balance for user %d: required %d, available %d",
		e.UserID, e.Required, e.Available)
}

// Is checks if the target error is an ErrInsufficientBalance
func (e *InsufficientBalanceError) Is(target error) bool {
	return target == ErrInsufficientBalance
}

// LogFields returns a map of fields for structured logging
func (e *InsufficientBalanceError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "insufficient_balance",
		"user_id":    e.UserID,
		"required":   e.Required,
		"available":  e.Available,
		"error_code": CodeInsufficientBalance,
	}
}

// NewInsufficientBalanceError creates a new detailed insufficient balance error
func NewInsufficientBalanceError(userID, required, available int64) error {
	return &InsufficientBalanceError{
		UserID:    userID,
		Required:  required,
		Available: available,
	}
}

// InsufficientTicketsError reports a ticket counter that cannot cover a deduction
type InsufficientTicketsError struct {
	UserID    int64
	Kind      string
	Required  int64
	Available int64
}

func (e *InsufficientTicketsError) Error() string {
	return fmt.Sprintf("not enough %s tickets for user %d: required %d, available %d",
		e.Kind, e.UserID, e.Required, e.Available)
}

// Is checks if the target error is an ErrInsufficientTickets
func (e *InsufficientTicketsError) Is(target error) bool {
	return target == ErrInsufficientTickets
}

// LogFields returns a map of fields for structured logging
func (e *InsufficientTicketsError) LogFields() map[string]any {
	return map[string]any{
		"error_type":  "insufficient_tickets",
		"user_id":     e.UserID,
		"ticket_kind": e.Kind,
		"required":    e.Required,
		"available":   e.Available,
		"error_code":  CodeInsufficientTickets,
	}
}

// NewInsufficientTicketsError creates a detailed insufficient tickets error
func NewInsufficientTicketsError(userID int64, kind string, required, available int64) error {
	return &InsufficientTicketsError{
		UserID:    userID,
		Kind:      kind,
		Required:  required,
		Available: available,
	}
}

// BelowMinimumError reports an amount below a configured floor
type BelowMinimumError struct {
	Minimum int64
	Amount  int64
}

func (e *BelowMinimumError) Error() string {
	return fmt.Sprintf("minimum withdraw is %d Stars, got %d", e.Minimum, e.Amount)
}

// Is checks if the target error is an ErrBelowMinimum
func (e *BelowMinimumError) Is(target error) bool {
	return target == ErrBelowMinimum
}

// LogFields returns a map of fields for structured logging
func (e *BelowMinimumError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "below_minimum",
		"minimum":    e.Minimum,
		"amount":     e.Amount,
		"error_code": CodeBelowMinimum,
	}
}

// NewBelowMinimumError creates a new below minimum error
func NewBelowMinimumError(minimum, amount int64) error {
	return &BelowMinimumError{Minimum: minimum, Amount: amount}
}

// SpinFailedError wraps the cause of a spin that was rolled back
type SpinFailedError struct {
	UserID int64
	CaseID string
	Err    error
}

func (e *SpinFailedError) Error() string {
	return fmt.Sprintf("spin failed for user %d on case %s: %v", e.UserID, e.CaseID, e.Err)
}

// Unwrap returns the underlying error
func (e *SpinFailedError) Unwrap() error {
	return e.Err
}

// Is checks if the target error is an ErrSpinFailed
func (e *SpinFailedError) Is(target error) bool {
	return target == ErrSpinFailed
}

// LogFields returns a map of fields for structured logging
func (e *SpinFailedError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "spin_failed",
		"user_id":    e.UserID,
		"case_id":    e.CaseID,
		"error":      e.Err.Error(),
		"error_code": CodeSpinFailed,
	}
}

// NewSpinFailedError wraps err as a spin failure
func NewSpinFailedError(userID int64, caseID string, err error) error {
	return &SpinFailedError{UserID: userID, CaseID: caseID, Err: err}
}

// LogFielder is implemented by errors that carry structured logging fields
type LogFielder interface {
	LogFields() map[string]any
}

// LogFieldsOf returns the structured fields of err, or a plain error field
func LogFieldsOf(err error) map[string]any {
	var lf LogFielder
	if errors.As(err, &lf) {
		return lf.LogFields()
	}
	return map[string]any{
		"error":      err.Error(),
		"error_code": ErrorCode(err),
	}
}

// IsInsufficientBalanceError checks if the error is related to insufficient balance
func IsInsufficientBalanceError(err error) bool {
	return errors.Is(err, ErrInsufficientBalance)
}

// IsUserNotFoundError checks if the error is a user not found error
func IsUserNotFoundError(err error) bool {
	return errors.Is(err, ErrUserNotFound)
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrTransactionNotFound) ||
		errors.Is(err, ErrRequestNotFound)
}

// IsValidationError reports errors rejected before any state was touched
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidAmount) ||
		errors.Is(err, ErrInvalidUserID) ||
		errors.Is(err, ErrBelowMinimum) ||
		errors.Is(err, ErrInvalidPrizeType) ||
		errors.Is(err, ErrInvalidCase) ||
		errors.Is(err, ErrInvalidStatus) ||
		errors.Is(err, ErrInvalidChargeID) ||
		errors.Is(err, ErrInvalidRequest)
}

// IsStateConflictError reports errors caused by the current ledger state
func IsStateConflictError(err error) bool {
	return errors.Is(err, ErrInsufficientBalance) ||
		errors.Is(err, ErrInsufficientTickets) ||
		errors.Is(err, ErrNegativeBalance) ||
		errors.Is(err, ErrLotExhausted) ||
		errors.Is(err, ErrNoBuybackPrice) ||
		errors.Is(err, ErrNotTicketLot) ||
		errors.Is(err, ErrNoEligiblePrize) ||
		errors.Is(err, ErrUnknownCase) ||
		errors.Is(err, ErrInvalidStatusTransition)
}

// IsUserLockedError checks if the error is related to a locked user
func IsUserLockedError(err error) bool {
	return errors.Is(err, ErrUserLocked)
}
