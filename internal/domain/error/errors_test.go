package error

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorCode(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"InsufficientBalance", ErrInsufficientBalance, CodeInsufficientBalance},
		{"InsufficientTickets", ErrInsufficientTickets, CodeInsufficientTickets},
		{"InvalidAmount", ErrInvalidAmount, CodeInvalidAmount},
		{"InvalidUserID", ErrInvalidUserID, CodeInvalidUserID},
		{"BelowMinimum", NewBelowMinimumError(1000, 10), CodeBelowMinimum},
		{"LotExhausted", ErrLotExhausted, CodeLotExhausted},
		{"NoEligiblePrize", ErrNoEligiblePrize, CodeNoEligiblePrize},
		{"UserNotFound", ErrUserNotFound, CodeUserNotFound},
		{"UserLocked", ErrUserLocked, CodeUserLocked},
		{"ShuttingDown", ErrShuttingDown, CodeShuttingDown},
		{"UnknownError", errors.New("unknown error"), CodeInternalServer},
		{"WrappedError", fmt.Errorf("wrapped: %w", ErrInvalidUserID), CodeInvalidUserID},
		{"SpinFailedWrapsCause", NewSpinFailedError(1, "r1", errors.New("disk full")), CodeSpinFailed},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			code := ErrorCode(tc.err)
			if code != tc.expected {
				t.Errorf("ErrorCode(%v) = %d, want %d", tc.err, code, tc.expected)
			}
		})
	}
}

func TestInsufficientBalanceError(t *testing.T) {
	err := NewInsufficientBalanceError(789, 300, 150)

	expectedErrMsg := "insufficient balance for user 789: required 300, available 150"
	if err.Error() != expectedErrMsg {
		t.Errorf("InsufficientBalanceError.Error() = %s, want %s", err.Error(), expectedErrMsg)
	}

	if !errors.Is(err, ErrInsufficientBalance) {
		t.Errorf("errors.Is(err, ErrInsufficientBalance) = false, want true")
	}
	if !IsInsufficientBalanceError(fmt.Errorf("spin: %w", err)) {
		t.Errorf("IsInsufficientBalanceError(wrapped) = false, want true")
	}

	fields := LogFieldsOf(err)
	if fields["required"] != int64(300) || fields["error_code"] != CodeInsufficientBalance {
		t.Errorf("LogFieldsOf(err) = %v", fields)
	}
}

func TestInsufficientTicketsError(t *testing.T) {
	err := NewInsufficientTicketsError(5, "bracelet", 5, 2)

	if !errors.Is(err, ErrInsufficientTickets) {
		t.Errorf("errors.Is(err, ErrInsufficientTickets) = false, want true")
	}
	if errors.Is(err, ErrInsufficientBalance) {
		t.Errorf("errors.Is(err, ErrInsufficientBalance) = true, want false")
	}
	if LogFieldsOf(err)["ticket_kind"] != "bracelet" {
		t.Errorf("ticket_kind field missing")
	}
}

func TestSpinFailedError(t *testing.T) {
	cause := fmt.Errorf("%w: insert", ErrDatabaseConnection)
	err := NewSpinFailedError(42, "r1", cause)

	if !errors.Is(err, ErrSpinFailed) {
		t.Errorf("errors.Is(err, ErrSpinFailed) = false, want true")
	}
	if !errors.Is(err, ErrDatabaseConnection) {
		t.Errorf("errors.Is(err, ErrDatabaseConnection) = false, want true")
	}

	var spinErr *SpinFailedError
	if !errors.As(err, &spinErr) {
		t.Fatalf("errors.As failed: not a *SpinFailedError")
	}
	if spinErr.CaseID != "r1" || spinErr.UserID != 42 {
		t.Errorf("SpinFailedError = %+v", spinErr)
	}
}

func TestLogFieldsOfPlainError(t *testing.T) {
	fields := LogFieldsOf(ErrLotExhausted)
	if fields["error"] != ErrLotExhausted.Error() {
		t.Errorf("error field = %v", fields["error"])
	}
	if fields["error_code"] != CodeLotExhausted {
		t.Errorf("error_code field = %v", fields["error_code"])
	}
}

func TestErrorClasses(t *testing.T) {
	validation := []error{ErrInvalidAmount, ErrInvalidPrizeType, ErrInvalidCase, NewBelowMinimumError(1000, 1)}
	for _, err := range validation {
		if !IsValidationError(err) {
			t.Errorf("IsValidationError(%v) = false, want true", err)
		}
		if IsStateConflictError(err) {
			t.Errorf("IsStateConflictError(%v) = true, want false", err)
		}
	}

	conflicts := []error{
		NewInsufficientBalanceError(1, 2, 1),
		ErrLotExhausted,
		ErrNoBuybackPrice,
		ErrNoEligiblePrize,
		ErrInvalidStatusTransition,
	}
	for _, err := range conflicts {
		if !IsStateConflictError(err) {
			t.Errorf("IsStateConflictError(%v) = false, want true", err)
		}
	}

	if !IsNotFoundError(ErrRequestNotFound) || !IsNotFoundError(ErrTransactionNotFound) {
		t.Errorf("IsNotFoundError misses request or transaction not found")
	}
	if IsUserNotFoundError(ErrTransactionNotFound) {
		t.Errorf("IsUserNotFoundError(ErrTransactionNotFound) = true, want false")
	}
	if !IsUserLockedError(fmt.Errorf("%w: spin", ErrUserLocked)) {
		t.Errorf("IsUserLockedError(wrapped) = false, want true")
	}
}
