package domain

import (
	"errors"
	"fmt"
)

// Error kinds. Every business failure unwraps to exactly one of these.
var (
	// ErrNotFound is returned when a referenced user, account or profile does not exist.
	ErrNotFound = errors.New("resource not found")
	// ErrAlreadyExists is returned by the store when a unique constraint is violated.
	ErrAlreadyExists = errors.New("resource already exists")
	// ErrInvalidArgument is returned when an amount, balance, salary, age or pair of accounts is out of range.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrInvalidState is returned when a closed account takes part in a transfer.
	ErrInvalidState = errors.New("invalid state")
	// ErrInsufficientFunds is returned when the source balance cannot cover a transfer.
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrLimitExceeded is returned when a user already owns the maximum number of active accounts.
	ErrLimitExceeded = errors.New("limit exceeded")
	// ErrConflict is returned when a username is already taken.
	ErrConflict = errors.New("conflict")
	// ErrUnauthorized is returned when credentials do not match.
	ErrUnauthorized = errors.New("unauthorized")
)

// Error is a business failure with a caller-facing message.
type Error struct {
	Kind    error
	Message string
}

// NewError creates an Error of the given kind.
func NewError(kind error, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Kind
}

// Message returns the caller-facing message of the first *Error in err's chain,
// or the empty string when there is none.
func Message(err error) string {
	var de *Error
	if errors.As(err, &de) {
		return de.Message
	}
	return ""
}
