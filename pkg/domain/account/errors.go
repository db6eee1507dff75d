package account

import (
	"errors"

	"github.com/amirasaad/banking/pkg/domain"
)

var (
	// ErrInitialBalanceOutOfRange is returned when an account is opened outside [MinInitialBalance, MaxInitialBalance].
	ErrInitialBalanceOutOfRange = domain.NewError(domain.ErrInvalidArgument,
		"Initial balance must be between 10 and 1,000,000 KD")

	// ErrActiveAccountLimit is returned when the owner already has MaxActiveAccountsPerUser active accounts.
	ErrActiveAccountLimit = domain.NewError(domain.ErrLimitExceeded,
		"user has reached the maximum limit of %d active accounts", MaxActiveAccountsPerUser)

	ErrSourceAccountClosed      = domain.NewError(domain.ErrInvalidState, "source account is closed")
	ErrDestinationAccountClosed = domain.NewError(domain.ErrInvalidState, "destination account is closed")

	// ErrInsufficientFunds is returned when the source balance is lower than the transfer amount.
	ErrInsufficientFunds = domain.NewError(domain.ErrInsufficientFunds,
		"insufficient balance, source account has less than required transfer amount")

	ErrAmountNotPositive = domain.NewError(domain.ErrInvalidArgument, "amount must be positive")

	// ErrSameAccount is returned when source and destination numbers are equal.
	ErrSameAccount = domain.NewError(domain.ErrInvalidArgument, "you can't transfer to the same account...")

	// ErrMalformedNumber is returned when an account number is not "77" followed by 12 digits.
	ErrMalformedNumber = errors.New("malformed account number")
)

// NumberNotFound is returned by CloseAccount for an unknown number.
func NumberNotFound(number string) error {
	return domain.NewError(domain.ErrNotFound, "account number %s does not exist", number)
}

func SourceNotFound(number string) error {
	return domain.NewError(domain.ErrNotFound, "source account number %s was not found", number)
}

func DestinationNotFound(number string) error {
	return domain.NewError(domain.ErrNotFound, "destination account number %s was not found", number)
}
