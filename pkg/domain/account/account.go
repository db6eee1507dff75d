package account

import (
	"errors"
	"time"

	"github.com/amirasaad/banking/pkg/domain/money"
	"github.com/google/uuid"
)

// MaxActiveAccountsPerUser is the number of simultaneously active accounts a user may own.
const MaxActiveAccountsPerUser = 5

var (
	// MinInitialBalance is the smallest balance an account may be opened with.
	MinInitialBalance = money.FromInt(10)
	// MaxInitialBalance is the largest balance an account may be opened with.
	MaxInitialBalance = money.FromInt(1_000_000)
)

// Status is the lifecycle state of an account.
type Status string

const (
	StatusActive Status = "active"
	StatusClosed Status = "closed"
)

// Account is a user's ledger account.
//
// Invariants:
//   - An account always has an owner (UserID) and a well-formed Number.
//   - Closed accounts are never reopened.
//   - The balance only changes through Debit and Credit, after the transfer checks have passed.
type Account struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	Number    string
	Balance   money.Amount
	Status    Status
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Builder provides a fluent API for constructing Account instances.
type Builder struct {
	id        uuid.UUID
	userID    uuid.UUID
	name      string
	number    string
	balance   money.Amount
	status    Status
	createdAt time.Time
	updatedAt time.Time
}

// New creates a Builder for a fresh active account with a new ID.
func New() *Builder {
	now := time.Now().UTC()
	return &Builder{
		id:        uuid.New(),
		status:    StatusActive,
		balance:   money.Zero,
		createdAt: now,
		updatedAt: now,
	}
}

func (b *Builder) WithID(id uuid.UUID) *Builder {
	b.id = id
	return b
}

// WithUserID sets the owner. Mandatory.
func (b *Builder) WithUserID(userID uuid.UUID) *Builder {
	b.userID = userID
	return b
}

func (b *Builder) WithName(name string) *Builder {
	b.name = name
	return b
}

// WithNumber sets the 14 digit account number. Mandatory.
func (b *Builder) WithNumber(number string) *Builder {
	b.number = number
	return b
}

func (b *Builder) WithBalance(balance money.Amount) *Builder {
	b.balance = balance
	return b
}

func (b *Builder) WithStatus(status Status) *Builder {
	b.status = status
	return b
}

// WithCreatedAt is used when hydrating from the store.
func (b *Builder) WithCreatedAt(t time.Time) *Builder {
	b.createdAt = t
	return b
}

// WithUpdatedAt is used when hydrating from the store.
func (b *Builder) WithUpdatedAt(t time.Time) *Builder {
	b.updatedAt = t
	return b
}

// Build validates the collected fields and returns the Account.
func (b *Builder) Build() (*Account, error) {
	if b.userID == uuid.Nil {
		return nil, errors.New("userID is required")
	}
	if !IsValidNumber(b.number) {
		return nil, ErrMalformedNumber
	}
	if b.status != StatusActive && b.status != StatusClosed {
		return nil, errors.New("unknown account status")
	}
	return &Account{
		ID:        b.id,
		UserID:    b.userID,
		Name:      b.name,
		Number:    b.number,
		Balance:   b.balance,
		Status:    b.status,
		CreatedAt: b.createdAt,
		UpdatedAt: b.updatedAt,
	}, nil
}

// IsActive reports whether the account can be listed and take part in transfers.
func (a *Account) IsActive() bool {
	return a.Status == StatusActive
}

// Close marks the account closed. Closing a closed account is a no-op.
func (a *Account) Close() {
	if a.Status == StatusClosed {
		return
	}
	a.Status = StatusClosed
	a.UpdatedAt = time.Now().UTC()
}

// Debit subtracts amount from the balance.
func (a *Account) Debit(amount money.Amount) {
	a.Balance = a.Balance.Sub(amount)
	a.UpdatedAt = time.Now().UTC()
}

// Credit adds amount to the balance.
func (a *Account) Credit(amount money.Amount) {
	a.Balance = a.Balance.Add(amount)
	a.UpdatedAt = time.Now().UTC()
}

// ValidateInitialBalance checks the opening balance bounds.
func ValidateInitialBalance(balance money.Amount) error {
	if !balance.Between(MinInitialBalance, MaxInitialBalance) {
		return ErrInitialBalanceOutOfRange
	}
	return nil
}
