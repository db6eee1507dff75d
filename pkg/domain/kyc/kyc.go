// Package kyc holds the identity and eligibility profile attached to a user.
package kyc

import (
	"time"

	"github.com/amirasaad/banking/pkg/domain"
	"github.com/amirasaad/banking/pkg/domain/money"
	"github.com/google/uuid"
)

// MinAge is the minimum age in whole years for a profile to be accepted.
const MinAge = 18

var (
	// MinSalary is the lowest accepted salary.
	MinSalary = money.FromInt(100)
	// MaxSalary is the highest accepted salary.
	MaxSalary = money.FromInt(1_000_000)
)

var (
	ErrUnderage         = domain.NewError(domain.ErrInvalidArgument, "you must be 18 or older to register")
	ErrSalaryOutOfRange = domain.NewError(domain.ErrInvalidArgument, "salary must be between 100 and 1,000,000 KD")
)

// Profile is the KYC record of a user. There is at most one per user.
type Profile struct {
	ID          uuid.UUID    `json:"-"`
	UserID      uuid.UUID    `json:"userId"`
	FirstName   string       `json:"firstName"`
	LastName    string       `json:"lastName"`
	DateOfBirth Date         `json:"dateOfBirth"`
	Salary      money.Amount `json:"salary"`
	UpdatedAt   time.Time    `json:"-"`
}

// Details are the caller-supplied fields of a profile.
type Details struct {
	FirstName   string
	LastName    string
	DateOfBirth Date
	Salary      money.Amount
}

// Validate checks the age and salary rules against the given current time.
func (d Details) Validate(now time.Time) error {
	if d.DateOfBirth.YearsUntil(now) < MinAge {
		return ErrUnderage
	}
	if !d.Salary.Between(MinSalary, MaxSalary) {
		return ErrSalaryOutOfRange
	}
	return nil
}

// NewProfile creates an empty profile for userID.
func NewProfile(userID uuid.UUID) *Profile {
	return &Profile{ID: uuid.New(), UserID: userID}
}

// Apply replaces the profile fields in place.
func (p *Profile) Apply(d Details) {
	p.FirstName = d.FirstName
	p.LastName = d.LastName
	p.DateOfBirth = d.DateOfBirth
	p.Salary = d.Salary
	p.UpdatedAt = time.Now().UTC()
}

// NotFound is returned when userID has no profile.
func NotFound(userID uuid.UUID) error {
	return domain.NewError(domain.ErrNotFound, "KYC profile for user %s was not found", userID)
}
