package cache

import (
	"time"

	"github.com/amirasaad/banking/pkg/domain/kyc"
	"github.com/amirasaad/banking/pkg/domain/money"
	"github.com/google/uuid"
)

// profileEntry is the cached form of a profile. Unlike the API form it keeps the row id.
type profileEntry struct {
	ID          uuid.UUID    `json:"id"`
	UserID      uuid.UUID    `json:"user_id"`
	FirstName   string       `json:"first_name"`
	LastName    string       `json:"last_name"`
	DateOfBirth kyc.Date     `json:"date_of_birth"`
	Salary      money.Amount `json:"salary"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

func toEntry(p *kyc.Profile) profileEntry {
	return profileEntry{
		ID:          p.ID,
		UserID:      p.UserID,
		FirstName:   p.FirstName,
		LastName:    p.LastName,
		DateOfBirth: p.DateOfBirth,
		Salary:      p.Salary,
		UpdatedAt:   p.UpdatedAt,
	}
}

func (e profileEntry) profile() *kyc.Profile {
	return &kyc.Profile{
		ID:          e.ID,
		UserID:      e.UserID,
		FirstName:   e.FirstName,
		LastName:    e.LastName,
		DateOfBirth: e.DateOfBirth,
		Salary:      e.Salary,
		UpdatedAt:   e.UpdatedAt,
	}
}
