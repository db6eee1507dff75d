package kyc

import (
	"github.com/amirasaad/banking/pkg/domain/kyc"
	"github.com/amirasaad/banking/pkg/domain/money"
	"github.com/google/uuid"
)

// UpsertProfileRequest represents the request body for saving a KYC profile.
type UpsertProfileRequest struct {
	UserID      uuid.UUID    `json:"userId" validate:"required" swaggertype:"string" format:"uuid"`
	FirstName   string       `json:"firstName" validate:"max=100" example:"Jane"`
	LastName    string       `json:"lastName" validate:"max=100" example:"Doe"`
	DateOfBirth kyc.Date     `json:"dateOfBirth" validate:"required" swaggertype:"string" example:"1990-04-23"`
	Salary      money.Amount `json:"salary" swaggertype:"number" example:"1500.000"`
}

// Details maps the request onto the domain input.
func (r UpsertProfileRequest) Details() kyc.Details {
	return kyc.Details{
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		DateOfBirth: r.DateOfBirth,
		Salary:      r.Salary,
	}
}

// ProfileResponse is the API representation of a KYC profile.
type ProfileResponse struct {
	UserID      uuid.UUID    `json:"userId" swaggertype:"string" format:"uuid"`
	FirstName   string       `json:"firstName"`
	LastName    string       `json:"lastName"`
	DateOfBirth kyc.Date     `json:"dateOfBirth" swaggertype:"string" example:"1990-04-23"`
	Salary      money.Amount `json:"salary" swaggertype:"number" example:"1500.000"`
}

// ToProfileResponse maps a domain profile to its API form.
func ToProfileResponse(p *kyc.Profile) ProfileResponse {
	return ProfileResponse{
		UserID:      p.UserID,
		FirstName:   p.FirstName,
		LastName:    p.LastName,
		DateOfBirth: p.DateOfBirth,
		Salary:      p.Salary,
	}
}
