package kyc

import (
	"context"

	"github.com/amirasaad/banking/pkg/domain/kyc"
	"github.com/google/uuid"
)

// Repository defines data access for KYC profiles.
type Repository interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*kyc.Profile, error)

	// Save inserts the profile or updates it in place when its ID already exists.
	Save(ctx context.Context, p *kyc.Profile) error
}
