package cache

import (
	"context"
	"time"

	"github.com/amirasaad/banking/pkg/domain/kyc"
	"github.com/google/uuid"
)

// KYCCache caches KYC profiles by owning user.
// Get returns (nil, nil) on a miss.
type KYCCache interface {
	Get(ctx context.Context, userID uuid.UUID) (*kyc.Profile, error)
	Set(ctx context.Context, p *kyc.Profile, ttl time.Duration) error
	Delete(ctx context.Context, userID uuid.UUID) error
}
