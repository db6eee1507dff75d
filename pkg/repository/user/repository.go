package user

import (
	"context"

	"github.com/amirasaad/banking/pkg/domain/user"
	"github.com/google/uuid"
)

// Repository defines data access for users.
type Repository interface {
	// Create inserts a user. A duplicate username yields domain.ErrAlreadyExists.
	Create(ctx context.Context, u *user.User) error

	Get(ctx context.Context, id uuid.UUID) (*user.User, error)

	GetByUsername(ctx context.Context, username string) (*user.User, error)

	ExistsByUsername(ctx context.Context, username string) (bool, error)

	// Lock reads the user row FOR UPDATE, serializing per-user writes
	// (account cap, KYC upsert) until the surrounding transaction ends.
	Lock(ctx context.Context, id uuid.UUID) (*user.User, error)
}
