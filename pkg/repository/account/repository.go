package account

import (
	"context"

	"github.com/amirasaad/banking/pkg/domain/account"
	"github.com/google/uuid"
)

// Repository defines data access for accounts.
// Lookups return domain.ErrNotFound when nothing matches.
type Repository interface {
	// Create inserts a new account. A duplicate account number yields domain.ErrAlreadyExists.
	Create(ctx context.Context, acc *account.Account) error

	// Update persists balance, status and name of an existing account.
	Update(ctx context.Context, acc *account.Account) error

	Get(ctx context.Context, id uuid.UUID) (*account.Account, error)

	GetByNumber(ctx context.Context, number string) (*account.Account, error)

	ExistsByNumber(ctx context.Context, number string) (bool, error)

	// ListActive returns every active account.
	ListActive(ctx context.Context) ([]*account.Account, error)

	CountActiveByUser(ctx context.Context, userID uuid.UUID) (int64, error)

	// LockByIDs re-reads the given accounts with row locks held until the
	// surrounding transaction ends. Locks are acquired in ascending id order.
	LockByIDs(ctx context.Context, ids ...uuid.UUID) ([]*account.Account, error)
}
