package transaction

import (
	"context"

	"github.com/amirasaad/banking/pkg/domain/account"
	"github.com/google/uuid"
)

// Repository is the append-only transfer ledger.
type Repository interface {
	Create(ctx context.Context, tx *account.Transaction) error

	// ListByAccount returns entries where the account is source or destination, newest first.
	ListByAccount(ctx context.Context, accountID uuid.UUID) ([]*account.Transaction, error)
}
