package account

import (
	"time"

	"github.com/amirasaad/banking/pkg/domain/money"
	"github.com/google/uuid"
)

// Transaction is an immutable ledger entry for a completed transfer.
type Transaction struct {
	ID                   uuid.UUID
	SourceAccountID      uuid.UUID
	DestinationAccountID uuid.UUID
	Amount               money.Amount
	CreatedAt            time.Time
}

// NewTransaction records a transfer between the given (already updated) accounts.
func NewTransaction(source, destination *Account, amount money.Amount) *Transaction {
	return &Transaction{
		ID:                   uuid.New(),
		SourceAccountID:      source.ID,
		DestinationAccountID: destination.ID,
		Amount:               amount,
		CreatedAt:            time.Now().UTC(),
	}
}

// NewTransactionFromData creates a Transaction from stored data (DB hydration or fixtures).
func NewTransactionFromData(
	id, sourceID, destinationID uuid.UUID,
	amount money.Amount,
	created time.Time,
) *Transaction {
	return &Transaction{
		ID:                   id,
		SourceAccountID:      sourceID,
		DestinationAccountID: destinationID,
		Amount:               amount,
		CreatedAt:            created,
	}
}
