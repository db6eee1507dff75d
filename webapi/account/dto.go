package account

import (
	"time"

	"github.com/amirasaad/banking/pkg/domain/account"
	"github.com/amirasaad/banking/pkg/domain/money"
	"github.com/google/uuid"
)

// CreateAccountRequest represents the request body for opening an account.
type CreateAccountRequest struct {
	UserID         uuid.UUID    `json:"userId" validate:"required" swaggertype:"string" format:"uuid"`
	InitialBalance money.Amount `json:"initialBalance" swaggertype:"number" example:"777.777"`
	Name           string       `json:"name" validate:"max=255" example:"savings"`
}

// TransferRequest represents the request body for moving funds between two accounts.
type TransferRequest struct {
	SourceAccountNumber      string       `json:"sourceAccountNumber" validate:"required" example:"77123456789012"`
	DestinationAccountNumber string       `json:"destinationAccountNumber" validate:"required" example:"77987654321098"`
	Amount                   money.Amount `json:"amount" swaggertype:"number" example:"50.000"`
}

// Summary is the API representation of an active account.
type Summary struct {
	UserID        uuid.UUID    `json:"userId" swaggertype:"string" format:"uuid"`
	Balance       money.Amount `json:"balance" swaggertype:"number" example:"777.777"`
	AccountNumber string       `json:"accountNumber" example:"77123456789012"`
	Name          string       `json:"name"`
}

// ListResponse wraps the active accounts.
type ListResponse struct {
	Accounts []Summary `json:"accounts"`
}

// TransferResponse carries the source balance after a transfer.
type TransferResponse struct {
	NewBalance money.Amount `json:"newBalance" swaggertype:"number" example:"50.000"`
}

// TransactionDTO is the API representation of a ledger entry.
type TransactionDTO struct {
	ID                   uuid.UUID    `json:"id" swaggertype:"string" format:"uuid"`
	SourceAccountID      uuid.UUID    `json:"sourceAccountId" swaggertype:"string" format:"uuid"`
	DestinationAccountID uuid.UUID    `json:"destinationAccountId" swaggertype:"string" format:"uuid"`
	Amount               money.Amount `json:"amount" swaggertype:"number"`
	CreatedAt            string       `json:"createdAt"`
}

// HistoryResponse wraps the ledger entries of one account.
type HistoryResponse struct {
	Transactions []TransactionDTO `json:"transactions"`
}

// ToSummary maps a domain account to its API summary.
func ToSummary(a *account.Account) Summary {
	return Summary{
		UserID:        a.UserID,
		Balance:       a.Balance,
		AccountNumber: a.Number,
		Name:          a.Name,
	}
}

// ToSummaries maps accounts to summaries. The result is never nil.
func ToSummaries(accounts []*account.Account) []Summary {
	out := make([]Summary, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, ToSummary(a))
	}
	return out
}

// ToTransactionDTOs maps ledger entries to their API form.
func ToTransactionDTOs(txs []*account.Transaction) []TransactionDTO {
	out := make([]TransactionDTO, 0, len(txs))
	for _, tx := range txs {
		out = append(out, TransactionDTO{
			ID:                   tx.ID,
			SourceAccountID:      tx.SourceAccountID,
			DestinationAccountID: tx.DestinationAccountID,
			Amount:               tx.Amount,
			CreatedAt:            tx.CreatedAt.Format(time.RFC3339),
		})
	}
	return out
}
