// Package transfer implements the transfer pipeline: one handler per ordered
// check, followed by persistence. The first failing check ends the chain.
package transfer

import (
	"github.com/amirasaad/banking/pkg/domain/account"
	"github.com/amirasaad/banking/pkg/domain/money"
	"github.com/amirasaad/banking/pkg/handler"
)

// Request carries a transfer through the chain. Handlers fill in the
// resolved accounts and, on success, the ledger entry.
type Request struct {
	SourceNumber      string
	DestinationNumber string
	Amount            money.Amount

	Source      *account.Account
	Destination *account.Account
	Transaction *account.Transaction
}

// Handler is a link of the transfer chain.
type Handler = handler.Handler[*Request]
