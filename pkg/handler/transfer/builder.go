package transfer

import (
	"log/slog"

	"github.com/amirasaad/banking/pkg/handler"
)

// ChainBuilder builds the transfer chain.
type ChainBuilder struct {
	logger *slog.Logger
}

// NewChainBuilder returns a builder whose handlers log with logger.
func NewChainBuilder(logger *slog.Logger) *ChainBuilder {
	return &ChainBuilder{logger: logger.With("chain", "transfer")}
}

// Build returns the head of the chain:
// lookup, lock, status, funds, amount, distinct, persistence.
func (b *ChainBuilder) Build() Handler {
	return handler.Chain[*Request](
		&LookupHandler{logger: b.logger},
		&LockHandler{logger: b.logger},
		&StatusHandler{logger: b.logger},
		&FundsHandler{logger: b.logger},
		&AmountHandler{logger: b.logger},
		&DistinctHandler{logger: b.logger},
		&PersistenceHandler{logger: b.logger},
	)
}
