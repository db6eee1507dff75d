package transfer

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/amirasaad/banking/pkg/domain/account"
	"github.com/amirasaad/banking/pkg/handler"
	"github.com/amirasaad/banking/pkg/repository"
)

// PersistenceHandler moves the money and appends the ledger entry. Both
// balance updates happen before the transaction row is written.
type PersistenceHandler struct {
	handler.BaseHandler[*Request]
	logger *slog.Logger
}

// Handle debits, credits, saves both accounts and records the transaction.
func (h *PersistenceHandler) Handle(ctx context.Context, uow repository.UnitOfWork, req *Request) error {
	logger := h.logger.With("source", req.SourceNumber, "destination", req.DestinationNumber)

	repo, err := uow.AccountRepository()
	if err != nil {
		logger.Error("PersistenceHandler failed: AccountRepository error", "error", err)
		return err
	}
	txRepo, err := uow.TransactionRepository()
	if err != nil {
		logger.Error("PersistenceHandler failed: TransactionRepository error", "error", err)
		return err
	}

	req.Source.Debit(req.Amount)
	req.Destination.Credit(req.Amount)

	if err := repo.Update(ctx, req.Source); err != nil {
		logger.Error("PersistenceHandler failed: source account update error", "error", err)
		return fmt.Errorf("update source account: %w", err)
	}
	if err := repo.Update(ctx, req.Destination); err != nil {
		logger.Error("PersistenceHandler failed: destination account update error", "error", err)
		return fmt.Errorf("update destination account: %w", err)
	}

	tx := account.NewTransaction(req.Source, req.Destination, req.Amount)
	if err := txRepo.Create(ctx, tx); err != nil {
		logger.Error("PersistenceHandler failed: transaction create error", "error", err)
		return fmt.Errorf("record transaction: %w", err)
	}
	req.Transaction = tx

	logger.Info("PersistenceHandler: transfer persisted", "transaction_id", tx.ID, "amount", req.Amount)
	return h.Next(ctx, uow, req)
}
