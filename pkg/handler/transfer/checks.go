package transfer

import (
	"context"
	"log/slog"

	"github.com/amirasaad/banking/pkg/domain/account"
	"github.com/amirasaad/banking/pkg/handler"
	"github.com/amirasaad/banking/pkg/repository"
)

// StatusHandler rejects transfers touching a closed account, source first.
type StatusHandler struct {
	handler.BaseHandler[*Request]
	logger *slog.Logger
}

// Handle checks the source status before the destination status.
func (h *StatusHandler) Handle(ctx context.Context, uow repository.UnitOfWork, req *Request) error {
	if !req.Source.IsActive() {
		h.logger.Info("StatusHandler: source closed", "source", req.SourceNumber)
		return account.ErrSourceAccountClosed
	}
	if !req.Destination.IsActive() {
		h.logger.Info("StatusHandler: destination closed", "destination", req.DestinationNumber)
		return account.ErrDestinationAccountClosed
	}
	return h.Next(ctx, uow, req)
}

// FundsHandler checks the locked source balance covers the amount.
type FundsHandler struct {
	handler.BaseHandler[*Request]
	logger *slog.Logger
}

// Handle compares the locked source balance with the amount.
func (h *FundsHandler) Handle(ctx context.Context, uow repository.UnitOfWork, req *Request) error {
	if req.Source.Balance.LessThan(req.Amount) {
		h.logger.Info("FundsHandler: insufficient balance",
			"source", req.SourceNumber, "balance", req.Source.Balance, "amount", req.Amount)
		return account.ErrInsufficientFunds
	}
	return h.Next(ctx, uow, req)
}

// AmountHandler rejects zero and negative amounts.
type AmountHandler struct {
	handler.BaseHandler[*Request]
	logger *slog.Logger
}

// Handle fails unless the amount is strictly positive.
func (h *AmountHandler) Handle(ctx context.Context, uow repository.UnitOfWork, req *Request) error {
	if !req.Amount.IsPositive() {
		h.logger.Info("AmountHandler: amount not positive", "amount", req.Amount)
		return account.ErrAmountNotPositive
	}
	return h.Next(ctx, uow, req)
}

// DistinctHandler rejects a transfer from an account to itself.
type DistinctHandler struct {
	handler.BaseHandler[*Request]
	logger *slog.Logger
}

// Handle compares the two account numbers.
func (h *DistinctHandler) Handle(ctx context.Context, uow repository.UnitOfWork, req *Request) error {
	if req.SourceNumber == req.DestinationNumber {
		h.logger.Info("DistinctHandler: same account", "number", req.SourceNumber)
		return account.ErrSameAccount
	}
	return h.Next(ctx, uow, req)
}
