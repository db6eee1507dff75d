package transfer

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/amirasaad/banking/pkg/handler"
	"github.com/amirasaad/banking/pkg/repository"
)

// LockHandler re-reads both accounts with row locks, in ascending id order,
// and replaces the request snapshots with the locked ones. Every later check
// sees balances and statuses that cannot change until commit.
type LockHandler struct {
	handler.BaseHandler[*Request]
	logger *slog.Logger
}

// Handle locks both rows in ascending id order.
func (h *LockHandler) Handle(ctx context.Context, uow repository.UnitOfWork, req *Request) error {
	repo, err := uow.AccountRepository()
	if err != nil {
		h.logger.Error("LockHandler failed: repository error", "error", err)
		return err
	}

	locked, err := repo.LockByIDs(ctx, req.Source.ID, req.Destination.ID)
	if err != nil {
		h.logger.Error("LockHandler failed: lock error", "error", err)
		return fmt.Errorf("lock accounts: %w", err)
	}
	for _, acc := range locked {
		if acc.ID == req.Source.ID {
			req.Source = acc
		}
		if acc.ID == req.Destination.ID {
			req.Destination = acc
		}
	}
	return h.Next(ctx, uow, req)
}
