package transfer

import (
	"context"
	"errors"
	"log/slog"

	"github.com/amirasaad/banking/pkg/domain"
	"github.com/amirasaad/banking/pkg/domain/account"
	"github.com/amirasaad/banking/pkg/handler"
	"github.com/amirasaad/banking/pkg/repository"
)

// LookupHandler resolves both account numbers. The source is checked first.
type LookupHandler struct {
	handler.BaseHandler[*Request]
	logger *slog.Logger
}

// Handle loads the source, then the destination.
func (h *LookupHandler) Handle(ctx context.Context, uow repository.UnitOfWork, req *Request) error {
	logger := h.logger.With("source", req.SourceNumber, "destination", req.DestinationNumber)

	repo, err := uow.AccountRepository()
	if err != nil {
		logger.Error("LookupHandler failed: repository error", "error", err)
		return err
	}

	src, err := repo.GetByNumber(ctx, req.SourceNumber)
	if errors.Is(err, domain.ErrNotFound) {
		logger.Info("LookupHandler: source account not found")
		return account.SourceNotFound(req.SourceNumber)
	}
	if err != nil {
		logger.Error("LookupHandler failed: source lookup error", "error", err)
		return err
	}

	dst, err := repo.GetByNumber(ctx, req.DestinationNumber)
	if errors.Is(err, domain.ErrNotFound) {
		logger.Info("LookupHandler: destination account not found")
		return account.DestinationNotFound(req.DestinationNumber)
	}
	if err != nil {
		logger.Error("LookupHandler failed: destination lookup error", "error", err)
		return err
	}

	req.Source, req.Destination = src, dst
	return h.Next(ctx, uow, req)
}
