// Package audit logs every committed domain event.
package audit

import (
	"context"
	"log/slog"

	"github.com/amirasaad/banking/pkg/domain/events"
	"github.com/amirasaad/banking/pkg/eventbus"
)

// HandleEvent returns a handler that writes one audit record per event.
func HandleEvent(logger *slog.Logger) eventbus.HandlerFunc {
	logger = logger.With("component", "audit")
	return func(ctx context.Context, e events.Event) error {
		attrs := []any{"event_type", e.Type()}
		switch ev := e.(type) {
		case events.AccountOpened:
			attrs = append(attrs, "event_id", ev.ID, "account_id", ev.AccountID,
				"user_id", ev.UserID, "number", ev.Number, "balance", ev.Balance)
		case events.AccountClosed:
			attrs = append(attrs, "event_id", ev.ID, "account_id", ev.AccountID, "number", ev.Number)
		case events.FundsTransferred:
			attrs = append(attrs, "event_id", ev.ID, "transaction_id", ev.TransactionID,
				"source", ev.SourceNumber, "destination", ev.DestinationNumber, "amount", ev.Amount)
		case events.UserRegistered:
			attrs = append(attrs, "event_id", ev.ID, "user_id", ev.UserID, "username", ev.Username)
		case events.KYCProfileSaved:
			attrs = append(attrs, "event_id", ev.ID, "user_id", ev.UserID, "created", ev.Created)
		}
		logger.InfoContext(ctx, "audit", attrs...)
		return nil
	}
}
