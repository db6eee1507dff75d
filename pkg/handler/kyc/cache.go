// Package kyc holds the listeners reacting to KYC profile events.
package kyc

import (
	"context"
	"log/slog"

	"github.com/amirasaad/banking/pkg/cache"
	"github.com/amirasaad/banking/pkg/domain/events"
	"github.com/amirasaad/banking/pkg/eventbus"
)

// HandleProfileSaved evicts the cached profile of the saved user so the next
// read goes to the store.
func HandleProfileSaved(c cache.KYCCache, logger *slog.Logger) eventbus.HandlerFunc {
	return func(ctx context.Context, e events.Event) error {
		saved, ok := e.(events.KYCProfileSaved)
		if !ok {
			logger.Error("HandleProfileSaved: unexpected event type", "event", e.Type())
			return nil
		}
		if err := c.Delete(ctx, saved.UserID); err != nil {
			logger.Error("HandleProfileSaved: cache eviction failed", "user_id", saved.UserID, "error", err)
			return err
		}
		return nil
	}
}
