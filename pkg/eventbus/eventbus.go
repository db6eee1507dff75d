package eventbus

import (
	"context"

	"github.com/amirasaad/banking/pkg/domain/events"
)

// HandlerFunc processes a single event.
type HandlerFunc func(ctx context.Context, event events.Event) error

// Bus dispatches domain events to registered handlers.
type Bus interface {
	Register(eventType events.EventType, handler HandlerFunc)
	Emit(ctx context.Context, event events.Event) error
}
