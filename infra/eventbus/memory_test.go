package eventbus

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/amirasaad/banking/pkg/domain/events"
	"github.com/amirasaad/banking/pkg/domain/money"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBus() *MemoryEventBus {
	return NewWithMemory(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestMemoryEventBus_DispatchesByType(t *testing.T) {
	bus := newTestBus()
	var opened, closed int
	bus.Register(events.EventTypeAccountOpened, func(ctx context.Context, e events.Event) error {
		opened++
		evt, ok := e.(events.AccountOpened)
		require.True(t, ok)
		assert.Equal(t, "77000000000001", evt.Number)
		return nil
	})
	bus.Register(events.EventTypeAccountClosed, func(ctx context.Context, e events.Event) error {
		closed++
		return nil
	})

	err := bus.Emit(context.Background(), events.NewAccountOpened(uuid.New(), uuid.New(), "77000000000001", money.FromInt(10)))
	require.NoError(t, err)

	assert.Equal(t, 1, opened)
	assert.Equal(t, 0, closed)
	assert.Len(t, bus.Published(), 1)
}

func TestMemoryEventBus_AllHandlersRunOnError(t *testing.T) {
	bus := newTestBus()
	var calls []string
	bus.Register(events.EventTypeUserRegistered, func(ctx context.Context, e events.Event) error {
		calls = append(calls, "first")
		return errors.New("boom")
	})
	bus.Register(events.EventTypeUserRegistered, func(ctx context.Context, e events.Event) error {
		calls = append(calls, "second")
		return nil
	})

	err := bus.Emit(context.Background(), events.NewUserRegistered(uuid.New(), "testuser"))
	assert.ErrorContains(t, err, "boom")
	assert.Equal(t, []string{"first", "second"}, calls)
}

func TestMemoryEventBus_NoHandlers(t *testing.T) {
	bus := newTestBus()
	assert.NoError(t, bus.Emit(context.Background(), events.NewAccountClosed(uuid.New(), "77000000000001")))

	bus.ClearPublished()
	assert.Empty(t, bus.Published())
}
