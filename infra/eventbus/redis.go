package eventbus

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/amirasaad/banking/pkg/config"
	"github.com/amirasaad/banking/pkg/domain/events"
	"github.com/amirasaad/banking/pkg/eventbus"
	"github.com/redis/go-redis/v9"
)

type envelope struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// RedisEventBus publishes events to one Redis stream per event type and reads
// them back through a consumer group. Every process sharing a group name
// receives each event once; handlers run on the consumer goroutine.
type RedisEventBus struct {
	client *redis.Client
	group  string
	block  time.Duration
	logger *slog.Logger

	mu       sync.Mutex
	handlers map[string][]eventbus.HandlerFunc

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewWithRedis creates a bus on an already connected client. The bus owns the
// client from now on and closes it in Close.
func NewWithRedis(client *redis.Client, cfg *config.EventBus, logger *slog.Logger) *RedisEventBus {
	group, block := "banking", 5*time.Second
	if cfg != nil {
		if cfg.Group != "" {
			group = cfg.Group
		}
		if cfg.Block > 0 {
			block = cfg.Block
		}
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &RedisEventBus{
		client:   client,
		group:    group,
		block:    block,
		logger:   logger.With("bus", "redis", "group", group),
		handlers: make(map[string][]eventbus.HandlerFunc),
		ctx:      ctx,
		cancel:   cancel,
	}
}

// Emit appends the event to its stream.
func (b *RedisEventBus) Emit(ctx context.Context, event events.Event) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("redis event bus: marshal %s: %w", event.Type(), err)
	}
	env, err := json.Marshal(envelope{Type: event.Type(), Payload: data})
	if err != nil {
		return fmt.Errorf("redis event bus: marshal envelope: %w", err)
	}

	stream := streamNameFor(events.EventType(event.Type()))
	id, err := b.client.XAdd(ctx, &redis.XAddArgs{
		Stream: stream,
		Values: map[string]any{"event": string(env)},
	}).Result()
	if err != nil {
		b.logger.Error("failed to emit event", "event_type", event.Type(), "error", err)
		return fmt.Errorf("redis event bus: emit %s: %w", event.Type(), err)
	}
	b.logger.Debug("event emitted", "event_type", event.Type(), "stream", stream, "id", id)
	return nil
}

// Register adds handler for eventType. The first registration for a type
// creates the consumer group and starts reading the stream.
func (b *RedisEventBus) Register(eventType events.EventType, handler eventbus.HandlerFunc) {
	b.mu.Lock()
	defer b.mu.Unlock()

	name := eventType.String()
	b.handlers[name] = append(b.handlers[name], handler)
	if len(b.handlers[name]) > 1 {
		return
	}

	stream := streamNameFor(eventType)
	err := b.client.XGroupCreateMkStream(b.ctx, stream, b.group, "0").Err()
	if err != nil && !strings.HasPrefix(err.Error(), "BUSYGROUP") {
		b.logger.Error("failed to create consumer group", "stream", stream, "error", err)
	}

	b.wg.Add(1)
	go b.consume(eventType)
}

// Close stops the consumers and closes the client.
func (b *RedisEventBus) Close() error {
	b.cancel()
	err := b.client.Close()
	b.wg.Wait()
	return err
}

func (b *RedisEventBus) consume(eventType events.EventType) {
	defer b.wg.Done()

	stream := streamNameFor(eventType)
	consumer := consumerNameFor(eventType) + ":" + strconv.FormatInt(time.Now().UnixNano(), 36)
	logger := b.logger.With("stream", stream, "consumer", consumer)
	logger.Info("consumer started")

	for {
		res, err := b.client.XReadGroup(b.ctx, &redis.XReadGroupArgs{
			Group:    b.group,
			Consumer: consumer,
			Streams:  []string{stream, ">"},
			Count:    10,
			Block:    b.block,
		}).Result()
		if b.ctx.Err() != nil {
			logger.Info("consumer stopped")
			return
		}
		if err != nil {
			if !errors.Is(err, redis.Nil) {
				logger.Error("error reading from stream", "error", err)
				select {
				case <-b.ctx.Done():
				case <-time.After(time.Second):
				}
			}
			continue
		}
		for _, s := range res {
			for _, msg := range s.Messages {
				b.process(eventType, msg)
			}
		}
	}
}

func (b *RedisEventBus) process(eventType events.EventType, msg redis.XMessage) {
	stream := streamNameFor(eventType)
	defer func() {
		if err := b.client.XAck(b.ctx, stream, b.group, msg.ID).Err(); err != nil {
			b.logger.Error("failed to acknowledge message", "id", msg.ID, "error", err)
		}
	}()

	raw, ok := msg.Values["event"].(string)
	if !ok {
		b.deadLetter(eventType, msg, errors.New("missing event field"))
		return
	}
	var env envelope
	if err := json.Unmarshal([]byte(raw), &env); err != nil {
		b.deadLetter(eventType, msg, err)
		return
	}
	evt, err := events.Decode(env.Type, env.Payload)
	if err != nil {
		b.deadLetter(eventType, msg, err)
		return
	}

	b.mu.Lock()
	handlers := append([]eventbus.HandlerFunc(nil), b.handlers[eventType.String()]...)
	b.mu.Unlock()

	var errs []error
	for _, handler := range handlers {
		if err := b.run(handler, evt); err != nil {
			errs = append(errs, err)
		}
	}
	if err := errors.Join(errs...); err != nil {
		b.deadLetter(eventType, msg, err)
	}
}

func (b *RedisEventBus) run(handler eventbus.HandlerFunc, evt events.Event) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("handler panic: %v", r)
		}
	}()
	return handler(b.ctx, evt)
}

// deadLetter copies a message that could not be handled to the DLQ stream of
// its event type, together with the failure reason.
func (b *RedisEventBus) deadLetter(eventType events.EventType, msg redis.XMessage, cause error) {
	dlq := dlqStreamName(eventType)
	values := make(map[string]any, len(msg.Values)+2)
	for k, v := range msg.Values {
		values[k] = v
	}
	values["error"] = cause.Error()
	values["source_id"] = msg.ID
	if err := b.client.XAdd(b.ctx, &redis.XAddArgs{Stream: dlq, Values: values}).Err(); err != nil {
		b.logger.Error("failed to push to DLQ", "stream", dlq, "error", err)
		return
	}
	b.logger.Warn("event pushed to DLQ", "stream", dlq, "id", msg.ID, "cause", cause)
}

func streamNameFor(eventType events.EventType) string {
	return nameFor("events", eventType)
}

func dlqStreamName(eventType events.EventType) string {
	return nameFor("dlq", eventType)
}

func consumerNameFor(eventType events.EventType) string {
	return nameFor("consumer", eventType)
}

// nameFor turns "Funds.Transferred" into "<prefix>:funds:transferred".
func nameFor(prefix string, eventType events.EventType) string {
	parts := strings.Split(eventType.String(), ".")
	for i := range parts {
		parts[i] = strings.ToLower(parts[i])
	}
	return prefix + ":" + strings.Join(parts, ":")
}

var _ eventbus.Bus = (*RedisEventBus)(nil)
