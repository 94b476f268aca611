// Package eventbus implements the in-process publish/subscribe channel
// fired after each successful ledger write. Durability lives in the ledger,
// not here: subscribers re-derive missed work by re-scanning events, so the
// bus is deliberately fire-and-forget.
package eventbus

import (
	"context"
	"sync"

	"treasury-engine/internal/core/domain"
	"treasury-engine/internal/core/ports"

	"github.com/rs/zerolog"
)

// Bus implements ports.EventBus. Each publish dispatches to every
// subscriber in its own goroutine; a panicking or failing subscriber
// never affects the committed ledger write or other subscribers.
type Bus struct {
	mu          sync.RWMutex
	subscribers []subscription
	wg          sync.WaitGroup
	closed      bool
	log         zerolog.Logger
}

type subscription struct {
	name    string
	handler ports.EventHandler
}

// New creates an event bus. Subscribers must register before the ledger
// store starts accepting writes.
func New(log zerolog.Logger) *Bus {
	return &Bus{log: log}
}

// Subscribe registers a named handler.
func (b *Bus) Subscribe(name string, handler ports.EventHandler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subscribers = append(b.subscribers, subscription{name: name, handler: handler})
}

// Publish dispatches the event to all subscribers without awaiting handler
// completion. Dispatch order across subscribers is unspecified.
func (b *Bus) Publish(ctx context.Context, event domain.LedgerEvent) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.closed {
		b.log.Warn().Str("event_id", event.ID.String()).Msg("event bus closed, dropping dispatch")
		return
	}

	// Handlers outlive the caller: an HTTP publisher's request context is
	// cancelled the moment its handler returns, which would kill subscriber
	// I/O mid-flight. Context values (request ID) survive the detach.
	ctx = context.WithoutCancel(ctx)

	for _, sub := range b.subscribers {
		b.wg.Add(1)
		go func(sub subscription) {
			defer b.wg.Done()
			defer func() {
				if r := recover(); r != nil {
					b.log.Error().
						Str("subscriber", sub.name).
						Str("event_id", event.ID.String()).
						Interface("panic", r).
						Msg("subscriber panicked handling event")
				}
			}()
			sub.handler(ctx, event)
		}(sub)
	}
}

// Close stops accepting publishes and waits for in-flight handlers.
func (b *Bus) Close() {
	b.mu.Lock()
	b.closed = true
	b.mu.Unlock()
	b.wg.Wait()
}
