// Package messaging implements the in-memory event bus for roster events.
package messaging

import (
	"fmt"
	"sync"

	"github.com/tert62/COMP1551/internal/domain/shared"
	"github.com/tert62/COMP1551/pkg/logger"
)

// InMemoryEventBus is a synchronous in-memory implementation of
// shared.EventBus. Handlers run in subscription order on the publishing
// goroutine; the roster model is single-threaded, so there is no worker pool.
type InMemoryEventBus struct {
	mu          sync.RWMutex
	handlers    map[shared.EventType][]shared.EventHandler
	allHandlers []shared.EventHandler
	log         *logger.Logger
}

var _ shared.EventBus = (*InMemoryEventBus)(nil)

// NewInMemoryEventBus creates a new event bus. A nil logger disables handler
// failure logging.
func NewInMemoryEventBus(log *logger.Logger) *InMemoryEventBus {
	return &InMemoryEventBus{
		handlers: make(map[shared.EventType][]shared.EventHandler),
		log:      log,
	}
}

// Subscribe registers a handler for a specific event type.
func (b *InMemoryEventBus) Subscribe(eventType shared.EventType, handler shared.EventHandler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

// SubscribeAll registers a handler that receives every event.
func (b *InMemoryEventBus) SubscribeAll(handler shared.EventHandler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.allHandlers = append(b.allHandlers, handler)
}

// Publish delivers the event to all matching handlers synchronously. Handler
// errors are collected; a failing handler does not stop delivery to the rest.
func (b *InMemoryEventBus) Publish(event shared.Event) error {
	b.mu.RLock()
	matched := make([]shared.EventHandler, 0, len(b.handlers[event.EventType()])+len(b.allHandlers))
	matched = append(matched, b.handlers[event.EventType()]...)
	matched = append(matched, b.allHandlers...)
	b.mu.RUnlock()

	var firstErr error
	for _, handler := range matched {
		if err := handler(event); err != nil {
			if b.log != nil {
				b.log.Error("event handler failed",
					logger.String("event_type", string(event.EventType())),
					logger.String("event_id", event.EventID()),
					logger.Err(err),
				)
			}
			if firstErr == nil {
				firstErr = fmt.Errorf("handler for %s: %w", event.EventType(), err)
			}
		}
	}
	return firstErr
}
