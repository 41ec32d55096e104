package events

import (
	"sync"

	"rosecraft/internal/shared/logger"
)

// InMemoryEventDispatcher dispatches events synchronously to subscribed
// handlers. Handler errors are logged, never propagated: event side effects
// must not roll back the transaction that produced them.
type InMemoryEventDispatcher struct {
	mu       sync.RWMutex
	handlers map[string][]EventHandler
	log      logger.Interface
}

func NewInMemoryEventDispatcher(log logger.Interface) *InMemoryEventDispatcher {
	return &InMemoryEventDispatcher{
		handlers: make(map[string][]EventHandler),
		log:      log,
	}
}

func (d *InMemoryEventDispatcher) Subscribe(eventType string, handler EventHandler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.handlers[eventType] = append(d.handlers[eventType], handler)
}

func (d *InMemoryEventDispatcher) Publish(event DomainEvent) error {
	d.mu.RLock()
	handlers := d.handlers[event.GetEventType()]
	d.mu.RUnlock()

	for _, h := range handlers {
		if err := h.Handle(event); err != nil {
			d.log.Warnw("event handler failed",
				"event_type", event.GetEventType(),
				"aggregate_id", event.GetAggregateID(),
				"error", err)
		}
	}
	return nil
}

func (d *InMemoryEventDispatcher) PublishAll(events []DomainEvent) error {
	for _, event := range events {
		if err := d.Publish(event); err != nil {
			return err
		}
	}
	return nil
}
