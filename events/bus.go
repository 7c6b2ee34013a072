package events

import (
	"fmt"
	"sync"
)

// Bus is a simple event bus for widget components. Dispatch is
// synchronous: handlers run on the publishing goroutine, in subscription
// order, before Publish returns. Handlers must not publish back into the
// bus in a way that recurses.
type Bus struct {
	mu        sync.RWMutex
	listeners map[string][]func(interface{})
}

// NewBus creates a new event bus
func NewBus() *Bus {
	return &Bus{
		listeners: make(map[string][]func(interface{})),
	}
}

// Subscribe registers a listener for an event type, keyed as by TypeOf
func (b *Bus) Subscribe(eventType string, handler func(interface{})) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.listeners[eventType] = append(b.listeners[eventType], handler)
}

// Publish sends an event to all listeners of its type
func (b *Bus) Publish(event interface{}) {
	b.mu.RLock()
	handlers := append(([]func(interface{}))(nil), b.listeners[TypeOf(event)]...)
	b.mu.RUnlock()

	for _, handler := range handlers {
		handler(event)
	}
}

// TypeOf returns the subscription key for an event value. Generic event
// types include their type argument, so the key for a
// selection.ChangedEvent[string] differs from an int-keyed one.
func TypeOf(event interface{}) string {
	return fmt.Sprintf("%T", event)
}
