package favorite

import "sync"

// ChangeEvent announces that key now holds value. Origin identifies the
// replica whose write produced the event.
type ChangeEvent struct {
	Key    string
	Value  string
	Origin string
}

// Bus is a process-scoped publish/subscribe channel for storage changes.
// Handlers run synchronously on the publisher's goroutine.
type Bus struct {
	mu       sync.RWMutex
	nextID   int
	handlers map[int]func(ChangeEvent)
}

func NewBus() *Bus {
	return &Bus{handlers: make(map[int]func(ChangeEvent))}
}

// Subscribe registers handler and returns a function that removes it.
func (b *Bus) Subscribe(handler func(ChangeEvent)) (unsubscribe func()) {
	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.handlers[id] = handler
	b.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.handlers, id)
			b.mu.Unlock()
		})
	}
}

func (b *Bus) Publish(event ChangeEvent) {
	b.mu.RLock()
	handlers := make([]func(ChangeEvent), 0, len(b.handlers))
	for _, handler := range b.handlers {
		handlers = append(handlers, handler)
	}
	b.mu.RUnlock()

	for _, handler := range handlers {
		handler(event)
	}
}
