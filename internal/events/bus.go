package events

import (
	"fmt"
	"sync"
	"time"

	"food-delivery/internal/logger"
)

const (
	SessionLoggedIn       = "session.logged_in"
	SessionScreenSelected = "session.screen_selected"
	CartItemAdded         = "cart.item_added"
	OrderPlaced           = "order.placed"
)

type Event struct {
	Type      string
	Timestamp time.Time
	Data      map[string]interface{}
}

type Handler func(event Event)

type subscription struct {
	id      uint64
	handler Handler
}

// Bus delivers events synchronously on the publishing goroutine, in
// subscription order. A UI callback that publishes has therefore finished
// refreshing every subscriber before it returns.
type Bus struct {
	mu          sync.RWMutex
	subscribers map[string][]subscription
	nextID      uint64
	closed      bool
	logger      logger.Logger
}

func NewBus(log logger.Logger) *Bus {
	if log == nil {
		log = logger.Nop()
	}
	return &Bus{
		subscribers: make(map[string][]subscription),
		logger:      log,
	}
}

// Subscribe registers handler for eventType and returns a function that removes it
func (b *Bus) Subscribe(eventType string, handler Handler) (unsubscribe func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.subscribers[eventType] = append(b.subscribers[eventType], subscription{id: id, handler: handler})

	return func() { b.unsubscribe(eventType, id) }
}

func (b *Bus) unsubscribe(eventType string, id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	subs := b.subscribers[eventType]
	for i, s := range subs {
		if s.id == id {
			b.subscribers[eventType] = append(subs[:i:i], subs[i+1:]...)
			return
		}
	}
}

func (b *Bus) Publish(eventType string, data map[string]interface{}) {
	b.mu.RLock()
	if b.closed {
		b.mu.RUnlock()
		return
	}
	subs := make([]subscription, len(b.subscribers[eventType]))
	copy(subs, b.subscribers[eventType])
	b.mu.RUnlock()

	event := Event{Type: eventType, Timestamp: time.Now(), Data: data}
	for _, s := range subs {
		b.dispatch(s.handler, event)
	}
}

func (b *Bus) dispatch(handler Handler, event Event) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("EventBus", fmt.Errorf("handler panic: %v", r), map[string]interface{}{
				"event": event.Type,
			})
		}
	}()
	handler(event)
}

// SubscriberCount reports how many handlers listen for eventType
func (b *Bus) SubscriberCount(eventType string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subscribers[eventType])
}

// Shutdown drops all subscribers; later publishes are ignored
func (b *Bus) Shutdown() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.closed = true
	b.subscribers = make(map[string][]subscription)
}
