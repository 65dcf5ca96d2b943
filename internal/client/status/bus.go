// Package status fans out sync session state transitions to every
// subscribed consumer. Delivery is best-effort and history is never
// replayed: a consumer that subscribes mid-session misses the earlier
// transitions and must treat its initial state as idle until the first
// event it personally observes.
package status

import (
	"log/slog"
	"sync"

	"github.com/RachelleMaina/stocka-sync/internal/models"
)

// subscriberBuffer is the per-subscriber channel capacity. A subscriber
// that falls this far behind starts losing events, which the weak-ordering
// contract permits.
const subscriberBuffer = 16

// Bus is an in-process broadcast channel for sync status events.
type Bus struct {
	logger      *slog.Logger
	subscribers map[int]chan models.StatusEvent
	mu          sync.Mutex
	nextID      int
	closed      bool
}

// NewBus creates a new status bus
func NewBus(logger *slog.Logger) *Bus {
	return &Bus{
		logger:      logger,
		subscribers: make(map[int]chan models.StatusEvent),
	}
}

// Publish delivers the event to every current subscriber. Fire-and-forget:
// it never blocks the sync worker, and subscribers with a full buffer miss
// the event.
func (b *Bus) Publish(event models.StatusEvent) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}

	for id, ch := range b.subscribers {
		select {
		case ch <- event:
		default:
			b.logger.Warn("dropping status event for slow subscriber",
				"subscriber", id,
				"status", event.Status)
		}
	}
}

// Subscribe returns a channel of future events and a cancel function.
// Events published before Subscribe are not replayed.
func (b *Bus) Subscribe() (<-chan models.StatusEvent, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	ch := make(chan models.StatusEvent, subscriberBuffer)
	if b.closed {
		close(ch)
		return ch, func() {}
	}

	id := b.nextID
	b.nextID++
	b.subscribers[id] = ch

	cancel := func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if sub, ok := b.subscribers[id]; ok {
			delete(b.subscribers, id)
			close(sub)
		}
	}

	return ch, cancel
}

// Close shuts the bus down and closes all subscriber channels.
func (b *Bus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}
	b.closed = true

	for id, ch := range b.subscribers {
		delete(b.subscribers, id)
		close(ch)
	}
}
