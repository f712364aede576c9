package events

import (
	"sync"

	"github.com/google/uuid"
)

// Event is one broadcast message pushed to live back-office clients
// after an import, adjustment or payment.
type Event struct {
	Type string      `json:"type"`
	Data interface{} `json:"data,omitempty"`
}

const (
	TypeImportCompleted = "import_completed"
	TypeEarningUpdated  = "earning_updated"
)

// Hub fans events out to all connected subscribers. Publishing never
// blocks: a subscriber with a full channel misses the event instead of
// holding up the caller's transaction.
type Hub struct {
	mu          sync.RWMutex
	subscribers map[string]chan Event
}

func NewHub() *Hub {
	return &Hub{
		subscribers: make(map[string]chan Event),
	}
}

// Subscribe registers a new subscriber and returns the event channel and
// a cleanup function.
func (h *Hub) Subscribe() (chan Event, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	id := uuid.NewString()
	ch := make(chan Event, 16)
	h.subscribers[id] = ch

	cleanup := func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		if _, ok := h.subscribers[id]; ok {
			delete(h.subscribers, id)
			close(ch)
		}
	}

	return ch, cleanup
}

// Broadcast sends an event to every subscriber.
func (h *Hub) Broadcast(event Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, ch := range h.subscribers {
		select {
		case ch <- event:
		default:
			// Skip if channel is full (non-blocking to prevent deadlock)
		}
	}
}

// SubscriberCount returns the number of connected subscribers.
func (h *Hub) SubscriberCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subscribers)
}
