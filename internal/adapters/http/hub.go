package http

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/aretw0/motif/pkg/domain"
)

// Hub fans host->surface events out to every connected SSE client.
//
// It doubles as the host's ports.Notifier: notifications become protocol
// events on the stream. Slow clients never block the host; a client whose
// buffer is full just misses the event.
type Hub struct {
	mu   sync.Mutex
	subs map[chan []byte]struct{}
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{subs: make(map[chan []byte]struct{})}
}

// Notify implements ports.Notifier by publishing a notification event.
func (h *Hub) Notify(ctx context.Context, n domain.Notification) {
	h.Publish(map[string]any{
		"type":         "notification",
		"notification": n,
	})
}

// Publish broadcasts an event to all connected clients.
func (h *Hub) Publish(event any) {
	data, err := json.Marshal(event)
	if err != nil {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for ch := range h.subs {
		select {
		case ch <- data:
		default:
		}
	}
}

// Subscribe registers a client stream. The returned cancel function must be
// called when the client disconnects.
func (h *Hub) Subscribe() (<-chan []byte, func()) {
	ch := make(chan []byte, 16)

	h.mu.Lock()
	h.subs[ch] = struct{}{}
	h.mu.Unlock()

	cancel := func() {
		h.mu.Lock()
		delete(h.subs, ch)
		h.mu.Unlock()
	}
	return ch, cancel
}
