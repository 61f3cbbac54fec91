// Package hub fans artifact events out to dashboard subscribers.
package hub

import (
	"context"
	"log"
	"sync"
	"sync/atomic"

	"github.com/JOSIAHTHEPROGRAMMER/Joke-Repo/internal/model"
)

const subscriberBuffer = 64

// Hub receives artifact events and broadcasts them to all subscribers.
type Hub struct {
	input       <-chan model.ArtifactEvent
	mu          sync.RWMutex
	subscribers []chan model.ArtifactEvent
	dropped     atomic.Int64
}

// New creates a Hub that reads from the input channel.
func New(input <-chan model.ArtifactEvent) *Hub {
	return &Hub{input: input}
}

// Subscribe returns a buffered channel that will receive artifact events.
// Multiple consumers can subscribe; each gets a copy of every event.
func (h *Hub) Subscribe() <-chan model.ArtifactEvent {
	ch := make(chan model.ArtifactEvent, subscriberBuffer)
	h.mu.Lock()
	h.subscribers = append(h.subscribers, ch)
	h.mu.Unlock()
	return ch
}

// Dropped returns the total number of events dropped due to slow consumers.
func (h *Hub) Dropped() int64 {
	return h.dropped.Load()
}

// Start begins reading and broadcasting. Blocks until the context is
// cancelled or the input channel is closed.
func (h *Hub) Start(ctx context.Context) {
	defer h.closeAll()

	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-h.input:
			if !ok {
				return
			}
			h.broadcast(ev)
		}
	}
}

// broadcast sends an event to all subscribers. If a subscriber's channel is
// full, the event is dropped for that subscriber.
func (h *Hub) broadcast(ev model.ArtifactEvent) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, ch := range h.subscribers {
		select {
		case ch <- ev:
		default:
			n := h.dropped.Add(1)
			log.Printf("hub: dropped event for slow consumer (total dropped: %d)", n)
		}
	}
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, ch := range h.subscribers {
		close(ch)
	}
	h.subscribers = nil
}
