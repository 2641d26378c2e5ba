package processor

import (
	"sync"

	"villanova-server/internal/store"

	"github.com/google/uuid"
)

const subscriberBuffer = 32

// Hub fans activity entries out to live dashboard subscribers
type Hub struct {
	mu   sync.RWMutex
	subs map[uuid.UUID]map[chan store.ActivityLog]struct{}
}

func NewHub() *Hub {
	return &Hub{subs: make(map[uuid.UUID]map[chan store.ActivityLog]struct{})}
}

// Subscribe registers a listener for one admin's feed. The returned func
// unsubscribes and closes the channel.
func (h *Hub) Subscribe(adminID uuid.UUID) (<-chan store.ActivityLog, func()) {
	ch := make(chan store.ActivityLog, subscriberBuffer)

	h.mu.Lock()
	if h.subs[adminID] == nil {
		h.subs[adminID] = make(map[chan store.ActivityLog]struct{})
	}
	h.subs[adminID][ch] = struct{}{}
	h.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subs[adminID], ch)
			if len(h.subs[adminID]) == 0 {
				delete(h.subs, adminID)
			}
			h.mu.Unlock()
			close(ch)
		})
	}
}

// Publish delivers entry to every subscriber of its admin. Slow subscribers miss entries.
func (h *Hub) Publish(entry store.ActivityLog) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for ch := range h.subs[entry.AdminID] {
		select {
		case ch <- entry:
		default:
		}
	}
}

func (h *Hub) Subscribers(adminID uuid.UUID) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs[adminID])
}
