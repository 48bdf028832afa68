// Package feed delivers push-based item-list snapshots from the storage
// collaborator to subscribed itinerary sessions. A snapshot is always a
// full trip item list and is authoritative over local state.
package feed

import (
	"sync"

	"github.com/alexanderramin/itinera/internal/domain"
)

// Source is the subscription boundary the engine consumes. Cancel stops
// future delivery only; in-flight publishes are not recalled.
type Source interface {
	Subscribe(tripID string) (<-chan []domain.ItineraryItem, func())
}

// Publisher is the storage collaborator's side of the feed.
type Publisher interface {
	Publish(tripID string, items []domain.ItineraryItem)
}

// Bus combines both ends for in-process wiring.
type Bus interface {
	Source
	Publisher
}

// Hub is an in-process Source fan-out. Publish never blocks: each
// subscriber channel holds the latest snapshot and a newer one
// replaces an unconsumed older one (last snapshot wins).
type Hub struct {
	mu     sync.Mutex
	nextID int
	subs   map[string]map[int]chan []domain.ItineraryItem
}

// NewHub creates an empty Hub.
func NewHub() *Hub {
	return &Hub{subs: make(map[string]map[int]chan []domain.ItineraryItem)}
}

// Subscribe registers for snapshots of one trip. The returned cancel
// func unregisters and closes the channel; calling it twice is safe.
func (h *Hub) Subscribe(tripID string) (<-chan []domain.ItineraryItem, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	ch := make(chan []domain.ItineraryItem, 1)
	id := h.nextID
	h.nextID++

	if h.subs[tripID] == nil {
		h.subs[tripID] = make(map[int]chan []domain.ItineraryItem)
	}
	h.subs[tripID][id] = ch

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			h.mu.Lock()
			defer h.mu.Unlock()
			if subs, ok := h.subs[tripID]; ok {
				if c, ok := subs[id]; ok {
					delete(subs, id)
					close(c)
				}
				if len(subs) == 0 {
					delete(h.subs, tripID)
				}
			}
		})
	}
	return ch, cancel
}

// Publish pushes a snapshot to every subscriber of the trip, replacing
// any snapshot they have not consumed yet.
func (h *Hub) Publish(tripID string, items []domain.ItineraryItem) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, ch := range h.subs[tripID] {
		// Drain the stale snapshot, if any, then deliver the new one.
		select {
		case <-ch:
		default:
		}
		ch <- items
	}
}
