// Package syncbus propagates zero-payload "store changed" signals between
// application instances sharing the same persistent store. Receivers re-read
// the store keys they care about; delivery order is not guaranteed and lost
// signals are tolerated.
package syncbus

import (
	"sync"

	"github.com/lootvault/lootvault-go/interfaces"
)

// Hub is an in-process signal exchange. Each simulated instance takes its own
// Endpoint; a publish on one endpoint reaches every other endpoint's
// subscribers but never its own. Used for tests and single-process operation.
type Hub struct {
	mu     sync.Mutex
	nextID int
	subs   map[int]localEntry
}

type localEntry struct {
	owner int
	fn    interfaces.Subscriber
}

// NewHub creates an empty hub
func NewHub() *Hub {
	return &Hub{subs: make(map[int]localEntry)}
}

// Endpoint returns a new instance-local bus attached to the hub
func (h *Hub) Endpoint() *LocalBus {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.nextID++
	return &LocalBus{hub: h, id: h.nextID}
}

// LocalBus is one instance's handle on the hub
type LocalBus struct {
	hub *Hub
	id  int
}

// NewLocalBus returns an endpoint on a private hub, for instances that run
// without siblings.
func NewLocalBus() *LocalBus {
	return NewHub().Endpoint()
}

// Publish signals every subscriber registered through other endpoints
func (b *LocalBus) Publish() error {
	b.hub.mu.Lock()
	targets := make([]interfaces.Subscriber, 0, len(b.hub.subs))
	for _, entry := range b.hub.subs {
		if entry.owner != b.id {
			targets = append(targets, entry.fn)
		}
	}
	b.hub.mu.Unlock()

	for _, fn := range targets {
		fn()
	}
	return nil
}

// Subscribe registers a subscriber for signals from sibling endpoints
func (b *LocalBus) Subscribe(sub interfaces.Subscriber) (interfaces.Subscription, error) {
	b.hub.mu.Lock()
	defer b.hub.mu.Unlock()

	b.hub.nextID++
	key := b.hub.nextID
	b.hub.subs[key] = localEntry{owner: b.id, fn: sub}

	return &localSubscription{hub: b.hub, key: key}, nil
}

// Close detaches the endpoint's subscribers from the hub
func (b *LocalBus) Close() error {
	b.hub.mu.Lock()
	defer b.hub.mu.Unlock()

	for key, entry := range b.hub.subs {
		if entry.owner == b.id {
			delete(b.hub.subs, key)
		}
	}
	return nil
}

type localSubscription struct {
	hub *Hub
	key int
}

func (s *localSubscription) Unsubscribe() error {
	s.hub.mu.Lock()
	defer s.hub.mu.Unlock()

	delete(s.hub.subs, s.key)
	return nil
}
