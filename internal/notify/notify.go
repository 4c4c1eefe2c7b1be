// ABOUTME: Table-change notification bus for the local datastore.
// ABOUTME: Storage publishes per-table events; summary watchers subscribe.
package notify

import (
	"sync"

	"github.com/google/uuid"
)

// Table names events can be tagged with.
const (
	TableEntries     = "entries"
	TableNutritables = "nutritables"
	TableFoods       = "foods"
)

// Change describes a committed write to one of the journal tables.
type Change struct {
	Table string
}

// Bus fans table-change events out to subscribers. Publishing never blocks:
// a subscriber that has fallen behind has its pending event coalesced with
// the new one, which is safe because watchers recompute from scratch on any
// matching event.
type Bus struct {
	mu   sync.Mutex
	subs map[uuid.UUID]chan Change
}

// NewBus creates an empty notification bus.
func NewBus() *Bus {
	return &Bus{subs: make(map[uuid.UUID]chan Change)}
}

// Subscribe registers a new subscriber and returns its handle and channel.
// The channel is closed on Unsubscribe.
func (b *Bus) Subscribe() (uuid.UUID, <-chan Change) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := uuid.New()
	ch := make(chan Change, 1)
	b.subs[id] = ch
	return id, ch
}

// Unsubscribe removes a subscriber and closes its channel.
func (b *Bus) Unsubscribe(id uuid.UUID) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if ch, ok := b.subs[id]; ok {
		delete(b.subs, id)
		close(ch)
	}
}

// Publish delivers a change event to every subscriber without blocking.
func (b *Bus) Publish(change Change) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, ch := range b.subs {
		select {
		case ch <- change:
		default:
			// Slow subscriber: drop the stale pending event and replace it.
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- change:
			default:
			}
		}
	}
}
