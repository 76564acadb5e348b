// Package dedupe tracks listing ids already seen while assembling a pool.
package dedupe

import "sync"

// Deduper records seen listing ids.
type Deduper interface {
	// Seen reports whether id was already recorded and records it if not.
	Seen(id string) bool
	Len() int
}

// memoryDeduper keeps ids in a map. When bounded, the oldest ids are
// evicted first using a ring of insertion order.
type memoryDeduper struct {
	mu       sync.Mutex
	seen     map[string]int // id -> slot in order, -1 when unbounded
	order    []string
	next     int
	capacity int // 0 or negative = unbounded
}

// New creates a deduper with configuration options.
func New(opts ...Option) Deduper {
	d := &memoryDeduper{}
	for _, opt := range opts {
		opt(d)
	}
	d.seen = make(map[string]int)
	if d.capacity > 0 {
		d.order = make([]string, d.capacity)
	}
	return d
}

// Seen reports whether id was already recorded and records it if not.
func (d *memoryDeduper) Seen(id string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.seen[id]; ok {
		return true
	}
	if d.capacity <= 0 {
		d.seen[id] = -1
		return false
	}

	slot := d.next
	if old := d.order[slot]; old != "" {
		if s, ok := d.seen[old]; ok && s == slot {
			delete(d.seen, old)
		}
	}
	d.order[slot] = id
	d.seen[id] = slot
	d.next = (d.next + 1) % d.capacity
	return false
}

// Len returns the number of ids currently recorded.
func (d *memoryDeduper) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.seen)
}
