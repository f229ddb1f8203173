// Package lrux implements least-recently-used victim selection for the
// buffer frames of a page-oriented storage manager. It tracks eviction
// eligibility of frame IDs only: page contents, pin counts and disk I/O
// stay with the owning buffer pool.
package lrux

import (
	"container/list"
	"sync"
)

// DefaultCapacity is used when New is given a non-positive capacity.
var DefaultCapacity = 128

// Replacer keeps the set of evictable frames in recency order. A frame that
// is not tracked counts as pinned; Unpin inserts it at the head of the
// recency list and Victim consumes from the tail, so the frame that has been
// evictable the longest goes first.
//
// The recency list and the frame index are owned by one mutex and always
// updated together, which keeps victim selection a single atomic step: two
// concurrent Victim calls can never return the same frame.
type Replacer struct {
	mu       sync.Mutex
	capacity int
	order    *list.List            // head = most recently unpinned, tail = next victim
	index    map[int]*list.Element // frameID -> node in order
}

// New creates a replacer for a pool of capacity frames. Capacity is fixed
// for the lifetime of the replacer.
func New(capacity int) *Replacer {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Replacer{
		capacity: capacity,
		order:    list.New(),
		index:    make(map[int]*list.Element, capacity),
	}
}

// Victim removes and returns the least recently unpinned frame. ok is false
// when no frame is evictable; nothing is mutated in that case. The caller is
// expected to repurpose the frame and pin it once a new page is installed.
func (r *Replacer) Victim() (frameID int, ok bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	back := r.order.Back()
	if back == nil {
		return 0, false
	}

	frameID = back.Value.(int)
	r.order.Remove(back)
	delete(r.index, frameID)
	return frameID, true
}

// Pin makes a frame ineligible for eviction. Pinning a frame that is not
// tracked is a no-op, so the call is idempotent and never fails.
func (r *Replacer) Pin(frameID int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	elem, ok := r.index[frameID]
	if !ok {
		return
	}
	r.order.Remove(elem)
	delete(r.index, frameID)
}

// Unpin makes a frame eligible for eviction, inserting it as the most
// recently used entry. A frame that is already tracked keeps its position,
// and nothing is inserted while the replacer holds capacity frames; both
// guards fail silently.
func (r *Replacer) Unpin(frameID int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.index[frameID]; ok {
		return
	}
	if r.order.Len() >= r.capacity {
		return
	}
	r.index[frameID] = r.order.PushFront(frameID)
}

// Size reports how many frames are currently evictable.
func (r *Replacer) Size() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.order.Len()
}

// Capacity reports the fixed upper bound on tracked frames.
func (r *Replacer) Capacity() int {
	return r.capacity
}
