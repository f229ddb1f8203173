package lrukx

import (
	"container/list"
	"sync"
)

// DefaultK is the access-history depth used when no explicit k is given.
const DefaultK = 2

// Tracker implements LRU-K replacement for buffer frames. A frame with
// fewer than k recorded accesses has infinite backward k-distance and is
// evicted before any frame with k or more; ties fall back to plain LRU
// order within each group.
type Tracker struct {
	mu       sync.Mutex
	capacity int
	k        int
	history  *list.List // frames seen fewer than k times, most recent first
	cache    *list.List // frames seen at least k times, most recent first
	entries  map[int]*entry
	size     int // number of evictable frames
}

type entry struct {
	elem      *list.Element
	accesses  int
	evictable bool
}

func New(capacity, k int) *Tracker {
	if capacity <= 0 {
		capacity = 1
	}
	if k <= 0 {
		k = DefaultK
	}
	return &Tracker{
		capacity: capacity,
		k:        k,
		history:  list.New(),
		cache:    list.New(),
		entries:  make(map[int]*entry),
	}
}

func (t *Tracker) Capacity() int { return t.capacity }

func (t *Tracker) K() int { return t.k }

// RecordAccess notes that a frame was accessed now, starting its history
// if the frame is new. Frames beyond the capacity are ignored, as are
// negative IDs.
func (t *Tracker) RecordAccess(frameID int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if frameID < 0 {
		return
	}
	e, ok := t.entries[frameID]
	if !ok {
		if len(t.entries) >= t.capacity {
			return
		}
		e = &entry{}
		t.entries[frameID] = e
	}

	e.accesses++
	switch {
	case e.accesses > t.k:
		t.cache.MoveToFront(e.elem)
	case e.accesses == t.k:
		// The frame graduates from history to the cache queue.
		if e.elem != nil {
			t.history.Remove(e.elem)
		}
		e.elem = t.cache.PushFront(frameID)
	case e.elem != nil:
		t.history.MoveToFront(e.elem)
	default:
		e.elem = t.history.PushFront(frameID)
	}
}

// SetEvictable marks whether a tracked frame may be evicted. Untracked
// frames are ignored.
func (t *Tracker) SetEvictable(frameID int, evictable bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	e, ok := t.entries[frameID]
	if !ok || e.evictable == evictable {
		return
	}

	e.evictable = evictable
	if evictable {
		t.size++
	} else {
		t.size--
	}
}

// Evict removes and returns the frame with the largest backward
// k-distance among evictable frames: the least recently seen history
// frame first, then the least recently used cache frame.
func (t *Tracker) Evict() (frameID int, ok bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.size == 0 {
		return 0, false
	}

	if id, ok := t.evictFrom(t.history); ok {
		return id, true
	}
	return t.evictFrom(t.cache)
}

func (t *Tracker) evictFrom(l *list.List) (int, bool) {
	for e := l.Back(); e != nil; e = e.Prev() {
		id := e.Value.(int)
		if !t.entries[id].evictable {
			continue
		}

		l.Remove(e)
		delete(t.entries, id)
		t.size--
		return id, true
	}
	return 0, false
}

// Remove drops a frame and its access history regardless of where it
// sits in the eviction order. Untracked frames are ignored.
func (t *Tracker) Remove(frameID int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	e, ok := t.entries[frameID]
	if !ok {
		return
	}

	if e.accesses >= t.k {
		t.cache.Remove(e.elem)
	} else {
		t.history.Remove(e.elem)
	}
	if e.evictable {
		t.size--
	}
	delete(t.entries, frameID)
}

// Size reports how many frames are currently evictable.
func (t *Tracker) Size() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.size
}
