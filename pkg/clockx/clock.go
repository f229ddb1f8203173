package clockx

import "sync"

// Tracker implements CLOCK (second-chance) replacement for a fixed set of
// buffer frames. It keeps a reference bit and an evictable flag per frame
// ID in [0..capacity) and sweeps a hand over them to pick victims.
type Tracker struct {
	mu     sync.Mutex
	frames []frameState
	hand   int
	size   int // number of evictable frames
}

type frameState struct {
	present   bool
	evictable bool
	ref       bool
}

func New(capacity int) *Tracker {
	if capacity <= 0 {
		capacity = 1
	}
	return &Tracker{
		frames: make([]frameState, capacity),
	}
}

func (t *Tracker) Capacity() int { return len(t.frames) }

// Touch marks a frame as recently accessed and starts tracking it if needed.
func (t *Tracker) Touch(frameID int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if frameID < 0 || frameID >= len(t.frames) {
		return
	}
	f := &t.frames[frameID]
	f.present = true
	f.ref = true
}

// SetEvictable marks whether a tracked frame may be evicted. Unknown frames
// are ignored.
func (t *Tracker) SetEvictable(frameID int, evictable bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if frameID < 0 || frameID >= len(t.frames) {
		return
	}
	f := &t.frames[frameID]
	if !f.present || f.evictable == evictable {
		return
	}

	f.evictable = evictable
	if evictable {
		t.size++
	} else {
		t.size--
	}
}

// Evict picks a victim frame and stops tracking it. The hand gives every
// referenced frame a second chance before taking it.
func (t *Tracker) Evict() (frameID int, ok bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	n := len(t.frames)
	if t.size == 0 {
		return -1, false
	}

	// Up to 2 sweeps: the first may only clear ref bits.
	for i := 0; i < 2*n; i++ {
		idx := t.hand
		f := &t.frames[idx]

		if f.present && f.evictable {
			if !f.ref {
				*f = frameState{}
				t.size--

				t.hand = (t.hand + 1) % n
				return idx, true
			}
			// Second chance.
			f.ref = false
		}

		t.hand = (t.hand + 1) % n
	}

	return -1, false
}

// Remove stops tracking a frame regardless of its evictable state.
func (t *Tracker) Remove(frameID int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if frameID < 0 || frameID >= len(t.frames) {
		return
	}
	f := &t.frames[frameID]
	if !f.present {
		return
	}

	if f.evictable {
		t.size--
	}
	*f = frameState{}
}

// Size reports how many frames are currently evictable.
func (t *Tracker) Size() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.size
}
