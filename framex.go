// Package framex implements replacement policies for buffer frames in a
// page-oriented storage manager. A Replacer tracks the frames whose pages
// are not pinned by any user and picks which frame to reuse when the pool
// needs room for another page.
package framex

import (
	"errors"
	"fmt"

	"github.com/tuannm99/framex/pkg/lrukx"
)

var (
	DefaultCapacity = 128

	ErrUnknownAlgorithm = errors.New("framex: unknown replacement algorithm")
)

// Replacer decides which buffer frame to reuse next. Implementations are
// safe for concurrent use.
type Replacer interface {
	// Victim removes and returns the next frame to reuse. ok is false
	// when no frame is eligible, and frameID carries no meaning then.
	Victim() (frameID int, ok bool)
	// Pin takes a frame out of eviction consideration. Frames the
	// replacer does not track are ignored.
	Pin(frameID int)
	// Unpin makes a frame a candidate for eviction.
	Unpin(frameID int)
	// Size reports how many frames are eligible for eviction.
	Size() int
}

// StatsSource is implemented by replacers that count their operations.
type StatsSource interface {
	Stats() Stats
}

type Algorithm int

const (
	LRU Algorithm = iota + 1
	Clock
	LRUK
)

func (a Algorithm) String() string {
	switch a {
	case LRU:
		return "lru"
	case Clock:
		return "clock"
	case LRUK:
		return "lru_k"
	default:
		return "unknown"
	}
}

func GetAlgorithm(s string) (Algorithm, error) {
	switch s {
	case "lru":
		return LRU, nil
	case "clock":
		return Clock, nil
	case "lru_k":
		return LRUK, nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnknownAlgorithm, s)
	}
}

// Algorithms lists every supported algorithm in a stable order.
func Algorithms() []Algorithm {
	return []Algorithm{LRU, Clock, LRUK}
}

// New builds a replacer for up to capacity frames. Non-positive
// capacities fall back to DefaultCapacity. LRUK keeps lrukx.DefaultK
// accesses of history; use NewLRUK to choose k.
func New(algorithm Algorithm, capacity int) (Replacer, error) {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	switch algorithm {
	case LRU:
		return newLRUAdapter(capacity), nil
	case Clock:
		return newClockAdapter(capacity), nil
	case LRUK:
		return newLRUKAdapter(capacity, lrukx.DefaultK), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, algorithm)
	}
}

// NewLRU returns a replacer that evicts the least recently unpinned frame.
func NewLRU(capacity int) Replacer {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return newLRUAdapter(capacity)
}

// NewClock returns a replacer that approximates LRU with a clock sweep.
func NewClock(capacity int) Replacer {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return newClockAdapter(capacity)
}

// NewLRUK returns a replacer that evicts by backward k-distance.
func NewLRUK(capacity, k int) Replacer {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return newLRUKAdapter(capacity, k)
}
