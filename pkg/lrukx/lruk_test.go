package lrukx

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTracker_New_Defaults(t *testing.T) {
	tr := New(0, 0)
	require.NotNil(t, tr)
	require.Equal(t, 1, tr.Capacity())
	require.Equal(t, DefaultK, tr.K())
	require.Equal(t, 0, tr.Size())
}

func TestTracker_Evict_HistoryBeforeCache(t *testing.T) {
	tr := New(4, 2)

	// Frame 1 reaches k accesses and sits in the cache queue; frames 2
	// and 3 stay in history with infinite backward k-distance.
	tr.RecordAccess(1)
	tr.RecordAccess(1)
	tr.RecordAccess(2)
	tr.RecordAccess(3)

	tr.SetEvictable(1, true)
	tr.SetEvictable(2, true)
	tr.SetEvictable(3, true)
	require.Equal(t, 3, tr.Size())

	// History frames go first, oldest access first, cache frames last.
	for _, want := range []int{2, 3, 1} {
		id, ok := tr.Evict()
		require.True(t, ok)
		require.Equal(t, want, id)
	}

	id, ok := tr.Evict()
	require.False(t, ok)
	require.Equal(t, 0, id)
	require.Equal(t, 0, tr.Size())
}

func TestTracker_RecordAccess_RefreshesHistoryOrder(t *testing.T) {
	tr := New(4, 3)

	tr.RecordAccess(1)
	tr.RecordAccess(2)
	// A second access keeps frame 1 below k but makes it the more
	// recently seen of the two.
	tr.RecordAccess(1)

	tr.SetEvictable(1, true)
	tr.SetEvictable(2, true)

	id, ok := tr.Evict()
	require.True(t, ok)
	require.Equal(t, 2, id)
}

func TestTracker_Evict_CacheIsLRUByLastAccess(t *testing.T) {
	tr := New(4, 2)

	tr.RecordAccess(1)
	tr.RecordAccess(1)
	tr.RecordAccess(2)
	tr.RecordAccess(2)
	// Frame 1 is now the more recently used cache frame.
	tr.RecordAccess(1)

	tr.SetEvictable(1, true)
	tr.SetEvictable(2, true)

	for _, want := range []int{2, 1} {
		id, ok := tr.Evict()
		require.True(t, ok)
		require.Equal(t, want, id)
	}
}

func TestTracker_KOne_GoesStraightToCache(t *testing.T) {
	tr := New(2, 1)

	tr.RecordAccess(1)
	tr.SetEvictable(1, true)
	require.Equal(t, 1, tr.Size())

	id, ok := tr.Evict()
	require.True(t, ok)
	require.Equal(t, 1, id)
}

func TestTracker_Evict_SkipsPinnedFrames(t *testing.T) {
	tr := New(3, 2)

	tr.RecordAccess(1)
	tr.RecordAccess(2)
	tr.SetEvictable(2, true)
	require.Equal(t, 1, tr.Size())

	// Frame 1 is older but pinned, so the scan passes over it.
	id, ok := tr.Evict()
	require.True(t, ok)
	require.Equal(t, 2, id)

	_, ok = tr.Evict()
	require.False(t, ok)
	require.Equal(t, 0, tr.Size())
}

func TestTracker_SetEvictable_UnknownFrameIgnored(t *testing.T) {
	tr := New(2, 2)

	tr.SetEvictable(0, true)
	require.Equal(t, 0, tr.Size())

	tr.RecordAccess(0)
	tr.SetEvictable(0, true)
	require.Equal(t, 1, tr.Size())

	// Same value again must not change the count.
	tr.SetEvictable(0, true)
	require.Equal(t, 1, tr.Size())
}

func TestTracker_Remove_DropsAccessHistory(t *testing.T) {
	tr := New(4, 2)

	tr.RecordAccess(1)
	tr.RecordAccess(2)
	tr.RecordAccess(2)
	tr.SetEvictable(1, true)
	tr.SetEvictable(2, true)
	require.Equal(t, 2, tr.Size())

	// Remove works on history and cache residents alike.
	tr.Remove(1)
	require.Equal(t, 1, tr.Size())
	tr.Remove(2)
	require.Equal(t, 0, tr.Size())

	// Untracked frames are ignored.
	tr.Remove(99)
	tr.Remove(1)
	require.Equal(t, 0, tr.Size())

	// A removed frame starts over with a fresh history.
	tr.RecordAccess(1)
	_, ok := tr.Evict()
	require.False(t, ok, "fresh frame must not be evictable yet")
}

func TestTracker_RecordAccess_CapacityGuard(t *testing.T) {
	tr := New(2, 2)

	tr.RecordAccess(1)
	tr.RecordAccess(2)

	// A third frame does not fit and leaves no trace behind.
	tr.RecordAccess(3)
	tr.SetEvictable(3, true)
	require.Equal(t, 0, tr.Size())

	// Tracked frames keep recording fine at capacity.
	tr.RecordAccess(2)
	tr.SetEvictable(1, true)
	tr.SetEvictable(2, true)
	require.Equal(t, 2, tr.Size())

	id, ok := tr.Evict()
	require.True(t, ok)
	require.Equal(t, 1, id)

	// Eviction frees a slot for the previously rejected frame.
	tr.RecordAccess(3)
	tr.SetEvictable(3, true)
	require.Equal(t, 2, tr.Size())
}

func TestTracker_NegativeFrameIgnored(t *testing.T) {
	tr := New(2, 2)

	tr.RecordAccess(-1)
	tr.SetEvictable(-1, true)
	tr.Remove(-1)
	require.Equal(t, 0, tr.Size())
}

func TestTracker_ConcurrentOps(t *testing.T) {
	const capacity = 64
	tr := New(capacity, 2)

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func(seed int) {
			defer wg.Done()
			for i := 0; i < 1000; i++ {
				id := (seed*17 + i) % capacity
				switch i % 4 {
				case 0:
					tr.RecordAccess(id)
				case 1:
					tr.SetEvictable(id, true)
				case 2:
					tr.SetEvictable(id, false)
				default:
					tr.Evict()
				}
			}
		}(w)
	}
	wg.Wait()

	size := tr.Size()
	require.GreaterOrEqual(t, size, 0)
	require.LessOrEqual(t, size, capacity)

	seen := make(map[int]bool)
	for {
		id, ok := tr.Evict()
		if !ok {
			break
		}
		require.False(t, seen[id])
		seen[id] = true
	}
	require.Len(t, seen, size)
}
