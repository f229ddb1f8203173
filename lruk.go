package framex

import "github.com/tuannm99/framex/pkg/lrukx"

type lrukAdapter struct {
	counters
	t *lrukx.Tracker
}

var _ StatsSource = (*lrukAdapter)(nil)

func newLRUKAdapter(capacity, k int) Replacer {
	return &lrukAdapter{t: lrukx.New(capacity, k)}
}

func (a *lrukAdapter) Victim() (int, bool) {
	id, ok := a.t.Evict()
	if ok {
		a.victims.Add(1)
	} else {
		a.emptyVictims.Add(1)
	}
	return id, ok
}

// Pin keeps the frame's access history so a later Unpin restores its
// backward k-distance instead of starting over.
func (a *lrukAdapter) Pin(frameID int) {
	a.pins.Add(1)
	a.t.SetEvictable(frameID, false)
}

func (a *lrukAdapter) Unpin(frameID int) {
	a.unpins.Add(1)
	a.t.RecordAccess(frameID)
	a.t.SetEvictable(frameID, true)
}

func (a *lrukAdapter) Size() int {
	return a.t.Size()
}

func (a *lrukAdapter) Stats() Stats {
	return a.snapshot(LRUK.String())
}
