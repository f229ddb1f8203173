package framex

import "github.com/tuannm99/framex/pkg/lrux"

type lruAdapter struct {
	counters
	r *lrux.Replacer
}

var _ StatsSource = (*lruAdapter)(nil)

func newLRUAdapter(capacity int) Replacer {
	return &lruAdapter{r: lrux.New(capacity)}
}

func (a *lruAdapter) Victim() (int, bool) {
	id, ok := a.r.Victim()
	if ok {
		a.victims.Add(1)
	} else {
		a.emptyVictims.Add(1)
	}
	return id, ok
}

func (a *lruAdapter) Pin(frameID int) {
	a.pins.Add(1)
	a.r.Pin(frameID)
}

func (a *lruAdapter) Unpin(frameID int) {
	a.unpins.Add(1)
	a.r.Unpin(frameID)
}

func (a *lruAdapter) Size() int {
	return a.r.Size()
}

func (a *lruAdapter) Stats() Stats {
	return a.snapshot(LRU.String())
}
