package framex

import "github.com/tuannm99/framex/pkg/clockx"

type clockAdapter struct {
	counters
	t *clockx.Tracker
}

var _ StatsSource = (*clockAdapter)(nil)

func newClockAdapter(capacity int) Replacer {
	return &clockAdapter{t: clockx.New(capacity)}
}

func (a *clockAdapter) Victim() (int, bool) {
	id, ok := a.t.Evict()
	if !ok {
		a.emptyVictims.Add(1)
		// The tracker reports -1; frameID carries no meaning here.
		return 0, false
	}
	a.victims.Add(1)
	return id, true
}

func (a *clockAdapter) Pin(frameID int) {
	a.pins.Add(1)
	a.t.Remove(frameID)
}

func (a *clockAdapter) Unpin(frameID int) {
	a.unpins.Add(1)
	a.t.Touch(frameID)
	a.t.SetEvictable(frameID, true)
}

func (a *clockAdapter) Size() int {
	return a.t.Size()
}

func (a *clockAdapter) Stats() Stats {
	return a.snapshot(Clock.String())
}
