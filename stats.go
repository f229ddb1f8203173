package framex

import (
	"log/slog"
	"sync/atomic"
)

// Stats is a point-in-time snapshot of a replacer's operation counts.
type Stats struct {
	Algorithm    string
	Pins         uint64
	Unpins       uint64
	Victims      uint64
	EmptyVictims uint64
}

// Log writes the snapshot through the given structured logger.
func (s Stats) Log(logger *slog.Logger) {
	logger.Info("replacer stats",
		slog.Group("replacer",
			slog.String("algorithm", s.Algorithm),
			slog.Uint64("pins", s.Pins),
			slog.Uint64("unpins", s.Unpins),
			slog.Uint64("victims", s.Victims),
			slog.Uint64("empty_victims", s.EmptyVictims),
		),
	)
}

// counters backs the Stats snapshots of the replacer adapters.
type counters struct {
	pins         atomic.Uint64
	unpins       atomic.Uint64
	victims      atomic.Uint64
	emptyVictims atomic.Uint64
}

func (c *counters) snapshot(algorithm string) Stats {
	return Stats{
		Algorithm:    algorithm,
		Pins:         c.pins.Load(),
		Unpins:       c.unpins.Load(),
		Victims:      c.victims.Load(),
		EmptyVictims: c.emptyVictims.Load(),
	}
}
