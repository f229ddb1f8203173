// Package workload generates deterministic pin/unpin/victim traces for
// driving frame replacement policies.
package workload

import (
	"fmt"
	"math/rand"

	"github.com/tuannm99/framex"
)

type Pattern int

const (
	Sequential Pattern = iota + 1
	HotCold
	Loop
)

func (p Pattern) String() string {
	switch p {
	case Sequential:
		return "sequential"
	case HotCold:
		return "hot_cold"
	case Loop:
		return "loop"
	default:
		return "unknown"
	}
}

func GetPattern(s string) (Pattern, error) {
	switch s {
	case "sequential":
		return Sequential, nil
	case "hot_cold":
		return HotCold, nil
	case "loop":
		return Loop, nil
	default:
		return 0, fmt.Errorf("invalid workload pattern: %s", s)
	}
}

type Op int

const (
	OpUnpin Op = iota + 1
	OpPin
	OpVictim
)

// Step is one operation of a trace.
type Step struct {
	Op      Op
	FrameID int
}

// Share of steps per operation, and of hot-set hits for HotCold.
const (
	unpinShare     = 0.6
	pinShare       = 0.2
	hotAccessShare = 0.8
)

// Generator produces trace steps from a seeded source, so the same seed
// always yields the same trace.
//
// Sequential walks the whole frame space in order, giving the longest
// possible reuse distance. Loop cycles a window of half the space, so
// frames come back around quickly. HotCold skews accesses onto a small
// hot set.
type Generator struct {
	pattern Pattern
	frames  int
	hot     int // hot-set bound for HotCold
	window  int // cycle length for Loop
	rng     *rand.Rand
	cursor  int
}

func NewGenerator(pattern Pattern, frames int, seed int64, hotFraction float64) *Generator {
	if frames <= 0 {
		frames = 1
	}
	if hotFraction <= 0 || hotFraction >= 1 {
		hotFraction = 0.2
	}

	hot := int(float64(frames)*hotFraction + 0.5)
	if hot < 1 {
		hot = 1
	}
	window := frames / 2
	if window < 1 {
		window = 1
	}

	return &Generator{
		pattern: pattern,
		frames:  frames,
		hot:     hot,
		window:  window,
		rng:     rand.New(rand.NewSource(seed)),
	}
}

// Next returns the following step of the trace.
func (g *Generator) Next() Step {
	switch r := g.rng.Float64(); {
	case r < unpinShare:
		return Step{Op: OpUnpin, FrameID: g.nextFrame()}
	case r < unpinShare+pinShare:
		return Step{Op: OpPin, FrameID: g.rng.Intn(g.frames)}
	default:
		return Step{Op: OpVictim}
	}
}

// Steps materializes the next n steps.
func (g *Generator) Steps(n int) []Step {
	if n <= 0 {
		return nil
	}
	steps := make([]Step, 0, n)
	for i := 0; i < n; i++ {
		steps = append(steps, g.Next())
	}
	return steps
}

func (g *Generator) nextFrame() int {
	switch g.pattern {
	case Sequential:
		id := g.cursor % g.frames
		g.cursor++
		return id
	case Loop:
		id := g.cursor % g.window
		g.cursor++
		return id
	default:
		if g.hot < g.frames && g.rng.Float64() < hotAccessShare {
			return g.rng.Intn(g.hot)
		}
		return g.rng.Intn(g.frames)
	}
}

// Run replays a trace against a replacer.
func Run(r framex.Replacer, steps []Step) {
	for _, s := range steps {
		switch s.Op {
		case OpUnpin:
			r.Unpin(s.FrameID)
		case OpPin:
			r.Pin(s.FrameID)
		case OpVictim:
			r.Victim()
		}
	}
}
