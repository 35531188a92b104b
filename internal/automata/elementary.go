package automata

import (
	"github.com/avasek/gridterm/internal/grid"
)

// Elementary is a one-dimensional Wolfram code automaton. Its frames are
// rank 1, so the renderer shows them as a scrolling history trail.
type Elementary struct {
	w    int
	rule uint8
	cur  []uint8
	tmp  []uint8
}

// NewElementary returns a width-w automaton running the given rule.
func NewElementary(w int, rule uint8) *Elementary {
	return &Elementary{w: w, rule: rule, cur: make([]uint8, w), tmp: make([]uint8, w)}
}

func (e *Elementary) Name() string { return "elementary" }

// Rule returns the Wolfram code.
func (e *Elementary) Rule() uint8 { return e.rule }

// SetRule swaps the Wolfram code for subsequent steps.
func (e *Elementary) SetRule(rule uint8) { e.rule = rule }

// Reset clears the line and lights a single center cell. The seed is
// ignored: the canonical elementary start is deterministic.
func (e *Elementary) Reset(seed int64) {
	for i := range e.cur {
		e.cur[i] = 0
	}
	e.cur[e.w/2] = 1
}

// Step computes the next generation with wraparound neighbors.
func (e *Elementary) Step() {
	copy(e.tmp, e.cur)
	for x := 0; x < e.w; x++ {
		left := e.tmp[(x-1+e.w)%e.w]
		center := e.tmp[x]
		right := e.tmp[(x+1)%e.w]
		idx := (left << 2) | (center << 1) | right
		e.cur[x] = (e.rule >> idx) & 1
	}
}

// Frame snapshots the line as a rank-1 frame.
func (e *Elementary) Frame() grid.Frame {
	values := make([]float64, e.w)
	for i, c := range e.cur {
		values[i] = float64(c)
	}
	return grid.NewLine(values)
}

func init() {
	register("elementary", func(w, h int) Sim { return NewElementary(w, 110) })
}
