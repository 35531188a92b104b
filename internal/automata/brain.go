package automata

import (
	"math/rand"

	"github.com/avasek/gridterm/internal/grid"
)

const (
	brainDead  = 0
	brainOn    = 1
	brainDying = 2
)

// Brain is Brian's Brain: cells fire, spend one generation dying, then
// rest. The dying state maps to a value below the default render cutoff, so
// only firing cells light up while the full state remains in the frame.
type Brain struct {
	w, h int
	cur  []uint8
	nxt  []uint8
}

// NewBrain returns a Brian's Brain board of w by h cells.
func NewBrain(w, h int) *Brain {
	return &Brain{w: w, h: h, cur: make([]uint8, w*h), nxt: make([]uint8, w*h)}
}

func (b *Brain) Name() string { return "brain" }

// Reset sparsely seeds firing cells from the seed.
func (b *Brain) Reset(seed int64) {
	rng := rand.New(rand.NewSource(seed))
	for i := range b.cur {
		if rng.Intn(8) == 0 {
			b.cur[i] = brainOn
		} else {
			b.cur[i] = brainDead
		}
	}
}

// Step advances one generation.
func (b *Brain) Step() {
	w, h := b.w, b.h
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			idx := y*w + x
			switch b.cur[idx] {
			case brainOn:
				b.nxt[idx] = brainDying
			case brainDying:
				b.nxt[idx] = brainDead
			default:
				neighbors := 0
				for dy := -1; dy <= 1; dy++ {
					for dx := -1; dx <= 1; dx++ {
						if dx == 0 && dy == 0 {
							continue
						}
						if b.cur[((y+dy+h)%h)*w+(x+dx+w)%w] == brainOn {
							neighbors++
						}
					}
				}
				if neighbors == 2 {
					b.nxt[idx] = brainOn
				} else {
					b.nxt[idx] = brainDead
				}
			}
		}
	}
	b.cur, b.nxt = b.nxt, b.cur
}

// Frame snapshots the board; firing cells are 1.0, dying cells 0.4, dead 0.
// The dying value sits under the default cutoff but above zero so a lower
// cutoff reveals the decaying halo.
func (b *Brain) Frame() grid.Frame {
	values := make([]float64, len(b.cur))
	for i, s := range b.cur {
		switch s {
		case brainOn:
			values[i] = 1.0
		case brainDying:
			values[i] = 0.4
		}
	}
	return grid.NewBoard(b.h, b.w, values)
}

func init() {
	register("brain", func(w, h int) Sim { return NewBrain(w, h) })
}
