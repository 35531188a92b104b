package automata

import (
	"math/rand"

	"github.com/avasek/gridterm/internal/grid"
)

// Life is Conway's Game of Life on a toroidal board.
type Life struct {
	w, h int
	cur  []uint8
	nxt  []uint8
}

// NewLife returns a Life board of w by h cells.
func NewLife(w, h int) *Life {
	return &Life{w: w, h: h, cur: make([]uint8, w*h), nxt: make([]uint8, w*h)}
}

func (l *Life) Name() string { return "life" }

// Reset randomizes the board from the seed.
func (l *Life) Reset(seed int64) {
	fillBinary(rand.New(rand.NewSource(seed)), l.cur)
}

// Step advances one generation.
func (l *Life) Step() {
	w, h := l.w, l.h
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			neighbors := 0
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					nx := (x + dx + w) % w
					ny := (y + dy + h) % h
					neighbors += int(l.cur[ny*w+nx])
				}
			}
			idx := y*w + x
			alive := l.cur[idx] == 1
			l.nxt[idx] = 0
			if (alive && (neighbors == 2 || neighbors == 3)) || (!alive && neighbors == 3) {
				l.nxt[idx] = 1
			}
		}
	}
	l.cur, l.nxt = l.nxt, l.cur
}

// Frame snapshots the board as a rank-2 frame.
func (l *Life) Frame() grid.Frame {
	return grid.FromCells(l.h, l.w, l.cur)
}

// Set forces a cell alive; used for seeding known patterns in tests.
func (l *Life) Set(x, y int) {
	l.cur[y*l.w+x] = 1
}

func init() {
	register("life", func(w, h int) Sim { return NewLife(w, h) })
}
