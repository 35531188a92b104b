package grid

import "fmt"

// Frame is one snapshot of simulation state, rank 1 (a line of cells) or
// rank 2 (a board). Values are immutable once stored in an output history.
type Frame struct {
	rank int
	h, w int
	data []float64
}

// NewLine builds a rank-1 frame from values. The slice is copied.
func NewLine(values []float64) Frame {
	data := make([]float64, len(values))
	copy(data, values)
	return Frame{rank: 1, h: 1, w: len(values), data: data}
}

// NewBoard builds a rank-2 frame of h rows by w columns from row-major
// values. The slice is copied. Panics if len(values) != h*w.
func NewBoard(h, w int, values []float64) Frame {
	if len(values) != h*w {
		panic(fmt.Sprintf("grid: board %dx%d wants %d values, got %d", h, w, h*w, len(values)))
	}
	data := make([]float64, len(values))
	copy(data, values)
	return Frame{rank: 2, h: h, w: w, data: data}
}

// FromCells converts a byte cell buffer (automata convention, row-major)
// into a rank-2 frame of 0/1 values.
func FromCells(h, w int, cells []uint8) Frame {
	data := make([]float64, h*w)
	for i := range data {
		data[i] = float64(cells[i])
	}
	return Frame{rank: 2, h: h, w: w, data: data}
}

// Rank reports 1 or 2.
func (f Frame) Rank() int { return f.rank }

// Shape returns (rows, cols). Rank-1 frames report one row.
func (f Frame) Shape() (h, w int) { return f.h, f.w }

// Len returns the cell count of a rank-1 frame.
func (f Frame) Len() int { return f.w }

// At returns the value at row y, column x.
func (f Frame) At(y, x int) float64 { return f.data[y*f.w+x] }

// At1 returns the value at position x of a rank-1 frame.
func (f Frame) At1(x int) float64 { return f.data[x] }

// Clone returns an independent copy.
func (f Frame) Clone() Frame {
	data := make([]float64, len(f.data))
	copy(data, f.data)
	return Frame{rank: f.rank, h: f.h, w: f.w, data: data}
}

// SameShape reports whether two frames agree in rank and extents.
func (f Frame) SameShape(g Frame) bool {
	return f.rank == g.rank && f.h == g.h && f.w == g.w
}
