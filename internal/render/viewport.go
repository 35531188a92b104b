package render

import "github.com/avasek/gridterm/internal/grid"

// Offset shifts the rank-2 viewport within a frame, in glyph cells.
type Offset struct {
	Y, X int
}

// DisplayableRows is the number of trail frames a terminal of the given
// character height can show in the given mode. Never less than one, so a
// degenerate terminal still renders a minimal window.
func DisplayableRows(termRows int, mode GlyphMode) int {
	n := (termRows-1)*mode.Descriptor().SubRows + 1
	if n < 1 {
		n = 1
	}
	return n
}

// Clip computes the visible binary sub-region of a rank-2 frame for a
// terminal of termRows by termCols character cells. The region is clipped
// to the frame, never wrapped or scaled; out-of-bounds offsets shrink it
// silently, down to empty. The result is padded with off cells to an exact
// multiple of the mode's sub-cell shape.
func Clip(f grid.Frame, mode GlyphMode, off Offset, termRows, termCols int, cutoff float64) [][]bool {
	d := mode.Descriptor()
	h, w := f.Shape()

	rowLo, rowHi := span(h, d.SubRows, off.Y, termRows)
	colLo, colHi := span(w, d.SubCols, off.X, termCols)

	visRows := rowHi - rowLo + 1
	visCols := colHi - colLo + 1
	if visRows < 0 {
		visRows = 0
	}
	if visCols < 0 {
		visCols = 0
	}

	cells := padded(visRows, visCols, d)
	for y := 0; y < visRows; y++ {
		for x := 0; x < visCols; x++ {
			cells[y][x] = IsOn(f.At(rowLo-1+y, colLo-1+x), cutoff)
		}
	}
	return cells
}

// span computes the 1-based inclusive visible range along one axis: extent
// cells in the frame, sub sub-cells per glyph, off glyph cells of offset,
// term character cells of screen.
func span(extent, sub, off, term int) (lo, hi int) {
	lo = sub * off
	if lo < 1 {
		lo = 1
	}
	hi = sub * (term + off - 1)
	if hi > extent {
		hi = extent
	}
	return lo, hi
}

// Trail builds the rank-1 scrolling history matrix: the most recent
// k = min(tick, DisplayableRows) frames stacked oldest-first, time running
// down the screen and grid position across it. As the tick index passes the
// window the oldest frame falls out; this is a sliding window, never a
// wraparound. Width is clipped to the terminal and the result padded with
// off cells to sub-cell multiples.
func Trail(history []grid.Frame, tick, termRows, termCols int, mode GlyphMode, cutoff float64) [][]bool {
	d := mode.Descriptor()

	k := DisplayableRows(termRows, mode)
	if tick < k {
		k = tick
	}
	if len(history) < k {
		k = len(history)
	}
	if k < 0 {
		k = 0
	}

	width := 0
	if len(history) > 0 {
		width = history[len(history)-1].Len()
	}
	maxCols := termCols * d.SubCols
	if maxCols < d.SubCols {
		maxCols = d.SubCols
	}
	if width > maxCols {
		width = maxCols
	}

	cells := padded(k, width, d)
	for i := 0; i < k; i++ {
		f := history[len(history)-k+i]
		for x := 0; x < width; x++ {
			cells[i][x] = IsOn(f.At1(x), cutoff)
		}
	}
	return cells
}

// padded allocates an off-initialized matrix of rows x cols rounded up to
// the mode's sub-cell multiples.
func padded(rows, cols int, d Descriptor) [][]bool {
	pr := roundUp(rows, d.SubRows)
	pc := roundUp(cols, d.SubCols)
	if pr == 0 || pc == 0 {
		return nil
	}
	cells := make([][]bool, pr)
	for i := range cells {
		cells[i] = make([]bool, pc)
	}
	return cells
}

func roundUp(n, m int) int {
	if n <= 0 {
		return 0
	}
	return (n + m - 1) / m * m
}
