package render

import (
	"fmt"
	"io"

	"github.com/avasek/gridterm/internal/grid"
)

// Extent marks the tick range an output has rendered.
type Extent struct {
	Start, End int
	PerTick    int
}

// Options is the immutable display configuration of an output, fixed at
// construction. Mutating display state between ticks is deliberately not
// supported; build a new output instead.
type Options struct {
	Mode   GlyphMode
	Cutoff float64 // 0 means DefaultCutoff
	Color  Color
	Offset Offset
	Store  bool // keep frame history (required for rank-1 trails)
	Retain int  // 0 = store all, k > 0 = bounded ring of k frames
	Size   SizeFunc
}

// Output drives rendering for one simulation run: it owns the append-only
// frame history, the display configuration, and the terminal writer. One
// render per tick, synchronous, invoked by the external tick loop. The
// renderer paces nothing and exerts no backpressure.
type Output struct {
	tw     *TermWriter
	size   SizeFunc
	mode   GlyphMode
	cutoff float64
	color  Color
	offset Offset
	store  bool
	retain int

	frames  []grid.Frame
	running bool
	extent  Extent
	started bool
}

// NewOutput builds an output writing to out. Construction is the only
// failure point for configuration; a render call never revalidates.
func NewOutput(out io.Writer, opts Options) (*Output, error) {
	if opts.Retain < 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadRetention, opts.Retain)
	}
	cutoff := opts.Cutoff
	if cutoff == 0 {
		cutoff = DefaultCutoff
	}
	size := opts.Size
	if size == nil {
		size = TermSize(out)
	}
	perTick := 1
	return &Output{
		tw:      NewTermWriter(out),
		size:    size,
		mode:    opts.Mode,
		cutoff:  cutoff,
		color:   opts.Color,
		offset:  opts.Offset,
		store:   opts.Store,
		retain:  opts.Retain,
		running: true,
		extent:  Extent{PerTick: perTick},
	}, nil
}

// Append stores a frame in the history. Frames are owned by the output once
// stored and must not be mutated by the caller. All stored frames must share
// one shape.
func (o *Output) Append(f grid.Frame) error {
	if !o.store {
		return nil
	}
	if len(o.frames) > 0 && !f.SameShape(o.frames[len(o.frames)-1]) {
		h, w := f.Shape()
		return fmt.Errorf("%w: got %dx%d", ErrShapeMismatch, h, w)
	}
	o.frames = append(o.frames, f)
	if o.retain > 0 && len(o.frames) > o.retain {
		o.frames = o.frames[len(o.frames)-o.retain:]
	}
	return nil
}

// History returns the stored frames. Read-only by contract.
func (o *Output) History() []grid.Frame { return o.frames }

// Running reports whether the run is still live.
func (o *Output) Running() bool { return o.running }

// Stop marks the run finished. No teardown beyond releasing the history.
func (o *Output) Stop() {
	o.running = false
	o.frames = nil
}

// Extent returns the rendered tick range.
func (o *Output) Extent() Extent { return o.extent }

// Render draws one tick. The first call of a run clears the screen; every
// call re-queries the terminal size, windows the frame (or the trail, for
// rank-1 frames), packs it into glyphs, writes the grid at the screen
// origin, then overlays the elapsed-time label in the bottom corner as a
// second positioned write. A failed terminal write is fatal to the run.
func (o *Output) Render(f grid.Frame, tick int, elapsed float64) error {
	rows, cols := o.size()

	if !o.started {
		if err := o.tw.Clear(); err != nil {
			return err
		}
		o.started = true
		o.extent.Start = tick
	}
	o.extent.End = tick

	var cells [][]bool
	if f.Rank() == 1 {
		history := o.frames
		if len(history) == 0 {
			history = []grid.Frame{f}
		}
		cells = Trail(history, tick, rows, cols, o.mode, o.cutoff)
	} else {
		cells = Clip(f, o.mode, o.offset, rows, cols, o.cutoff)
	}

	if err := o.tw.WriteAt(1, 1, o.color, Rasterize(cells, o.mode)); err != nil {
		return err
	}

	label := fmt.Sprintf("t=%.2f", elapsed)
	return o.tw.WriteAt(rows, 1, "", label)
}
