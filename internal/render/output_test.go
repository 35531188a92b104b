package render

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/avasek/gridterm/internal/grid"
)

func fixedSize(rows, cols int) SizeFunc {
	return func() (int, int) { return rows, cols }
}

func newTestOutput(t *testing.T, buf *bytes.Buffer, opts Options) *Output {
	t.Helper()
	if opts.Size == nil {
		opts.Size = fixedSize(10, 20)
	}
	out, err := NewOutput(buf, opts)
	if err != nil {
		t.Fatal(err)
	}
	return out
}

func TestOutput_ClearOnFirstTickOnly(t *testing.T) {
	var buf bytes.Buffer
	out := newTestOutput(t, &buf, Options{Mode: ModeBlock})
	f := onBoard(4, 4)

	if err := out.Render(f, 1, 0.05); err != nil {
		t.Fatal(err)
	}
	first := buf.String()
	if !strings.HasPrefix(first, "\x1bc") {
		t.Error("tick 1 must begin with the full-screen clear")
	}

	buf.Reset()
	if err := out.Render(f, 2, 0.10); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(buf.String(), "\x1bc") {
		t.Error("tick 2 re-emitted the full-screen clear")
	}
}

func TestOutput_GridAtOriginThenLabel(t *testing.T) {
	var buf bytes.Buffer
	out := newTestOutput(t, &buf, Options{Mode: ModeBlock, Size: fixedSize(6, 20)})

	if err := out.Render(onBoard(4, 4), 1, 1.5); err != nil {
		t.Fatal(err)
	}
	s := buf.String()

	gridAt := strings.Index(s, "\x1b[1;1H")
	labelAt := strings.Index(s, "\x1b[6;1H")
	if gridAt < 0 {
		t.Fatal("grid was not written at the screen origin")
	}
	if labelAt < 0 {
		t.Fatal("label was not written at the bottom corner")
	}
	if labelAt < gridAt {
		t.Error("label must follow the grid write")
	}
	if !strings.Contains(s, "t=1.50") {
		t.Errorf("missing elapsed-time label in %q", s)
	}
}

func TestOutput_GlyphContent(t *testing.T) {
	var buf bytes.Buffer
	out := newTestOutput(t, &buf, Options{Mode: ModeBlock})
	if err := out.Render(onBoard(8, 8), 1, 0); err != nil {
		t.Fatal(err)
	}
	if got := strings.Count(buf.String(), "█"); got != 32 {
		t.Errorf("8x8 all-on board wrote %d full blocks, want 32", got)
	}
}

func TestOutput_ColorWrapsGrid(t *testing.T) {
	var buf bytes.Buffer
	out := newTestOutput(t, &buf, Options{Mode: ModeBlock, Color: Ansi256(46)})
	if err := out.Render(onBoard(2, 2), 1, 0); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "\x1b[38;5;46m") {
		t.Error("grid write missing the color specifier")
	}
}

func TestOutput_RankOneTrail(t *testing.T) {
	var buf bytes.Buffer
	out := newTestOutput(t, &buf, Options{Mode: ModeBlock, Store: true, Size: fixedSize(10, 20)})

	line := grid.NewLine([]float64{1, 1, 1, 1})
	for tick := 1; tick <= 3; tick++ {
		if err := out.Append(line); err != nil {
			t.Fatal(err)
		}
		buf.Reset()
		if err := out.Render(line, tick, float64(tick)); err != nil {
			t.Fatal(err)
		}
	}
	// Three trail rows in block mode pack into two glyph rows, the second
	// half-filled: 4 full blocks then 4 upper halves.
	s := buf.String()
	if strings.Count(s, "█") != 4 || strings.Count(s, "▀") != 4 {
		t.Errorf("trail glyphs wrong: %q", s)
	}
}

func TestOutput_AppendShapeMismatch(t *testing.T) {
	var buf bytes.Buffer
	out := newTestOutput(t, &buf, Options{Mode: ModeBlock, Store: true})
	if err := out.Append(onBoard(4, 4)); err != nil {
		t.Fatal(err)
	}
	if err := out.Append(onBoard(4, 5)); !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("got %v, want ErrShapeMismatch", err)
	}
}

func TestOutput_BoundedRetention(t *testing.T) {
	var buf bytes.Buffer
	out := newTestOutput(t, &buf, Options{Mode: ModeBlock, Store: true, Retain: 3})
	line := grid.NewLine([]float64{1})
	for i := 0; i < 10; i++ {
		if err := out.Append(line); err != nil {
			t.Fatal(err)
		}
	}
	if got := len(out.History()); got != 3 {
		t.Errorf("history length %d, want ring bound 3", got)
	}
}

func TestOutput_NegativeRetention(t *testing.T) {
	var buf bytes.Buffer
	if _, err := NewOutput(&buf, Options{Retain: -1}); !errors.Is(err, ErrBadRetention) {
		t.Errorf("got %v, want ErrBadRetention", err)
	}
}

func TestOutput_WriteErrorIsFatal(t *testing.T) {
	out, err := NewOutput(failingWriter{}, Options{Mode: ModeBlock, Size: fixedSize(10, 20)})
	if err != nil {
		t.Fatal(err)
	}
	if err := out.Render(onBoard(2, 2), 1, 0); !errors.Is(err, errBroken) {
		t.Errorf("got %v, want broken stream error", err)
	}
}

func TestOutput_Extent(t *testing.T) {
	var buf bytes.Buffer
	out := newTestOutput(t, &buf, Options{Mode: ModeBlock})
	f := onBoard(2, 2)
	for tick := 1; tick <= 5; tick++ {
		if err := out.Render(f, tick, 0); err != nil {
			t.Fatal(err)
		}
	}
	ext := out.Extent()
	if ext.Start != 1 || ext.End != 5 {
		t.Errorf("extent = %+v, want ticks 1..5", ext)
	}
	if !out.Running() {
		t.Error("output should report running before Stop")
	}
	out.Stop()
	if out.Running() || out.History() != nil {
		t.Error("Stop must end the run and release the history")
	}
}

func TestOutput_DegenerateSize(t *testing.T) {
	var buf bytes.Buffer
	out := newTestOutput(t, &buf, Options{Mode: ModeBraille, Size: fixedSize(1, 1)})
	if err := out.Render(onBoard(32, 32), 1, 0); err != nil {
		t.Fatal(err)
	}
}
