package render

import (
	"fmt"
	"io"
	"strings"
)

// Raw control sequences. The writer depends on these exact bytes; terminals
// that lack save/restore (rare outside dumb terminals) are out of contract.
const (
	seqSave    = "\x1b[s"
	seqRestore = "\x1b[u"
	seqHide    = "\x1b[?25l"
	seqShow    = "\x1b[?25h"
	seqClear   = "\x1bc"
	seqReset   = "\x1b[0m"
)

// Color is a terminal foreground color specifier, emitted verbatim as an
// SGR sequence before glyph text. The zero value leaves the terminal's
// current color untouched.
type Color string

// Ansi256 returns a Color for an xterm 256-palette index.
func Ansi256(n int) Color {
	return Color(fmt.Sprintf("\x1b[38;5;%dm", n))
}

// TermWriter emits positioned, color-wrapped text on an explicit output
// stream. It owns no state beyond the stream handle; everything it writes
// is wrapped in the fixed save/hide/move/show/restore discipline so the
// cursor never visibly moves. The order of the sequence must not change:
// reordering causes the flicker this type exists to prevent.
type TermWriter struct {
	out io.Writer
}

// NewTermWriter wraps an output stream. The stream is shared, unsynchronized
// state; a single writer per terminal is assumed for the run.
func NewTermWriter(out io.Writer) *TermWriter {
	return &TermWriter{out: out}
}

// Clear wipes the whole screen. Issued once, before the first positioned
// write of a run.
func (w *TermWriter) Clear() error {
	_, err := io.WriteString(w.out, seqClear)
	return err
}

// WriteAt writes text with its first character at 1-based (row, col),
// wrapped in save cursor, hide cursor, move, color, text, show cursor,
// restore cursor. A failed write propagates; there is no retry, since a
// renderer without its stream has no recovery.
func (w *TermWriter) WriteAt(row, col int, color Color, text string) error {
	var b strings.Builder
	b.Grow(len(text) + 32)
	b.WriteString(seqSave)
	b.WriteString(seqHide)
	fmt.Fprintf(&b, "\x1b[%d;%dH", row, col)
	if color != "" {
		b.WriteString(string(color))
	}
	b.WriteString(text)
	if color != "" {
		b.WriteString(seqReset)
	}
	b.WriteString(seqShow)
	b.WriteString(seqRestore)
	_, err := io.WriteString(w.out, b.String())
	return err
}
