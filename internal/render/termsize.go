package render

import (
	"io"
	"os"

	"golang.org/x/term"
)

// SizeFunc reports the terminal extent in character cells (rows, cols).
// The driver calls it on every render so a resize takes effect on the next
// tick without any signal handling.
type SizeFunc func() (rows, cols int)

// TermSize builds a SizeFunc querying the given stream. When the stream is
// not a terminal, or the query fails, it degrades to a minimal 1x1 window
// instead of failing the render.
func TermSize(out io.Writer) SizeFunc {
	f, ok := out.(*os.File)
	return func() (int, int) {
		if !ok {
			return 1, 1
		}
		cols, rows, err := term.GetSize(int(f.Fd()))
		if err != nil || rows < 1 || cols < 1 {
			return 1, 1
		}
		return rows, cols
	}
}
