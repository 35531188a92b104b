// Package render converts simulation grid frames into dense, flicker-free
// character output on an interactive terminal.
//
// More simulated cells than terminal cells fit on screen by packing
// sub-cell blocks into single code points:
//
//   - [ModeBlock]: 2x1 cells per glyph via half/full block characters
//   - [ModeBraille]: 4x2 cells per glyph via the U+2800 braille range
//
// The pipeline per tick is threshold -> window -> rasterize -> write:
// continuous cell values become on/off via a cutoff, the visible region is
// clipped to the live terminal size (rank-2 frames) or built as a scrolling
// trail of recent history (rank-1 frames), packed into glyph text, and
// written inside a fixed save/hide/move/show/restore cursor discipline so
// nothing visibly moves between ticks.
//
// # Thread Safety
//
// An [Output] assumes a single writer per terminal for the duration of a
// run. Rendering is synchronous and driven entirely by the caller's tick
// loop; the renderer never starts background work.
package render
