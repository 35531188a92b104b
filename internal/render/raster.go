package render

import (
	"fmt"
	"strings"
)

// Braille patterns pack a 4x2 dot block per rune:
//
//	1 4
//	2 5
//	3 6
//	7 8
//
// Unicode offset 0x2800.
var dotBits = [4][2]rune{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

// brailleBase is the empty braille pattern U+2800.
const brailleBase = 0x2800

// Block glyphs indexed by (top<<1 | bottom).
var blockGlyphs = [4]rune{' ', '▄', '▀', '█'}

// EncodeBraille packs a 4x2 boolean block into one braille rune.
func EncodeBraille(block [4][2]bool) rune {
	r := rune(brailleBase)
	for y := 0; y < 4; y++ {
		for x := 0; x < 2; x++ {
			if block[y][x] {
				r |= dotBits[y][x]
			}
		}
	}
	return r
}

// DecodeBraille recovers the 4x2 boolean block from a braille rune.
// Runes outside the U+2800 range decode as all-off.
func DecodeBraille(r rune) [4][2]bool {
	var block [4][2]bool
	if r < brailleBase || r > brailleBase+0xFF {
		return block
	}
	for y := 0; y < 4; y++ {
		for x := 0; x < 2; x++ {
			block[y][x] = r&dotBits[y][x] != 0
		}
	}
	return block
}

// EncodeBlock maps a 2x1 boolean block (top, bottom) onto one of the four
// half/full block glyphs.
func EncodeBlock(top, bottom bool) rune {
	idx := 0
	if top {
		idx |= 2
	}
	if bottom {
		idx |= 1
	}
	return blockGlyphs[idx]
}

// Rasterize packs a binary cell matrix into glyph text, one rune per
// mode-defined sub-cell block, glyph rows separated by newlines. The
// windower delivers matrices whose dimensions are exact multiples of the
// mode's sub-cell shape; anything else is a programming error here, not a
// recoverable condition.
func Rasterize(cells [][]bool, mode GlyphMode) string {
	d := mode.Descriptor()
	rows := len(cells)
	cols := 0
	if rows > 0 {
		cols = len(cells[0])
	}
	if rows%d.SubRows != 0 || cols%d.SubCols != 0 {
		panic(fmt.Sprintf("render: %dx%d cells not a multiple of %dx%d %s blocks",
			rows, cols, d.SubRows, d.SubCols, mode))
	}

	var b strings.Builder
	b.Grow(rows / d.SubRows * (cols/d.SubCols*3 + 1))
	for gy := 0; gy < rows; gy += d.SubRows {
		if gy > 0 {
			b.WriteByte('\n')
		}
		for gx := 0; gx < cols; gx += d.SubCols {
			switch mode {
			case ModeBlock:
				b.WriteRune(EncodeBlock(cells[gy][gx], cells[gy+1][gx]))
			case ModeBraille:
				var block [4][2]bool
				for y := 0; y < 4; y++ {
					for x := 0; x < 2; x++ {
						block[y][x] = cells[gy+y][gx+x]
					}
				}
				b.WriteRune(EncodeBraille(block))
			}
		}
	}
	return b.String()
}
