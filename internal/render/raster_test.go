package render

import (
	"strings"
	"testing"
)

func TestEncodeBraille_Extremes(t *testing.T) {
	var off [4][2]bool
	if got := EncodeBraille(off); got != 0x2800 {
		t.Errorf("all-off = %U, want U+2800", got)
	}

	var on [4][2]bool
	for y := range on {
		for x := range on[y] {
			on[y][x] = true
		}
	}
	if got := EncodeBraille(on); got != 0x28FF {
		t.Errorf("all-on = %U, want U+28FF", got)
	}
}

func TestBraille_RoundTrip(t *testing.T) {
	// Every 8-bit dot pattern must survive encode/decode.
	for mask := 0; mask < 256; mask++ {
		var block [4][2]bool
		bit := 0
		for x := 0; x < 2; x++ {
			for y := 0; y < 3; y++ {
				block[y][x] = mask&(1<<bit) != 0
				bit++
			}
		}
		block[3][0] = mask&0x40 != 0
		block[3][1] = mask&0x80 != 0

		r := EncodeBraille(block)
		if got := DecodeBraille(r); got != block {
			t.Fatalf("mask %#02x: decode(encode) = %v, want %v", mask, got, block)
		}
	}
}

func TestBraille_DotPositions(t *testing.T) {
	// Standard dot numbering: dots 1-8 at bit offsets 0-7.
	tests := []struct {
		y, x int
		want rune
	}{
		{0, 0, 0x2801},
		{1, 0, 0x2802},
		{2, 0, 0x2804},
		{0, 1, 0x2808},
		{1, 1, 0x2810},
		{2, 1, 0x2820},
		{3, 0, 0x2840},
		{3, 1, 0x2880},
	}
	for _, tt := range tests {
		var block [4][2]bool
		block[tt.y][tt.x] = true
		if got := EncodeBraille(block); got != tt.want {
			t.Errorf("dot (%d,%d) = %U, want %U", tt.y, tt.x, got, tt.want)
		}
	}
}

func TestDecodeBraille_OutOfRange(t *testing.T) {
	var zero [4][2]bool
	if got := DecodeBraille('x'); got != zero {
		t.Errorf("non-braille rune decoded to %v, want all-off", got)
	}
}

func TestEncodeBlock_TruthTable(t *testing.T) {
	tests := []struct {
		top, bottom bool
		want        rune
	}{
		{false, false, ' '},
		{true, false, '▀'},
		{false, true, '▄'},
		{true, true, '█'},
	}
	for _, tt := range tests {
		if got := EncodeBlock(tt.top, tt.bottom); got != tt.want {
			t.Errorf("EncodeBlock(%v, %v) = %q, want %q", tt.top, tt.bottom, got, tt.want)
		}
	}
}

func TestRasterize_AllOnBoard(t *testing.T) {
	// 8x8 all-on in block mode: 4 glyph rows of 8 full blocks.
	cells := make([][]bool, 8)
	for i := range cells {
		cells[i] = make([]bool, 8)
		for j := range cells[i] {
			cells[i][j] = true
		}
	}
	got := Rasterize(cells, ModeBlock)
	if strings.Count(got, "█") != 32 {
		t.Errorf("want 32 full blocks, got %d in %q", strings.Count(got, "█"), got)
	}
	if strings.Contains(got, " ") {
		t.Errorf("all-on board rendered spaces: %q", got)
	}
	lines := strings.Split(got, "\n")
	if len(lines) != 4 {
		t.Errorf("want 4 glyph rows, got %d", len(lines))
	}
}

func TestRasterize_ColumnPattern(t *testing.T) {
	// On-pattern [1,0,1,0] as a 4x1 column in block mode: two upper halves.
	cells := [][]bool{{true}, {false}, {true}, {false}}
	if got := Rasterize(cells, ModeBlock); got != "▀\n▀" {
		t.Errorf("got %q, want %q", got, "▀\n▀")
	}
}

func TestRasterize_Braille(t *testing.T) {
	cells := make([][]bool, 4)
	for i := range cells {
		cells[i] = make([]bool, 2)
		for j := range cells[i] {
			cells[i][j] = true
		}
	}
	if got := Rasterize(cells, ModeBraille); got != string(rune(0x28FF)) {
		t.Errorf("got %q, want %q", got, string(rune(0x28FF)))
	}
}

func TestRasterize_Empty(t *testing.T) {
	if got := Rasterize(nil, ModeBlock); got != "" {
		t.Errorf("empty input rendered %q", got)
	}
}

func TestRasterize_NonMultiplePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for non-multiple dimensions")
		}
	}()
	Rasterize([][]bool{{true}}, ModeBlock) // 1 row, needs multiple of 2
}
