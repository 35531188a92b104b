package render

import "fmt"

// GlyphMode selects how many simulated cells pack into one terminal glyph.
// The set is closed; a mode is fixed for the lifetime of an output.
type GlyphMode int

const (
	// ModeBlock packs a 2-row by 1-column sub-block per glyph using the
	// half/full block characters.
	ModeBlock GlyphMode = iota
	// ModeBraille packs a 4-row by 2-column sub-block per glyph using the
	// eight dots of the U+2800 braille range.
	ModeBraille
)

// Descriptor gives the sub-cell shape a mode packs into one glyph.
type Descriptor struct {
	SubRows int
	SubCols int
	Family  string
}

var descriptors = [...]Descriptor{
	ModeBlock:   {SubRows: 2, SubCols: 1, Family: "block"},
	ModeBraille: {SubRows: 4, SubCols: 2, Family: "braille"},
}

// Descriptor returns the fixed sub-cell shape for the mode.
func (m GlyphMode) Descriptor() Descriptor { return descriptors[m] }

func (m GlyphMode) String() string {
	switch m {
	case ModeBlock:
		return "block"
	case ModeBraille:
		return "braille"
	}
	return fmt.Sprintf("GlyphMode(%d)", int(m))
}

// ParseMode maps a configuration string onto a glyph mode. An unknown name
// is a construction-time error; the caller should abort the run.
func ParseMode(name string) (GlyphMode, error) {
	switch name {
	case "block", "":
		return ModeBlock, nil
	case "braille":
		return ModeBraille, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMode, name)
}
