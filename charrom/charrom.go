// Package charrom contains the character generator ROM of the
// emulated controller, and the codec which maps text onto the codes
// the ROM understands.
//
// Each glyph is five pixels wide and eight pixels tall.  A glyph is
// stored as eight bytes, one per pixel row from the top, using the low
// five bits of each byte with bit 4 being the leftmost pixel.  This is
// the same packing the chip uses for user-defined characters in CGRAM,
// so the two can be drawn by the same code.
package charrom

const (
	// Rows is the height of a glyph in pixels.
	Rows = 8

	// Columns is the width of a glyph in pixels.
	Columns = 5
)

// Glyph is the bitmap of a single character.
type Glyph [Rows]uint8

// Pixel reports whether the pixel at the given row and column is lit.
func (g Glyph) Pixel(row, col int) bool {
	if row < 0 || row >= Rows || col < 0 || col >= Columns {
		return false
	}
	return g[row]&(1<<(Columns-1-col)) != 0
}

// ROM is the interface to something that can supply the bitmap of a
// character code.
type ROM interface {
	// Lookup returns the glyph for the given code.
	Lookup(code byte) Glyph
}

// missing is drawn for codes which have no glyph in our table.
var missing = Glyph{0x1F, 0x11, 0x11, 0x11, 0x11, 0x11, 0x1F, 0x00}

// Table is a ROM backed by a fixed table of 256 glyphs.
type Table struct {
	glyphs [256]Glyph
}

// Lookup returns the glyph for the given code.
func (t *Table) Lookup(code byte) Glyph {
	return t.glyphs[code]
}

// Set replaces the glyph for the given code.
func (t *Table) Set(code byte, g Glyph) {
	t.glyphs[code] = g
}

// Default returns a copy of the built-in ROM.
//
// Codes 0x00-0x07 address user-defined characters, which the
// controller reads from CGRAM rather than from here, so they are
// blank.  Codes we have no bitmap for are drawn as a hollow box.
func Default() *Table {
	t := &Table{}
	for i := 0; i < len(t.glyphs); i++ {
		code := byte(i)
		if code < 0x08 {
			continue
		}
		if g, ok := rom[code]; ok {
			t.glyphs[i] = g
		} else {
			t.glyphs[i] = missing
		}
	}
	return t
}
