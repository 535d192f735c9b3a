package charrom

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestGlyphPixel(t *testing.T) {
	rom := Default()

	// "T" has a full top bar and a single centre column.
	g := rom.Lookup('T')
	for col := 0; col < Columns; col++ {
		assert.True(t, g.Pixel(0, col))
	}
	assert.True(t, g.Pixel(3, 2))
	assert.False(t, g.Pixel(3, 0))

	// out of range is never lit
	assert.False(t, g.Pixel(-1, 0))
	assert.False(t, g.Pixel(0, Columns))
	assert.False(t, g.Pixel(Rows, 0))
}

func TestDefaultTable(t *testing.T) {
	rom := Default()

	// user character codes are blank in the ROM itself
	for code := 0; code < 8; code++ {
		assert.Equal(t, Glyph{}, rom.Lookup(byte(code)))
	}

	// space is blank, the cursor row is never used by the ROM
	assert.Equal(t, Glyph{}, rom.Lookup(' '))
	for code := 0x21; code < 0x80; code++ {
		g := rom.Lookup(byte(code))
		assert.True(t, g != (Glyph{}))
		assert.Equal(t, uint8(0), g[Rows-1])
	}

	// a code without a bitmap falls back to the box
	assert.Equal(t, missing, rom.Lookup(0x90))

	var custom Glyph
	custom[0] = 0x1F
	rom.Set(0x90, custom)
	assert.Equal(t, custom, rom.Lookup(0x90))
	assert.Equal(t, missing, Default().Lookup(0x90))
}

func TestEncode(t *testing.T) {
	assert.Equal(t, []byte("Hello"), Encode("Hello"))

	// accented letters live in the upper half of the ROM
	assert.Equal(t, []byte{'D', 0x82}, Encode("Dé"))

	// arrows and greek letters
	assert.Equal(t, []byte{0x7E}, Encode("→"))
	assert.Equal(t, []byte{0x1E}, Encode("Ω"))

	// unknown runes become '?'
	assert.Equal(t, []byte{'a', '?', 'b'}, Encode("a☃b"))

	// user characters, both ways
	assert.Equal(t, []byte{0x00, 0x03}, Encode("\x00"+string(UserCharacter(3))))

	c, ok := EncodeRune('A')
	assert.True(t, ok)
	assert.Equal(t, byte('A'), c)
	_, ok = EncodeRune('☃')
	assert.False(t, ok)
}

func TestDecode(t *testing.T) {
	assert.Equal(t, "Diode électro", Decode(Encode("Diode électro")))
	assert.Equal(t, string(UserCharacter(1)), Decode([]byte{0x01}))
}
