package controller

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
	"github.com/skx/st7036emu/charrom"
	"github.com/skx/st7036emu/renderer"
)

// assertGlyph checks a glyph is drawn at the given pixel position, each
// row repeated span times.
func assertGlyph(t *testing.T, frame [][]bool, g charrom.Glyph, x0, y0, span int) {
	t.Helper()
	for row := 0; row < charrom.Rows; row++ {
		for s := 0; s < span; s++ {
			for col := 0; col < charrom.Columns; col++ {
				y := y0 + row*span + s
				if frame[y][x0+col] != g.Pixel(row, col) {
					t.Fatalf("pixel %d,%d is %t", x0+col, y, frame[y][x0+col])
				}
			}
		}
	}
}

func TestRefreshIdempotent(t *testing.T) {
	c, lr := newTestController(t, 2, 16)

	command(t, c, 0x80)
	data(t, c, 'H', 'i')

	n := c.Refresh()
	assert.True(t, n > 0)
	assert.Equal(t, n, len(lr.Events()))
	assert.False(t, c.Dirty())

	lr.Reset()
	assert.Equal(t, 0, c.Refresh())
	assert.Empty(t, lr.Events())

	// only the changed character is redrawn
	command(t, c, 0x81)
	data(t, c, 'i')
	c.Refresh()
	assert.Empty(t, lr.Events())

	command(t, c, 0x81)
	data(t, c, ' ')
	c.Refresh()
	for _, e := range lr.Events() {
		assert.True(t, e.X >= 5 && e.X < 10 && e.Y < 8, "pixel outside the changed cell")
		assert.False(t, e.On)
	}
	assert.NotEmpty(t, lr.Events())
}

func TestRefreshUserCharacterWithCursor(t *testing.T) {
	pattern := charrom.Glyph{0x0A, 0x15, 0x0A, 0x15, 0x0A, 0x15, 0x0A, 0x00}

	for _, blink := range []bool{false, true} {
		c, lr := newTestController(t, 1, 8)

		// slot 0
		command(t, c, 0x40)
		data(t, c, pattern[:]...)

		command(t, c, 0x80)
		data(t, c, 0x00)
		command(t, c, 0x80)

		want := pattern
		if blink {
			command(t, c, 0x0F)
			c.ToggleBlink()
			want[charrom.Rows-1] |= 0x1F
		} else {
			command(t, c, 0x0E)
			for row := range want {
				want[row] |= 0x1F
			}
		}

		lr.Reset()
		c.Refresh()

		expected := map[[2]int]bool{}
		for row := 0; row < charrom.Rows; row++ {
			for col := 0; col < charrom.Columns; col++ {
				if want.Pixel(row, col) {
					expected[[2]int{col, row}] = true
				}
			}
		}

		seen := map[[2]int]bool{}
		for _, e := range lr.Events() {
			assert.Equal(t, renderer.EventPixel, e.Kind)
			assert.True(t, e.On)
			seen[[2]int{e.X, e.Y}] = true
		}
		assert.Equal(t, expected, seen)
	}
}

func TestRefreshCursorFollowsAddress(t *testing.T) {
	c, _ := newTestController(t, 2, 8)
	command(t, c, 0x0E)

	command(t, c, 0x80|0x42)
	c.Refresh()
	frame := c.Frame()

	// a solid block at column 2 of the second line
	for y := 8; y < 16; y++ {
		for x := 10; x < 15; x++ {
			assert.True(t, frame[y][x])
		}
	}
	assert.False(t, frame[0][10])

	// no cursor while CGRAM is addressed
	command(t, c, 0x40)
	c.Refresh()
	frame = c.Frame()
	assert.False(t, frame[8][10])
}

func TestRefreshBlink(t *testing.T) {
	c, lr := newTestController(t, 1, 8)

	// without a blinking cursor the phase is invisible
	command(t, c, 0x0E)
	c.Refresh()
	c.ToggleBlink()
	assert.False(t, c.Dirty())

	// the phase is now hidden, so only the underline shows
	command(t, c, 0x0F)
	c.Refresh()
	frame := c.Frame()
	assert.False(t, frame[0][0])
	assert.True(t, frame[7][0])
	lr.Reset()

	// the top seven rows of the block come back
	c.ToggleBlink()
	assert.True(t, c.Dirty())
	c.Refresh()
	assert.Len(t, lr.Events(), 7*charrom.Columns)
	for _, e := range lr.Events() {
		assert.True(t, e.On)
		assert.True(t, e.Y < 7)
	}

	// and go again
	c.ToggleBlink()
	lr.Reset()
	c.Refresh()
	assert.Len(t, lr.Events(), 7*charrom.Columns)
	for _, e := range lr.Events() {
		assert.False(t, e.On)
	}
}

func TestRefreshSecondLine(t *testing.T) {
	c, _ := newTestController(t, 2, 16)
	rom := charrom.Default()

	command(t, c, 0x80|0x40)
	data(t, c, 'Z')
	command(t, c, 0x80|0x0F)
	data(t, c, 'a')
	c.Refresh()

	frame := c.Frame()
	assertGlyph(t, frame, rom.Lookup('Z'), 0, 8, 1)
	assertGlyph(t, frame, rom.Lookup('a'), 15*charrom.Columns, 0, 1)
}

func TestRefreshScrollWrapsWithinRow(t *testing.T) {
	c, _ := newTestController(t, 3, 16)
	rom := charrom.Default()

	command(t, c, 0x39)
	command(t, c, 0x38)
	command(t, c, 0x80|0x10)
	data(t, c, 'X')
	command(t, c, 0x18) // display left
	c.Refresh()

	// the first cell of the second line is now its last column
	frame := c.Frame()
	assertGlyph(t, frame, rom.Lookup('X'), 15*charrom.Columns, 8, 1)
	assertGlyph(t, frame, rom.Lookup(' '), 0, 8, 1)
}

func TestRefreshDoubleHeight(t *testing.T) {
	c, _ := newTestController(t, 3, 16)
	rom := charrom.Default()

	command(t, c, 0x80|0x00)
	data(t, c, 'T')
	command(t, c, 0x80|0x10)
	data(t, c, 'A')
	command(t, c, 0x80|0x20)
	data(t, c, 'B')

	// DH on, bottom pair
	command(t, c, 0x3C)
	assert.Equal(t, []int{1, 2}, c.RowSpan())
	c.Refresh()

	frame := c.Frame()
	assertGlyph(t, frame, rom.Lookup('T'), 0, 0, 1)
	assertGlyph(t, frame, rom.Lookup('A'), 0, 8, 2)

	// top pair
	command(t, c, 0x3E)
	command(t, c, 0x18)
	assert.Equal(t, []int{2, 1}, c.RowSpan())
	c.Refresh()

	frame = c.Frame()
	assertGlyph(t, frame, rom.Lookup('T'), 0, 0, 2)
	assertGlyph(t, frame, rom.Lookup('B'), 0, 16, 1)
}

func TestRefreshTwoLineDoubleHeight(t *testing.T) {
	c, _ := newTestController(t, 2, 16)
	rom := charrom.Default()

	command(t, c, 0x80)
	data(t, c, 'Q')
	command(t, c, 0x34)
	c.Refresh()

	assertGlyph(t, c.Frame(), rom.Lookup('Q'), 0, 0, 2)
}

func TestFrameIsACopy(t *testing.T) {
	c, _ := newTestController(t, 1, 8)
	c.Refresh()

	frame := c.Frame()
	assert.Len(t, frame, 8)
	assert.Len(t, frame[0], 40)

	frame[0][0] = true
	assert.False(t, c.Frame()[0][0])
}
