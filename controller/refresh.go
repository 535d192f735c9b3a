package controller

import (
	"github.com/skx/st7036emu/charrom"
)

// newFrame returns a blank frame for a panel of the given shape.
func newFrame(lines, columns int) [][]bool {
	frame := make([][]bool, lines*charrom.Rows)
	for y := range frame {
		frame[y] = make([]bool, columns*charrom.Columns)
	}
	return frame
}

// Refresh redraws the panel if anything changed since the last call,
// and returns the number of pixels sent to the renderer.
func (c *Controller) Refresh() int {
	if !c.dirty {
		return 0
	}

	frame := newFrame(c.lines, c.columns)
	ranges := ddramLayout[c.lines]

	line := 0
	for _, span := range c.rowSpan {
		if line >= len(ranges) {
			break
		}

		// The row scrolls within the addresses of its first line.
		r := ranges[line]
		for col := 0; col < c.columns; col++ {
			addr := r.start + (c.displayOffset+col)%r.len()

			g := c.glyph(c.ddram.Get(uint16(c.cellFor(addr))))
			if c.cursorAt(addr) {
				g = c.overlayCursor(g)
			}
			blit(frame, g, col*charrom.Columns, line*charrom.Rows, span)
		}
		line += span
	}

	count := 0
	for y := range frame {
		for x := range frame[y] {
			if frame[y][x] != c.previous[y][x] {
				c.display.SetPixel(x, y, frame[y][x])
				count++
			}
		}
	}

	c.previous = frame
	c.dirty = false
	return count
}

// Frame returns a copy of the last frame sent to the renderer.
func (c *Controller) Frame() [][]bool {
	out := make([][]bool, len(c.previous))
	for y := range c.previous {
		out[y] = append([]bool(nil), c.previous[y]...)
	}
	return out
}

// glyph returns the bitmap of a character code, user characters come
// from CGRAM.
func (c *Controller) glyph(code byte) charrom.Glyph {
	if int(code) >= UserCharacters {
		return c.rom.Lookup(code)
	}

	var g charrom.Glyph
	base := int(code) * charrom.Rows
	for row := range g {
		g[row] = c.cgram.Get(uint16(base+row)) & 0x1F
	}
	return g
}

// cursorAt reports whether the cursor sits on the given DDRAM address.
func (c *Controller) cursorAt(addr int) bool {
	if !c.cursorOn {
		return false
	}
	if c.selected == MemoryCGRAM || c.selected == MemoryIconRAM {
		return false
	}
	return c.addressCounter == addr
}

// overlayCursor draws a block, or the underline of a blinking cursor in
// its hidden phase.
func (c *Controller) overlayCursor(g charrom.Glyph) charrom.Glyph {
	if c.cursorBlink && !c.blinkPhase {
		g[charrom.Rows-1] |= 0x1F
		return g
	}
	for row := range g {
		g[row] |= 0x1F
	}
	return g
}

// blit copies a glyph into the frame, doubling each row when the
// character spans two lines.
func blit(frame [][]bool, g charrom.Glyph, x0, y0, span int) {
	for row := 0; row < charrom.Rows; row++ {
		for s := 0; s < span; s++ {
			y := y0 + row*span + s
			if y >= len(frame) {
				continue
			}
			for col := 0; col < charrom.Columns; col++ {
				frame[y][x0+col] = g.Pixel(row, col)
			}
		}
	}
}
