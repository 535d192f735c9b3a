package renderer

// Canvas holds the state every renderer has in common: the shape of the
// panel, the pixels which are lit, whether the display is on, and the
// contrast.  Drivers embed it.
type Canvas struct {
	lines    int
	columns  int
	pixels   []bool
	on       bool
	contrast uint8
}

// NewCanvas returns a blank canvas of the given shape.
func NewCanvas(lines, columns int) Canvas {
	c := Canvas{lines: lines, columns: columns}
	if w, h := c.Width(), c.Height(); w > 0 && h > 0 {
		c.pixels = make([]bool, w*h)
	}
	return c
}

// Lines returns the number of text lines.
func (c *Canvas) Lines() int {
	return c.lines
}

// Columns returns the number of characters per line.
func (c *Canvas) Columns() int {
	return c.columns
}

// Width returns the width of the panel in pixels.
func (c *Canvas) Width() int {
	return c.columns * 5
}

// Height returns the height of the panel in pixels.
func (c *Canvas) Height() int {
	return c.lines * 8
}

// Pixel reports whether the given pixel is lit.
func (c *Canvas) Pixel(x, y int) bool {
	if x < 0 || y < 0 || x >= c.Width() || y >= c.Height() {
		return false
	}
	return c.pixels[y*c.Width()+x]
}

// IsOn reports whether the display is switched on.
func (c *Canvas) IsOn() bool {
	return c.on
}

// Contrast returns the last contrast value.
func (c *Canvas) Contrast() uint8 {
	return c.contrast
}

// SetPixel records the state of a pixel, ignoring positions outside
// the panel.
func (c *Canvas) SetPixel(x, y int, on bool) {
	if x < 0 || y < 0 || x >= c.Width() || y >= c.Height() {
		return
	}
	c.pixels[y*c.Width()+x] = on
}

// TurnDisplayOn records that the display is on.
func (c *Canvas) TurnDisplayOn() {
	c.on = true
}

// TurnDisplayOff records that the display is off.
func (c *Canvas) TurnDisplayOff() {
	c.on = false
}

// ChangeContrast records the contrast.
func (c *Canvas) ChangeContrast(value uint8) {
	c.contrast = value & 0x3F
}

// screenX converts a pixel column to a position which leaves a one
// column gap between characters, as on the glass.
func screenX(x int) int {
	return x + x/5
}
