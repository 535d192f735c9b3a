package renderer

// NullRenderer holds our state.
type NullRenderer struct {
	Canvas
}

// GetName returns the name of this driver.
//
// This is part of the Renderer interface.
func (nr *NullRenderer) GetName() string {
	return "null"
}

// SetPixel discards the update, as this is a null-driver nothing
// happens.
//
// This is part of the Renderer interface.
func (nr *NullRenderer) SetPixel(x, y int, on bool) {
	// NOTHING happens
}

// init registers our driver, by name.
func init() {
	Register("null", func(lines, columns int) Renderer {
		return &NullRenderer{
			Canvas: NewCanvas(lines, columns),
		}
	})
}
