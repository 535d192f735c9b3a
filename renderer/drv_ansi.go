package renderer

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// AnsiRenderer draws the panel onto a terminal using ANSI escape
// sequences, one cell per pixel.
type AnsiRenderer struct {
	Canvas

	// writer is where we send our output
	writer io.Writer
}

// GetName returns the name of this driver.
//
// This is part of the Renderer interface.
func (ar *AnsiRenderer) GetName() string {
	return "ansi"
}

// Setup checks the terminal is large enough, then clears it and hides
// the cursor.
func (ar *AnsiRenderer) Setup() error {
	if f, ok := ar.writer.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		w, h, err := term.GetSize(int(f.Fd()))
		if err != nil {
			return err
		}
		if w < screenX(ar.Width()) || h < ar.Height()+1 {
			return fmt.Errorf("terminal is %dx%d, the panel needs %dx%d", w, h, screenX(ar.Width()), ar.Height()+1)
		}
	}
	fmt.Fprintf(ar.writer, "\x1b[2J\x1b[?25l")
	return nil
}

// TearDown shows the cursor again, and moves it below the panel.
func (ar *AnsiRenderer) TearDown() error {
	fmt.Fprintf(ar.writer, "\x1b[%d;1H\x1b[0m\x1b[?25h", ar.Height()+1)
	return nil
}

// SetPixel updates the canvas, and draws the pixel if the display is
// on.
//
// This is part of the Renderer interface.
func (ar *AnsiRenderer) SetPixel(x, y int, on bool) {
	ar.Canvas.SetPixel(x, y, on)
	if ar.IsOn() {
		ar.draw(x, y)
	}
}

// TurnDisplayOn redraws everything from the canvas.
//
// This is part of the Renderer interface.
func (ar *AnsiRenderer) TurnDisplayOn() {
	ar.Canvas.TurnDisplayOn()
	ar.redraw()
}

// TurnDisplayOff blanks the terminal.
//
// This is part of the Renderer interface.
func (ar *AnsiRenderer) TurnDisplayOff() {
	ar.Canvas.TurnDisplayOff()
	fmt.Fprintf(ar.writer, "\x1b[2J")
}

// ChangeContrast picks between a dim and a normal foreground, then
// redraws.
//
// This is part of the Renderer interface.
func (ar *AnsiRenderer) ChangeContrast(value uint8) {
	ar.Canvas.ChangeContrast(value)
	if ar.IsOn() {
		ar.redraw()
	}
}

// SetWriter will update the writer.
func (ar *AnsiRenderer) SetWriter(w io.Writer) {
	ar.writer = w
}

// attr returns the SGR attribute for the current contrast.
func (ar *AnsiRenderer) attr() string {
	if ar.Contrast() < 16 {
		return "\x1b[2m"
	}
	return "\x1b[0m"
}

func (ar *AnsiRenderer) draw(x, y int) {
	ch := " "
	if ar.Pixel(x, y) {
		ch = "█"
	}
	fmt.Fprintf(ar.writer, "\x1b[%d;%dH%s%s", y+1, screenX(x)+1, ar.attr(), ch)
}

func (ar *AnsiRenderer) redraw() {
	for y := 0; y < ar.Height(); y++ {
		for x := 0; x < ar.Width(); x++ {
			ar.draw(x, y)
		}
	}
}

// init registers our driver, by name.
func init() {
	Register("ansi", func(lines, columns int) Renderer {
		return &AnsiRenderer{
			Canvas: NewCanvas(lines, columns),
			writer: os.Stdout,
		}
	})
}
