// drv_termbox.go uses the Termbox library to draw the panel.
//
// A goroutine is launched which watches the keyboard, so that the user
// can quit with Escape or Ctrl-C while the terminal is in raw mode.

package renderer

import (
	"context"
	"os"
	"sync"

	"github.com/nsf/termbox-go"
	"golang.org/x/term"
)

// TermboxRenderer is our termbox-based driver.
type TermboxRenderer struct {
	Canvas

	// oldState contains the state of the terminal, before switching to RAW mode
	oldState *term.State

	// cancel stops our polling goroutine
	cancel context.CancelFunc

	// done is closed when the user asks to quit
	done chan struct{}
	once sync.Once
}

// GetName returns the name of this driver.
//
// This is part of the Renderer interface.
func (tr *TermboxRenderer) GetName() string {
	return "termbox"
}

// Setup switches the terminal into raw mode, initializes termbox and
// starts watching for a quit key.
func (tr *TermboxRenderer) Setup() error {
	var err error

	// switch STDIN into 'raw' mode - we must do this before
	// we setup termbox.
	tr.oldState, err = term.MakeRaw(int(os.Stdin.Fd()))
	if err != nil {
		return err
	}

	err = termbox.Init()
	if err != nil {
		term.Restore(int(os.Stdin.Fd()), tr.oldState)
		return err
	}
	termbox.HideCursor()
	termbox.Clear(termbox.ColorDefault, termbox.ColorDefault)

	ctx, cancel := context.WithCancel(context.Background())
	tr.cancel = cancel
	go tr.pollKeyboard(ctx)

	return nil
}

// pollKeyboard runs in a goroutine, and closes our done channel when a
// quit key is seen.
func (tr *TermboxRenderer) pollKeyboard(ctx context.Context) {
	for {
		// Are we done?
		select {
		case <-ctx.Done():
			return
		default:
			// NOP
		}

		switch ev := termbox.PollEvent(); ev.Type {
		case termbox.EventKey:
			if ev.Key == termbox.KeyEsc || ev.Key == termbox.KeyCtrlC || ev.Ch == 'q' {
				tr.once.Do(func() { close(tr.done) })
				return
			}
		case termbox.EventInterrupt:
			return
		}
	}
}

// Done returns a channel which is closed when the user quits.
func (tr *TermboxRenderer) Done() <-chan struct{} {
	return tr.done
}

// TearDown stops the keyboard polling, closes termbox, and restores
// the terminal.
func (tr *TermboxRenderer) TearDown() error {
	if tr.cancel != nil {
		tr.cancel()
		termbox.Interrupt()
	}

	termbox.Close()

	if tr.oldState != nil {
		return term.Restore(int(os.Stdin.Fd()), tr.oldState)
	}
	return nil
}

// SetPixel updates the canvas and the termbox back-buffer.
//
// This is part of the Renderer interface.
func (tr *TermboxRenderer) SetPixel(x, y int, on bool) {
	tr.Canvas.SetPixel(x, y, on)
	if tr.IsOn() {
		tr.cell(x, y)
	}
}

// TurnDisplayOn redraws everything from the canvas.
//
// This is part of the Renderer interface.
func (tr *TermboxRenderer) TurnDisplayOn() {
	tr.Canvas.TurnDisplayOn()
	tr.redraw()
}

// TurnDisplayOff blanks the screen.
//
// This is part of the Renderer interface.
func (tr *TermboxRenderer) TurnDisplayOff() {
	tr.Canvas.TurnDisplayOff()
	termbox.Clear(termbox.ColorDefault, termbox.ColorDefault)
}

// ChangeContrast switches between bold and normal pixels.
//
// This is part of the Renderer interface.
func (tr *TermboxRenderer) ChangeContrast(value uint8) {
	tr.Canvas.ChangeContrast(value)
	if tr.IsOn() {
		tr.redraw()
	}
}

// Flush shows the back-buffer.
func (tr *TermboxRenderer) Flush() error {
	return termbox.Flush()
}

func (tr *TermboxRenderer) cell(x, y int) {
	fg := termbox.ColorGreen
	if tr.Contrast() >= 32 {
		fg |= termbox.AttrBold
	}
	ch := ' '
	if tr.Pixel(x, y) {
		ch = '█'
	}
	termbox.SetCell(screenX(x), y, ch, fg, termbox.ColorDefault)
}

func (tr *TermboxRenderer) redraw() {
	for y := 0; y < tr.Height(); y++ {
		for x := 0; x < tr.Width(); x++ {
			tr.cell(x, y)
		}
	}
}

// init registers our driver, by name.
func init() {
	Register("termbox", func(lines, columns int) Renderer {
		return &TermboxRenderer{
			Canvas: NewCanvas(lines, columns),
			done:   make(chan struct{}),
		}
	})
}
