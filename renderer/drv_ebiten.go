//go:build !headless

// drv_ebiten.go draws the panel into a window, using ebiten.
//
// The game loop runs in its own goroutine, so pixel updates are
// written into an RGBA buffer under a lock and copied to the screen
// on every Draw.

package renderer

import (
	"fmt"
	"image/color"
	"log/slog"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
)

const (
	// ebitenScale is the size, in screen pixels, of one dot.
	ebitenScale = 4

	// ebitenBorder is the margin around the glass, in dots.
	ebitenBorder = 2
)

var (
	glassColor = color.RGBA{0x9E, 0xC8, 0x3C, 0xFF}
	offColor   = color.RGBA{0x90, 0xB8, 0x36, 0xFF}
)

// EbitenRenderer holds our state.
type EbitenRenderer struct {
	Canvas

	mu      sync.RWMutex
	width   int
	height  int
	buffer  []byte
	window  *ebiten.Image
	running bool
	closing bool

	first chan struct{}
	done  chan struct{}
	once  sync.Once
}

// GetName returns the name of this driver.
//
// This is part of the Renderer interface.
func (er *EbitenRenderer) GetName() string {
	return "ebiten"
}

// Setup opens the window, and waits for the first frame to be drawn.
func (er *EbitenRenderer) Setup() error {
	if er.running {
		return nil
	}
	er.running = true

	ebiten.SetWindowSize(er.width, er.height)
	ebiten.SetWindowTitle("ST7036")
	ebiten.SetRunnableOnUnfocused(true)

	go func() {
		defer er.once.Do(func() { close(er.done) })

		if err := ebiten.RunGame(er); err != nil {
			slog.Error("ebiten failed", slog.String("error", err.Error()))
		}
	}()

	select {
	case <-er.first:
		return nil
	case <-er.done:
		return fmt.Errorf("ebiten stopped before drawing")
	}
}

// TearDown asks the game loop to terminate.
func (er *EbitenRenderer) TearDown() error {
	er.mu.Lock()
	er.closing = true
	er.mu.Unlock()
	return nil
}

// Done returns a channel which is closed when the window is closed.
func (er *EbitenRenderer) Done() <-chan struct{} {
	return er.done
}

// SetPixel updates the canvas, and the window buffer.
//
// This is part of the Renderer interface.
func (er *EbitenRenderer) SetPixel(x, y int, on bool) {
	er.mu.Lock()
	defer er.mu.Unlock()

	er.Canvas.SetPixel(x, y, on)
	er.paint(x, y)
}

// TurnDisplayOn repaints the buffer from the canvas.
//
// This is part of the Renderer interface.
func (er *EbitenRenderer) TurnDisplayOn() {
	er.mu.Lock()
	defer er.mu.Unlock()

	er.Canvas.TurnDisplayOn()
	er.repaint()
}

// TurnDisplayOff leaves only the bare glass.
//
// This is part of the Renderer interface.
func (er *EbitenRenderer) TurnDisplayOff() {
	er.mu.Lock()
	defer er.mu.Unlock()

	er.Canvas.TurnDisplayOff()
	er.repaint()
}

// ChangeContrast darkens or lightens the lit dots.
//
// This is part of the Renderer interface.
func (er *EbitenRenderer) ChangeContrast(value uint8) {
	er.mu.Lock()
	defer er.mu.Unlock()

	er.Canvas.ChangeContrast(value)
	er.repaint()
}

// Update is part of the ebiten.Game interface.
func (er *EbitenRenderer) Update() error {
	er.mu.RLock()
	closing := er.closing
	er.mu.RUnlock()

	if closing || ebiten.IsWindowBeingClosed() {
		return ebiten.Termination
	}
	return nil
}

// Draw is part of the ebiten.Game interface.
func (er *EbitenRenderer) Draw(screen *ebiten.Image) {
	if er.window == nil {
		er.window = ebiten.NewImage(er.width, er.height)
	}

	er.mu.RLock()
	er.window.WritePixels(er.buffer)
	er.mu.RUnlock()
	screen.DrawImage(er.window, nil)

	select {
	case er.first <- struct{}{}:
	default:
	}
}

// Layout is part of the ebiten.Game interface.
func (er *EbitenRenderer) Layout(_, _ int) (int, int) {
	return er.width, er.height
}

// dotColor returns the colour of a lit dot at the current contrast.
func (er *EbitenRenderer) dotColor() color.RGBA {
	// 0 is barely visible, 63 is black.
	level := uint8(0x80 - uint16(er.Contrast())*0x80/63)
	return color.RGBA{level / 2, level, level / 4, 0xFF}
}

// fill sets one dot, at its scaled position, to the given colour.
func (er *EbitenRenderer) fill(x, y int, c color.RGBA) {
	ox := (screenX(x) + ebitenBorder) * ebitenScale
	oy := (y + y/8 + ebitenBorder) * ebitenScale

	for dy := 0; dy < ebitenScale-1; dy++ {
		for dx := 0; dx < ebitenScale-1; dx++ {
			i := ((oy+dy)*er.width + ox + dx) * 4
			er.buffer[i+0] = c.R
			er.buffer[i+1] = c.G
			er.buffer[i+2] = c.B
			er.buffer[i+3] = c.A
		}
	}
}

func (er *EbitenRenderer) paint(x, y int) {
	if x < 0 || y < 0 || x >= er.Width() || y >= er.Height() {
		return
	}
	c := offColor
	if er.IsOn() && er.Pixel(x, y) {
		c = er.dotColor()
	}
	er.fill(x, y, c)
}

func (er *EbitenRenderer) repaint() {
	for i := 0; i < len(er.buffer); i += 4 {
		er.buffer[i+0] = glassColor.R
		er.buffer[i+1] = glassColor.G
		er.buffer[i+2] = glassColor.B
		er.buffer[i+3] = glassColor.A
	}
	for y := 0; y < er.Height(); y++ {
		for x := 0; x < er.Width(); x++ {
			er.paint(x, y)
		}
	}
}

// newEbitenRenderer sizes the window for the panel, leaving a gap
// between characters and lines.
func newEbitenRenderer(lines, columns int) *EbitenRenderer {
	er := &EbitenRenderer{
		Canvas: NewCanvas(lines, columns),
		first:  make(chan struct{}, 1),
		done:   make(chan struct{}),
	}
	er.width = (columns*6 - 1 + 2*ebitenBorder) * ebitenScale
	er.height = (lines*9 - 1 + 2*ebitenBorder) * ebitenScale
	er.buffer = make([]byte, er.width*er.height*4)
	er.repaint()
	return er
}

// init registers our driver, by name.
func init() {
	Register("ebiten", func(lines, columns int) Renderer {
		return newEbitenRenderer(lines, columns)
	})
}
