// Package emulator wraps a controller so that it can be driven from a
// transport while the cursor blinks, and the display is redrawn, on
// their own schedules.
//
// All three share a single lock, so a byte transfer is always applied
// completely before a refresh can observe it.
package emulator

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/skx/st7036emu/bus"
	"github.com/skx/st7036emu/controller"
	"github.com/skx/st7036emu/renderer"
	"golang.org/x/sync/errgroup"
)

const (
	// DefaultBlinkInterval is how often a blinking cursor changes phase.
	DefaultBlinkInterval = 500 * time.Millisecond

	// DefaultRefreshInterval is how often the display is redrawn.
	DefaultRefreshInterval = 40 * time.Millisecond
)

// Emulator holds our state.
type Emulator struct {
	// mu protects lcd
	mu sync.Mutex

	// lcd is the emulated chip
	lcd *controller.Controller

	// display is where the chip draws
	display renderer.Renderer

	// drawn sits between the chip and the display, noting when there
	// is something to flush
	drawn *tracker

	// Logger holds a logger which we use for debugging and diagnostics.
	Logger *slog.Logger

	blinkInterval   time.Duration
	refreshInterval time.Duration
	controllerOpts  []controller.Option
}

// Option defines a function-type which can be used to configure an
// Emulator.
type Option func(e *Emulator)

// WithBlinkInterval changes the cursor blink period.
func WithBlinkInterval(d time.Duration) Option {
	return func(e *Emulator) {
		e.blinkInterval = d
	}
}

// WithRefreshInterval changes how often the display is redrawn.
func WithRefreshInterval(d time.Duration) Option {
	return func(e *Emulator) {
		e.refreshInterval = d
	}
}

// WithControllerOptions passes options through to the controller.
func WithControllerOptions(opts ...controller.Option) Option {
	return func(e *Emulator) {
		e.controllerOpts = append(e.controllerOpts, opts...)
	}
}

// New creates a chip drawing onto the given renderer.
func New(logger *slog.Logger, r renderer.Renderer, options ...Option) (*Emulator, error) {
	e := &Emulator{
		display:         r,
		Logger:          logger,
		blinkInterval:   DefaultBlinkInterval,
		refreshInterval: DefaultRefreshInterval,
	}

	for _, opt := range options {
		opt(e)
	}

	if e.Logger == nil {
		e.Logger = slog.New(slog.DiscardHandler)
	}

	e.drawn = &tracker{Renderer: r}
	lcd, err := controller.New(e.drawn, e.controllerOpts...)
	if err != nil {
		return nil, err
	}
	e.lcd = lcd

	e.Logger.Debug("emulator created",
		slog.String("renderer", r.GetName()),
		slog.Int("lines", lcd.Lines()),
		slog.Int("columns", lcd.Columns()),
		slog.Bool("extended", lcd.Extended()))

	return e, nil
}

// Transfer passes a byte to the chip.
//
// This is part of the bus.Transport interface.
func (e *Emulator) Transfer(b byte, rs bus.RegisterSelect, rw bus.ReadWrite) (byte, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	out, err := e.lcd.Transfer(b, rs, rw)
	if err != nil {
		e.Logger.Warn("transfer failed",
			slog.String("byte", fmt.Sprintf("0x%02X", b)),
			slog.String("register", rs.String()),
			slog.String("direction", rw.String()),
			slog.String("error", err.Error()))
		return 0, err
	}

	e.Logger.Debug("transfer",
		slog.String("byte", fmt.Sprintf("0x%02X", b)),
		slog.String("register", rs.String()),
		slog.String("direction", rw.String()))
	return out, nil
}

// Reset puts the chip back into its power-on state.
func (e *Emulator) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.lcd.Reset()
}

// SetContrast sets the contrast directly.
func (e *Emulator) SetContrast(value int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.lcd.SetContrast(value)
}

// ToggleBlink flips the phase of a blinking cursor.
func (e *Emulator) ToggleBlink() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.lcd.ToggleBlink()
}

// Refresh redraws the display if needed, and flushes renderers which
// batch their output.
//
// The flush follows any change the renderer was told about, so turning
// the display off, or changing the contrast, is shown even though no
// pixel differs.
func (e *Emulator) Refresh() (int, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	n := e.lcd.Refresh()
	if !e.drawn.changed {
		return n, nil
	}
	e.drawn.changed = false

	if f, ok := e.display.(renderer.Flusher); ok {
		if err := f.Flush(); err != nil {
			return n, err
		}
	}
	return n, nil
}

// Frame returns a copy of the last frame drawn.
func (e *Emulator) Frame() [][]bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.lcd.Frame()
}

// Inspect calls fn with the lock held, so it can read the state of the
// chip.  fn must not keep the controller.
func (e *Emulator) Inspect(fn func(c *controller.Controller)) {
	e.mu.Lock()
	defer e.mu.Unlock()

	fn(e.lcd)
}

// Run blinks the cursor and refreshes the display until the context is
// cancelled, or a renderer fails.
func (e *Emulator) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return every(ctx, e.blinkInterval, func() error {
			e.ToggleBlink()
			return nil
		})
	})

	g.Go(func() error {
		return every(ctx, e.refreshInterval, func() error {
			_, err := e.Refresh()
			return err
		})
	})

	err := g.Wait()
	if err != nil {
		e.Logger.Error("emulator stopped", slog.String("error", err.Error()))
	}
	return err
}

// every calls fn on each tick, until the context is done.
func every(ctx context.Context, d time.Duration, fn func() error) error {
	ticker := time.NewTicker(d)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if err := fn(); err != nil {
				return err
			}
		}
	}
}

// tracker passes everything to a renderer, remembering whether it was
// changed since the last flush.
type tracker struct {
	renderer.Renderer
	changed bool
}

func (t *tracker) SetPixel(x, y int, on bool) {
	t.changed = true
	t.Renderer.SetPixel(x, y, on)
}

func (t *tracker) TurnDisplayOn() {
	t.changed = true
	t.Renderer.TurnDisplayOn()
}

func (t *tracker) TurnDisplayOff() {
	t.changed = true
	t.Renderer.TurnDisplayOff()
}

func (t *tracker) ChangeContrast(value uint8) {
	t.changed = true
	t.Renderer.ChangeContrast(value)
}
