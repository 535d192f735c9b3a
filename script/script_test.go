package script

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/retroenv/retrogolib/assert"
	"github.com/skx/st7036emu/controller"
	"github.com/skx/st7036emu/driver"
	"github.com/skx/st7036emu/emulator"
	"github.com/skx/st7036emu/renderer"
	"github.com/skx/st7036emu/static"
)

// newRunner returns a runner driving an emulated 3x16 panel, which
// never really sleeps.
func newRunner(t *testing.T) (*Runner, *emulator.Emulator) {
	t.Helper()

	r, err := renderer.New("logger", 3, 16)
	assert.NoError(t, err)
	e, err := emulator.New(nil, r)
	assert.NoError(t, err)
	lcd, err := driver.New(e)
	assert.NoError(t, err)

	run := New(nil, lcd, e)
	run.Sleep = func(ctx context.Context, d time.Duration) {}
	return run, e
}

// cell returns a display RAM cell.
func cell(t *testing.T, e *emulator.Emulator, n int) byte {
	t.Helper()

	var b byte
	var err error
	e.Inspect(func(c *controller.Controller) {
		b, err = c.Peek(controller.MemoryDDRAM, n)
	})
	assert.NoError(t, err)
	return b
}

func TestRun(t *testing.T) {
	run, e := newRunner(t)

	src := `
lcd.position(2, 1)
lcd.write("Hi")
lcd.create_char(3, {0x1f, 0x11, 0x11, 0x11, 0x11, 0x11, 0x1f})
assert(lcd.rows() == 3)
assert(lcd.columns() == 16)
assert(lcd.version() ~= "")
lcd.command(0x80)
lcd.data(65)
lcd.display(true, true, true)
lcd.log("done")
`
	err := run.Run(context.Background(), "inline", []byte(src))
	assert.NoError(t, err)

	assert.Equal(t, byte('A'), cell(t, e, 0))
	assert.Equal(t, byte('H'), cell(t, e, 0x12))
	assert.Equal(t, byte('i'), cell(t, e, 0x13))

	e.Inspect(func(c *controller.Controller) {
		b, err := c.Peek(controller.MemoryCGRAM, 3*8)
		assert.NoError(t, err)
		assert.Equal(t, byte(0x1f), b)
		b, err = c.Peek(controller.MemoryCGRAM, 3*8+7)
		assert.NoError(t, err)
		assert.Equal(t, byte(0x00), b)

		assert.True(t, c.CursorOn())
		assert.True(t, c.CursorBlink())
	})
}

func TestErrors(t *testing.T) {
	run, _ := newRunner(t)
	ctx := context.Background()

	err := run.Run(ctx, "contrast", []byte(`lcd.contrast(99)`))
	assert.ErrorContains(t, err, driver.ErrContrast.Error())

	err = run.Run(ctx, "position", []byte(`lcd.position(40, 0)`))
	assert.ErrorContains(t, err, driver.ErrPosition.Error())

	err = run.Run(ctx, "syntax", []byte(`lcd.write(`))
	assert.ErrorContains(t, err, "loading syntax")

	err = run.Run(ctx, "frames", []byte(`lcd.animate(0, {1, 2}, 2)`))
	assert.ErrorContains(t, err, "frames must be tables")

	err = run.Run(ctx, "bitmap", []byte(`lcd.create_char(0, {1, 2, 3, 4, 5, 6, 7, 8, 9})`))
	assert.ErrorContains(t, err, "eight rows")

	err = run.RunFile(ctx, filepath.Join(t.TempDir(), "missing.lua"))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestRunFile(t *testing.T) {
	run, e := newRunner(t)

	path := filepath.Join(t.TempDir(), "ok.lua")
	assert.NoError(t, os.WriteFile(path, []byte(`lcd.write("ok")`), 0o644))
	assert.NoError(t, run.RunFile(context.Background(), path))
	assert.Equal(t, byte('o'), cell(t, e, 0))
	assert.Equal(t, byte('k'), cell(t, e, 1))
}

func TestCancel(t *testing.T) {
	run, _ := newRunner(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	calls := 0
	run.Sleep = func(ctx context.Context, d time.Duration) {
		calls++
		assert.Equal(t, 10*time.Millisecond, d)
		cancel()
	}

	err := run.Run(ctx, "forever", []byte(`while true do lcd.sleep(10) end`))
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Equal(t, 1, calls)
}

func TestSleep(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// a cancelled context returns at once
	start := time.Now()
	sleep(ctx, time.Hour)
	assert.True(t, time.Since(start) < time.Minute)
}

func TestDemo(t *testing.T) {
	run, e := newRunner(t)

	src, err := static.Script("demo.lua")
	assert.NoError(t, err)
	assert.NoError(t, run.Run(context.Background(), "demo.lua", src))

	// the first row starts with the pirate
	assert.Equal(t, byte(0), cell(t, e, 0x00))
	assert.Equal(t, byte('s'), cell(t, e, 0x02))

	// the banner was reset on the last pass, leaving the pacman
	assert.Equal(t, byte(2), cell(t, e, 0x10))
	assert.Equal(t, byte(' '), cell(t, e, 0x11))

	// and the colours start again with a heart
	assert.Equal(t, byte(1), cell(t, e, 0x20))
	assert.Equal(t, byte(1), cell(t, e, 0x2F))
}
