// Package driver is a client library for ST7036 based displays.
//
// It speaks to the chip through a bus.Transport, so the same code can
// drive real hardware, or the emulator.  Every command is preceded by
// a function-set which selects the instruction table it lives in.
package driver

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/skx/st7036emu/bus"
	"github.com/skx/st7036emu/charrom"
	"periph.io/x/conn/v3/gpio"
)

const (
	commandClear          = 0b00000001
	commandEntryMode      = 0b00000100
	commandEntryIncrement = 0b00000010
	commandDisplayMode    = 0b00001000
	commandShift          = 0b00010000
	commandBias           = 0b00010100
	commandDoubleHeight   = 0b00010000
	commandCGRAM          = 0b01000000
	commandDDRAM          = 0b10000000
	commandPowerIcon      = 0b01010100
	commandFollower       = 0b01101011
	commandContrastLow    = 0b01110000

	blinkOn   = 0b00000001
	cursorOn  = 0b00000010
	displayOn = 0b00000100

	// DefaultTemplate is the function-set sent before every command:
	// 8-bit bus, two line mode.
	DefaultTemplate = 0b00111000

	// DefaultContrast is set when the display is initialised.
	DefaultContrast = 40
)

// Positions for DoubleHeight.
const (
	Bottom = 0
	Top    = 1
)

var (
	// ErrRows is returned for a display with other than 1-3 rows.
	ErrRows = errors.New("rows must be 1, 2, or 3")

	// ErrContrast is returned for a contrast outside 0-63.
	ErrContrast = errors.New("contrast must be in the range 0-63")

	// ErrPosition is returned for a cursor position off the screen.
	ErrPosition = errors.New("position outside the screen")

	// ErrCharacterSlot is returned for a user character outside 0-7.
	ErrCharacterSlot = errors.New("character slot must be in the range 0-7")

	// ErrDoubleHeight is returned when the display cannot show double
	// height text.
	ErrDoubleHeight = errors.New("double height needs two or more rows")

	// ErrNoFrames is returned for an animation without frames.
	ErrNoFrames = errors.New("animation has no frames")
)

// Bitmap is a user character, one byte per row with five pixels used.
type Bitmap [8]byte

// animation is a user character which changes over time.
type animation struct {
	frames []Bitmap
	fps    float64
}

// LCD is a display attached over a transport.
type LCD struct {
	transport bus.Transport

	rows       int
	columns    int
	rowOffsets []byte

	template byte
	reset    gpio.PinOut

	enabled      bool
	cursor       bool
	blink        bool
	doubleHeight bool

	animations [8]*animation

	// address follows the chip's DDRAM address counter, so it can be
	// put back after user characters are loaded
	address byte

	// now is used to pick animation frames
	now func() time.Time
}

// Option defines a function-type which can be used to configure an LCD.
type Option func(l *LCD)

// WithRows sets the number of rows, the default is 3.
func WithRows(rows int) Option {
	return func(l *LCD) {
		l.rows = rows
	}
}

// WithColumns sets the number of columns, the default is 16.
func WithColumns(columns int) Option {
	return func(l *LCD) {
		l.columns = columns
	}
}

// WithTemplate changes the function-set byte sent before commands.
func WithTemplate(template byte) Option {
	return func(l *LCD) {
		l.template = template
	}
}

// WithResetPin gives the driver the pin wired to the reset line.
func WithResetPin(pin gpio.PinOut) Option {
	return func(l *LCD) {
		l.reset = pin
	}
}

// WithClock replaces the clock used to animate characters.
func WithClock(now func() time.Time) Option {
	return func(l *LCD) {
		l.now = now
	}
}

// New initialises the display: it is turned on, set to write left to
// right, and cleared.
func New(t bus.Transport, options ...Option) (*LCD, error) {
	l := &LCD{
		transport: t,
		rows:      3,
		columns:   16,
		template:  DefaultTemplate,
		enabled:   true,
		now:       time.Now,
	}

	for _, opt := range options {
		opt(l)
	}

	if t == nil {
		return nil, bus.ErrNoTransport
	}

	switch l.rows {
	case 1:
		l.rowOffsets = []byte{0x00}
	case 2:
		l.rowOffsets = []byte{0x00, 0x40}
	case 3:
		l.rowOffsets = []byte{0x00, 0x10, 0x20}
	default:
		return nil, fmt.Errorf("%d rows: %w", l.rows, ErrRows)
	}

	if err := l.Reset(); err != nil {
		return nil, err
	}

	steps := []func() error{
		l.updateDisplayMode,
		func() error { return l.writeCommand(commandEntryMode|commandEntryIncrement, 0) },
		func() error { return l.SetBias(1) },
		func() error { return l.SetContrast(DefaultContrast) },
		l.Clear,
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return nil, err
		}
	}
	return l, nil
}

// Rows returns the number of rows.
func (l *LCD) Rows() int {
	return l.rows
}

// Columns returns the number of columns.
func (l *LCD) Columns() int {
	return l.columns
}

// Reset pulses the reset line, if there is one.
func (l *LCD) Reset() error {
	if l.reset == nil {
		return nil
	}
	if err := l.reset.Out(gpio.Low); err != nil {
		return err
	}
	time.Sleep(time.Millisecond)
	return l.reset.Out(gpio.High)
}

// SetBias sets the bias, 0 or 1.  The fixed bit is set to suit the
// number of rows.
func (l *LCD) SetBias(bias int) error {
	cmd := byte(commandBias)
	if bias != 0 {
		cmd |= 1 << 3
	}
	if l.rows == 3 {
		cmd |= 1
	}
	return l.writeCommand(cmd, 1)
}

// SetContrast sets the contrast, 0-63.
func (l *LCD) SetContrast(contrast int) error {
	if contrast < 0 || contrast > 0x3F {
		return fmt.Errorf("contrast %d: %w", contrast, ErrContrast)
	}

	// For 3.3v operation the booster must be on, which is on the same
	// command as the top two bits of the contrast.
	if err := l.writeCommand(commandPowerIcon|byte(contrast>>4)&0x03, 1); err != nil {
		return err
	}
	if err := l.writeCommand(commandFollower, 1); err != nil {
		return err
	}
	return l.writeCommand(commandContrastLow|byte(contrast)&0x0F, 1)
}

// SetDisplayMode turns the display, cursor, and blinking on or off.
func (l *LCD) SetDisplayMode(enable, cursor, blink bool) error {
	l.enabled = enable
	l.cursor = cursor
	l.blink = blink
	return l.updateDisplayMode()
}

// EnableCursor shows or hides the cursor.
func (l *LCD) EnableCursor(cursor bool) error {
	l.cursor = cursor
	return l.updateDisplayMode()
}

// EnableBlink makes the cursor blink, or not.
func (l *LCD) EnableBlink(blink bool) error {
	l.blink = blink
	return l.updateDisplayMode()
}

func (l *LCD) updateDisplayMode() error {
	mask := byte(commandDisplayMode)
	if l.enabled {
		mask |= displayOn
	}
	if l.cursor {
		mask |= cursorOn
	}
	if l.blink {
		mask |= blinkOn
	}
	return l.writeCommand(mask, 0)
}

// SetCursorOffset moves the cursor to a raw DDRAM address.
func (l *LCD) SetCursorOffset(offset int) error {
	if offset < 0 || offset > 0x7F {
		return fmt.Errorf("offset 0x%X: %w", offset, ErrPosition)
	}
	return l.moveTo(byte(offset))
}

// SetCursorPosition moves the cursor to the given column and row.
func (l *LCD) SetCursorPosition(column, row int) error {
	if row < 0 || row >= l.rows || column < 0 || column >= l.columns {
		return fmt.Errorf("column %d row %d: %w", column, row, ErrPosition)
	}
	return l.moveTo(l.rowOffsets[row] + byte(column))
}

// moveTo sets the DDRAM address.
func (l *LCD) moveTo(addr byte) error {
	if err := l.writeCommand(commandDDRAM|addr, 0); err != nil {
		return err
	}
	l.address = addr
	return nil
}

// advance moves our copy of the address counter as the chip does, over
// the 80 cells of display RAM.
func (l *LCD) advance(delta int) {
	cell := int(l.address)
	if l.rows == 2 && cell >= 0x40 {
		cell = cell - 0x40 + 40
	}
	cell = ((cell+delta)%80 + 80) % 80
	if l.rows == 2 && cell >= 40 {
		cell = cell - 40 + 0x40
	}
	l.address = byte(cell)
}

// restore selects display RAM again, at the address last used.  An
// address a three row display cannot be set to goes home instead.
func (l *LCD) restore() error {
	addr := l.address
	if l.rows == 3 && addr >= 0x30 {
		addr = 0
	}
	return l.moveTo(addr)
}

// Home moves the cursor to the top-left.
func (l *LCD) Home() error {
	return l.SetCursorPosition(0, 0)
}

// Clear blanks the display and moves the cursor home.
func (l *LCD) Clear() error {
	if err := l.writeCommand(commandClear, 0); err != nil {
		return err
	}
	return l.Home()
}

// Write shows text at the cursor.  Characters the display cannot show
// are replaced.
func (l *LCD) Write(text string) error {
	for _, b := range charrom.Encode(text) {
		if err := bus.WriteData(l.transport, b); err != nil {
			return err
		}
		l.advance(1)
	}
	return nil
}

// CreateChar defines one of the eight user characters.  The cursor is
// left where it was, so text can be written straight afterwards.
func (l *LCD) CreateChar(slot int, bitmap Bitmap) error {
	if slot < 0 || slot > 7 {
		return fmt.Errorf("slot %d: %w", slot, ErrCharacterSlot)
	}

	base := byte(slot * 8)
	for i, row := range bitmap {
		if err := l.writeCommand(commandCGRAM|(base+byte(i)), 0); err != nil {
			return err
		}
		if err := bus.WriteData(l.transport, row); err != nil {
			return err
		}
	}
	if err := l.restore(); err != nil {
		return err
	}
	return l.updateDisplayMode()
}

// CreateAnimation defines a user character which cycles through the
// given frames, fps times a second, as UpdateAnimations is called.
func (l *LCD) CreateAnimation(slot int, frames []Bitmap, fps float64) error {
	if len(frames) == 0 {
		return ErrNoFrames
	}
	if err := l.CreateChar(slot, frames[0]); err != nil {
		return err
	}
	l.animations[slot] = &animation{frames: frames, fps: fps}
	return nil
}

// UpdateAnimations loads the current frame of every animation.
func (l *LCD) UpdateAnimations() error {
	secs := float64(l.now().UnixNano()) / float64(time.Second)

	for slot, anim := range l.animations {
		if anim == nil {
			continue
		}
		frame := int(math.Round(secs*anim.fps)) % len(anim.frames)
		if err := l.CreateChar(slot, anim.frames[frame]); err != nil {
			return err
		}
	}
	return nil
}

// CursorLeft moves the cursor one place left.
func (l *LCD) CursorLeft() error {
	if err := l.writeCommand(commandShift, 0); err != nil {
		return err
	}
	l.advance(-1)
	return nil
}

// CursorRight moves the cursor one place right.
func (l *LCD) CursorRight() error {
	if err := l.writeCommand(commandShift|1<<2, 0); err != nil {
		return err
	}
	l.advance(1)
	return nil
}

// ShiftLeft scrolls the text one place left.
func (l *LCD) ShiftLeft() error {
	return l.writeCommand(commandShift|1<<3, 0)
}

// ShiftRight scrolls the text one place right.
func (l *LCD) ShiftRight() error {
	return l.writeCommand(commandShift|1<<3|1<<2, 0)
}

// DoubleHeight turns double height text on or off.  On a three row
// display position selects the Top or Bottom pair of rows.
func (l *LCD) DoubleHeight(enable bool, position int) error {
	if enable && l.rows < 2 {
		return ErrDoubleHeight
	}

	l.doubleHeight = enable
	if err := l.writeInstructionSet(0); err != nil {
		return err
	}

	cmd := byte(commandDoubleHeight)
	if position != Bottom {
		cmd |= 1 << 3
	}
	return l.writeCommand(cmd, 2)
}

// writeInstructionSet sends the function-set selecting a table.
func (l *LCD) writeInstructionSet(set byte) error {
	cmd := l.template | set&0x03
	if l.doubleHeight {
		cmd |= 1 << 2

		// Two rows become one, N must be low for that.
		if l.rows == 2 {
			cmd &^= 1 << 3
		}
	}
	return bus.WriteCommand(l.transport, cmd)
}

// writeCommand sends a command from the given table.
func (l *LCD) writeCommand(cmd byte, set byte) error {
	if err := l.writeInstructionSet(set); err != nil {
		return err
	}
	return bus.WriteCommand(l.transport, cmd)
}
