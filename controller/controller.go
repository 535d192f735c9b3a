// Package controller contains the emulation of the ST7036 character LCD
// controller.
//
// A Controller decodes the bytes it is sent, with the state of the
// register-select and read/write lines, updates its memories and mode
// bits, and on Refresh draws the result onto a renderer.  Only pixels
// which changed since the last refresh are sent.
//
// A Controller is not safe for concurrent use, see the emulator package
// for a wrapper which is.
package controller

import (
	"fmt"

	"github.com/skx/st7036emu/charrom"
	"github.com/skx/st7036emu/memory"
	"github.com/skx/st7036emu/renderer"
)

const (
	// DDRAMSize is the number of character cells of display RAM.
	DDRAMSize = 80

	// CGRAMSize is the number of rows of user character RAM.
	CGRAMSize = 64

	// IconRAMSize is the number of cells of icon RAM.
	IconRAMSize = 16

	// Blank is the character code clear-display fills DDRAM with.
	Blank = 0x20

	// UserCharacters is the number of user-defined characters.
	UserCharacters = 8

	// DefaultContrast is the contrast after a reset.
	DefaultContrast = 0b100000

	// DefaultAmplifiedRatio is the follower amplified ratio after a reset.
	DefaultAmplifiedRatio = 0b010
)

// MemoryTag says which memory data reads and writes go to.
type MemoryTag int

const (
	// MemoryNone is the state before any address has been set.
	MemoryNone MemoryTag = iota

	// MemoryDDRAM is display RAM.
	MemoryDDRAM

	// MemoryCGRAM is user character RAM.
	MemoryCGRAM

	// MemoryIconRAM is icon RAM.
	MemoryIconRAM
)

// String returns the name of the memory.
func (m MemoryTag) String() string {
	switch m {
	case MemoryNone:
		return "none"
	case MemoryDDRAM:
		return "ddram"
	case MemoryCGRAM:
		return "cgram"
	case MemoryIconRAM:
		return "icon-ram"
	}
	return fmt.Sprintf("MemoryTag(%d)", int(m))
}

// Controller holds the state of one emulated chip.
type Controller struct {
	// display is where we draw, and lines/columns its shape
	display renderer.Renderer
	lines   int
	columns int

	// rom holds the built-in glyphs
	rom charrom.ROM

	// Our three memories
	ddram   *memory.Memory
	cgram   *memory.Memory
	iconRAM *memory.Memory

	extended       bool
	instructionSet InstructionSet
	dataLength     int

	addressCounter int
	selected       MemoryTag

	direction int
	autoShift bool

	displayOn   bool
	cursorOn    bool
	cursorBlink bool

	// blinkPhase is true while a blinking cursor shows the full block
	blinkPhase bool

	displayOffset int

	nBit    bool
	dhBit   bool
	udBit   bool
	rowSpan []int

	bias           bool
	boosterOn      bool
	followerOn     bool
	contrast       uint8
	amplifiedRatio uint8
	iconVisible    bool

	// dirty is set when the frame needs to be recomputed
	dirty bool

	// previous holds the last frame sent to the renderer
	previous [][]bool
}

// Option defines a function-type which can be used to configure a
// Controller.
type Option func(c *Controller)

// WithExtendedMode selects between the basic and extended instruction
// tables.  The default is extended.
func WithExtendedMode(extended bool) Option {
	return func(c *Controller) {
		c.extended = extended
	}
}

// WithROM replaces the built-in character ROM.
func WithROM(rom charrom.ROM) Option {
	return func(c *Controller) {
		if rom != nil {
			c.rom = rom
		}
	}
}

// New returns a controller drawing onto the given renderer, which has
// been reset.
func New(r renderer.Renderer, options ...Option) (*Controller, error) {
	if r == nil {
		return nil, fmt.Errorf("no renderer: %w", ErrPanelShape)
	}

	lines, columns := r.Lines(), r.Columns()
	limit, ok := maxColumns[lines]
	if !ok {
		return nil, fmt.Errorf("%d lines: %w", lines, ErrPanelShape)
	}
	if columns < 1 || columns > limit {
		return nil, fmt.Errorf("%d columns on a %d line panel: %w", columns, lines, ErrPanelShape)
	}

	c := &Controller{
		display:  r,
		lines:    lines,
		columns:  columns,
		rom:      charrom.Default(),
		ddram:    memory.New(DDRAMSize),
		cgram:    memory.New(CGRAMSize),
		iconRAM:  memory.NewMasked(IconRAMSize, 0x1F),
		extended: true,
	}

	for _, opt := range options {
		opt(c)
	}

	c.previous = newFrame(lines, columns)
	c.Reset()
	return c, nil
}

// Reset puts the chip back into its power-on state.
//
// Display RAM is blanked, user character RAM and icon RAM are kept.
func (c *Controller) Reset() {
	c.clearDisplay()

	c.dataLength = 8
	c.nBit = false
	c.dhBit = false
	c.udBit = false
	c.instructionSet = 0

	c.setDisplayOn(false)
	c.cursorOn = false
	c.cursorBlink = false
	c.blinkPhase = true

	c.direction = 1
	c.autoShift = false

	c.iconVisible = false

	c.bias = false
	c.boosterOn = false
	c.followerOn = false
	c.setContrast(DefaultContrast)
	c.amplifiedRatio = DefaultAmplifiedRatio

	c.selected = MemoryNone

	// N is low here, which a three line panel would reject, so the
	// basic shape is set without validation.
	c.rowSpan = basicRowSpan(c.lines)
	c.dirty = true
}

// Lines returns the number of physical lines of the panel.
func (c *Controller) Lines() int {
	return c.lines
}

// Columns returns the number of characters per line.
func (c *Controller) Columns() int {
	return c.columns
}

// Extended reports whether the extended instruction tables are in use.
func (c *Controller) Extended() bool {
	return c.extended
}

// InstructionSet returns the active extended instruction table.
func (c *Controller) InstructionSet() InstructionSet {
	return c.instructionSet
}

// DataLength returns 8 or 4.
func (c *Controller) DataLength() int {
	return c.dataLength
}

// AddressCounter returns the raw address counter.
func (c *Controller) AddressCounter() int {
	return c.addressCounter
}

// Selected returns the memory data transfers go to.
func (c *Controller) Selected() MemoryTag {
	return c.selected
}

// Direction returns +1 or -1.
func (c *Controller) Direction() int {
	return c.direction
}

// AutoShift reports whether writes scroll the display.
func (c *Controller) AutoShift() bool {
	return c.autoShift
}

// DisplayOn reports whether the display is enabled.
func (c *Controller) DisplayOn() bool {
	return c.displayOn
}

// CursorOn reports whether the cursor is shown.
func (c *Controller) CursorOn() bool {
	return c.cursorOn
}

// CursorBlink reports whether the cursor blinks.
func (c *Controller) CursorBlink() bool {
	return c.cursorBlink
}

// DisplayOffset returns the horizontal scroll, in characters.
func (c *Controller) DisplayOffset() int {
	return c.displayOffset
}

// RowSpan returns the number of physical lines covered by each logical
// row.
func (c *Controller) RowSpan() []int {
	return append([]int(nil), c.rowSpan...)
}

// Bias reports the BS bit.
func (c *Controller) Bias() bool {
	return c.bias
}

// BoosterOn reports the Bon bit.
func (c *Controller) BoosterOn() bool {
	return c.boosterOn
}

// FollowerOn reports the Fon bit.
func (c *Controller) FollowerOn() bool {
	return c.followerOn
}

// Contrast returns the 6-bit contrast.
func (c *Controller) Contrast() uint8 {
	return c.contrast
}

// AmplifiedRatio returns the 3-bit follower amplified ratio.
func (c *Controller) AmplifiedRatio() uint8 {
	return c.amplifiedRatio
}

// IconVisible reports the Ion bit.
func (c *Controller) IconVisible() bool {
	return c.iconVisible
}

// Dirty reports whether the next Refresh will recompute the frame.
func (c *Controller) Dirty() bool {
	return c.dirty
}

// Peek returns the contents of one cell of the given memory, without
// moving the address counter.  DDRAM is indexed by cell, not address.
func (c *Controller) Peek(m MemoryTag, cell int) (byte, error) {
	switch m {
	case MemoryDDRAM:
		return c.ddram.Get(uint16(c.ddram.Wrap(cell))), nil
	case MemoryCGRAM:
		return c.cgram.Get(uint16(c.cgram.Wrap(cell))), nil
	case MemoryIconRAM:
		return c.iconRAM.Get(uint16(c.iconRAM.Wrap(cell))), nil
	}
	return 0, fmt.Errorf("peek %s: %w", m, ErrNoMemorySelected)
}

// SetContrast sets the whole 6-bit contrast at once.
func (c *Controller) SetContrast(value int) error {
	if value < 0 || value > 0x3F {
		return fmt.Errorf("contrast %d: %w", value, ErrContrastRange)
	}
	c.setContrast(uint8(value))
	return nil
}

// ToggleBlink flips the phase of a blinking cursor.
func (c *Controller) ToggleBlink() {
	c.blinkPhase = !c.blinkPhase
	if c.cursorOn && c.cursorBlink {
		c.dirty = true
	}
}

// setContrast stores the contrast and tells the renderer.
func (c *Controller) setContrast(value uint8) {
	c.contrast = value & 0x3F
	c.display.ChangeContrast(c.contrast)
}

// setDisplayOn notifies the renderer only when the state changes.
func (c *Controller) setDisplayOn(on bool) {
	if on && !c.displayOn {
		c.display.TurnDisplayOn()
	}
	if !on && c.displayOn {
		c.display.TurnDisplayOff()
	}
	c.displayOn = on
}

// clearDisplay blanks DDRAM and homes the cursor.
func (c *Controller) clearDisplay() {
	c.ddram.Fill(Blank)
	c.addressCounter = 0
	c.displayOffset = 0
	c.direction = 1
	c.dirty = true
}
