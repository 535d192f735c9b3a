package controller

import (
	"fmt"

	"github.com/skx/st7036emu/bus"
)

// Transfer handles one byte arriving over the bus, returning the byte
// the chip drives back.  Writes return zero.
//
// This makes a Controller a bus.Transport.
func (c *Controller) Transfer(b byte, rs bus.RegisterSelect, rw bus.ReadWrite) (byte, error) {
	op, err := Decode(b, rs, rw, c.extended, c.instructionSet)
	if err != nil {
		return 0, err
	}
	return c.Execute(op)
}

// Execute applies a decoded operation.
//
// Every operation either succeeds completely, or returns an error and
// leaves the state untouched.
func (c *Controller) Execute(op Operation) (byte, error) {
	b := op.Arg

	switch op.Kind {
	case OpReadData:
		return c.readData()

	case OpWriteData:
		return 0, c.writeData(b)

	case OpReadBusyAndAddress:
		// No instruction takes measurable time, so busy is never set.
		return byte(c.addressCounter & 0x7F), nil

	case OpClearDisplay:
		c.clearDisplay()

	case OpReturnHome:
		c.addressCounter = 0
		c.displayOffset = 0
		c.dirty = true

	case OpSetEntryMode:
		c.direction = -1
		if b&0x02 != 0 {
			c.direction = 1
		}
		c.autoShift = b&0x01 != 0

	case OpSwitchDisplay:
		c.setDisplayOn(b&0x04 != 0)
		c.cursorOn = b&0x02 != 0
		c.cursorBlink = b&0x01 != 0
		c.dirty = true

	case OpShift:
		right := b&0x04 != 0
		if b&0x08 != 0 {
			// Moving the text right means showing from one column
			// earlier.
			if right {
				c.scroll(-1)
			} else {
				c.scroll(1)
			}
		} else {
			if right {
				c.move(1)
			} else {
				c.move(-1)
			}
		}

	case OpSetFunction:
		return 0, c.setFunction(b)

	case OpSetDoubleHeightPosition:
		ud := b&0x08 != 0
		span, err := rowSpanFor(c.lines, c.nBit, c.dhBit, ud, c.extended)
		if err != nil {
			return 0, err
		}
		c.udBit = ud
		c.setRowSpan(span)

	case OpSetCGRAMAddress:
		c.addressCounter = int(b & 0x3F)
		c.selected = MemoryCGRAM
		c.dirty = true

	case OpSetDDRAMAddress:
		addr := int(b & 0x7F)
		if !c.validAddress(addr) {
			return 0, fmt.Errorf("DDRAM address 0x%02X on a %d line panel: %w", addr, c.lines, ErrAddressRange)
		}
		c.addressCounter = addr
		c.selected = MemoryDDRAM
		c.dirty = true

	case OpSetIconAddress:
		c.addressCounter = int(b & 0x0F)
		c.selected = MemoryIconRAM
		c.dirty = true

	case OpSetBias:
		fx := b&0x01 != 0
		if fx != (c.lines == 3) {
			return 0, fmt.Errorf("FX=%t on a %d line panel: %w", fx, c.lines, ErrBiasFixedBit)
		}
		c.bias = b&0x08 != 0

	case OpSetPowerIconContrastHigh:
		c.iconVisible = b&0x08 != 0
		c.boosterOn = b&0x04 != 0
		c.setContrast(c.contrast&0x0F | (b&0x03)<<4)
		c.dirty = true

	case OpControlFollower:
		c.followerOn = b&0x08 != 0
		c.amplifiedRatio = b & 0x07

	case OpSetContrastLow:
		c.setContrast(c.contrast&0x30 | b&0x0F)

	default:
		return 0, fmt.Errorf("%s: %w", op.Kind, ErrUnknownInstruction)
	}

	return 0, nil
}

// setFunction validates the whole of a function-set instruction before
// changing anything.
func (c *Controller) setFunction(b byte) error {
	length := 4
	if b&0x10 != 0 {
		length = 8
	}
	n := b&0x08 != 0

	// DH and IS only exist in the extended tables.
	dh, set := c.dhBit, c.instructionSet
	if c.extended {
		dh = b&0x04 != 0
		set = InstructionSet(b & 0x03)
		if set == 3 {
			return fmt.Errorf("function set 0x%02X: %w", b, ErrReservedTable)
		}
	}

	span, err := rowSpanFor(c.lines, n, dh, c.udBit, c.extended)
	if err != nil {
		return err
	}

	c.dataLength = length
	c.nBit = n
	c.dhBit = dh
	c.instructionSet = set
	c.setRowSpan(span)
	return nil
}

// setRowSpan stores a new layout, always forcing a redraw.
func (c *Controller) setRowSpan(span []int) {
	c.rowSpan = span
	c.dirty = true
}

func (c *Controller) readData() (byte, error) {
	var v byte

	switch c.selected {
	case MemoryDDRAM:
		v = c.ddram.Get(uint16(c.cellFor(c.addressCounter)))
	case MemoryCGRAM:
		v = c.cgram.Get(uint16(c.addressCounter))
	case MemoryIconRAM:
		v = c.iconRAM.Get(uint16(c.addressCounter))
	default:
		return 0, fmt.Errorf("read-data: %w", ErrNoMemorySelected)
	}

	c.move(c.direction)
	return v, nil
}

func (c *Controller) writeData(b byte) error {
	switch c.selected {
	case MemoryDDRAM:
		c.ddram.Set(uint16(c.cellFor(c.addressCounter)), b)
	case MemoryCGRAM:
		c.cgram.Set(uint16(c.addressCounter), b)
	case MemoryIconRAM:
		c.iconRAM.Set(uint16(c.addressCounter), b)
	default:
		return fmt.Errorf("write-data 0x%02X: %w", b, ErrNoMemorySelected)
	}

	ddram := c.selected == MemoryDDRAM
	c.move(c.direction)
	if ddram && c.autoShift {
		c.scroll(c.direction)
	}
	return nil
}

// move steps the address counter, wrapping at the end of the selected
// memory rather than at the end of a line.
func (c *Controller) move(delta int) {
	switch c.selected {
	case MemoryCGRAM:
		c.addressCounter = c.cgram.Wrap(c.addressCounter + delta)
	case MemoryIconRAM:
		c.addressCounter = c.iconRAM.Wrap(c.addressCounter + delta)
	default:
		cell := c.ddram.Wrap(c.cellFor(c.addressCounter) + delta)
		c.addressCounter = c.addressFor(cell)
	}
	c.dirty = true
}

// scroll moves the display offset, modulo the number of columns.
func (c *Controller) scroll(delta int) {
	c.displayOffset = ((c.displayOffset+delta)%c.columns + c.columns) % c.columns
	c.dirty = true
}

// validAddress reports whether a DDRAM address is shown on the panel.
func (c *Controller) validAddress(addr int) bool {
	for _, r := range ddramLayout[c.lines] {
		if r.contains(addr) {
			return true
		}
	}
	return false
}

// cellFor converts a DDRAM address to a cell of the 80 byte store.  On
// two line panels the second line starts at 0x40.
func (c *Controller) cellFor(addr int) int {
	if c.lines == 2 && addr >= 0x40 {
		return addr - 0x40 + 0x28
	}
	return c.ddram.Wrap(addr)
}

// addressFor is the inverse of cellFor.
func (c *Controller) addressFor(cell int) int {
	if c.lines == 2 && cell >= 0x28 {
		return cell - 0x28 + 0x40
	}
	return cell
}
