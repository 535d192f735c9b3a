package controller

import (
	"fmt"

	"github.com/skx/st7036emu/bus"
)

// InstructionSet selects one of the extended instruction tables.
type InstructionSet uint8

// OpKind identifies an operation the decoder can produce.
type OpKind int

// The operations of the controller, across every instruction table.
const (
	OpReadData OpKind = iota
	OpWriteData
	OpReadBusyAndAddress
	OpClearDisplay
	OpReturnHome
	OpSetEntryMode
	OpSwitchDisplay
	OpShift
	OpSetFunction
	OpSetCGRAMAddress
	OpSetDDRAMAddress
	OpSetBias
	OpSetIconAddress
	OpSetPowerIconContrastHigh
	OpControlFollower
	OpSetContrastLow
	OpSetDoubleHeightPosition
)

var opNames = map[OpKind]string{
	OpReadData:                 "read-data",
	OpWriteData:                "write-data",
	OpReadBusyAndAddress:       "read-busy-flag-and-address",
	OpClearDisplay:             "clear-display",
	OpReturnHome:               "return-home",
	OpSetEntryMode:             "set-entry-mode",
	OpSwitchDisplay:            "switch-display-on-off",
	OpShift:                    "shift-cursor-or-display",
	OpSetFunction:              "set-function",
	OpSetCGRAMAddress:          "set-cgram-address",
	OpSetDDRAMAddress:          "set-ddram-address",
	OpSetBias:                  "set-bias",
	OpSetIconAddress:           "set-icon-address",
	OpSetPowerIconContrastHigh: "set-power-icon-contrast-high",
	OpControlFollower:          "control-follower",
	OpSetContrastLow:           "set-contrast-low",
	OpSetDoubleHeightPosition:  "set-double-height-position",
}

// String returns the name of the operation.
func (k OpKind) String() string {
	if n, ok := opNames[k]; ok {
		return n
	}
	return fmt.Sprintf("OpKind(%d)", int(k))
}

// Operation is a decoded instruction, with the byte which carries its
// parameters.
type Operation struct {
	Kind OpKind
	Arg  byte
}

// String returns a human-readable version of the operation.
func (o Operation) String() string {
	return fmt.Sprintf("%s(0x%02X)", o.Kind, o.Arg)
}

// Decode works out which operation a transfer selects, without touching
// any state.
//
// Instruction writes are matched from the highest set bit downwards,
// the first match wins, as on the chip.
func Decode(b byte, rs bus.RegisterSelect, rw bus.ReadWrite, extended bool, set InstructionSet) (Operation, error) {

	if rs == bus.Data {
		if rw == bus.Read {
			return Operation{Kind: OpReadData}, nil
		}
		return Operation{Kind: OpWriteData, Arg: b}, nil
	}

	if rw == bus.Read {
		return Operation{Kind: OpReadBusyAndAddress}, nil
	}

	if extended && set > 2 {
		return Operation{}, fmt.Errorf("instruction 0x%02X in table %d: %w", b, set, ErrReservedTable)
	}

	op := func(k OpKind) (Operation, error) {
		return Operation{Kind: k, Arg: b}, nil
	}

	switch {
	case b&0x80 != 0:
		return op(OpSetDDRAMAddress)

	case b&0x40 != 0:
		if !extended || set == 0 {
			return op(OpSetCGRAMAddress)
		}
		if set == 2 {
			return Operation{}, fmt.Errorf("instruction 0x%02X in table 2: %w", b, ErrReservedInstruction)
		}
		switch (b >> 4) & 0x03 {
		case 0:
			return op(OpSetIconAddress)
		case 1:
			return op(OpSetPowerIconContrastHigh)
		case 2:
			return op(OpControlFollower)
		default:
			return op(OpSetContrastLow)
		}

	case b&0x20 != 0:
		return op(OpSetFunction)

	case b&0x10 != 0:
		if !extended || set == 0 {
			return op(OpShift)
		}
		if set == 1 {
			return op(OpSetBias)
		}
		return op(OpSetDoubleHeightPosition)

	case b&0x08 != 0:
		return op(OpSwitchDisplay)

	case b&0x04 != 0:
		return op(OpSetEntryMode)

	case b&0x02 != 0:
		return op(OpReturnHome)

	case b&0x01 != 0:
		return op(OpClearDisplay)
	}

	return Operation{}, fmt.Errorf("instruction 0x%02X: %w", b, ErrUnknownInstruction)
}
