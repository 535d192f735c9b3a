package controller

import (
	"errors"
	"fmt"
)

// The three families of error the controller reports.  Every specific
// error below wraps exactly one of them, so callers can test with
// errors.Is against either.
var (
	// ErrConfiguration covers a bad renderer shape, a forbidden
	// combination of mode bits, and reserved instructions.
	ErrConfiguration = errors.New("configuration error")

	// ErrProtocol covers misuse of the transport contract.
	ErrProtocol = errors.New("protocol violation")

	// ErrRange covers values outside their legal range.
	ErrRange = errors.New("value out of range")
)

var (
	// ErrUnknownInstruction is returned for an instruction byte with no
	// meaning in the active table.
	ErrUnknownInstruction = fmt.Errorf("unknown instruction: %w", ErrConfiguration)

	// ErrReservedInstruction is returned for a reserved instruction in
	// an otherwise valid table.
	ErrReservedInstruction = fmt.Errorf("reserved instruction: %w", ErrConfiguration)

	// ErrReservedTable is returned when instruction set 3 is selected,
	// or used.
	ErrReservedTable = fmt.Errorf("reserved instruction table: %w", ErrConfiguration)

	// ErrForbiddenLayout is returned when N, DH and UD describe a layout
	// the attached panel cannot show.
	ErrForbiddenLayout = fmt.Errorf("forbidden layout: %w", ErrConfiguration)

	// ErrBiasFixedBit is returned when the FX bit of a bias instruction
	// does not match the number of lines.
	ErrBiasFixedBit = fmt.Errorf("bias FX bit mismatch: %w", ErrConfiguration)

	// ErrPanelShape is returned by New for an unsupported renderer.
	ErrPanelShape = fmt.Errorf("unsupported panel shape: %w", ErrConfiguration)

	// ErrNoMemorySelected is returned for a data access before any
	// address has been set.
	ErrNoMemorySelected = fmt.Errorf("no memory selected: %w", ErrProtocol)

	// ErrAddressRange is returned when a DDRAM address is not part of
	// the layout of the attached panel.
	ErrAddressRange = fmt.Errorf("address outside display RAM layout: %w", ErrProtocol)

	// ErrContrastRange is returned by SetContrast for values outside 0-63.
	ErrContrastRange = fmt.Errorf("contrast must be 0-63: %w", ErrRange)
)
