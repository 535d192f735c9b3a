// Package bus describes how bytes travel between a host and the LCD
// controller.
//
// The controller itself only understands the Transport contract: one
// byte in, one byte out, plus the state of the register-select and
// read/write lines.  Everything else in this package adapts real-world
// buses to that contract - SPI with a separate RS pin, and the I2C
// framing where a control byte carries the RS line.
package bus

import (
	"errors"
	"fmt"
)

// RegisterSelect is the state of the RS line.
type RegisterSelect int

const (
	// Instruction selects the instruction register (RS low).
	Instruction RegisterSelect = iota

	// Data selects the data register (RS high).
	Data
)

// String returns a human-readable name for the register.
func (rs RegisterSelect) String() string {
	if rs == Data {
		return "data"
	}
	return "instruction"
}

// ReadWrite is the state of the R/W line.
type ReadWrite int

const (
	// Write transfers a byte to the controller.
	Write ReadWrite = iota

	// Read transfers a byte from the controller.
	Read
)

// String returns a human-readable name for the direction.
func (rw ReadWrite) String() string {
	if rw == Read {
		return "read"
	}
	return "write"
}

// Transport is implemented by anything that can carry a single byte to
// or from an LCD controller.
//
// For writes the returned byte is meaningless, for reads the byte
// passed in is ignored.
type Transport interface {
	Transfer(b byte, rs RegisterSelect, rw ReadWrite) (byte, error)
}

// TransportFunc adapts a function to the Transport interface.
type TransportFunc func(b byte, rs RegisterSelect, rw ReadWrite) (byte, error)

// Transfer calls f.
func (f TransportFunc) Transfer(b byte, rs RegisterSelect, rw ReadWrite) (byte, error) {
	return f(b, rs, rw)
}

// ErrNoTransport is returned when a tee is created without a primary.
var ErrNoTransport = errors.New("no transport")

// Tee sends every transfer to a primary transport and copies writes to
// any number of mirrors.  Reads are answered by the primary alone.
type Tee struct {
	primary Transport
	mirrors []Transport
}

// NewTee creates a Tee.
func NewTee(primary Transport, mirrors ...Transport) (*Tee, error) {
	if primary == nil {
		return nil, ErrNoTransport
	}
	return &Tee{primary: primary, mirrors: mirrors}, nil
}

// Transfer implements Transport.
//
// The primary sees the byte first; if it rejects it the mirrors are
// not written.  Otherwise every mirror is written, even after one of
// them fails, and the failures are returned together.  The byte has
// then been applied by the primary and the other mirrors, so a caller
// must not send it again.
func (t *Tee) Transfer(b byte, rs RegisterSelect, rw ReadWrite) (byte, error) {
	out, err := t.primary.Transfer(b, rs, rw)
	if err != nil || rw == Read {
		return out, err
	}

	var errs []error
	for i, m := range t.mirrors {
		if _, err := m.Transfer(b, rs, rw); err != nil {
			errs = append(errs, fmt.Errorf("mirror %d: %w", i, err))
		}
	}
	return out, errors.Join(errs...)
}

// WriteCommand writes an instruction byte to the transport.
func WriteCommand(t Transport, b byte) error {
	_, err := t.Transfer(b, Instruction, Write)
	return err
}

// WriteData writes a data byte to the transport.
func WriteData(t Transport, b byte) error {
	_, err := t.Transfer(b, Data, Write)
	return err
}
