package bus

import (
	"errors"
	"fmt"
)

// I2C framing, as used by the ST7036i and its ST7032 cousins.
//
// Every message starts with a control byte.  Bit 6 (RS) says whether
// the bytes following it go to the data or the instruction register.
// Bit 7 (Co) says whether another control byte follows after one byte
// of payload; when it is clear the remainder of the message is a
// stream for the selected register.
const (
	// ControlCommand is the control byte which precedes a stream of
	// instructions.
	ControlCommand byte = 0x00

	// ControlData is the control byte which precedes a stream of data.
	ControlData byte = 0x40

	controlContinuation byte = 0x80
	controlRS           byte = 0x40
)

// DefaultI2CAddress is the 7-bit slave address of the ST7036i.
const DefaultI2CAddress uint16 = 0x3C

// ErrShortFrame is returned for a message that ends straight after a
// control byte which promised more.
var ErrShortFrame = errors.New("i2c frame truncated")

// EncodeI2C frames a run of bytes for a single register.
func EncodeI2C(rs RegisterSelect, payload ...byte) []byte {
	ctl := ControlCommand
	if rs == Data {
		ctl = ControlData
	}
	return append([]byte{ctl}, payload...)
}

// DecodeI2C unpacks a framed message and writes each payload byte to
// the transport, stopping at the first error.
func DecodeI2C(msg []byte, t Transport) error {
	i := 0
	for i < len(msg) {
		ctl := msg[i]
		i++

		rs := Instruction
		if ctl&controlRS != 0 {
			rs = Data
		}

		if ctl&controlContinuation == 0 {
			// last control byte: the rest is a stream
			for ; i < len(msg); i++ {
				if err := writeFramed(t, msg[i], rs); err != nil {
					return err
				}
			}
			return nil
		}

		if i >= len(msg) {
			return ErrShortFrame
		}
		if err := writeFramed(t, msg[i], rs); err != nil {
			return err
		}
		i++
	}
	return nil
}

func writeFramed(t Transport, b byte, rs RegisterSelect) error {
	if _, err := t.Transfer(b, rs, Write); err != nil {
		return fmt.Errorf("%s byte 0x%02X: %w", rs, b, err)
	}
	return nil
}
