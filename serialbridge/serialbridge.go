// Package serialbridge feeds LCD bus traffic, captured by a
// microcontroller and sent over a serial line, into a transport.
//
// Every byte on the wire carries half of a bus transfer:
//
//	bit 4      the RS line, 0 for the instruction register
//	bits 3-0   D7-D4 for the first byte, D3-D0 for the second
//
// The two halves of a transfer must agree on RS.  When they don't we
// are out of step with the sender, so the second half is taken as the
// start of a new transfer.  A pause in the traffic also resets the
// pairing.
package serialbridge

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/skx/st7036emu/bus"
	"github.com/tarm/serial"
)

// rsBit is the position of the RS line within a frame byte.
const rsBit = 4

// DefaultBaud is the speed used when none is given.
const DefaultBaud = 115200

// ErrReadUnsupported is returned by the sending transport, a serial
// capture only carries writes.
var ErrReadUnsupported = errors.New("serial bridge cannot read")

// Open opens the named serial port.  Reads return after a short idle
// period, which is how pauses in the traffic are spotted.
func Open(name string, baud int) (*serial.Port, error) {
	if baud <= 0 {
		baud = DefaultBaud
	}
	return serial.OpenPort(&serial.Config{
		Name:        name,
		Baud:        baud,
		ReadTimeout: 50 * time.Millisecond,
	})
}

// Encode returns the two frame bytes which carry b.
func Encode(b byte, rs bus.RegisterSelect) [2]byte {
	var sel byte
	if rs == bus.Data {
		sel = 1 << rsBit
	}
	return [2]byte{sel | b>>4, sel | b&0x0F}
}

// Decoder pairs frame bytes into transfers.
type Decoder struct {
	t bus.Transport

	// pending is set when the first half of a transfer has been seen.
	pending bool
	rs      bus.RegisterSelect
	high    byte

	// resyncs counts the times the halves disagreed.
	resyncs int
}

// NewDecoder returns a decoder which sends complete transfers to t.
func NewDecoder(t bus.Transport) *Decoder {
	return &Decoder{t: t}
}

// Feed processes one frame byte.  An error is only returned when a
// complete transfer was rejected by the transport.
func (d *Decoder) Feed(frame byte) error {
	rs := bus.Instruction
	if frame&(1<<rsBit) != 0 {
		rs = bus.Data
	}
	nibble := frame & 0x0F

	if !d.pending {
		d.pending = true
		d.rs = rs
		d.high = nibble
		return nil
	}

	if rs != d.rs {
		d.resyncs++
		d.rs = rs
		d.high = nibble
		return nil
	}

	d.pending = false
	_, err := d.t.Transfer(d.high<<4|nibble, rs, bus.Write)
	return err
}

// Sync discards a half-received transfer.
func (d *Decoder) Sync() {
	d.pending = false
}

// Resyncs returns the number of times the decoder lost step.
func (d *Decoder) Resyncs() int {
	return d.resyncs
}

// Bridge copies a stream of frames into a transport.
type Bridge struct {
	r   io.Reader
	dec *Decoder

	// Logger holds a logger which we use for debugging and diagnostics.
	Logger *slog.Logger

	// Settled, if set, is called when the traffic pauses after some
	// transfers have been made.
	Settled func()

	// Follow keeps reading after an empty read, even one reporting
	// io.EOF, as a serial port does when its read timeout expires.
	// Only cancellation, or another error, stops the bridge.
	Follow bool
}

// New returns a bridge reading frames from r.
func New(logger *slog.Logger, r io.Reader, t bus.Transport) *Bridge {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Bridge{
		r:      r,
		dec:    NewDecoder(t),
		Logger: logger,
	}
}

// Run copies frames until the reader is exhausted, or the context is
// cancelled.  Rejected transfers are logged and skipped, as they would
// be by a real chip.
//
// An empty read is a pause in the traffic.  Unless the bridge follows
// its reader, io.EOF ends the stream.
func (b *Bridge) Run(ctx context.Context) error {
	buf := make([]byte, 128)
	settled := true

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		n, err := b.r.Read(buf)

		eof := errors.Is(err, io.EOF)
		if b.Follow && eof {
			err = nil
			eof = false
		}

		if n == 0 && err == nil {
			b.dec.Sync()
			if !settled {
				settled = true
				if b.Settled != nil {
					b.Settled()
				}
			}
			continue
		}

		for _, frame := range buf[:n] {
			if ferr := b.dec.Feed(frame); ferr != nil {
				b.Logger.Warn("transfer rejected",
					slog.String("frame", fmt.Sprintf("0x%02X", frame)),
					slog.String("error", ferr.Error()))
			}
		}
		if n > 0 {
			settled = false
		}

		if eof {
			b.Logger.Debug("serial stream ended",
				slog.Int("resyncs", b.dec.Resyncs()))
			return nil
		}
		if err != nil {
			return fmt.Errorf("reading frames: %w", err)
		}
	}
}

// Transport sends every write as a pair of frames, so one emulator
// can feed another over a serial line.
type Transport struct {
	w io.Writer
}

// NewTransport returns a transport writing frames to w.
func NewTransport(w io.Writer) *Transport {
	return &Transport{w: w}
}

// Transfer writes the frames for b.
//
// This is part of the bus.Transport interface.
func (t *Transport) Transfer(b byte, rs bus.RegisterSelect, rw bus.ReadWrite) (byte, error) {
	if rw == bus.Read {
		return 0, ErrReadUnsupported
	}
	frames := Encode(b, rs)
	_, err := t.w.Write(frames[:])
	return 0, err
}
