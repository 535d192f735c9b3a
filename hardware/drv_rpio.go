package hardware

import (
	"fmt"
	"time"

	"github.com/skx/st7036emu/bus"
	"github.com/stianeikeland/go-rpio/v4"
	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
)

// SPIDevice is an ST7036 on the Raspberry Pi SPI0 bus, with the RS line
// on a GPIO.
type SPIDevice struct {
	t *bus.SPITransport
}

// newSPIDevice drives a panel over any SPI connection and RS pin.
func newSPIDevice(c spi.Conn, rs gpio.PinOut) *SPIDevice {
	return &SPIDevice{t: bus.NewSPITransport(c, rs)}
}

// Transfer sets the RS line and clocks out a single byte.
//
// This is part of the bus.Transport interface.
func (d *SPIDevice) Transfer(b byte, rs bus.RegisterSelect, rw bus.ReadWrite) (byte, error) {
	if rw == bus.Read {
		return 0, ErrReadUnsupported
	}
	return d.t.Transfer(b, rs, rw)
}

// Close releases SPI0 and the GPIO memory.
func (d *SPIDevice) Close() error {
	rpio.SpiEnd(rpio.Spi0)
	return rpio.Close()
}

// spi0 is the SPI0 peripheral, driven by rpio.
type spi0 struct{}

func (spi0) String() string {
	return "rpio-spi0"
}

func (spi0) Duplex() conn.Duplex {
	return conn.Half
}

// Tx clocks out w.  The panel has no data line back to us.
func (spi0) Tx(w, r []byte) error {
	if len(r) > 0 {
		return ErrReadUnsupported
	}
	rpio.SpiTransmit(w...)
	return nil
}

func (c spi0) TxPackets(p []spi.Packet) error {
	for _, pkt := range p {
		if err := c.Tx(pkt.W, pkt.R); err != nil {
			return err
		}
	}
	return nil
}

// pin is a GPIO output, driven by rpio.
type pin rpio.Pin

func (p pin) String() string {
	return p.Name()
}

func (p pin) Halt() error {
	return nil
}

func (p pin) Name() string {
	return fmt.Sprintf("GPIO%d", int(p))
}

func (p pin) Number() int {
	return int(p)
}

func (p pin) Function() string {
	return "Out"
}

func (p pin) Out(l gpio.Level) error {
	if l == gpio.High {
		rpio.Pin(p).High()
	} else {
		rpio.Pin(p).Low()
	}
	return nil
}

func (p pin) PWM(duty gpio.Duty, f physic.Frequency) error {
	return bus.ErrNoPWM
}

// openSPI maps the GPIO registers, pulses the reset line, and claims
// SPI0.
func openSPI(cfg Config) (Device, error) {
	if err := rpio.Open(); err != nil {
		return nil, err
	}

	if cfg.Reset >= 0 {
		rpio.Pin(cfg.Reset).Output()
		reset := pin(cfg.Reset)
		reset.Out(gpio.Low)
		time.Sleep(time.Millisecond)
		reset.Out(gpio.High)
		time.Sleep(time.Millisecond)
	}

	if err := rpio.SpiBegin(rpio.Spi0); err != nil {
		rpio.Close()
		return nil, err
	}
	rpio.SpiSpeed(cfg.Speed)
	rpio.SpiChipSelect(uint8(cfg.ChipSelect))

	rpio.Pin(cfg.RS).Output()
	rs := pin(cfg.RS)
	rs.Out(gpio.Low)

	return newSPIDevice(spi0{}, rs), nil
}

// init registers our driver, by name.
func init() {
	Register("rpio", openSPI)
}

var (
	_ spi.Conn    = spi0{}
	_ gpio.PinOut = pin(0)
)
