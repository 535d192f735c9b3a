package hardware

import (
	"fmt"

	"github.com/davecheney/i2c"
	"github.com/skx/st7036emu/bus"
	conni2c "periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/physic"
)

// I2CDevice is an ST7036i on a Linux /dev/i2c-N bus.
type I2CDevice struct {
	t   *bus.I2CTransport
	dev *i2c.I2C
}

// newI2CDevice drives the panel at addr on any I2C bus.
func newI2CDevice(b conni2c.Bus, addr uint16) *I2CDevice {
	return &I2CDevice{t: bus.NewI2CTransport(b, addr)}
}

// Transfer sends a single byte, behind the control byte which selects
// the register.
//
// This is part of the bus.Transport interface.
func (d *I2CDevice) Transfer(b byte, rs bus.RegisterSelect, rw bus.ReadWrite) (byte, error) {
	if rw == bus.Read {
		return 0, ErrReadUnsupported
	}
	return d.t.Transfer(b, rs, rw)
}

// Close releases the bus.
func (d *I2CDevice) Close() error {
	if d.dev == nil {
		return nil
	}
	return d.dev.Close()
}

// devBus is a /dev/i2c-N device, opened for a single address.
type devBus struct {
	dev  *i2c.I2C
	addr uint16
}

func (b *devBus) String() string {
	return fmt.Sprintf("i2c(0x%02X)", b.addr)
}

func (b *devBus) Tx(addr uint16, w, r []byte) error {
	if addr != b.addr {
		return fmt.Errorf("0x%02X: %w", addr, bus.ErrNoDevice)
	}
	if len(r) > 0 {
		return ErrReadUnsupported
	}
	_, err := b.dev.Write(w)
	return err
}

// SetSpeed is left to the kernel driver.
func (b *devBus) SetSpeed(f physic.Frequency) error {
	return nil
}

// init registers our driver, by name.
func init() {
	Register("i2c", func(cfg Config) (Device, error) {
		dev, err := i2c.New(uint8(cfg.Address), cfg.Bus)
		if err != nil {
			return nil, err
		}
		d := newI2CDevice(&devBus{dev: dev, addr: cfg.Address}, cfg.Address)
		d.dev = dev
		return d, nil
	})
}

var _ conni2c.Bus = (*devBus)(nil)
