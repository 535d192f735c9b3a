package bus

import (
	"errors"
	"fmt"
	"sync"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
)

var (
	// ErrReadUnsupported is returned when a read is attempted over a
	// serial interface; the chip only supports reads on the parallel
	// bus.
	ErrReadUnsupported = errors.New("serial interface is write-only")

	// ErrNoDevice is returned when an I2C transaction is addressed to
	// a device which is not present.
	ErrNoDevice = errors.New("no device at address")

	// ErrNoPWM is returned by the emulated RS pin.
	ErrNoPWM = errors.New("pwm not supported")
)

// RSPin is an emulated GPIO output which stands in for the RS line of
// an SPI-connected panel.  Host code written against periph.io drives
// it exactly like a real pin.
type RSPin struct {
	mu    sync.Mutex
	name  string
	level gpio.Level
}

// NewRSPin returns a pin which starts low, selecting the instruction
// register.
func NewRSPin(name string) *RSPin {
	return &RSPin{name: name, level: gpio.Low}
}

// String implements conn.Resource.
func (p *RSPin) String() string {
	return p.name
}

// Halt implements conn.Resource.
func (p *RSPin) Halt() error {
	return nil
}

// Name implements pin.Pin.
func (p *RSPin) Name() string {
	return p.name
}

// Number implements pin.Pin.
func (p *RSPin) Number() int {
	return -1
}

// Function implements pin.Pin.
func (p *RSPin) Function() string {
	return "Out/" + p.Read().String()
}

// Out sets the level of the pin.
func (p *RSPin) Out(l gpio.Level) error {
	p.mu.Lock()
	p.level = l
	p.mu.Unlock()
	return nil
}

// PWM is not something an RS line does.
func (p *RSPin) PWM(duty gpio.Duty, f physic.Frequency) error {
	return ErrNoPWM
}

// Read returns the current level of the pin.
func (p *RSPin) Read() gpio.Level {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.level
}

// Register returns the register the pin currently selects.
func (p *RSPin) Register() RegisterSelect {
	if p.Read() == gpio.High {
		return Data
	}
	return Instruction
}

// SPIDevice is an emulated SPI connection to the controller.  Every
// byte clocked out is delivered to the transport as a write, to the
// register selected by the RS pin at the time of the transfer.
type SPIDevice struct {
	t  Transport
	rs *RSPin
}

// NewSPIDevice returns an SPI connection which feeds the given
// transport.
func NewSPIDevice(t Transport, rs *RSPin) *SPIDevice {
	return &SPIDevice{t: t, rs: rs}
}

// String implements conn.Conn.
func (d *SPIDevice) String() string {
	return "st7036-spi(" + d.rs.Name() + ")"
}

// Duplex implements conn.Conn.
func (d *SPIDevice) Duplex() conn.Duplex {
	return conn.Half
}

// Tx implements conn.Conn.  Anything requested in r is zero-filled as
// the serial interface cannot read.
func (d *SPIDevice) Tx(w, r []byte) error {
	rs := d.rs.Register()
	for _, b := range w {
		if _, err := d.t.Transfer(b, rs, Write); err != nil {
			return err
		}
	}
	for i := range r {
		r[i] = 0
	}
	return nil
}

// TxPackets implements spi.Conn.
func (d *SPIDevice) TxPackets(p []spi.Packet) error {
	for _, pkt := range p {
		if err := d.Tx(pkt.W, pkt.R); err != nil {
			return err
		}
	}
	return nil
}

// I2CBus is an emulated I2C bus with a single ST7036i attached.
type I2CBus struct {
	mu   sync.Mutex
	t    Transport
	addr uint16
}

// NewI2CBus returns a bus with the controller listening at addr.
func NewI2CBus(t Transport, addr uint16) *I2CBus {
	return &I2CBus{t: t, addr: addr}
}

// String implements i2c.Bus.
func (b *I2CBus) String() string {
	return fmt.Sprintf("st7036-i2c(0x%02X)", b.addr)
}

// Tx implements i2c.Bus.
func (b *I2CBus) Tx(addr uint16, w, r []byte) error {
	if addr != b.addr {
		return fmt.Errorf("0x%02X: %w", addr, ErrNoDevice)
	}
	if len(r) > 0 {
		return ErrReadUnsupported
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	return DecodeI2C(w, b.t)
}

// SetSpeed implements i2c.Bus; the emulated bus runs at any speed.
func (b *I2CBus) SetSpeed(f physic.Frequency) error {
	return nil
}

// SPITransport drives a controller through any periph.io SPI
// connection, with a GPIO pin for RS.
type SPITransport struct {
	conn spi.Conn
	rs   gpio.PinOut
}

// NewSPITransport returns a transport for the given connection and
// RS pin.
func NewSPITransport(c spi.Conn, rs gpio.PinOut) *SPITransport {
	return &SPITransport{conn: c, rs: rs}
}

// Transfer implements Transport.
func (s *SPITransport) Transfer(b byte, rs RegisterSelect, rw ReadWrite) (byte, error) {
	if rw == Read {
		return 0, ErrReadUnsupported
	}

	lvl := gpio.Low
	if rs == Data {
		lvl = gpio.High
	}
	if err := s.rs.Out(lvl); err != nil {
		return 0, err
	}
	return 0, s.conn.Tx([]byte{b}, nil)
}

// I2CTransport drives a controller through any periph.io I2C bus.
type I2CTransport struct {
	bus  i2c.Bus
	addr uint16
}

// NewI2CTransport returns a transport for the device at addr on bus.
func NewI2CTransport(b i2c.Bus, addr uint16) *I2CTransport {
	return &I2CTransport{bus: b, addr: addr}
}

// Transfer implements Transport.
func (t *I2CTransport) Transfer(b byte, rs RegisterSelect, rw ReadWrite) (byte, error) {
	if rw == Read {
		return 0, ErrReadUnsupported
	}
	return 0, t.bus.Tx(t.addr, EncodeI2C(rs, b), nil)
}

var (
	_ gpio.PinOut = (*RSPin)(nil)
	_ spi.Conn    = (*SPIDevice)(nil)
	_ i2c.Bus     = (*I2CBus)(nil)
	_ Transport   = (*SPITransport)(nil)
	_ Transport   = (*I2CTransport)(nil)
)
