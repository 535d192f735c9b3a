// Package hardware drives real ST7036 panels, so that whatever the
// emulator is sent can be mirrored onto the glass.
//
// Drivers register themselves by name, via Register, and are opened
// with New.  Each is a bus.Transport which also needs closing.
package hardware

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/skx/st7036emu/bus"
)

// ErrReadUnsupported is returned for reads, the panels are wired
// write-only.
var ErrReadUnsupported = errors.New("panel is write-only")

// Device is an open panel.
type Device interface {
	bus.Transport
	io.Closer
}

// Config describes how a panel is wired.  Drivers ignore the fields
// which don't apply to them.
type Config struct {
	// Bus is the I2C bus number, or the SPI device.
	Bus int

	// Address is the I2C address of the panel.
	Address uint16

	// RS is the GPIO (BCM numbering) wired to the RS line.
	RS int

	// Reset is the GPIO wired to the reset line, negative if unused.
	Reset int

	// ChipSelect is the SPI chip-select line.
	ChipSelect int

	// Speed is the SPI clock in Hz.
	Speed int
}

// DefaultConfig returns the wiring of the Display-o-Tron 3000 style
// boards.
func DefaultConfig() Config {
	return Config{
		Bus:        1,
		Address:    bus.DefaultI2CAddress,
		RS:         25,
		Reset:      12,
		ChipSelect: 0,
		Speed:      1000000,
	}
}

// This is a map of known-drivers
var handlers = struct {
	m map[string]Constructor
}{m: make(map[string]Constructor)}

// Constructor is the signature of a constructor-function
// which is used to open a device.
type Constructor func(cfg Config) (Device, error)

// Register makes a driver available, by name.
func Register(name string, obj Constructor) {
	// Downcase for consistency.
	name = strings.ToLower(name)

	handlers.m[name] = obj
}

// New opens a panel, described as "name" or "name:key=value,...".
//
// The keys are bus, address, rs, reset, cs and speed.
func New(desc string) (Device, error) {
	name, cfg, err := Parse(desc)
	if err != nil {
		return nil, err
	}

	ctor, ok := handlers.m[name]
	if !ok {
		return nil, fmt.Errorf("failed to lookup driver by name '%s'", name)
	}
	return ctor(cfg)
}

// Parse splits a device description into a driver name and a
// configuration, starting from DefaultConfig.
func Parse(desc string) (string, Config, error) {
	cfg := DefaultConfig()

	name, opts, _ := strings.Cut(desc, ":")
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return "", cfg, fmt.Errorf("no driver named in '%s'", desc)
	}
	if opts == "" {
		return name, cfg, nil
	}

	for _, kv := range strings.Split(opts, ",") {
		key, val, ok := strings.Cut(kv, "=")
		if !ok {
			return "", cfg, fmt.Errorf("option '%s' is not key=value", kv)
		}

		// base zero accepts 0x3c as well as 60
		n, err := strconv.ParseInt(strings.TrimSpace(val), 0, 32)
		if err != nil {
			return "", cfg, fmt.Errorf("option '%s': %w", key, err)
		}

		switch strings.ToLower(strings.TrimSpace(key)) {
		case "bus":
			cfg.Bus = int(n)
		case "address", "addr":
			cfg.Address = uint16(n)
		case "rs":
			cfg.RS = int(n)
		case "reset":
			cfg.Reset = int(n)
		case "cs":
			cfg.ChipSelect = int(n)
		case "speed":
			cfg.Speed = int(n)
		default:
			return "", cfg, fmt.Errorf("unknown option '%s'", key)
		}
	}
	return name, cfg, nil
}

// GetDrivers returns all available driver-names, sorted.
func GetDrivers() []string {
	valid := []string{}

	for x := range handlers.m {
		valid = append(valid, x)
	}
	sort.Strings(valid)
	return valid
}
