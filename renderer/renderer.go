// Package renderer is an abstraction over the pixel surface an LCD
// controller draws onto.
//
// The controller only needs to know the shape of the panel and to be
// able to switch single pixels on and off, so a renderer can be a
// terminal, a window, or a recorder used by the tests.  Drivers
// register themselves by name, via Register, and are created with New.
package renderer

import (
	"fmt"
	"sort"
	"strings"
)

// Renderer is the interface that must be implemented by anything that
// wishes to be used as a display surface.
type Renderer interface {

	// Lines returns the number of physical text lines of the panel.
	Lines() int

	// Columns returns the number of characters per line.
	Columns() int

	// SetPixel switches the pixel at the given position on or off.
	//
	// x runs from 0 to Columns()*5-1, y from 0 to Lines()*8-1.
	SetPixel(x, y int, on bool)

	// TurnDisplayOn is called when the display is enabled.
	TurnDisplayOn()

	// TurnDisplayOff is called when the display is disabled.
	TurnDisplayOff()

	// ChangeContrast is called with the new 6-bit contrast value.
	ChangeContrast(value uint8)

	// GetName will return the name of the driver.
	GetName() string
}

// Flusher is implemented by renderers which batch pixel updates and
// need to be told when a frame is complete.
type Flusher interface {
	Flush() error
}

// Lifecycle is implemented by renderers which need to acquire and
// release a resource, such as the terminal.
type Lifecycle interface {
	Setup() error
	TearDown() error
}

// Closer is implemented by renderers whose user can ask to quit, the
// returned channel is closed when that happens.
type Closer interface {
	Done() <-chan struct{}
}

// Recorder is an interface that allows returning the events which have
// been sent to a renderer.
//
// This is used solely for tests.
type Recorder interface {

	// Events returns everything recorded so far.
	Events() []Event

	// Reset removes any stored state.
	Reset()
}

// This is a map of known-drivers
var handlers = struct {
	m map[string]Constructor
}{m: make(map[string]Constructor)}

// Constructor is the signature of a constructor-function
// which is used to instantiate an instance of a driver.
type Constructor func(lines, columns int) Renderer

// Register makes a renderer available, by name.
func Register(name string, obj Constructor) {
	// Downcase for consistency.
	name = strings.ToLower(name)

	handlers.m[name] = obj
}

// New creates a renderer of the given shape, using the named driver.
func New(name string, lines, columns int) (Renderer, error) {
	// Downcase for consistency.
	name = strings.ToLower(name)

	ctor, ok := handlers.m[name]
	if !ok {
		return nil, fmt.Errorf("failed to lookup driver by name '%s'", name)
	}
	return ctor(lines, columns), nil
}

// GetDrivers returns all available driver-names, sorted.
//
// We hide the internal "null", and "logger" drivers.
func GetDrivers() []string {
	valid := []string{}

	for x := range handlers.m {
		if x != "null" && x != "logger" {
			valid = append(valid, x)
		}
	}
	sort.Strings(valid)
	return valid
}
