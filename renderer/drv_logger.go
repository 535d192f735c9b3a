package renderer

import (
	"fmt"
	"strings"
)

// EventKind says what happened to a renderer.
type EventKind int

const (
	// EventPixel is a SetPixel call.
	EventPixel EventKind = iota

	// EventDisplayOn is a TurnDisplayOn call.
	EventDisplayOn

	// EventDisplayOff is a TurnDisplayOff call.
	EventDisplayOff

	// EventContrast is a ChangeContrast call.
	EventContrast
)

// Event is a single call made to a renderer.
type Event struct {
	Kind     EventKind
	X, Y     int
	On       bool
	Contrast uint8
}

// String returns a compact, human-readable, form of the event.
func (e Event) String() string {
	switch e.Kind {
	case EventPixel:
		return fmt.Sprintf("pixel(%d,%d)=%t", e.X, e.Y, e.On)
	case EventDisplayOn:
		return "display-on"
	case EventDisplayOff:
		return "display-off"
	case EventContrast:
		return fmt.Sprintf("contrast=%d", e.Contrast)
	}
	return "unknown"
}

// LoggingRenderer holds our state.
type LoggingRenderer struct {
	Canvas

	// history stores our history
	history []Event
}

// GetName returns the name of this driver.
//
// This is part of the Renderer interface.
func (lr *LoggingRenderer) GetName() string {
	return "logger"
}

// SetPixel records the update.
func (lr *LoggingRenderer) SetPixel(x, y int, on bool) {
	lr.Canvas.SetPixel(x, y, on)
	lr.history = append(lr.history, Event{Kind: EventPixel, X: x, Y: y, On: on})
}

// TurnDisplayOn records the call.
func (lr *LoggingRenderer) TurnDisplayOn() {
	lr.Canvas.TurnDisplayOn()
	lr.history = append(lr.history, Event{Kind: EventDisplayOn})
}

// TurnDisplayOff records the call.
func (lr *LoggingRenderer) TurnDisplayOff() {
	lr.Canvas.TurnDisplayOff()
	lr.history = append(lr.history, Event{Kind: EventDisplayOff})
}

// ChangeContrast records the call.
func (lr *LoggingRenderer) ChangeContrast(value uint8) {
	lr.Canvas.ChangeContrast(value)
	lr.history = append(lr.history, Event{Kind: EventContrast, Contrast: value})
}

// Events returns our history.
//
// This is part of the Recorder interface.
func (lr *LoggingRenderer) Events() []Event {
	return lr.history
}

// Reset forgets our history, the canvas is kept.
//
// This is part of the Recorder interface.
func (lr *LoggingRenderer) Reset() {
	lr.history = nil
}

// GetOutput returns our history as text, one event per line.
func (lr *LoggingRenderer) GetOutput() string {
	var sb strings.Builder
	for _, e := range lr.history {
		sb.WriteString(e.String())
		sb.WriteString("\n")
	}
	return sb.String()
}

// init registers our driver, by name.
func init() {
	Register("logger", func(lines, columns int) Renderer {
		return &LoggingRenderer{
			Canvas: NewCanvas(lines, columns),
		}
	})
}
