// Package z80host runs Z80 firmware which talks to an LCD controller
// through I/O ports, the way a small single-board computer drives a
// character display.
//
// Three ports are decoded:
//
//	0x00  the instruction register, OUT writes a command and IN reads
//	      the busy flag and address counter.
//	0x01  the data register, OUT writes to and IN reads from the
//	      selected RAM.
//	0x02  OUT pauses the firmware for the given number of
//	      milliseconds, IN is unused.
//
// Every other port reads as 0xFF and ignores writes.
package z80host

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/koron-go/z80"
	"github.com/skx/st7036emu/bus"
	"github.com/skx/st7036emu/memory"
)

const (
	// PortInstruction is wired to the instruction register.
	PortInstruction uint8 = 0x00

	// PortData is wired to the data register.
	PortData uint8 = 0x01

	// PortDelay pauses execution.
	PortDelay uint8 = 0x02
)

// Host holds our state.
type Host struct {
	// CPU is the processor running the firmware.
	CPU z80.CPU

	// Memory is the 64K of RAM the firmware is loaded into.
	Memory *memory.Memory

	// Logger holds a logger which we use for debugging and diagnostics.
	Logger *slog.Logger

	// Delay pauses the firmware, it returns early when the context is
	// done.
	Delay func(ctx context.Context, d time.Duration)

	// transport carries the bytes written to, or read from, the ports.
	transport bus.Transport

	// start is the address execution begins at.
	start uint16

	// strict stops execution on the first bus error.
	strict bool

	// ctx and cancel are live while Run is executing.
	ctx    context.Context
	cancel context.CancelFunc

	// err holds the first bus error, errors counts them all.
	err    error
	errors int
}

// Option defines a function-type which can be used to configure a Host.
type Option func(h *Host)

// WithStart sets the address execution begins at.  The default is zero.
func WithStart(addr uint16) Option {
	return func(h *Host) {
		h.start = addr
	}
}

// WithStrict stops the firmware on the first bus error, instead of
// logging it and carrying on.
func WithStrict(strict bool) Option {
	return func(h *Host) {
		h.strict = strict
	}
}

// New returns a host whose ports talk to the given transport.
func New(logger *slog.Logger, t bus.Transport, options ...Option) *Host {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	h := &Host{
		Memory:    memory.New(0x10000),
		Logger:    logger,
		Delay:     delay,
		transport: t,
	}

	for _, opt := range options {
		opt(h)
	}
	return h
}

// delay waits for d, or until the context is done.
func delay(ctx context.Context, d time.Duration) {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
	case <-t.C:
	}
}

// Load copies a firmware image into memory at the given address.
func (h *Host) Load(addr uint16, image []byte) {
	h.Memory.SetRange(addr, image...)
}

// LoadFile loads a firmware image from disk.
func (h *Host) LoadFile(addr uint16, name string) error {
	return h.Memory.LoadFile(addr, name)
}

// Errors returns the number of bus errors seen by the last run.
func (h *Host) Errors() int {
	return h.errors
}

// Run executes the firmware until it halts, the context is cancelled,
// or, in strict mode, a transfer fails.
func (h *Host) Run(ctx context.Context) error {

	h.ctx, h.cancel = context.WithCancel(ctx)
	defer h.cancel()

	h.err = nil
	h.errors = 0

	// Create the CPU, pointing to our memory, and setting the initial
	// program counter to point to our expected entry-point.
	h.CPU = z80.CPU{
		States: z80.States{
			SPR: z80.SPR{
				PC: h.start,
			},
		},
		Memory: h.Memory,
		IO:     h,
	}

	h.Logger.Debug("starting firmware",
		slog.String("start", fmt.Sprintf("0x%04X", h.start)))

	err := h.CPU.Run(h.ctx)

	// No error?  Then end - the CPU hit a HALT.
	if err == nil {
		h.Logger.Debug("firmware halted",
			slog.String("pc", fmt.Sprintf("0x%04X", h.CPU.PC)),
			slog.Int("errors", h.errors))
		return nil
	}

	// Stopped by a failed transfer?
	if h.strict && h.err != nil {
		return h.err
	}

	// Cancelled by our caller?
	if ctx.Err() != nil {
		return ctx.Err()
	}

	return fmt.Errorf("unexpected error running CPU %s", err)
}

// fail records a bus error, and stops the CPU in strict mode.
func (h *Host) fail(port uint8, err error) {
	h.errors++
	if h.err == nil {
		h.err = fmt.Errorf("port 0x%02X: %w", port, err)
	}

	h.Logger.Warn("bus error",
		slog.String("port", fmt.Sprintf("0x%02X", port)),
		slog.String("pc", fmt.Sprintf("0x%04X", h.CPU.PC)),
		slog.String("error", err.Error()))

	if h.strict && h.cancel != nil {
		h.cancel()
	}
}

// register returns the register a port is wired to.
func register(port uint8) (bus.RegisterSelect, bool) {
	switch port {
	case PortInstruction:
		return bus.Instruction, true
	case PortData:
		return bus.Data, true
	}
	return bus.Instruction, false
}

// In is called to handle the I/O reading of a Z80 port.
//
// This is called by our embedded Z80 emulator.
func (h *Host) In(addr uint8) uint8 {
	rs, ok := register(addr)
	if !ok {
		h.Logger.Debug("I/O IN", slog.Int("port", int(addr)))
		return 0xFF
	}

	val, err := h.transport.Transfer(0, rs, bus.Read)
	if err != nil {
		h.fail(addr, err)
		return 0xFF
	}
	return val
}

// Out is called to handle the I/O writing to a Z80 port.
//
// This is called by our embedded Z80 emulator.
func (h *Host) Out(addr uint8, val uint8) {
	if addr == PortDelay {
		ctx := h.ctx
		if ctx == nil {
			ctx = context.Background()
		}
		h.Delay(ctx, time.Duration(val)*time.Millisecond)
		return
	}

	rs, ok := register(addr)
	if !ok {
		h.Logger.Debug("I/O OUT",
			slog.Int("port", int(addr)),
			slog.Int("value", int(val)))
		return
	}

	if _, err := h.transport.Transfer(val, rs, bus.Write); err != nil {
		h.fail(addr, err)
	}
}
