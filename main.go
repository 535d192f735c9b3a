// entry point

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/skx/st7036emu/bus"
	"github.com/skx/st7036emu/controller"
	"github.com/skx/st7036emu/driver"
	"github.com/skx/st7036emu/emulator"
	"github.com/skx/st7036emu/hardware"
	"github.com/skx/st7036emu/renderer"
	"github.com/skx/st7036emu/script"
	"github.com/skx/st7036emu/serialbridge"
	"github.com/skx/st7036emu/static"
	"github.com/skx/st7036emu/version"
	"github.com/skx/st7036emu/z80host"
	"golang.org/x/sync/errgroup"
)

// options holds the command-line settings.
type options struct {
	renderer string
	lines    int
	columns  int
	basic    bool

	script   string
	firmware string
	serial   string
	baud     int
	strict   bool

	mirrors []string

	// hold keeps the display up once the program has finished, until
	// the user quits.
	hold bool
}

// app is a running emulator, with whatever feeds it.
type app struct {
	opts   options
	logger *slog.Logger

	display   renderer.Renderer
	emu       *emulator.Emulator
	transport bus.Transport
	devices   []hardware.Device
}

// newApp creates the renderer, the emulator, and opens any mirrors.
func newApp(opts options, logger *slog.Logger) (*app, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	r, err := renderer.New(opts.renderer, opts.lines, opts.columns)
	if err != nil {
		return nil, err
	}

	emu, err := emulator.New(logger, r,
		emulator.WithControllerOptions(controller.WithExtendedMode(!opts.basic)))
	if err != nil {
		return nil, err
	}

	a := &app{
		opts:      opts,
		logger:    logger,
		display:   r,
		emu:       emu,
		transport: emu,
	}

	if len(opts.mirrors) == 0 {
		return a, nil
	}

	var mirrors []bus.Transport
	for _, desc := range opts.mirrors {
		dev, err := hardware.New(desc)
		if err != nil {
			a.close()
			return nil, fmt.Errorf("opening mirror %s: %w", desc, err)
		}
		logger.Debug("mirror opened", slog.String("device", desc))
		a.devices = append(a.devices, dev)
		mirrors = append(mirrors, dev)
	}

	a.transport, err = bus.NewTee(emu, mirrors...)
	if err != nil {
		a.close()
		return nil, err
	}
	return a, nil
}

// close releases any mirrors.
func (a *app) close() {
	for _, dev := range a.devices {
		if err := dev.Close(); err != nil {
			a.logger.Warn("closing mirror", slog.String("error", err.Error()))
		}
	}
	a.devices = nil
}

// run refreshes the display while the selected program drives it.
func (a *app) run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Some renderers have a window, or keyboard, the user can quit with.
	if c, ok := a.display.(renderer.Closer); ok {
		go func() {
			select {
			case <-c.Done():
				cancel()
			case <-ctx.Done():
			}
		}()
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return a.emu.Run(gctx)
	})

	g.Go(func() error {
		err := a.feed(gctx)
		if errors.Is(err, context.Canceled) {
			err = nil
		}
		if err != nil {
			return err
		}

		// Draw the final state, then wait for the user.
		if _, err := a.emu.Refresh(); err != nil {
			return err
		}
		if a.opts.hold {
			<-gctx.Done()
		}
		cancel()
		return nil
	})

	return g.Wait()
}

// feed runs whichever program was selected, the embedded demo if
// there was none.
func (a *app) feed(ctx context.Context) error {
	switch {
	case a.opts.serial != "":
		port, err := serialbridge.Open(a.opts.serial, a.opts.baud)
		if err != nil {
			return err
		}
		defer port.Close()

		// A blocked read is only interrupted by closing the port.
		go func() {
			<-ctx.Done()
			port.Close()
		}()
		bridge := serialbridge.New(a.logger, port, a.transport)
		bridge.Follow = true
		err = bridge.Run(ctx)
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return err

	case a.opts.firmware != "":
		image, err := load(a.opts.firmware, static.Firmware)
		if err != nil {
			return err
		}
		host := z80host.New(a.logger, a.transport, z80host.WithStrict(a.opts.strict))
		host.Load(0, image)
		return host.Run(ctx)

	default:
		name := a.opts.script
		if name == "" {
			name = "demo.lua"
		}
		src, err := load(name, static.Script)
		if err != nil {
			return err
		}

		lcd, err := driver.New(a.transport,
			driver.WithRows(a.opts.lines),
			driver.WithColumns(a.opts.columns))
		if err != nil {
			return err
		}
		return script.New(a.logger, lcd, a.transport).Run(ctx, name, src)
	}
}

// load reads a file from disk, falling back to the embedded copies.
func load(name string, embedded func(string) ([]byte, error)) ([]byte, error) {
	data, err := os.ReadFile(name)
	if err == nil {
		return data, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	data, eerr := embedded(filepath.Base(name))
	if eerr != nil {
		return nil, err
	}
	return data, nil
}

// list shows the available drivers.
func list(out io.Writer) {
	fmt.Fprintf(out, "Renderers:\n")
	for _, name := range renderer.GetDrivers() {
		fmt.Fprintf(out, "\t%s\n", name)
	}
	fmt.Fprintf(out, "Mirrors:\n")
	for _, name := range hardware.GetDrivers() {
		fmt.Fprintf(out, "\t%s\n", name)
	}
}

func main() {

	opts := options{hold: true}

	// Default to the environment, then the terminal.
	def := os.Getenv("ST7036_RENDERER")
	if def == "" {
		def = "ansi"
	}

	flag.StringVar(&opts.renderer, "renderer", def, "The renderer to draw with.")
	flag.IntVar(&opts.lines, "lines", 3, "The number of lines on the panel, 1-3.")
	flag.IntVar(&opts.columns, "columns", 16, "The number of characters on each line.")
	flag.BoolVar(&opts.basic, "basic", false, "Emulate the basic instruction table only.")
	flag.StringVar(&opts.script, "script", "", "The Lua script to run, the embedded demo by default.")
	flag.StringVar(&opts.firmware, "z80", "", "A Z80 firmware image to run instead of a script.")
	flag.StringVar(&opts.serial, "serial", "", "A serial port to read captured bus traffic from.")
	flag.IntVar(&opts.baud, "baud", serialbridge.DefaultBaud, "The speed of the serial port.")
	flag.BoolVar(&opts.strict, "strict", false, "Stop Z80 firmware on the first rejected command.")
	flag.Func("mirror", "Copy everything to a real panel, as name[:key=value,..]; may be repeated.", func(s string) error {
		opts.mirrors = append(opts.mirrors, s)
		return nil
	})
	listDrivers := flag.Bool("list", false, "List the available renderers and mirrors, and exit.")
	showVersion := flag.Bool("version", false, "Report our version, and exit.")
	flag.Parse()

	if *showVersion {
		fmt.Printf("%s", version.GetVersionBanner())
		return
	}

	if *listDrivers {
		list(os.Stdout)
		return
	}

	// Setup our logging level - default to warnings or higher
	lvl := new(slog.LevelVar)
	lvl.Set(slog.LevelWarn)

	// But show "everything" if $DEBUG is non.empty
	if os.Getenv("DEBUG") != "" {
		lvl.Set(slog.LevelDebug)
	}

	//
	// Create our logging handler, using the level we've just setup
	//
	log := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: lvl,
	}))

	a, err := newApp(opts, log)
	if err != nil {
		fmt.Printf("Error creating emulator: %s\n", err)
		if strings.Contains(err.Error(), "lookup driver") {
			list(os.Stdout)
		}
		os.Exit(1)
	}
	defer a.close()

	// Take over the terminal, or open a window.
	if lc, ok := a.display.(renderer.Lifecycle); ok {
		if err := lc.Setup(); err != nil {
			fmt.Printf("Error setting up %s: %s\n", a.display.GetName(), err)
			os.Exit(1)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err = a.run(ctx)
	stop()

	if lc, ok := a.display.(renderer.Lifecycle); ok {
		if terr := lc.TearDown(); terr != nil {
			log.Warn("tearing down renderer", slog.String("error", terr.Error()))
		}
	}

	if err != nil {
		fmt.Printf("Error running emulator: %s\n", err)
		a.close()
		os.Exit(1)
	}
}
