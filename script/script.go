// Package script lets Lua programs drive a display.
//
// A script sees a global table named "lcd" whose functions map onto
// the driver package, plus raw "command" and "data" functions which
// send single bytes over the bus.
package script

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/skx/st7036emu/bus"
	"github.com/skx/st7036emu/driver"
	"github.com/skx/st7036emu/version"
	lua "github.com/yuin/gopher-lua"
)

// Runner executes scripts against one display.
type Runner struct {
	lcd       *driver.LCD
	transport bus.Transport

	// Logger holds a logger which we use for debugging and diagnostics.
	Logger *slog.Logger

	// Sleep pauses a script, it returns early when the context is done.
	Sleep func(ctx context.Context, d time.Duration)
}

// New returns a runner for the given display, raw bytes go to t.
func New(logger *slog.Logger, lcd *driver.LCD, t bus.Transport) *Runner {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Runner{
		lcd:       lcd,
		transport: t,
		Logger:    logger,
		Sleep:     sleep,
	}
}

// sleep waits for d, or until the context is done.
func sleep(ctx context.Context, d time.Duration) {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
	case <-t.C:
	}
}

// RunFile loads and runs the named script.
func (r *Runner) RunFile(ctx context.Context, path string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return r.Run(ctx, path, src)
}

// Run executes a script, stopping early if the context is cancelled.
func (r *Runner) Run(ctx context.Context, name string, src []byte) error {
	L := lua.NewState()
	defer L.Close()
	L.SetContext(ctx)

	L.SetGlobal("lcd", r.module(ctx, L))

	r.Logger.Debug("running script", slog.String("name", name))

	fn, err := L.Load(bytes.NewReader(src), name)
	if err != nil {
		return fmt.Errorf("loading %s: %w", name, err)
	}
	L.Push(fn)
	if err := L.PCall(0, lua.MultRet, nil); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("running %s: %w", name, err)
	}
	return nil
}

// module builds the "lcd" table.
func (r *Runner) module(ctx context.Context, L *lua.LState) *lua.LTable {
	funcs := map[string]lua.LGFunction{
		"rows": func(L *lua.LState) int {
			L.Push(lua.LNumber(r.lcd.Rows()))
			return 1
		},
		"columns": func(L *lua.LState) int {
			L.Push(lua.LNumber(r.lcd.Columns()))
			return 1
		},
		"clear": func(L *lua.LState) int {
			return check(L, r.lcd.Clear())
		},
		"home": func(L *lua.LState) int {
			return check(L, r.lcd.Home())
		},
		"write": func(L *lua.LState) int {
			return check(L, r.lcd.Write(L.CheckString(1)))
		},
		"position": func(L *lua.LState) int {
			return check(L, r.lcd.SetCursorPosition(L.CheckInt(1), L.CheckInt(2)))
		},
		"offset": func(L *lua.LState) int {
			return check(L, r.lcd.SetCursorOffset(L.CheckInt(1)))
		},
		"contrast": func(L *lua.LState) int {
			return check(L, r.lcd.SetContrast(L.CheckInt(1)))
		},
		"bias": func(L *lua.LState) int {
			return check(L, r.lcd.SetBias(L.CheckInt(1)))
		},
		"display": func(L *lua.LState) int {
			return check(L, r.lcd.SetDisplayMode(L.OptBool(1, true), L.OptBool(2, false), L.OptBool(3, false)))
		},
		"cursor": func(L *lua.LState) int {
			return check(L, r.lcd.EnableCursor(L.OptBool(1, true)))
		},
		"blink": func(L *lua.LState) int {
			return check(L, r.lcd.EnableBlink(L.OptBool(1, true)))
		},
		"create_char": func(L *lua.LState) int {
			slot := L.CheckInt(1)
			bitmap := toBitmap(L, L.CheckTable(2))
			return check(L, r.lcd.CreateChar(slot, bitmap))
		},
		"animate": func(L *lua.LState) int {
			slot := L.CheckInt(1)
			tbl := L.CheckTable(2)
			fps := float64(L.OptNumber(3, 1))

			var frames []driver.Bitmap
			for i := 1; i <= tbl.Len(); i++ {
				frame, ok := tbl.RawGetInt(i).(*lua.LTable)
				if !ok {
					L.ArgError(2, "frames must be tables")
				}
				frames = append(frames, toBitmap(L, frame))
			}
			return check(L, r.lcd.CreateAnimation(slot, frames, fps))
		},
		"update_animations": func(L *lua.LState) int {
			return check(L, r.lcd.UpdateAnimations())
		},
		"double_height": func(L *lua.LState) int {
			pos := driver.Bottom
			if L.OptString(2, "bottom") == "top" {
				pos = driver.Top
			}
			return check(L, r.lcd.DoubleHeight(L.OptBool(1, true), pos))
		},
		"cursor_left": func(L *lua.LState) int {
			return check(L, r.lcd.CursorLeft())
		},
		"cursor_right": func(L *lua.LState) int {
			return check(L, r.lcd.CursorRight())
		},
		"shift_left": func(L *lua.LState) int {
			return check(L, r.lcd.ShiftLeft())
		},
		"shift_right": func(L *lua.LState) int {
			return check(L, r.lcd.ShiftRight())
		},
		"command": func(L *lua.LState) int {
			return check(L, bus.WriteCommand(r.transport, byte(L.CheckInt(1))))
		},
		"data": func(L *lua.LState) int {
			return check(L, bus.WriteData(r.transport, byte(L.CheckInt(1))))
		},
		"sleep": func(L *lua.LState) int {
			ms := L.CheckNumber(1)
			r.Sleep(ctx, time.Duration(float64(ms)*float64(time.Millisecond)))
			return 0
		},
		"version": func(L *lua.LState) int {
			L.Push(lua.LString(version.GetVersionString()))
			return 1
		},
		"log": func(L *lua.LState) int {
			r.Logger.Info("script", slog.String("message", L.CheckString(1)))
			return 0
		},
	}

	return L.SetFuncs(L.NewTable(), funcs)
}

// check raises a Lua error for a failed call.
func check(L *lua.LState, err error) int {
	if err != nil {
		L.RaiseError("%s", err.Error())
	}
	return 0
}

// toBitmap reads up to eight rows from a Lua array.
func toBitmap(L *lua.LState, tbl *lua.LTable) driver.Bitmap {
	var b driver.Bitmap
	if tbl.Len() > len(b) {
		L.ArgError(2, "a character has eight rows")
	}
	for i := range b {
		if n, ok := tbl.RawGetInt(i + 1).(lua.LNumber); ok {
			b[i] = byte(n)
		}
	}
	return b
}
