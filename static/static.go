// Package static is a hierarchy of files that are added to
// the generated emulator.
//
// The intention is that we can ship a demo script, and a little Z80
// firmware image, within the emulator so that it does something
// useful when launched with no arguments.
package static

import (
	"embed"
	"path"
)

//go:embed scripts/*.lua firmware/*.bin
var content embed.FS

// GetContent returns the embedded filesystem we store within this package.
func GetContent() embed.FS {
	return content
}

// Script returns the contents of the named script.
func Script(name string) ([]byte, error) {
	return content.ReadFile(path.Join("scripts", name))
}

// Firmware returns the contents of the named firmware image.
func Firmware(name string) ([]byte, error) {
	return content.ReadFile(path.Join("firmware", name))
}
