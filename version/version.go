// Package version exists solely so that we can store the version of this application
// in one location, despite needing it in more than one place.
//
// The main.go driver-package reports it with -version, and the Lua
// scripts can read it to decide which functions they may call.
//
// Duplicating the version number/tag in two places is a recipe for drift and confusion,
// so this internal-package is the result.
package version

import "fmt"

var (
	// version is populated with our release tag, at build time with
	// -ldflags "-X github.com/skx/st7036emu/version.version=...".
	version = "unreleased"
)

// GetVersionBanner returns a banner which is suitable for printing, to show our name,
// version, and homepage link.
func GetVersionBanner() string {

	str := fmt.Sprintf("st7036emu %s\n%s\n", version, "https://github.com/skx/st7036emu/")
	return str
}

// GetVersionString returns our version number as a string.
func GetVersionString() string {
	return version
}
