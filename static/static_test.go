package static

import (
	"strings"
	"testing"
)

// TestStatic just ensures we have some files.
func TestStatic(t *testing.T) {

	// Read the subdirectory
	files, err := GetContent().ReadDir("scripts")
	if err != nil {
		t.Fatalf("error reading contents")
	}
	if len(files) == 0 {
		t.Fatalf("no scripts found")
	}

	// Ensure each file is a lua script
	for _, entry := range files {
		name := entry.Name()
		if !strings.HasSuffix(name, ".lua") {
			t.Fatalf("file '%s' is not a .lua file", name)
		}
	}
}

// TestLookup ensures the helpers find what we ship, and nothing else.
func TestLookup(t *testing.T) {

	src, err := Script("demo.lua")
	if err != nil {
		t.Fatalf("failed to read demo: %s", err)
	}
	if !strings.Contains(string(src), "lcd.") {
		t.Fatalf("demo doesn't look like a script")
	}

	bin, err := Firmware("hello.bin")
	if err != nil {
		t.Fatalf("failed to read firmware: %s", err)
	}
	// The image must end in the HALT and the message terminator.
	if len(bin) != 45 || bin[0x17] != 0x76 || bin[len(bin)-1] != 0x00 {
		t.Fatalf("firmware image is damaged")
	}

	if _, err := Script("missing.lua"); err == nil {
		t.Fatalf("expected an error for a missing script")
	}
}
