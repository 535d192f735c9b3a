package memory

import (
	"os"
	"testing"
)

// TestMemoryTrivial just does basic get/set tests
func TestMemoryTrivial(t *testing.T) {

	mem := New(0x10000)

	// Set
	mem.Set(0x00, 0x01)
	mem.Set(0x01, 0x02)

	// Get
	if mem.Get(0x00) != 0x01 {
		t.Fatalf("failed to get expected result")
	}
	if mem.Get(0x01) != 0x02 {
		t.Fatalf("failed to get expected result")
	}

	// Fill with 0xCD
	mem.FillRange(0x00, 0xFFFF, 0xCD)

	if mem.Get(0xFFFE) != 0xCD {
		t.Fatalf("failed to get expected result")
	}
	// FillRange stops short of the last cell
	if mem.Get(0xFFFF) != 0x00 {
		t.Fatalf("fill went too far")
	}

	// Put a (small) range
	out := []uint8{0x01, 0x02, 0x03}
	mem.SetRange(0x0000, out...)

	if mem.Get(0x02) != 0x03 || mem.Get(0x03) != 0xCD {
		t.Fatalf("failed to get expected result")
	}
}

// TestWrap ensures accesses past the end of a small memory wrap around.
func TestWrap(t *testing.T) {

	mem := New(80)
	if mem.Size() != 80 {
		t.Fatalf("wrong size %d", mem.Size())
	}

	mem.Set(80, 0x41)
	if mem.Get(0) != 0x41 {
		t.Fatalf("write at the size did not wrap to zero")
	}

	mem.SetRange(78, 'a', 'b', 'c')
	if mem.Get(79) != 'b' || mem.Get(0) != 'c' {
		t.Fatalf("range did not wrap")
	}

	if mem.Wrap(-1) != 79 {
		t.Fatalf("negative wrap gave %d", mem.Wrap(-1))
	}

	mem.Fill(0x20)
	for i := 0; i < mem.Size(); i++ {
		if c := mem.Get(uint16(i)); c != 0x20 {
			t.Fatalf("cell %d not filled", i)
		}
	}
}

// TestMasked ensures masked memories drop the insignificant bits.
func TestMasked(t *testing.T) {
	mem := NewMasked(16, 0x1F)
	mem.Set(3, 0xFF)
	if mem.Get(3) != 0x1F {
		t.Fatalf("mask not applied, got %02X", mem.Get(3))
	}
}

// TestLoadFile ensures we can load a file
func TestLoadFile(t *testing.T) {

	mem := New(0x10000)

	err := mem.LoadFile(0, "/this/file-does/not/exist")
	if err == nil {
		t.Fatalf("expected error, got none")
	}

	// Now write out a temporary file, with static contents.
	var file *os.File
	file, err = os.CreateTemp("", "tst-*.mem")
	if err != nil {
		t.Fatalf("failed to create temporary file")
	}
	defer os.Remove(file.Name())

	_, err = file.WriteString("Steve Kemp")
	if err != nil {
		t.Fatalf("failed to write program to temporary file")
	}
	file.Close()

	err = mem.LoadFile(0, file.Name())
	if err != nil {
		t.Errorf("failed to load file")
	}

	x := "Steve Kemp"
	for i, c := range x {
		chr := mem.Get(uint16(i))
		if string(chr) != string(c) {
			t.Fatalf("RAM had wrong contents at %d: %c != %c\n", i, c, chr)
		}
	}
}
