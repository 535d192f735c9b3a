// Package memory provides the fixed-size RAM stores used by the
// emulator.
//
// The LCD controller owns three of them (display RAM, character
// generator RAM and icon RAM) and the Z80 host uses a 64K one for the
// firmware it runs.  Every access wraps at the size of the store, which
// is the behaviour of the address counters in the real chip.
package memory

import (
	"os"
)

// Memory is a flat array of bytes, addressed from zero.
type Memory struct {
	buf []uint8

	// mask, if non-zero, is applied to every value written.
	mask uint8
}

// New returns a zeroed memory of the given size.
func New(size int) *Memory {
	if size < 1 {
		size = 1
	}
	return &Memory{buf: make([]uint8, size)}
}

// NewMasked returns a memory which only stores the bits in mask of each
// value written to it.  The icon RAM only has five significant bits per
// cell, for example.
func NewMasked(size int, mask uint8) *Memory {
	m := New(size)
	m.mask = mask
	return m
}

// Size returns the number of cells in the memory.
func (m *Memory) Size() int {
	return len(m.buf)
}

// Wrap folds the given address into the range of the memory.
func (m *Memory) Wrap(addr int) int {
	addr %= len(m.buf)
	if addr < 0 {
		addr += len(m.buf)
	}
	return addr
}

// Set sets a byte at addr of memory.
func (m *Memory) Set(addr uint16, value uint8) {
	if m.mask != 0 {
		value &= m.mask
	}
	m.buf[m.Wrap(int(addr))] = value
}

// Get returns a byte at addr of memory.
func (m *Memory) Get(addr uint16) uint8 {
	return m.buf[m.Wrap(int(addr))]
}

// SetRange copies bytes from the given data to the specified
// starting address.
func (m *Memory) SetRange(addr uint16, data ...uint8) {
	for i, d := range data {
		m.Set(addr+uint16(i), d)
	}
}

// FillRange fills an area of memory with the given byte
func (m *Memory) FillRange(addr uint16, size int, char uint8) {
	for size > 0 {
		m.Set(addr, char)
		addr++
		size--
	}
}

// Fill sets every cell of the memory to the given byte.
func (m *Memory) Fill(char uint8) {
	m.FillRange(0, len(m.buf), char)
}

// LoadFile clears the memory and loads the named file at the given
// address.
func (m *Memory) LoadFile(addr uint16, name string) error {

	// Load the binary
	prog, err := os.ReadFile(name)
	if err != nil {
		return err
	}

	for i := range m.buf {
		m.buf[i] = 0x00
	}

	m.SetRange(addr, prog...)
	return nil
}
