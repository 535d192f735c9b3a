package controller

import (
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

// TestRowSpanProperty checks every combination either fails with the
// layout error, or covers exactly the physical lines of the panel.
func TestRowSpanProperty(t *testing.T) {
	bools := []bool{false, true}

	for lines := 1; lines <= 3; lines++ {
		for _, extended := range bools {
			for _, n := range bools {
				for _, dh := range bools {
					for _, ud := range bools {
						span, err := rowSpanFor(lines, n, dh, ud, extended)
						if err != nil {
							assert.True(t, errors.Is(err, ErrForbiddenLayout))
							assert.True(t, span == nil)
							continue
						}

						sum := 0
						for _, s := range span {
							assert.True(t, s == 1 || s == 2)
							sum += s
						}
						if sum != lines {
							t.Fatalf("lines=%d n=%t dh=%t ud=%t extended=%t gave %v", lines, n, dh, ud, extended, span)
						}
					}
				}
			}
		}
	}
}

func TestRowSpanFor(t *testing.T) {
	tests := []struct {
		lines     int
		n, dh, ud bool
		extended  bool
		expected  []int
		forbidden bool
	}{
		{lines: 3, n: true, extended: false, expected: []int{1, 1, 1}},
		{lines: 3, n: false, extended: false, expected: []int{1, 1, 1}},
		{lines: 3, n: false, extended: true, forbidden: true},
		{lines: 3, n: true, extended: true, expected: []int{1, 1, 1}},
		{lines: 3, n: true, dh: true, extended: true, expected: []int{1, 2}},
		{lines: 3, n: true, dh: true, ud: true, extended: true, expected: []int{2, 1}},
		{lines: 2, n: true, dh: true, extended: true, forbidden: true},
		{lines: 2, n: true, extended: true, expected: []int{1, 1}},
		{lines: 2, dh: true, extended: true, expected: []int{2}},
		{lines: 2, extended: true, expected: []int{2}},
		{lines: 1, extended: true, expected: []int{1}},
		{lines: 1, n: true, extended: true, expected: []int{1}},
		{lines: 1, dh: true, extended: true, forbidden: true},
	}

	for _, tt := range tests {
		span, err := rowSpanFor(tt.lines, tt.n, tt.dh, tt.ud, tt.extended)
		if tt.forbidden {
			assert.True(t, errors.Is(err, ErrForbiddenLayout))
			continue
		}
		assert.NoError(t, err)
		assert.Equal(t, tt.expected, span)
	}
}

func TestRowSpanAlwaysDirty(t *testing.T) {
	c, _ := newTestController(t, 2, 16)
	command(t, c, 0x38)
	c.Refresh()
	assert.False(t, c.Dirty())

	// the same layout again still forces a redraw
	command(t, c, 0x38)
	assert.True(t, c.Dirty())

	c.Refresh()
	command(t, c, 0x3A) // IS=2
	c.Refresh()
	command(t, c, 0x10) // UD low, unchanged
	assert.True(t, c.Dirty())
}
