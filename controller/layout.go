package controller

import "fmt"

// addressRange is a half-open run of DDRAM addresses shown on one
// physical line.
type addressRange struct {
	start int
	end   int
}

func (r addressRange) len() int {
	return r.end - r.start
}

func (r addressRange) contains(addr int) bool {
	return addr >= r.start && addr < r.end
}

// ddramLayout holds the DDRAM address ranges of each physical line, by
// the number of lines of the panel.
var ddramLayout = map[int][]addressRange{
	1: {{0x00, 0x50}},
	2: {{0x00, 0x28}, {0x40, 0x68}},
	3: {{0x00, 0x10}, {0x10, 0x20}, {0x20, 0x30}},
}

// maxColumns is the widest panel supported for each line count.
var maxColumns = map[int]int{
	1: 20,
	2: 20,
	3: 16,
}

// basicRowSpan is the layout with no double-height rows.
func basicRowSpan(lines int) []int {
	span := make([]int, lines)
	for i := range span {
		span[i] = 1
	}
	return span
}

// rowSpanFor returns how many physical lines each logical row covers.
func rowSpanFor(lines int, n, dh, ud, extended bool) ([]int, error) {
	if !extended {
		return basicRowSpan(lines), nil
	}

	switch lines {
	case 3:
		if !n {
			return nil, fmt.Errorf("N must be high on a three line panel: %w", ErrForbiddenLayout)
		}
		if !dh {
			return []int{1, 1, 1}, nil
		}
		if !ud {
			return []int{1, 2}, nil
		}
		return []int{2, 1}, nil

	case 1:
		if dh {
			return nil, fmt.Errorf("DH high on a one line panel: %w", ErrForbiddenLayout)
		}
		return []int{1}, nil
	}

	if n && dh {
		return nil, fmt.Errorf("N and DH both high: %w", ErrForbiddenLayout)
	}
	if n {
		return basicRowSpan(lines), nil
	}
	return []int{2}, nil
}
