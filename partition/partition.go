package partition

import "fmt"

// Split divides [0, cols) into workers+1 contiguous ranges.
//
// Algorithm:
//  1. parts = workers+1, base = cols / parts, extra = cols % parts.
//  2. Range p gets base columns, plus one more when p < extra.
//  3. Ranges are laid out back to back starting at 0.
//
// With workers = 2 and cols divisible by three this yields exact thirds.
//
// Errors:
//   - ErrInvalidDimension if cols <= 0 or workers < 0; no ranges are returned.
//
// Complexity: O(workers) time and memory.
func Split(cols, workers int) ([]Range, error) {
	if cols <= 0 {
		return nil, fmt.Errorf("Split: cols=%d: %w", cols, ErrInvalidDimension)
	}
	if workers < 0 {
		return nil, fmt.Errorf("Split: workers=%d: %w", workers, ErrInvalidDimension)
	}

	parts := workers + 1
	base, extra := cols/parts, cols%parts

	ranges := make([]Range, parts)
	start := 0
	for p := 0; p < parts; p++ {
		size := base
		if p < extra {
			size++
		}
		ranges[p] = Range{Start: start, End: start + size}
		start += size
	}

	return ranges, nil
}

// Verify checks that ranges are ascending, pairwise disjoint and that their
// union is exactly [0, cols). Empty ranges are allowed anywhere.
//
// Errors:
//   - ErrCoverage describing the first defect found.
func Verify(ranges []Range, cols int) error {
	next := 0
	for idx, r := range ranges {
		if r.Start > r.End {
			return fmt.Errorf("Verify: range %d %v is inverted: %w", idx, r, ErrCoverage)
		}
		if r.Start != next {
			return fmt.Errorf("Verify: range %d %v starts at %d, want %d: %w", idx, r, r.Start, next, ErrCoverage)
		}
		next = r.End
	}
	if next != cols {
		return fmt.Errorf("Verify: ranges end at %d, want %d: %w", next, cols, ErrCoverage)
	}

	return nil
}
