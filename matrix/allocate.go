// SPDX-License-Identifier: MIT

package matrix

// Allocate returns a rows×cols Dense with every cell initialized to a
// defined value: DefaultFill unless WithFill / WithFillFunc says otherwise.
//
// Implementation:
//   - Stage 1: validate the shape (no memory is touched on failure).
//   - Stage 2: allocate the contiguous buffer.
//   - Stage 3: fill deterministically in row-major order.
//
// Errors:
//   - ErrInvalidDimension for non-positive dimensions.
//   - ErrAllocationFailure when rows*cols exceeds MaxElements.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Allocate(rows, cols int, opts ...AllocOption) (*Dense, error) {
	cfg := gatherAllocOptions(opts...)

	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}

	if cfg.fillFn != nil {
		var i, j, base int
		for i = 0; i < rows; i++ {
			base = i * cols
			for j = 0; j < cols; j++ {
				m.data[base+j] = cfg.fillFn(i, j)
			}
		}
		return m, nil
	}

	if cfg.fill != 0 {
		for k := range m.data {
			m.data[k] = cfg.fill
		}
	}

	return m, nil
}
