// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Validate shapes before allocating so oversized requests fail without touching memory.
//   - Make release explicit and exactly-once.
//
// AI-Hints:
//   - Kernels should operate on Data() directly; it is the live backing slice, not a copy.
//   - Use At/Set in tests and glue code where bounds errors must surface as values.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c); Release: O(1).

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt      = "At"      // method tag used in error wrappers
	ctxSet     = "Set"     // method tag used in error wrappers
	ctxRelease = "Release" // method tag used in error wrappers
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// MaxElements caps the number of cells a single Dense may hold.
// Requests above it fail with ErrAllocationFailure before any allocation.
const MaxElements = math.MaxInt32

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Keeps the sentinel reachable through errors.Is.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major float32 matrix.
//   - r,c hold dimensions (rows, cols), both > 0.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - released is set once by Release; data is nil afterwards.
type Dense struct {
	r, c     int       // row and column counts
	data     []float32 // contiguous row-major storage (len == r*c)
	released bool      // storage returned via Release
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Dense)(nil)

// checkShape validates a requested shape without allocating.
//
// Implementation:
//   - Stage 1: rows>0 && cols>0, else ErrInvalidDimension.
//   - Stage 2: rows*cols must not exceed MaxElements, else ErrAllocationFailure.
//     The product is checked by division so it cannot overflow int.
//
// Complexity:
//   - Time O(1), Space O(1).
func checkShape(rows, cols int) error {
	if rows <= 0 || cols <= 0 {
		return ErrInvalidDimension
	}
	if rows > MaxElements/cols {
		return ErrAllocationFailure
	}

	return nil
}

// NewDense creates an r×c zero matrix using row-major storage.
// MAIN DESCRIPTION:
//   - Public constructor for Dense with strict shape validation.
//
// Implementation:
//   - Stage 1: validate the shape via checkShape.
//   - Stage 2: allocate one zero-filled buffer.
//
// Inputs:
//   - rows: positive number of rows
//   - cols: positive number of columns
//
// Returns:
//   - *Dense: newly allocated matrix, every cell 0.
//
// Errors:
//   - ErrInvalidDimension for non-positive dimensions.
//   - ErrAllocationFailure when rows*cols exceeds MaxElements.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// AI-Hints:
//   - Use Allocate when cells must start from a non-zero defined value.
func NewDense(rows, cols int) (*Dense, error) {
	if err := checkShape(rows, cols); err != nil {
		return nil, err
	}
	// make() zero-fills deterministically.
	return &Dense{r: rows, c: cols, data: make([]float32, rows*cols)}, nil
}

// NewDenseFromRows copies a rectangular [][]float32 literal into a new Dense.
// All rows must have the same, non-zero length.
//
// Errors:
//   - ErrInvalidDimension if there are no rows or the first row is empty.
//   - ErrDimensionMismatch if any row length differs from the first.
//
// Complexity: O(r*c) time and memory.
func NewDenseFromRows(rows [][]float32) (*Dense, error) {
	if len(rows) == 0 {
		return nil, ErrInvalidDimension
	}
	cols := len(rows[0])
	m, err := NewDense(len(rows), cols)
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("NewDenseFromRows: row %d has %d cols, want %d: %w",
				i, len(row), cols, ErrDimensionMismatch)
		}
		copy(m.data[i*cols:(i+1)*cols], row)
	}

	return m, nil
}

// Rows returns the row count. No side effects.
// Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. No side effects.
// Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
// Complexity: O(1).
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// Released reports whether Release has been called.
func (m *Dense) Released() bool { return m.released }

// Data returns the live row-major backing slice (len == Rows()*Cols()).
// Writes through it are visible in m. Returns nil after Release.
func (m *Dense) Data() []float32 { return m.data }

// indexOf computes the row-major offset or returns a sentinel.
//
// Implementation:
//   - Stage 1: reject released storage with ErrReleased.
//   - Stage 2: validate 0 ≤ row < m.r and 0 ≤ col < m.c.
//   - Stage 3: compute row*m.c + col.
//
// Notes:
//   - Returns bare sentinels; At/Set wrap with coordinates and method name.
func (m *Dense) indexOf(row, col int) (int, error) {
	if m.released {
		return 0, ErrReleased
	}
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col).
//
// Errors:
//   - ErrOutOfRange when out of bounds; ErrReleased after Release.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) At(row, col int) (float32, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col).
//
// Errors:
//   - ErrOutOfRange when out of bounds; ErrReleased after Release.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) Set(row, col int, v float32) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	m.data[off] = v

	return nil
}

// Clone returns a deep copy with a new buffer.
// Cloning a released matrix yields ErrReleased.
// Complexity: O(r*c) time and memory.
func (m *Dense) Clone() (*Dense, error) {
	if m.released {
		return nil, fmt.Errorf("Dense.Clone: %w", ErrReleased)
	}
	cp := make([]float32, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp}, nil
}

// Release drops the backing storage. It must be called exactly once, after
// every reader and writer is done; a second call returns ErrReleased.
// The shape stays readable so diagnostics can still print it.
func (m *Dense) Release() error {
	if m.released {
		return fmt.Errorf("Dense.%s: %w", ctxRelease, ErrReleased)
	}
	m.data = nil
	m.released = true

	return nil
}

// String HUMAN-READABLE dump of rows for diagnostics.
// Not for hot paths; intended for logs, examples and debugging.
func (m *Dense) String() string {
	if m.released {
		return fmt.Sprintf("Dense(%dx%d, released)", m.r, m.c)
	}
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			fmt.Fprintf(&b, "%g", m.data[base+j])
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
