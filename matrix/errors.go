// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix,
// partition and parallel packages. All constructors and operations MUST return
// these sentinels (optionally wrapped with %w) and tests MUST check them via
// errors.Is. No operation should panic on user-triggered error conditions.
// Panics are reserved for programmer errors inside kernels.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Context is attached at the outer boundary with
// fmt.Errorf("ctx: %w", ErrX); callers still use errors.Is to match.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> released -> shape -> dimension mismatch -> allocation.

var (
	// ErrInvalidDimension is returned when a requested shape or worker count
	// is invalid (rows<=0, cols<=0, workers<0).
	ErrInvalidDimension = errors.New("matrix: invalid dimension")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Mul where a.Cols != b.Rows, or a destination of the wrong shape.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrAllocationFailure indicates that backing storage for the requested
	// shape cannot be provided (element count overflows or exceeds MaxElements).
	ErrAllocationFailure = errors.New("matrix: allocation failure")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNilMatrix indicates that a nil *Dense (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrReleased indicates use of a matrix after Release, or a second Release.
	ErrReleased = errors.New("matrix: matrix already released")
)
