// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide a single, canonical source of truth for common validation checks.
//   - Keep kernels/facades minimal by delegating nil/release/shape checks here.
//   - Return sentinel errors wrapped with a validator tag so call sites can wrap uniformly.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and allocate nothing on success.
//
// Note:
//   - Each composite validator follows a fixed sequence (NotNil → Live → Shape).

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil(m *Dense) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateLive ensures m is non-nil and has not been released.
// Complexity: O(1).
func ValidateLive(m *Dense) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.released {
		return validatorErrorf("ValidateLive", ErrReleased)
	}

	return nil
}

// ValidateShape checks that a requested rows×cols shape can be allocated.
// Errors: ErrInvalidDimension, ErrAllocationFailure.
// Complexity: O(1).
func ValidateShape(rows, cols int) error {
	if err := checkShape(rows, cols); err != nil {
		return validatorErrorf(fmt.Sprintf("ValidateShape(%d,%d)", rows, cols), err)
	}

	return nil
}

// ValidateSameShape ensures a and b have equal dimensions.
// Assumes a and b are not nil (caller must ensure).
// Complexity: O(1).
func ValidateSameShape(a, b *Dense) error {
	if a.r != b.r {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.c != b.c {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateMulCompatible checks a and b are live and a.Cols() == b.Rows().
//
// Implementation:
//   - Stage 1: ValidateLive on both operands (nil before released).
//   - Stage 2: inner-dimension match.
//
// Errors: ErrNilMatrix, ErrReleased, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateMulCompatible(a, b *Dense) error {
	if err := ValidateLive(a); err != nil {
		return err
	}
	if err := ValidateLive(b); err != nil {
		return err
	}
	if a.c != b.r {
		return validatorErrorf(
			fmt.Sprintf("ValidateMulCompatible: a.Cols=%d b.Rows=%d", a.c, b.r),
			ErrDimensionMismatch,
		)
	}

	return nil
}
