// SPDX-License-Identifier: MIT

// Package matrix provides the single-precision dense container used by the
// parallel multiply kernels, together with its allocation/release contract.
//
// The package provides:
//
//   - Dense: a row-major float32 matrix backed by one contiguous buffer
//     (offset = i*cols + j), with bounds-checked At/Set and a no-copy Row
//     accessor for hot loops.
//   - Allocate / NewDense / NewDenseFromRows: constructors that validate the
//     requested shape before touching memory and fill every cell with a
//     defined value.
//   - Release: explicit, exactly-once release of the backing storage.
//   - Validators and sentinel errors shared with the partition and parallel
//     packages (ErrInvalidDimension, ErrDimensionMismatch, ErrAllocationFailure).
//
// Ownership:
//
//	A Dense is owned by whoever allocated it. Concurrent readers are safe;
//	concurrent writers must touch disjoint cells (see package parallel).
//
// See example_test.go for usage patterns.
package matrix
