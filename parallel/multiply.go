package parallel

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/parmatmul/matrix"
	"github.com/katalvlaran/parmatmul/partition"
)

// Multiply returns a × b computed by W concurrent goroutines plus the
// calling goroutine (W = DefaultWorkers unless WithWorkers says otherwise).
//
// Implementation:
//   - Stage 1 (Validate): nil/released operands, then a.Cols() == b.Rows().
//   - Stage 2 (Partition): Split(b.Cols(), W) into W+1 column ranges.
//   - Stage 3 (Prepare): allocate the a.Rows()×b.Cols() output.
//   - Stage 4 (Execute): see execute; returns after the join barrier.
//
// Every failure is detected before any goroutine starts; on failure the
// output is never allocated.
//
// Errors (wrapped with "Multiply", match with errors.Is):
//   - matrix.ErrNilMatrix, matrix.ErrReleased for unusable operands.
//   - matrix.ErrDimensionMismatch when a.Cols() != b.Rows().
//   - matrix.ErrInvalidDimension for a negative worker count.
//   - matrix.ErrAllocationFailure when the output cannot be allocated.
//
// Complexity: O(r·n·c) time, O(r·c) memory.
func Multiply(a, b *matrix.Dense, opts ...Option) (*matrix.Dense, error) {
	cfg := gatherOptions(opts...)

	if err := matrix.ValidateMulCompatible(a, b); err != nil {
		return nil, parallelErrorf(opMultiply, err)
	}
	ranges, err := partition.Split(b.Cols(), cfg.workers)
	if err != nil {
		return nil, parallelErrorf(opMultiply, err)
	}
	out, err := matrix.NewDense(a.Rows(), b.Cols())
	if err != nil {
		return nil, parallelErrorf(opMultiply, err)
	}

	execute(a, b, out, ranges)

	return out, nil
}

// MultiplyInto writes a × b into the caller-owned dst, which must be live,
// shaped a.Rows()×b.Cols(), and distinct from both operands. Every cell of
// dst is overwritten; prior contents are irrelevant.
//
// Errors (wrapped with "MultiplyInto"):
//   - as Multiply, plus matrix.ErrDimensionMismatch for a wrongly shaped dst
//     and ErrAliasedOutput when dst is a or b.
func MultiplyInto(dst, a, b *matrix.Dense, opts ...Option) error {
	cfg := gatherOptions(opts...)

	if err := matrix.ValidateMulCompatible(a, b); err != nil {
		return parallelErrorf(opMultiplyInto, err)
	}
	if err := matrix.ValidateLive(dst); err != nil {
		return parallelErrorf(opMultiplyInto, err)
	}
	if dst == a || dst == b {
		return parallelErrorf(opMultiplyInto, ErrAliasedOutput)
	}
	if dst.Rows() != a.Rows() || dst.Cols() != b.Cols() {
		return parallelErrorf(opMultiplyInto, fmt.Errorf("dst is %dx%d, want %dx%d: %w",
			dst.Rows(), dst.Cols(), a.Rows(), b.Cols(), matrix.ErrDimensionMismatch))
	}
	ranges, err := partition.Split(dst.Cols(), cfg.workers)
	if err != nil {
		return parallelErrorf(opMultiplyInto, err)
	}

	execute(a, b, dst, ranges)

	return nil
}

// execute runs one task per range: all but the last on fresh goroutines,
// the last inline, then blocks until every goroutine has finished.
//
// ranges must partition [0, out.Cols()) exactly; anything else is a
// programming error and panics before any goroutine starts.
func execute(a, b, out *matrix.Dense, ranges []partition.Range) {
	if err := partition.Verify(ranges, out.Cols()); err != nil {
		panic(fmt.Sprintf("parallel: %v", err))
	}

	tasks := newTasks(a, b, out, ranges)
	last := len(tasks) - 1

	var wg sync.WaitGroup
	wg.Add(last)
	for w := 0; w < last; w++ {
		go func(t *task) {
			defer wg.Done()
			t.run()
		}(&tasks[w])
	}

	tasks[last].run() // calling goroutine's share
	wg.Wait()         // join barrier
}
