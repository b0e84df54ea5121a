// Package parallel multiplies single-precision matrices by splitting the
// output's column space across a small fixed number of goroutines plus the
// calling goroutine.
//
// 🚀 How it works
//
//	1. Validate operands (nil, released, a.Cols == b.Rows).
//	2. partition.Split(out.Cols(), W) → W+1 disjoint column ranges.
//	3. Launch W goroutines, each bound to one immutable task (one range).
//	4. Run the last range inline on the calling goroutine.
//	5. Wait on the join barrier; only then is the output returned.
//
// Every output cell is written by exactly one task, so the shared output
// buffer needs no lock. Inputs are read-only for the duration of a call.
//
// ⚙️ Usage:
//
//	out, err := parallel.Multiply(a, b, parallel.WithWorkers(2))
//	if err != nil {
//	    // errors.Is(err, matrix.ErrDimensionMismatch) etc.
//	}
//	defer out.Release()
//
// Reference is the single-threaded triple loop used as a correctness oracle;
// Timed and MultiplyTimed measure wall-clock duration around a call.
//
// Goroutines are spawned fresh per call and joined before the call returns;
// there is no persistent pool and no cancellation.
package parallel
