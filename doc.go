// Package parmatmul multiplies single-precision matrices by splitting the
// output's columns across a small fixed set of goroutines plus the caller.
//
// 🚀 What is inside?
//
//	matrix/     Dense row-major float32 container, Allocate/Release, validators, sentinels
//	partition/  Split [0, cols) into W+1 disjoint ranges; Verify coverage
//	parallel/   Multiply / MultiplyInto (fan-out + join barrier), Reference oracle, timing
//	cmd/parmul  CLI that times one N×N multiply and prints "<seconds> seconds"
//
// ✨ Guarantees
//
//   - Every output cell is written by exactly one goroutine; no locks.
//   - Multiply returns only after all goroutines have joined.
//   - Invalid input is reported as an error value before any goroutine starts.
//
// Quick example:
//
//	a, _ := matrix.NewDenseFromRows([][]float32{{1, 2}, {3, 4}})
//	b, _ := matrix.NewDenseFromRows([][]float32{{5, 6}, {7, 8}})
//	c, _ := parallel.Multiply(a, b)
//	// c = [[19, 22], [43, 50]]
//
//	go install github.com/katalvlaran/parmatmul/cmd/parmul@latest
package parmatmul
