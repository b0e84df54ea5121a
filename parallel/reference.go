package parallel

import "github.com/katalvlaran/parmatmul/matrix"

// Reference computes a × b with the plain single-threaded i-j-k triple loop.
// It is the correctness oracle for Multiply and shares its accumulation
// order, so on identical inputs the two agree bit for bit.
//
// Errors (wrapped with "Reference"): as Multiply, minus the worker count.
//
// Complexity: O(r·n·c) time, O(r·c) memory.
func Reference(a, b *matrix.Dense) (*matrix.Dense, error) {
	if err := matrix.ValidateMulCompatible(a, b); err != nil {
		return nil, parallelErrorf(opReference, err)
	}
	rows, inner, cols := a.Rows(), a.Cols(), b.Cols()
	out, err := matrix.NewDense(rows, cols)
	if err != nil {
		return nil, parallelErrorf(opReference, err)
	}

	ad, bd, od := a.Data(), b.Data(), out.Data()
	var (
		i, j, k int
		acc     float32
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			acc = 0
			for k = 0; k < inner; k++ {
				acc += float32(ad[i*inner+k] * bd[k*cols+j])
			}
			od[i*cols+j] = acc
		}
	}

	return out, nil
}
