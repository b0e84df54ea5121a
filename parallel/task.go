package parallel

import (
	"fmt"

	"github.com/katalvlaran/parmatmul/matrix"
	"github.com/katalvlaran/parmatmul/partition"
)

// task binds one column range of out to its operands.
// It is built once per call and never mutated afterwards; each goroutine
// receives a pointer to its own task.
type task struct {
	a, b *matrix.Dense   // read-only operands
	out  *matrix.Dense   // shared output, written only inside cols
	cols partition.Range // output columns owned by this task
}

// newTasks builds one task per range, in range order.
func newTasks(a, b, out *matrix.Dense, ranges []partition.Range) []task {
	tasks := make([]task, len(ranges))
	for i, r := range ranges {
		tasks[i] = task{a: a, b: b, out: out, cols: r}
	}

	return tasks
}

// run computes out[i][j] = Σ_k a[i][k]*b[k][j] for every row i and every
// column j in t.cols, starting each accumulator from zero.
//
// A range outside [0, out.Cols()) or an operand shape that does not match out
// is a programming error in the caller and panics before any write.
func (t *task) run() {
	rows, inner, n := t.out.Rows(), t.a.Cols(), t.out.Cols()
	if t.cols.Start < 0 || t.cols.End > n || t.cols.Start > t.cols.End {
		panic(fmt.Sprintf("parallel: task range %v outside output columns [0,%d)", t.cols, n))
	}
	if t.a.Rows() != rows || t.b.Rows() != inner || t.b.Cols() != n {
		panic(fmt.Sprintf("parallel: task shapes a=%dx%d b=%dx%d out=%dx%d disagree",
			t.a.Rows(), inner, t.b.Rows(), t.b.Cols(), rows, n))
	}

	ad, bd, od := t.a.Data(), t.b.Data(), t.out.Data()
	var (
		i, j, k int
		acc     float32
		aRow    []float32
		oRow    []float32
	)
	for i = 0; i < rows; i++ {
		aRow = ad[i*inner : (i+1)*inner]
		oRow = od[i*n : (i+1)*n]
		for j = t.cols.Start; j < t.cols.End; j++ {
			acc = 0
			for k = 0; k < inner; k++ {
				// product rounded to float32 before accumulation (no FMA fusion)
				acc += float32(aRow[k] * bd[k*n+j])
			}
			oRow[j] = acc
		}
	}
}
