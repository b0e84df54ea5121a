package parallel

import (
	"time"

	"github.com/katalvlaran/parmatmul/matrix"
)

// Timed runs fn and returns the wall-clock time it took together with fn's
// error. The duration is reported even when fn fails.
func Timed(fn func() error) (time.Duration, error) {
	start := time.Now()
	err := fn()

	return time.Since(start), err
}

// MultiplyTimed is Multiply wrapped in Timed.
func MultiplyTimed(a, b *matrix.Dense, opts ...Option) (*matrix.Dense, time.Duration, error) {
	var out *matrix.Dense
	elapsed, err := Timed(func() error {
		var err error
		out, err = Multiply(a, b, opts...)
		return err
	})
	if err != nil {
		return nil, elapsed, err
	}

	return out, elapsed, nil
}
