// SPDX-License-Identifier: MIT

package matrix

import "math"

// Equal reports whether a and b are live, share a shape and hold
// bit-identical cells.
func Equal(a, b *Dense) bool {
	if ValidateLive(a) != nil || ValidateLive(b) != nil || ValidateSameShape(a, b) != nil {
		return false
	}
	for k := range a.data {
		if math.Float32bits(a.data[k]) != math.Float32bits(b.data[k]) {
			return false
		}
	}

	return true
}

// MaxAbsDiff returns max |a[i,j] - b[i,j]| over all cells.
// Errors: ErrNilMatrix, ErrReleased, ErrDimensionMismatch.
func MaxAbsDiff(a, b *Dense) (float32, error) {
	if err := ValidateLive(a); err != nil {
		return 0, err
	}
	if err := ValidateLive(b); err != nil {
		return 0, err
	}
	if err := ValidateSameShape(a, b); err != nil {
		return 0, err
	}
	var worst, d float32
	for k := range a.data {
		d = a.data[k] - b.data[k]
		if d < 0 {
			d = -d
		}
		if d > worst {
			worst = d
		}
	}

	return worst, nil
}

// AllClose reports whether every pair of cells satisfies
// |x-y| <= tol * max(1, |x|, |y|). Shapes must match.
func AllClose(a, b *Dense, tol float32) bool {
	if ValidateLive(a) != nil || ValidateLive(b) != nil || ValidateSameShape(a, b) != nil {
		return false
	}
	var x, y, scale float64
	for k := range a.data {
		x, y = float64(a.data[k]), float64(b.data[k])
		scale = math.Max(1, math.Max(math.Abs(x), math.Abs(y)))
		if math.Abs(x-y) > float64(tol)*scale {
			return false
		}
	}

	return true
}
