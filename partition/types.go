package partition

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/parmatmul/matrix"
)

// ErrInvalidDimension aliases the matrix sentinel so that errors.Is matches
// the same value whichever package reported it.
var ErrInvalidDimension = matrix.ErrInvalidDimension

// ErrCoverage indicates a set of ranges that overlaps, leaves a gap, is out
// of order, or does not span exactly [0, cols).
var ErrCoverage = errors.New("partition: ranges do not cover the index space exactly once")

// Range is a half-open interval [Start, End) of column indices.
type Range struct {
	Start int
	End   int
}

// Len returns the number of indices in r.
func (r Range) Len() int { return r.End - r.Start }

// Empty reports whether r contains no indices.
func (r Range) Empty() bool { return r.End <= r.Start }

// Contains reports whether i lies in [Start, End).
func (r Range) Contains(i int) bool { return i >= r.Start && i < r.End }

// String renders r as "[start,end)".
func (r Range) String() string { return fmt.Sprintf("[%d,%d)", r.Start, r.End) }
