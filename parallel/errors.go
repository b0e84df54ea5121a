package parallel

import (
	"errors"
	"fmt"
)

// ErrAliasedOutput indicates that the destination passed to MultiplyInto is
// one of the operands; writing into it would corrupt the inputs mid-call.
var ErrAliasedOutput = errors.New("parallel: output aliases an input")

// Operation name constants for unified error wrapping.
const (
	opMultiply     = "Multiply"
	opMultiplyInto = "MultiplyInto"
	opReference    = "Reference"
)

// parallelErrorf wraps err with an operation tag, preserving it via %w.
// Use only when err != nil.
func parallelErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
