package sketch

import (
	"errors"
	"fmt"
)

// ErrStackUnderflow is returned by Pop when the matrix stack is empty.
var ErrStackUnderflow = errors.New("sketch: matrix stack underflow (Pop without matching Push)")

// ArgumentError reports a malformed argument: wrong arity in a variadic
// form, a degenerate value (zero-length rotation axis), or a non-finite
// number where the renderer requires finite coefficients.
type ArgumentError struct {
	Op     string // the operation that rejected the argument
	Reason string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("sketch: %s: %s", e.Op, e.Reason)
}

// UnsupportedModeError reports a 3D-only operation invoked on a context
// whose renderer has no 3D capability. The renderer is never called.
type UnsupportedModeError struct {
	Op string
}

func (e *UnsupportedModeError) Error() string {
	return fmt.Sprintf("sketch: %s requires a 3D renderer (IsP3D)", e.Op)
}

// DeprecatedError reports a call to a removed legacy entry point.
// Replacement names the operation to use instead; it is empty when the
// call has no replacement.
type DeprecatedError struct {
	Op          string
	Replacement string
}

func (e *DeprecatedError) Error() string {
	if e.Replacement == "" {
		return fmt.Sprintf("sketch: %s is not implemented", e.Op)
	}
	return fmt.Sprintf("sketch: %s was removed, use %s instead", e.Op, e.Replacement)
}

// argErrorf builds an ArgumentError with a formatted reason.
func argErrorf(op, format string, args ...any) *ArgumentError {
	return &ArgumentError{Op: op, Reason: fmt.Sprintf(format, args...)}
}
