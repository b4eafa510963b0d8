package surge

import (
	"errors"
	"fmt"
)

// Sentinel errors for the three numerical failure kinds. Typed errors below
// carry the diagnostic detail; all of them match their sentinel through
// errors.Is. Shape and index violations are not part of this set — those
// are programmer errors and panic.
var (
	// ErrNotInvertible is reported by Invert when factorization finds the
	// matrix singular.
	ErrNotInvertible = errors.New("surge: matrix is not invertible")

	// ErrIllegalArgument is reported by Solve when an argument violates the
	// solver's preconditions, e.g. a right-hand side with no columns.
	ErrIllegalArgument = errors.New("surge: illegal argument")

	// ErrUnsolvedEquation is reported by Solve when factorization finds the
	// system exactly singular at some pivot.
	ErrUnsolvedEquation = errors.New("surge: equation could not be solved")
)

// NotInvertibleError reports a failed inversion. Pivot, when positive, is
// the 1-based position at which factorization produced a zero pivot.
type NotInvertibleError struct {
	Pivot int
}

func (e *NotInvertibleError) Error() string {
	if e.Pivot > 0 {
		return fmt.Sprintf("surge: Invert: zero pivot at position %d, matrix is not invertible", e.Pivot)
	}
	return "surge: Invert: matrix is not invertible"
}

func (e *NotInvertibleError) Is(target error) bool { return target == ErrNotInvertible }

// ArgumentError reports the 1-based index of the argument a solver routine
// rejected, the magnitude of the backend's negative status code.
type ArgumentError struct {
	Op  string
	Arg int
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("surge: %s: argument %d is illegal", e.Op, e.Arg)
}

func (e *ArgumentError) Is(target error) bool { return target == ErrIllegalArgument }

// UnsolvedError reports that the coefficient matrix is singular to machine
// precision. Equation is the 1-based pivot at which the zero was found.
type UnsolvedError struct {
	Equation int
}

func (e *UnsolvedError) Error() string {
	return fmt.Sprintf("surge: Solve: system is singular at equation %d", e.Equation)
}

func (e *UnsolvedError) Is(target error) bool { return target == ErrUnsolvedEquation }
