// Package surge provides a dense row-major matrix over float32 or float64
// elements, elementwise and matrix algebra on it, and LU-based inversion
// and linear-system solving backed by gonum's BLAS and LAPACK routines.
//
// Shape and index preconditions (mismatched dimensions, out-of-range
// indices) are programmer errors and panic. Numerical failures reported by
// the factorization routines (a singular matrix, an illegal argument) are
// returned as error values matching ErrNotInvertible, ErrIllegalArgument
// or ErrUnsolvedEquation via errors.Is.
package surge
