package surge

import "fmt"

// Solver performs LU-based inversion and linear-system solving through an
// injected Backend. The zero-value backend of NewSolver(nil) is the gonum
// backend for the element width; tests substitute their own.
type Solver[T Float] struct {
	backend Backend[T]
}

// NewSolver returns a Solver using the given backend, or the default
// gonum-backed one when b is nil.
func NewSolver[T Float](b Backend[T]) *Solver[T] {
	if b == nil {
		b = DefaultBackend[T]()
	}
	return &Solver[T]{backend: b}
}

// Invert returns the inverse of the square matrix x. The argument is never
// mutated. A singular x yields an error matching ErrNotInvertible; no
// substitute result (such as a pseudo-inverse) is ever returned.
func (s *Solver[T]) Invert(x *Matrix[T]) (*Matrix[T], error) {
	if x.rows != x.cols {
		panic(fmt.Sprintf("surge: Invert: matrix is %dx%d, want square", x.rows, x.cols))
	}
	out := x.Clone()
	ipiv, info := s.backend.LUFactorize(out.data, out.rows)
	if info != 0 {
		return nil, &NotInvertibleError{Pivot: info}
	}
	if info := s.backend.LUInvert(out.data, out.rows, ipiv); info != 0 {
		return nil, &NotInvertibleError{Pivot: info}
	}
	return out, nil
}

// Solve solves a·x = b for every column of b and overwrites b with the
// assembled solution. It returns the concatenated pivot sequence, one full
// pivot set per solved column in column order, so a k-column b yields
// k × a.Rows() pivots.
//
// A b with no columns is rejected with an error matching ErrIllegalArgument
// before any backend call. When any column fails, b is left untouched: the
// solution replaces b's contents only after every column has solved.
func (s *Solver[T]) Solve(a, b *Matrix[T]) ([]int, error) {
	if a.rows != a.cols {
		panic(fmt.Sprintf("surge: Solve: coefficient matrix is %dx%d, want square", a.rows, a.cols))
	}
	if a.rows != b.rows {
		panic(fmt.Sprintf("surge: Solve: %d equations for %d right-hand rows", a.rows, b.rows))
	}
	if b.cols < 1 {
		return nil, &ArgumentError{Op: "Solve", Arg: 1}
	}

	n := a.rows
	// The backend's direct solver takes the coefficient matrix in
	// column-major order; transpose once per call, not once per column.
	work := s.backend.TransposeBuffer(a.data, n, n)

	out := &Matrix[T]{rows: b.rows, cols: b.cols, data: make([]T, len(b.data))}
	pivots := make([]int, 0, b.cols*n)
	for c := 0; c < b.cols; c++ {
		x, ipiv, info := s.backend.DirectSolve(work, n, b.Col(c))
		switch {
		case info < 0:
			return nil, &ArgumentError{Op: "Solve", Arg: -info}
		case info > 0:
			return nil, &UnsolvedError{Equation: info}
		}
		pivots = append(pivots, ipiv...)
		out.SetCol(c, x)
	}
	copy(b.data, out.data)
	return pivots, nil
}

// Invert inverts x through the default backend. See Solver.Invert.
func Invert[T Float](x *Matrix[T]) (*Matrix[T], error) {
	return NewSolver[T](nil).Invert(x)
}

// Solve solves a·x = b through the default backend. See Solver.Solve.
func Solve[T Float](a, b *Matrix[T]) ([]int, error) {
	return NewSolver[T](nil).Solve(a, b)
}
