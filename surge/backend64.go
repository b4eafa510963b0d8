package surge

import (
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/lapack/lapack64"
)

// Backend64 implements Backend[float64] on gonum's blas64 and lapack64
// packages. gonum's LAPACK wrappers report failure as a bool and panic on
// malformed arguments, so arguments are validated up front (negative info)
// and the failing pivot is recovered from the factorized diagonal
// (positive info), restoring the LAPACK info convention the solver maps
// into its error taxonomy.
type Backend64 struct{}

func general64(a []float64, rows, cols int) blas64.General {
	return blas64.General{Rows: rows, Cols: cols, Stride: cols, Data: a}
}

// LUFactorize wraps lapack64.Getrf.
func (Backend64) LUFactorize(a []float64, n int) ([]int, int) {
	if info := checkSquareArgs(len(a), n); info != 0 {
		return nil, info
	}
	ipiv := make([]int, n)
	if ok := lapack64.Getrf(general64(a, n, n), ipiv); !ok {
		return ipiv, zeroDiag(a, n)
	}
	return ipiv, 0
}

// LUInvert wraps lapack64.Getri, including its workspace query.
func (Backend64) LUInvert(a []float64, n int, ipiv []int) int {
	if info := checkSquareArgs(len(a), n); info != 0 {
		return info
	}
	if len(ipiv) != n {
		return -3
	}
	lu := general64(a, n, n)
	work := make([]float64, 1)
	lapack64.Getri(lu, ipiv, work, -1)
	lwork := int(work[0])
	if lwork < n {
		lwork = n
	}
	work = make([]float64, lwork)
	if ok := lapack64.Getri(lu, ipiv, work, lwork); !ok {
		return zeroDiag(a, n)
	}
	return 0
}

// DirectSolve factorizes a private copy of the column-major coefficient
// buffer and back-substitutes one right-hand side. Getrs is asked for the
// transposed solve so the column-major factorization solves the original
// row-major system.
func (Backend64) DirectSolve(a []float64, n int, b []float64) ([]float64, []int, int) {
	if info := checkSquareArgs(len(a), n); info != 0 {
		return nil, nil, info
	}
	if len(b) != n {
		return nil, nil, -3
	}
	lu := make([]float64, n*n)
	copy(lu, a)
	ipiv := make([]int, n)
	if ok := lapack64.Getrf(general64(lu, n, n), ipiv); !ok {
		return nil, ipiv, zeroDiag(lu, n)
	}
	x := make([]float64, n)
	copy(x, b)
	lapack64.Getrs(blas.Trans, general64(lu, n, n), general64(x, n, 1), ipiv)
	return x, ipiv, 0
}

// GeneralMultiply wraps blas64.Gemm with no transposition.
func (Backend64) GeneralMultiply(x, y []float64, xRows, xCols, yCols int) []float64 {
	out := make([]float64, xRows*yCols)
	blas64.Gemm(blas.NoTrans, blas.NoTrans, 1,
		general64(x, xRows, xCols), general64(y, xCols, yCols), 0, general64(out, xRows, yCols))
	return out
}

// Axpy wraps blas64.Axpy over contiguous buffers.
func (Backend64) Axpy(alpha float64, x, y []float64) {
	blas64.Axpy(alpha,
		blas64.Vector{N: len(x), Inc: 1, Data: x},
		blas64.Vector{N: len(y), Inc: 1, Data: y})
}

// Scale wraps blas64.Scal.
func (Backend64) Scale(alpha float64, x []float64) {
	blas64.Scal(alpha, blas64.Vector{N: len(x), Inc: 1, Data: x})
}

// TransposeBuffer is a plain loop: gonum exposes no out-of-place
// transpose primitive.
func (Backend64) TransposeBuffer(x []float64, rows, cols int) []float64 {
	return transposeBuf(x, rows, cols)
}
