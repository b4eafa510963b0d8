package surge

import (
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas32"
)

// Backend32 implements Backend[float32]. The BLAS primitives run natively
// on gonum's blas32; gonum ships no single-precision LAPACK, so the LU
// routines widen their buffers to float64, run through Backend64, and
// narrow the results back.
type Backend32 struct{}

func widen(x []float32) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = float64(v)
	}
	return out
}

func narrowInto(dst []float32, src []float64) {
	for i, v := range src {
		dst[i] = float32(v)
	}
}

func general32(a []float32, rows, cols int) blas32.General {
	return blas32.General{Rows: rows, Cols: cols, Stride: cols, Data: a}
}

func (Backend32) LUFactorize(a []float32, n int) ([]int, int) {
	if info := checkSquareArgs(len(a), n); info != 0 {
		return nil, info
	}
	wide := widen(a)
	ipiv, info := Backend64{}.LUFactorize(wide, n)
	narrowInto(a, wide)
	return ipiv, info
}

func (Backend32) LUInvert(a []float32, n int, ipiv []int) int {
	if info := checkSquareArgs(len(a), n); info != 0 {
		return info
	}
	wide := widen(a)
	info := Backend64{}.LUInvert(wide, n, ipiv)
	narrowInto(a, wide)
	return info
}

func (Backend32) DirectSolve(a []float32, n int, b []float32) ([]float32, []int, int) {
	if info := checkSquareArgs(len(a), n); info != 0 {
		return nil, nil, info
	}
	if len(b) != n {
		return nil, nil, -3
	}
	wide, ipiv, info := Backend64{}.DirectSolve(widen(a), n, widen(b))
	if info != 0 {
		return nil, ipiv, info
	}
	x := make([]float32, n)
	narrowInto(x, wide)
	return x, ipiv, 0
}

func (Backend32) GeneralMultiply(x, y []float32, xRows, xCols, yCols int) []float32 {
	out := make([]float32, xRows*yCols)
	blas32.Gemm(blas.NoTrans, blas.NoTrans, 1,
		general32(x, xRows, xCols), general32(y, xCols, yCols), 0, general32(out, xRows, yCols))
	return out
}

func (Backend32) Axpy(alpha float32, x, y []float32) {
	blas32.Axpy(alpha,
		blas32.Vector{N: len(x), Inc: 1, Data: x},
		blas32.Vector{N: len(y), Inc: 1, Data: y})
}

func (Backend32) Scale(alpha float32, x []float32) {
	blas32.Scal(alpha, blas32.Vector{N: len(x), Inc: 1, Data: x})
}

func (Backend32) TransposeBuffer(x []float32, rows, cols int) []float32 {
	return transposeBuf(x, rows, cols)
}
