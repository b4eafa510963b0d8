package surge

// Float is the closed set of element types a Matrix can hold. The set is
// deliberately not extensible to named types: each width is tied to a
// concrete backend with exact-width call signatures.
type Float interface {
	float32 | float64
}

// Backend provides the factorization and BLAS primitives the algebra and
// solver are built on. Status codes follow the LAPACK info convention:
// 0 on success, i > 0 when a zero pivot at 1-based position i made the
// system singular, -i when the i-th argument (1-based) is illegal.
//
// Implementations must treat every call as a pure function of its buffers:
// no state may be carried between calls, so independent matrices can be
// processed concurrently.
type Backend[T Float] interface {
	// LUFactorize overwrites the n×n row-major buffer a with its LU
	// factorization, returning the pivot sequence and a status code.
	LUFactorize(a []T, n int) (ipiv []int, info int)

	// LUInvert overwrites a, previously factorized by LUFactorize with the
	// given pivots, with the inverse of the original matrix.
	LUInvert(a []T, n int, ipiv []int) (info int)

	// DirectSolve solves the n×n system for a single right-hand side b.
	// The coefficient buffer a is in column-major order (transposed
	// relative to this package's row-major convention) and is not mutated,
	// so callers may reuse it across successive right-hand sides.
	DirectSolve(a []T, n int, b []T) (x []T, ipiv []int, info int)

	// GeneralMultiply returns the xRows×yCols product of the row-major
	// buffers x (xRows×xCols) and y (xCols×yCols).
	GeneralMultiply(x, y []T, xRows, xCols, yCols int) []T

	// Axpy computes y += alpha*x over equal-length buffers.
	Axpy(alpha T, x, y []T)

	// Scale computes x *= alpha in place.
	Scale(alpha T, x []T)

	// TransposeBuffer returns the cols×rows transpose of the rows×cols
	// row-major buffer x.
	TransposeBuffer(x []T, rows, cols int) []T
}

// DefaultBackend returns the gonum-backed Backend for the element width T.
func DefaultBackend[T Float]() Backend[T] {
	var zero T
	switch any(zero).(type) {
	case float32:
		return any(Backend32{}).(Backend[T])
	default:
		return any(Backend64{}).(Backend[T])
	}
}

// checkSquareArgs validates the (buffer, n) pair shared by the LU entry
// points, returning a LAPACK-style negative status or 0.
func checkSquareArgs(bufLen, n int) int {
	if n < 1 {
		return -2
	}
	if bufLen < n*n {
		return -1
	}
	return 0
}

// zeroDiag returns the 1-based position of the first zero on the diagonal
// of a factorized n×n buffer. gonum's LAPACK wrappers report singularity
// as a bare bool; the zero pivot it found is still on the diagonal of U.
func zeroDiag[T Float](a []T, n int) int {
	for i := 0; i < n; i++ {
		if a[i*n+i] == 0 {
			return i + 1
		}
	}
	return n
}

func transposeBuf[T Float](x []T, rows, cols int) []T {
	out := make([]T, len(x))
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			out[j*rows+i] = x[i*cols+j]
		}
	}
	return out
}
