package surge

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func requireMatrixNear[T Float](t *testing.T, want, got *Matrix[T], tol float64) {
	t.Helper()
	require.Equal(t, want.Rows(), got.Rows())
	require.Equal(t, want.Cols(), got.Cols())
	for i := range want.data {
		require.InDelta(t, float64(want.data[i]), float64(got.data[i]), tol)
	}
}

func TestAddCommutes(t *testing.T) {
	x := NewFromRows([][]float64{{1, 2}, {3, 4}})
	y := NewFromRows([][]float64{{10, 20}, {30, 40}})

	want := NewFromRows([][]float64{{11, 22}, {33, 44}})
	require.True(t, Equal(want, Add(x, y)))
	require.True(t, Equal(Add(x, y), Add(y, x)))

	// Operands stay untouched: results are always fresh buffers.
	require.True(t, Equal(NewFromRows([][]float64{{1, 2}, {3, 4}}), x))
	require.True(t, Equal(NewFromRows([][]float64{{10, 20}, {30, 40}}), y))
}

func TestSub(t *testing.T) {
	x := NewFromRows([][]float64{{5, 5}, {5, 5}})
	y := NewFromRows([][]float64{{1, 2}, {3, 4}})
	require.True(t, Equal(NewFromRows([][]float64{{4, 3}, {2, 1}}), Sub(x, y)))
}

func TestAddShapeMismatchPanics(t *testing.T) {
	x := New[float64](2, 2, 0)
	y := New[float64](2, 3, 0)
	require.Panics(t, func() { Add(x, y) })
	require.Panics(t, func() { Sub(x, y) })
	require.Panics(t, func() { MulElem(x, y) })
}

func TestScale(t *testing.T) {
	x := NewFromRows([][]float64{{1, -2}, {3, 0}})
	require.True(t, Equal(NewFromRows([][]float64{{2, -4}, {6, 0}}), Scale(2, x)))
	require.Equal(t, 1.0, x.At(0, 0))
}

func TestMulElemCommutes(t *testing.T) {
	x := NewFromRows([][]float64{{1, 2}, {3, 4}})
	y := NewFromRows([][]float64{{2, 0}, {-1, 5}})

	want := NewFromRows([][]float64{{2, 0}, {-3, 20}})
	require.True(t, Equal(want, MulElem(x, y)))
	require.True(t, Equal(MulElem(x, y), MulElem(y, x)))
}

func TestMul(t *testing.T) {
	x := NewFromRows([][]float64{{1, 2, 3}, {4, 5, 6}})
	y := NewFromRows([][]float64{{7, 8}, {9, 10}, {11, 12}})

	want := NewFromRows([][]float64{{58, 64}, {139, 154}})
	requireMatrixNear(t, want, Mul(x, y), 1e-12)

	require.Panics(t, func() { Mul(x, x) })
}

func TestMulIdentity(t *testing.T) {
	x := NewFromRows([][]float64{{1, 2}, {3, 4}})
	requireMatrixNear(t, x, Mul(x, Identity[float64](2)), 1e-12)
	requireMatrixNear(t, x, Mul(Identity[float64](2), x), 1e-12)
}

func TestTransposeTwice(t *testing.T) {
	x := NewFromRows([][]float64{{1, 2, 3}, {4, 5, 6}})

	xt := Transpose(x)
	require.Equal(t, 3, xt.Rows())
	require.Equal(t, 2, xt.Cols())
	require.Equal(t, x.At(0, 2), xt.At(2, 0))

	require.True(t, Equal(x, Transpose(Transpose(x))))
}

func TestPowExp(t *testing.T) {
	x := NewFromRows([][]float64{{1, 2}, {3, 4}})

	require.True(t, Equal(NewFromRows([][]float64{{1, 4}, {9, 16}}), Pow(x, 2)))

	e := Exp(NewFromRows([][]float64{{0, 1}}))
	require.Equal(t, 1.0, e.At(0, 0))
	require.InDelta(t, math.E, e.At(0, 1), 1e-12)
}

func TestSum(t *testing.T) {
	x := NewFromRows([][]float64{{1, 2, 3}, {4, 5, 6}})
	tests := []struct {
		axis Axis
		want *Matrix[float64]
	}{
		{axis: AxisColumn, want: NewFromRows([][]float64{{5, 7, 9}})},
		{axis: AxisRow, want: NewFromRows([][]float64{{6}, {15}})},
	}
	for _, tt := range tests {
		require.True(t, Equal(tt.want, Sum(x, tt.axis)))
	}

	require.Panics(t, func() { Sum(x, Axis(9)) })
}

func TestDiv(t *testing.T) {
	x := NewFromRows([][]float64{{2, 4}, {6, 8}})
	y := Scale(2, Identity[float64](2))

	got, err := Div(x, y)
	require.NoError(t, err)
	requireMatrixNear(t, NewFromRows([][]float64{{1, 2}, {3, 4}}), got, 1e-12)
}

func TestDivSingularPropagates(t *testing.T) {
	x := NewFromRows([][]float64{{1, 2}, {3, 4}})
	y := NewFromRows([][]float64{{1, 1}, {1, 1}})

	got, err := Div(x, y)
	require.ErrorIs(t, err, ErrNotInvertible)
	require.Nil(t, got)
}

func TestDivScalar(t *testing.T) {
	x := NewFromRows([][]float64{{2, 4}, {-6, 0}})
	require.True(t, Equal(NewFromRows([][]float64{{1, 2}, {-3, 0}}), DivScalar(x, 2)))

	// Division by zero keeps IEEE semantics, it is not an error.
	z := DivScalar(x, 0)
	require.True(t, math.IsInf(z.At(0, 0), 1))
	require.True(t, math.IsInf(z.At(1, 0), -1))
	require.True(t, math.IsNaN(z.At(1, 1)))
}

func TestAlgebraFloat32(t *testing.T) {
	x := NewFromRows([][]float32{{1, 2}, {3, 4}})
	y := NewFromRows([][]float32{{2, 2}, {2, 2}})

	require.True(t, Equal(NewFromRows([][]float32{{3, 4}, {5, 6}}), Add(x, y)))
	require.True(t, Equal(NewFromRows([][]float32{{2, 4}, {6, 8}}), Scale[float32](2, x)))

	want := NewFromRows([][]float32{{6, 6}, {14, 14}})
	requireMatrixNear(t, want, Mul(x, y), 1e-5)
}
