package surge

import (
	"fmt"
	"math"
)

// Axis selects the reduction direction for Sum.
type Axis int

const (
	// AxisRow reduces across each row, producing a rows×1 matrix.
	AxisRow Axis = iota
	// AxisColumn reduces down each column, producing a 1×cols matrix.
	AxisColumn
)

// Every operation in this file is pure: the operands are never mutated and
// the result is always a fresh buffer.

func mustSameShape[T Float](op string, x, y *Matrix[T]) {
	if x.rows != y.rows || x.cols != y.cols {
		panic(fmt.Sprintf("surge: %s: dimension mismatch %dx%d vs %dx%d",
			op, x.rows, x.cols, y.rows, y.cols))
	}
}

// Add returns the elementwise sum of two equal-shaped matrices.
func Add[T Float](x, y *Matrix[T]) *Matrix[T] {
	mustSameShape("Add", x, y)
	out := y.Clone()
	DefaultBackend[T]().Axpy(1, x.data, out.data)
	return out
}

// Sub returns the elementwise difference x - y of two equal-shaped matrices.
func Sub[T Float](x, y *Matrix[T]) *Matrix[T] {
	mustSameShape("Sub", x, y)
	out := x.Clone()
	DefaultBackend[T]().Axpy(-1, y.data, out.data)
	return out
}

// Scale returns x with every element multiplied by alpha.
func Scale[T Float](alpha T, x *Matrix[T]) *Matrix[T] {
	out := x.Clone()
	DefaultBackend[T]().Scale(alpha, out.data)
	return out
}

// MulElem returns the Hadamard product of two equal-shaped matrices.
func MulElem[T Float](x, y *Matrix[T]) *Matrix[T] {
	mustSameShape("MulElem", x, y)
	out := x.Clone()
	for i, v := range y.data {
		out.data[i] *= v
	}
	return out
}

// Mul returns the matrix product of x (m×k) and y (k×n). It panics unless
// x.Cols() equals y.Rows().
func Mul[T Float](x, y *Matrix[T]) *Matrix[T] {
	if x.cols != y.rows {
		panic(fmt.Sprintf("surge: Mul: dimension mismatch %dx%d times %dx%d",
			x.rows, x.cols, y.rows, y.cols))
	}
	data := DefaultBackend[T]().GeneralMultiply(x.data, y.data, x.rows, x.cols, y.cols)
	return &Matrix[T]{rows: x.rows, cols: y.cols, data: data}
}

// Transpose returns the cols×rows transpose of x.
func Transpose[T Float](x *Matrix[T]) *Matrix[T] {
	data := DefaultBackend[T]().TransposeBuffer(x.data, x.rows, x.cols)
	return &Matrix[T]{rows: x.cols, cols: x.rows, data: data}
}

// Pow returns x with every element raised to the power p.
func Pow[T Float](x *Matrix[T], p T) *Matrix[T] {
	out := x.Clone()
	for i, v := range out.data {
		out.data[i] = T(math.Pow(float64(v), float64(p)))
	}
	return out
}

// Exp returns x with e raised to every element.
func Exp[T Float](x *Matrix[T]) *Matrix[T] {
	out := x.Clone()
	for i, v := range out.data {
		out.data[i] = T(math.Exp(float64(v)))
	}
	return out
}

// Sum reduces x along the given axis: AxisColumn yields a 1×cols matrix of
// column sums, AxisRow a rows×1 matrix of row sums.
func Sum[T Float](x *Matrix[T], axis Axis) *Matrix[T] {
	switch axis {
	case AxisColumn:
		out := New[T](1, x.cols, 0)
		for i := 0; i < x.rows; i++ {
			for j := 0; j < x.cols; j++ {
				out.data[j] += x.data[i*x.cols+j]
			}
		}
		return out
	case AxisRow:
		out := New[T](x.rows, 1, 0)
		for i := 0; i < x.rows; i++ {
			for j := 0; j < x.cols; j++ {
				out.data[i] += x.data[i*x.cols+j]
			}
		}
		return out
	}
	panic(fmt.Sprintf("surge: Sum: unknown axis %d", axis))
}

// Div returns x multiplied by the inverse of y. It requires x.Cols() to
// equal y.Rows() and propagates the inversion failure when y is singular.
func Div[T Float](x, y *Matrix[T]) (*Matrix[T], error) {
	inv, err := Invert(y)
	if err != nil {
		return nil, err
	}
	return Mul(x, inv), nil
}

// DivScalar returns x with every element divided by s. Division by zero
// follows IEEE semantics and is not an error.
func DivScalar[T Float](x *Matrix[T], s T) *Matrix[T] {
	out := x.Clone()
	for i := range out.data {
		out.data[i] /= s
	}
	return out
}
