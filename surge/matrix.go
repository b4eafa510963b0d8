package surge

import (
	"fmt"
	"iter"
	"strings"
)

// Matrix is a dense matrix of floating-point values stored in row-major
// order: the element at (row, col) lives at data[row*cols+col].
type Matrix[T Float] struct {
	rows, cols int
	data       []T
}

// New creates a rows×cols matrix with every element set to fill.
// It panics unless rows and cols are both at least 1.
func New[T Float](rows, cols int, fill T) *Matrix[T] {
	if rows < 1 || cols < 1 {
		panic(fmt.Sprintf("surge: New: invalid shape %dx%d", rows, cols))
	}
	m := &Matrix[T]{rows: rows, cols: cols, data: make([]T, rows*cols)}
	if fill != 0 {
		for i := range m.data {
			m.data[i] = fill
		}
	}
	return m
}

// NewFromRows copies a row literal into a new matrix. The first row fixes
// the column count; shorter rows are zero-padded and longer rows truncated
// to fit. An empty literal yields an empty matrix.
func NewFromRows[T Float](rows [][]T) *Matrix[T] {
	if len(rows) == 0 {
		return &Matrix[T]{data: []T{}}
	}
	cols := len(rows[0])
	m := &Matrix[T]{rows: len(rows), cols: cols, data: make([]T, len(rows)*cols)}
	for i, r := range rows {
		copy(m.data[i*cols:(i+1)*cols], r)
	}
	return m
}

// Identity returns the n×n identity matrix.
func Identity[T Float](n int) *Matrix[T] {
	m := New[T](n, n, 0)
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}
	return m
}

// Dims returns the number of rows and columns.
func (m *Matrix[T]) Dims() (rows, cols int) { return m.rows, m.cols }

// Rows returns the number of rows.
func (m *Matrix[T]) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Matrix[T]) Cols() int { return m.cols }

func (m *Matrix[T]) checkRow(i int) {
	if i < 0 || i >= m.rows {
		panic(fmt.Sprintf("surge: row index %d out of range (%d rows)", i, m.rows))
	}
}

func (m *Matrix[T]) checkCol(j int) {
	if j < 0 || j >= m.cols {
		panic(fmt.Sprintf("surge: column index %d out of range (%d columns)", j, m.cols))
	}
}

// At returns the element at (i, j). It panics when the index is out of range.
func (m *Matrix[T]) At(i, j int) T {
	m.checkRow(i)
	m.checkCol(j)
	return m.data[i*m.cols+j]
}

// Set assigns v at (i, j). It panics when the index is out of range.
func (m *Matrix[T]) Set(i, j int, v T) {
	m.checkRow(i)
	m.checkCol(j)
	m.data[i*m.cols+j] = v
}

// Row returns a copy of row i.
func (m *Matrix[T]) Row(i int) []T {
	m.checkRow(i)
	row := make([]T, m.cols)
	copy(row, m.data[i*m.cols:(i+1)*m.cols])
	return row
}

// SetRow replaces row i with the given values. It panics unless
// len(row) equals the column count.
func (m *Matrix[T]) SetRow(i int, row []T) {
	m.checkRow(i)
	if len(row) != m.cols {
		panic(fmt.Sprintf("surge: SetRow: %d values for a %d-column matrix", len(row), m.cols))
	}
	copy(m.data[i*m.cols:(i+1)*m.cols], row)
}

// Col returns a copy of column j, one element per row.
func (m *Matrix[T]) Col(j int) []T {
	m.checkCol(j)
	col := make([]T, m.rows)
	for i := 0; i < m.rows; i++ {
		col[i] = m.data[i*m.cols+j]
	}
	return col
}

// SetCol replaces column j with the given values. It panics unless
// len(col) equals the row count.
func (m *Matrix[T]) SetCol(j int, col []T) {
	m.checkCol(j)
	if len(col) != m.rows {
		panic(fmt.Sprintf("surge: SetCol: %d values for a %d-row matrix", len(col), m.rows))
	}
	for i := 0; i < m.rows; i++ {
		m.data[i*m.cols+j] = col[i]
	}
}

// Clone returns a deep copy sharing no storage with m.
func (m *Matrix[T]) Clone() *Matrix[T] {
	data := make([]T, len(m.data))
	copy(data, m.data)
	return &Matrix[T]{rows: m.rows, cols: m.cols, data: data}
}

// All returns an iterator over row copies in row order. The sequence may
// be ranged over any number of times.
func (m *Matrix[T]) All() iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		for i := 0; i < m.rows; i++ {
			if !yield(m.Row(i)) {
				return
			}
		}
	}
}

// Equal reports whether x and y have the same shape and pointwise equal
// elements.
func Equal[T Float](x, y *Matrix[T]) bool {
	if x.rows != y.rows || x.cols != y.cols {
		return false
	}
	for i, v := range x.data {
		if v != y.data[i] {
			return false
		}
	}
	return true
}

// String renders the matrix as one bracketed, tab-separated line per row.
func (m *Matrix[T]) String() string {
	var sb strings.Builder
	for i := 0; i < m.rows; i++ {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteByte('[')
		for j := 0; j < m.cols; j++ {
			if j > 0 {
				sb.WriteByte('\t')
			}
			fmt.Fprintf(&sb, "%v", m.data[i*m.cols+j])
		}
		sb.WriteByte(']')
	}
	return sb.String()
}
