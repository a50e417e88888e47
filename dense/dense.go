// SPDX-License-Identifier: MIT
// Package dense: Matrix is a concrete, row-major strided matrix of float64
// values, storing elements in a flat slice for performance and cache
// friendliness.

package dense

import (
	"fmt"
	"math"
	"strings"
)

// Matrix is a row-major matrix of float64 values with an explicit row stride.
// rows and cols give the logical shape; consecutive rows start stride
// elements apart in data, with stride >= cols. When stride == cols the
// storage is fully contiguous; when stride > cols the Matrix is a view of a
// sub-block inside a larger allocation.
type Matrix struct {
	rows, cols int       // logical shape
	stride     int       // distance between row starts, stride >= cols
	data       []float64 // flat backing storage, len >= (rows-1)*stride+cols
}

// matrixErrorf wraps an underlying sentinel with method context.
func matrixErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err)
}

// New creates a zeroed rows×cols Matrix with contiguous storage
// (stride == cols).
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Prepare): allocate flat backing slice.
// Stage 3 (Finalize): return new Matrix or ErrInvalidDimensions.
// Complexity: O(rows·cols) time and memory.
func New(rows, cols int) (*Matrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Matrix{
		rows:   rows,
		cols:   cols,
		stride: cols,
		data:   make([]float64, rows*cols),
	}, nil
}

// NewStrided wraps caller-owned storage as a rows×cols Matrix whose rows
// start stride elements apart. No copy is made: mutations through the
// returned Matrix are visible in data and vice versa, which is exactly what
// factoring a sub-block of a larger allocation requires.
// Stage 1 (Validate): shape > 0, stride >= cols, data long enough.
// Stage 2 (Finalize): return the view.
// Complexity: O(1).
func NewStrided(rows, cols, stride int, data []float64) (*Matrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	if stride < cols {
		return nil, ErrStrideTooSmall
	}
	if len(data) < (rows-1)*stride+cols {
		return nil, ErrInvalidDimensions
	}

	return &Matrix{rows: rows, cols: cols, stride: stride, data: data}, nil
}

// FromRows builds a contiguous Matrix by copying the given rows.
// The input is not retained; later mutations of src do not affect the result.
// Stage 1 (Validate): non-empty, rectangular.
// Stage 2 (Prepare): allocate and copy row by row.
// Complexity: O(rows·cols) time and memory.
func FromRows(src [][]float64) (*Matrix, error) {
	if len(src) == 0 || len(src[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	cols := len(src[0])
	for _, r := range src {
		if len(r) != cols {
			return nil, ErrRagged
		}
	}

	m := &Matrix{
		rows:   len(src),
		cols:   cols,
		stride: cols,
		data:   make([]float64, len(src)*cols),
	}
	for i, r := range src {
		copy(m.data[i*cols:(i+1)*cols], r)
	}

	return m, nil
}

// Rows returns the number of rows. Complexity: O(1).
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the number of columns. Complexity: O(1).
func (m *Matrix) Cols() int { return m.cols }

// Stride returns the distance between row starts in the backing slice.
// Complexity: O(1).
func (m *Matrix) Stride() int { return m.stride }

// IsSquare reports whether the logical shape is n×n. Complexity: O(1).
func (m *Matrix) IsSquare() bool { return m.rows == m.cols }

// indexOf computes the flat index for (row, col) or returns the wrapped
// ErrIndexOutOfBounds sentinel. Complexity: O(1).
func (m *Matrix) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.rows {
		return 0, matrixErrorf(method, row, col, ErrIndexOutOfBounds)
	}
	if col < 0 || col >= m.cols {
		return 0, matrixErrorf(method, row, col, ErrIndexOutOfBounds)
	}

	return row*m.stride + col, nil
}

// At retrieves the element at (row, col) with bounds checking.
// Complexity: O(1).
func (m *Matrix) At(row, col int) (float64, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns v at (row, col) with bounds checking. Complexity: O(1).
func (m *Matrix) Set(row, col int, v float64) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Row returns a mutable view of row i, length Cols. Kernels that sweep rows
// use this instead of repeated At/Set calls; writes through the view mutate
// the Matrix. Complexity: O(1).
func (m *Matrix) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.rows {
		return nil, matrixErrorf("Row", i, 0, ErrIndexOutOfBounds)
	}
	start := i * m.stride

	return m.data[start : start+m.cols : start+m.cols], nil
}

// Data exposes the raw backing slice. Respect Stride when indexing: element
// (i, j) lives at Data()[i*Stride()+j]. Intended for kernels that own the
// Matrix outright. Complexity: O(1).
func (m *Matrix) Data() []float64 { return m.data }

// Clone returns a deep, contiguous copy (stride == cols) of the logical
// contents; padding between strided rows is not carried over.
// Complexity: O(rows·cols).
func (m *Matrix) Clone() *Matrix {
	out := &Matrix{
		rows:   m.rows,
		cols:   m.cols,
		stride: m.cols,
		data:   make([]float64, m.rows*m.cols),
	}
	for i := 0; i < m.rows; i++ {
		copy(out.data[i*m.cols:(i+1)*m.cols], m.data[i*m.stride:i*m.stride+m.cols])
	}

	return out
}

// Norm1 computes the matrix 1-norm: the maximum over columns of the sum of
// absolute values in that column. Elimination thresholds are scaled by this
// value. Complexity: O(rows·cols).
func (m *Matrix) Norm1() float64 {
	var norm float64
	for j := 0; j < m.cols; j++ {
		var sum float64
		for i := 0; i < m.rows; i++ {
			sum += math.Abs(m.data[i*m.stride+j])
		}
		if sum > norm {
			norm = sum
		}
	}

	return norm
}

// ValidateSquare ensures m is non-nil and square. Returns ErrNilMatrix or
// ErrNonSquare as plain sentinels; callers wrap if context is needed.
// Complexity: O(1).
func ValidateSquare(m *Matrix) error {
	if m == nil {
		return ErrNilMatrix
	}
	if !m.IsSquare() {
		return ErrNonSquare
	}

	return nil
}

// String implements fmt.Stringer for easy debugging. Complexity: O(rows·cols).
func (m *Matrix) String() string {
	var b strings.Builder
	for i := 0; i < m.rows; i++ {
		b.WriteByte('[')
		for j := 0; j < m.cols; j++ {
			if j > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%g", m.data[i*m.stride+j])
		}
		b.WriteString("]\n")
	}

	return b.String()
}
