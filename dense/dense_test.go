package dense_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/densolve/dense"
)

// TestNew_InvalidDimensions verifies that non-positive shapes are rejected
// with ErrInvalidDimensions before any allocation is observable.
func TestNew_InvalidDimensions(t *testing.T) {
	_, err := dense.New(0, 3)
	assert.ErrorIs(t, err, dense.ErrInvalidDimensions, "zero rows must error")

	_, err = dense.New(3, -1)
	assert.ErrorIs(t, err, dense.ErrInvalidDimensions, "negative cols must error")
}

// TestNew_ZeroedStorage verifies shape accessors and zero initialization.
func TestNew_ZeroedStorage(t *testing.T) {
	m, err := dense.New(2, 3)
	require.NoError(t, err)

	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 3, m.Cols())
	assert.Equal(t, 3, m.Stride(), "New must produce contiguous storage")
	assert.False(t, m.IsSquare())

	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			v, err := m.At(i, j)
			require.NoError(t, err)
			assert.Zero(t, v)
		}
	}
}

// TestAtSet_Bounds exercises the bounds-checked accessors on every edge.
func TestAtSet_Bounds(t *testing.T) {
	m, err := dense.New(2, 2)
	require.NoError(t, err)

	require.NoError(t, m.Set(1, 0, 7.5))
	v, err := m.At(1, 0)
	require.NoError(t, err)
	assert.Equal(t, 7.5, v)

	_, err = m.At(-1, 0)
	assert.ErrorIs(t, err, dense.ErrIndexOutOfBounds)
	_, err = m.At(0, 2)
	assert.ErrorIs(t, err, dense.ErrIndexOutOfBounds)
	err = m.Set(2, 0, 1)
	assert.ErrorIs(t, err, dense.ErrIndexOutOfBounds)
}

// TestFromRows_CopiesInput verifies the copy-in constructor detaches from
// the source slices and rejects ragged or empty input.
func TestFromRows_CopiesInput(t *testing.T) {
	src := [][]float64{{1, 2}, {3, 4}}
	m, err := dense.FromRows(src)
	require.NoError(t, err)

	src[0][0] = 99 // mutate the source; the Matrix must not see it
	v, err := m.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v, "FromRows must copy, not alias")

	_, err = dense.FromRows([][]float64{{1, 2}, {3}})
	assert.ErrorIs(t, err, dense.ErrRagged)
	_, err = dense.FromRows(nil)
	assert.ErrorIs(t, err, dense.ErrInvalidDimensions)
	_, err = dense.FromRows([][]float64{{}})
	assert.ErrorIs(t, err, dense.ErrInvalidDimensions)
}

// TestNewStrided_SubBlockView verifies that a strided view addresses a
// sub-block of a larger allocation and that writes flow both ways.
func TestNewStrided_SubBlockView(t *testing.T) {
	// 3x4 backing storage; view the leading 2x2 block with stride 4.
	backing := []float64{
		1, 2, 0, 0,
		3, 4, 0, 0,
		0, 0, 0, 0,
	}
	m, err := dense.NewStrided(2, 2, 4, backing)
	require.NoError(t, err)

	assert.Equal(t, 4, m.Stride())
	v, err := m.At(1, 1)
	require.NoError(t, err)
	assert.Equal(t, 4.0, v, "strided view must skip the padding columns")

	require.NoError(t, m.Set(0, 1, -2))
	assert.Equal(t, -2.0, backing[1], "writes through the view reach the backing slice")

	_, err = dense.NewStrided(2, 3, 2, backing)
	assert.ErrorIs(t, err, dense.ErrStrideTooSmall)
	_, err = dense.NewStrided(4, 4, 4, backing)
	assert.ErrorIs(t, err, dense.ErrInvalidDimensions, "backing slice too short")
}

// TestRow_ViewMutates verifies Row hands out a live view of the row.
func TestRow_ViewMutates(t *testing.T) {
	m, err := dense.FromRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)

	row, err := m.Row(1)
	require.NoError(t, err)
	row[0] = 30

	v, err := m.At(1, 0)
	require.NoError(t, err)
	assert.Equal(t, 30.0, v)

	_, err = m.Row(2)
	assert.ErrorIs(t, err, dense.ErrIndexOutOfBounds)
}

// TestClone_Independent verifies Clone compacts strided storage and detaches
// from the original.
func TestClone_Independent(t *testing.T) {
	backing := []float64{1, 2, 9, 3, 4, 9}
	m, err := dense.NewStrided(2, 2, 3, backing)
	require.NoError(t, err)

	c := m.Clone()
	assert.Equal(t, 2, c.Stride(), "Clone must be contiguous")

	require.NoError(t, c.Set(0, 0, -1))
	v, err := m.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v, "Clone must not alias the original")
}

// TestNorm1 verifies the maximum-column-sum norm, including on a strided view.
func TestNorm1(t *testing.T) {
	m, err := dense.FromRows([][]float64{{1, -7}, {-2, 3}})
	require.NoError(t, err)
	assert.Equal(t, 10.0, m.Norm1(), "column 1 sums |−7|+|3| = 10")

	// Padding values outside the logical block must not leak into the norm.
	backing := []float64{1, 0, 100, 0, 1, 100}
	v, err := dense.NewStrided(2, 2, 3, backing)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v.Norm1())
}

// TestValidateSquare covers the nil and non-square sentinels.
func TestValidateSquare(t *testing.T) {
	assert.ErrorIs(t, dense.ValidateSquare(nil), dense.ErrNilMatrix)

	rect, err := dense.New(2, 3)
	require.NoError(t, err)
	assert.ErrorIs(t, dense.ValidateSquare(rect), dense.ErrNonSquare)

	sq, err := dense.New(3, 3)
	require.NoError(t, err)
	assert.NoError(t, dense.ValidateSquare(sq))
}

// TestString_Format pins the debug representation.
func TestString_Format(t *testing.T) {
	m, err := dense.FromRows([][]float64{{1, 2.5}, {-3, 0}})
	require.NoError(t, err)
	assert.Equal(t, "[1, 2.5]\n[-3, 0]\n", m.String())
}
