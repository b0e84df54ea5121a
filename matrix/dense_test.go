package matrix_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/parmatmul/matrix"
)

func TestNewDenseDefaultZero(t *testing.T) {
	for _, tc := range []struct{ rows, cols int }{
		{1, 1},
		{3, 3},
		{2, 5},
	} {
		name := fmt.Sprintf("%dx%d", tc.rows, tc.cols)
		t.Run(name, func(t *testing.T) {
			m := MustDense(t, tc.rows, tc.cols)
			require.Equal(t, tc.rows, m.Rows())
			require.Equal(t, tc.cols, m.Cols())
			require.Len(t, m.Data(), tc.rows*tc.cols)
			for _, v := range m.Data() {
				require.Zero(t, v)
			}
		})
	}
}

func TestNewDense_InvalidDimension(t *testing.T) {
	for _, tc := range []struct{ rows, cols int }{
		{0, 1}, {1, 0}, {-1, 3}, {3, -2}, {0, 0},
	} {
		_, err := matrix.NewDense(tc.rows, tc.cols)
		require.ErrorIs(t, err, matrix.ErrInvalidDimension, "%dx%d", tc.rows, tc.cols)
	}
}

func TestNewDense_AllocationFailure(t *testing.T) {
	// 2^16 × 2^16 = 2^32 cells, above MaxElements; must fail before allocating.
	_, err := matrix.NewDense(1<<16, 1<<16)
	require.ErrorIs(t, err, matrix.ErrAllocationFailure)

	_, err = matrix.Allocate(matrix.MaxElements, 2)
	require.ErrorIs(t, err, matrix.ErrAllocationFailure)
}

func TestNewDenseFromRows(t *testing.T) {
	m := MustFromRows(t, [][]float32{{1, 2, 3}, {4, 5, 6}})
	rows, cols := m.Shape()
	require.Equal(t, 2, rows)
	require.Equal(t, 3, cols)
	require.Equal(t, []float32{1, 2, 3, 4, 5, 6}, m.Data())

	_, err := matrix.NewDenseFromRows(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimension)

	_, err = matrix.NewDenseFromRows([][]float32{{}})
	require.ErrorIs(t, err, matrix.ErrInvalidDimension)

	_, err = matrix.NewDenseFromRows([][]float32{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestDense_AtSet(t *testing.T) {
	m := MustDense(t, 2, 3)
	require.NoError(t, m.Set(1, 2, 7.25))
	require.Equal(t, float32(7.25), MustAt(t, m, 1, 2))
	// row-major layout: offset = i*cols + j
	require.Equal(t, float32(7.25), m.Data()[1*3+2])

	for _, idx := range [][2]int{{-1, 0}, {2, 0}, {0, -1}, {0, 3}} {
		_, err := m.At(idx[0], idx[1])
		require.ErrorIs(t, err, matrix.ErrOutOfRange, "At%v", idx)
		require.ErrorIs(t, m.Set(idx[0], idx[1], 1), matrix.ErrOutOfRange, "Set%v", idx)
	}
}

func TestDense_CloneIndependent(t *testing.T) {
	m := MustFromRows(t, [][]float32{{1, 2}, {3, 4}})
	cp, err := m.Clone()
	require.NoError(t, err)
	require.True(t, matrix.Equal(m, cp))

	require.NoError(t, cp.Set(0, 0, 100))
	require.Equal(t, float32(1), MustAt(t, m, 0, 0), "clone must not share storage")
}

func TestDense_ReleaseExactlyOnce(t *testing.T) {
	m := MustDense(t, 2, 2)
	require.False(t, m.Released())
	require.NoError(t, m.Release())
	require.True(t, m.Released())
	require.Nil(t, m.Data())

	// shape survives for diagnostics
	require.Equal(t, 2, m.Rows())
	require.Contains(t, m.String(), "released")

	require.ErrorIs(t, m.Release(), matrix.ErrReleased)
	_, err := m.At(0, 0)
	require.ErrorIs(t, err, matrix.ErrReleased)
	require.ErrorIs(t, m.Set(0, 0, 1), matrix.ErrReleased)
	_, err = m.Clone()
	require.ErrorIs(t, err, matrix.ErrReleased)
}

func TestDense_String(t *testing.T) {
	m := MustFromRows(t, [][]float32{{1, 2.5}, {-3, 4}})
	require.Equal(t, "[1, 2.5]\n[-3, 4]\n", m.String())
}
