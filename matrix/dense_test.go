package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vlvector/matrix"
)

func TestNewDense(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 3, m.Cols())
	assert.Equal(t, 6, m.Len())
	assert.Equal(t, 0.0, cell(t, m, 1, 2))

	for _, dims := range [][2]int{{0, 1}, {1, 0}, {-1, 2}} {
		_, err = matrix.NewDense(dims[0], dims[1])
		assert.ErrorIs(t, err, matrix.ErrInvalidDimensions, "%v", dims)
	}
}

func TestNewFromData(t *testing.T) {
	src := []float64{1, 2, 3, 4}
	m, err := matrix.NewFromData(2, 2, src)
	require.NoError(t, err)
	src[0] = 9
	assert.Equal(t, 1.0, cell(t, m, 0, 0), "data must be copied")
	assert.Equal(t, 3.0, cell(t, m, 1, 0))

	_, err = matrix.NewFromData(2, 2, []float64{1})
	assert.ErrorIs(t, err, matrix.ErrDataLength)
}

func TestDense_Bounds(t *testing.T) {
	m := mustDense(t, 2, 2, 1, 2, 3, 4)

	require.NoError(t, m.Set(1, 1, 7))
	assert.Equal(t, 7.0, cell(t, m, 1, 1))

	_, err := m.At(2, 0)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	assert.ErrorIs(t, m.Set(0, -1, 0), matrix.ErrOutOfRange)

	x, err := m.AtFlat(2)
	require.NoError(t, err)
	assert.Equal(t, 3.0, x)
	require.NoError(t, m.SetFlat(0, 5))
	assert.Equal(t, 5.0, cell(t, m, 0, 0))

	_, err = m.AtFlat(4)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	assert.ErrorIs(t, m.SetFlat(-1, 0), matrix.ErrOutOfRange)
}

func TestDense_CloneIndependent(t *testing.T) {
	m := mustDense(t, 1, 2, 1, 2)
	c := m.Clone()
	require.NoError(t, c.Set(0, 0, 100))
	assert.Equal(t, 1.0, cell(t, m, 0, 0))
}

func TestDense_Vectorize(t *testing.T) {
	m := mustDense(t, 2, 3, 1, 2, 3, 4, 5, 6)
	m.Vectorize()
	assert.Equal(t, 6, m.Rows())
	assert.Equal(t, 1, m.Cols())
	assert.Equal(t, 4.0, cell(t, m, 3, 0))
}

func TestEqual(t *testing.T) {
	a := mustDense(t, 2, 2, 1, 2, 3, 4)
	assert.True(t, matrix.Equal(a, mustDense(t, 2, 2, 1, 2, 3, 4)))
	assert.False(t, matrix.Equal(a, mustDense(t, 1, 4, 1, 2, 3, 4)), "shape differs")
	assert.False(t, matrix.Equal(a, mustDense(t, 2, 2, 1, 2, 3, 5)))
	assert.False(t, matrix.Equal(a, nil))
	assert.True(t, matrix.Equal(nil, nil))
}

func TestDense_String(t *testing.T) {
	m := mustDense(t, 2, 2, 1, 2.5, -3, 0)
	assert.Equal(t, "1.000000 2.500000\n-3.000000 0.000000", m.String())
}
