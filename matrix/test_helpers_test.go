package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vlvector/matrix"
)

// mustDense builds an r×c matrix from row-major data or fails the test.
func mustDense(t *testing.T, r, c int, data ...float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromData(r, c, data)
	require.NoError(t, err)

	return m
}

// cell reads (i,j) or fails the test.
func cell(t *testing.T, m *matrix.Dense, i, j int) float64 {
	t.Helper()
	x, err := m.At(i, j)
	require.NoError(t, err)

	return x
}
