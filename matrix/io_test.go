package matrix_test

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vlvector/matrix"
)

var _ io.ReaderFrom = (*matrix.Dense)(nil)

func TestReadFrom(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	_, err = m.ReadFrom(strings.NewReader("1 2\n\t3   4 5"))
	require.NoError(t, err)
	assert.True(t, matrix.Equal(mustDense(t, 2, 2, 1, 2, 3, 4), m), "extra input is left unread")
}

func TestReadFrom_ShortInput(t *testing.T) {
	m := mustDense(t, 1, 3, 9, 9, 9)
	_, err := m.ReadFrom(strings.NewReader("1.5"))
	require.NoError(t, err)
	assert.True(t, matrix.Equal(mustDense(t, 1, 3, 1.5, 9, 9), m))
}

func TestReadFrom_BadToken(t *testing.T) {
	m := mustDense(t, 1, 2, 0, 0)
	_, err := m.ReadFrom(strings.NewReader("1 x"))
	assert.ErrorIs(t, err, matrix.ErrInput)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("disk gone") }

func TestReadFrom_ReaderError(t *testing.T) {
	m := mustDense(t, 1, 1, 0)
	_, err := m.ReadFrom(failingReader{})
	assert.ErrorIs(t, err, matrix.ErrInput)
}
