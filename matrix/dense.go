// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"strconv"
	"strings"
)

// Dense is a row-major implementation of Matrix backed by a flat []float64.
// Cells live at data[i*c+j].
type Dense struct {
	r, c int
	data []float64
}

// NewDense creates an r×c zero-filled matrix.
// Returns ErrInvalidDimensions when r <= 0 or c <= 0.
// Complexity: O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, denseErrorf("NewDense", rows, cols, ErrInvalidDimensions)
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// NewFromData creates an r×c matrix holding a copy of data in row-major order.
// Returns ErrInvalidDimensions or ErrDataLength.
func NewFromData(rows, cols int, data []float64) (*Dense, error) {
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	if len(data) != rows*cols {
		return nil, fmt.Errorf("NewFromData: %w: got %d values for %dx%d", ErrDataLength, len(data), rows, cols)
	}
	copy(m.data, data)

	return m, nil
}

// Rows returns the number of rows.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Dense) Cols() int { return m.c }

// Len returns the number of cells, Rows()*Cols().
func (m *Dense) Len() int { return len(m.data) }

// indexOf validates (i,j) and returns the flat index.
func (m *Dense) indexOf(method string, i, j int) (int, error) {
	if i < 0 || i >= m.r || j < 0 || j >= m.c {
		return 0, denseErrorf(method, i, j, ErrOutOfRange)
	}

	return i*m.c + j, nil
}

// At returns the element at (i,j) or ErrOutOfRange.
func (m *Dense) At(i, j int) (float64, error) {
	k, err := m.indexOf("At", i, j)
	if err != nil {
		return 0, err
	}

	return m.data[k], nil
}

// Set assigns v at (i,j) or returns ErrOutOfRange.
func (m *Dense) Set(i, j int, v float64) error {
	k, err := m.indexOf("Set", i, j)
	if err != nil {
		return err
	}
	m.data[k] = v

	return nil
}

// AtFlat returns the k-th cell in row-major order or ErrOutOfRange.
func (m *Dense) AtFlat(k int) (float64, error) {
	if k < 0 || k >= len(m.data) {
		return 0, fmt.Errorf("Dense.AtFlat(%d): %w", k, ErrOutOfRange)
	}

	return m.data[k], nil
}

// SetFlat assigns the k-th cell in row-major order or returns ErrOutOfRange.
func (m *Dense) SetFlat(k int, v float64) error {
	if k < 0 || k >= len(m.data) {
		return fmt.Errorf("Dense.SetFlat(%d): %w", k, ErrOutOfRange)
	}
	m.data[k] = v

	return nil
}

// Clone returns a deep copy of m.
func (m *Dense) Clone() Matrix {
	return m.clone()
}

func (m *Dense) clone() *Dense {
	out := &Dense{r: m.r, c: m.c, data: make([]float64, len(m.data))}
	copy(out.data, m.data)

	return out
}

// Vectorize reshapes m in place into a single column of Rows()*Cols() rows,
// keeping row-major cell order, and returns m.
func (m *Dense) Vectorize() *Dense {
	m.r, m.c = len(m.data), 1

	return m
}

// Equal reports whether a and b have the same shape and identical cells.
// Two nil matrices are equal.
func Equal(a, b *Dense) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.r != b.r || a.c != b.c {
		return false
	}
	for k := range a.data {
		if a.data[k] != b.data[k] {
			return false
		}
	}

	return true
}

// String renders one line per row with cells formatted as %f and separated
// by single spaces. There is no trailing newline.
func (m *Dense) String() string {
	var sb strings.Builder
	for k, x := range m.data {
		if k > 0 {
			if k%m.c == 0 {
				sb.WriteByte('\n')
			} else {
				sb.WriteByte(' ')
			}
		}
		sb.WriteString(strconv.FormatFloat(x, 'f', 6, 64))
	}

	return sb.String()
}
