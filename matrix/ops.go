// SPDX-License-Identifier: MIT

package matrix

import "fmt"

// Add returns a + b (element-wise) as a new matrix.
// Returns ErrNilMatrix or ErrDimensionMismatch.
// Complexity: O(r*c).
func Add(a, b *Dense) (*Dense, error) {
	// Stage 1: validate operands
	if err := sameShape(a, b); err != nil {
		return nil, matrixErrorf("Add", err)
	}

	// Stage 2: allocate result and sum cells
	out := a.clone()
	for k, x := range b.data {
		out.data[k] += x
	}

	return out, nil
}

// AddInPlace adds b into a element-wise.
// Returns ErrNilMatrix or ErrDimensionMismatch; a is unchanged on error.
func AddInPlace(a, b *Dense) error {
	if err := sameShape(a, b); err != nil {
		return matrixErrorf("AddInPlace", err)
	}
	for k, x := range b.data {
		a.data[k] += x
	}

	return nil
}

// Mul returns the matrix product a×b.
// Returns ErrNilMatrix, or ErrDimensionMismatch when a.Cols() != b.Rows().
// Complexity: O(r*n*c).
func Mul(a, b *Dense) (*Dense, error) {
	// Stage 1: validate operands
	if a == nil || b == nil {
		return nil, matrixErrorf("Mul", ErrNilMatrix)
	}
	if a.c != b.r {
		return nil, matrixErrorf("Mul", fmt.Errorf("%w: %dx%d × %dx%d", ErrDimensionMismatch, a.r, a.c, b.r, b.c))
	}

	// Stage 2: i-k-j loop keeps the inner walk contiguous in both b and out
	out := &Dense{r: a.r, c: b.c, data: make([]float64, a.r*b.c)}
	for i := 0; i < a.r; i++ {
		row := out.data[i*b.c : (i+1)*b.c]
		for k := 0; k < a.c; k++ {
			aik := a.data[i*a.c+k]
			if aik == 0 {
				continue
			}
			bk := b.data[k*b.c : (k+1)*b.c]
			for j := range row {
				row[j] += aik * bk[j]
			}
		}
	}

	return out, nil
}

// Scale returns s·m as a new matrix.
func Scale(m *Dense, s float64) (*Dense, error) {
	if m == nil {
		return nil, matrixErrorf("Scale", ErrNilMatrix)
	}
	out := m.clone()
	out.ScaleInPlace(s)

	return out, nil
}

// ScaleInPlace multiplies every cell of m by s.
func (m *Dense) ScaleInPlace(s float64) {
	for k := range m.data {
		m.data[k] *= s
	}
}

// Div returns m/s as a new matrix, computed as m·(1/s).
// Returns ErrNilMatrix, or ErrDivisionByZero when s == 0.
func Div(m *Dense, s float64) (*Dense, error) {
	if m == nil {
		return nil, matrixErrorf("Div", ErrNilMatrix)
	}
	if s == 0 {
		return nil, matrixErrorf("Div", ErrDivisionByZero)
	}
	out := m.clone()
	out.ScaleInPlace(1 / s)

	return out, nil
}

// AddScalar returns m with s added to every cell.
func AddScalar(m *Dense, s float64) (*Dense, error) {
	if m == nil {
		return nil, matrixErrorf("AddScalar", ErrNilMatrix)
	}
	out := m.clone()
	for k := range out.data {
		out.data[k] += s
	}

	return out, nil
}

// sameShape checks both operands are non-nil and of equal shape.
func sameShape(a, b *Dense) error {
	if a == nil || b == nil {
		return ErrNilMatrix
	}
	if a.r != b.r || a.c != b.c {
		return fmt.Errorf("%w: %dx%d vs %dx%d", ErrDimensionMismatch, a.r, a.c, b.r, b.c)
	}

	return nil
}
