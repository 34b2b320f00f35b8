// Package matrix provides Dense, a row-major float64 matrix with checked
// indexing and the arithmetic used by image filters.
//
// The matrix package provides:
//
//   - Construction: NewDense (zero-filled), NewFromData (copying a flat slice).
//   - Checked access by (row, col) and by flat row-major index.
//   - Arithmetic: Add, Mul (matrix product), Scale, Div, AddScalar and
//     in-place variants.
//   - Vectorize, which reshapes an r×c matrix into an (r·c)×1 column.
//   - Text I/O: ReadFrom fills cells from whitespace-separated numbers and
//     String renders one space-separated row per line.
//
// Every user-triggered failure is returned as a sentinel error matched with
// errors.Is; no public function panics on bad input.
package matrix
