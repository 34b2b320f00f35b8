package matrix

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// ReadFrom fills m in row-major order with whitespace-separated numbers read
// from r. Reading stops when every cell is set or the input ends; cells not
// reached keep their values. It returns the number of bytes consumed by the
// tokens it parsed and implements io.ReaderFrom.
// Returns ErrInput for a token that is not a number or a failing reader.
func (m *Dense) ReadFrom(r io.Reader) (int64, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	var n int64
	for k := 0; k < len(m.data) && sc.Scan(); k++ {
		tok := sc.Text()
		x, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return n, fmt.Errorf("Dense.ReadFrom: %w: cell %d: %q", ErrInput, k, tok)
		}
		m.data[k] = x
		n += int64(len(tok))
	}
	if err := sc.Err(); err != nil {
		return n, fmt.Errorf("Dense.ReadFrom: %w: %w", ErrInput, err)
	}

	return n, nil
}
