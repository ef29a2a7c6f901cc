package tensor

import "fmt"

// CheckPoints validates a point batch: every row must have the same length,
// and that length must equal dim when dim > 0. The batch itself is not
// copied; callers treat it as read-only.
//
// Complexity: O(rows).
func CheckPoints(x [][]float64, dim int) error {
	if len(x) == 0 {
		return nil
	}
	width := len(x[0])
	for i, row := range x {
		if len(row) != width {
			return fmt.Errorf("%w: row %d has %d columns, row 0 has %d", ErrRagged, i, len(row), width)
		}
	}
	if dim > 0 && width != dim {
		return fmt.Errorf("%w: got width %d, want %d", ErrShapeMismatch, width, dim)
	}

	return nil
}

// Column lifts a 1-D sample into a (n, 1) point batch, one event per value.
func Column(vs ...float64) [][]float64 {
	out := make([][]float64, len(vs))
	for i, v := range vs {
		out[i] = []float64{v}
	}

	return out
}

// GatherCols builds a fresh batch keeping the columns named by idx, in idx
// order. Indices out of range fail with ErrShapeMismatch.
//
// Complexity: O(rows × len(idx)).
func GatherCols(x [][]float64, idx []int) ([][]float64, error) {
	if err := CheckPoints(x, 0); err != nil {
		return nil, err
	}
	out := make([][]float64, len(x))
	for i, row := range x {
		picked := make([]float64, len(idx))
		for j, k := range idx {
			if k < 0 || k >= len(row) {
				return nil, fmt.Errorf("%w: column index %d outside width %d", ErrShapeMismatch, k, len(row))
			}
			picked[j] = row[k]
		}
		out[i] = picked
	}

	return out, nil
}

// ConcatCols concatenates batches along the last axis. All batches must have
// the same number of rows.
//
// Complexity: O(rows × total width).
func ConcatCols(xs ...[][]float64) ([][]float64, error) {
	if len(xs) == 0 {
		return nil, nil
	}
	rows := len(xs[0])
	width := 0
	for _, x := range xs {
		if len(x) != rows {
			return nil, fmt.Errorf("%w: got %d rows, want %d", ErrLengthMismatch, len(x), rows)
		}
		if err := CheckPoints(x, 0); err != nil {
			return nil, err
		}
		if rows > 0 {
			width += len(x[0])
		}
	}
	out := make([][]float64, rows)
	for i := 0; i < rows; i++ {
		row := make([]float64, 0, width)
		for _, x := range xs {
			row = append(row, x[i]...)
		}
		out[i] = row
	}

	return out, nil
}

// MaskRows builds a fresh batch keeping the rows whose mask entry is true.
// Kept rows are copied, so the result never aliases x.
//
// Complexity: O(rows × width).
func MaskRows(x [][]float64, mask []bool) ([][]float64, error) {
	if len(mask) != len(x) {
		return nil, fmt.Errorf("%w: mask length %d for %d rows", ErrLengthMismatch, len(mask), len(x))
	}
	out := make([][]float64, 0, len(x))
	for i, keep := range mask {
		if !keep {
			continue
		}
		row := make([]float64, len(x[i]))
		copy(row, x[i])
		out = append(out, row)
	}

	return out, nil
}

// AndMask combines two masks elementwise (logical AND).
func AndMask(a, b []bool) ([]bool, error) {
	if len(a) != len(b) {
		return nil, fmt.Errorf("%w: masks of length %d and %d", ErrLengthMismatch, len(a), len(b))
	}
	out := make([]bool, len(a))
	for i := range a {
		out[i] = a[i] && b[i]
	}

	return out, nil
}

// OrMask combines two masks elementwise (logical OR).
func OrMask(a, b []bool) ([]bool, error) {
	if len(a) != len(b) {
		return nil, fmt.Errorf("%w: masks of length %d and %d", ErrLengthMismatch, len(a), len(b))
	}
	out := make([]bool, len(a))
	for i := range a {
		out[i] = a[i] || b[i]
	}

	return out, nil
}
