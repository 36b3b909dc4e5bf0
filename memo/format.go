package memo

import (
	"bufio"
	"fmt"
	"io"
)

// Layout of the rendered table.
const (
	fieldWidth     = 6
	leftLabelWidth = 6
	leftIndexWidth = 3
	unsetLiteral   = "inf"
	ruleLiteral    = "---"
)

// Format writes t to w as a labelled grid.
//
// rowLabels[i] names row i and colLabels[j] names column j; both must have
// exactly one byte per row/column (the placeholder symbol included). The
// layout is two header lines (column symbols, column indices), a rule, then
// one line per row: symbol, index, "|", and every cell right-aligned in a
// field of six. Unset cells are written as "inf".
//
// Errors:
//   - ErrNilTable if t is nil.
//   - ErrLabelMismatch if label lengths differ from the table shape.
//   - any error from w.
func Format(w io.Writer, t *Table, rowLabels, colLabels string) error {
	if t == nil {
		return ErrNilTable
	}
	if len(rowLabels) != t.r || len(colLabels) != t.c {
		return fmt.Errorf("Format: rows %d/%d, cols %d/%d: %w",
			len(rowLabels), t.r, len(colLabels), t.c, ErrLabelMismatch)
	}

	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "%*c", leftLabelWidth, ' ')
	for j := 0; j < t.c; j++ {
		fmt.Fprintf(bw, "%*c", fieldWidth, colLabels[j])
	}
	bw.WriteByte('\n')

	fmt.Fprintf(bw, "%*c", leftLabelWidth, ' ')
	for j := 0; j < t.c; j++ {
		fmt.Fprintf(bw, "%*d", fieldWidth, j)
	}
	bw.WriteByte('\n')

	fmt.Fprintf(bw, "%*c", leftLabelWidth, '+')
	for j := 0; j < t.c; j++ {
		fmt.Fprintf(bw, "%*s", fieldWidth, ruleLiteral)
	}
	bw.WriteByte('\n')

	for i := 0; i < t.r; i++ {
		fmt.Fprintf(bw, "%c%*d |", rowLabels[i], leftIndexWidth, i)
		for j := 0; j < t.c; j++ {
			off := i*t.c + j
			if t.set[off] {
				fmt.Fprintf(bw, "%*d", fieldWidth, t.data[off])
			} else {
				fmt.Fprintf(bw, "%*s", fieldWidth, unsetLiteral)
			}
		}
		bw.WriteByte('\n')
	}

	return bw.Flush()
}
