package align

import (
	"fmt"

	"github.com/katalvlaran/seqalign/memo"
)

// Traceback reconstructs one optimal alignment from an evaluated memo table.
//
// Algorithm Outline:
//  1. Start at (row, col) = (|s|-1, |t|-1).
//  2. While row > 0 and col > 0, test predecessors in the order Up, Left,
//     Diagonal and take the first one whose score plus the step cost equals
//     the current cell:
//     Up      : emit s[row] / GapMarker, row--
//     Left    : emit GapMarker / t[col], col--
//     Diagonal: emit s[row] / t[col], row--, col--
//  3. With TailFlush, emit what is left of s (or t) against gaps.
//  4. Reverse both outputs.
//
// Gap steps are checked against gap. The diagonal step is checked against
// Match/Mismatch only when WithPenalties is given; otherwise it is taken
// whenever neither gap step fits.
//
// Errors:
//   - ErrEmptySequence, ErrNilTable, ErrTableShape on bad arguments.
//   - ErrIncompleteTable if a cell needed by the walk is unset.
//   - ErrInconsistentTable if no predecessor reproduces a cell's score.
//   - ErrOptionViolation for invalid options.
//
// Complexity: O(|s|+|t|) time and memory.
func Traceback(tbl *memo.Table, s, t Sequence, gap int, opts ...Option) (Alignment, error) {
	if s.Len() == 0 || t.Len() == 0 {
		return Alignment{}, ErrEmptySequence
	}
	if err := checkShape(tbl, s, t); err != nil {
		return Alignment{}, err
	}
	o, err := resolve(opts)
	if err != nil {
		return Alignment{}, err
	}

	tr := tracer{tbl: tbl, s: s, t: t, gap: gap, penalties: o.penalties}
	row, col := s.Len()-1, t.Len()-1
	if _, err = tr.at(row, col); err != nil {
		return Alignment{}, err
	}

	capHint := row + col
	outS := make([]byte, 0, capHint)
	outT := make([]byte, 0, capHint)

	for row > 0 && col > 0 {
		m, err := tr.move(row, col)
		if err != nil {
			return Alignment{}, err
		}
		switch m {
		case Up:
			outS = append(outS, s.At(row))
			outT = append(outT, GapMarker)
		case Left:
			outS = append(outS, GapMarker)
			outT = append(outT, t.At(col))
		default:
			outS = append(outS, s.At(row))
			outT = append(outT, t.At(col))
		}
		row, col = m.from(row, col)
	}

	if o.Tail == TailFlush {
		for ; row > 0; row-- {
			outS = append(outS, s.At(row))
			outT = append(outT, GapMarker)
		}
		for ; col > 0; col-- {
			outS = append(outS, GapMarker)
			outT = append(outT, t.At(col))
		}
	}

	reverse(outS)
	reverse(outT)

	return Alignment{S: string(outS), T: string(outT)}, nil
}

// tracer holds the read-only state of one traceback walk.
type tracer struct {
	tbl       *memo.Table
	s, t      Sequence
	gap       int
	penalties *Penalties
}

// at reads a cell, reporting unset cells as ErrIncompleteTable.
func (tr *tracer) at(i, j int) (int, error) {
	v, ok := tr.tbl.At(i, j)
	if !ok {
		return 0, fmt.Errorf("%w: cell (%d,%d) unset", ErrIncompleteTable, i, j)
	}

	return v, nil
}

// move picks the predecessor of (i, j) following traceOrder.
func (tr *tracer) move(i, j int) (Move, error) {
	cur, err := tr.at(i, j)
	if err != nil {
		return 0, err
	}
	for _, m := range traceOrder {
		if m == Diagonal && tr.penalties == nil {
			return Diagonal, nil
		}
		pi, pj := m.from(i, j)
		prev, err := tr.at(pi, pj)
		if err != nil {
			return 0, err
		}
		if prev+tr.step(m, i, j) == cur {
			return m, nil
		}
	}

	return 0, fmt.Errorf("%w: cell (%d,%d)=%d", ErrInconsistentTable, i, j, cur)
}

func (tr *tracer) step(m Move, i, j int) int {
	if m == Diagonal {
		return tr.penalties.Substitution(tr.s.At(i), tr.t.At(j))
	}

	return tr.gap
}

// reverse reverses b in place.
func reverse(b []byte) {
	for l, r := 0, len(b)-1; l < r; l, r = l+1, r-1 {
		b[l], b[r] = b[r], b[l]
	}
}
