package align

import (
	"fmt"

	"github.com/katalvlaran/seqalign/memo"
)

// Engine evaluates the global alignment recurrence over a memo table.
//
// Recurrence, for 0 ≤ i < |s|, 0 ≤ j < |t|:
//
//	opt(0, 0) = 0
//	opt(0, j) = opt(0, j-1) + gap
//	opt(i, 0) = opt(i-1, 0) + gap
//	opt(i, j) = max( opt(i-1, j-1) + sub(s[i], t[j]),   // Diagonal
//	                 opt(i-1, j)   + gap,                // Up
//	                 opt(i, j-1)   + gap )               // Left
//
// where sub is Match for equal symbols and Mismatch otherwise. Ties go to
// the earliest candidate in the order Diagonal, Up, Left.
//
// An Engine is single-threaded; the table it owns for the run must not be
// written by anyone else.
type Engine struct {
	s, t   Sequence
	tbl    *memo.Table
	p      Penalties
	onCell func(i, j, score int)
	stats  Stats
}

// NewTable allocates an unset memo table sized |s|×|t|.
func NewTable(s, t Sequence) (*memo.Table, error) {
	if s.Len() == 0 || t.Len() == 0 {
		return nil, ErrEmptySequence
	}

	return memo.New(s.Len(), t.Len())
}

// NewEngine binds two sequences, a memo table and a penalty set.
//
// Errors:
//   - ErrEmptySequence if either sequence lacks its placeholder.
//   - ErrNilTable / ErrTableShape if tbl is not an |s|×|t| table.
//   - ErrOptionViolation for invalid options.
func NewEngine(s, t Sequence, tbl *memo.Table, p Penalties, opts ...Option) (*Engine, error) {
	if s.Len() == 0 || t.Len() == 0 {
		return nil, ErrEmptySequence
	}
	if err := checkShape(tbl, s, t); err != nil {
		return nil, err
	}
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}

	return &Engine{s: s, t: t, tbl: tbl, p: p, onCell: o.OnCell}, nil
}

// checkShape validates that tbl exists and has one cell per prefix pair.
func checkShape(tbl *memo.Table, s, t Sequence) error {
	if tbl == nil {
		return ErrNilTable
	}
	if r, c := tbl.Shape(); r != s.Len() || c != t.Len() {
		return fmt.Errorf("%w: table %dx%d, sequences %dx%d", ErrTableShape, r, c, s.Len(), t.Len())
	}

	return nil
}

// Table returns the memo table the engine writes into.
func (e *Engine) Table() *memo.Table { return e.tbl }

// Stats returns the counters accumulated so far.
func (e *Engine) Stats() Stats { return e.stats }

// Score evaluates the final cell (|s|-1, |t|-1) recursively.
func (e *Engine) Score() int {
	return e.Opt(e.s.Len()-1, e.t.Len()-1)
}

// Opt returns the optimal score of aligning s[0..i] with t[0..j].
// A set cell is returned as is; otherwise the cell is computed from its
// predecessors (recursing into unset ones) and stored exactly once.
// Indices outside the table panic.
func (e *Engine) Opt(i, j int) int {
	e.stats.Calls++
	if v, ok := e.tbl.At(i, j); ok {
		e.stats.Hits++
		return v
	}
	v := e.cell(i, j, e.Opt)
	e.store(i, j, v)

	return v
}

// Fill evaluates every unset cell bottom-up, row by row, and returns the
// final cell's score. Cells already present (from an earlier Opt or Fill)
// are kept as they are.
func (e *Engine) Fill() int {
	rows, cols := e.tbl.Shape()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			e.stats.Calls++
			if e.tbl.IsSet(i, j) {
				e.stats.Hits++
				continue
			}
			// predecessors precede (i, j) in row-major order, so they are set
			e.store(i, j, e.cell(i, j, e.tbl.MustAt))
		}
	}

	return e.tbl.MustAt(rows-1, cols-1)
}

// cell applies the recurrence at (i, j); sub supplies predecessor scores.
func (e *Engine) cell(i, j int, sub func(i, j int) int) int {
	switch {
	case i == 0 && j == 0:
		return 0
	case i == 0:
		return sub(0, j-1) + e.p.Gap
	case j == 0:
		return sub(i-1, 0) + e.p.Gap
	}

	var best int
	for k, m := range scoreOrder {
		pi, pj := m.from(i, j)
		v := sub(pi, pj) + e.step(m, i, j)
		// strict > keeps the earliest candidate on ties
		if k == 0 || v > best {
			best = v
		}
	}

	return best
}

// step returns the cost of entering (i, j) by m.
func (e *Engine) step(m Move, i, j int) int {
	if m == Diagonal {
		return e.p.Substitution(e.s.At(i), e.t.At(j))
	}

	return e.p.Gap
}

func (e *Engine) store(i, j, v int) {
	e.tbl.Set(i, j, v)
	e.stats.Writes++
	e.onCell(i, j, v)
}

// Score computes the optimal global alignment score of s and t with memoized
// recursion, filling tbl (which must be |s|×|t| and unset where not yet
// computed) along the way.
func Score(s, t Sequence, tbl *memo.Table, p Penalties, opts ...Option) (int, error) {
	e, err := NewEngine(s, t, tbl, p, opts...)
	if err != nil {
		return 0, err
	}

	return e.Score(), nil
}

// Fill computes the same score as Score by bottom-up iteration, filling
// every cell of tbl. It has no recursion depth limit.
func Fill(s, t Sequence, tbl *memo.Table, p Penalties, opts ...Option) (int, error) {
	e, err := NewEngine(s, t, tbl, p, opts...)
	if err != nil {
		return 0, err
	}

	return e.Fill(), nil
}
