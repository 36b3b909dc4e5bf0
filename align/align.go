package align

import (
	"github.com/katalvlaran/seqalign/memo"
)

// Result is the outcome of Align.
type Result struct {
	// S and T are the sequences as aligned, placeholder included.
	S, T Sequence
	// Score is the optimal global alignment score.
	Score int
	// Table is the evaluated memo table, |S|×|T|.
	Table *memo.Table
	// Alignment is one optimal alignment.
	Alignment Alignment
	// Stats counts the evaluation work.
	Stats Stats
}

// Align scores a against b and reconstructs one optimal alignment.
// a and b are given without placeholder; either may be empty.
//
// Stages:
//  1. Build both sequences and an unset |a|+1 × |b|+1 memo table.
//  2. Evaluate it with the selected Strategy (Recursive by default).
//  3. Traceback with diagonal verification against p.
//
// Example:
//
//	res, err := align.Align("AC", "AGC", align.Penalties{Match: 2, Mismatch: -1, Gap: -1})
//	// res.Score == 3, res.Alignment == {S: "A-C", T: "AGC"}
func Align(a, b string, p Penalties, opts ...Option) (*Result, error) {
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}

	s, t := NewSequence(a), NewSequence(b)
	tbl, err := NewTable(s, t)
	if err != nil {
		return nil, err
	}
	e, err := NewEngine(s, t, tbl, p, opts...)
	if err != nil {
		return nil, err
	}

	var score int
	switch o.Strategy {
	case Iterative:
		score = e.Fill()
	default:
		score = e.Score()
	}

	traceOpts := append(append([]Option(nil), opts...), WithPenalties(p))
	aln, err := Traceback(tbl, s, t, p.Gap, traceOpts...)
	if err != nil {
		return nil, err
	}

	return &Result{
		S:         s,
		T:         t,
		Score:     score,
		Table:     tbl,
		Alignment: aln,
		Stats:     e.Stats(),
	}, nil
}
