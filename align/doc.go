// Package align computes optimal global alignments of two symbol sequences
// under a match / mismatch / gap scoring scheme.
//
// 🚀 What is global alignment?
//
//	Given s and t, insert gap markers into both so that they have equal
//	length and the column-wise score is maximal:
//	  • equal symbols in a column score Match
//	  • different symbols score Mismatch
//	  • a symbol against a gap scores Gap
//
// ✨ Key features:
//   - memoized top-down recursion (Score) over a write-once memo.Table
//   - bottom-up evaluation (Fill) with identical results and no recursion
//   - deterministic traceback with a fixed predecessor order (Up, Left,
//     Diagonal) verified against the table
//   - explicit tail policy when the walk meets row 0 or column 0
//   - instrumentation (Stats) and an OnCell hook
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/seqalign/align"
//
//	p := align.Penalties{Match: 2, Mismatch: -1, Gap: -1}
//	res, err := align.Align("AC", "AGC", p)
//	// res.Score == 3
//	// res.Alignment.S == "A-C"
//	// res.Alignment.T == "AGC"
//
// Lower level, with a caller-owned table:
//
//	s, t := align.NewSequence("AC"), align.NewSequence("AGC")
//	tbl, _ := align.NewTable(s, t)
//	score, _ := align.Score(s, t, tbl, p)
//	aln, _ := align.Traceback(tbl, s, t, p.Gap, align.WithPenalties(p))
//
// Sequences carry a Placeholder at index 0 so that row 0 and column 0 of
// the table stand for the empty prefix.
//
// Performance:
//
//   - Time:   O(|s|·|t|)
//   - Memory: O(|s|·|t|) table; Recursive adds O(|s|+|t|) stack.
package align
