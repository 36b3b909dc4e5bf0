// Package memo provides the dense score table behind sequence alignment.
//
// A Table has one cell per pair of prefixes (prefix of s, prefix of t),
// including the empty prefixes at row 0 and column 0. Every cell starts
// unset and may be written exactly once; presence is tracked by a flag, so
// no integer is reserved to mean "not yet computed".
//
// Misuse is fail-fast:
//   - out-of-range indices panic (wrapping ErrOutOfRange),
//   - a second Set of the same cell panics (wrapping ErrAlreadySet),
//   - MustAt on an unset cell panics (wrapping ErrUnset).
//
// Only construction (ErrBadShape) and rendering (ErrLabelMismatch) return
// errors, since those depend on caller-supplied data.
//
//	tbl, err := memo.New(3, 4)
//	tbl.Set(0, 0, 0)
//	v, ok := tbl.At(0, 0) // 0, true
//	_ = memo.Format(os.Stdout, tbl, " AC", " AGC")
package memo
