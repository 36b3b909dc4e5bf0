// Package seqalign is an in-memory toolkit for optimal global alignment of
// two symbol sequences, from the memo table up to a ready-to-run CLI.
//
// 🚀 What is in seqalign?
//
//	• memo/        - dense write-once score table with presence flags,
//	                 fail-fast indexing and a labelled text rendering
//	• align/       - match/mismatch/gap recurrence (memoized recursion or
//	                 bottom-up fill) and deterministic traceback
//	• cmd/nwalign  - command line front end (cobra + viper)
//
// ✨ Why seqalign?
//
//   - Deterministic – fixed, documented tie-break orders for scoring and
//     traceback
//   - Honest tables – no magic "uncomputed" score value; every int is legal
//   - Observable – Stats counters and an OnCell hook
//
// Quick example:
//
//	res, _ := align.Align("AC", "AGC", align.Penalties{Match: 2, Mismatch: -1, Gap: -1})
//	// res.Score == 3
//	// A-C
//	// AGC
//
//	go get github.com/katalvlaran/seqalign
package seqalign
