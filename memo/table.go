// SPDX-License-Identifier: MIT

// Package memo - dense write-once score table (row-major) & fail-fast accessors.
//
// Purpose:
//   - Hold one alignment score per (prefix of s, prefix of t) pair.
//   - Track presence with an explicit flag per cell; no score value is reserved
//     as an "uncomputed" marker, so every int is a legal score.
//   - Enforce write-once cells: a score, once stored, is final.
//
// Complexity quicksheet:
//   - New: O(r*c); At/Set/IsSet: O(1); Reset: O(r*c).

package memo

import (
	"fmt"
)

// ---------- panic context tags ----------

const (
	ctxAt     = "At"
	ctxMustAt = "MustAt"
	ctxSet    = "Set"
	ctxIsSet  = "IsSet"
)

// tableErrorf wraps a sentinel with a uniform Table context and callsite indices.
func tableErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Table.%s(%d,%d): %w", method, row, col, err)
}

// Table is a row-major grid of scores with a parallel presence mask.
//   - r,c hold dimensions (rows, cols).
//   - data holds r*c scores (offset = i*c + j).
//   - set marks which cells hold a final score.
//   - filled counts set cells.
type Table struct {
	r, c   int
	data   []int
	set    []bool
	filled int
}

// New creates an r×c table with every cell unset.
// MAIN DESCRIPTION:
//   - Public constructor with strict shape validation.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrBadShape.
//   - Stage 2: allocate score and presence buffers (zero-filled, all unset).
//
// Errors:
//   - ErrBadShape (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func New(rows, cols int) (*Table, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("New(%d,%d): %w", rows, cols, ErrBadShape)
	}

	return &Table{
		r:    rows,
		c:    cols,
		data: make([]int, rows*cols),
		set:  make([]bool, rows*cols),
	}, nil
}

// Rows returns the row count.
func (t *Table) Rows() int { return t.r }

// Cols returns the column count.
func (t *Table) Cols() int { return t.c }

// Shape packs Rows() and Cols() into a single call.
func (t *Table) Shape() (rows, cols int) { return t.r, t.c }

// Filled reports how many cells hold a score.
func (t *Table) Filled() int { return t.filled }

// offset computes the row-major offset or panics with ErrOutOfRange.
// Out-of-range access is a defect in the caller, never a runtime condition
// the engine can recover from, so it fails loudly instead of returning.
func (t *Table) offset(method string, row, col int) int {
	if row < 0 || row >= t.r || col < 0 || col >= t.c {
		panic(tableErrorf(method, row, col, ErrOutOfRange))
	}

	return row*t.c + col
}

// At returns the score at (row, col) and whether the cell is set.
// An unset cell reports (0, false).
// Panics if (row, col) is out of range.
func (t *Table) At(row, col int) (int, bool) {
	off := t.offset(ctxAt, row, col)
	if !t.set[off] {
		return 0, false
	}

	return t.data[off], true
}

// MustAt returns the score at (row, col).
// Panics if (row, col) is out of range or the cell is unset.
func (t *Table) MustAt(row, col int) int {
	off := t.offset(ctxMustAt, row, col)
	if !t.set[off] {
		panic(tableErrorf(ctxMustAt, row, col, ErrUnset))
	}

	return t.data[off]
}

// IsSet reports whether (row, col) holds a score.
// Panics if (row, col) is out of range.
func (t *Table) IsSet(row, col int) bool {
	return t.set[t.offset(ctxIsSet, row, col)]
}

// Set stores v at (row, col).
// MAIN DESCRIPTION:
//   - Write-once store: the first Set of a cell is final.
//
// Implementation:
//   - Stage 1: bounds check (panic with ErrOutOfRange).
//   - Stage 2: reject a second write (panic with ErrAlreadySet).
//   - Stage 3: store value, raise presence flag, bump fill counter.
//
// Complexity:
//   - Time O(1), Space O(1).
func (t *Table) Set(row, col, v int) {
	off := t.offset(ctxSet, row, col)
	if t.set[off] {
		panic(tableErrorf(ctxSet, row, col, ErrAlreadySet))
	}
	t.data[off] = v
	t.set[off] = true
	t.filled++
}

// Reset clears every cell back to unset so the table can be reused for
// another run of the same shape.
func (t *Table) Reset() {
	for i := range t.set {
		t.set[i] = false
		t.data[i] = 0
	}
	t.filled = 0
}

// String renders the table one row per line; unset cells print as "inf".
func (t *Table) String() string {
	var out []byte
	for i := 0; i < t.r; i++ {
		out = append(out, '[')
		for j := 0; j < t.c; j++ {
			off := i*t.c + j
			if t.set[off] {
				out = fmt.Appendf(out, "%d", t.data[off])
			} else {
				out = append(out, unsetLiteral...)
			}
			if j < t.c-1 {
				out = append(out, ", "...)
			}
		}
		out = append(out, "]\n"...)
	}

	return string(out)
}
