// SPDX-License-Identifier: MIT
// Package memo: sentinel error set.
// Constructor and rendering failures are returned; index misuse and double
// writes are programmer errors and panic with a value wrapping one of these
// sentinels, so recover()-based tests can still match them via errors.Is.

package memo

import "errors"

var (
	// ErrBadShape is returned when requested shape is invalid (rows<=0 or cols<=0).
	ErrBadShape = errors.New("memo: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("memo: index out of range")

	// ErrAlreadySet signals a second write to a write-once cell.
	ErrAlreadySet = errors.New("memo: cell already set")

	// ErrUnset signals a read of a cell that holds no score yet.
	ErrUnset = errors.New("memo: cell is unset")

	// ErrNilTable indicates that a nil *Table was used.
	ErrNilTable = errors.New("memo: nil table")

	// ErrLabelMismatch is returned by Format when the row/column labels do
	// not match the table shape.
	ErrLabelMismatch = errors.New("memo: labels do not match table shape")
)
