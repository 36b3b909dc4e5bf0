package align

import "errors"

// Sentinel errors for scoring and traceback. Context is attached with
// fmt.Errorf("...: %w", ErrX); callers match with errors.Is.
var (
	// ErrEmptySequence indicates a sequence without its leading placeholder.
	ErrEmptySequence = errors.New("align: sequence must contain the placeholder symbol")

	// ErrNilTable is returned when a nil memo table is supplied.
	ErrNilTable = errors.New("align: memo table is nil")

	// ErrTableShape is returned when the memo table is not |s|×|t|.
	ErrTableShape = errors.New("align: memo table shape does not match sequences")

	// ErrIncompleteTable is returned by Traceback when a cell on the walk is unset.
	ErrIncompleteTable = errors.New("align: memo table is not evaluated")

	// ErrInconsistentTable is returned by Traceback when no predecessor of a
	// cell reproduces its score under the supplied penalties.
	ErrInconsistentTable = errors.New("align: memo table inconsistent with penalties")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("align: invalid option supplied")
)
