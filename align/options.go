package align

import (
	"fmt"
	"strings"
)

// Strategy selects how the memo table is evaluated.
//
//   - Recursive: top-down memoized recursion from the final cell. Stack
//     depth grows with |s|+|t|.
//   - Iterative: bottom-up fill, row 0 and column 0 first, then rows in
//     order. Same recurrence and tie-break, no recursion.
type Strategy int

const (
	// Recursive evaluates cells on demand from (|s|-1, |t|-1).
	Recursive Strategy = iota
	// Iterative fills every cell in dependency order.
	Iterative
)

// String implements fmt.Stringer.
func (s Strategy) String() string {
	switch s {
	case Recursive:
		return "recursive"
	case Iterative:
		return "iterative"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy maps "recursive" or "iterative" (any case) to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "recursive":
		return Recursive, nil
	case "iterative":
		return Iterative, nil
	default:
		return 0, fmt.Errorf("%w: unknown strategy %q", ErrOptionViolation, name)
	}
}

// Tail decides what Traceback does once the walk reaches row 0 or column 0
// while the other index is still positive.
//
//   - TailFlush   : emit the remaining prefix against gaps; removing the
//     gap markers from the output reproduces both inputs.
//   - TailTruncate: stop at the boundary and drop the remainder.
type Tail int

const (
	// TailFlush aligns the leftover prefix against gaps.
	TailFlush Tail = iota
	// TailTruncate stops the walk at row 0 or column 0.
	TailTruncate
)

// String implements fmt.Stringer.
func (t Tail) String() string {
	switch t {
	case TailFlush:
		return "flush"
	case TailTruncate:
		return "truncate"
	default:
		return fmt.Sprintf("Tail(%d)", int(t))
	}
}

// ParseTail maps "flush" or "truncate" (any case) to a Tail.
func ParseTail(name string) (Tail, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "flush":
		return TailFlush, nil
	case "truncate":
		return TailTruncate, nil
	default:
		return 0, fmt.Errorf("%w: unknown tail policy %q", ErrOptionViolation, name)
	}
}

// Option configures scoring and traceback via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation by the
// call it is passed to.
type Option func(*Options)

// Options holds the tunables shared by Score, Fill, Traceback and Align.
type Options struct {
	// Strategy used by Align to evaluate the table.
	Strategy Strategy

	// Tail policy used by Traceback.
	Tail Tail

	// OnCell is called after every cell write with its coordinates and score.
	OnCell func(i, j, score int)

	// penalties, when set, lets Traceback verify diagonal steps too.
	penalties *Penalties

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - Recursive strategy
//   - TailFlush
//   - a no-op OnCell hook
//   - no diagonal verification in Traceback.
func DefaultOptions() Options {
	return Options{
		Strategy: Recursive,
		Tail:     TailFlush,
		OnCell:   func(int, int, int) {},
	}
}

// WithStrategy selects the evaluation strategy.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		switch s {
		case Recursive, Iterative:
			o.Strategy = s
		default:
			o.err = fmt.Errorf("%w: strategy %d", ErrOptionViolation, int(s))
		}
	}
}

// WithTail selects the traceback tail policy.
func WithTail(t Tail) Option {
	return func(o *Options) {
		switch t {
		case TailFlush, TailTruncate:
			o.Tail = t
		default:
			o.err = fmt.Errorf("%w: tail policy %d", ErrOptionViolation, int(t))
		}
	}
}

// WithOnCell registers a callback run after each cell write.
func WithOnCell(fn func(i, j, score int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnCell = fn
		}
	}
}

// WithPenalties gives Traceback the match/mismatch values so a diagonal
// step is accepted only when it reproduces the cell's score. Without it a
// diagonal step is taken whenever neither gap step fits.
func WithPenalties(p Penalties) Option {
	return func(o *Options) {
		o.penalties = &p
	}
}

// resolve applies opts over DefaultOptions.
func resolve(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.err != nil {
		return Options{}, o.err
	}

	return o, nil
}
