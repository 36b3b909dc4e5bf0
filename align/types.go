package align

import "fmt"

// Placeholder is the symbol stored at index 0 of every Sequence. Row 0 and
// column 0 of the memo table stand for the empty prefix it represents.
const Placeholder byte = ' '

// GapMarker is written into aligned output where a symbol faces a gap.
const GapMarker byte = '-'

// Sequence is an immutable run of single-byte symbols whose index 0 is the
// placeholder. Len counts the placeholder; Symbols omits it.
type Sequence struct {
	raw string
}

// NewSequence returns symbols prefixed with the Placeholder.
func NewSequence(symbols string) Sequence {
	return Sequence{raw: string(Placeholder) + symbols}
}

// SequenceFromRaw wraps a string that already carries a placeholder at
// index 0. An empty string has no placeholder and is rejected.
func SequenceFromRaw(raw string) (Sequence, error) {
	if len(raw) == 0 {
		return Sequence{}, ErrEmptySequence
	}

	return Sequence{raw: raw}, nil
}

// Len returns the physical length, placeholder included.
func (s Sequence) Len() int { return len(s.raw) }

// At returns the symbol at index i (0 is the placeholder).
func (s Sequence) At(i int) byte { return s.raw[i] }

// Symbols returns the logical sequence without the placeholder.
func (s Sequence) Symbols() string {
	if len(s.raw) == 0 {
		return ""
	}

	return s.raw[1:]
}

// Raw returns the sequence including the placeholder.
func (s Sequence) Raw() string { return s.raw }

// String implements fmt.Stringer.
func (s Sequence) String() string { return s.raw }

// Penalties is the immutable scoring configuration of a run.
// Any signed values are accepted; nothing requires Match > Mismatch or a
// negative Gap.
type Penalties struct {
	Match    int `mapstructure:"match" json:"match"`
	Mismatch int `mapstructure:"mismatch" json:"mismatch"`
	Gap      int `mapstructure:"gap" json:"gap"`
}

// Substitution returns Match when a == b and Mismatch otherwise.
func (p Penalties) Substitution(a, b byte) int {
	if a == b {
		return p.Match
	}

	return p.Mismatch
}

// String implements fmt.Stringer.
func (p Penalties) String() string {
	return fmt.Sprintf("match=%d mismatch=%d gap=%d", p.Match, p.Mismatch, p.Gap)
}

// Move names the predecessor a cell's score is derived from.
type Move int

const (
	// Diagonal aligns s[i] with t[j]; predecessor (i-1, j-1).
	Diagonal Move = iota
	// Up aligns s[i] with a gap; predecessor (i-1, j).
	Up
	// Left aligns t[j] with a gap; predecessor (i, j-1).
	Left
)

// String implements fmt.Stringer.
func (m Move) String() string {
	switch m {
	case Diagonal:
		return "diagonal"
	case Up:
		return "up"
	case Left:
		return "left"
	default:
		return fmt.Sprintf("Move(%d)", int(m))
	}
}

// from returns the predecessor coordinates of (i, j) for m.
func (m Move) from(i, j int) (int, int) {
	switch m {
	case Up:
		return i - 1, j
	case Left:
		return i, j - 1
	default:
		return i - 1, j - 1
	}
}

// scoreOrder is the tie-break of the scoring maximum: the first candidate
// in this order among those with the highest value wins.
var scoreOrder = [...]Move{Diagonal, Up, Left}

// traceOrder is the order in which Traceback tests predecessors. Any move
// whose predecessor plus step cost equals the cell is an optimal step, so
// the order only selects which of several optimal alignments is returned.
var traceOrder = [...]Move{Up, Left, Diagonal}

// ScorePriority returns the scoring tie-break order (Diagonal, Up, Left).
func ScorePriority() []Move { return append([]Move(nil), scoreOrder[:]...) }

// TracePriority returns the traceback preference order (Up, Left, Diagonal).
func TracePriority() []Move { return append([]Move(nil), traceOrder[:]...) }

// Alignment is one optimal alignment: two equal-length strings where
// GapMarker marks a symbol aligned against a gap.
type Alignment struct {
	S string
	T string
}

// Len returns the number of aligned columns.
func (a Alignment) Len() int { return len(a.S) }

// Stats counts the work done by an Engine.
//   - Calls:  cell evaluations requested (recursive calls, or cells visited by Fill).
//   - Hits:   requests answered from the memo table.
//   - Writes: cells computed and stored.
type Stats struct {
	Calls  int
	Hits   int
	Writes int
}
