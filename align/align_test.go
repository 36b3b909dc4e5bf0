package align_test

import (
	"testing"

	"github.com/katalvlaran/seqalign/align"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAlign_Strategies verifies both strategies agree end to end.
func TestAlign_Strategies(t *testing.T) {
	p := align.Penalties{Match: 2, Mismatch: -1, Gap: -1}

	rec, err := align.Align("GATTACA", "GCATGCU", p)
	require.NoError(t, err)
	it, err := align.Align("GATTACA", "GCATGCU", p, align.WithStrategy(align.Iterative))
	require.NoError(t, err)

	assert.Equal(t, rec.Score, it.Score)
	assert.Equal(t, rec.Alignment, it.Alignment)
	assert.Equal(t, rec.Table.String(), it.Table.String())
	assert.Equal(t, len(rec.Alignment.S), len(rec.Alignment.T))

	// Fill visits every cell once; the recursion also counts memo hits
	cells := rec.S.Len() * rec.T.Len()
	assert.Equal(t, align.Stats{Calls: cells, Hits: 0, Writes: cells}, it.Stats)
	assert.Equal(t, cells, rec.Stats.Writes)
	assert.Greater(t, rec.Stats.Hits, 0)
}

// TestAlign_Scenario reproduces the reference scenario through the one-shot API.
func TestAlign_Scenario(t *testing.T) {
	res, err := align.Align("AC", "AGC", align.Penalties{Match: 2, Mismatch: -1, Gap: -1})
	require.NoError(t, err)

	assert.Equal(t, 3, res.Score)
	assert.Equal(t, align.Alignment{S: "A-C", T: "AGC"}, res.Alignment)
	assert.Equal(t, " AC", res.S.Raw())
	assert.Equal(t, " AGC", res.T.Raw())
	r, c := res.Table.Shape()
	assert.Equal(t, 3, r)
	assert.Equal(t, 4, c)
}

// TestAlign_EmptyInputs aligns the logical empty strings.
func TestAlign_EmptyInputs(t *testing.T) {
	res, err := align.Align("", "", align.Penalties{Match: 1, Mismatch: -1, Gap: -1})
	require.NoError(t, err)
	assert.Zero(t, res.Score)
	assert.Equal(t, align.Alignment{}, res.Alignment)
	assert.Equal(t, 1, res.Table.Filled())
}

// TestAlign_Options covers option plumbing and rejection.
func TestAlign_Options(t *testing.T) {
	p := align.Penalties{Match: 1, Mismatch: -1, Gap: -1}

	_, err := align.Align("A", "A", p, align.WithStrategy(align.Strategy(-1)))
	require.ErrorIs(t, err, align.ErrOptionViolation)

	var hooked int
	res, err := align.Align("AB", "B", p,
		align.WithTail(align.TailTruncate),
		align.WithOnCell(func(int, int, int) { hooked++ }),
		nil, // nil options are ignored
	)
	require.NoError(t, err)
	assert.Equal(t, align.Alignment{S: "B", T: "B"}, res.Alignment)
	assert.Equal(t, res.Stats.Writes, hooked)
}

// TestParse covers the textual strategy and tail names.
func TestParse(t *testing.T) {
	s, err := align.ParseStrategy(" Iterative ")
	require.NoError(t, err)
	assert.Equal(t, align.Iterative, s)
	assert.Equal(t, "iterative", s.String())

	s, err = align.ParseStrategy("recursive")
	require.NoError(t, err)
	assert.Equal(t, align.Recursive, s)

	_, err = align.ParseStrategy("wavefront")
	require.ErrorIs(t, err, align.ErrOptionViolation)

	tail, err := align.ParseTail("TRUNCATE")
	require.NoError(t, err)
	assert.Equal(t, align.TailTruncate, tail)
	assert.Equal(t, "truncate", tail.String())

	tail, err = align.ParseTail("flush")
	require.NoError(t, err)
	assert.Equal(t, align.TailFlush, tail)

	_, err = align.ParseTail("pad")
	require.ErrorIs(t, err, align.ErrOptionViolation)

	assert.Equal(t, "Strategy(7)", align.Strategy(7).String())
	assert.Equal(t, "Tail(7)", align.Tail(7).String())
	assert.Equal(t, "Move(7)", align.Move(7).String())
}

// TestPenalties covers substitution and rendering.
func TestPenalties(t *testing.T) {
	p := align.Penalties{Match: 2, Mismatch: -1, Gap: -3}
	assert.Equal(t, 2, p.Substitution('A', 'A'))
	assert.Equal(t, -1, p.Substitution('A', 'a'), "comparison is exact byte equality")
	assert.Equal(t, "match=2 mismatch=-1 gap=-3", p.String())
}
