package memo_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/katalvlaran/seqalign/memo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFormatLayout verifies the labelled grid layout cell by cell.
func TestFormatLayout(t *testing.T) {
	tbl, err := memo.New(2, 2)
	require.NoError(t, err)
	tbl.Set(0, 0, 0)
	tbl.Set(0, 1, -2)
	tbl.Set(1, 0, -2)
	// (1,1) stays unset

	var buf bytes.Buffer
	require.NoError(t, memo.Format(&buf, tbl, " A", " A"))

	blank := strings.Repeat(" ", 6)
	want := strings.Join([]string{
		blank + blank + "     A",
		blank + "     0" + "     1",
		"     +" + "   ---" + "   ---",
		" " + "  0" + " |" + "     0" + "    -2",
		"A" + "  1" + " |" + "    -2" + "   inf",
	}, "\n") + "\n"

	assert.Equal(t, want, buf.String())
}

// TestFormatErrors covers nil tables and mismatched labels.
func TestFormatErrors(t *testing.T) {
	var buf bytes.Buffer
	require.ErrorIs(t, memo.Format(&buf, nil, "", ""), memo.ErrNilTable)

	tbl, err := memo.New(2, 3)
	require.NoError(t, err)
	require.ErrorIs(t, memo.Format(&buf, tbl, " A", " A"), memo.ErrLabelMismatch)
	require.ErrorIs(t, memo.Format(&buf, tbl, " AB", " AB"), memo.ErrLabelMismatch)
	require.Zero(t, buf.Len(), "nothing is written on validation failure")
}

type failingWriter struct{}

var errWrite = errors.New("write failed")

func (failingWriter) Write([]byte) (int, error) { return 0, errWrite }

// TestFormatWriterError surfaces the writer's error.
func TestFormatWriterError(t *testing.T) {
	tbl, err := memo.New(1, 1)
	require.NoError(t, err)

	require.ErrorIs(t, memo.Format(failingWriter{}, tbl, " ", " "), errWrite)
}
