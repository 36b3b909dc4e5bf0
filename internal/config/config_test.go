package config_test

import (
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/seqalign/align"
	"github.com/katalvlaran/seqalign/internal/config"
)

func newViper() *viper.Viper {
	v := viper.New()
	config.SetDefaults(v)

	return v
}

// TestLoad_Defaults checks the zero-input configuration.
func TestLoad_Defaults(t *testing.T) {
	c, err := config.Load(newViper())
	require.NoError(t, err)

	assert.Equal(t, align.Penalties{Match: 1, Mismatch: -1, Gap: -1}, c.Penalties)
	assert.Equal(t, "recursive", c.Strategy)
	assert.Equal(t, "flush", c.Tail)
	assert.True(t, c.ShowTable)
	assert.Equal(t, "text", c.Log.Format)

	opts, err := c.Options()
	require.NoError(t, err)
	assert.Len(t, opts, 2)
}

// TestLoad_File reads a YAML config file.
func TestLoad_File(t *testing.T) {
	v := newViper()
	v.SetConfigType("yaml")
	require.NoError(t, v.ReadConfig(strings.NewReader(`
penalties:
  match: 2
  mismatch: -1
  gap: -3
strategy: iterative
tail: truncate
show-table: false
log:
  level: 2
  format: json
`)))

	c, err := config.Load(v)
	require.NoError(t, err)
	assert.Equal(t, align.Penalties{Match: 2, Mismatch: -1, Gap: -3}, c.Penalties)
	assert.Equal(t, "iterative", c.Strategy)
	assert.Equal(t, "truncate", c.Tail)
	assert.False(t, c.ShowTable)

	lc := c.Logging()
	assert.Equal(t, 2, lc.Level)
	assert.Equal(t, "json", lc.Format)

	// options drive the engine as configured
	opts, err := c.Options()
	require.NoError(t, err)
	res, err := align.Align("AB", "B", c.Penalties, opts...)
	require.NoError(t, err)
	assert.Equal(t, align.Alignment{S: "B", T: "B"}, res.Alignment)
}

// TestLoad_Env reads settings from NWALIGN_* variables.
func TestLoad_Env(t *testing.T) {
	t.Setenv("NWALIGN_STRATEGY", "iterative")
	t.Setenv("NWALIGN_PENALTIES_GAP", "-5")

	c, err := config.Load(newViper())
	require.NoError(t, err)
	assert.Equal(t, "iterative", c.Strategy)
	assert.Equal(t, -5, c.Penalties.Gap)
}

// TestValidate_AggregatesErrors reports every problem at once.
func TestValidate_AggregatesErrors(t *testing.T) {
	v := newViper()
	v.Set(config.KeyStrategy, "wavefront")
	v.Set(config.KeyTail, "pad")
	v.Set(config.KeyLogFormat, "xml")
	v.Set(config.KeyLogLevel, 9)

	_, err := config.Load(v)
	require.Error(t, err)
	assert.ErrorIs(t, err, align.ErrOptionViolation)
	assert.ErrorIs(t, err, config.ErrInvalid)

	msg := err.Error()
	for _, want := range []string{"wavefront", "pad", "xml", "9"} {
		assert.Contains(t, msg, want)
	}
}

// TestOptions_Invalid rejects unvalidated names.
func TestOptions_Invalid(t *testing.T) {
	_, err := config.Config{Strategy: "recursive", Tail: "sideways"}.Options()
	require.ErrorIs(t, err, align.ErrOptionViolation)

	_, err = config.Config{Strategy: "", Tail: "flush"}.Options()
	require.ErrorIs(t, err, align.ErrOptionViolation)
}
