// Package config holds the run settings of the nwalign command, unmarshalled
// from Viper (flags, NWALIGN_* environment variables and an optional config
// file; see /cmd/nwalign).
package config

import (
	"fmt"
	"strings"

	"cloudeng.io/cmdutil"
	"cloudeng.io/errors"
	"github.com/spf13/viper"

	"github.com/katalvlaran/seqalign/align"
)

// Keys shared by the flag bindings and the config file.
const (
	KeyMatch     = "penalties.match"
	KeyMismatch  = "penalties.mismatch"
	KeyGap       = "penalties.gap"
	KeyStrategy  = "strategy"
	KeyTail      = "tail"
	KeyShowTable = "show-table"
	KeyLogLevel  = "log.level"
	KeyLogFormat = "log.format"
	KeyLogFile   = "log.file"
)

// ErrInvalid marks a setting outside its allowed values.
var ErrInvalid = errors.New("config: invalid setting")

// EnvPrefix is prepended to environment variable names, e.g. NWALIGN_STRATEGY.
const EnvPrefix = "NWALIGN"

// LogConfig selects the structured logger of a run.
type LogConfig struct {
	// 0=error, 1=warn, 2=info, 3=debug
	Level int `mapstructure:"level"`
	// text or json
	Format string `mapstructure:"format"`
	// empty for stderr, "-" for stdout, otherwise a file path
	File string `mapstructure:"file"`
}

// Config is the root-level settings struct.
type Config struct {
	// scoring scheme; the positional arguments override it
	Penalties align.Penalties `mapstructure:"penalties"`
	// recursive or iterative
	Strategy string `mapstructure:"strategy"`
	// flush or truncate
	Tail string `mapstructure:"tail"`
	// whether to print the evaluated memo table
	ShowTable bool `mapstructure:"show-table"`
	// logging settings
	Log LogConfig `mapstructure:"log"`
}

// SetDefaults registers the default value of every key on v and wires the
// environment lookup.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyMatch, 1)
	v.SetDefault(KeyMismatch, -1)
	v.SetDefault(KeyGap, -1)
	v.SetDefault(KeyStrategy, align.Recursive.String())
	v.SetDefault(KeyTail, align.TailFlush.String())
	v.SetDefault(KeyShowTable, true)
	v.SetDefault(KeyLogLevel, 0)
	v.SetDefault(KeyLogFormat, "text")
	v.SetDefault(KeyLogFile, "")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
}

// Load decodes v into a Config and validates it.
func Load(v *viper.Viper) (Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("config: unable to decode: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}

	return c, nil
}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	errs := &errors.M{}
	if _, err := align.ParseStrategy(c.Strategy); err != nil {
		errs.Append(fmt.Errorf("config: %w", err))
	}
	if _, err := align.ParseTail(c.Tail); err != nil {
		errs.Append(fmt.Errorf("config: %w", err))
	}
	switch c.Log.Format {
	case "text", "json", "":
	default:
		errs.Append(fmt.Errorf("config: %w: unknown log format %q", ErrInvalid, c.Log.Format))
	}
	if c.Log.Level < 0 || c.Log.Level > 3 {
		errs.Append(fmt.Errorf("config: %w: log level %d outside 0..3", ErrInvalid, c.Log.Level))
	}

	return errs.Err()
}

// Options translates the settings into alignment options.
// Call Validate first; unknown names are reported again here.
func (c Config) Options() ([]align.Option, error) {
	s, err := align.ParseStrategy(c.Strategy)
	if err != nil {
		return nil, err
	}
	t, err := align.ParseTail(c.Tail)
	if err != nil {
		return nil, err
	}

	return []align.Option{align.WithStrategy(s), align.WithTail(t)}, nil
}

// Logging returns the logger configuration for cmdutil.
func (c Config) Logging() cmdutil.LoggingConfig {
	return cmdutil.LoggingConfig{
		Level:  c.Log.Level,
		Format: c.Log.Format,
		File:   c.Log.File,
	}
}
