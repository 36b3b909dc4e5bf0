package main

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"cloudeng.io/logging/ctxlog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/seqalign/align"
	"github.com/katalvlaran/seqalign/internal/config"
	"github.com/katalvlaran/seqalign/memo"
)

const version = "0.1.0"

// newRootCmd builds the nwalign command with its own Viper instance.
func newRootCmd() *cobra.Command {
	v := viper.New()
	config.SetDefaults(v)

	var cfgFile string

	cmd := &cobra.Command{
		Use:   "nwalign [flags] <s> <t> [<match> <mismatch> <gap>]",
		Short: "Compute the optimal global alignment of two strings",
		Long: `Compute the optimal global alignment of two strings

"nwalign" scores every pair of prefixes of s and t with a memoized recurrence
(match reward, mismatch penalty, gap penalty), prints the completed memo table
and one optimal alignment. The three penalties may be given positionally or
through flags, NWALIGN_* environment variables, or a config file.

Flags must precede <s> so that negative penalties are read as arguments:

  nwalign --strategy iterative AC AGC 2 -1 -1`,
		Args:         validateArgs,
		Version:      version,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfgFile != "" {
				v.SetConfigFile(cfgFile)
				if err := v.ReadInConfig(); err != nil {
					return fmt.Errorf("reading config %q: %w", cfgFile, err)
				}
			}
			cfg, err := config.Load(v)
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			return run(ctx, cmd.OutOrStdout(), cfg, args)
		},
	}

	f := cmd.Flags()
	// everything after the first argument is positional, "-1" included
	f.SetInterspersed(false)
	f.StringVar(&cfgFile, "config", "", "path to a config file (yaml, json or toml)")
	f.Int("match", 1, "score of two equal symbols")
	f.Int("mismatch", -1, "score of two different symbols")
	f.Int("gap", -1, "score of a symbol against a gap")
	f.String("strategy", align.Recursive.String(), "table evaluation: recursive or iterative")
	f.String("tail", align.TailFlush.String(), "traceback boundary policy: flush or truncate")
	f.Bool("show-table", true, "print the completed memo table")
	f.Int("log-level", 0, "logging level: 0=error, 1=warn, 2=info, 3=debug")
	f.String("log-format", "text", "log format: text or json")
	f.String("log-file", "", "log file path, '-' for stdout (default stderr)")

	// Bind the flags to viper
	for key, flag := range map[string]string{
		config.KeyMatch:     "match",
		config.KeyMismatch:  "mismatch",
		config.KeyGap:       "gap",
		config.KeyStrategy:  "strategy",
		config.KeyTail:      "tail",
		config.KeyShowTable: "show-table",
		config.KeyLogLevel:  "log-level",
		config.KeyLogFormat: "log-format",
		config.KeyLogFile:   "log-file",
	} {
		_ = v.BindPFlag(key, f.Lookup(flag))
	}

	return cmd
}

// validateArgs accepts two strings, optionally followed by all three penalties.
func validateArgs(_ *cobra.Command, args []string) error {
	if len(args) != 2 && len(args) != 5 {
		return fmt.Errorf("expected <s> <t> [<match> <mismatch> <gap>], got %d arguments", len(args))
	}

	return nil
}

// penaltiesFromArgs overrides p with positional penalties when present.
func penaltiesFromArgs(p align.Penalties, args []string) (align.Penalties, error) {
	if len(args) < 5 {
		return p, nil
	}
	fields := []struct {
		name string
		dst  *int
		arg  string
	}{
		{"match", &p.Match, args[2]},
		{"mismatch", &p.Mismatch, args[3]},
		{"gap", &p.Gap, args[4]},
	}
	for _, fl := range fields {
		n, err := strconv.Atoi(fl.arg)
		if err != nil {
			return p, fmt.Errorf("invalid %s penalty: %w", fl.name, err)
		}
		*fl.dst = n
	}

	return p, nil
}

// run aligns args[0] with args[1] and writes the report to out.
func run(ctx context.Context, out io.Writer, cfg config.Config, args []string) error {
	p, err := penaltiesFromArgs(cfg.Penalties, args)
	if err != nil {
		return err
	}
	opts, err := cfg.Options()
	if err != nil {
		return err
	}

	logger, err := cfg.Logging().NewLogger()
	if err != nil {
		return err
	}
	defer logger.Close()
	ctx = ctxlog.Context(ctx, logger.Logger)
	ctx = ctxlog.ContextWith(ctx, "strategy", cfg.Strategy, "tail", cfg.Tail)

	ctxlog.Logger(ctx).Debug("aligning", "s", args[0], "t", args[1], "penalties", p.String())
	res, err := align.Align(args[0], args[1], p, opts...)
	if err != nil {
		ctxlog.Logger(ctx).Error("alignment failed", "error", err)
		return err
	}
	ctxlog.Logger(ctx).Info("alignment complete",
		"score", res.Score,
		"calls", res.Stats.Calls,
		"hits", res.Stats.Hits,
		"writes", res.Stats.Writes,
	)

	return report(out, res, p, cfg.ShowTable)
}

// report prints penalties, score, the memo table and the aligned strings.
func report(out io.Writer, res *align.Result, p align.Penalties, showTable bool) error {
	fmt.Fprintf(out, "match: %d\nmismatch: %d\ngap: %d\n", p.Match, p.Mismatch, p.Gap)
	fmt.Fprintf(out, "The optimal alignment score between %s and %s is %d\n", res.S, res.T, res.Score)

	if showTable {
		fmt.Fprint(out, "\nThe completed memo table: \n\n")
		if err := memo.Format(out, res.Table, res.S.Raw(), res.T.Raw()); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(out, "\nThe aligned strings:\n%s\n%s\n", res.Alignment.S, res.Alignment.T)

	return err
}
