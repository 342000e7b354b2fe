package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/julianknutsen/oddsight/internal/analysis"
	"github.com/julianknutsen/oddsight/internal/config"
	"github.com/julianknutsen/oddsight/internal/report"
	"github.com/julianknutsen/oddsight/internal/telemetry"
	"github.com/julianknutsen/oddsight/internal/xdg"
)

// maxInputBytes bounds stdin reads; a hash is 128 bytes.
const maxInputBytes = 64 << 10

// configStore returns the store for --config or the XDG default.
func configStore(cmd *cobra.Command) config.Store {
	var override string
	if f := cmd.Flag("config"); f != nil {
		override = f.Value.String()
	}
	return config.NewStore(xdg.ConfigFile(override))
}

// loadConfig reads the stored settings without overrides or validation.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	return configStore(cmd).Load()
}

// resolveConfig returns the effective settings: file, then environment.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Resolve(configStore(cmd))
	if err != nil {
		return nil, configError(err)
	}
	return cfg, nil
}

// outputFormat returns --format when set, otherwise the configured format.
func outputFormat(cmd *cobra.Command, cfg *config.Config) string {
	if cmd.Flags().Changed("format") {
		f, _ := cmd.Flags().GetString("format")
		return f
	}
	return cfg.Format
}

// pauseDuration returns --pause when set, otherwise the configured pause.
func pauseDuration(cmd *cobra.Command, cfg *config.Config) (time.Duration, error) {
	if f := cmd.Flags().Lookup("pause"); f != nil && f.Changed {
		d, _ := cmd.Flags().GetDuration("pause")
		if d < 0 {
			return 0, fmt.Errorf("invalid --pause %v: must not be negative", d)
		}
		return d, nil
	}
	return cfg.PauseDuration()
}

// readInput returns the hash argument, reading stdin when it is "-" or
// absent.
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 && args[0] != "-" {
		return args[0], nil
	}
	data, err := io.ReadAll(io.LimitReader(cmd.InOrStdin(), maxInputBytes))
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return string(data), nil
}

// evaluate runs the pipeline on raw and logs the analysis at debug level.
func evaluate(raw string) (*analysis.Report, error) {
	r, err := analysis.Evaluate(raw)
	if err != nil {
		return nil, hintWrap(err)
	}
	a := r.Analysis
	slog.Debug("analysis",
		"hash", a.Hash.Short(),
		"entropy", fmt.Sprintf("%.3f", a.Entropy),
		"score", a.Score,
		"variance", fmt.Sprintf("%.2f", a.Variance),
		"checksum", a.Checksum,
		"patterns", strings.Join(a.Patterns.Names(), ","))
	return r, nil
}

// parseTargetFlag reads --target. ok is false when the flag was not given.
func parseTargetFlag(cmd *cobra.Command) (t analysis.Target, ok bool, err error) {
	if !cmd.Flags().Changed("target") {
		return 0, false, nil
	}
	raw, _ := cmd.Flags().GetString("target")
	t, err = analysis.ParseTarget(raw)
	if err != nil {
		return 0, false, hintWrap(err)
	}
	return t, true, nil
}

// writeReport renders r in format to w.
func writeReport(w io.Writer, format string, r *analysis.Report) error {
	sink, err := report.New(format, w)
	if err != nil {
		return hintWrap(err)
	}
	return sink.Write(r)
}

// reportError sends err to Sentry when a DSN is configured. Invalid input
// is the user's problem, not ours, and is not sent.
func reportError(root *cobra.Command, err error) {
	if errors.Is(err, errExit) {
		return
	}
	dsn := os.Getenv(telemetry.EnvDSN)
	if dsn == "" {
		if cfg, loadErr := loadConfig(root); loadErr == nil {
			dsn = cfg.SentryDSN
		}
	}
	if dsn == "" {
		return
	}
	rep, tErr := telemetry.New(telemetry.Options{
		DSN:     dsn,
		Release: "oddsight@" + version,
	})
	if tErr != nil {
		slog.Warn("telemetry disabled", "err", tErr)
		return
	}
	rep.Capture(err,
		analysis.ErrInvalidHash,
		analysis.ErrUnknownTarget,
		report.ErrUnknownFormat,
		config.ErrUnknownKey,
	)
	rep.Flush()
}

// checkFormat rejects an unknown output format before any work is done.
func checkFormat(format string) error {
	if !report.ValidFormat(format) {
		return hintWrap(fmt.Errorf("%w %q", report.ErrUnknownFormat, format))
	}
	return nil
}
