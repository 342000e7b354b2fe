package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/julianknutsen/oddsight/internal/report"
)

func newAnalyzeCmd(stdout, _ io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze [hash|-]",
		Short: "Score a hash against every target",
		Long: `Analyze a 128-character lowercase hex hash: entropy, score, checksum,
variance and pattern flags, then confidence and delay for each target and
the risk-adjusted ranking.

Reads the hash from stdin when the argument is "-" or omitted.

Examples:
  oddsight analyze 9b71d224...bcdec043
  oddsight digest hello | oddsight analyze
  oddsight analyze --format json --target 7 -`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(cmd, stdout, args)
		},
	}
	cmd.Flags().StringP("format", "f", report.FormatText, "Output format: text, json, yaml, prom")
	cmd.Flags().StringP("target", "t", "", "Restrict output to one target (2, 3, 4, 7, 10, 100)")
	_ = cmd.RegisterFlagCompletionFunc("format", completeFormats)
	_ = cmd.RegisterFlagCompletionFunc("target", completeTargets)
	return cmd
}

func runAnalyze(cmd *cobra.Command, stdout io.Writer, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	format := outputFormat(cmd, cfg)
	if err := checkFormat(format); err != nil {
		return err
	}
	target, restrict, err := parseTargetFlag(cmd)
	if err != nil {
		return err
	}

	raw, err := readInput(cmd, args)
	if err != nil {
		return err
	}
	r, err := evaluate(raw)
	if err != nil {
		return err
	}
	if restrict {
		if r, err = report.Restrict(r, target); err != nil {
			return hintWrap(err)
		}
	}
	return writeReport(stdout, format, r)
}
