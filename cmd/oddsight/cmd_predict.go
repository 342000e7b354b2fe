package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/julianknutsen/oddsight/internal/report"
)

func newPredictCmd(stdout, _ io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "predict [hash|-] --target N",
		Short: "Show confidence and delay for one target",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPredict(cmd, stdout, args)
		},
	}
	cmd.Flags().StringP("target", "t", "", "Target multiplier (2, 3, 4, 7, 10, 100)")
	cmd.Flags().StringP("format", "f", report.FormatText, "Output format: text, json, yaml, prom")
	_ = cmd.MarkFlagRequired("target")
	_ = cmd.RegisterFlagCompletionFunc("target", completeTargets)
	_ = cmd.RegisterFlagCompletionFunc("format", completeFormats)
	return cmd
}

func runPredict(cmd *cobra.Command, stdout io.Writer, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	format := outputFormat(cmd, cfg)
	if err := checkFormat(format); err != nil {
		return err
	}
	target, ok, err := parseTargetFlag(cmd)
	if err != nil {
		return err
	}
	if !ok {
		return errors.New("--target is required")
	}

	raw, err := readInput(cmd, args)
	if err != nil {
		return err
	}
	r, err := evaluate(raw)
	if err != nil {
		return err
	}

	if format == report.FormatText {
		sc, _ := r.Score(target)
		fmt.Fprintln(stdout, report.Prediction(sc))
		return nil
	}
	only, err := report.Restrict(r, target)
	if err != nil {
		return hintWrap(err)
	}
	return writeReport(stdout, format, only)
}
