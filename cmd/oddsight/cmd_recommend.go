package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/julianknutsen/oddsight/internal/report"
	"github.com/julianknutsen/oddsight/internal/style"
)

func newRecommendCmd(stdout, stderr io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recommend [hash|-]",
		Short: "Rank targets and pick the best one",
		Long: `Rank every target by risk-adjusted score and show the recommended one
with its safety, confidence, delay and estimated success rate.

With --predict, waits the configured pause and then prints the prediction
for the recommended target.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRecommend(cmd, stdout, stderr, args)
		},
	}
	cmd.Flags().StringP("format", "f", report.FormatText, "Output format: text, json, yaml, prom")
	cmd.Flags().Bool("predict", false, "Predict the recommended target after the pause (text output only)")
	cmd.Flags().Duration("pause", 0, "Pause before predicting (default from config, 1.5s)")
	_ = cmd.RegisterFlagCompletionFunc("format", completeFormats)
	return cmd
}

func runRecommend(cmd *cobra.Command, stdout, stderr io.Writer, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	format := outputFormat(cmd, cfg)
	if err := checkFormat(format); err != nil {
		return err
	}
	predict, _ := cmd.Flags().GetBool("predict")
	if predict && format != report.FormatText {
		return &HintedError{
			Err:  fmt.Errorf("--predict prints text and cannot be combined with --format %s", format),
			Hint: "Use 'oddsight predict --target N --format " + format + "' for structured output.",
		}
	}
	pause, err := pauseDuration(cmd, cfg)
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

	if format != report.FormatText {
		return writeReport(stdout, format, r)
	}

	best := r.Best()
	fmt.Fprint(stdout, report.RankingTable(r.Ranking))
	fmt.Fprintf(stdout, "\n%s\n", report.Panel(best))
	if !predict {
		return nil
	}

	msg := fmt.Sprintf("Predicting %s...", best.Target)
	if err := style.Pause(cmd.Context(), stderr, msg, pause); err != nil {
		return err
	}
	sc, _ := r.Score(best.Target)
	fmt.Fprintln(stdout, report.Prediction(sc))
	return nil
}
