package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/julianknutsen/oddsight/internal/style"
	"github.com/julianknutsen/oddsight/internal/watch"
)

func newWatchCmd(stdout, stderr io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch <file>",
		Short: "Re-analyze a file each time it changes",
		Long: `Analyze the hash stored in a file, then again every time the file is
written, until interrupted.

An invalid hash is reported on stderr and watching continues.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(cmd, stdout, stderr, args[0])
		},
	}
	cmd.Flags().StringP("format", "f", "", "Output format: text, json, yaml, prom (default from config)")
	_ = cmd.RegisterFlagCompletionFunc("format", completeFormats)
	return cmd
}

func runWatch(cmd *cobra.Command, stdout, stderr io.Writer, path string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	format := outputFormat(cmd, cfg)
	if err := checkFormat(format); err != nil {
		return err
	}

	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	return watch.File(ctx, path, func(content string) {
		renderWatched(stdout, stderr, format, content)
	})
}

// renderWatched analyzes one snapshot of the watched file.
func renderWatched(stdout, stderr io.Writer, format, content string) {
	r, err := evaluate(content)
	if err != nil {
		fmt.Fprintf(stderr, "oddsight: %v\n", err)
		var h *HintedError
		if errors.As(err, &h) {
			fmt.Fprintf(stderr, "  %s %s\n", style.Dim.Render("hint:"), h.Hint)
		}
		return
	}
	if err := writeReport(stdout, format, r); err != nil {
		fmt.Fprintf(stderr, "oddsight: %v\n", err)
	}
}
