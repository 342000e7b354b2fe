// oddsight scores 512-bit hex hashes against a fixed set of target
// multipliers and recommends one.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/julianknutsen/oddsight/internal/style"
)

// Version metadata injected via ldflags.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// errExit is a sentinel error returned by cobra RunE functions to signal
// non-zero exit. The command has already written its own error to stderr.
var errExit = errors.New("exit")

// run executes the oddsight CLI with the given args.
func run(args []string, stdout, stderr io.Writer) int {
	root := newRootCmd(stdout, stderr)
	if args == nil {
		args = []string{}
	}
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	if err := root.Execute(); err != nil {
		if !errors.Is(err, errExit) {
			fmt.Fprintf(stderr, "oddsight: %v\n", err)
			var h *HintedError
			if errors.As(err, &h) && h.Hint != "" {
				fmt.Fprintf(stderr, "  %s %s\n", style.Dim.Render("hint:"), h.Hint)
			}
		}
		reportError(root, err)
		return 1
	}
	return 0
}

// newRootCmd creates the root cobra command with all subcommands.
func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:           "oddsight",
		Short:         "Score a SHA512 hash against target multipliers",
		SilenceErrors: true,
		SilenceUsage:  true,
		Args:          cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			fmt.Fprintf(stderr, "oddsight: unknown command %q\n", args[0]) //nolint:errcheck // best-effort stderr
			return errExit
		},
	}
	root.PersistentFlags().String("color", "auto", "Color output: always, auto, never")
	root.PersistentFlags().BoolP("verbose", "v", false, "Log debug detail to stderr")
	root.PersistentFlags().String("config", "", "Config file (default $XDG_CONFIG_HOME/oddsight/config.toml)")
	root.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		verbose, _ := cmd.Flags().GetBool("verbose")
		setupLogging(stderr, verbose)

		colorMode, _ := cmd.Flags().GetString("color")
		if !cmd.Flags().Changed("color") {
			// Config problems surface in the commands that need config.
			if cfg, err := loadConfig(cmd); err == nil && cfg.Color != "" {
				colorMode = cfg.Color
			}
		}
		if !style.ValidColorMode(colorMode) {
			return fmt.Errorf("invalid --color value %q: must be always, auto, or never", colorMode)
		}
		style.SetColorMode(colorMode)
		return nil
	}
	root.AddCommand(
		newAnalyzeCmd(stdout, stderr),
		newRecommendCmd(stdout, stderr),
		newPredictCmd(stdout, stderr),
		newDigestCmd(stdout, stderr),
		newWatchCmd(stdout, stderr),
		newTUICmd(stdout, stderr),
		newServeCmd(stdout, stderr),
		newConfigCmd(stdout, stderr),
		newVersionCmd(stdout),
	)
	return root
}
