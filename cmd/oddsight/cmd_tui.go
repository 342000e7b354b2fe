package main

import (
	"errors"
	"fmt"
	"io"
	"time"

	bubbletea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/julianknutsen/oddsight/internal/config"
	"github.com/julianknutsen/oddsight/internal/style"
	"github.com/julianknutsen/oddsight/internal/tui"
)

func newTUICmd(stdout, stderr io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tui [hash]",
		Short: "Interactive terminal UI with confidence bars and auto-select",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, stdout, stderr, args)
		},
	}
	return cmd
}

func runTUI(cmd *cobra.Command, stdout, _ io.Writer, args []string) error {
	if !style.IsTTY(stdout) {
		return &HintedError{
			Err:  errors.New("tui needs an interactive terminal"),
			Hint: "Use 'oddsight analyze' or 'oddsight recommend' in scripts.",
		}
	}

	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	pause, err := cfg.PauseDuration()
	if err != nil {
		return configError(err)
	}

	var hash string
	if len(args) > 0 {
		hash = args[0]
	}

	store := configStore(cmd)
	m := tui.New(tui.Config{
		Hash:  hash,
		Pause: pause,
		SavePause: func(d time.Duration) error {
			c, err := store.Load()
			if err != nil {
				return err
			}
			if err := c.Set(config.KeyPause, d.String()); err != nil {
				return err
			}
			return store.Save(c)
		},
	})

	p := bubbletea.NewProgram(m, bubbletea.WithAltScreen(), bubbletea.WithOutput(stdout))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
