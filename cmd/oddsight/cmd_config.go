package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/julianknutsen/oddsight/internal/config"
)

func newConfigCmd(stdout, stderr io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Get or set oddsight configuration",
		Long: `View or modify oddsight configuration settings.

Use 'oddsight config get <key>' to read a setting.
Use 'oddsight config set <key> <value>' to change a setting.

Supported keys:
  color        Color output: always, auto (default), never
  format       Default output format: text (default), json, yaml, prom
  pause        Wait before predicting an auto-selected target (default 1.5s)
  digest       Default digest algorithm: sha512 (default), sha3-512, blake2b-512
  sentry_dsn   Report unexpected errors to Sentry (empty disables)

ODDSIGHT_FORMAT and ODDSIGHT_PAUSE override the file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(
		newConfigGetCmd(stdout, stderr),
		newConfigSetCmd(stdout, stderr),
		newConfigListCmd(stdout, stderr),
		newConfigPathCmd(stdout, stderr),
	)

	return cmd
}

func newConfigGetCmd(stdout, _ io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:               "get <key>",
		Short:             "Get a configuration value",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeConfigKeys,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigGet(cmd, stdout, args[0])
		},
	}
}

func newConfigSetCmd(stdout, _ io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:               "set <key> <value>",
		Short:             "Set a configuration value",
		Args:              cobra.ExactArgs(2),
		ValidArgsFunction: completeConfigKeys,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigSet(cmd, stdout, args[0], args[1])
		},
	}
}

func newConfigListCmd(stdout, _ io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every configuration value",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigList(cmd, stdout)
		},
	}
}

func newConfigPathCmd(stdout, _ io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the config file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprintln(stdout, configStore(cmd).Path())
			return nil
		},
	}
}

func runConfigGet(cmd *cobra.Command, stdout io.Writer, key string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	v, err := cfg.Get(key)
	if err != nil {
		return hintWrap(err)
	}
	fmt.Fprintln(stdout, v)
	return nil
}

func runConfigSet(cmd *cobra.Command, stdout io.Writer, key, value string) error {
	store := configStore(cmd)
	// The raw file, not the env-resolved view, is what gets written back.
	cfg, err := store.Load()
	if err != nil {
		return configError(err)
	}
	if err := cfg.Set(key, value); err != nil {
		return hintWrap(err)
	}
	if err := store.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}
	fmt.Fprintf(stdout, "%s = %s\n", key, displayValue(key, value))
	return nil
}

func runConfigList(cmd *cobra.Command, stdout io.Writer) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	for _, key := range config.Keys() {
		v, _ := cfg.Get(key)
		fmt.Fprintf(stdout, "%-11s %s\n", key, displayValue(key, v))
	}
	return nil
}

// displayValue masks secrets for terminal output.
func displayValue(key, value string) string {
	if key != config.KeySentryDSN || value == "" {
		return value
	}
	if i := strings.Index(value, "@"); i > 0 {
		return "****" + value[i:]
	}
	return "****"
}
