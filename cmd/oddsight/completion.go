package main

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/julianknutsen/oddsight/internal/analysis"
	"github.com/julianknutsen/oddsight/internal/config"
	"github.com/julianknutsen/oddsight/internal/digest"
	"github.com/julianknutsen/oddsight/internal/report"
)

// completeTargets completes --target with "N\tNx" items.
func completeTargets(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	ts := analysis.Targets()
	items := make([]string, len(ts))
	for i, t := range ts {
		items[i] = strconv.Itoa(int(t)) + "\t" + t.String() + " multiplier"
	}
	return items, cobra.ShellCompDirectiveNoFileComp
}

// completeFormats completes --format.
func completeFormats(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	return report.Formats(), cobra.ShellCompDirectiveNoFileComp
}

// completeAlgos completes --algo.
func completeAlgos(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	return digest.Algorithms(), cobra.ShellCompDirectiveNoFileComp
}

// completeConfigKeys completes the key argument of config get/set.
func completeConfigKeys(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return config.Keys(), cobra.ShellCompDirectiveNoFileComp
}
