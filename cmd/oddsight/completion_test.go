package main

import (
	"slices"
	"testing"

	"github.com/spf13/cobra"
)

func TestCompleteTargets(t *testing.T) {
	items, directive := completeTargets(nil, nil, "")
	want := []string{
		"2\t2x multiplier", "3\t3x multiplier", "4\t4x multiplier",
		"7\t7x multiplier", "10\t10x multiplier", "100\t100x multiplier",
	}
	if !slices.Equal(items, want) {
		t.Errorf("items = %q, want %q", items, want)
	}
	if directive != cobra.ShellCompDirectiveNoFileComp {
		t.Errorf("directive = %d, want NoFileComp", directive)
	}
}

func TestCompleteFormatsAndAlgos(t *testing.T) {
	formats, _ := completeFormats(nil, nil, "")
	if !slices.Contains(formats, "prom") {
		t.Errorf("formats = %v, missing prom", formats)
	}
	algos, _ := completeAlgos(nil, nil, "")
	if !slices.Contains(algos, "blake2b-512") {
		t.Errorf("algos = %v, missing blake2b-512", algos)
	}
}

func TestCompleteConfigKeys(t *testing.T) {
	keys, _ := completeConfigKeys(nil, nil, "")
	if !slices.Contains(keys, "pause") {
		t.Errorf("keys = %v, missing pause", keys)
	}
	keys, _ = completeConfigKeys(nil, []string{"pause"}, "")
	if len(keys) != 0 {
		t.Errorf("value position should not complete keys, got %v", keys)
	}
}
