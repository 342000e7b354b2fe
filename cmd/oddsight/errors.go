package main

import (
	"errors"
	"fmt"

	"github.com/julianknutsen/oddsight/internal/analysis"
	"github.com/julianknutsen/oddsight/internal/config"
	"github.com/julianknutsen/oddsight/internal/digest"
	"github.com/julianknutsen/oddsight/internal/report"
)

// hashHint is shown after any invalid-hash error.
const hashHint = "Please enter a valid SHA512 hash (128 lowercase hex characters)."

// HintedError wraps an error with a user-facing recovery hint.
type HintedError struct {
	Err  error
	Hint string
}

func (h *HintedError) Error() string { return h.Err.Error() }
func (h *HintedError) Unwrap() error { return h.Err }

// hintWrap attaches the recovery hint matching err, if any.
func hintWrap(err error) error {
	if err == nil {
		return nil
	}
	var hint string
	switch {
	case errors.Is(err, analysis.ErrInvalidHash):
		hint = hashHint
	case errors.Is(err, analysis.ErrUnknownTarget):
		hint = "Targets are 2, 3, 4, 7, 10 and 100."
	case errors.Is(err, report.ErrUnknownFormat):
		hint = "Use --format text, json, yaml or prom."
	case errors.Is(err, digest.ErrUnknownAlgorithm):
		hint = "Use --algo sha512, sha3-512 or blake2b-512."
	case errors.Is(err, config.ErrUnknownKey):
		hint = "Run 'oddsight config list' to see the supported keys."
	default:
		return err
	}
	return &HintedError{Err: err, Hint: hint}
}

// configError wraps a config-loading error with a recovery hint.
func configError(err error) error {
	if err == nil {
		return nil
	}
	return &HintedError{
		Err:  fmt.Errorf("loading config: %w", err),
		Hint: "Fix the file or reset a key with 'oddsight config set <key> <value>'.",
	}
}
