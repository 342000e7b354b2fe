// Package config persists oddsight settings in a TOML file under the XDG
// config directory.
package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/julianknutsen/oddsight/internal/digest"
	"github.com/julianknutsen/oddsight/internal/report"
)

// ErrUnknownKey is returned for a key not in Keys.
var ErrUnknownKey = errors.New("unknown config key")

// Setting keys.
const (
	KeyColor     = "color"
	KeyFormat    = "format"
	KeyPause     = "pause"
	KeyDigest    = "digest"
	KeySentryDSN = "sentry_dsn"
)

// Environment overrides.
const (
	EnvFormat = "ODDSIGHT_FORMAT"
	EnvPause  = "ODDSIGHT_PAUSE"
)

// DefaultPause is the wait between showing a recommendation and predicting it.
const DefaultPause = 1500 * time.Millisecond

var keys = []string{KeyColor, KeyFormat, KeyPause, KeyDigest, KeySentryDSN}

// Keys returns the supported setting keys.
func Keys() []string {
	return slices.Clone(keys)
}

// Config holds the user settings. Empty fields mean "use the default".
type Config struct {
	Color     string `toml:"color,omitempty"`
	Format    string `toml:"format,omitempty"`
	Pause     string `toml:"pause,omitempty"`
	Digest    string `toml:"digest,omitempty"`
	SentryDSN string `toml:"sentry_dsn,omitempty"`
}

// Default returns the settings used when no file exists.
func Default() *Config {
	return &Config{
		Color:  "auto",
		Format: report.FormatText,
		Pause:  DefaultPause.String(),
		Digest: digest.Default,
	}
}

// PauseDuration parses Pause, falling back to DefaultPause when unset.
func (c *Config) PauseDuration() (time.Duration, error) {
	if c.Pause == "" {
		return DefaultPause, nil
	}
	d, err := time.ParseDuration(c.Pause)
	if err != nil {
		return 0, fmt.Errorf("invalid pause %q: %w", c.Pause, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("invalid pause %q: must not be negative", c.Pause)
	}
	return d, nil
}

// Get returns the value stored under key.
func (c *Config) Get(key string) (string, error) {
	switch key {
	case KeyColor:
		return c.Color, nil
	case KeyFormat:
		return c.Format, nil
	case KeyPause:
		return c.Pause, nil
	case KeyDigest:
		return c.Digest, nil
	case KeySentryDSN:
		return c.SentryDSN, nil
	default:
		return "", unknownKey(key)
	}
}

// Set validates value and stores it under key.
func (c *Config) Set(key, value string) error {
	if err := validate(key, value); err != nil {
		return err
	}
	switch key {
	case KeyColor:
		c.Color = value
	case KeyFormat:
		c.Format = value
	case KeyPause:
		c.Pause = value
	case KeyDigest:
		c.Digest = value
	case KeySentryDSN:
		c.SentryDSN = value
	}
	return nil
}

// Validate checks every non-empty setting.
func (c *Config) Validate() error {
	for _, key := range keys {
		v, _ := c.Get(key)
		if v == "" {
			continue
		}
		if err := validate(key, v); err != nil {
			return err
		}
	}
	return nil
}

// ApplyEnvOverrides replaces settings with ODDSIGHT_* environment values.
func (c *Config) ApplyEnvOverrides() {
	if v := os.Getenv(EnvFormat); v != "" {
		c.Format = v
	}
	if v := os.Getenv(EnvPause); v != "" {
		c.Pause = v
	}
}

func validate(key, value string) error {
	switch key {
	case KeyColor:
		switch value {
		case "always", "auto", "never":
			return nil
		}
		return fmt.Errorf("invalid color %q: must be always, auto, or never", value)
	case KeyFormat:
		if !report.ValidFormat(value) {
			return fmt.Errorf("invalid format %q: must be one of %s", value, strings.Join(report.Formats(), ", "))
		}
	case KeyPause:
		c := Config{Pause: value}
		if _, err := c.PauseDuration(); err != nil {
			return err
		}
	case KeyDigest:
		if !digest.Valid(value) {
			return fmt.Errorf("invalid digest %q: must be one of %s", value, strings.Join(digest.Algorithms(), ", "))
		}
	case KeySentryDSN:
	default:
		return unknownKey(key)
	}
	return nil
}

func unknownKey(key string) error {
	return fmt.Errorf("%w %q (supported: %s)", ErrUnknownKey, key, strings.Join(keys, ", "))
}
