// Package xdg provides XDG Base Directory support for oddsight.
package xdg

import (
	"os"
	"path/filepath"
)

const (
	appName    = "oddsight"
	configName = "config.toml"
)

// ConfigHome returns the XDG config home directory.
// Uses $XDG_CONFIG_HOME if set, otherwise ~/.config.
func ConfigHome() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return dir
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config")
}

// ConfigDir returns the oddsight config directory: ConfigHome()/oddsight.
func ConfigDir() string {
	return filepath.Join(ConfigHome(), appName)
}

// ConfigFile returns override when non-empty, otherwise
// ConfigDir()/config.toml.
func ConfigFile(override string) string {
	if override != "" {
		return override
	}
	return filepath.Join(ConfigDir(), configName)
}
