// Package style provides consistent terminal styling using Lipgloss.
// Uses the Ayu theme colors inlined directly.
package style

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Ayu theme color palette
var (
	colorPass = lipgloss.AdaptiveColor{
		Light: "#86b300",
		Dark:  "#c2d94c",
	}
	colorWarn = lipgloss.AdaptiveColor{
		Light: "#f2ae49",
		Dark:  "#ffb454",
	}
	colorFail = lipgloss.AdaptiveColor{
		Light: "#f07171",
		Dark:  "#f07178",
	}
	colorMuted = lipgloss.AdaptiveColor{
		Light: "#828c99",
		Dark:  "#6c7680",
	}
	colorAccent = lipgloss.AdaptiveColor{
		Light: "#399ee6",
		Dark:  "#59c2ff",
	}
	colorPick = lipgloss.AdaptiveColor{
		Light: "#06a77d",
		Dark:  "#06d6a0",
	}
)

// Semantic icons
const (
	IconPass = "✓"
	IconWarn = "⚠"
	IconFail = "✖"
	IconPick = "★"
)

// Bar glyphs
const (
	barFull  = "█"
	barEmpty = "░"
)

var (
	// Success style for positive outcomes (green)
	Success lipgloss.Style

	// Warning style for cautionary messages (yellow)
	Warning lipgloss.Style

	// Error style for failures (red)
	Error lipgloss.Style

	// Info style for informational messages (blue)
	Info lipgloss.Style

	// Dim style for secondary information (gray)
	Dim lipgloss.Style

	// Bold style for emphasis
	Bold lipgloss.Style

	// Pick marks the recommended target (teal)
	Pick lipgloss.Style
)

func init() {
	build(true)
}

// build (re)initializes the exported styles with or without color.
func build(colored bool) {
	if !colored {
		Success = lipgloss.NewStyle()
		Warning = lipgloss.NewStyle()
		Error = lipgloss.NewStyle()
		Info = lipgloss.NewStyle()
		Dim = lipgloss.NewStyle()
		Bold = lipgloss.NewStyle()
		Pick = lipgloss.NewStyle()
		return
	}
	Success = lipgloss.NewStyle().Foreground(colorPass).Bold(true)
	Warning = lipgloss.NewStyle().Foreground(colorWarn).Bold(true)
	Error = lipgloss.NewStyle().Foreground(colorFail).Bold(true)
	Info = lipgloss.NewStyle().Foreground(colorAccent)
	Dim = lipgloss.NewStyle().Foreground(colorMuted)
	Bold = lipgloss.NewStyle().Bold(true)
	Pick = lipgloss.NewStyle().Foreground(colorPick).Bold(true)
}

// SetColorMode overrides style rendering based on --color flag or NO_COLOR env.
func SetColorMode(mode string) {
	switch mode {
	case "never":
		_ = os.Setenv("NO_COLOR", "1")
		build(false)
	case "always":
		_ = os.Unsetenv("NO_COLOR")
		_ = os.Setenv("CLICOLOR_FORCE", "1")
		build(true)
	}
}

// ValidColorMode reports whether mode is accepted by SetColorMode.
func ValidColorMode(mode string) bool {
	switch mode {
	case "always", "auto", "never":
		return true
	}
	return false
}

// Level returns the style for a percentage: green from 80, yellow from 50,
// red below.
func Level(pct int) lipgloss.Style {
	switch {
	case pct >= 80:
		return Success
	case pct >= 50:
		return Warning
	default:
		return Error
	}
}

// Bar renders pct (0–100) as a horizontal bar width cells wide, colored by
// Level.
func Bar(pct, width int) string {
	if width <= 0 {
		return ""
	}
	pct = min(100, max(0, pct))
	filled := pct * width / 100
	return Level(pct).Render(strings.Repeat(barFull, filled)) +
		Dim.Render(strings.Repeat(barEmpty, width-filled))
}
