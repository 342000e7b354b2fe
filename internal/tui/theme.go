package tui

import "github.com/charmbracelet/lipgloss"

// Ayu theme colors for TUI contexts.
var (
	colorPass = lipgloss.AdaptiveColor{Light: "#86b300", Dark: "#c2d94c"}
	colorFail = lipgloss.AdaptiveColor{Light: "#f07171", Dark: "#f07178"}
	colorDim  = lipgloss.AdaptiveColor{Light: "#828c99", Dark: "#6c7680"}
	colorText = lipgloss.AdaptiveColor{Light: "#5c6166", Dark: "#bfbdb6"}
	colorSel  = lipgloss.AdaptiveColor{Light: "#e8e8e8", Dark: "#1a1f29"}
	colorPick = lipgloss.AdaptiveColor{Light: "#06a77d", Dark: "#06d6a0"}
)

var (
	styleTitle = lipgloss.NewStyle().Bold(true)

	styleSelected = lipgloss.NewStyle().
			Background(colorSel).
			Foreground(colorText)

	styleDim = lipgloss.NewStyle().Foreground(colorDim)

	styleError   = lipgloss.NewStyle().Foreground(colorFail).Bold(true)
	styleSuccess = lipgloss.NewStyle().Foreground(colorPass)

	styleButton = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorDim)

	styleButtonCursor = styleButton.
				BorderForeground(colorText).
				Bold(true)

	styleButtonPick = styleButton.
			BorderForeground(colorPick).
			Foreground(colorPick).
			Bold(true)

	stylePanel = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(colorPick).
			PaddingLeft(1)

	styleBar = lipgloss.NewStyle().
			Background(colorSel).
			Foreground(colorDim).
			Padding(0, 1)
)
