package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// statusBar renders the bottom bar showing the current hash and key hints.
type statusBar struct {
	label string
	width int
}

func newStatusBar() statusBar {
	return statusBar{label: "no hash"}
}

func (s statusBar) render(hints string) string {
	left := styleDim.Render(s.label)
	right := styleDim.Render(hints)

	gap := s.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}

	return styleBar.Width(s.width).Render(
		fmt.Sprintf("%s%*s%s", left, gap, "", right),
	)
}
