package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	bubbletea "github.com/charmbracelet/bubbletea"
)

// pausePresets are the pause values the settings view cycles through.
var pausePresets = []time.Duration{
	0,
	500 * time.Millisecond,
	1500 * time.Millisecond,
	3 * time.Second,
	5 * time.Second,
}

// settingsModel holds the state for the Settings view.
type settingsModel struct {
	pause  time.Duration
	width  int
	height int
	result string // "Saved" or error text
}

func newSettingsModel(pause time.Duration) settingsModel {
	return settingsModel{pause: pause}
}

func (m *settingsModel) setSize(w, h int) {
	m.width = w
	m.height = h
}

// sync updates the settings model to reflect the current config values.
func (m *settingsModel) sync(pause time.Duration) {
	m.pause = pause
	m.result = ""
}

func (m settingsModel) update(msg bubbletea.Msg, cfg Config) (settingsModel, bubbletea.Cmd) {
	if msg, ok := msg.(bubbletea.KeyMsg); ok {
		switch {
		case key.Matches(msg, keys.Quit):
			return m, bubbletea.Quit

		case key.Matches(msg, keys.Right), key.Matches(msg, keys.Enter):
			return m.step(cfg, 1)

		case key.Matches(msg, keys.Left):
			return m.step(cfg, -1)
		}
	}
	return m, nil
}

// step moves the pause to the next or previous preset and returns a save
// command. A pause that is not a preset steps from the nearest one below it.
func (m settingsModel) step(cfg Config, dir int) (settingsModel, bubbletea.Cmd) {
	i := 0
	for j, p := range pausePresets {
		if p <= m.pause {
			i = j
		}
	}
	i = (i + dir + len(pausePresets)) % len(pausePresets)
	m.pause = pausePresets[i]

	pause := m.pause
	return m, func() bubbletea.Msg {
		if cfg.SavePause != nil {
			if err := cfg.SavePause(pause); err != nil {
				return settingsSavedMsg{pause: pause, err: err}
			}
		}
		return settingsSavedMsg{pause: pause}
	}
}

func (m settingsModel) view() string {
	var b strings.Builder

	b.WriteString(styleTitle.Render("Settings"))
	b.WriteString("\n\n")

	var opts []string
	for _, p := range pausePresets {
		label := p.String()
		if p == m.pause {
			label = "[" + label + "]"
		} else {
			label = " " + label + " "
		}
		opts = append(opts, label)
	}
	line := fmt.Sprintf("  %-11s %s", "Pause:", strings.Join(opts, " "))
	b.WriteString(styleSelected.Width(m.width).Render(line))
	b.WriteByte('\n')
	b.WriteString(styleDim.Render("  Wait between auto-select and prediction."))
	b.WriteByte('\n')

	if m.result != "" {
		b.WriteString("\n  " + m.result)
		b.WriteByte('\n')
	}

	return b.String()
}
