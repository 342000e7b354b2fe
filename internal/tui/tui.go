// Package tui provides an interactive terminal UI for scoring a hash
// against the target multipliers.
package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	bubbletea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianknutsen/oddsight/internal/analysis"
	"github.com/julianknutsen/oddsight/internal/report"
)

const errNeedHash = "Please enter a valid SHA512 hash first."

// Config holds the parameters needed to launch the TUI.
type Config struct {
	Hash  string        // initial input, may be empty
	Pause time.Duration // wait between auto-select and prediction

	// Settings persistence (nil = settings not saved)
	SavePause func(time.Duration) error
}

// Model is the root TUI model.
type Model struct {
	cfg      Config
	active   activeView
	settings settingsModel
	bar      statusBar
	width    int
	height   int
	quitting bool

	input   textinput.Model
	focus   focusArea
	targets []analysis.Target
	cursor  int
	report  *analysis.Report // nil unless the input is a valid hash
	errLine string

	auto       *analysis.Recommendation // auto-select panel
	pausing    bool
	seq        int
	spinner    spinner.Model
	prediction *analysis.TargetScore
}

// New creates a new root TUI model.
func New(cfg Config) Model {
	ti := textinput.New()
	ti.Placeholder = "paste a 128-character SHA512 hash"
	ti.CharLimit = analysis.HashLen
	ti.Prompt = "› "
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styleDim

	m := Model{
		cfg:      cfg,
		active:   viewAnalyzer,
		settings: newSettingsModel(cfg.Pause),
		bar:      newStatusBar(),
		input:    ti,
		targets:  analysis.Targets(),
		spinner:  sp,
	}
	if cfg.Hash != "" {
		m.input.SetValue(cfg.Hash)
		m.analyze()
	}
	return m
}

// Init starts the cursor blink.
func (m Model) Init() bubbletea.Cmd {
	return textinput.Blink
}

// Update processes messages.
func (m Model) Update(msg bubbletea.Msg) (bubbletea.Model, bubbletea.Cmd) {
	switch msg := msg.(type) {
	case bubbletea.KeyMsg:
		if key.Matches(msg, keys.ForceQuit) {
			m.quitting = true
			return m, bubbletea.Quit
		}

	case bubbletea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.bar.width = msg.Width
		m.input.Width = max(0, msg.Width-4)
		m.settings.setSize(msg.Width, msg.Height-1) // -1 for statusbar
		return m, nil

	case pauseDoneMsg:
		if msg.seq != m.seq || !m.pausing {
			return m, nil
		}
		m.pausing = false
		if m.auto != nil {
			m.predict(m.auto.Target)
		}
		return m, nil

	case spinner.TickMsg:
		if !m.pausing {
			return m, nil
		}
		var cmd bubbletea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case settingsSavedMsg:
		if msg.err != nil {
			m.settings.result = styleError.Render("Error: " + msg.err.Error())
			return m, nil
		}
		m.cfg.Pause = msg.pause
		m.settings.pause = msg.pause
		m.settings.result = styleSuccess.Render("Saved")
		return m, nil
	}

	if m.active == viewSettings {
		if msg, ok := msg.(bubbletea.KeyMsg); ok && key.Matches(msg, keys.Back) {
			m.active = viewAnalyzer
			return m, nil
		}
		var cmd bubbletea.Cmd
		m.settings, cmd = m.settings.update(msg, m.cfg)
		return m, cmd
	}
	return m.updateAnalyzer(msg)
}

func (m Model) updateAnalyzer(msg bubbletea.Msg) (bubbletea.Model, bubbletea.Cmd) {
	keyMsg, isKey := msg.(bubbletea.KeyMsg)
	if isKey {
		switch {
		case key.Matches(keyMsg, keys.Focus):
			m.toggleFocus()
			return m, nil
		case key.Matches(keyMsg, keys.Enter):
			m.predict(m.targets[m.cursor])
			return m, nil
		}
	}

	if m.focus == focusInput {
		before := m.input.Value()
		var cmd bubbletea.Cmd
		m.input, cmd = m.input.Update(msg)
		if m.input.Value() != before {
			m.analyze()
		}
		return m, cmd
	}

	if !isKey {
		return m, nil
	}
	switch {
	case key.Matches(keyMsg, keys.Quit):
		m.quitting = true
		return m, bubbletea.Quit
	case key.Matches(keyMsg, keys.Back):
		m.toggleFocus()
	case key.Matches(keyMsg, keys.Left):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(keyMsg, keys.Right):
		if m.cursor < len(m.targets)-1 {
			m.cursor++
		}
	case key.Matches(keyMsg, keys.Auto):
		return m.autoSelect()
	case key.Matches(keyMsg, keys.Settings):
		m.active = viewSettings
		m.settings.sync(m.cfg.Pause)
	}
	return m, nil
}

func (m *Model) toggleFocus() {
	if m.focus == focusInput {
		m.focus = focusTargets
		m.input.Blur()
		return
	}
	m.focus = focusInput
	m.input.Focus()
}

// analyze re-scores the input. Any pending auto-select is superseded.
func (m *Model) analyze() {
	m.seq++
	m.pausing = false
	m.auto = nil
	m.prediction = nil
	m.errLine = ""

	r, err := analysis.Evaluate(m.input.Value())
	if err != nil {
		m.report = nil
		m.bar.label = "no hash"
		return
	}
	m.report = r
	m.bar.label = r.Analysis.Hash.Short()
}

func (m *Model) predict(t analysis.Target) {
	if m.report == nil {
		m.errLine = errNeedHash
		m.prediction = nil
		return
	}
	sc, _ := m.report.Score(t)
	m.prediction = &sc
	m.errLine = ""
}

// autoSelect shows the top-ranked target, moves the cursor onto it and
// predicts it once the configured pause has elapsed.
func (m Model) autoSelect() (Model, bubbletea.Cmd) {
	if m.report == nil {
		m.errLine = errNeedHash
		return m, nil
	}
	best := m.report.Best()
	m.auto = &best
	m.errLine = ""
	m.prediction = nil
	for i, t := range m.targets {
		if t == best.Target {
			m.cursor = i
		}
	}

	m.seq++
	m.pausing = true
	seq := m.seq
	return m, bubbletea.Batch(
		m.spinner.Tick,
		bubbletea.Tick(m.cfg.Pause, func(time.Time) bubbletea.Msg {
			return pauseDoneMsg{seq: seq}
		}),
	)
}

// View renders the current view.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content, hints string
	switch m.active {
	case viewSettings:
		content = m.settings.view()
		hints = "h/l: change  esc: back  q: quit"
	default:
		content = m.analyzerView()
		if m.focus == focusInput {
			hints = "enter: predict  tab: targets  ctrl+c: quit"
		} else {
			hints = "h/l: select  enter: predict  a: auto  S: settings  tab: input  q: quit"
		}
	}

	if m.height > 1 {
		content = lipgloss.NewStyle().
			Width(m.width).
			Height(m.height - 1). // 1 for statusbar
			Render(content)
	}
	return content + "\n" + m.bar.render(hints)
}

func (m Model) analyzerView() string {
	var b strings.Builder

	b.WriteString(styleTitle.Render("oddsight"))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	if m.errLine != "" {
		b.WriteString(styleError.Render(m.errLine))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(styleTitle.Render("Confidence"))
	b.WriteString("\n")
	for _, t := range m.targets {
		if m.report == nil {
			b.WriteString(styleDim.Render("  " + t.String()))
			b.WriteString("\n")
			continue
		}
		sc, _ := m.report.Score(t)
		b.WriteString(report.ScoreLine(sc))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(m.buttonsView())
	b.WriteString("\n")

	if m.auto != nil {
		panel := report.Panel(*m.auto)
		if m.pausing {
			panel += "\n" + m.spinner.View() + " predicting " + m.auto.Target.String() + "..."
		}
		b.WriteString("\n")
		b.WriteString(stylePanel.Render(panel))
		b.WriteString("\n")
	}

	if m.prediction != nil {
		b.WriteString("\n")
		b.WriteString(report.Prediction(*m.prediction))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) buttonsView() string {
	buttons := make([]string, len(m.targets))
	for i, t := range m.targets {
		st := styleButton
		switch {
		case m.pausing && m.auto != nil && m.auto.Target == t:
			st = styleButtonPick
		case m.focus == focusTargets && i == m.cursor:
			st = styleButtonCursor
		}
		buttons[i] = st.Render(t.String())
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, buttons...)
}
