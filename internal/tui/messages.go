package tui

import "time"

// activeView identifies which view is currently displayed.
type activeView int

const (
	viewAnalyzer activeView = iota
	viewSettings
)

// focusArea is the part of the analyzer that receives keys.
type focusArea int

const (
	focusInput focusArea = iota
	focusTargets
)

// pauseDoneMsg fires when the auto-select pause elapses. seq identifies
// the auto-select it belongs to; a newer selection or edit supersedes it.
type pauseDoneMsg struct {
	seq int
}

// settingsSavedMsg carries the result of saving settings.
type settingsSavedMsg struct {
	pause time.Duration
	err   error
}
