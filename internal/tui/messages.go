// Package tui provides the terminal user interface for ventctl.
package tui

// Message types for TUI state updates.

// HistorySavedMsg is sent after an evaluation was stored in history.
type HistorySavedMsg struct{}

// HistoryErrorMsg is sent when storing an evaluation failed.
type HistoryErrorMsg struct {
	Err error
}
