// Package styles provides Lip Gloss styles for the ventctl TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette for the TUI.
var (
	Primary     = lipgloss.Color("#7C3AED") // Purple
	Secondary   = lipgloss.Color("#06B6D4") // Cyan
	Success     = lipgloss.Color("#10B981") // Green
	Warning     = lipgloss.Color("#F59E0B") // Amber
	Error       = lipgloss.Color("#EF4444") // Red
	Muted       = lipgloss.Color("#6B7280") // Gray
	MutedLight  = lipgloss.Color("#9CA3AF") // Light Gray
	Foreground  = lipgloss.Color("#F9FAFB") // White
	BorderColor = lipgloss.Color("#374151") // Border Gray
)

// TermColors assigns one color per linguistic term, coolest to hottest.
var TermColors = []lipgloss.Color{
	lipgloss.Color("#3B82F6"), // very_low: blue
	lipgloss.Color("#06B6D4"), // low: cyan
	lipgloss.Color("#10B981"), // medium: green
	lipgloss.Color("#F59E0B"), // high: amber
	lipgloss.Color("#EF4444"), // very_high: red
}

// Header styles.
var (
	// TitleStyle is for the application title bar.
	TitleStyle = lipgloss.NewStyle().
			Foreground(Foreground).
			Background(Primary).
			Bold(true).
			Padding(0, 1)

	// SubtitleStyle is for the line under the title.
	SubtitleStyle = lipgloss.NewStyle().
			Foreground(MutedLight)
)

// Form styles.
var (
	// LabelStyle is for input labels.
	LabelStyle = lipgloss.NewStyle().
			Foreground(MutedLight)

	// FocusedLabelStyle is for the focused input's label.
	FocusedLabelStyle = lipgloss.NewStyle().
				Foreground(Secondary).
				Bold(true)

	// ErrorStyle is for validation errors.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(Error)

	// HelpStyle is for the key hint footer.
	HelpStyle = lipgloss.NewStyle().
			Foreground(Muted)
)

// Result styles.
var (
	// ResultStyle frames the recommendation panel.
	ResultStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BorderColor).
			Padding(0, 2)

	// ResultValueStyle is for the recommended power figure.
	ResultValueStyle = lipgloss.NewStyle().
				Foreground(Success).
				Bold(true)

	// OverrideStyle marks the full-power override.
	OverrideStyle = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	// AxisStyle is for chart axis labels.
	AxisStyle = lipgloss.NewStyle().
			Foreground(Muted)

	// MarkerStyle is for the crisp-value marker on charts.
	MarkerStyle = lipgloss.NewStyle().
			Foreground(Foreground).
			Bold(true)
)
