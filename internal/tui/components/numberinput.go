// Package components provides reusable TUI components for ventctl.
package components

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ventlab/ventctl/internal/tui/styles"
)

// NumberInput is a wrapper around the bubbles textinput component that
// accepts a single numeric value.
type NumberInput struct {
	model   textinput.Model
	label   string
	focused bool
	id      string
}

// NewNumberInput creates a new NumberInput component.
func NewNumberInput(id, label string) *NumberInput {
	ti := textinput.New()
	ti.CharLimit = 16
	ti.Width = 12
	ti.Prompt = ""

	return &NumberInput{
		model: ti,
		label: label,
		id:    id,
	}
}

// ID returns the component's unique identifier.
func (n *NumberInput) ID() string {
	return n.id
}

// Focus focuses the input.
func (n *NumberInput) Focus() tea.Cmd {
	n.focused = true
	return n.model.Focus()
}

// Blur removes focus from the input.
func (n *NumberInput) Blur() {
	n.focused = false
	n.model.Blur()
}

// Focused returns whether the input is focused.
func (n *NumberInput) Focused() bool {
	return n.focused
}

// SetValue sets the input value.
func (n *NumberInput) SetValue(value string) {
	n.model.SetValue(value)
}

// SetPlaceholder sets the placeholder text.
func (n *NumberInput) SetPlaceholder(placeholder string) {
	n.model.Placeholder = placeholder
}

// Value returns the raw input string.
func (n *NumberInput) Value() string {
	return strings.TrimSpace(n.model.Value())
}

// Float parses the input as a float64.
func (n *NumberInput) Float() (float64, error) {
	return strconv.ParseFloat(n.Value(), 64)
}

// Reset clears the input value.
func (n *NumberInput) Reset() {
	n.model.Reset()
}

// Update handles messages for the input.
func (n *NumberInput) Update(msg tea.Msg) (*NumberInput, tea.Cmd) {
	if !n.focused {
		return n, nil
	}

	var cmd tea.Cmd
	n.model, cmd = n.model.Update(msg)
	return n, cmd
}

// View renders the input.
func (n *NumberInput) View() string {
	labelStyle := styles.LabelStyle
	if n.focused {
		labelStyle = styles.FocusedLabelStyle
	}
	return labelStyle.Render(n.label+": ") + n.model.View()
}
