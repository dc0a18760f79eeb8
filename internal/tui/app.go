// Package tui provides the terminal user interface for ventctl.
package tui

import (
	"fmt"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ventlab/ventctl/internal/logging"
	"github.com/ventlab/ventctl/internal/tui/components"
	"github.com/ventlab/ventctl/internal/tui/styles"
	"github.com/ventlab/ventctl/internal/vent"
)

// Phase is the advisor's input flow position.
type Phase int

const (
	// PhaseRange collects the temperature range.
	PhaseRange Phase = iota
	// PhaseReading collects a temperature/humidity reading.
	PhaseReading
	// PhaseResult shows the recommendation and charts.
	PhaseResult
)

// Recorder stores an evaluation; nil disables history recording.
type Recorder func(s *vent.System, r vent.Reading, rec vent.Recommendation) error

// Options configures the TUI model.
type Options struct {
	// TempMin and TempMax prefill the range inputs.
	TempMin float64
	// TempMax is the inclusive upper bound prefill.
	TempMax float64
	// Recorder persists evaluations when set.
	Recorder Recorder
}

// Model is the Bubble Tea model for the ventctl advisor.
type Model struct {
	header *components.Header

	rangeInputs   []*components.NumberInput
	readingInputs []*components.NumberInput
	focus         int

	phase   Phase
	system  *vent.System
	reading vent.Reading
	rec     vent.Recommendation

	recorder Recorder

	errMsg    string
	statusMsg string

	width    int
	height   int
	quitting bool
}

// New creates a new TUI model.
func New(opts Options) *Model {
	minInput := components.NewNumberInput("temp_min", "Range min")
	minInput.SetValue(formatNumber(opts.TempMin))
	maxInput := components.NewNumberInput("temp_max", "Range max")
	maxInput.SetValue(formatNumber(opts.TempMax))

	tempInput := components.NewNumberInput("temperature", "Temperature")
	humInput := components.NewNumberInput("humidity", "Humidity %")

	return &Model{
		header:        components.NewHeader("ventctl", "Tsukamoto fuzzy ventilation advisor"),
		rangeInputs:   []*components.NumberInput{minInput, maxInput},
		readingInputs: []*components.NumberInput{tempInput, humInput},
		phase:         PhaseRange,
		recorder:      opts.Recorder,
	}
}

// Init is the Bubble Tea initialization function.
func (m *Model) Init() tea.Cmd {
	return m.rangeInputs[0].Focus()
}

// Update is the Bubble Tea update function.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case HistorySavedMsg:
		m.statusMsg = "Saved to history."
		return m, nil

	case HistoryErrorMsg:
		m.statusMsg = ""
		logging.Warn("failed to record evaluation", "error", msg.Err)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		}
		return m.updateKey(msg)
	}

	return m, m.updateInputs(msg)
}

// updateKey routes key presses by phase.
func (m *Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.phase == PhaseResult {
		switch msg.String() {
		case "n":
			return m.startReading()
		case "r":
			return m.startRange()
		case "q", "esc":
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}

	inputs := m.activeInputs()
	switch msg.String() {
	case "tab", "down":
		return m, m.setFocus((m.focus + 1) % len(inputs))
	case "shift+tab", "up":
		return m, m.setFocus((m.focus + len(inputs) - 1) % len(inputs))
	case "enter":
		if m.focus < len(inputs)-1 {
			return m, m.setFocus(m.focus + 1)
		}
		return m.submit()
	case "esc":
		m.quitting = true
		return m, tea.Quit
	}

	return m, m.updateInputs(msg)
}

// updateInputs forwards a message to the focused input.
func (m *Model) updateInputs(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	for _, input := range m.activeInputs() {
		_, cmd := input.Update(msg)
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

// activeInputs returns the inputs of the current phase.
func (m *Model) activeInputs() []*components.NumberInput {
	if m.phase == PhaseRange {
		return m.rangeInputs
	}
	return m.readingInputs
}

// setFocus moves focus to input i of the current phase.
func (m *Model) setFocus(i int) tea.Cmd {
	inputs := m.activeInputs()
	m.focus = i
	var cmds []tea.Cmd
	for j, input := range inputs {
		if j == i {
			cmds = append(cmds, input.Focus())
		} else {
			input.Blur()
		}
	}
	return tea.Batch(cmds...)
}

// submit validates the current phase's inputs and advances.
func (m *Model) submit() (tea.Model, tea.Cmd) {
	switch m.phase {
	case PhaseRange:
		return m.submitRange()
	case PhaseReading:
		return m.submitReading()
	}
	return m, nil
}

func (m *Model) submitRange() (tea.Model, tea.Cmd) {
	min, err := m.rangeInputs[0].Float()
	if err != nil {
		m.errMsg = "Range min must be a number."
		return m, nil
	}
	max, err := m.rangeInputs[1].Float()
	if err != nil {
		m.errMsg = "Range max must be a number."
		return m, nil
	}

	system, err := vent.NewSystem(min, max)
	if err != nil {
		m.errMsg = err.Error()
		return m, nil
	}

	m.system = system
	m.errMsg = ""
	return m.startReading()
}

func (m *Model) submitReading() (tea.Model, tea.Cmd) {
	temp, err := m.readingInputs[0].Float()
	if err != nil {
		m.errMsg = "Temperature must be a number."
		return m, nil
	}
	hum, err := m.readingInputs[1].Float()
	if err != nil {
		m.errMsg = "Humidity must be a number."
		return m, nil
	}

	reading := vent.Reading{Temperature: temp, Humidity: hum}
	rec, err := m.system.Recommend(reading)
	if err != nil {
		m.errMsg = err.Error()
		return m, nil
	}

	m.reading = reading
	m.rec = rec
	m.errMsg = ""
	m.statusMsg = ""
	m.phase = PhaseResult

	logging.Info("evaluation complete",
		"temperature", temp, "humidity", hum,
		"fan_power", rec.FanPower, "overridden", rec.Overridden)

	if m.recorder == nil {
		return m, nil
	}
	recorder, system := m.recorder, m.system
	return m, func() tea.Msg {
		if err := recorder(system, reading, rec); err != nil {
			return HistoryErrorMsg{Err: err}
		}
		return HistorySavedMsg{}
	}
}

// startReading switches to the reading phase with cleared inputs.
func (m *Model) startReading() (tea.Model, tea.Cmd) {
	m.phase = PhaseReading
	m.errMsg = ""
	m.statusMsg = ""
	for _, input := range m.readingInputs {
		input.Reset()
	}
	m.readingInputs[0].SetPlaceholder(fmt.Sprintf("[%s; %s]",
		formatNumber(m.system.TempMin()), formatNumber(m.system.TempMax())))
	m.readingInputs[1].SetPlaceholder("[0; 100]")
	return m, m.setFocus(0)
}

// startRange switches back to the range phase.
func (m *Model) startRange() (tea.Model, tea.Cmd) {
	m.phase = PhaseRange
	m.errMsg = ""
	m.statusMsg = ""
	return m, m.setFocus(0)
}

// View is the Bubble Tea view function.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	sections := []string{m.header.View(), ""}

	switch m.phase {
	case PhaseRange:
		sections = append(sections,
			"Set the temperature range the advisor should work with.",
			"",
			m.rangeInputs[0].View(),
			m.rangeInputs[1].View(),
		)
	case PhaseReading:
		sections = append(sections,
			fmt.Sprintf("Enter a reading (temperature in [%s; %s], humidity in [0; 100]).",
				formatNumber(m.system.TempMin()), formatNumber(m.system.TempMax())),
			"",
			m.readingInputs[0].View(),
			m.readingInputs[1].View(),
		)
	case PhaseResult:
		sections = append(sections, m.resultView())
	}

	if m.errMsg != "" {
		sections = append(sections, "", styles.ErrorStyle.Render(m.errMsg))
	}
	if m.statusMsg != "" {
		sections = append(sections, "", styles.SubtitleStyle.Render(m.statusMsg))
	}

	sections = append(sections, "", styles.HelpStyle.Render(m.helpLine()))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// resultView renders the recommendation and the membership charts.
func (m *Model) resultView() string {
	value := fmt.Sprintf("%.2f%%", m.rec.FanPower)
	result := "Recommended ventilation power: " + styles.ResultValueStyle.Render(value)
	if m.rec.Overridden {
		result += "\n" + styles.OverrideStyle.Render("Full power forced: temperature in the top of its range.")
	}

	tempChart := components.NewChart("Temperature", m.system.TempMin(), m.system.TempMax())
	humChart := components.NewChart("Humidity", vent.HumidityMin, vent.HumidityMax)
	fanChart := components.NewChart("Fan power", vent.HumidityMin, vent.HumidityMax)
	for i, term := range vent.Terms {
		color := styles.TermColors[i%len(styles.TermColors)]
		tempChart.AddSeries(string(term), m.system.TemperatureTerm(term), color)
		humChart.AddSeries(string(term), vent.HumidityTerm(term), color)
		fanChart.AddSeries(string(term), vent.FanTerm(term), color)
	}
	tempChart.SetMarker(m.reading.Temperature)
	humChart.SetMarker(m.reading.Humidity)
	fanChart.SetMarker(m.rec.FanPower)

	return lipgloss.JoinVertical(lipgloss.Left,
		styles.ResultStyle.Render(result),
		"",
		tempChart.View(),
		"",
		humChart.View(),
		"",
		fanChart.View(),
	)
}

// helpLine returns the key hints for the current phase.
func (m *Model) helpLine() string {
	switch m.phase {
	case PhaseResult:
		return "n: new reading • r: change range • q: quit"
	default:
		return "enter: confirm • tab: next field • esc: quit"
	}
}

// formatNumber renders a float without a trailing .0 for whole values.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
