package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ventlab/ventctl/internal/fuzzy"
	"github.com/ventlab/ventctl/internal/tui/styles"
)

// sparkLevels maps a membership grade to a block character, lowest first.
var sparkLevels = []rune(" ▁▂▃▄▅▆▇█")

// DefaultChartWidth is the sample width of a chart row.
const DefaultChartWidth = 48

// Series is one membership function drawn on a chart.
type Series struct {
	Name  string
	MF    fuzzy.MembershipFunc
	Color lipgloss.Color
}

// Chart renders the membership functions of one variable as colored
// sparklines, with an optional marker at a crisp value. It mirrors the
// per-variable plots of the advisor's original visualization.
type Chart struct {
	title  string
	min    float64
	max    float64
	width  int
	series []Series
	marker *float64
}

// NewChart creates a chart over the [min, max] axis.
func NewChart(title string, min, max float64) *Chart {
	return &Chart{
		title: title,
		min:   min,
		max:   max,
		width: DefaultChartWidth,
	}
}

// AddSeries appends a membership function to draw.
func (c *Chart) AddSeries(name string, mf fuzzy.MembershipFunc, color lipgloss.Color) {
	c.series = append(c.series, Series{Name: name, MF: mf, Color: color})
}

// SetWidth sets the sample width of the chart rows.
func (c *Chart) SetWidth(width int) {
	if width < 8 {
		width = 8
	}
	c.width = width
}

// SetMarker places the crisp-value marker.
func (c *Chart) SetMarker(value float64) {
	v := value
	c.marker = &v
}

// ClearMarker removes the crisp-value marker.
func (c *Chart) ClearMarker() {
	c.marker = nil
}

// sample returns the axis value at column i.
func (c *Chart) sample(i int) float64 {
	return c.min + (c.max-c.min)*float64(i)/float64(c.width-1)
}

// markerColumn returns the column of the marker, or -1 when unset or
// outside the axis.
func (c *Chart) markerColumn() int {
	if c.marker == nil || c.max <= c.min {
		return -1
	}
	v := *c.marker
	if v < c.min || v > c.max {
		return -1
	}
	col := int((v - c.min) / (c.max - c.min) * float64(c.width-1))
	if col >= c.width {
		col = c.width - 1
	}
	return col
}

// View renders the chart.
func (c *Chart) View() string {
	var sb strings.Builder

	sb.WriteString(styles.SubtitleStyle.Render(c.title))
	sb.WriteString("\n")

	nameWidth := 0
	for _, s := range c.series {
		if len(s.Name) > nameWidth {
			nameWidth = len(s.Name)
		}
	}

	for _, s := range c.series {
		line := make([]rune, c.width)
		for i := 0; i < c.width; i++ {
			g := s.MF.Grade(c.sample(i))
			if g < 0 {
				g = 0
			}
			if g > 1 {
				g = 1
			}
			level := int(g * float64(len(sparkLevels)-1))
			line[i] = sparkLevels[level]
		}

		style := lipgloss.NewStyle().Foreground(s.Color)
		sb.WriteString(styles.LabelStyle.Render(fmt.Sprintf("%*s ", nameWidth, s.Name)))
		sb.WriteString(style.Render(string(line)))
		sb.WriteString("\n")
	}

	// Marker row
	if col := c.markerColumn(); col >= 0 {
		pad := strings.Repeat(" ", nameWidth+1+col)
		sb.WriteString(pad)
		sb.WriteString(styles.MarkerStyle.Render("▲"))
		sb.WriteString(" ")
		sb.WriteString(styles.MarkerStyle.Render(fmt.Sprintf("%.1f", *c.marker)))
		sb.WriteString("\n")
	}

	// Axis row
	axis := fmt.Sprintf("%-*s%*s",
		c.width/2, fmt.Sprintf("%g", c.min),
		c.width-c.width/2, fmt.Sprintf("%g", c.max))
	sb.WriteString(strings.Repeat(" ", nameWidth+1))
	sb.WriteString(styles.AxisStyle.Render(axis))

	return sb.String()
}
