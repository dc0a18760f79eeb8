package components

import (
	"github.com/ventlab/ventctl/internal/tui/styles"
)

// Header renders the application title bar.
type Header struct {
	title    string
	subtitle string
}

// NewHeader creates a header with the given title and subtitle.
func NewHeader(title, subtitle string) *Header {
	return &Header{title: title, subtitle: subtitle}
}

// SetSubtitle updates the line under the title.
func (h *Header) SetSubtitle(subtitle string) {
	h.subtitle = subtitle
}

// View renders the header.
func (h *Header) View() string {
	out := styles.TitleStyle.Render(h.title)
	if h.subtitle != "" {
		out += "\n" + styles.SubtitleStyle.Render(h.subtitle)
	}
	return out
}
