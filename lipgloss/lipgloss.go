// Package lipgloss maps a scribe Theme to lipgloss styles. Both front-ends
// draw with these styles so a theme looks the same in either.
package lipgloss

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/scribe"
)

// Styles holds the lipgloss styles for one frame.
type Styles struct {
	Sender lipgloss.Style
	Banner lipgloss.Style
	Input  lipgloss.Style
}

// NewStyles creates Styles from a Theme, bound to r.
func NewStyles(r *lipgloss.Renderer, t scribe.Theme) Styles {
	return Styles{
		Sender: r.NewStyle().Foreground(Color(t.Sender)).Bold(true),
		Banner: r.NewStyle().Foreground(Color(t.BannerFg)).Background(Color(t.BannerBg)),
		Input:  r.NewStyle().Foreground(Color(t.Input)),
	}
}

// Color converts an ANSI color index to a lipgloss color. Negative indices
// keep the terminal default.
func Color(index int) lipgloss.TerminalColor {
	if index < 0 {
		return lipgloss.NoColor{}
	}
	return lipgloss.Color(strconv.Itoa(index))
}
