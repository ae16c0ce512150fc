package bubbletea

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/scribe"
	scribelipgloss "github.com/fwojciec/scribe/lipgloss"
)

// Styles maps a Theme to lipgloss styles for TUI rendering.
type Styles = scribelipgloss.Styles

// NewStyles creates Styles from a Theme using the default lipgloss renderer.
func NewStyles(t scribe.Theme) Styles {
	return scribelipgloss.NewStyles(lipgloss.DefaultRenderer(), t)
}
