// Package ansi draws a scribe session onto a raw-mode terminal using ANSI
// escape sequences. Every call to Render repaints the whole screen.
package ansi

import (
	"bufio"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/fwojciec/scribe"
	scribelipgloss "github.com/fwojciec/scribe/lipgloss"
	"github.com/muesli/termenv"
)

var _ scribe.Renderer = (*Renderer)(nil)

// Renderer implements scribe.Renderer over an io.Writer. Output is buffered
// and flushed once per frame.
type Renderer struct {
	w      *bufio.Writer
	config scribe.Config
	styles scribelipgloss.Styles
}

// NewRenderer creates a Renderer writing to w. Styles are always emitted as
// 16-color ANSI sequences regardless of what w is attached to.
func NewRenderer(w io.Writer, config scribe.Config) *Renderer {
	lr := lipgloss.NewRenderer(w)
	lr.SetColorProfile(termenv.ANSI)
	styles := scribelipgloss.NewStyles(lr, config.Theme)
	// Input is written character for character; tabs stay tabs.
	styles.Input = styles.Input.TabWidth(lipgloss.NoTabConversion)
	return &Renderer{
		w:      bufio.NewWriter(w),
		config: config,
		styles: styles,
	}
}

// Render clears the screen, writes the message log from the top-left corner,
// then the status banner on the configured row followed by the pending input.
func (r *Renderer) Render(s *scribe.Session) error {
	r.w.WriteString(ansi.EraseEntireScreen)
	r.w.WriteString("\r")
	r.w.WriteString(ansi.CursorPosition(1, 1))

	for _, msg := range s.Messages() {
		r.w.WriteString(r.styles.Sender.Render(msg.Sender))
		r.w.WriteString(": ")
		r.w.WriteString(msg.Data)
		r.w.WriteString("\r\n")
	}

	r.w.WriteString(ansi.CursorPosition(1, r.config.StatusRow))
	r.w.WriteString(r.styles.Banner.Render(r.config.Banner))

	input := s.Input()
	if r.config.Theme.Input >= 0 && input != "" {
		input = r.styles.Input.Render(input)
	}
	r.w.WriteString(input)

	return r.w.Flush()
}

// Farewell writes the farewell line. An empty farewell writes nothing.
func (r *Renderer) Farewell() error {
	if r.config.Farewell == "" {
		return nil
	}
	r.w.WriteString(r.config.Farewell)
	r.w.WriteString("\r\n")
	return r.w.Flush()
}
