// Package bubbletea provides a full-screen Bubble Tea front-end for a scribe
// session.
package bubbletea

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Run creates and runs the Bubble Tea program on the alternate screen. It
// blocks until the program exits and returns the final model. Cancelling ctx
// quits the program.
func Run(ctx context.Context, m Model, opts ...tea.ProgramOption) (Model, error) {
	opts = append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)
	p := tea.NewProgram(m, opts...)
	go func() {
		<-ctx.Done()
		p.Quit()
	}()
	final, err := p.Run()
	if err != nil {
		return m, err
	}
	fm, ok := final.(Model)
	if !ok {
		return m, fmt.Errorf("unexpected final model %T", final)
	}
	return fm, nil
}
