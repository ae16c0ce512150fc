package bubbletea_test

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/scribe"
	bt "github.com/fwojciec/scribe/bubbletea"
	"github.com/stretchr/testify/require"
)

// initModel creates a model and sends a WindowSizeMsg to initialize the viewport.
func initModel(t *testing.T, session *scribe.Session) bt.Model {
	t.Helper()
	return initModelWithSize(t, session, scribe.DefaultConfig(), 80, 40)
}

// initModelWithSize creates a model with a custom config and terminal size.
func initModelWithSize(t *testing.T, session *scribe.Session, cfg scribe.Config, width, height int) bt.Model {
	t.Helper()
	m := bt.New(session, cfg)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: width, Height: height})
	model, ok := updated.(bt.Model)
	require.True(t, ok)
	return model
}

// updateModel sends a message and returns the updated Model.
func updateModel(t *testing.T, m bt.Model, msg tea.Msg) bt.Model {
	t.Helper()
	updated, _ := m.Update(msg)
	model, ok := updated.(bt.Model)
	require.True(t, ok)
	return model
}

// typeString sends one rune message per character, like a keyboard would.
func typeString(t *testing.T, m bt.Model, s string) bt.Model {
	t.Helper()
	for _, r := range s {
		m = updateModel(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}
