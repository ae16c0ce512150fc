package bubbletea_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/exp/teatest"
	"github.com/fwojciec/scribe"
	bt "github.com/fwojciec/scribe/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Parallel()

	m := bt.New(scribe.NewSession(""), scribe.DefaultConfig())

	assert.False(t, m.Quitting())
	assert.Nil(t, m.Init())
	assert.Equal(t, "Initializing...", m.View())
}

func TestModel_Update(t *testing.T) {
	t.Parallel()

	t.Run("window size initializes viewport", func(t *testing.T) {
		t.Parallel()

		m := initModel(t, scribe.NewSession(""))

		assert.Equal(t, 80, m.Viewport.Width)
		assert.Equal(t, 29, m.Viewport.Height)
		assert.Contains(t, m.View(), scribe.DefaultBanner)
	})

	t.Run("banner sits on the status row", func(t *testing.T) {
		t.Parallel()

		m := initModel(t, scribe.NewSession(""))
		m = typeString(t, m, "abc")

		lines := strings.Split(m.View(), "\n")
		require.Len(t, lines, 30)
		assert.Equal(t, scribe.DefaultBanner+"abc", lines[29])
	})

	t.Run("short window keeps the banner on the last row", func(t *testing.T) {
		t.Parallel()

		m := initModelWithSize(t, scribe.NewSession(""), scribe.DefaultConfig(), 80, 10)

		assert.Equal(t, 9, m.Viewport.Height)
		lines := strings.Split(m.View(), "\n")
		require.Len(t, lines, 10)
		assert.Contains(t, lines[9], scribe.DefaultBanner)
	})

	t.Run("status row one hides the log", func(t *testing.T) {
		t.Parallel()

		cfg := scribe.DefaultConfig()
		cfg.StatusRow = 1
		m := initModelWithSize(t, scribe.NewSession(""), cfg, 80, 24)

		assert.Equal(t, scribe.DefaultBanner, m.View())
	})

	t.Run("resize updates viewport dimensions", func(t *testing.T) {
		t.Parallel()

		m := initModel(t, scribe.NewSession(""))
		m = updateModel(t, m, tea.WindowSizeMsg{Width: 120, Height: 20})

		assert.Equal(t, 120, m.Viewport.Width)
		assert.Equal(t, 19, m.Viewport.Height)
	})

	t.Run("typing fills the input buffer", func(t *testing.T) {
		t.Parallel()

		session := scribe.NewSession("")
		m := initModel(t, session)
		m = typeString(t, m, "hello")

		assert.Equal(t, "hello", session.Input())
		assert.Contains(t, m.View(), scribe.DefaultBanner+"hello")
	})

	t.Run("enter commits a message", func(t *testing.T) {
		t.Parallel()

		session := scribe.NewSession("")
		m := initModel(t, session)
		m = typeString(t, m, "hi")
		m = updateModel(t, m, tea.KeyMsg{Type: tea.KeyEnter})

		assert.Equal(t, []scribe.Message{{Sender: "me", Data: "hi"}}, session.Messages())
		assert.Empty(t, session.Input())
		assert.Contains(t, m.View(), "me: hi")
	})

	t.Run("enter with empty input adds nothing", func(t *testing.T) {
		t.Parallel()

		session := scribe.NewSession("")
		m := initModel(t, session)
		updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
		model := updated.(bt.Model)

		assert.Nil(t, cmd)
		assert.Empty(t, session.Messages())
		assert.Empty(t, bt.RenderContent(model))
	})

	t.Run("backspace removes the last character", func(t *testing.T) {
		t.Parallel()

		session := scribe.NewSession("")
		m := initModel(t, session)
		m = typeString(t, m, "ab")
		m = updateModel(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
		_ = updateModel(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
		_ = updateModel(t, m, tea.KeyMsg{Type: tea.KeyBackspace})

		assert.Empty(t, session.Input())
	})

	t.Run("paste commits once per line break", func(t *testing.T) {
		t.Parallel()

		session := scribe.NewSession("")
		m := initModel(t, session)
		m = updateModel(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("ab\ncd\n\n"), Paste: true})

		assert.Equal(t, []scribe.Message{
			{Sender: "me", Data: "ab"},
			{Sender: "me", Data: "cd"},
		}, session.Messages())
		content := bt.RenderContent(m)
		assert.Less(t, strings.Index(content, "ab"), strings.Index(content, "cd"))
	})

	t.Run("escape quits", func(t *testing.T) {
		t.Parallel()

		m := initModel(t, scribe.NewSession(""))
		updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
		model := updated.(bt.Model)

		assert.True(t, model.Quitting())
		require.NotNil(t, cmd)
		_, isQuit := cmd().(tea.QuitMsg)
		assert.True(t, isQuit)
	})

	t.Run("ctrl+c is ignored", func(t *testing.T) {
		t.Parallel()

		session := scribe.NewSession("")
		m := initModel(t, session)
		m = typeString(t, m, "x")
		updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
		model := updated.(bt.Model)

		assert.Nil(t, cmd)
		assert.False(t, model.Quitting())
		assert.Equal(t, "x", session.Input())
	})

	t.Run("keys before the first resize still edit the session", func(t *testing.T) {
		t.Parallel()

		session := scribe.NewSession("")
		m := bt.New(session, scribe.DefaultConfig())
		m = typeString(t, m, "early")
		m = updateModel(t, m, tea.KeyMsg{Type: tea.KeyEnter})
		m = updateModel(t, m, tea.WindowSizeMsg{Width: 80, Height: 40})

		assert.Contains(t, m.View(), "me: early")
	})

	t.Run("long input shows its tail", func(t *testing.T) {
		t.Parallel()

		m := initModelWithSize(t, scribe.NewSession(""), scribe.DefaultConfig(), 50, 40)
		m = typeString(t, m, "0123456789abcdefghijXYZ")

		lines := strings.Split(m.View(), "\n")
		last := lines[len(lines)-1]
		assert.LessOrEqual(t, lipgloss.Width(last), 50)
		assert.True(t, strings.HasSuffix(last, "XYZ"), "got %q", last)
		assert.Contains(t, last, "…")
	})
}

func TestClipLeft(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "abc", bt.ClipLeft("abc", 3))
	assert.Equal(t, "…cd", bt.ClipLeft("abcd", 3))
	assert.Equal(t, "", bt.ClipLeft("abc", 0))
	assert.Equal(t, "", bt.ClipLeft("", 5))
}

func TestModel_Teatest(t *testing.T) {
	t.Parallel()

	t.Run("type commit and escape", func(t *testing.T) {
		t.Parallel()

		session := scribe.NewSession("")
		m := bt.New(session, scribe.DefaultConfig())
		tm := teatest.NewTestModel(t, m,
			teatest.WithInitialTermSize(80, 40),
		)

		tm.Type("hi")
		tm.Send(tea.KeyMsg{Type: tea.KeyEnter})

		teatest.WaitFor(t, tm.Output(), func(out []byte) bool {
			return bytes.Contains(out, []byte("me: hi"))
		}, teatest.WithDuration(5*time.Second))

		tm.Send(tea.KeyMsg{Type: tea.KeyEsc})

		fm := tm.FinalModel(t, teatest.WithFinalTimeout(5*time.Second))
		final, ok := fm.(bt.Model)
		require.True(t, ok)
		assert.True(t, final.Quitting())
		assert.Equal(t, []scribe.Message{{Sender: "me", Data: "hi"}}, session.Messages())
	})
}
