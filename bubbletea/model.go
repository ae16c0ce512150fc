package bubbletea

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/scribe"
	"github.com/mattn/go-runewidth"
)

var _ tea.Model = Model{}

// Model is the Bubble Tea model for the scribe TUI.
type Model struct {
	// Viewport is the scrollable message log. Exported for test access.
	Viewport viewport.Model

	session *scribe.Session
	config  scribe.Config
	styles  Styles
	blocks  []*MessageBlock

	width    int
	ready    bool
	quitting bool
}

// New creates a new TUI Model drawing session with config.
func New(session *scribe.Session, config scribe.Config) Model {
	return Model{
		session: session,
		config:  config,
		styles:  NewStyles(config.Theme),
	}
}

// Quitting reports whether the user pressed Escape.
func (m Model) Quitting() bool { return m.quitting }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg), nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	var b strings.Builder

	// Message log fills the rows above the status row.
	if m.Viewport.Height > 0 {
		b.WriteString(m.Viewport.View())
		b.WriteString("\n")
	}

	// Status banner followed by the pending input on the same row.
	banner := m.styles.Banner.Render(m.config.Banner)
	b.WriteString(banner)
	input := clipLeft(m.session.Input(), m.width-lipgloss.Width(banner))
	if input != "" {
		b.WriteString(m.styles.Input.Render(input))
	}

	return b.String()
}

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) Model {
	// Rows above the banner: up to the configured status row, but never
	// pushing the banner off the bottom of the window.
	vpHeight := min(m.config.StatusRow-1, msg.Height-1)
	if vpHeight < 0 {
		vpHeight = 0
	}

	if !m.ready {
		m.Viewport = viewport.New(msg.Width, vpHeight)
		m.ready = true
	} else {
		m.Viewport.Width = msg.Width
		m.Viewport.Height = vpHeight
	}
	m.width = msg.Width

	m = m.syncBlocks()
	m.Viewport.SetContent(m.renderContent())
	m.Viewport.GotoBottom()
	return m
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	committed := false
	for _, k := range TranslateKey(msg) {
		switch scribe.Dispatch(m.session, k) {
		case scribe.TransitionTerminated:
			m.quitting = true
			return m, tea.Quit
		case scribe.TransitionCommitted:
			committed = true
		}
	}

	if committed && m.ready {
		m = m.syncBlocks()
		m.Viewport.SetContent(m.renderContent())
		m.Viewport.GotoBottom()
	}
	return m, nil
}

// syncBlocks adds blocks for messages committed since the last sync.
func (m Model) syncBlocks() Model {
	msgs := m.session.Messages()
	for _, msg := range msgs[len(m.blocks):] {
		m.blocks = append(m.blocks, NewMessageBlock(msg, m.styles))
	}
	return m
}

func (m Model) renderContent() string {
	if len(m.blocks) == 0 {
		return ""
	}
	var b strings.Builder
	for i, block := range m.blocks {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(block.View(m.Viewport.Width))
	}
	return b.String()
}

// clipLeft keeps the tail of s that fits in width cells, marking the cut
// with an ellipsis.
func clipLeft(s string, width int) string {
	if width <= 0 {
		return ""
	}
	w := runewidth.StringWidth(s)
	if w <= width {
		return s
	}
	return runewidth.TruncateLeft(s, w-width+1, "…")
}
