package bubbletea

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/scribe"
)

// MessageBlock renders one committed message as "sender: data" with the
// sender in bold. Long lines wrap to the given width.
type MessageBlock struct {
	msg    scribe.Message
	styles Styles
}

// NewMessageBlock creates a MessageBlock.
func NewMessageBlock(msg scribe.Message, styles Styles) *MessageBlock {
	return &MessageBlock{msg: msg, styles: styles}
}

func (b *MessageBlock) View(width int) string {
	content := b.styles.Sender.Render(b.msg.Sender) + ": " + b.msg.Data
	if width <= 0 {
		return content
	}
	return lipgloss.NewStyle().Width(width).Render(content)
}
