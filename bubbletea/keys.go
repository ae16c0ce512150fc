package bubbletea

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/scribe"
)

// TranslateKey converts a Bubble Tea key message into scribe keys. A rune
// message carrying several runes (a paste) becomes one key per rune, so every
// pasted line break commits exactly once. Enter and Ctrl+J (line feed) both
// commit, as in the raw decoder.
func TranslateKey(msg tea.KeyMsg) []scribe.Key {
	if msg.Alt {
		return []scribe.Key{scribe.KeyOther{Seq: msg.String()}}
	}

	switch msg.Type {
	case tea.KeyEsc:
		return []scribe.Key{scribe.KeyEscape{}}
	case tea.KeyEnter, tea.KeyCtrlJ:
		return []scribe.Key{scribe.KeyChar{Rune: scribe.Terminator}}
	case tea.KeyBackspace:
		return []scribe.Key{scribe.KeyBackspace{}}
	case tea.KeySpace:
		return []scribe.Key{scribe.KeyChar{Rune: ' '}}
	case tea.KeyTab:
		return []scribe.Key{scribe.KeyChar{Rune: '\t'}}
	case tea.KeyRunes:
		keys := make([]scribe.Key, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			if r == '\r' {
				r = scribe.Terminator
			}
			keys = append(keys, scribe.KeyChar{Rune: r})
		}
		return keys
	}
	return []scribe.Key{scribe.KeyOther{Seq: msg.String()}}
}
