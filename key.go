package scribe

// Key is a sealed interface representing a decoded terminal key event.
// Keys are purely semantic. Device read errors come from ReadKey's error
// return, not from keys.
// The unexported marker method prevents external implementations.
type Key interface {
	key()
}

// KeyEscape is a lone Escape key press.
type KeyEscape struct{}

func (KeyEscape) key() {}

// KeyBackspace is the Backspace key.
type KeyBackspace struct{}

func (KeyBackspace) key() {}

// KeyChar carries a single typed character. Enter arrives as
// KeyChar{Rune: Terminator}.
type KeyChar struct {
	Rune rune
}

func (KeyChar) key() {}

// KeyOther is any key the driver does not act on (arrows, function keys,
// control combinations). Seq holds the raw bytes or a key name for logging.
type KeyOther struct {
	Seq string
}

func (KeyOther) key() {}

// Interface compliance checks.
var (
	_ Key = KeyEscape{}
	_ Key = KeyBackspace{}
	_ Key = KeyChar{}
	_ Key = KeyOther{}
)
