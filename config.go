package scribe

// Default display values.
const (
	DefaultStatusRow = 30
	DefaultBanner    = "Input buffer.  Press [ESC] to exit..."
	DefaultFarewell  = "Fin!"
)

// Config controls the presentation of a session. The zero value is not
// usable; start from DefaultConfig.
type Config struct {
	// Sender labels every committed message.
	Sender string
	// StatusRow is the 1-indexed terminal row of the status banner.
	StatusRow int
	// Banner is the literal status banner text.
	Banner string
	// Farewell is written once when the loop ends on Escape.
	Farewell string
	Theme    Theme
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		Sender:    LocalUser,
		StatusRow: DefaultStatusRow,
		Banner:    DefaultBanner,
		Farewell:  DefaultFarewell,
		Theme:     DefaultTheme(),
	}
}
