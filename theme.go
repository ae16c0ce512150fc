package scribe

// Theme defines semantic color mappings using ANSI color indices (0-15).
// A negative index leaves the terminal's default color in place.
type Theme struct {
	Sender   int // Foreground of the bold sender label
	BannerFg int // Status banner text
	BannerBg int // Status banner background
	Input    int // Pending input characters
}

// DefaultTheme returns the default ANSI color mapping: plain bold senders and
// a black-on-white status banner.
func DefaultTheme() Theme {
	return Theme{
		Sender:   -1,
		BannerFg: 0,
		BannerBg: 7,
		Input:    -1,
	}
}
