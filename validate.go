package scribe

import "fmt"

// Validate checks that c can drive a session and a renderer.
func (c Config) Validate() error {
	if c.Sender == "" {
		return fmt.Errorf("sender must not be empty: %w", ErrValidation)
	}
	if c.StatusRow < 1 {
		return fmt.Errorf("status row must be at least 1, got %d: %w", c.StatusRow, ErrValidation)
	}
	if c.Banner == "" {
		return fmt.Errorf("banner must not be empty: %w", ErrValidation)
	}
	return c.Theme.Validate()
}

// Validate checks that every color index is an ANSI index or negative one.
func (t Theme) Validate() error {
	colors := []struct {
		name  string
		value int
	}{
		{"sender", t.Sender},
		{"banner_fg", t.BannerFg},
		{"banner_bg", t.BannerBg},
		{"input", t.Input},
	}
	for _, c := range colors {
		if c.value < -1 || c.value > 15 {
			return fmt.Errorf("theme %s must be in [-1, 15], got %d: %w", c.name, c.value, ErrValidation)
		}
	}
	return nil
}
