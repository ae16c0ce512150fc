package scribe

import "errors"

// Sentinel errors for common failure modes.
var (
	// ErrValidation indicates a configuration failed validation.
	ErrValidation = errors.New("validation error")

	// ErrNotTerminal indicates the input device is not a terminal, so raw
	// mode cannot be entered.
	ErrNotTerminal = errors.New("not a terminal")
)
