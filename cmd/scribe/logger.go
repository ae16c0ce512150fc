package main

import (
	"fmt"
	"strconv"

	"github.com/fwojciec/scribe"
	"go.uber.org/zap"
)

// newLogger returns a debug-level logger writing only to path. The terminal
// is the user interface, so nothing is ever logged to stdout or stderr. An
// empty path disables logging.
func newLogger(path string) (*zap.Logger, error) {
	if path == "" {
		return zap.NewNop(), nil
	}
	config := zap.NewDevelopmentConfig()
	config.OutputPaths = []string{path}
	config.ErrorOutputPaths = []string{path}
	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

// logKey returns a key handler that records every dispatched key.
func logKey(logger *zap.Logger) func(scribe.Key, scribe.Transition) {
	return func(k scribe.Key, t scribe.Transition) {
		logger.Debug("Key dispatched",
			zap.String("key", describeKey(k)),
			zap.Stringer("transition", t))
	}
}

func describeKey(k scribe.Key) string {
	switch k := k.(type) {
	case scribe.KeyEscape:
		return "esc"
	case scribe.KeyBackspace:
		return "backspace"
	case scribe.KeyChar:
		return strconv.QuoteRune(k.Rune)
	case scribe.KeyOther:
		return strconv.Quote(k.Seq)
	default:
		return fmt.Sprintf("%T", k)
	}
}
