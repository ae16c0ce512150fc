// Package term puts the controlling terminal into raw mode and decodes the
// raw byte stream it produces into scribe keys.
package term

import (
	"fmt"
	"os"
	"sync"

	"github.com/fwojciec/scribe"
	"golang.org/x/term"
)

// Terminal holds a terminal in raw mode. Close restores the mode that was in
// effect when Open was called.
type Terminal struct {
	mu    sync.Mutex
	fd    int
	state *term.State
}

// Open switches f into raw, unbuffered, non-echoing mode. It fails with
// scribe.ErrNotTerminal when f is not a terminal. Callers should defer Close
// immediately after a successful Open.
func Open(f *os.File) (*Terminal, error) {
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return nil, fmt.Errorf("%s: %w", f.Name(), scribe.ErrNotTerminal)
	}
	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("enter raw mode: %w", err)
	}
	return &Terminal{fd: fd, state: state}, nil
}

// Close restores the saved terminal mode. Calling Close more than once, or
// from several goroutines, is safe; only the first call touches the terminal.
func (t *Terminal) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.state == nil {
		return nil
	}
	state := t.state
	t.state = nil
	if err := term.Restore(t.fd, state); err != nil {
		return fmt.Errorf("restore terminal: %w", err)
	}
	return nil
}
