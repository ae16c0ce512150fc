package scribe

import "fmt"

// KeyReader delivers terminal key events. ReadKey blocks until the next key
// is available.
type KeyReader interface {
	ReadKey() (Key, error)
}

// Renderer draws a session to the terminal.
type Renderer interface {
	// Render redraws the whole display from s and flushes it to the device.
	Render(s *Session) error
	// Farewell writes the closing line after the loop terminates.
	Farewell() error
}

// Transition is the outcome of dispatching one key to a session.
type Transition int

const (
	TransitionIgnored Transition = iota
	TransitionAppended
	TransitionBackspaced
	TransitionCommitted
	TransitionTerminated
)

func (t Transition) String() string {
	switch t {
	case TransitionIgnored:
		return "ignored"
	case TransitionAppended:
		return "appended"
	case TransitionBackspaced:
		return "backspaced"
	case TransitionCommitted:
		return "committed"
	case TransitionTerminated:
		return "terminated"
	default:
		return fmt.Sprintf("transition(%d)", int(t))
	}
}

// Dispatch applies k to s and reports what happened. Escape does not touch
// the session; the caller decides how to stop.
func Dispatch(s *Session, k Key) Transition {
	switch k := k.(type) {
	case KeyEscape:
		return TransitionTerminated
	case KeyChar:
		if s.InputChar(k.Rune) {
			return TransitionCommitted
		}
		return TransitionAppended
	case KeyBackspace:
		s.Backspace()
		return TransitionBackspaced
	default:
		return TransitionIgnored
	}
}

// Loop reads keys, applies them to a session and redraws after every change.
type Loop struct {
	keys     KeyReader
	renderer Renderer
}

// NewLoop creates a new Loop reading from keys and drawing with renderer.
func NewLoop(keys KeyReader, renderer Renderer) *Loop {
	return &Loop{keys: keys, renderer: renderer}
}

// RunOption configures a single Run invocation.
type RunOption func(*runConfig)

type runConfig struct {
	onKey      func(Key, Transition)
	onFarewell func(error)
}

// WithKeyHandler sets a callback that receives every dispatched key and its
// transition, including ignored keys.
func WithKeyHandler(h func(Key, Transition)) RunOption {
	return func(c *runConfig) {
		c.onKey = h
	}
}

// WithFarewellErrorHandler sets a callback that receives the error from a
// failed farewell write. The failure never ends Run with an error.
func WithFarewellErrorHandler(h func(error)) RunOption {
	return func(c *runConfig) {
		c.onFarewell = h
	}
}

// Run draws s once, then processes keys until Escape. It returns nil when the
// user exits and the first read or render error otherwise. Errors are not
// retried.
func (l *Loop) Run(s *Session, opts ...RunOption) error {
	var cfg runConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	if err := l.renderer.Render(s); err != nil {
		return fmt.Errorf("render: %w", err)
	}

	for {
		k, err := l.keys.ReadKey()
		if err != nil {
			return fmt.Errorf("read key: %w", err)
		}

		t := Dispatch(s, k)
		if cfg.onKey != nil {
			cfg.onKey(k, t)
		}

		switch t {
		case TransitionIgnored:
			continue
		case TransitionTerminated:
			if err := l.renderer.Farewell(); err != nil && cfg.onFarewell != nil {
				cfg.onFarewell(err)
			}
			return nil
		}

		if err := l.renderer.Render(s); err != nil {
			return fmt.Errorf("render: %w", err)
		}
	}
}
