// Package mock provides test doubles for scribe interfaces using function fields.
package mock

import (
	"io"

	"github.com/fwojciec/scribe"
)

// Interface compliance checks.
var (
	_ scribe.KeyReader = (*KeyReader)(nil)
	_ scribe.Renderer  = (*Renderer)(nil)
)

// KeyReader is a test double for scribe.KeyReader.
// Set ReadKeyFn before calling ReadKey.
type KeyReader struct {
	ReadKeyFn func() (scribe.Key, error)
}

// ReadKey delegates to ReadKeyFn.
func (r *KeyReader) ReadKey() (scribe.Key, error) {
	return r.ReadKeyFn()
}

// Keys returns a KeyReader that yields keys in order and then io.EOF.
func Keys(keys ...scribe.Key) *KeyReader {
	i := 0
	return &KeyReader{
		ReadKeyFn: func() (scribe.Key, error) {
			if i >= len(keys) {
				return nil, io.EOF
			}
			k := keys[i]
			i++
			return k, nil
		},
	}
}

// Renderer is a test double for scribe.Renderer.
// Set the function fields for the methods you need.
type Renderer struct {
	RenderFn   func(s *scribe.Session) error
	FarewellFn func() error
}

// Render delegates to RenderFn.
func (r *Renderer) Render(s *scribe.Session) error {
	return r.RenderFn(s)
}

// Farewell delegates to FarewellFn.
func (r *Renderer) Farewell() error {
	return r.FarewellFn()
}
