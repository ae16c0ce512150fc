package term

import (
	"io"
	"unicode/utf8"

	"github.com/fwojciec/scribe"
)

const (
	esc       = 0x1b
	del       = 0x7f
	readChunk = 64
)

var _ scribe.KeyReader = (*KeyReader)(nil)

// KeyReader decodes keys from a raw-mode terminal byte stream.
//
// An Escape byte that ends the data returned by a single Read is reported as
// scribe.KeyEscape. When more bytes follow it in the same Read it starts an
// escape sequence (arrow keys, function keys, Alt combinations), which is
// reported as scribe.KeyOther.
type KeyReader struct {
	r       io.Reader
	buf     [readChunk]byte
	pending []byte
}

// NewKeyReader creates a KeyReader reading from r.
func NewKeyReader(r io.Reader) *KeyReader {
	return &KeyReader{r: r}
}

// ReadKey blocks until a complete key is available. Read errors, including
// io.EOF, are returned as-is once no buffered bytes remain.
func (k *KeyReader) ReadKey() (scribe.Key, error) {
	for {
		if len(k.pending) > 0 {
			if key, n, ok := decode(k.pending); ok {
				k.pending = k.pending[n:]
				return key, nil
			}
		}

		n, err := k.r.Read(k.buf[:])
		if n > 0 {
			k.pending = append(k.pending, k.buf[:n]...)
			continue
		}
		if err != nil {
			if len(k.pending) > 0 {
				// Incomplete sequence at end of stream.
				key := scribe.KeyOther{Seq: string(k.pending)}
				k.pending = nil
				return key, nil
			}
			return nil, err
		}
	}
}

// decode returns the first key in b and its length in bytes. It reports false
// when b holds only the beginning of a key.
func decode(b []byte) (scribe.Key, int, bool) {
	switch c := b[0]; {
	case c == '\r' || c == '\n':
		return scribe.KeyChar{Rune: scribe.Terminator}, 1, true
	case c == '\t':
		return scribe.KeyChar{Rune: '\t'}, 1, true
	case c == del:
		return scribe.KeyBackspace{}, 1, true
	case c == esc:
		return decodeEscape(b)
	case c < 0x20:
		return scribe.KeyOther{Seq: string(b[:1])}, 1, true
	}

	if !utf8.FullRune(b) {
		return nil, 0, false
	}
	r, n := utf8.DecodeRune(b)
	if r == utf8.RuneError && n == 1 {
		return scribe.KeyOther{Seq: string(b[:1])}, 1, true
	}
	return scribe.KeyChar{Rune: r}, n, true
}

func decodeEscape(b []byte) (scribe.Key, int, bool) {
	if len(b) == 1 || b[1] == esc {
		return scribe.KeyEscape{}, 1, true
	}

	switch b[1] {
	case '[':
		// CSI: parameters and intermediates, then a final byte in 0x40-0x7e.
		for i := 2; i < len(b); i++ {
			if b[i] >= 0x40 && b[i] <= 0x7e {
				return scribe.KeyOther{Seq: string(b[:i+1])}, i + 1, true
			}
		}
		return nil, 0, false
	case 'O':
		// SS3: exactly one more byte.
		if len(b) < 3 {
			return nil, 0, false
		}
		return scribe.KeyOther{Seq: string(b[:3])}, 3, true
	}

	// Alt combined with a character.
	if !utf8.FullRune(b[1:]) {
		return nil, 0, false
	}
	_, n := utf8.DecodeRune(b[1:])
	return scribe.KeyOther{Seq: string(b[:1+n])}, 1 + n, true
}
