package scribe

// Session holds the message log and the pending input buffer.
// The log is append-only and ordered by commit time.
type Session struct {
	sender   string
	messages []Message
	input    []rune
}

// NewSession creates an empty session. Every message committed through it is
// attributed to sender; an empty sender falls back to LocalUser.
func NewSession(sender string) *Session {
	if sender == "" {
		sender = LocalUser
	}
	return &Session{sender: sender}
}

// AppendChar appends c to the input buffer. Any rune is accepted.
func (s *Session) AppendChar(c rune) {
	s.input = append(s.input, c)
}

// Backspace removes the last rune of the input buffer. It is a no-op when
// the buffer is empty.
func (s *Session) Backspace() {
	if len(s.input) == 0 {
		return
	}
	s.input = s.input[:len(s.input)-1]
}

// Commit converts the input buffer into a Message and clears the buffer.
// An empty buffer produces no message and reports false; the buffer is
// cleared either way.
func (s *Session) Commit() (Message, bool) {
	data := string(s.input)
	s.input = s.input[:0]
	if data == "" {
		return Message{}, false
	}
	msg := Message{Sender: s.sender, Data: data}
	s.messages = append(s.messages, msg)
	return msg, true
}

// InputChar is the generic character path: Terminator commits, any other
// rune is appended. It reports whether a commit was attempted.
func (s *Session) InputChar(c rune) bool {
	if c == Terminator {
		s.Commit()
		return true
	}
	s.AppendChar(c)
	return false
}

// Sender returns the label attached to committed messages.
func (s *Session) Sender() string { return s.sender }

// Messages returns a copy of the log in commit order.
func (s *Session) Messages() []Message {
	out := make([]Message, len(s.messages))
	copy(out, s.messages)
	return out
}

// Input returns the pending input buffer as a string.
func (s *Session) Input() string { return string(s.input) }

// InputRunes returns a copy of the pending input buffer.
func (s *Session) InputRunes() []rune {
	out := make([]rune, len(s.input))
	copy(out, s.input)
	return out
}
