package scribe

// LocalUser is the sender tag stamped on lines typed at this terminal.
const LocalUser = "me"

// Terminator is the character that commits the input buffer.
const Terminator = '\n'

// Message is a committed line of text. Messages are values and are never
// modified after the session creates them.
type Message struct {
	Sender string
	Data   string
}
