package core

// Message is an immutable log message. The zero value is a Warning with
// empty text.
type Message struct {
	severity Severity
	text     string
}

// NewMessage creates a message of the given severity
func NewMessage(severity Severity, text string) Message {
	return Message{severity: severity, text: text}
}

// Severity returns the severity the message was created with
func (m Message) Severity() Severity {
	return m.severity
}

// Text returns the human-readable text of the message
func (m Message) Text() string {
	return m.text
}

// String renders the message the way handlers print it, without the
// trailing newline.
func (m Message) String() string {
	return m.severity.Label() + ": " + m.text
}
