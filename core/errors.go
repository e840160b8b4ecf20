package core

import "errors"

var (
	// ErrNoHandler is returned when a message reaches the end of a chain
	// without being accepted.
	ErrNoHandler = errors.New("Error: No handler")

	// ErrResourceUnavailable is wrapped by handler constructors that cannot
	// acquire their backing resource.
	ErrResourceUnavailable = errors.New("Error: Could not open error log file")

	// ErrTerminalSeverity matches every *TerminalError under errors.Is.
	ErrTerminalSeverity = errors.New("terminal severity")
)

// TerminalError is returned by handlers that accept a message only to
// abort its dispatch. Error() yields "<Label>: <text>", for example
// "Fatal Error: disk gone".
type TerminalError struct {
	Severity Severity
	Text     string
}

// NewTerminalError builds a TerminalError from the accepted message
func NewTerminalError(msg Message) *TerminalError {
	return &TerminalError{Severity: msg.Severity(), Text: msg.Text()}
}

func (e *TerminalError) Error() string {
	return e.Severity.Label() + ": " + e.Text
}

// Is reports whether target is ErrTerminalSeverity
func (e *TerminalError) Is(target error) bool {
	return target == ErrTerminalSeverity
}
