package handler

import (
	"errors"

	"github.com/philipp01105/logchain/core"
)

var (
	// ErrEmptyChain is returned by NewChain when no handlers are given
	ErrEmptyChain = errors.New("chain: no handlers")
	// ErrNilHandler is returned by NewChain when a handler is nil
	ErrNilHandler = errors.New("chain: nil handler")
	// ErrDuplicateHandler is returned by NewChain when two handlers match
	// the same severity
	ErrDuplicateHandler = errors.New("chain: duplicate handler for severity")
	// ErrHandlerClosed is returned when a closed handler is asked to write
	ErrHandlerClosed = errors.New("handler closed")
)

// Handler defines the interface for a single link of a chain
type Handler interface {
	// Severity returns the one severity this handler is bound to
	Severity() core.Severity

	// Accepts reports whether the handler takes responsibility for msg
	Accepts(msg core.Message) bool

	// Handle performs the handler's side effect for an accepted message.
	// Fatal and Unknown handlers always return a *core.TerminalError.
	Handle(msg core.Message) error

	// Close releases the handler's resources
	Close() error
}

// severityMatcher implements Severity and Accepts for handlers bound to
// a single severity.
type severityMatcher core.Severity

func (m severityMatcher) Severity() core.Severity {
	return core.Severity(m)
}

func (m severityMatcher) Accepts(msg core.Message) bool {
	return msg.Severity() == core.Severity(m)
}
