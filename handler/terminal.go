package handler

import (
	"github.com/philipp01105/logchain/core"
)

// terminalHandler accepts messages of one severity and fails every one
// of them with a *core.TerminalError.
type terminalHandler struct {
	severityMatcher
}

// Handle returns a *core.TerminalError carrying the message text
func (h *terminalHandler) Handle(msg core.Message) error {
	return core.NewTerminalError(msg)
}

// Close is a no-op
func (h *terminalHandler) Close() error {
	return nil
}

// FatalHandler accepts Fatal messages and aborts their dispatch with
// "Fatal Error: <text>".
type FatalHandler struct {
	terminalHandler
}

// NewFatalHandler creates a new fatal handler
func NewFatalHandler() *FatalHandler {
	return &FatalHandler{terminalHandler{severityMatcher(core.FatalSeverity)}}
}

// UnknownHandler accepts Unknown messages and aborts their dispatch with
// "Unknown Error: <text>".
type UnknownHandler struct {
	terminalHandler
}

// NewUnknownHandler creates a new unknown handler
func NewUnknownHandler() *UnknownHandler {
	return &UnknownHandler{terminalHandler{severityMatcher(core.UnknownSeverity)}}
}
