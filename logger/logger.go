package logger

import (
	"go.uber.org/zap"

	"github.com/philipp01105/logchain/core"
	"github.com/philipp01105/logchain/handler"
)

// Logger dispatches messages into a handler chain (immutable)
type Logger struct {
	chain *handler.Chain
}

// Builder provides a fluent API for building Logger instances
type Builder struct {
	handlers    []handler.Handler
	diagnostics *zap.Logger
}

// NewBuilder creates a new logger builder
func NewBuilder() *Builder {
	return &Builder{}
}

// WithHandlers appends handlers to the chain, in dispatch order
func (b *Builder) WithHandlers(hs ...handler.Handler) *Builder {
	b.handlers = append(b.handlers, hs...)
	return b
}

// WithDiagnostics sets the zap logger that receives routing records
func (b *Builder) WithDiagnostics(l *zap.Logger) *Builder {
	b.diagnostics = l
	return b
}

// Build links the handlers into a chain and creates the Logger. On
// failure every handler given to the builder has been closed.
func (b *Builder) Build() (*Logger, error) {
	c, err := handler.NewChain(handler.ChainConfig{Logger: b.diagnostics}, b.handlers...)
	if err != nil {
		return nil, err
	}
	return &Logger{chain: c}, nil
}

// Log dispatches a message of the given severity
func (l *Logger) Log(severity core.Severity, text string) error {
	return l.chain.Dispatch(core.NewMessage(severity, text))
}

// Warning dispatches a Warning message
func (l *Logger) Warning(text string) error {
	return l.Log(core.WarningSeverity, text)
}

// Error dispatches an Error message
func (l *Logger) Error(text string) error {
	return l.Log(core.ErrorSeverity, text)
}

// Fatal dispatches a Fatal message. The process is not terminated; with a
// FatalHandler in the chain the returned error is a *core.TerminalError.
func (l *Logger) Fatal(text string) error {
	return l.Log(core.FatalSeverity, text)
}

// Unknown dispatches an Unknown message
func (l *Logger) Unknown(text string) error {
	return l.Log(core.UnknownSeverity, text)
}

// Chain returns the underlying handler chain
func (l *Logger) Chain() *handler.Chain {
	return l.chain
}

// Close closes the logger's chain
func (l *Logger) Close() error {
	return l.chain.Close()
}
