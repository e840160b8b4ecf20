package handler

import (
	"io"
	"os"
	"sync"

	"github.com/philipp01105/logchain/core"
	"github.com/philipp01105/logchain/formatter"
)

// WarningHandler prints Warning messages to a writer
type WarningHandler struct {
	severityMatcher
	writer          io.Writer
	formatter       formatter.Formatter
	writerFormatter formatter.WriterFormatter
	mu              sync.Mutex
}

// WarningConfig holds configuration for the warning handler
type WarningConfig struct {
	// Writer to write to (default: os.Stdout)
	Writer io.Writer
	// Formatter to use (default: TextFormatter)
	Formatter formatter.Formatter
}

// NewWarningHandler creates a new warning handler
func NewWarningHandler(cfg WarningConfig) *WarningHandler {
	if cfg.Writer == nil {
		cfg.Writer = os.Stdout
	}
	if cfg.Formatter == nil {
		cfg.Formatter = formatter.NewTextFormatter(formatter.Config{})
	}

	h := &WarningHandler{
		severityMatcher: severityMatcher(core.WarningSeverity),
		writer:          cfg.Writer,
		formatter:       cfg.Formatter,
	}

	// Cache WriterFormatter for zero-alloc path
	h.writerFormatter, _ = cfg.Formatter.(formatter.WriterFormatter)

	return h
}

// Handle writes "Warning: <text>" to the configured writer
func (h *WarningHandler) Handle(msg core.Message) error {
	if h.writerFormatter != nil {
		h.mu.Lock()
		err := h.writerFormatter.FormatTo(msg, h.writer)
		h.mu.Unlock()
		return err
	}

	data, err := h.formatter.Format(msg)
	if err != nil {
		return err
	}

	h.mu.Lock()
	_, err = h.writer.Write(data)
	h.mu.Unlock()
	return err
}

// Close is a no-op; the writer belongs to the caller
func (h *WarningHandler) Close() error {
	return nil
}
