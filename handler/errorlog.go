package handler

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/philipp01105/logchain/core"
	"github.com/philipp01105/logchain/formatter"
)

// DefaultErrorLog is the file the error handler appends to when no
// filename is configured.
const DefaultErrorLog = "ErrorMessage.txt"

// ErrorHandler appends Error messages to a log file it owns for its
// whole lifetime. The file is opened once in NewErrorHandler and
// released by Close.
type ErrorHandler struct {
	severityMatcher
	filename        string
	file            *os.File
	bufWriter       *bufio.Writer
	formatter       formatter.Formatter
	writerFormatter formatter.WriterFormatter
	mu              sync.Mutex
	closed          bool
}

// ErrorConfig holds configuration for the error handler
type ErrorConfig struct {
	// Filename is the path to the error log (default: ErrorMessage.txt)
	Filename string
	// Formatter to use (default: TextFormatter)
	Formatter formatter.Formatter
	// BufferSize is the size of the write buffer (default: 4096)
	BufferSize int
}

// applyErrorDefaults fills in zero-value fields with defaults.
func applyErrorDefaults(cfg *ErrorConfig) {
	if cfg.Filename == "" {
		cfg.Filename = DefaultErrorLog
	}
	if cfg.Formatter == nil {
		cfg.Formatter = formatter.NewTextFormatter(formatter.Config{})
	}
	if cfg.BufferSize <= 0 {
		cfg.BufferSize = 4096
	}
}

// NewErrorHandler opens the error log in append mode, creating it if
// needed. Existing content is preserved. If the file cannot be opened
// the returned error wraps core.ErrResourceUnavailable.
func NewErrorHandler(cfg ErrorConfig) (*ErrorHandler, error) {
	applyErrorDefaults(&cfg)

	// Create directory if it doesn't exist
	if err := os.MkdirAll(filepath.Dir(cfg.Filename), 0755); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", core.ErrResourceUnavailable, cfg.Filename, err)
	}

	file, err := os.OpenFile(cfg.Filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", core.ErrResourceUnavailable, cfg.Filename, err)
	}

	h := &ErrorHandler{
		severityMatcher: severityMatcher(core.ErrorSeverity),
		filename:        cfg.Filename,
		file:            file,
		bufWriter:       bufio.NewWriterSize(file, cfg.BufferSize),
		formatter:       cfg.Formatter,
	}
	h.writerFormatter, _ = cfg.Formatter.(formatter.WriterFormatter)
	return h, nil
}

// Filename returns the path of the error log
func (h *ErrorHandler) Filename() string {
	return h.filename
}

// Handle appends "Error: <text>" to the log and flushes the line
func (h *ErrorHandler) Handle(msg core.Message) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return ErrHandlerClosed
	}

	if h.writerFormatter != nil {
		if err := h.writerFormatter.FormatTo(msg, h.bufWriter); err != nil {
			return err
		}
	} else {
		data, err := h.formatter.Format(msg)
		if err != nil {
			return err
		}
		if _, err := h.bufWriter.Write(data); err != nil {
			return err
		}
	}

	return h.bufWriter.Flush()
}

// Close flushes, syncs and closes the log file. Calling Close more than
// once is a no-op.
func (h *ErrorHandler) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return nil
	}
	h.closed = true

	flushErr := h.bufWriter.Flush()
	if flushErr != nil {
		h.file.Close()
		return flushErr
	}
	syncErr := h.file.Sync()
	if syncErr != nil {
		h.file.Close()
		return syncErr
	}
	return h.file.Close()
}
