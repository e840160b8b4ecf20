package handler

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/philipp01105/logchain/core"
	"github.com/philipp01105/logchain/formatter"
)

// stubFormatter only implements Formatter, forcing the []byte path
type stubFormatter struct{}

func (stubFormatter) Format(msg core.Message) ([]byte, error) {
	return []byte("<" + msg.Text() + ">\n"), nil
}

func TestWarningHandler(t *testing.T) {
	var buf bytes.Buffer
	h := NewWarningHandler(WarningConfig{Writer: &buf})
	defer h.Close()

	if h.Severity() != core.WarningSeverity {
		t.Errorf("Severity() = %v", h.Severity())
	}
	if h.Accepts(core.NewMessage(core.ErrorSeverity, "x")) {
		t.Error("warning handler must not accept Error messages")
	}
	if !h.Accepts(core.NewMessage(core.WarningSeverity, "x")) {
		t.Error("warning handler must accept Warning messages")
	}

	if err := h.Handle(core.NewMessage(core.WarningSeverity, "An error may occur")); err != nil {
		t.Fatalf("Handle() error = %v", err)
	}
	if buf.String() != "Warning: An error may occur\n" {
		t.Errorf("unexpected output: %q", buf.String())
	}
}

func TestWarningHandler_FormatterFallback(t *testing.T) {
	var buf bytes.Buffer
	h := NewWarningHandler(WarningConfig{Writer: &buf, Formatter: stubFormatter{}})

	if err := h.Handle(core.NewMessage(core.WarningSeverity, "plain")); err != nil {
		t.Fatalf("Handle() error = %v", err)
	}
	if buf.String() != "<plain>\n" {
		t.Errorf("unexpected output: %q", buf.String())
	}
}

func TestWarningHandler_DefaultsToStdout(t *testing.T) {
	h := NewWarningHandler(WarningConfig{})
	if h.writer != os.Stdout {
		t.Error("expected os.Stdout as default writer")
	}
}

func readFile(t *testing.T, name string) string {
	t.Helper()
	data, err := os.ReadFile(name)
	if err != nil {
		t.Fatalf("ReadFile(%s): %v", name, err)
	}
	return string(data)
}

func TestErrorHandler_Appends(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "logs", "errors.txt")

	h, err := NewErrorHandler(ErrorConfig{Filename: filename})
	if err != nil {
		t.Fatalf("NewErrorHandler() error = %v", err)
	}
	if h.Filename() != filename {
		t.Errorf("Filename() = %q", h.Filename())
	}

	if err := h.Handle(core.NewMessage(core.ErrorSeverity, "Error happened")); err != nil {
		t.Fatalf("Handle() error = %v", err)
	}

	// Each line is flushed before Handle returns
	if got := readFile(t, filename); got != "Error: Error happened\n" {
		t.Errorf("file content = %q", got)
	}

	if err := h.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	// A second handler keeps the earlier content
	h2, err := NewErrorHandler(ErrorConfig{Filename: filename, Formatter: stubFormatter{}})
	if err != nil {
		t.Fatalf("NewErrorHandler() error = %v", err)
	}
	if err := h2.Handle(core.NewMessage(core.ErrorSeverity, "again")); err != nil {
		t.Fatalf("Handle() error = %v", err)
	}
	if err := h2.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	if got := readFile(t, filename); got != "Error: Error happened\n<again>\n" {
		t.Errorf("file content = %q", got)
	}
}

func TestErrorHandler_CloseIdempotent(t *testing.T) {
	h, err := NewErrorHandler(ErrorConfig{Filename: filepath.Join(t.TempDir(), "e.txt")})
	if err != nil {
		t.Fatal(err)
	}

	if err := h.Close(); err != nil {
		t.Errorf("first Close() error = %v", err)
	}
	if err := h.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}

	err = h.Handle(core.NewMessage(core.ErrorSeverity, "late"))
	if !errors.Is(err, ErrHandlerClosed) {
		t.Errorf("Handle() after Close error = %v, want ErrHandlerClosed", err)
	}
}

func TestErrorHandler_ResourceUnavailable(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	if err := os.WriteFile(blocker, nil, 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name     string
		filename string
	}{
		{"path is a directory", dir},
		{"parent is a file", filepath.Join(blocker, "errors.txt")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, err := NewErrorHandler(ErrorConfig{Filename: tt.filename})
			if err == nil {
				h.Close()
				t.Fatal("expected an error")
			}
			if !errors.Is(err, core.ErrResourceUnavailable) {
				t.Errorf("error = %v, want ErrResourceUnavailable", err)
			}
			if !strings.Contains(err.Error(), tt.filename) {
				t.Errorf("error %q should name the file", err)
			}
		})
	}
}

func TestErrorHandler_DefaultFilename(t *testing.T) {
	cfg := ErrorConfig{}
	applyErrorDefaults(&cfg)
	if cfg.Filename != DefaultErrorLog {
		t.Errorf("Filename = %q, want %q", cfg.Filename, DefaultErrorLog)
	}
	if cfg.BufferSize != 4096 {
		t.Errorf("BufferSize = %d", cfg.BufferSize)
	}
	if _, ok := cfg.Formatter.(*formatter.TextFormatter); !ok {
		t.Errorf("Formatter = %T", cfg.Formatter)
	}
}

func TestTerminalHandlers(t *testing.T) {
	tests := []struct {
		name    string
		handler Handler
		msg     core.Message
		want    string
	}{
		{"fatal", NewFatalHandler(), core.NewMessage(core.FatalSeverity, "Fatal error happened"), "Fatal Error: Fatal error happened"},
		{"unknown", NewUnknownHandler(), core.NewMessage(core.UnknownSeverity, "Unknown error happened"), "Unknown Error: Unknown error happened"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.handler.Accepts(tt.msg) {
				t.Fatal("handler should accept its own severity")
			}
			err := tt.handler.Handle(tt.msg)
			if !errors.Is(err, core.ErrTerminalSeverity) {
				t.Fatalf("Handle() error = %v, want terminal", err)
			}
			if err.Error() != tt.want {
				t.Errorf("Handle() error = %q, want %q", err.Error(), tt.want)
			}
			if err := tt.handler.Close(); err != nil {
				t.Errorf("Close() error = %v", err)
			}
		})
	}

	if NewFatalHandler().Accepts(core.NewMessage(core.UnknownSeverity, "x")) {
		t.Error("fatal handler must not accept Unknown messages")
	}
	if NewUnknownHandler().Accepts(core.NewMessage(core.FatalSeverity, "x")) {
		t.Error("unknown handler must not accept Fatal messages")
	}
}
