package formatter

import (
	"bytes"
	"io"
	"time"

	"github.com/philipp01105/logchain/core"
)

// TextFormatter renders messages as "<Label>: <text>\n"
type TextFormatter struct {
	Config
}

// NewTextFormatter creates a new text formatter
func NewTextFormatter(cfg Config) *TextFormatter {
	if cfg.TimestampFormat != "" && cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &TextFormatter{Config: cfg}
}

// Format formats a message as text
func (f *TextFormatter) Format(msg core.Message) ([]byte, error) {
	buf := getBuffer()
	defer putBuffer(buf)

	f.formatToBuffer(msg, buf)

	// Copy buffer content to return
	result := make([]byte, buf.Len())
	copy(result, buf.Bytes())
	return result, nil
}

// FormatTo formats a message and writes it directly to the writer
func (f *TextFormatter) FormatTo(msg core.Message, w io.Writer) error {
	buf := getBuffer()

	f.formatToBuffer(msg, buf)

	_, err := w.Write(buf.Bytes())
	putBuffer(buf)
	return err
}

// pre-formatted prefixes to avoid multiple WriteString calls
var labelPrefixes = [...]string{
	core.WarningSeverity: "Warning: ",
	core.ErrorSeverity:   "Error: ",
	core.FatalSeverity:   "Fatal Error: ",
	core.UnknownSeverity: "Unknown Error: ",
}

// formatToBuffer writes the formatted message into the given buffer
func (f *TextFormatter) formatToBuffer(msg core.Message, buf *bytes.Buffer) {
	if f.TimestampFormat != "" {
		buf.Write(f.Now().AppendFormat(buf.AvailableBuffer(), f.TimestampFormat))
		buf.WriteByte(' ')
	}

	if sev := msg.Severity(); sev.Valid() {
		buf.WriteString(labelPrefixes[sev])
	} else {
		buf.WriteString(sev.Label())
		buf.WriteString(": ")
	}

	buf.WriteString(msg.Text())
	buf.WriteByte('\n')
}
