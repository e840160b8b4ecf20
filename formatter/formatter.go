package formatter

import (
	"bytes"
	"io"
	"sync"
	"time"

	"github.com/philipp01105/logchain/core"
)

// Formatter defines the interface for message formatters
type Formatter interface {
	// Format renders a message into a newline-terminated line
	Format(msg core.Message) ([]byte, error)
}

// WriterFormatter is an optional interface that formatters can implement
// to write directly to a writer without intermediate byte slice allocation.
type WriterFormatter interface {
	// FormatTo renders a message and writes it directly to the writer
	FormatTo(msg core.Message, w io.Writer) error
}

// Config holds common formatter configuration
type Config struct {
	// TimestampFormat prefixes each line with the current time in this
	// layout (empty for no timestamp)
	TimestampFormat string
	// Now supplies the timestamp (default: time.Now)
	Now func() time.Time
}

// bufferPool is a pool of bytes.Buffer to reduce allocations
var bufferPool = &sync.Pool{
	New: func() interface{} {
		b := new(bytes.Buffer)
		b.Grow(128)
		return b
	},
}

func getBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > 64*1024 { // Don't keep very large buffers
		return
	}
	bufferPool.Put(buf)
}
