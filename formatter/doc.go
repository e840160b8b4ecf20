// Package formatter defines how messages are rendered into output lines.
//
// It exposes two interfaces: Formatter, which returns a []byte, and
// WriterFormatter, which writes directly to an io.Writer. Handlers
// check for WriterFormatter at construction time and prefer it when
// available, eliminating the intermediate byte slice allocation on
// the write path.
//
// TextFormatter renders "<Label>: <text>\n", for example
// "Warning: disk almost full". Label prefixes are pre-computed per
// severity so the common path is a single WriteString call. An optional
// TimestampFormat prepends the current time.
//
// Buffers larger than 64 KiB are not returned to the pool to prevent
// a single large message from permanently inflating memory usage.
package formatter
