package handler

import (
	"context"
	"log/slog"
	"strings"

	"github.com/philipp01105/logchain/core"
)

// SlogHandler is an adapter that implements slog.Handler on top of a Chain.
// Records at LevelWarn and above are converted to messages and dispatched;
// lower levels are disabled.
type SlogHandler struct {
	chain *Chain
	attrs []slog.Attr
	group string
}

// NewSlogHandler creates a new slog.Handler adapter dispatching into c.
func NewSlogHandler(c *Chain) *SlogHandler {
	return &SlogHandler{chain: c}
}

// Enabled reports whether the handler handles records at the given level.
func (s *SlogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= slog.LevelWarn
}

// Handle converts the record to a message and dispatches it. The chain's
// error is returned unchanged.
func (s *SlogHandler) Handle(_ context.Context, record slog.Record) error {
	var b strings.Builder
	b.WriteString(record.Message)

	for _, a := range s.attrs {
		appendAttr(&b, "", a)
	}
	record.Attrs(func(a slog.Attr) bool {
		appendAttr(&b, s.group, a)
		return true
	})

	return s.chain.Dispatch(core.NewMessage(slogLevelToSeverity(record.Level), b.String()))
}

// WithAttrs returns a new SlogHandler with additional attributes.
func (s *SlogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newAttrs := make([]slog.Attr, len(s.attrs), len(s.attrs)+len(attrs))
	copy(newAttrs, s.attrs)
	for _, a := range attrs {
		if s.group != "" {
			a.Key = s.group + "." + a.Key
		}
		newAttrs = append(newAttrs, a)
	}
	return &SlogHandler{
		chain: s.chain,
		attrs: newAttrs,
		group: s.group,
	}
}

// WithGroup returns a new SlogHandler with the given group name.
func (s *SlogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return s
	}
	newGroup := name
	if s.group != "" {
		newGroup = s.group + "." + name
	}
	return &SlogHandler{
		chain: s.chain,
		attrs: s.attrs,
		group: newGroup,
	}
}

// slogLevelToSeverity converts a slog.Level to a core.Severity.
func slogLevelToSeverity(level slog.Level) core.Severity {
	switch {
	case level >= slog.LevelError+4:
		return core.FatalSeverity
	case level >= slog.LevelError:
		return core.ErrorSeverity
	default:
		return core.WarningSeverity
	}
}

// appendAttr writes " key=value", flattening groups with a dotted prefix.
func appendAttr(b *strings.Builder, group string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}

	key := a.Key
	if group != "" && key != "" {
		key = group + "." + key
	} else if key == "" {
		key = group
	}

	if a.Value.Kind() == slog.KindGroup {
		for _, ga := range a.Value.Group() {
			appendAttr(b, key, ga)
		}
		return
	}

	b.WriteByte(' ')
	b.WriteString(key)
	b.WriteByte('=')
	b.WriteString(a.Value.String())
}
