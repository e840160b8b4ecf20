package benchmark

import (
	"github.com/philipp01105/logchain/core"
	"github.com/philipp01105/logchain/handler"
)

// noopHandler accepts one severity and does nothing with it, so chain
// benchmarks measure routing alone.
type noopHandler struct {
	severity core.Severity
}

func newNoopHandler(severity core.Severity) handler.Handler {
	return &noopHandler{severity: severity}
}

func (h *noopHandler) Severity() core.Severity {
	return h.severity
}

func (h *noopHandler) Accepts(msg core.Message) bool {
	return msg.Severity() == h.severity
}

func (h *noopHandler) Handle(msg core.Message) error {
	_ = len(msg.Text())
	return nil
}

func (h *noopHandler) Close() error {
	return nil
}
