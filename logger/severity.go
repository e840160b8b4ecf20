package logger

import (
	"github.com/philipp01105/logchain/core"
)

// Severity Re-export type and constants for convenience
type Severity = core.Severity

const (
	WarningSeverity = core.WarningSeverity
	ErrorSeverity   = core.ErrorSeverity
	FatalSeverity   = core.FatalSeverity
	UnknownSeverity = core.UnknownSeverity
)

// ParseSeverity converts a name to a Severity
func ParseSeverity(s string) (Severity, error) {
	return core.ParseSeverity(s)
}
