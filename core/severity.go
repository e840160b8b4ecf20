package core

import (
	"fmt"
	"strings"
)

// Severity classifies a log message
type Severity int8

const (
	// WarningSeverity is printed to standard output
	WarningSeverity Severity = iota
	// ErrorSeverity is appended to the error log
	ErrorSeverity
	// FatalSeverity aborts the dispatch with a TerminalError
	FatalSeverity
	// UnknownSeverity aborts the dispatch with a TerminalError
	UnknownSeverity
)

// Severities lists every Severity in declaration order.
var Severities = [...]Severity{WarningSeverity, ErrorSeverity, FatalSeverity, UnknownSeverity}

var severityNames = [...]string{
	WarningSeverity: "WARNING",
	ErrorSeverity:   "ERROR",
	FatalSeverity:   "FATAL",
	UnknownSeverity: "UNKNOWN",
}

// pre-formatted output prefixes, indexed by severity
var severityLabels = [...]string{
	WarningSeverity: "Warning",
	ErrorSeverity:   "Error",
	FatalSeverity:   "Fatal Error",
	UnknownSeverity: "Unknown Error",
}

// String returns the upper-case name of the severity
func (s Severity) String() string {
	if s.Valid() {
		return severityNames[s]
	}
	return fmt.Sprintf("Severity(%d)", int8(s))
}

// Label returns the prefix written in front of a message of this severity,
// e.g. "Warning" or "Fatal Error".
func (s Severity) Label() string {
	if s.Valid() {
		return severityLabels[s]
	}
	return s.String()
}

// Valid reports whether s is one of the declared severities
func (s Severity) Valid() bool {
	return s >= WarningSeverity && s <= UnknownSeverity
}

// ParseSeverity converts a name to a Severity. Matching is case-insensitive
// and "warn" is accepted as an alias of "warning".
func ParseSeverity(s string) (Severity, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "WARN", "WARNING":
		return WarningSeverity, nil
	case "ERROR":
		return ErrorSeverity, nil
	case "FATAL":
		return FatalSeverity, nil
	case "UNKNOWN":
		return UnknownSeverity, nil
	default:
		return 0, fmt.Errorf("unknown severity %q", s)
	}
}
