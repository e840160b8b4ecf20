// Package core defines the shared types used across logchain.
//
// It provides the Severity type that selects which handler in a chain
// accepts a message, the immutable Message value that travels down the
// chain, and the error taxonomy every handler and chain reports with.
//
// A Message carries exactly two attributes, a Severity and a text, and
// exposes them through read-only accessors. Copying a Message is cheap
// and never aliases mutable state.
//
// Errors come in three kinds. ErrResourceUnavailable is wrapped by
// constructors that fail to acquire their backing resource.
// ErrNoHandler is returned as-is when a message walks off the end of a
// chain. TerminalError is returned by handlers whose acceptance is
// itself a failure (Fatal and Unknown); it matches ErrTerminalSeverity
// under errors.Is.
package core
