// Package handler provides the Handler interface, its four built-in
// implementations, and the Chain that links them.
//
// A Chain is a singly-linked list built once by NewChain. Each node owns
// its successor; nothing is shared and the order never changes. Dispatch
// walks the list: the first handler whose Accepts returns true handles
// the message and its result is returned unchanged. A message no handler
// accepts yields core.ErrNoHandler.
//
// Built-in handlers, one per severity:
//
//   - WarningHandler prints "Warning: <text>" to an io.Writer (default: stdout).
//   - ErrorHandler appends "Error: <text>" to a file it opens at
//     construction and closes on Close.
//   - FatalHandler and UnknownHandler accept their severity and fail the
//     dispatch with a *core.TerminalError.
//
// Closing a Chain closes every handler from head to tail and combines
// their errors. SlogHandler lets a Chain serve as a log/slog backend.
//
// Every node tracks accepted, forwarded, unmatched and failed counts via
// the Stats type, which Chain.Stats exposes as snapshots in chain order.
package handler
