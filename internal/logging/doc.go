// Package logging assembles the slog loggers used by subdesk.
//
// It owns the console and JSON handlers, level parsing, and output routing
// (stdout plus an optional log file). Component loggers tag every line with a
// component name, and a request ID stored on the context is attached as the
// correlation_id field so one CLI invocation can be followed through the log.
// NewNop gives tests and optional wiring a logger that discards everything.
package logging
