// Package logging assembles structured slog loggers for ytfetch.
//
// It owns the console and JSON handlers, level parsing, optional file output,
// a run identifier helper for correlating one session's lines, and a progress
// sampler that keeps engine progress updates from flooding the log. NewNop
// serves tests and wiring code that cannot fail.
package logging
