// Package logging assembles structured slog loggers and attribute helpers used
// across sctime components.
//
// It owns the console and JSON handlers, centralizes level and output
// plumbing, and defines the standard field keys (component, session,
// entrant_id, lap_index) so every component tags its lines the same way.
// Loggers are always passed into constructors; nothing in the repository keeps
// a process-wide logger. A no-op logger is provided for tests and for callers
// that pass nil.
package logging
