// Package logging assembles structured slog loggers and formatting helpers
// used across Voxify components.
//
// It owns the configurable console/JSON handlers, centralizes level and output
// plumbing, and exposes attribute helpers so stage code tags log lines with
// queue item IDs, stages, and request identifiers consistently. The package
// also provides a no-op logger for tests and wiring code that cannot fail.
//
// Prefer these constructors over hand-rolled slog setup so every component
// emits data with the same shape.
package logging
