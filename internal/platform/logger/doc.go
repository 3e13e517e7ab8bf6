// Package logger provides structured logging functionality for the application.
//
// It utilizes Go's standard library log/slog package to implement structured JSON
// or text logging with configurable log levels, CI metadata enrichment and
// per-run correlation ids carried in a context.
package logger
