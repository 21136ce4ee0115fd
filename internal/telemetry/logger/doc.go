// Package logger provides structured logging for atlascfg.
//
// This package wraps log/slog:
//
//   - logger.go: logger configuration and initialization
//   - context.go: context-aware logging with invocation IDs
//   - redact.go: credential redaction
//
// Logs go to stderr so that command output on stdout stays
// machine-readable.
package logger
