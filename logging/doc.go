// Package logging provides structured logging using Go's standard library log/slog.
// It outputs logs in JSON format by default, or as text, and integrates with
// Uber's Fx dependency injection framework. ConfigFrom reads the logger
// settings from a section of a loaded tree.
package logging
