// Package logging holds the logger plumbing shared by viewkit packages.
//
// Loggers are injected through options structs, never read from a global.
// When no logger is supplied a discard logger is used. Logging is limited to
// lifecycle boundaries such as mapping and unmapping files; search and parse
// loops never log.
package logging

import (
	"context"
	"log/slog"
)

type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (d discardHandler) WithAttrs([]slog.Attr) slog.Handler      { return d }
func (d discardHandler) WithGroup(string) slog.Handler           { return d }

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(discardHandler{})
}

// Default returns logger if non-nil, otherwise a discard logger.
//
//	func open(opts Options) {
//	    logger := logging.Default(opts.Logger).With("component", "mapping")
//	    ...
//	}
func Default(logger *slog.Logger) *slog.Logger {
	if logger != nil {
		return logger
	}
	return Discard()
}
