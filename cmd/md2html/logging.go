package main

import (
	"io"
	"log/slog"
)

// newLogger builds the CLI logger on w: text for a terminal, JSON
// otherwise. Warnings show by default, -v adds debug, -q keeps errors only.
func newLogger(w io.Writer, f commonFlags, interactive bool) *slog.Logger {
	level := slog.LevelWarn
	switch {
	case f.quiet:
		level = slog.LevelError
	case f.verbose:
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{Level: level}
	if interactive {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}
