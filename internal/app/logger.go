package app

import (
	"io"
	"log/slog"
)

// newLogger builds the app's logger from the already-validated config. It
// does not set the global logger, allowing for isolated logger instances.
func newLogger(level slog.Level, format string, outW io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	if format == "json" {
		return slog.New(slog.NewJSONHandler(outW, opts))
	}
	return slog.New(slog.NewTextHandler(outW, opts))
}
