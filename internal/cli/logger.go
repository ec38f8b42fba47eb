package cli

import (
	"io"
	"log/slog"
)

// setupLogger returns the JSON logger every command writes to.
func setupLogger(w io.Writer, level slog.Level) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	handler := slog.NewJSONHandler(w, opts)
	return slog.New(handler)
}
