package cmd

import (
	"io"
	"log/slog"

	"github.com/pterm/pterm"
)

// newLogger returns a slog logger printing through pterm to w.
func newLogger(w io.Writer, level string) *slog.Logger {
	logger := pterm.DefaultLogger.WithWriter(w).WithLevel(logLevel(level))
	return slog.New(pterm.NewSlogHandler(logger))
}

func logLevel(level string) pterm.LogLevel {
	switch level {
	case "debug":
		return pterm.LogLevelDebug
	case "info":
		return pterm.LogLevelInfo
	case "error":
		return pterm.LogLevelError
	default:
		return pterm.LogLevelWarn
	}
}
