// Package logging defines the structured-logging interface used across the
// client. Implementations wrap log/slog or zerolog.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/rs/zerolog"
)

// Logger is a context-aware, structured logger.
//
// The variadic args are interpreted as key–value pairs, e.g.:
//
//	log.Info(ctx, "request sent", "method", method, "path", path)
type Logger interface {
	// Debug logs diagnostic detail, off by default.
	Debug(ctx context.Context, msg string, args ...any)

	// Info logs an informational message.
	Info(ctx context.Context, msg string, args ...any)

	// Warn logs a warning message for unusual but non-fatal conditions.
	Warn(ctx context.Context, msg string, args ...any)

	// Error logs an error message for failures.
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that always includes the given key–value pairs.
	With(args ...any) Logger
}

// New builds a Logger writing to w.
//
// Formats:
//   - "text" (default), "json": log/slog handlers
//   - "console", "zerolog": zerolog console writer and raw zerolog JSON
//
// Levels: debug, info (default), warn, error.
func New(format, level string, w io.Writer) (Logger, error) {
	switch strings.ToLower(format) {
	case "", "text":
		return NewSlogLogger(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slogLevel(level)}))), nil
	case "json":
		return NewSlogLogger(slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slogLevel(level)}))), nil
	case "console":
		zl := zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true}).With().Timestamp().Logger()
		return NewZerologLogger(zl.Level(zerologLevel(level))), nil
	case "zerolog":
		zl := zerolog.New(w).With().Timestamp().Logger()
		return NewZerologLogger(zl.Level(zerologLevel(level))), nil
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}
}

// Nop returns a Logger that discards everything.
func Nop() Logger {
	return NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func slogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func zerologLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
