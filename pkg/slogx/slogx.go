package slogx

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

type Config struct {
	App    string
	Level  string // e.g. "debug", "info", "warn", "error"
	Format string // e.g. "text", "json"
}

// New returns a configured slog.Logger writing to w. A nil writer
// defaults to stderr so log lines never mix with command output.
func New(w io.Writer, cfg Config) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}

	opts := &slog.HandlerOptions{
		Level: parseLevel(cfg.Level),
	}

	var handler slog.Handler
	switch strings.ToLower(cfg.Format) {
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	default:
		handler = slog.NewTextHandler(w, opts)
	}

	logger := slog.New(handler)
	if cfg.App != "" {
		logger = logger.With("app", cfg.App)
	}

	slog.SetDefault(logger)
	return logger
}

// parseLevel maps a string to slog.Level.
func parseLevel(lvl string) slog.Level {
	switch strings.ToLower(lvl) {
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
