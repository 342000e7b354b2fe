package main

import (
	"io"
	"log/slog"
	"strings"
)

// setupLogging installs the default slog logger: text to w, warnings and
// up unless verbose.
func setupLogging(w io.Writer, verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if shouldRedact(a.Key) {
				a.Value = slog.StringValue("[REDACTED]")
			}
			return a
		},
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, opts)))
}

func shouldRedact(key string) bool {
	key = strings.ToLower(key)
	return strings.Contains(key, "dsn") || strings.Contains(key, "token")
}
