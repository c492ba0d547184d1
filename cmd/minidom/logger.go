package main

import (
	"io"
	"log/slog"

	"github.com/vango-dev/minidom/internal/config"
)

// newLogger builds the slog logger described by cfg. Unknown levels fall
// back to info; Validate rejects them before this point.
func newLogger(w io.Writer, cfg config.LogConfig) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	var h slog.Handler
	if cfg.Format == "json" {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}
	return slog.New(h)
}
