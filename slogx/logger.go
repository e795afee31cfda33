// Package slogx sets up [slog.Logger] instances for routing binaries.
package slogx

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/charmbracelet/log"
)

// DefaultLevel is used when no level is configured.
const DefaultLevel = "warn"

// ParseLevel translates a level name like "debug" or "WARN" to a [slog.Level].
// An empty name is the same as [DefaultLevel].
func ParseLevel(name string) (slog.Level, error) {
	if len(name) == 0 {
		name = DefaultLevel
	}
	lvl, err := log.ParseLevel(name)
	if err != nil {
		return 0, fmt.Errorf("unknown log level: %w", err)
	}
	return slog.Level(lvl), nil
}

// NewLogger creates a [slog.Logger] that writes human-readable records to w.
// The prefix, if not empty, is printed before every message.
func NewLogger(w io.Writer, level slog.Level, prefix string) *slog.Logger {
	handler := log.NewWithOptions(w, log.Options{
		Level:           log.Level(level),
		Prefix:          prefix,
		ReportTimestamp: true,
	})
	return slog.New(handler)
}
