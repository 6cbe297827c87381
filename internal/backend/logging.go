package backend

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// DefaultLogLevel is the log level used when none is requested.
const DefaultLogLevel = "error"

// LevelFatal sits above slog.LevelError and is used for messages that end the
// generation.
const LevelFatal = slog.Level(12)

// ParseLogLevel maps an --opt-log-level value to a slog level.
// Accepted values are debug, info, warning (or warn), error and fatal.
func ParseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warning", "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	case "fatal":
		return LevelFatal, nil
	default:
		return slog.LevelError, fmt.Errorf("unknown log level %q", s)
	}
}

// NewLogger returns a text logger writing to w at the given level name.
// A nil writer discards output.
func NewLogger(w io.Writer, level string) (*slog.Logger, error) {
	lvl, err := ParseLogLevel(level)
	if err != nil {
		return nil, err
	}
	if w == nil {
		w = io.Discard
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}
