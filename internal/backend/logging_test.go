package backend

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warning", slog.LevelWarn},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"ERROR", slog.LevelError},
		{" fatal ", LevelFatal},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLogLevel(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseLogLevelUnknown(t *testing.T) {
	_, err := ParseLogLevel("verbose")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"verbose"`)
}

func TestNewLoggerFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger(&buf, "error")
	require.NoError(t, err)

	logger.Info("hidden")
	logger.Error("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestNewLoggerNilWriter(t *testing.T) {
	logger, err := NewLogger(nil, "debug")
	require.NoError(t, err)
	logger.Debug("goes nowhere")
}

func TestNewLoggerRejectsUnknownLevel(t *testing.T) {
	logger, err := NewLogger(&bytes.Buffer{}, "loud")
	assert.Error(t, err)
	assert.Nil(t, logger)
}
