package app

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewLogger_Levels(t *testing.T) {
	t.Parallel()

	expected := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	}
	require.Len(t, expected, len(LogLevels), "every accepted level is covered")

	for _, levelStr := range LogLevels {
		t.Run(levelStr, func(t *testing.T) {
			t.Parallel()

			// --- Act ---
			logger, err := newLogger(levelStr, logFormatText, &bytes.Buffer{})

			// --- Assert ---
			require.NoError(t, err)
			want := expected[levelStr]
			require.True(t, logger.Enabled(context.Background(), want))
			require.False(t, logger.Enabled(context.Background(), want-1), "levels below %s are dropped", levelStr)
		})
	}
}

func TestNewLogger_Formats(t *testing.T) {
	t.Parallel()

	t.Run("json", func(t *testing.T) {
		t.Parallel()
		out := &bytes.Buffer{}

		logger, err := newLogger("info", logFormatJSON, out)
		require.NoError(t, err)
		logger.Info("hello", "argument", "Name")

		var record map[string]any
		require.NoError(t, json.Unmarshal(out.Bytes(), &record))
		require.Equal(t, "hello", record["msg"])
		require.Equal(t, "Name", record["argument"])
	})

	t.Run("text", func(t *testing.T) {
		t.Parallel()
		out := &bytes.Buffer{}

		logger, err := newLogger("info", logFormatText, out)
		require.NoError(t, err)
		logger.Info("hello", "argument", "Name")

		line := out.String()
		require.True(t, strings.Contains(line, "msg=hello"), "got %q", line)
		require.Contains(t, line, "argument=Name")
	})
}

func TestNewLogger_Errors(t *testing.T) {
	t.Parallel()

	_, err := newLogger("trace", logFormatText, &bytes.Buffer{})
	require.ErrorContains(t, err, `invalid log-level "trace"`)

	_, err = newLogger("info", "yaml", &bytes.Buffer{})
	require.ErrorContains(t, err, `invalid log-format "yaml"`)
}

func TestNewApp_RejectsUnvalidatedLoggerSettings(t *testing.T) {
	t.Parallel()

	_, err := NewApp(&bytes.Buffer{}, &bytes.Buffer{}, &Config{ManifestPath: "a.hcl", LogLevel: "info", LogFormat: "xml"})

	require.ErrorContains(t, err, "failed to configure logger")
}
