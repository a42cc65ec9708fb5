package app

import (
	"fmt"
	"io"
	"log/slog"
)

// Log formats accepted by newLogger. LogFormats lists them for validation.
const (
	logFormatText = "text"
	logFormatJSON = "json"
)

// newLogger builds the host program's logger from a level in LogLevels and a
// format in LogFormats. It does not set the global logger.
func newLogger(levelStr, formatStr string, outW io.Writer) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(levelStr)); err != nil {
		return nil, fmt.Errorf("invalid log-level %q: %w", levelStr, err)
	}

	handlerOpts := &slog.HandlerOptions{Level: level}
	switch formatStr {
	case logFormatText:
		return slog.New(slog.NewTextHandler(outW, handlerOpts)), nil
	case logFormatJSON:
		return slog.New(slog.NewJSONHandler(outW, handlerOpts)), nil
	default:
		return nil, fmt.Errorf("invalid log-format %q", formatStr)
	}
}
