package app

import (
	"errors"
	"fmt"
	"strings"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	ManifestPath string // file or directory of .hcl manifests

	LogFormat       string
	LogLevel        string
	ForbidLeftovers bool

	// Tokens is the command line resolved against the manifests.
	Tokens []string
}

// LogFormats and LogLevels list the accepted logging settings.
var (
	LogFormats = []string{logFormatText, logFormatJSON}
	LogLevels  = []string{"debug", "info", "warn", "error"}
)

// NewConfig validates cfg and returns a copy with normalized fields.
func NewConfig(cfg Config) (*Config, error) {
	if strings.TrimSpace(cfg.ManifestPath) == "" {
		return nil, errors.New("ManifestPath is a required configuration field and cannot be empty")
	}

	cfg.LogFormat = strings.ToLower(cfg.LogFormat)
	if cfg.LogFormat == "" {
		cfg.LogFormat = logFormatText
	}
	if !oneOf(cfg.LogFormat, LogFormats) {
		return nil, fmt.Errorf("invalid log-format %q: must be one of %s", cfg.LogFormat, strings.Join(LogFormats, ", "))
	}

	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if !oneOf(cfg.LogLevel, LogLevels) {
		return nil, fmt.Errorf("invalid log-level %q: must be one of %s", cfg.LogLevel, strings.Join(LogLevels, ", "))
	}

	cfg.Tokens = append([]string(nil), cfg.Tokens...)
	return &cfg, nil
}

func oneOf(s string, options []string) bool {
	for _, o := range options {
		if s == o {
			return true
		}
	}
	return false
}
