package app

import (
	"fmt"
	"log/slog"
)

// defaultWorkers bounds concurrent voice extraction when no worker count is
// configured.
const defaultWorkers = 4

// Config holds all the necessary configuration for an App instance to run.
// Level is derived from LogLevel by NewConfig.
type Config struct {
	InputPath   string
	MappingPath string
	OutDir      string
	Separate    bool
	Watch       bool
	Workers     int
	LogFormat   string
	LogLevel    string
	Level       slog.Level
}

// NewConfig validates a Config and fills in defaults.
func NewConfig(c Config) (*Config, error) {
	if c.InputPath == "" {
		return nil, fmt.Errorf("input path must not be empty")
	}
	if c.Workers == 0 {
		c.Workers = defaultWorkers
	}
	if c.Workers < 1 || c.Workers > 64 {
		return nil, fmt.Errorf("workers must be between 1 and 64, got %d", c.Workers)
	}
	if c.LogFormat == "" {
		c.LogFormat = "text"
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		return nil, fmt.Errorf("invalid log format %q", c.LogFormat)
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	switch c.LogLevel {
	case "debug":
		c.Level = slog.LevelDebug
	case "info":
		c.Level = slog.LevelInfo
	case "warn":
		c.Level = slog.LevelWarn
	case "error":
		c.Level = slog.LevelError
	default:
		return nil, fmt.Errorf("invalid log level %q", c.LogLevel)
	}
	return &c, nil
}
