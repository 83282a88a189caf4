package app

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	t.Parallel()

	cfg, err := NewConfig(Config{InputPath: "chorale.musicxml"})

	require.NoError(t, err)
	require.Equal(t, defaultWorkers, cfg.Workers)
	require.Equal(t, "text", cfg.LogFormat)
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, slog.LevelInfo, cfg.Level)
}

func TestNewConfig_ParsesLogLevel(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
	}

	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			t.Parallel()
			cfg, err := NewConfig(Config{InputPath: "x.musicxml", LogLevel: tc.in})
			require.NoError(t, err)
			require.Equal(t, tc.want, cfg.Level)
		})
	}
}

func TestNewConfig_Errors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		in      Config
		wantErr string
	}{
		{
			name:    "missing input path",
			in:      Config{},
			wantErr: "input path must not be empty",
		},
		{
			name:    "workers too high",
			in:      Config{InputPath: "x.musicxml", Workers: 65},
			wantErr: "workers must be between",
		},
		{
			name:    "workers negative",
			in:      Config{InputPath: "x.musicxml", Workers: -1},
			wantErr: "workers must be between",
		},
		{
			name:    "bad log format",
			in:      Config{InputPath: "x.musicxml", LogFormat: "xml"},
			wantErr: "invalid log format",
		},
		{
			name:    "bad log level",
			in:      Config{InputPath: "x.musicxml", LogLevel: "loud"},
			wantErr: "invalid log level",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := NewConfig(tc.in)
			require.Error(t, err)
			require.Contains(t, err.Error(), tc.wantErr)
		})
	}
}
