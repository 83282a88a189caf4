package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vk/satb/internal/hclmap"
	"github.com/vk/satb/internal/yamlmap"
)

func TestParse_Defaults(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}

	cfg, shouldExit, err := Parse([]string{"chorale.musicxml"}, out)

	require.NoError(t, err)
	require.False(t, shouldExit)
	require.Equal(t, "chorale.musicxml", cfg.InputPath)
	require.False(t, cfg.Separate)
	require.False(t, cfg.Watch)
	require.Empty(t, cfg.OutDir)
	require.Equal(t, "text", cfg.LogFormat)
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, 4, cfg.Workers)
}

func TestParse_AllFlags(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}

	cfg, shouldExit, err := Parse([]string{
		"-separate",
		"-watch",
		"-mapping", "voices.hcl",
		"-out", "exports",
		"-workers", "2",
		"-log-format", "json",
		"-log-level", "warn",
		"chorale.mxl",
	}, out)

	require.NoError(t, err)
	require.False(t, shouldExit)
	require.True(t, cfg.Separate)
	require.True(t, cfg.Watch)
	require.Equal(t, "voices.hcl", cfg.MappingPath)
	require.Equal(t, "exports", cfg.OutDir)
	require.Equal(t, 2, cfg.Workers)
	require.Equal(t, "json", cfg.LogFormat)
	require.Equal(t, "warn", cfg.LogLevel)
}

func TestParse_HelpExitsCleanly(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}

	cfg, shouldExit, err := Parse([]string{"-h"}, out)

	require.NoError(t, err)
	require.True(t, shouldExit)
	require.Nil(t, cfg)
	require.Contains(t, out.String(), "Usage:")
}

func TestParse_NoFilePrintsUsage(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}

	cfg, shouldExit, err := Parse(nil, out)

	require.NoError(t, err)
	require.True(t, shouldExit)
	require.Nil(t, cfg)
	require.Contains(t, out.String(), "Usage:")
}

func TestParse_Version(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}

	_, shouldExit, err := Parse([]string{"-version"}, out)

	require.NoError(t, err)
	require.True(t, shouldExit)
	require.Contains(t, out.String(), "satb "+Version)
}

func TestParse_VerboseSetsDebugLevel(t *testing.T) {
	t.Parallel()

	for _, flag := range []string{"-verbose", "-v"} {
		cfg, _, err := Parse([]string{flag, "chorale.musicxml"}, &bytes.Buffer{})
		require.NoError(t, err)
		require.Equal(t, "debug", cfg.LogLevel)
	}
}

func TestParse_UsageErrors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		args    []string
		wantMsg string
	}{
		{
			name:    "unknown flag",
			args:    []string{"--this-is-not-a-valid-flag"},
			wantMsg: "flag provided but not defined",
		},
		{
			name:    "invalid log format",
			args:    []string{"-log-format", "xml", "chorale.musicxml"},
			wantMsg: "invalid log-format",
		},
		{
			name:    "invalid log level",
			args:    []string{"-log-level", "loud", "chorale.musicxml"},
			wantMsg: "invalid log-level",
		},
		{
			name:    "unsupported mapping format",
			args:    []string{"-mapping", "voices.toml", "chorale.musicxml"},
			wantMsg: "unsupported mapping file format",
		},
		{
			name:    "extra positional arguments",
			args:    []string{"a.musicxml", "b.musicxml"},
			wantMsg: "unexpected extra arguments",
		},
		{
			name:    "workers out of range",
			args:    []string{"-workers", "100", "chorale.musicxml"},
			wantMsg: "workers must be between",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, _, err := Parse(tc.args, &bytes.Buffer{})

			require.Error(t, err)
			var exitErr *ExitError
			require.ErrorAs(t, err, &exitErr)
			require.Equal(t, 2, exitErr.Code)
			require.Contains(t, exitErr.Message, tc.wantMsg)
		})
	}
}

func TestMappingLoader_SelectsByExtension(t *testing.T) {
	t.Parallel()

	require.Nil(t, MappingLoader(""))
	require.IsType(t, &hclmap.Loader{}, MappingLoader("voices.hcl"))
	require.IsType(t, &yamlmap.Loader{}, MappingLoader("voices.yaml"))
	require.IsType(t, &yamlmap.Loader{}, MappingLoader("voices.YML"))
}
