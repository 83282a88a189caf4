package hclmap

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vk/satb/internal/config"
)

// writeMapping writes an HCL mapping file into a temp dir and returns its path.
func writeMapping(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mapping.hcl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_FullSATBTable(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	path := writeMapping(t, `
	voice "Soprano" {
	  part  = 1
	  voice = 1
	}
	voice "Alto" {
	  part  = 1
	  voice = 2
	}
	voice "Tenor" {
	  part  = 2
	  voice = "5"
	}
	voice "Bass" {
	  part  = 2
	  voice = "6"
	}
	`)

	// --- Act ---
	mappings, err := NewLoader().Load(context.Background(), path)

	// --- Assert ---
	require.NoError(t, err)
	require.Equal(t, config.Mappings{
		{Name: "Soprano", Part: 1, Voice: "1"},
		{Name: "Alto", Part: 1, Voice: "2"},
		{Name: "Tenor", Part: 2, Voice: "5"},
		{Name: "Bass", Part: 2, Voice: "6"},
	}, mappings)
}

func TestLoad_SyntaxError(t *testing.T) {
	t.Parallel()

	// Missing closing brace.
	path := writeMapping(t, `
	voice "Soprano" {
	  part = 1
	`)

	_, err := NewLoader().Load(context.Background(), path)

	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to parse")
}

func TestLoad_InvalidTable(t *testing.T) {
	t.Parallel()

	// Duplicate voice names fail table validation, not HCL decoding.
	path := writeMapping(t, `
	voice "Soprano" {
	  part  = 1
	  voice = 1
	}
	voice "Soprano" {
	  part  = 1
	  voice = 2
	}
	`)

	_, err := NewLoader().Load(context.Background(), path)

	require.Error(t, err)
	require.Contains(t, err.Error(), "duplicate voice name")
}

func TestLoad_VoiceAttributeTypes(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		hcl     string
		want    string
		wantErr string
	}{
		{
			name: "number voice id",
			hcl: `voice "Tenor" {
			  part  = 2
			  voice = 5
			}`,
			want: "5",
		},
		{
			name: "string voice id",
			hcl: `voice "Tenor" {
			  part  = 2
			  voice = "5"
			}`,
			want: "5",
		},
		{
			name: "null voice id",
			hcl: `voice "Tenor" {
			  part  = 2
			  voice = null
			}`,
			wantErr: "must not be null",
		},
		{
			name: "list voice id",
			hcl: `voice "Tenor" {
			  part  = 2
			  voice = [5]
			}`,
			wantErr: "must be a number or string",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			path := writeMapping(t, tc.hcl)

			mappings, err := NewLoader().Load(context.Background(), path)

			if tc.wantErr != "" {
				require.Error(t, err)
				require.Contains(t, err.Error(), tc.wantErr)
				return
			}
			require.NoError(t, err)
			require.Len(t, mappings, 1)
			require.Equal(t, tc.want, mappings[0].Voice)
		})
	}
}
