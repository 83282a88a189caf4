package app_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vk/satb/internal/app"
	"github.com/vk/satb/internal/config"
	"github.com/vk/satb/internal/testutil"
	"github.com/vk/satb/internal/yamlmap"
)

func TestNewApp_DefaultMappings(t *testing.T) {
	t.Parallel()

	cfg, err := app.NewConfig(app.Config{InputPath: "chorale.musicxml"})
	require.NoError(t, err)

	a := app.NewApp(&testutil.SafeBuffer{}, cfg, nil)

	require.Equal(t, config.Default(), a.Mappings())
}

func TestNewApp_LoadsMappingFile(t *testing.T) {
	t.Parallel()

	mappingPath := filepath.Join(t.TempDir(), "voices.yaml")
	require.NoError(t, os.WriteFile(mappingPath, []byte(`
voices:
  - name: Cantus
    part: 1
    voice: "1"
  - name: Bassus
    part: 2
    voice: "6"
`), 0o644))

	cfg, err := app.NewConfig(app.Config{InputPath: "chorale.musicxml", MappingPath: mappingPath})
	require.NoError(t, err)

	a := app.NewApp(&testutil.SafeBuffer{}, cfg, yamlmap.NewLoader())

	require.Equal(t, config.Mappings{
		{Name: "Cantus", Part: 1, Voice: "1"},
		{Name: "Bassus", Part: 2, Voice: "6"},
	}, a.Mappings())
}

func TestNewApp_PanicsOnUnloadableMapping(t *testing.T) {
	t.Parallel()

	cfg, err := app.NewConfig(app.Config{
		InputPath:   "chorale.musicxml",
		MappingPath: filepath.Join(t.TempDir(), "missing.yaml"),
	})
	require.NoError(t, err)

	require.Panics(t, func() {
		app.NewApp(&testutil.SafeBuffer{}, cfg, yamlmap.NewLoader())
	})
}
