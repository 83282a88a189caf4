// Package yamlmap implements the config.Loader interface for YAML mapping
// files:
//
//	voices:
//	  - name: Soprano
//	    part: 1
//	    voice: 1
package yamlmap

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vk/satb/internal/config"
	"github.com/vk/satb/internal/ctxlog"
)

// mappingFile is the YAML-specific schema for a mapping file.
type mappingFile struct {
	Voices []voiceEntry `yaml:"voices"`
}

// voiceEntry is the YAML-specific schema for a single voice. The voice id
// is declared as a string so both `voice: 1` and `voice: "1"` decode.
type voiceEntry struct {
	Name  string `yaml:"name"`
	Part  int    `yaml:"part"`
	Voice string `yaml:"voice"`
}

// Loader loads voice mappings from YAML files.
type Loader struct{}

// NewLoader creates a new YAML mapping loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load implements config.Loader.
func (l *Loader) Load(ctx context.Context, path string) (config.Mappings, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading YAML mapping file.", "path", path)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var mf mappingFile
	if err := yaml.Unmarshal(data, &mf); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	mappings := make(config.Mappings, 0, len(mf.Voices))
	for _, ve := range mf.Voices {
		mappings = append(mappings, config.VoiceMapping{
			Name:  ve.Name,
			Part:  ve.Part,
			Voice: ve.Voice,
		})
	}

	if err := mappings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid mapping file %s: %w", path, err)
	}
	logger.Debug("YAML mapping file loaded.", "voices", len(mappings))
	return mappings, nil
}
