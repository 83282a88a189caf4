// Package hclmap implements the config.Loader interface for HCL mapping
// files. A mapping file is a flat list of voice blocks:
//
//	voice "Soprano" {
//	  part  = 1
//	  voice = 1
//	}
//
// The voice attribute accepts either a number or a string; it is compared
// against the literal text of the MusicXML <voice> element.
package hclmap

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"

	"github.com/vk/satb/internal/config"
	"github.com/vk/satb/internal/ctxlog"
)

// mappingFile is the HCL-specific schema for a mapping file.
type mappingFile struct {
	Voices []voiceBlock `hcl:"voice,block"`
}

// voiceBlock is the HCL-specific schema for a single voice block. The voice
// attribute is kept as an expression so numbers and strings both decode.
type voiceBlock struct {
	Name  string         `hcl:"name,label"`
	Part  int            `hcl:"part"`
	Voice hcl.Expression `hcl:"voice"`
}

// Loader loads voice mappings from HCL files.
type Loader struct{}

// NewLoader creates a new HCL mapping loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load implements config.Loader.
func (l *Loader) Load(ctx context.Context, path string) (config.Mappings, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading HCL mapping file.", "path", path)

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse %s: %w", path, diags)
	}

	var mf mappingFile
	if diags := gohcl.DecodeBody(file.Body, nil, &mf); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode %s: %w", path, diags)
	}

	mappings := make(config.Mappings, 0, len(mf.Voices))
	for _, vb := range mf.Voices {
		voiceID, err := evalVoiceID(vb.Voice)
		if err != nil {
			return nil, fmt.Errorf("voice %q: %w", vb.Name, err)
		}
		mappings = append(mappings, config.VoiceMapping{
			Name:  vb.Name,
			Part:  vb.Part,
			Voice: voiceID,
		})
	}

	if err := mappings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid mapping file %s: %w", path, err)
	}
	logger.Debug("HCL mapping file loaded.", "voices", len(mappings))
	return mappings, nil
}

// evalVoiceID evaluates the voice attribute and converts it to its string
// form, so `voice = 1` and `voice = "1"` are equivalent.
func evalVoiceID(expr hcl.Expression) (string, error) {
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return "", fmt.Errorf("failed to evaluate voice attribute: %w", diags)
	}
	if val.IsNull() {
		return "", fmt.Errorf("voice attribute must not be null")
	}
	strVal, err := convert.Convert(val, cty.String)
	if err != nil {
		return "", fmt.Errorf("voice attribute must be a number or string: %w", err)
	}
	return strVal.AsString(), nil
}
