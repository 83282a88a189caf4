package config

import "context"

// Loader is the interface for a format-specific voice-mapping loader.
type Loader interface {
	// Load reads a mapping file from the given path, translates it into the
	// format-agnostic mapping table, and validates it.
	Load(ctx context.Context, path string) (Mappings, error)
}
