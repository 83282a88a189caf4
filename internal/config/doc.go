// Package config defines the format-agnostic voice-mapping model for the
// application, along with the Loader interface for reading mappings from
// various sources.
//
// The mapping table is the single source of truth for the score package:
// it declares which (part, voice) pair in the input score corresponds to
// which named vocal part. Concrete implementations of Loader, such as for
// HCL and YAML, are provided in separate packages.
package config
