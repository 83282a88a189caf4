// Package app wires the application together: it owns the configured
// logger, the resolved voice mappings, and the processing pipeline that
// turns one input score into its extracted or combined outputs.
package app
