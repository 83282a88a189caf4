// Package cli canonicalizes command-line arguments into an app.Config and
// selects the mapping loader for the chosen file format.
package cli
