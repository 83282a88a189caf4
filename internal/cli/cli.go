package cli

import (
	"flag"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/vk/satb/internal/app"
	"github.com/vk/satb/internal/config"
	"github.com/vk/satb/internal/hclmap"
	"github.com/vk/satb/internal/yamlmap"
)

// Version is the release version, overridable at build time via
// -ldflags "-X github.com/vk/satb/internal/cli.Version=...".
var Version = "0.4.0"

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated
// app.Config, a boolean indicating if the program should exit cleanly, or
// an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	flagSet := flag.NewFlagSet("satb", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
satb - A command-line tool for processing MusicXML files for SATB choral arrangements.

Usage:
  satb [options] FILE

Arguments:
  FILE
    Path to a MusicXML file (.musicxml, .xml, .mxl) or a directory of them.

Options:
`)
		flagSet.PrintDefaults()
	}

	separateFlag := flagSet.Bool("separate", false, "Create separate files for each voice instead of a combined 4-part score.")
	mappingFlag := flagSet.String("mapping", "", "Path to a voice-mapping file (.hcl, .yaml, .yml). Defaults to the built-in SATB table.")
	outFlag := flagSet.String("out", "", "Output directory. Defaults to the input file's directory.")
	watchFlag := flagSet.Bool("watch", false, "Keep running and reprocess the input whenever it changes.")
	workersFlag := flagSet.Int("workers", 0, "Number of concurrent voice extractions. 0 uses the default.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	versionFlag := flagSet.Bool("version", false, "Print the version and exit.")
	verboseFlag := flagSet.Bool("verbose", false, "Shorthand for --log-level debug.")
	vFlag := flagSet.Bool("v", false, "Shorthand for --log-level debug.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	if *versionFlag {
		fmt.Fprintf(output, "satb %s\n", Version)
		return nil, true, nil
	}

	path := flagSet.Arg(0)
	if path == "" {
		flagSet.Usage()
		return nil, true, nil
	}
	if flagSet.NArg() > 1 {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("unexpected extra arguments: %s", strings.Join(flagSet.Args()[1:], " "))}
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	if *verboseFlag || *vFlag {
		logLevel = "debug"
	}

	if *mappingFlag != "" {
		if _, err := loaderForPath(*mappingFlag); err != nil {
			return nil, false, &ExitError{Code: 2, Message: err.Error()}
		}
	}

	cfg, err := app.NewConfig(app.Config{
		InputPath:   path,
		MappingPath: *mappingFlag,
		OutDir:      *outFlag,
		Separate:    *separateFlag,
		Watch:       *watchFlag,
		Workers:     *workersFlag,
		LogFormat:   logFormat,
		LogLevel:    logLevel,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	return cfg, false, nil
}

// MappingLoader returns the loader for the mapping file's format, or nil
// when no mapping file is configured and the built-in table applies.
func MappingLoader(path string) config.Loader {
	if path == "" {
		return nil
	}
	loader, err := loaderForPath(path)
	if err != nil {
		// Parse validated the extension already.
		panic(err)
	}
	return loader
}

func loaderForPath(path string) (config.Loader, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".hcl":
		return hclmap.NewLoader(), nil
	case ".yaml", ".yml":
		return yamlmap.NewLoader(), nil
	}
	return nil, fmt.Errorf("unsupported mapping file format %q: must be .hcl, .yaml or .yml", filepath.Ext(path))
}
