package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/vk/satb/internal/config"
	"github.com/vk/satb/internal/ctxlog"
	"github.com/vk/satb/internal/fsutil"
	"github.com/vk/satb/internal/musicxml"
	"github.com/vk/satb/internal/score"
	"github.com/vk/satb/internal/ui"
	"github.com/vk/satb/internal/watch"
)

// watchDebounce collapses save bursts from notation software into one rerun.
const watchDebounce = 300 * time.Millisecond

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	config   *Config
	mappings config.Mappings
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance with its own isolated logger and the resolved
// voice-mapping table. A mapping file that fails to load is a fatal startup
// error and panics; the caller recovers it into a clean exit.
func NewApp(outW io.Writer, cfg *Config, loader config.Loader) *App {
	logger := newLogger(cfg.Level, cfg.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	mappings := config.Default()
	if cfg.MappingPath != "" {
		loaded, err := loader.Load(ctx, cfg.MappingPath)
		if err != nil {
			panic(fmt.Errorf("failed to load voice mappings: %w", err))
		}
		mappings = loaded
	}
	logger.Debug("Voice mappings resolved.", "voices", len(mappings))

	return &App{
		outW:     outW,
		logger:   logger,
		config:   cfg,
		mappings: mappings,
	}
}

// Mappings returns the resolved voice-mapping table. This is primarily for testing.
func (a *App) Mappings() config.Mappings {
	return a.mappings
}

// Run resolves the inputs and processes them, either once or continuously
// in watch mode. The input set is resolved once at startup: in watch mode,
// score files added to a directory input afterwards are not picked up until
// the next run, and a removed input simply stops producing events.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)

	inputs, err := fsutil.ResolveInputs(a.config.InputPath)
	if err != nil {
		return err
	}
	if a.config.OutDir != "" {
		if err := os.MkdirAll(a.config.OutDir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	process := func(ctx context.Context) error {
		for _, input := range inputs {
			if err := a.processFile(ctx, input); err != nil {
				return err
			}
		}
		return nil
	}

	if !a.config.Watch {
		return process(ctx)
	}

	// Watch mode keeps running through processing failures: a half-saved
	// file will be reprocessed on the next change.
	if err := process(ctx); err != nil {
		a.logger.Error("Processing failed.", "error", err)
	}
	return watch.Files(ctx, inputs, watchDebounce, func(ctx context.Context) {
		if err := process(ctx); err != nil {
			a.logger.Error("Processing failed.", "error", err)
		}
	})
}

// processFile runs the full pipeline for one input score.
func (a *App) processFile(ctx context.Context, path string) error {
	if !musicxml.IsScoreFile(path) {
		a.logger.Warn("Input may not be a MusicXML file.", "path", path)
	}
	a.logger.Info("Processing file.", "path", path, "separate", a.config.Separate)

	s, err := musicxml.ReadFile(ctx, path)
	if err != nil {
		return err
	}

	if a.config.Separate {
		return a.writeSeparate(ctx, s, path)
	}
	return a.writeCombined(ctx, s, path)
}

// writeCombined produces the single 4-part open score.
func (a *App) writeCombined(ctx context.Context, s *musicxml.Score, inputPath string) error {
	combined, err := score.FourPart(ctx, s, a.mappings, a.config.Workers)
	if err != nil {
		return err
	}
	out := fsutil.OutputPath(inputPath, "4part", a.config.OutDir)
	if err := combined.WriteFile(ctx, out); err != nil {
		return err
	}
	fmt.Fprintln(a.outW, ui.Summary(fmt.Sprintf("%d-part score written", len(a.mappings)), []string{out}))
	return nil
}

// writeSeparate produces one single-voice file per mapping. The first voice
// (normally the soprano) is extracted first and feeds lyrics to the rest.
func (a *App) writeSeparate(ctx context.Context, s *musicxml.Score, inputPath string) error {
	var lyricsSource *musicxml.Score
	outputs := make([]string, 0, len(a.mappings))

	for _, m := range a.mappings {
		extracted, err := score.Extract(ctx, s, m, lyricsSource)
		if err != nil {
			return err
		}
		if lyricsSource == nil {
			lyricsSource = extracted
		}
		out := fsutil.OutputPath(inputPath, m.Name, a.config.OutDir)
		if err := extracted.WriteFile(ctx, out); err != nil {
			return err
		}
		a.logger.Info("Voice written.", "voice", m.Name, "part", m.Part, "path", out)
		outputs = append(outputs, out)
	}

	fmt.Fprintln(a.outW, ui.Summary("Voice parts written", outputs))
	return nil
}
