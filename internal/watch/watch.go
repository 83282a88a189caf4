// Package watch reruns a processing function whenever any of a set of
// files changes on disk.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/vk/satb/internal/ctxlog"
)

// Files blocks, invoking run after every change to one of the given files,
// until the context is cancelled. Events are debounced: editors and
// notation software produce bursts of writes per save, which must collapse
// into a single rerun.
func Files(ctx context.Context, paths []string, debounce time.Duration, run func(context.Context)) error {
	logger := ctxlog.FromContext(ctx)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the containing directories: watching files directly breaks on
	// editors that replace the file on save.
	watched := make(map[string]struct{}, len(paths))
	dirs := make(map[string]struct{})
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return fmt.Errorf("failed to resolve %s: %w", p, err)
		}
		watched[abs] = struct{}{}
		dirs[filepath.Dir(abs)] = struct{}{}
	}
	for dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
	}
	logger.Info("Watching for changes.", "files", len(watched), "dirs", len(dirs))

	timer := time.NewTimer(debounce)
	if !timer.Stop() {
		<-timer.C
	}

	for {
		select {
		case <-ctx.Done():
			logger.Info("Watch stopped.")
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !ev.Op.Has(fsnotify.Write) && !ev.Op.Has(fsnotify.Create) {
				continue
			}
			abs, err := filepath.Abs(ev.Name)
			if err != nil {
				continue
			}
			if _, tracked := watched[abs]; !tracked {
				continue
			}
			logger.Debug("Change detected.", "path", ev.Name, "op", ev.Op.String())
			timer.Reset(debounce)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("Watcher error.", "error", err)
		case <-timer.C:
			run(ctx)
		}
	}
}
