// Package fsutil provides file system utility functions.
package fsutil

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vk/satb/internal/musicxml"
)

// ResolveInputs expands an input path into the list of score files to
// process. A file path yields itself; a directory is searched recursively
// for MusicXML files, sorted for deterministic processing order.
func ResolveInputs(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if !info.IsDir() {
		return []string{path}, nil
	}

	var files []string
	err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && musicxml.IsScoreFile(d.Name()) {
			files = append(files, p)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", path, err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no MusicXML files found under %s", path)
	}
	sort.Strings(files)
	return files, nil
}

// OutputPath derives the path for a processed score: the input stem with a
// suffix appended, always written uncompressed. `chorale.mxl` with suffix
// "Soprano" in dir "" becomes `chorale-Soprano.musicxml` beside the input;
// a non-empty dir relocates the output there.
func OutputPath(inputPath, suffix, dir string) string {
	base := filepath.Base(inputPath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	name := fmt.Sprintf("%s-%s%s", stem, suffix, musicxml.ExtMusicXML)
	if dir == "" {
		dir = filepath.Dir(inputPath)
	}
	return filepath.Join(dir, name)
}
