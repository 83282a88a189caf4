package musicxml

import (
	"archive/zip"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/net/html/charset"

	"github.com/vk/satb/internal/ctxlog"
)

// Extensions recognized as MusicXML input.
const (
	ExtXML      = ".xml"
	ExtMusicXML = ".musicxml"
	ExtMXL      = ".mxl"
)

// IsScoreFile reports whether the path carries a recognized MusicXML
// extension.
func IsScoreFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ExtXML, ExtMusicXML, ExtMXL:
		return true
	}
	return false
}

// Read decodes a score-partwise document from r. Parse errors from the
// decoder surface verbatim, wrapped with the operation.
func Read(ctx context.Context, r io.Reader) (*Score, error) {
	dec := xml.NewDecoder(r)
	dec.CharsetReader = charset.NewReaderLabel

	var score Score
	if err := dec.Decode(&score); err != nil {
		return nil, fmt.Errorf("failed to parse MusicXML: %w", err)
	}
	if len(score.Parts) == 0 {
		return nil, fmt.Errorf("failed to parse MusicXML: document has no parts")
	}
	ctxlog.FromContext(ctx).Debug("Score parsed.",
		"parts", len(score.Parts),
		"movement", score.MovementTitle,
	)
	return &score, nil
}

// ReadFile reads a score from a plain .xml/.musicxml file or a compressed
// .mxl container, chosen by extension.
func ReadFile(ctx context.Context, path string) (*Score, error) {
	if strings.EqualFold(filepath.Ext(path), ExtMXL) {
		return readContainer(ctx, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	score, err := Read(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return score, nil
}

// containerManifest mirrors META-INF/container.xml inside an .mxl archive.
type containerManifest struct {
	XMLName   xml.Name `xml:"container"`
	Rootfiles []struct {
		FullPath string `xml:"full-path,attr"`
	} `xml:"rootfiles>rootfile"`
}

// readContainer extracts the root score document from an .mxl zip archive.
// The root document is named by META-INF/container.xml; if the manifest is
// missing, the first top-level XML entry is used instead.
func readContainer(ctx context.Context, path string) (*Score, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer zr.Close()

	rootPath, err := containerRootPath(&zr.Reader)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	ctxlog.FromContext(ctx).Debug("Resolved .mxl root document.", "path", path, "root", rootPath)

	root, err := zr.Open(rootPath)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to open root document %s: %w", path, rootPath, err)
	}
	defer root.Close()

	score, err := Read(ctx, root)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return score, nil
}

func containerRootPath(zr *zip.Reader) (string, error) {
	manifest, err := zr.Open("META-INF/container.xml")
	if err == nil {
		defer manifest.Close()
		var c containerManifest
		if err := xml.NewDecoder(manifest).Decode(&c); err != nil {
			return "", fmt.Errorf("failed to parse container manifest: %w", err)
		}
		if len(c.Rootfiles) == 0 || c.Rootfiles[0].FullPath == "" {
			return "", fmt.Errorf("container manifest names no root document")
		}
		return c.Rootfiles[0].FullPath, nil
	}

	// No manifest: fall back to the first top-level XML entry.
	for _, f := range zr.File {
		name := f.Name
		if strings.HasPrefix(name, "META-INF/") || strings.Contains(name, "/") {
			continue
		}
		ext := strings.ToLower(filepath.Ext(name))
		if ext == ExtXML || ext == ExtMusicXML {
			return name, nil
		}
	}
	return "", fmt.Errorf("archive contains no score document")
}
