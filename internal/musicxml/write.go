package musicxml

import (
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"os"

	"github.com/vk/satb/internal/ctxlog"
)

// doctypeFormat is the standard partwise DOCTYPE, parameterized on the
// document version.
const doctypeFormat = `<!DOCTYPE score-partwise PUBLIC "-//Recordare//DTD MusicXML %s Partwise//EN" "http://www.musicxml.org/dtds/partwise.dtd">`

// Write encodes the score as an uncompressed MusicXML document with the
// standard declaration and DOCTYPE.
func (s *Score) Write(w io.Writer) error {
	version := s.Version
	if version == "" {
		version = "4.0"
	}
	if _, err := fmt.Fprintf(w, "%s%s\n", xml.Header, fmt.Sprintf(doctypeFormat, version)); err != nil {
		return fmt.Errorf("failed to write document header: %w", err)
	}

	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("failed to encode score: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to flush encoder: %w", err)
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// WriteFile writes the score to path, creating or truncating it.
func (s *Score) WriteFile(ctx context.Context, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := s.Write(f); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}
	ctxlog.FromContext(ctx).Debug("Score written.", "path", path, "parts", len(s.Parts))
	return nil
}

// Clone deep-copies the score by round-tripping it through the codec. The
// surgery functions never mutate their input, so every transformation
// starts from a clone.
func (s *Score) Clone() (*Score, error) {
	var buf bytes.Buffer
	if err := s.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to clone score: %w", err)
	}
	clone, err := Read(context.Background(), &buf)
	if err != nil {
		return nil, fmt.Errorf("failed to clone score: %w", err)
	}
	return clone, nil
}
