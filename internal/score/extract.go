package score

import (
	"context"
	"fmt"
	"sort"

	"github.com/vk/satb/internal/config"
	"github.com/vk/satb/internal/ctxlog"
	"github.com/vk/satb/internal/musicxml"
)

// Extract filters a score down to the single voice named by the mapping.
// The result is a new single-part score; the input is untouched. If
// lyricsSource is non-nil (normally the soprano extraction), its lyrics are
// copied onto notes that have none.
func Extract(ctx context.Context, s *musicxml.Score, mapping config.VoiceMapping, lyricsSource *musicxml.Score) (*musicxml.Score, error) {
	logger := ctxlog.FromContext(ctx)

	if mapping.Part < 1 || mapping.Part > len(s.Parts) {
		return nil, fmt.Errorf("voice %s: score has %d parts, mapping wants part %d",
			mapping.Name, len(s.Parts), mapping.Part)
	}

	out, err := s.Clone()
	if err != nil {
		return nil, fmt.Errorf("voice %s: %w", mapping.Name, err)
	}

	keep := out.Parts[mapping.Part-1]
	out.Parts = []*musicxml.Part{keep}
	out.PartList = rebuiltPartList(out, keep, mapping.Name)

	removed := 0
	divisions := 1
	for _, m := range keep.Measures {
		var n int
		n, divisions = filterMeasure(m, mapping.Voice, divisions)
		removed += n
	}
	logger.Debug("Voice filtered.",
		"voice", mapping.Name,
		"part", mapping.Part,
		"notes_removed", removed,
	)

	correctSyllabics(keep)

	if lyricsSource != nil {
		copied := propagateLyrics(keep, lyricsSource)
		logger.Debug("Lyrics propagated.", "voice", mapping.Name, "lyrics_copied", copied)
	}
	return out, nil
}

// ExtractPart extracts a voice and names the surviving part after it, for
// use as one part of a combined score.
func ExtractPart(ctx context.Context, s *musicxml.Score, mapping config.VoiceMapping, lyricsSource *musicxml.Score) (*musicxml.Score, error) {
	out, err := Extract(ctx, s, mapping, lyricsSource)
	if err != nil {
		return nil, err
	}
	sp := out.PartList.ScoreParts[0]
	sp.PartName = mapping.Name
	sp.PartAbbreviation = mapping.Name
	return out, nil
}

// rebuiltPartList keeps only the surviving part's entry, dropping part
// groups. A missing entry (malformed header) is synthesized.
func rebuiltPartList(s *musicxml.Score, keep *musicxml.Part, name string) musicxml.PartList {
	for _, sp := range s.PartList.ScoreParts {
		if sp.ID == keep.ID {
			return musicxml.PartList{ScoreParts: []*musicxml.ScorePart{sp}}
		}
	}
	return musicxml.PartList{ScoreParts: []*musicxml.ScorePart{
		{ID: keep.ID, PartName: name},
	}}
}

// filterMeasure removes all notes outside the wanted voice and rebuilds the
// measure timeline for the single voice that remains. Backups and forwards
// are discarded and re-synthesized from the kept items' offsets, so
// directions and other raw elements stay anchored at their original beat.
// Kept notes are renumbered to voice 1 and lose their stem direction.
// It returns the number of notes removed and the divisions in effect after
// the measure.
func filterMeasure(m *musicxml.Measure, voiceID string, divisions int) (int, int) {
	items, divAfter := placeContent(m, divisions)

	kept := items[:0]
	removed := 0
	for _, p := range items {
		switch v := p.item.(type) {
		case *musicxml.Note:
			if v.Voice != voiceID {
				removed++
				continue
			}
			v.Voice = "1"
			v.Stem = ""
			kept = append(kept, p)
		case *musicxml.Backup, *musicxml.Forward:
			// Re-synthesized below.
		default:
			kept = append(kept, p)
		}
	}

	// Chronological order, original order within the same beat.
	sort.SliceStable(kept, func(i, j int) bool {
		if kept[i].offset != kept[j].offset {
			return kept[i].offset < kept[j].offset
		}
		return kept[i].index < kept[j].index
	})

	content := make([]musicxml.MusicData, 0, len(kept))
	cursor := 0
	for _, p := range kept {
		if p.offset > cursor {
			content = append(content, &musicxml.Forward{Duration: p.offset - cursor})
			cursor = p.offset
		} else if p.offset < cursor {
			content = append(content, &musicxml.Backup{Duration: cursor - p.offset})
			cursor = p.offset
		}
		content = append(content, p.item)
		if n, ok := p.item.(*musicxml.Note); ok && !n.IsChord() && !n.IsGrace() {
			cursor += n.Duration
		}
	}
	m.Content = content
	return removed, divAfter
}

// correctSyllabics rewrites the syllabic of lyric-bearing notes from their
// tie and slur context, so a syllable held across tied or slurred notes
// renders with the right hyphenation and extender line.
func correctSyllabics(p *musicxml.Part) {
	openSlurs := make(map[string]bool)

	for _, m := range p.Measures {
		for _, n := range m.Notes() {
			starts, stops := slurEdges(n)

			// Extend-only lyrics (melisma continuations) carry no
			// syllable to correct.
			if n.HasLyrics() && n.Lyrics[0].Text != "" {
				switch n.TieState() {
				case "start":
					n.Lyrics[0].Syllabic = "begin"
				case "continue":
					n.Lyrics[0].Syllabic = "middle"
				case "stop":
					n.Lyrics[0].Syllabic = "end"
				default:
					switch {
					case len(starts) > 0 && len(stops) > 0:
						n.Lyrics[0].Syllabic = "middle"
					case len(starts) > 0:
						n.Lyrics[0].Syllabic = "begin"
					case len(stops) > 0:
						n.Lyrics[0].Syllabic = "end"
					case len(openSlurs) > 0:
						n.Lyrics[0].Syllabic = "middle"
					}
				}
			}

			for _, num := range starts {
				openSlurs[num] = true
			}
			for _, num := range stops {
				delete(openSlurs, num)
			}
		}
	}
}

// slurEdges returns the slur numbers starting and stopping at this note.
// An unnumbered slur uses the MusicXML default of "1".
func slurEdges(n *musicxml.Note) (starts, stops []string) {
	for _, nt := range n.Notations {
		for _, sl := range nt.Slurs {
			num := sl.Number
			if num == "" {
				num = "1"
			}
			switch sl.Type {
			case "start":
				starts = append(starts, num)
			case "stop":
				stops = append(stops, num)
			}
		}
	}
	return starts, stops
}
