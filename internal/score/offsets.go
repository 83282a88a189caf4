package score

import "github.com/vk/satb/internal/musicxml"

// beat is a position within a measure as a fraction of a quarter note,
// stored exactly so offsets computed under different <divisions> values
// compare without floating point.
type beat struct {
	Num int
	Den int
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	if a < 0 {
		return -a
	}
	return a
}

// newBeat normalizes offset/divisions to lowest terms.
func newBeat(offset, divisions int) beat {
	if divisions <= 0 {
		divisions = 1
	}
	d := gcd(offset, divisions)
	if d == 0 {
		return beat{Num: 0, Den: 1}
	}
	return beat{Num: offset / d, Den: divisions / d}
}

// placed is a content item annotated with its start offset within the
// measure, in the divisions current at that point.
type placed struct {
	item      musicxml.MusicData
	offset    int
	divisions int
	index     int
}

// placeContent walks a measure's content with the MusicXML cursor model:
// notes advance the cursor by their duration (chords and grace notes do
// not), backup moves it backwards, forward moves it ahead. It returns every
// item with its start offset and the divisions in effect afterwards.
func placeContent(m *musicxml.Measure, divisions int) ([]placed, int) {
	var out []placed
	cursor := 0
	lastStart := 0

	for i, item := range m.Content {
		switch v := item.(type) {
		case *musicxml.Note:
			start := cursor
			if v.IsChord() {
				start = lastStart
			} else {
				lastStart = cursor
			}
			out = append(out, placed{item: v, offset: start, divisions: divisions, index: i})
			if !v.IsChord() && !v.IsGrace() {
				cursor += v.Duration
			}
		case *musicxml.Backup:
			cursor -= v.Duration
			if cursor < 0 {
				cursor = 0
			}
			lastStart = cursor
			out = append(out, placed{item: v, offset: cursor, divisions: divisions, index: i})
		case *musicxml.Forward:
			out = append(out, placed{item: v, offset: cursor, divisions: divisions, index: i})
			cursor += v.Duration
			lastStart = cursor
		case *musicxml.Attributes:
			if v.Divisions > 0 {
				divisions = v.Divisions
			}
			out = append(out, placed{item: v, offset: cursor, divisions: divisions, index: i})
		default:
			out = append(out, placed{item: item, offset: cursor, divisions: divisions, index: i})
		}
	}
	return out, divisions
}
