package score

import "github.com/vk/satb/internal/musicxml"

// lyricPos identifies a note position for lyric matching: measure index
// plus exact beat within the measure.
type lyricPos struct {
	measure int
	at      beat
}

// propagateLyrics copies lyrics from the source score (normally the soprano
// extraction) onto target notes that have none. Only notes that begin a
// syllable can receive one: rests, mid-tie and tie-ending notes are
// skipped. Matching is by measure index and exact beat offset. Returns the
// number of notes that received lyrics.
func propagateLyrics(target *musicxml.Part, source *musicxml.Score) int {
	if len(source.Parts) == 0 {
		return 0
	}
	index := lyricIndex(source.Parts[0])

	copied := 0
	divisions := 1
	for mi, m := range target.Measures {
		items, divAfter := placeContent(m, divisions)
		for _, p := range items {
			n, ok := p.item.(*musicxml.Note)
			if !ok || n.IsRest() || n.HasLyrics() {
				continue
			}
			if ts := n.TieState(); ts != "" && ts != "start" {
				continue
			}
			src, found := index[lyricPos{measure: mi, at: newBeat(p.offset, p.divisions)}]
			if !found {
				continue
			}
			n.Lyrics = cloneLyrics(src)
			copied++
		}
		divisions = divAfter
	}
	return copied
}

// lyricIndex maps every lyric-bearing note position in the part to its
// lyrics. The first note at a position wins, matching the original
// behavior of taking the first co-sounding note.
func lyricIndex(p *musicxml.Part) map[lyricPos][]*musicxml.Lyric {
	index := make(map[lyricPos][]*musicxml.Lyric)
	divisions := 1
	for mi, m := range p.Measures {
		items, divAfter := placeContent(m, divisions)
		for _, pl := range items {
			n, ok := pl.item.(*musicxml.Note)
			if !ok || !n.HasLyrics() {
				continue
			}
			pos := lyricPos{measure: mi, at: newBeat(pl.offset, pl.divisions)}
			if _, exists := index[pos]; !exists {
				index[pos] = n.Lyrics
			}
		}
		divisions = divAfter
	}
	return index
}

// cloneLyrics deep-copies a lyric list so the target never aliases the
// source score.
func cloneLyrics(src []*musicxml.Lyric) []*musicxml.Lyric {
	out := make([]*musicxml.Lyric, 0, len(src))
	for _, l := range src {
		cp := *l
		if l.Extend != nil {
			ext := *l.Extend
			cp.Extend = &ext
		}
		out = append(out, &cp)
	}
	return out
}
