package musicxml

import "encoding/xml"

// RawElement captures an arbitrary element verbatim: its name, attributes
// and inner XML. It is the passthrough vehicle for notation the model does
// not type (directions, barlines, credits, engraving defaults, ...).
type RawElement struct {
	XMLName xml.Name
	Attrs   []xml.Attr `xml:",any,attr"`
	Content string     `xml:",innerxml"`
}

// Empty marshals as a bare element with no content, e.g. <chord/>.
type Empty struct{}

// Score is the root <score-partwise> document.
type Score struct {
	XMLName        xml.Name     `xml:"score-partwise"`
	Version        string       `xml:"version,attr,omitempty"`
	Work           *RawElement  `xml:"work"`
	MovementNumber string       `xml:"movement-number,omitempty"`
	MovementTitle  string       `xml:"movement-title,omitempty"`
	Identification *RawElement  `xml:"identification"`
	Defaults       *RawElement  `xml:"defaults"`
	Credits        []RawElement `xml:"credit"`
	PartList       PartList     `xml:"part-list"`
	Parts          []*Part      `xml:"part"`
}

// PartList is the <part-list> header. Part groups are carried through on
// plain round-trips but are not reconstructed for extracted output, whose
// part list is rebuilt from scratch.
type PartList struct {
	XMLName    xml.Name     `xml:"part-list"`
	Groups     []RawElement `xml:"part-group"`
	ScoreParts []*ScorePart `xml:"score-part"`
}

// ScorePart is a <score-part> entry in the part list.
type ScorePart struct {
	XMLName          xml.Name `xml:"score-part"`
	ID               string   `xml:"id,attr"`
	PartName         string   `xml:"part-name"`
	PartAbbreviation string   `xml:"part-abbreviation,omitempty"`
}

// Part is a <part> body holding the music for one score-part.
type Part struct {
	XMLName  xml.Name   `xml:"part"`
	ID       string     `xml:"id,attr"`
	Measures []*Measure `xml:"measure"`
}

// Note is a <note>. Field order follows the MusicXML content model so the
// default marshaller emits children in a valid sequence. Children the model
// does not type (<instrument>, <play>, <listen>, <footnote>, ...) are
// captured raw and re-emitted after the typed ones.
type Note struct {
	XMLName          xml.Name     `xml:"note"`
	Attrs            []xml.Attr   `xml:",any,attr"`
	Grace            *RawElement  `xml:"grace"`
	Chord            *Empty       `xml:"chord"`
	Pitch            *RawElement  `xml:"pitch"`
	Unpitched        *RawElement  `xml:"unpitched"`
	Rest             *RawElement  `xml:"rest"`
	Duration         int          `xml:"duration,omitempty"`
	Ties             []Tie        `xml:"tie"`
	Voice            string       `xml:"voice,omitempty"`
	Type             *RawElement  `xml:"type"`
	Dots             []Empty      `xml:"dot"`
	Accidental       *RawElement  `xml:"accidental"`
	TimeModification *RawElement  `xml:"time-modification"`
	Stem             string       `xml:"stem,omitempty"`
	Notehead         *RawElement  `xml:"notehead"`
	Staff            string       `xml:"staff,omitempty"`
	Beams            []RawElement `xml:"beam"`
	Notations        []*Notations `xml:"notations"`
	Lyrics           []*Lyric     `xml:"lyric"`
	Other            []RawElement `xml:",any"`
}

// Tie is the sounding <tie> element (distinct from the notational <tied>).
type Tie struct {
	Type string `xml:"type,attr"`
}

// Notations is a <notations> container. Slurs are typed for voice surgery;
// everything else passes through.
type Notations struct {
	XMLName xml.Name     `xml:"notations"`
	Tied    []RawElement `xml:"tied"`
	Slurs   []Slur       `xml:"slur"`
	Other   []RawElement `xml:",any"`
}

// Slur is a <slur> start/stop/continue marker.
type Slur struct {
	Type      string     `xml:"type,attr"`
	Number    string     `xml:"number,attr,omitempty"`
	Placement string     `xml:"placement,attr,omitempty"`
	Attrs     []xml.Attr `xml:",any,attr"`
}

// Lyric is a <lyric> with a single syllable. Elisions (multiple
// syllabic/text pairs in one lyric) are rare in choral sources and are not
// modelled. Text is omitted when empty so an extend-only lyric (a melisma
// continuation) round-trips without a spurious <text>.
type Lyric struct {
	XMLName  xml.Name    `xml:"lyric"`
	Number   string      `xml:"number,attr,omitempty"`
	Name     string      `xml:"name,attr,omitempty"`
	Syllabic string      `xml:"syllabic,omitempty"`
	Text     string      `xml:"text,omitempty"`
	Extend   *RawElement `xml:"extend"`
}

// Backup moves the measure cursor backwards; it is how multiple voices
// share one measure.
type Backup struct {
	XMLName  xml.Name `xml:"backup"`
	Duration int      `xml:"duration"`
}

// Forward moves the measure cursor forwards without sounding a note.
type Forward struct {
	XMLName  xml.Name `xml:"forward"`
	Duration int      `xml:"duration"`
	Voice    string   `xml:"voice,omitempty"`
	Staff    string   `xml:"staff,omitempty"`
}

// Attributes is an <attributes> block. Divisions is typed because every
// offset computation depends on it; the rest passes through in content
// order (key, time, then anything else).
type Attributes struct {
	XMLName   xml.Name     `xml:"attributes"`
	Divisions int          `xml:"divisions,omitempty"`
	Key       *RawElement  `xml:"key"`
	Time      *RawElement  `xml:"time"`
	Staves    *int         `xml:"staves,omitempty"`
	Clefs     []RawElement `xml:"clef"`
	Other     []RawElement `xml:",any"`
}

// IsRest reports whether the note is a rest.
func (n *Note) IsRest() bool { return n.Rest != nil }

// IsChord reports whether the note continues a chord started by the
// previous note, meaning it does not advance the measure cursor.
func (n *Note) IsChord() bool { return n.Chord != nil }

// IsGrace reports whether the note is a grace note (no duration).
func (n *Note) IsGrace() bool { return n.Grace != nil }

// TieState summarizes a note's sounding ties: "start", "stop", "continue"
// (both), or "" when untied.
func (n *Note) TieState() string {
	var hasStart, hasStop bool
	for _, t := range n.Ties {
		switch t.Type {
		case "start":
			hasStart = true
		case "stop":
			hasStop = true
		}
	}
	switch {
	case hasStart && hasStop:
		return "continue"
	case hasStart:
		return "start"
	case hasStop:
		return "stop"
	}
	return ""
}

// HasLyrics reports whether the note carries at least one lyric.
func (n *Note) HasLyrics() bool { return len(n.Lyrics) > 0 }
