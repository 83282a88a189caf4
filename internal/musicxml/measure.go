package musicxml

import (
	"encoding/xml"
	"fmt"
)

// MusicData is one ordered item of measure content: a note, a backup, a
// forward, an attributes block, or a raw passthrough element.
type MusicData interface {
	musicData()
}

func (*Note) musicData()       {}
func (*Backup) musicData()     {}
func (*Forward) musicData()    {}
func (*Attributes) musicData() {}
func (*RawElement) musicData() {}

// Measure is a <measure>. Its content is ordered mixed content, so it
// carries a custom codec instead of struct tags: element order inside a
// measure is semantically significant (the cursor model).
type Measure struct {
	Number  string
	Attrs   []xml.Attr
	Content []MusicData
}

// UnmarshalXML decodes measure content token by token, preserving element
// order. Typed elements become Note/Backup/Forward/Attributes; everything
// else is captured raw.
func (m *Measure) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	for _, attr := range start.Attr {
		if attr.Name.Local == "number" {
			m.Number = attr.Value
			continue
		}
		m.Attrs = append(m.Attrs, attr)
	}

	for {
		tok, err := d.Token()
		if err != nil {
			return fmt.Errorf("measure %s: %w", m.Number, err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			var item MusicData
			switch t.Name.Local {
			case "note":
				item = &Note{}
			case "backup":
				item = &Backup{}
			case "forward":
				item = &Forward{}
			case "attributes":
				item = &Attributes{}
			default:
				item = &RawElement{}
			}
			if err := d.DecodeElement(item, &t); err != nil {
				return fmt.Errorf("measure %s: decode <%s>: %w", m.Number, t.Name.Local, err)
			}
			m.Content = append(m.Content, item)
		case xml.EndElement:
			return nil
		}
	}
}

// MarshalXML writes the measure back out in its stored content order.
func (m *Measure) MarshalXML(e *xml.Encoder, _ xml.StartElement) error {
	start := xml.StartElement{Name: xml.Name{Local: "measure"}}
	start.Attr = append(start.Attr, xml.Attr{Name: xml.Name{Local: "number"}, Value: m.Number})
	start.Attr = append(start.Attr, m.Attrs...)

	if err := e.EncodeToken(start); err != nil {
		return err
	}
	for _, item := range m.Content {
		if err := e.Encode(item); err != nil {
			return fmt.Errorf("measure %s: encode content: %w", m.Number, err)
		}
	}
	return e.EncodeToken(start.End())
}

// Notes returns the measure's notes in content order.
func (m *Measure) Notes() []*Note {
	var notes []*Note
	for _, item := range m.Content {
		if n, ok := item.(*Note); ok {
			notes = append(notes, n)
		}
	}
	return notes
}

// Divisions returns the divisions-per-quarter declared in this measure's
// attributes, or 0 if the measure does not redeclare them.
func (m *Measure) Divisions() int {
	for _, item := range m.Content {
		if a, ok := item.(*Attributes); ok && a.Divisions > 0 {
			return a.Divisions
		}
	}
	return 0
}
