// Package musicxml provides a typed model and codec for score-partwise
// MusicXML documents.
//
// The model types only the elements the application performs surgery on
// (parts, measures, notes, voices, lyrics, ties, slurs). Everything else
// round-trips losslessly through RawElement, so documents written back out
// keep the notation the tool does not understand.
package musicxml
