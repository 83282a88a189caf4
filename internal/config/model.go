package config

import "fmt"

// VoiceMapping binds one voice of the input score to a named vocal part.
// Part is the 1-based position of the part in the score; Voice is the
// literal text of the MusicXML <voice> element within that part.
type VoiceMapping struct {
	Name  string
	Part  int
	Voice string
}

// Mappings is an ordered mapping table. Order is significant: the first
// entry is the lyric source for the others, and combined output appends
// parts in table order.
type Mappings []VoiceMapping

// maxVoices bounds the mapping table. Anything past a double choir is
// almost certainly a malformed config.
const maxVoices = 8

// Default returns the standard SATB table for a closed-score arrangement:
// two staves, soprano/alto as voices 1 and 2 of the first part, tenor/bass
// as voices 5 and 6 of the second.
func Default() Mappings {
	return Mappings{
		{Name: "Soprano", Part: 1, Voice: "1"},
		{Name: "Alto", Part: 1, Voice: "2"},
		{Name: "Tenor", Part: 2, Voice: "5"},
		{Name: "Bass", Part: 2, Voice: "6"},
	}
}

// Validate checks structural soundness of the table.
func (m Mappings) Validate() error {
	if len(m) == 0 {
		return fmt.Errorf("mapping table is empty")
	}
	if len(m) > maxVoices {
		return fmt.Errorf("mapping table has %d entries, maximum is %d", len(m), maxVoices)
	}
	seen := make(map[string]struct{}, len(m))
	for i, vm := range m {
		if vm.Name == "" {
			return fmt.Errorf("mapping %d: name must not be empty", i+1)
		}
		if _, dup := seen[vm.Name]; dup {
			return fmt.Errorf("mapping %d: duplicate voice name %q", i+1, vm.Name)
		}
		seen[vm.Name] = struct{}{}
		if vm.Part < 1 {
			return fmt.Errorf("mapping %q: part must be >= 1, got %d", vm.Name, vm.Part)
		}
		if vm.Voice == "" {
			return fmt.Errorf("mapping %q: voice must not be empty", vm.Name)
		}
	}
	return nil
}
