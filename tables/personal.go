// Package tables holds the static, load-once-and-share data the resolver
// and generator consult: the personal (species) table, Gen9 encounter
// pools and reward tables, rate totals, and Gen8 nest hashes and nest
// pools. Nothing here is mutated after construction.
package tables

import "github.com/raidkit/raidcore/encoding"

// PersonalEntrySize is the packed record width of one PersonalEntry.
const PersonalEntrySize = 0x50

// Gender ratio magic values. Any other byte is a threshold compared
// against a 0..99 roll via GenderFromRatio.
const (
	RatioGenderless  byte = 0xFF
	RatioAlwaysFemale byte = 0xFE
	RatioAlwaysMale   byte = 0x00
)

// PersonalEntry is one species/form row of the personal table: types,
// gender ratio, up to three abilities, and form metadata.
type PersonalEntry struct {
	Type1            uint8
	Type2            uint8
	GenderRatio      uint8
	Ability1         uint16
	Ability2         uint16
	AbilityHidden    uint16
	FormStatsIndex   uint16
	FormCount        uint8
	IsPresentInGame  bool
}

// AbilityAt returns the ability id stored in slot 0 (first), 1 (second),
// or 2 (hidden). Any other index returns 0.
func (p PersonalEntry) AbilityAt(slot int) uint16 {
	switch slot {
	case 0:
		return p.Ability1
	case 1:
		return p.Ability2
	case 2:
		return p.AbilityHidden
	default:
		return 0
	}
}

func parsePersonalEntry(data []byte) PersonalEntry {
	return PersonalEntry{
		Type1:           data[0x06],
		Type2:           data[0x07],
		GenderRatio:     data[0x0C],
		Ability1:        encoding.Read16(data, 0x12),
		Ability2:        encoding.Read16(data, 0x14),
		AbilityHidden:   encoding.Read16(data, 0x16),
		FormStatsIndex:  encoding.Read16(data, 0x18),
		FormCount:       data[0x1A],
		IsPresentInGame: data[0x1C] != 0,
	}
}

// PersonalTable is the full species-indexed table, loaded once and shared
// by reference.
type PersonalTable struct {
	entries []PersonalEntry
}

// LoadPersonalTable splits a packed buffer of 0x50-byte records.
func LoadPersonalTable(data []byte) *PersonalTable {
	n := len(data) / PersonalEntrySize
	entries := make([]PersonalEntry, n)
	for i := 0; i < n; i++ {
		entries[i] = parsePersonalEntry(data[i*PersonalEntrySize:])
	}
	return &PersonalTable{entries: entries}
}

// Count returns the number of species rows in the table.
func (t *PersonalTable) Count() int {
	return len(t.entries)
}

// At returns the row at index, falling back to row 0 when the index is
// out of range.
func (t *PersonalTable) At(index int) PersonalEntry {
	if index < 0 || index >= len(t.entries) {
		index = 0
	}
	return t.entries[index]
}

// formIndex resolves a (species, form) pair to a row index, falling back
// to the base species row whenever the form lookup cannot be satisfied.
// This fallback is load-bearing game behavior, not an error condition.
func (t *PersonalTable) formIndex(species uint16, form uint8) int {
	if int(species) >= len(t.entries) {
		return 0
	}
	if form == 0 {
		return int(species)
	}
	entry := t.entries[species]
	if form >= entry.FormCount {
		return int(species)
	}
	fsi := int(entry.FormStatsIndex)
	if fsi == 0 {
		return int(species)
	}
	idx := fsi + int(form) - 1
	if idx >= len(t.entries) {
		return int(species)
	}
	return idx
}

// FormEntry returns the row for (species, form), applying the
// out-of-range fallback to the base species row.
func (t *PersonalTable) FormEntry(species uint16, form uint8) PersonalEntry {
	return t.At(t.formIndex(species, form))
}

// GenderFromRatio resolves a creature's gender from its species' gender
// ratio byte and a 0..99 roll. The three magic constants are fixed
// genders; every other byte is a female-chance threshold, with five known
// fixed points and a 50% default for anything else.
func GenderFromRatio(ratio byte, roll int) Gender {
	switch ratio {
	case RatioGenderless:
		return GenderGenderless
	case RatioAlwaysFemale:
		return GenderFemale
	case RatioAlwaysMale:
		return GenderMale
	}
	if roll < femaleThreshold(ratio) {
		return GenderFemale
	}
	return GenderMale
}

func femaleThreshold(ratio byte) int {
	switch ratio {
	case 0x1F:
		return 12
	case 0x3F:
		return 25
	case 0x7F:
		return 50
	case 0xBF:
		return 75
	case 0xE1:
		return 89
	default:
		return 50
	}
}

// Gender is a resolved creature gender.
type Gender uint8

const (
	GenderMale Gender = iota
	GenderFemale
	GenderGenderless
)
