package tables

import "github.com/raidkit/raidcore/encoding"

// EncounterTemplateSize is the serialized record width of one Gen9
// encounter template.
const EncounterTemplateSize = 0x3C

// TeraTypeSpec is the template's tera-type directive.
type TeraTypeSpec uint8

const (
	TeraTypeDefault TeraTypeSpec = 0 // use the species' own type1/type2
	TeraTypeRandom  TeraTypeSpec = 1 // random from all 18 types
	// 2..19 mean "specific type", value-2
)

// Specific reports whether the spec names a concrete type, returning it.
func (s TeraTypeSpec) Specific() (t uint8, ok bool) {
	if s >= 2 {
		return uint8(s) - 2, true
	}
	return 0, false
}

// AbilityPermission constrains which personal-table ability slot a
// template may draw from.
type AbilityPermission uint8

const (
	AbilityAny12     AbilityPermission = 0
	AbilityAny12H    AbilityPermission = 1
	AbilityOnlyFirst AbilityPermission = 2
	AbilityOnlySecond AbilityPermission = 4
	AbilityOnlyHidden AbilityPermission = 8
)

// ShinyDirective is the template's shiny-coercion rule.
type ShinyDirective uint8

const (
	ShinyRandom ShinyDirective = 0
	ShinyNever  ShinyDirective = 1
	ShinyAlways ShinyDirective = 2
)

// EncounterTemplate is one Gen9 raid encounter definition.
type EncounterTemplate struct {
	Species           uint16
	Form              uint8
	GenderOverride    uint8 // 0 = "use personal table"; else value-1
	Ability           AbilityPermission
	FlawlessIVCount   uint8
	Shiny             ShinyDirective
	Level             uint8
	Moves             [4]uint16
	TeraType          TeraTypeSpec
	Index             uint8
	Stars             uint8
	RandRate          uint8
	RandRateMinScarlet int16
	RandRateMinViolet  int16
	Identifier        uint32
	FixedRewardHash   uint64
	LotteryRewardHash uint64
	ExtraMoves        [6]uint16
	GenderRatio       uint8 // copied in from the personal table at load time
}

// MinRateFor returns the version-specific minimum rate for the resolver's
// range comparison. A negative value means the template does not appear
// in that version's pool at all.
func (e EncounterTemplate) MinRateFor(v Version) int16 {
	if v == VersionScarlet {
		return e.RandRateMinScarlet
	}
	return e.RandRateMinViolet
}

func parseEncounterTemplate(data []byte, personalGender uint8) EncounterTemplate {
	e := EncounterTemplate{
		Species:            encoding.Read16(data, 0x00),
		Form:               data[0x02],
		GenderOverride:     data[0x03],
		Ability:            abilityFromByte(data[0x04]),
		FlawlessIVCount:    data[0x05],
		Shiny:              ShinyDirective(data[0x06]),
		Level:              data[0x07],
		TeraType:           TeraTypeSpec(data[0x10]),
		Index:              data[0x11],
		Stars:              data[0x12],
		RandRate:           data[0x13],
		RandRateMinScarlet: int16(encoding.Read16(data, 0x14)),
		RandRateMinViolet:  int16(encoding.Read16(data, 0x16)),
		Identifier:         encoding.Read32(data, 0x18),
		FixedRewardHash:    encoding.Read64(data, 0x1C),
		LotteryRewardHash:  encoding.Read64(data, 0x24),
		GenderRatio:        personalGender,
	}
	for i := 0; i < 4; i++ {
		e.Moves[i] = encoding.Read16(data, 0x08+i*2)
	}
	for i := 0; i < 6; i++ {
		e.ExtraMoves[i] = encoding.Read16(data, 0x30+i*2)
	}
	return e
}

func abilityFromByte(b byte) AbilityPermission {
	switch b {
	case 0:
		return AbilityAny12
	case 1:
		return AbilityAny12H
	case 2:
		return AbilityOnlyFirst
	case 3:
		return AbilityOnlySecond
	case 4:
		return AbilityOnlyHidden
	default:
		return AbilityAny12
	}
}

// EncounterTable is the full pool of templates for one (region, content)
// combination, sorted by star tier as the resolver expects.
type EncounterTable struct {
	Entries []EncounterTemplate
}

// LoadEncounterTable splits a packed buffer of 0x3C-byte templates,
// augmenting each with the personal table's gender byte for its
// (species, form).
func LoadEncounterTable(data []byte, pt *PersonalTable) EncounterTable {
	n := len(data) / EncounterTemplateSize
	entries := make([]EncounterTemplate, 0, n)
	for i := 0; i < n; i++ {
		rec := data[i*EncounterTemplateSize:]
		species := encoding.Read16(rec, 0x00)
		form := rec[0x02]
		gender := pt.FormEntry(species, form).GenderRatio
		entries = append(entries, parseEncounterTemplate(rec, gender))
	}
	return EncounterTable{Entries: entries}
}
