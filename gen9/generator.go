package gen9

import (
	"github.com/raidkit/raidcore/prng"
	"github.com/raidkit/raidcore/tables"
)

// ShinyKind classifies a generated creature's shininess.
type ShinyKind uint8

const (
	ShinyNo ShinyKind = iota
	ShinyStar
	ShinySquare
)

// CreatureDetails is the fully resolved set of stats for one generated
// Tera Raid creature.
type CreatureDetails struct {
	Seed          uint32
	Stars         uint8
	Species       uint16
	Form          uint8
	Level         uint8
	Moves         [4]uint16
	TeraType      uint8
	EC            uint32
	PID           uint32
	Shiny         ShinyKind
	IVs           [6]uint8
	Ability       uint16
	AbilityNumber int
	Gender        tables.Gender
	Nature        uint8
	Height        uint8
	Weight        uint8
	Scale         uint8
}

const toxtricitySpecies = 849

var toxNatureLowKey = [12]uint8{1, 2, 5, 10, 12, 15, 16, 17, 18, 20, 21, 23}
var toxNatureAmpedUp = [14]uint8{0, 3, 4, 6, 7, 8, 9, 11, 13, 14, 16, 19, 22, 24}

// resolveTeraType draws a tera type for a template: a specific type is
// used as-is, Random draws uniformly over all 18 types, and Default
// picks between the species' own type1/type2 with a coin flip — all
// from a fresh PRNG instance seeded identically to the main draw.
func resolveTeraType(seed uint32, spec tables.TeraTypeSpec, species uint16, form uint8, pt *tables.PersonalTable) uint8 {
	if t, ok := spec.Specific(); ok {
		return t
	}
	rng := prng.NewLongPeriod(uint64(seed))
	if spec == tables.TeraTypeRandom {
		return uint8(rng.NextBounded(18))
	}
	pivot := rng.NextBounded(2)
	entry := pt.FormEntry(species, form)
	if pivot == 0 {
		return entry.Type1
	}
	return entry.Type2
}

func refreshedAbility(pt *tables.PersonalTable, species uint16, form uint8, abilNum int) (uint16, int) {
	entry := pt.FormEntry(species, form)
	idx := abilNum >> 1
	if idx < 3 {
		return entry.AbilityAt(idx), idx
	}
	return uint16(idx), idx
}

func genderFromRatio(ratio byte, roll uint64) tables.Gender {
	switch ratio {
	case tables.RatioGenderless:
		return tables.GenderGenderless
	case tables.RatioAlwaysFemale:
		return tables.GenderFemale
	case tables.RatioAlwaysMale:
		return tables.GenderMale
	default:
		return tables.GenderFromRatio(ratio, int(roll))
	}
}

// Generate draws a full creature from a resolved template and raid
// seed. The tera-type draw uses its own PRNG instance seeded identically
// to the main sequence — an intentional quirk of the original draw
// order, not a bug: both passes start from the same seed but consume
// independent streams.
func Generate(seed uint32, tmpl tables.EncounterTemplate, id32 uint32, pt *tables.PersonalTable) CreatureDetails {
	out := CreatureDetails{
		Seed:    seed,
		Stars:   tmpl.Stars,
		Species: tmpl.Species,
		Form:    tmpl.Form,
		Level:   tmpl.Level,
		Moves:   tmpl.Moves,
	}

	out.TeraType = resolveTeraType(seed, tmpl.TeraType, tmpl.Species, tmpl.Form, pt)

	rng := prng.NewLongPeriod(uint64(seed))

	out.EC = uint32(rng.NextBounded(0xFFFFFFFF))

	fakeTID := uint32(rng.Next())
	pid := uint32(rng.Next())

	switch tmpl.Shiny {
	case tables.ShinyRandom:
		xorVal := shinyXor(pid, fakeTID)
		if xorVal < 16 {
			if xorVal != 0 {
				xorVal = 1
			}
			pid = forceShinyState(true, pid, id32, xorVal)
			if xorVal == 0 {
				out.Shiny = ShinySquare
			} else {
				out.Shiny = ShinyStar
			}
		} else {
			pid = forceShinyState(false, pid, id32, xorVal)
			out.Shiny = ShinyNo
		}
	case tables.ShinyAlways:
		tid16 := uint16(fakeTID)
		sid16 := uint16(fakeTID >> 16)
		xorVal := shinyXor(pid, fakeTID)
		if xorVal > 16 {
			pid = shinyPID(tid16, sid16, pid, 0)
		}
		if !isShiny(id32, pid) {
			xorVal = shinyXor(pid, fakeTID)
			var forced uint32
			if xorVal != 0 {
				forced = 1
			}
			pid = shinyPID(uint16(id32&0xFFFF), uint16(id32>>16), pid, forced)
		}
		xorVal = shinyXor(pid, fakeTID)
		if xorVal == 0 {
			out.Shiny = ShinySquare
		} else {
			out.Shiny = ShinyStar
		}
	default: // ShinyNever
		if isShiny(fakeTID, pid) {
			pid ^= 0x10000000
		}
		if isShiny(id32, pid) {
			pid ^= 0x10000000
		}
		out.Shiny = ShinyNo
	}
	out.PID = pid

	const unset = 255
	for i := range out.IVs {
		out.IVs[i] = unset
	}
	for i := 0; i < int(tmpl.FlawlessIVCount); i++ {
		var idx uint64
		for {
			idx = rng.NextBounded(6)
			if out.IVs[idx] == unset {
				break
			}
		}
		out.IVs[idx] = 31
	}
	for i := range out.IVs {
		if out.IVs[i] == unset {
			out.IVs[i] = uint8(rng.NextBounded(32))
		}
	}

	var abilNum int
	switch tmpl.Ability {
	case tables.AbilityAny12H:
		abilNum = int(rng.NextBounded(3)) << 1
	case tables.AbilityAny12:
		abilNum = int(rng.NextBounded(2)) << 1
	default:
		abilNum = int(tmpl.Ability)
	}
	out.Ability, _ = refreshedAbility(pt, tmpl.Species, tmpl.Form, abilNum)
	if abilNum == 0 {
		out.AbilityNumber = 1
	} else {
		out.AbilityNumber = abilNum
	}

	out.Gender = genderFromRatio(tmpl.GenderRatio, rng.NextBounded(100))

	if tmpl.Species == toxtricitySpecies {
		if tmpl.Form == 0 {
			out.Nature = toxNatureAmpedUp[rng.NextBounded(uint64(len(toxNatureAmpedUp)))]
		} else {
			out.Nature = toxNatureLowKey[rng.NextBounded(uint64(len(toxNatureLowKey)))]
		}
	} else {
		out.Nature = uint8(rng.NextBounded(25))
	}

	out.Height = uint8(rng.NextBounded(0x81) + rng.NextBounded(0x80))
	out.Weight = uint8(rng.NextBounded(0x81) + rng.NextBounded(0x80))
	out.Scale = uint8(rng.NextBounded(0x81) + rng.NextBounded(0x80))

	return out
}
