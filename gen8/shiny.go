package gen8

import "github.com/raidkit/raidcore/prng"

// ShinyKind classifies a den's predicted shiny outcome.
type ShinyKind uint8

const (
	ShinyNone ShinyKind = iota
	ShinyStar
	ShinySquare
)

// ShinyPrediction is the result of a bounded forward search over a den
// seed's advance sequence.
type ShinyPrediction struct {
	Kind    ShinyKind
	Advance uint32 // 1-based; 0 if nothing was found within the search bound
}

// PredictShiny searches up to maxAdvances steps ahead of seed for the
// first advance that would produce a shiny encounter. Each step reseeds
// a fresh PRNG from the current seed; that draw's first output doubles
// as both the creature's EC for this advance and the seed for the next
// one — advancing the den's actual in-game seed one step forward is
// exactly this same operation.
func PredictShiny(seed uint64, maxAdvances uint32) ShinyPrediction {
	current := seed
	for i := uint32(0); i < maxAdvances; i++ {
		rng := prng.NewLongPeriod(current)

		current = rng.Next() // EC, and next advance's seed

		sidTid := uint32(rng.Next())
		pid := uint32(rng.Next())

		psv := (pid >> 16) ^ (pid & 0xFFFF)
		tsv := (sidTid >> 16) ^ (sidTid & 0xFFFF)

		if psv == tsv {
			return ShinyPrediction{Kind: ShinySquare, Advance: i + 1}
		}
		if (psv^tsv) < 16 {
			return ShinyPrediction{Kind: ShinyStar, Advance: i + 1}
		}
	}
	return ShinyPrediction{}
}
