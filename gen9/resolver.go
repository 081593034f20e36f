package gen9

import (
	"errors"

	"github.com/raidkit/raidcore/blocks"
	"github.com/raidkit/raidcore/prng"
	"github.com/raidkit/raidcore/tables"
)

// ErrUnresolvedTemplate means a raid seed failed to resolve against its
// pool: an exhausted rate total, or a star tier with no templates at
// all. Both are legitimate game outcomes, not malformed input — callers
// decide whether to drop the slot or treat it as fatal.
var ErrUnresolvedTemplate = errors.New("gen9: raid seed did not resolve to any template")

// seedStars draws the star tier a standard raid rolls for, given the
// player's unlocked progress tier. Each progress tier has its own
// piecewise distribution over a 0..99 roll.
func seedStars(rng *prng.LongPeriod, progress blocks.GameProgress) uint8 {
	roll := rng.NextBounded(100)
	switch progress {
	case blocks.ProgressUnlocked6Stars:
		switch {
		case roll > 70:
			return 5
		case roll > 30:
			return 4
		default:
			return 3
		}
	case blocks.ProgressUnlocked5Stars:
		switch {
		case roll > 75:
			return 5
		case roll > 40:
			return 4
		default:
			return 3
		}
	case blocks.ProgressUnlocked4Stars:
		switch {
		case roll > 70:
			return 4
		case roll > 40:
			return 3
		case roll > 20:
			return 2
		default:
			return 1
		}
	case blocks.ProgressUnlocked3Stars:
		switch {
		case roll > 70:
			return 3
		case roll > 30:
			return 2
		default:
			return 1
		}
	default:
		if roll > 80 {
			return 2
		}
		return 1
	}
}

// ResolveTemplate picks the encounter template a raid seed resolves to
// against a pool, or ErrUnresolvedTemplate if nothing matches.
func ResolveTemplate(seed uint32, content tables.RaidContent, region tables.Region, version tables.Version, progress blocks.GameProgress, pool tables.EncounterTable) (tables.EncounterTemplate, error) {
	rng := prng.NewLongPeriod(uint64(seed))

	var stars uint8
	if content == tables.ContentBlack {
		stars = 6
	} else {
		stars = seedStars(rng, progress)
	}

	maxRate := tables.RateTotal(int(stars), region, version)
	if maxRate <= 0 {
		return tables.EncounterTemplate{}, ErrUnresolvedTemplate
	}

	rateRand := int32(rng.NextBounded(uint64(maxRate)))

	for _, e := range pool.Entries {
		if e.Stars != stars {
			continue
		}
		minRate := e.MinRateFor(version)
		if minRate < 0 {
			continue
		}
		if uint32(rateRand-int32(minRate)) < uint32(e.RandRate) {
			return e, nil
		}
	}
	return tables.EncounterTemplate{}, ErrUnresolvedTemplate
}
