package snapshot

import (
	"github.com/raidkit/raidcore/blocks"
	"github.com/raidkit/raidcore/gen8"
)

// DenRegion identifies which of the three Max Raid den tables a den
// belongs to.
type DenRegion uint8

const (
	DenRegionVanilla DenRegion = iota
	DenRegionIslandOfArmor
	DenRegionCrownTundra
)

const maxShinyAdvances = 10000

type denRegionSpec struct {
	key       uint32
	count     int
	indexBase int
	region    DenRegion
}

var denRegions = [3]denRegionSpec{
	{key: blocks.KeyDenVanilla, count: 100, indexBase: 0, region: DenRegionVanilla},
	{key: blocks.KeyDenIslandOfArmor, count: 90, indexBase: 100, region: DenRegionIslandOfArmor},
	{key: blocks.KeyDenCrownTundra, count: 86, indexBase: 190, region: DenRegionCrownTundra},
}

// DenInfo is one fully resolved Max Raid Den.
type DenInfo struct {
	Region      DenRegion
	GlobalIndex int
	Seed        uint64
	Stars       uint8
	Species     uint16
	FlawlessIVs uint8
	Shiny       gen8.ShinyPrediction
}

// Gen8Snapshot is every den a Sword/Shield save currently holds.
type Gen8Snapshot struct {
	Dens []DenInfo
}

// BuildGen8Snapshot reads the three fixed den-array blocks and resolves
// every den's species, flawless-IV guarantee, and shiny prediction. A
// missing den-array block is a BlockNotFound condition and fails the
// whole snapshot, since a truncated region would silently under-report
// dens rather than fail loudly.
func BuildGen8Snapshot(list []blocks.Block, res *Resources) (Gen8Snapshot, error) {
	var out Gen8Snapshot

	for _, spec := range denRegions {
		b, ok := blocks.Find(list, spec.key)
		if !ok {
			return Gen8Snapshot{}, &blocks.ErrBlockNotFound{Key: spec.key}
		}
		dens := blocks.ParseDens(b.Data)
		if len(dens) > spec.count {
			dens = dens[:spec.count]
		}
		for i, den := range dens {
			globalIndex := spec.indexBase + i
			resolved, _ := gen8.Resolve(den, globalIndex, res.Gen8Hashes, res.Gen8Pools)

			info := DenInfo{
				Region:      spec.region,
				GlobalIndex: globalIndex,
				Seed:        den.Seed,
				Stars:       den.Stars,
				Species:     resolved.Species,
				FlawlessIVs: resolved.FlawlessIVs,
			}
			if !(den.IsActive() && den.IsEvent()) {
				info.Shiny = gen8.PredictShiny(den.Seed, maxShinyAdvances)
			}
			out.Dens = append(out.Dens, info)
		}
	}

	return out, nil
}
