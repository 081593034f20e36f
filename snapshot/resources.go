// Package snapshot wires blocks, codec, tables, gen9, gen8, and platform
// together into the two operations callers actually want: turn a save
// container's bytes (or a live process's raw memory reads) into the set
// of raids and dens it currently holds.
package snapshot

import (
	"fmt"

	"github.com/raidkit/raidcore/tables"
)

// contentTables indexes a region's two encounter pools: standard and the
// guaranteed-6-star "black" pool.
type contentTables [2]tables.EncounterTable

// Resources bundles every static table the pipeline consults. Load once
// per process and share by reference across snapshots.
type Resources struct {
	Personal *tables.PersonalTable
	Reward   tables.RewardTables

	gen9Tables [3]contentTables // indexed by tables.Region

	Gen8Hashes tables.NestHashTable
	Gen8Pools  []tables.NestPool
}

// ResourceBytes is the raw sidecar payloads LoadResources needs, already
// read from wherever the caller keeps them (embedded assets, files on
// disk, a network fetch — the pipeline itself is agnostic).
type ResourceBytes struct {
	Personal []byte

	// Gen9 encounter pools, one pair per region.
	PaldeaStandard    []byte
	PaldeaBlack       []byte
	KitakamiStandard  []byte
	KitakamiBlack     []byte
	BlueberryStandard []byte
	BlueberryBlack    []byte

	FixedRewards   []byte
	LotteryRewards []byte

	Gen8NestHashes []byte
	Gen8NestPools  []byte
}

// LoadResources parses every sidecar once, applying the personal table's
// gender byte into each encounter template as it loads them. The personal
// table is the one resource every pipeline path needs regardless of
// generation or region, so its absence is the one case LoadResources
// itself rejects; a generation-specific table that is merely empty (a
// caller only resolving Gen8 dens need not supply Gen9 encounter pools)
// is left to resolve to an empty table further down the pipeline.
func LoadResources(data ResourceBytes) (*Resources, error) {
	if len(data.Personal) == 0 {
		return nil, fmt.Errorf("loading personal table: %w", tables.ErrResourceMissing)
	}

	pt := tables.LoadPersonalTable(data.Personal)

	res := &Resources{
		Personal: pt,
		Reward: tables.RewardTables{
			Fixed:   tables.LoadFixedRewardTables(data.FixedRewards),
			Lottery: tables.LoadLotteryRewardTables(data.LotteryRewards),
		},
		Gen8Hashes: tables.LoadNestHashTable(data.Gen8NestHashes),
		Gen8Pools:  tables.LoadNestPools(data.Gen8NestPools),
	}

	res.gen9Tables[tables.RegionPaldea] = contentTables{
		tables.LoadEncounterTable(data.PaldeaStandard, pt),
		tables.LoadEncounterTable(data.PaldeaBlack, pt),
	}
	res.gen9Tables[tables.RegionKitakami] = contentTables{
		tables.LoadEncounterTable(data.KitakamiStandard, pt),
		tables.LoadEncounterTable(data.KitakamiBlack, pt),
	}
	res.gen9Tables[tables.RegionBlueberry] = contentTables{
		tables.LoadEncounterTable(data.BlueberryStandard, pt),
		tables.LoadEncounterTable(data.BlueberryBlack, pt),
	}

	return res, nil
}

// poolFor returns the loaded encounter table for a (region, content) pair.
func (r *Resources) poolFor(region tables.Region, content tables.RaidContent) tables.EncounterTable {
	if int(region) < 0 || int(region) >= len(r.gen9Tables) {
		return tables.EncounterTable{}
	}
	return r.gen9Tables[region][content]
}
