package snapshot

import (
	"github.com/raidkit/raidcore/blocks"
	"github.com/raidkit/raidcore/encoding"
	"github.com/raidkit/raidcore/gen9"
	"github.com/raidkit/raidcore/platform"
	"github.com/raidkit/raidcore/tables"
)

// RaidInfo is one fully resolved Tera Raid slot.
type RaidInfo struct {
	Region       tables.Region
	Index        int
	AreaID       uint32
	LotteryGroup uint32
	SpawnPointID uint32
	Seed         uint32
	Content      tables.RaidContent

	Creature gen9.CreatureDetails
	Rewards  []gen9.RewardItem

	Coord   platform.Coord
	HasCoord bool
}

// Gen9Snapshot is every raid a Scarlet/Violet save or process currently
// holds, plus the progress tier and trainer identity they were resolved
// against.
type Gen9Snapshot struct {
	Progress    blocks.GameProgress
	TrainerID32 uint32
	Raids       []RaidInfo
}

// TrainerID splits the snapshot's raw id32 into its TID16/SID16 halves.
func (s Gen9Snapshot) TrainerID() gen9.TrainerID {
	return gen9.TrainerID(s.TrainerID32)
}

// BuildGen9SaveSnapshot decodes the Paldea and combined-DLC raid blocks
// out of a decoded save container and resolves every relevant slot.
func BuildGen9SaveSnapshot(list []blocks.Block, version tables.Version, res *Resources, coords platform.CoordinateSidecar) (Gen9Snapshot, error) {
	paldeaBlock, ok := blocks.Find(list, blocks.KeyTeraRaidPaldea)
	if !ok {
		return Gen9Snapshot{}, &blocks.ErrBlockNotFound{Key: blocks.KeyTeraRaidPaldea}
	}
	dlcBlock, ok := blocks.Find(list, blocks.KeyTeraRaidDLC)
	if !ok {
		return Gen9Snapshot{}, &blocks.ErrBlockNotFound{Key: blocks.KeyTeraRaidDLC}
	}

	progress := blocks.ResolveProgress(list)
	id32 := blocks.TrainerID32(list)

	paldea := blocks.PaldeaRaidSlots(paldeaBlock.Data)
	kitakami, blueberry := blocks.DLCRaidSlots(dlcBlock.Data)

	return assembleGen9Snapshot(progress, id32, paldea, kitakami, blueberry, version, res, coords), nil
}

// BuildGen9LiveSnapshot reads the raw Paldea raid block, the combined DLC
// raid block, and the MyStatus block directly out of a running process's
// memory. Unlike the save path, flag blocks aren't
// readily reachable from live memory, so progress is assumed to be the
// highest tier (Unlocked6Stars) rather than derived — matching the
// original's own live-read limitation.
func BuildGen9LiveSnapshot(reader platform.LiveMemoryReader, paldeaChain, dlcChain, myStatusChain []uint64, version tables.Version, res *Resources, coords platform.CoordinateSidecar) (Gen9Snapshot, error) {
	paldeaData, ok := reader.ReadAt(paldeaChain)
	if !ok {
		return Gen9Snapshot{}, &ErrLiveRead{Chain: "paldea"}
	}
	dlcData, ok := reader.ReadAt(dlcChain)
	if !ok {
		return Gen9Snapshot{}, &ErrLiveRead{Chain: "dlc"}
	}
	myStatusData, ok := reader.ReadAt(myStatusChain)
	if !ok {
		return Gen9Snapshot{}, &ErrLiveRead{Chain: "mystatus"}
	}

	var id32 uint32
	if len(myStatusData) >= 8 {
		id32 = encoding.Read32(myStatusData, 0x04)
	}

	paldea := blocks.PaldeaRaidSlots(paldeaData)
	kitakami, blueberry := blocks.DLCRaidSlots(dlcData)

	return assembleGen9Snapshot(blocks.ProgressUnlocked6Stars, id32, paldea, kitakami, blueberry, version, res, coords), nil
}

func assembleGen9Snapshot(progress blocks.GameProgress, id32 uint32, paldea, kitakami, blueberry []blocks.RaidSlot, version tables.Version, res *Resources, coords platform.CoordinateSidecar) Gen9Snapshot {
	snap := Gen9Snapshot{Progress: progress, TrainerID32: id32}
	snap.Raids = append(snap.Raids, resolveRegionSlots(paldea, tables.RegionPaldea, progress, id32, version, res, coords)...)
	snap.Raids = append(snap.Raids, resolveRegionSlots(kitakami, tables.RegionKitakami, progress, id32, version, res, coords)...)
	snap.Raids = append(snap.Raids, resolveRegionSlots(blueberry, tables.RegionBlueberry, progress, id32, version, res, coords)...)
	return snap
}

// resolveRegionSlots resolves every relevant slot in one region's array.
// A slot whose seed fails to resolve against its pool (UnresolvedTemplate)
// is silently dropped, matching the error taxonomy: no raid appears for
// it, but the rest of the snapshot still builds.
func resolveRegionSlots(slots []blocks.RaidSlot, region tables.Region, progress blocks.GameProgress, id32 uint32, version tables.Version, res *Resources, coords platform.CoordinateSidecar) []RaidInfo {
	var out []RaidInfo

	for i, slot := range slots {
		if !slot.Relevant() {
			continue
		}

		content := tables.ContentStandard
		if slot.Content == blocks.RaidContentBlack {
			content = tables.ContentBlack
		}

		pool := res.poolFor(region, content)
		tmpl, err := gen9.ResolveTemplate(slot.Seed, content, region, version, progress, pool)
		if err != nil {
			continue
		}

		creature := gen9.Generate(slot.Seed, tmpl, id32, res.Personal)
		rewards := gen9.ComputeRewards(slot.Seed, tmpl.Stars, tmpl.FixedRewardHash, tmpl.LotteryRewardHash, tmpl.Species, creature.TeraType, res.Reward)

		info := RaidInfo{
			Region:       region,
			Index:        i,
			AreaID:       slot.AreaID,
			LotteryGroup: slot.LotteryGroup,
			SpawnPointID: slot.SpawnPointID,
			Seed:         slot.Seed,
			Content:      content,
			Creature:     creature,
			Rewards:      rewards,
		}

		if coords != nil {
			key := platform.RegionKey{Area: slot.AreaID, Lottery: slot.LotteryGroup, Spawn: slot.SpawnPointID}
			if c, found := coords.Lookup(key); found {
				info.Coord = c
				info.HasCoord = true
			}
		}

		out = append(out, info)
	}

	return out
}
