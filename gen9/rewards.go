package gen9

import (
	"github.com/raidkit/raidcore/prng"
	"github.com/raidkit/raidcore/tables"
)

// RewardItem is one resolved reward line, already stripped of the
// category/item-id indirection.
type RewardItem struct {
	ItemID      uint16
	Amount      uint8
	SubjectType int8 // 0=host, 1=joiner, 2=everyone
}

func resolveItemID(category uint8, itemID uint16, species uint16, teraType uint8) uint16 {
	if itemID != 0 {
		return itemID
	}
	switch category {
	case 2:
		return tables.TeraShardID(teraType)
	case 1:
		return tables.MaterialIDForSpecies(species)
	default:
		return 0
	}
}

// ComputeRewards resolves a creature's fixed and lottery rewards. Fixed
// rewards are emitted unconditionally; the lottery table (if present and
// non-empty) is drawn from a PRNG seeded from the raid seed, once to
// pick a draw count from the star-scaled quintile table and then once
// per draw to pick a weighted entry.
func ComputeRewards(seed uint32, stars uint8, fixedHash, lotteryHash uint64, species uint16, teraType uint8, reward tables.RewardTables) []RewardItem {
	var out []RewardItem

	for _, e := range reward.Fixed[fixedHash] {
		id := resolveItemID(e.Category, e.ItemID, species, teraType)
		if id > 0 {
			out = append(out, RewardItem{ItemID: id, Amount: e.Amount, SubjectType: e.SubjectType})
		}
	}

	lottery, ok := reward.Lottery[lotteryHash]
	if !ok || len(lottery.Items) == 0 || lottery.TotalRate == 0 {
		return out
	}

	rng := prng.NewLongPeriod(uint64(seed))
	amount := tables.RewardCount(int(rng.NextBounded(100)), int(stars))

	for i := 0; i < amount; i++ {
		threshold := int(rng.NextBounded(uint64(lottery.TotalRate)))
		for _, e := range lottery.Items {
			if int(e.Rate) > threshold {
				id := resolveItemID(e.Category, e.ItemID, species, teraType)
				if id > 0 {
					out = append(out, RewardItem{ItemID: id, Amount: e.Amount, SubjectType: 2})
				}
				break
			}
			threshold -= int(e.Rate)
		}
	}

	return out
}
