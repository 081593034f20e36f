package tables

import "github.com/raidkit/raidcore/encoding"

// FixedRewardEntry is one guaranteed reward line.
type FixedRewardEntry struct {
	Category    uint8
	ItemID      uint16
	Amount      uint8
	SubjectType int8 // 0=host, 1=joiner, 2=everyone
}

// LotteryRewardEntry is one weighted reward line drawn from a lottery
// table.
type LotteryRewardEntry struct {
	Category uint8
	ItemID   uint16
	Amount   uint8
	Rate     uint16
}

// LotteryTable is a hash-keyed set of weighted reward lines plus the sum
// of their rates.
type LotteryTable struct {
	TotalRate uint16
	Items     []LotteryRewardEntry
}

// RewardTables holds both reward-hash-keyed tables, loaded once from
// their sidecar files and shared by reference.
type RewardTables struct {
	Fixed   map[uint64][]FixedRewardEntry
	Lottery map[uint64]LotteryTable
}

// LoadFixedRewardTables parses the fixed-reward sidecar: a u16 table
// count, then per table a u64 hash, a u8 entry count, and packed entries
// of (category u8, item-id u16, amount u8, subject-type i8).
func LoadFixedRewardTables(data []byte) map[uint64][]FixedRewardEntry {
	out := make(map[uint64][]FixedRewardEntry)
	pos := 0
	if len(data) < 2 {
		return out
	}
	tableCount := int(encoding.Read16(data, pos))
	pos += 2
	for t := 0; t < tableCount; t++ {
		hash := encoding.Read64(data, pos)
		pos += 8
		count := int(data[pos])
		pos++
		items := make([]FixedRewardEntry, 0, count)
		for i := 0; i < count; i++ {
			items = append(items, FixedRewardEntry{
				Category:    data[pos],
				ItemID:      encoding.Read16(data, pos+1),
				Amount:      data[pos+3],
				SubjectType: int8(data[pos+4]),
			})
			pos += 5
		}
		out[hash] = items
	}
	return out
}

// LoadLotteryRewardTables parses the lottery-reward sidecar: a u16 table
// count, then per table a u64 hash, a u16 total rate, a u8 entry count,
// and packed entries of (category u8, item-id u16, amount u8, rate u16).
func LoadLotteryRewardTables(data []byte) map[uint64]LotteryTable {
	out := make(map[uint64]LotteryTable)
	pos := 0
	if len(data) < 2 {
		return out
	}
	tableCount := int(encoding.Read16(data, pos))
	pos += 2
	for t := 0; t < tableCount; t++ {
		hash := encoding.Read64(data, pos)
		pos += 8
		totalRate := encoding.Read16(data, pos)
		pos += 2
		count := int(data[pos])
		pos++
		items := make([]LotteryRewardEntry, 0, count)
		for i := 0; i < count; i++ {
			items = append(items, LotteryRewardEntry{
				Category: data[pos],
				ItemID:   encoding.Read16(data, pos+1),
				Amount:   data[pos+3],
				Rate:     encoding.Read16(data, pos+4),
			})
			pos += 6
		}
		out[hash] = LotteryTable{TotalRate: totalRate, Items: items}
	}
	return out
}

// rewardSlotCounts is the reward-count quintile table: row = stars-1
// (clamped 0..6), column = quintile of a 0..99 roll.
var rewardSlotCounts = [7][5]int{
	{4, 5, 6, 7, 8},   // 1-star
	{4, 5, 6, 7, 8},   // 2-star
	{5, 6, 7, 8, 9},   // 3-star
	{5, 6, 7, 8, 9},   // 4-star
	{6, 7, 8, 9, 10},  // 5-star
	{7, 8, 9, 10, 11}, // 6-star
	{7, 8, 9, 10, 11}, // 7-star (mighty)
}

// RewardCount resolves the lottery-draw count for a star tier given a
// 0..99 roll, via the fixed quintile thresholds (<10, <40, <70, <90, else).
func RewardCount(roll int, stars int) int {
	idx := stars - 1
	if idx < 0 {
		idx = 0
	}
	if idx > 6 {
		idx = 6
	}
	switch {
	case roll < 10:
		return rewardSlotCounts[idx][0]
	case roll < 40:
		return rewardSlotCounts[idx][1]
	case roll < 70:
		return rewardSlotCounts[idx][2]
	case roll < 90:
		return rewardSlotCounts[idx][3]
	default:
		return rewardSlotCounts[idx][4]
	}
}
