package blocks

import "github.com/raidkit/raidcore/encoding"

// RaidContentKind is the raw on-disk content tag of a Gen9 raid slot.
type RaidContentKind uint32

const (
	RaidContentBase         RaidContentKind = 0
	RaidContentBlack        RaidContentKind = 1
	RaidContentDistribution RaidContentKind = 2
	RaidContentMighty       RaidContentKind = 3
)

// RaidSlot is one 0x20-byte entry of a Gen9 raid array.
type RaidSlot struct {
	Enabled      bool
	AreaID       uint32
	LotteryGroup uint32
	SpawnPointID uint32
	Seed         uint32
	Content      RaidContentKind
	IsClaimedLP  bool
}

const raidSlotSize = 0x20

// Relevant reports whether this slot should be resolved at all: enabled,
// with a non-zero area, and of a content kind the resolver understands.
// Distribution and Mighty (event) raids are skipped entirely.
func (s RaidSlot) Relevant() bool {
	if !s.Enabled || s.AreaID == 0 {
		return false
	}
	return s.Content == RaidContentBase || s.Content == RaidContentBlack
}

func parseRaidSlot(data []byte) RaidSlot {
	return RaidSlot{
		Enabled:      encoding.Read32(data, 0x00) != 0,
		AreaID:       encoding.Read32(data, 0x04),
		LotteryGroup: encoding.Read32(data, 0x08),
		SpawnPointID: encoding.Read32(data, 0x0C),
		Seed:         encoding.Read32(data, 0x10),
		Content:      RaidContentKind(encoding.Read32(data, 0x18)),
		IsClaimedLP:  encoding.Read32(data, 0x1C) != 0,
	}
}

// ParseRaidSlots splits a tightly packed buffer of RaidSlot records.
// Trailing bytes shorter than one record are ignored.
func ParseRaidSlots(data []byte) []RaidSlot {
	n := len(data) / raidSlotSize
	out := make([]RaidSlot, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, parseRaidSlot(data[i*raidSlotSize:]))
	}
	return out
}

// PaldeaRaidSlots parses the Paldea raid block: a 0x10-byte header
// (discarded) followed by up to 72 slots.
func PaldeaRaidSlots(data []byte) []RaidSlot {
	if len(data) < 0x10 {
		return nil
	}
	slots := ParseRaidSlots(encoding.SubArrayFromStart(data, 0x10))
	if len(slots) > 72 {
		slots = slots[:72]
	}
	return slots
}

// DLCRaidSlots splits the combined Kitakami+Blueberry block: Kitakami
// occupies [0, 0xC80) (up to 100 slots), Blueberry [0xC80, 0x1900) (up to
// 80 slots).
func DLCRaidSlots(data []byte) (kitakami, blueberry []RaidSlot) {
	const regionSize = 0xC80
	if len(data) >= regionSize {
		kitakami = ParseRaidSlots(encoding.SubArray(data, 0, regionSize-1))
		if len(kitakami) > 100 {
			kitakami = kitakami[:100]
		}
	}
	if len(data) >= 0x1900 {
		blueberry = ParseRaidSlots(encoding.SubArray(data, regionSize, 0x1900-1))
		if len(blueberry) > 80 {
			blueberry = blueberry[:80]
		}
	}
	return kitakami, blueberry
}
