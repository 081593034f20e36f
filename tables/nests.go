package tables

import "github.com/raidkit/raidcore/encoding"

// NestHashEntry is the (normal-nest-id, rare-nest-id) pair recorded for
// one global den index.
type NestHashEntry struct {
	Normal uint8
	Rare   uint8
}

// NestHashTable maps every global den index (0..275) to its nest-id pair.
type NestHashTable []NestHashEntry

// LoadNestHashTable splits a packed buffer of (normal, rare) byte pairs,
// one per global den index.
func LoadNestHashTable(data []byte) NestHashTable {
	n := len(data) / 2
	out := make(NestHashTable, n)
	for i := 0; i < n; i++ {
		out[i] = NestHashEntry{Normal: data[i*2], Rare: data[i*2+1]}
	}
	return out
}

// NestIDFor resolves the nest id a den should use: the rare column when
// isRare is set, otherwise the normal column. Inactive dens always use
// the normal column — callers pass isRare=false for those.
func (t NestHashTable) NestIDFor(globalIndex int, isRare bool) uint8 {
	if globalIndex < 0 || globalIndex >= len(t) {
		return 0
	}
	if isRare {
		return t[globalIndex].Rare
	}
	return t[globalIndex].Normal
}

// NestSlot is one of the 12 fixed entries in a nest's encounter pool: a
// species, its flawless-IV guarantee, and a probability weight per
// possible star tier (indices 0..4 = stars 1..5).
type NestSlot struct {
	Species      uint16
	FlawlessIVs  uint8
	Probabilities [5]uint32
}

const nestSlotSize = 2 + 1 + 5*4 // species + flawlessIVs + 5 probabilities
const nestPoolSlots = 12

// NestPool is one nest id's fixed 12-slot encounter table.
type NestPool [nestPoolSlots]NestSlot

// LoadNestPools splits a packed buffer of nest pools, one per nest id, in
// nest-id order.
func LoadNestPools(data []byte) []NestPool {
	poolSize := nestSlotSize * nestPoolSlots
	n := len(data) / poolSize
	out := make([]NestPool, n)
	for p := 0; p < n; p++ {
		base := data[p*poolSize:]
		var pool NestPool
		for s := 0; s < nestPoolSlots; s++ {
			rec := base[s*nestSlotSize:]
			slot := NestSlot{
				Species:     encoding.Read16(rec, 0),
				FlawlessIVs: rec[2],
			}
			for i := 0; i < 5; i++ {
				slot.Probabilities[i] = encoding.Read32(rec, 3+i*4)
			}
			pool[s] = slot
		}
		out[p] = pool
	}
	return out
}

// PoolFor returns the nest pool for a nest id, or the zero pool if the id
// is out of range.
func PoolFor(pools []NestPool, nestID uint8) NestPool {
	if int(nestID) >= len(pools) {
		return NestPool{}
	}
	return pools[nestID]
}
