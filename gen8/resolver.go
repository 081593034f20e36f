// Package gen8 resolves Sword/Shield Max Raid Den encounters: the
// species and flawless-IV guarantee a den's current raid rolled, and a
// bounded shiny search over its seed's advance sequence.
package gen8

import (
	"errors"

	"github.com/raidkit/raidcore/blocks"
	"github.com/raidkit/raidcore/tables"
)

// ErrUnresolvedDen means a den's stored roll never matched a slot in its
// nest pool: an event den skipped by design, or a pool whose
// probabilities don't sum past the roll. Callers decide whether to drop
// the den or treat it as fatal.
var ErrUnresolvedDen = errors.New("gen8: den roll did not resolve to any pool slot")

// ResolvedEncounter is the species and flawless-IV guarantee a den's
// raid rolled.
type ResolvedEncounter struct {
	Species     uint16
	FlawlessIVs uint8
}

// Resolve walks a den's 12-slot nest pool using its stored random roll,
// skipping the resolver entirely for active event dens (their species is
// determined by the distributed encounter data, not the nest pool).
// Inactive dens always resolve against the normal (non-rare) nest id,
// regardless of whatever the den's own rare bit reports. A slot whose
// probability at the den's star tier is zero is never picked, so a tier
// with all-zero probabilities resolves to nothing.
func Resolve(den blocks.DenRaw, globalIndex int, hashes tables.NestHashTable, pools []tables.NestPool) (ResolvedEncounter, error) {
	if den.IsActive() && den.IsEvent() {
		return ResolvedEncounter{}, ErrUnresolvedDen
	}

	nestID := hashes.NestIDFor(globalIndex, den.IsActive() && den.IsRare())
	pool := tables.PoolFor(pools, nestID)

	accumulated := uint32(1)
	stars := den.Stars
	for j := 0; j < len(pool); j++ {
		var prob uint32
		if stars < 5 {
			prob = pool[j].Probabilities[stars]
		}
		if prob == 0 {
			continue
		}
		accumulated += prob
		if accumulated > uint32(den.RandRoll) {
			return ResolvedEncounter{Species: pool[j].Species, FlawlessIVs: pool[j].FlawlessIVs}, nil
		}
	}
	return ResolvedEncounter{}, ErrUnresolvedDen
}
