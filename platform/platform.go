// Package platform declares the collaborator interfaces the core
// borrows at its edges but never implements itself: a live-memory
// pointer-chain reader, a coordinate sidecar, and a name sidecar. No
// concrete OS or process-attach implementation ships here — only the
// interfaces and a small in-memory reference collaborator for the
// coordinate sidecar.
package platform

import "errors"

// ErrLiveRead means the pointer-chain provider failed to produce bytes
// for a requested chain; fatal to a live snapshot.
var ErrLiveRead = errors.New("platform: live memory read failed")

// LiveMemoryReader dereferences a sequence of offsets starting from the
// game process's main-image base, returning the bytes at the final
// address.
type LiveMemoryReader interface {
	ReadAt(chain []uint64) ([]byte, bool)
}

// Coord is a 3D world position.
type Coord struct {
	X, Y, Z float64
}

// CoordinateSidecar resolves a raid slot's world coordinate from its
// (area, lottery group, spawn point) key. A missing key is not an
// error: the caller shows the raid without a coordinate.
type CoordinateSidecar interface {
	Lookup(key RegionKey) (Coord, bool)
}

// NameSidecar resolves a numeric id (species, move, nature, ability,
// type, or item, depending on the sidecar instance) to its display
// name. Out of core: no sidecar implementation is expected to ship with
// a headless pipeline.
type NameSidecar interface {
	Name(id int) string
}
