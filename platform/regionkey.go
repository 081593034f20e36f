package platform

import (
	"fmt"
	"strconv"
	"strings"
)

// RegionKey identifies one raid slot's location for coordinate lookup:
// its area, lottery group, and spawn point, the same triple the game
// itself uses to key spawn tables.
type RegionKey struct {
	Area    uint32
	Lottery uint32
	Spawn   uint32
}

// String renders the sidecar's on-disk key format: "area-lottery-spawn".
func (k RegionKey) String() string {
	return fmt.Sprintf("%d-%d-%d", k.Area, k.Lottery, k.Spawn)
}

// ParseRegionKey parses the "area-lottery-spawn" format back into a
// RegionKey.
func ParseRegionKey(s string) (RegionKey, bool) {
	parts := strings.Split(s, "-")
	if len(parts) != 3 {
		return RegionKey{}, false
	}
	var nums [3]uint64
	for i, p := range parts {
		n, err := strconv.ParseUint(p, 10, 32)
		if err != nil {
			return RegionKey{}, false
		}
		nums[i] = n
	}
	return RegionKey{Area: uint32(nums[0]), Lottery: uint32(nums[1]), Spawn: uint32(nums[2])}, true
}
