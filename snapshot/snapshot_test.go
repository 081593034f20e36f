package snapshot

import (
	"encoding/binary"
	"testing"

	"github.com/raidkit/raidcore/blocks"
	"github.com/raidkit/raidcore/platform"
	"github.com/raidkit/raidcore/tables"
	"github.com/stretchr/testify/require"
)

func makePersonal(n int) *tables.PersonalTable {
	return tables.LoadPersonalTable(make([]byte, n*tables.PersonalEntrySize))
}

// coveringPool splits a star tier's full rate total into consecutive
// RandRate-255-wide entries so any rateRand roll resolves, sidestepping
// the uint8 per-entry weight cap.
func coveringPool(stars uint8, total int16, species uint16) tables.EncounterTable {
	var entries []tables.EncounterTemplate
	var min int16
	for min < total {
		width := total - min
		if width > 255 {
			width = 255
		}
		entries = append(entries, tables.EncounterTemplate{
			Stars:              stars,
			Species:            species,
			Level:              75,
			RandRate:           uint8(width),
			RandRateMinScarlet: min,
			RandRateMinViolet:  min,
		})
		min += width
	}
	return tables.EncounterTable{Entries: entries}
}

func resourcesForRegion(region tables.Region, content tables.RaidContent, pool tables.EncounterTable) *Resources {
	res := &Resources{Personal: makePersonal(1)}
	res.gen9Tables[region][content] = pool
	return res
}

func writeRaidSlot(buf []byte, enabled bool, area, lottery, spawn, seed uint32, content blocks.RaidContentKind) {
	e := uint32(0)
	if enabled {
		e = 1
	}
	binary.LittleEndian.PutUint32(buf[0x00:], e)
	binary.LittleEndian.PutUint32(buf[0x04:], area)
	binary.LittleEndian.PutUint32(buf[0x08:], lottery)
	binary.LittleEndian.PutUint32(buf[0x0C:], spawn)
	binary.LittleEndian.PutUint32(buf[0x10:], seed)
	binary.LittleEndian.PutUint32(buf[0x18:], uint32(content))
}

func paldeaBlockBytes(slots int, fill func(i int, buf []byte)) []byte {
	data := make([]byte, 0x10+slots*0x20)
	for i := 0; i < slots; i++ {
		fill(i, data[0x10+i*0x20:0x10+(i+1)*0x20])
	}
	return data
}

func TestBuildGen9SaveSnapshotMissingPaldeaBlockFails(t *testing.T) {
	_, err := BuildGen9SaveSnapshot(nil, tables.VersionScarlet, &Resources{}, nil)
	require.Error(t, err)
	var notFound *blocks.ErrBlockNotFound
	require.ErrorAs(t, err, &notFound)
	require.Equal(t, blocks.KeyTeraRaidPaldea, notFound.Key)
}

func TestBuildGen9SaveSnapshotResolvesRelevantSlotsOnly(t *testing.T) {
	total := tables.RateTotal(6, tables.RegionPaldea, tables.VersionScarlet)
	pool := coveringPool(6, total, 25)
	res := resourcesForRegion(tables.RegionPaldea, tables.ContentBlack, pool)

	paldeaData := paldeaBlockBytes(3, func(i int, buf []byte) {
		switch i {
		case 0:
			writeRaidSlot(buf, true, 5, 0, 1, 100, blocks.RaidContentBlack)
		case 1:
			writeRaidSlot(buf, false, 5, 0, 2, 200, blocks.RaidContentBlack) // disabled, skipped
		case 2:
			writeRaidSlot(buf, true, 0, 0, 3, 300, blocks.RaidContentBlack) // zero area, skipped
		}
	})

	list := []blocks.Block{
		{Key: blocks.KeyTeraRaidPaldea, Type: blocks.TypeObject, Data: paldeaData},
		{Key: blocks.KeyTeraRaidDLC, Type: blocks.TypeObject, Data: nil},
	}

	snap, err := BuildGen9SaveSnapshot(list, tables.VersionScarlet, res, nil)
	require.NoError(t, err)
	require.Len(t, snap.Raids, 1)
	require.Equal(t, tables.RegionPaldea, snap.Raids[0].Region)
	require.EqualValues(t, 25, snap.Raids[0].Creature.Species)
	require.EqualValues(t, 6, snap.Raids[0].Creature.Stars)
	require.False(t, snap.Raids[0].HasCoord)
}

type stubCoords struct {
	coord platform.Coord
}

func (s stubCoords) Lookup(key platform.RegionKey) (platform.Coord, bool) {
	return s.coord, key.Area == 5
}

func TestBuildGen9SaveSnapshotAttachesCoordWhenSidecarMatches(t *testing.T) {
	total := tables.RateTotal(6, tables.RegionPaldea, tables.VersionScarlet)
	pool := coveringPool(6, total, 25)
	res := resourcesForRegion(tables.RegionPaldea, tables.ContentBlack, pool)

	paldeaData := paldeaBlockBytes(1, func(i int, buf []byte) {
		writeRaidSlot(buf, true, 5, 1, 2, 100, blocks.RaidContentBlack)
	})
	list := []blocks.Block{
		{Key: blocks.KeyTeraRaidPaldea, Type: blocks.TypeObject, Data: paldeaData},
		{Key: blocks.KeyTeraRaidDLC, Type: blocks.TypeObject, Data: nil},
	}

	coords := stubCoords{coord: platform.Coord{X: 1, Y: 2, Z: 3}}
	snap, err := BuildGen9SaveSnapshot(list, tables.VersionScarlet, res, coords)
	require.NoError(t, err)
	require.Len(t, snap.Raids, 1)
	require.True(t, snap.Raids[0].HasCoord)
	require.Equal(t, platform.Coord{X: 1, Y: 2, Z: 3}, snap.Raids[0].Coord)
}

type stubReader struct {
	data map[string][]byte
}

func (s stubReader) ReadAt(chain []uint64) ([]byte, bool) {
	key := chainKey(chain)
	d, ok := s.data[key]
	return d, ok
}

func chainKey(chain []uint64) string {
	s := ""
	for _, c := range chain {
		s += string(rune(c))
	}
	return s
}

func TestBuildGen9LiveSnapshotFailsOnUnreadableChain(t *testing.T) {
	reader := stubReader{data: map[string][]byte{}}
	_, err := BuildGen9LiveSnapshot(reader, []uint64{1}, []uint64{2}, []uint64{3}, tables.VersionScarlet, &Resources{}, nil)
	require.Error(t, err)
	var liveErr *ErrLiveRead
	require.ErrorAs(t, err, &liveErr)
}

func TestBuildGen8SnapshotMissingBlockFails(t *testing.T) {
	_, err := BuildGen8Snapshot(nil, &Resources{})
	require.Error(t, err)
	var notFound *blocks.ErrBlockNotFound
	require.ErrorAs(t, err, &notFound)
}

func writeDenRaw(buf []byte, seed uint64, stars, randRoll, denType, flagByte byte) {
	binary.LittleEndian.PutUint64(buf[0x08:], seed)
	buf[0x10] = stars
	buf[0x11] = randRoll
	buf[0x12] = denType
	buf[0x13] = flagByte
}

func TestBuildGen8SnapshotResolvesDensAcrossAllThreeRegions(t *testing.T) {
	hashes := tables.NestHashTable{{Normal: 0, Rare: 0}}
	var pool tables.NestPool
	pool[0] = tables.NestSlot{Species: 42, FlawlessIVs: 2, Probabilities: [5]uint32{100, 0, 0, 0, 0}}
	res := &Resources{
		Personal:   makePersonal(1),
		Gen8Hashes: hashes,
		Gen8Pools:  []tables.NestPool{pool},
	}

	makeDenBlock := func(key uint32, count int) blocks.Block {
		data := make([]byte, count*0x18)
		for i := 0; i < count; i++ {
			writeDenRaw(data[i*0x18:(i+1)*0x18], 0x1122334455667788, 0, 50, 1, 0)
		}
		return blocks.Block{Key: key, Type: blocks.TypeObject, Data: data}
	}

	list := []blocks.Block{
		makeDenBlock(blocks.KeyDenVanilla, 1),
		makeDenBlock(blocks.KeyDenIslandOfArmor, 1),
		makeDenBlock(blocks.KeyDenCrownTundra, 1),
	}

	snap, err := BuildGen8Snapshot(list, res)
	require.NoError(t, err)
	require.Len(t, snap.Dens, 3)
	for _, d := range snap.Dens {
		require.EqualValues(t, 42, d.Species)
		require.EqualValues(t, 2, d.FlawlessIVs)
	}
	require.Equal(t, DenRegionVanilla, snap.Dens[0].Region)
	require.Equal(t, 0, snap.Dens[0].GlobalIndex)
	require.Equal(t, DenRegionIslandOfArmor, snap.Dens[1].Region)
	require.Equal(t, 100, snap.Dens[1].GlobalIndex)
	require.Equal(t, DenRegionCrownTundra, snap.Dens[2].Region)
	require.Equal(t, 190, snap.Dens[2].GlobalIndex)
}
