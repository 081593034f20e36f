package tables

// Version identifies which paired game version a save or live snapshot
// came from. Scarlet/Violet share Paldea/Kitakami/Blueberry content with
// small rate-table differences; Sword/Shield are Gen8 only.
type Version uint8

const (
	VersionScarlet Version = iota
	VersionViolet
	VersionSword
	VersionShield
)

// IsScarletViolet reports whether v is one of the Gen9 pair.
func (v Version) IsScarletViolet() bool {
	return v == VersionScarlet || v == VersionViolet
}

// IsSwordShield reports whether v is one of the Gen8 pair.
func (v Version) IsSwordShield() bool {
	return v == VersionSword || v == VersionShield
}

// Region identifies a Gen9 raid map.
type Region uint8

const (
	RegionPaldea Region = iota
	RegionKitakami
	RegionBlueberry
)

// RaidContent distinguishes the standard encounter pool from the "black"
// (6-star guaranteed) pool for a raid slot.
type RaidContent uint8

const (
	ContentStandard RaidContent = iota
	ContentBlack
)
