package blocks

// Fixed block keys the pipeline reads by name. The game assigns these;
// they are stable across updates and never discovered by scanning.
const (
	KeyTeraRaidPaldea uint32 = 0xCAAC8800
	KeyTeraRaidDLC    uint32 = 0x100B93DA
	KeyMyStatus       uint32 = 0xE3E89BD1

	KeyUnlockedTeraRaidBattles uint32 = 0x27025EBF
	KeyUnlockedRaidDifficulty3 uint32 = 0xEC95D8EF
	KeyUnlockedRaidDifficulty4 uint32 = 0xA9428DFE
	KeyUnlockedRaidDifficulty5 uint32 = 0x9535F471
	KeyUnlockedRaidDifficulty6 uint32 = 0x6E7F8220

	KeyDenVanilla      uint32 = 0x9033EB7B
	KeyDenIslandOfArmor uint32 = 0x158DA896
	KeyDenCrownTundra  uint32 = 0x148DA703
)
