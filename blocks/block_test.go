package blocks

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBoolBlocks(t *testing.T) {
	f := NewBool(1, false)
	v, ok := f.Bool()
	require.True(t, ok)
	require.False(t, v)
	require.Equal(t, 5, f.EncodedSize())

	tr := NewBool(2, true)
	v, ok = tr.Bool()
	require.True(t, ok)
	require.True(t, v)
}

func TestScalarBlockNotBool(t *testing.T) {
	b := Block{Key: 3, Type: TypeUInt32, Data: []byte{1, 0, 0, 0}}
	_, ok := b.Bool()
	require.False(t, ok)
	require.Equal(t, uint32(1), b.Uint32())
	require.Equal(t, 9, b.EncodedSize())
}

func TestArrayBlockSize(t *testing.T) {
	b := Block{Key: 4, Type: TypeArray, SubType: TypeUInt16, Data: make([]byte, 6)}
	require.Equal(t, 3, b.ArrayLen())
	require.Equal(t, 4+1+4+1+6, b.EncodedSize())
}

func TestFind(t *testing.T) {
	list := []Block{NewBool(1, true), NewBool(2, false)}
	b, ok := Find(list, 2)
	require.True(t, ok)
	v, _ := b.Bool()
	require.False(t, v)

	_, ok = Find(list, 99)
	require.False(t, ok)
}

func TestResolveProgress(t *testing.T) {
	list := []Block{
		NewBool(KeyUnlockedTeraRaidBattles, true),
		NewBool(KeyUnlockedRaidDifficulty3, true),
		NewBool(KeyUnlockedRaidDifficulty4, false),
	}
	require.Equal(t, ProgressUnlocked3Stars, ResolveProgress(list))
}

func TestResolveProgressAbsentFlags(t *testing.T) {
	require.Equal(t, ProgressBeginning, ResolveProgress(nil))
}

func TestTrainerID32Truncated(t *testing.T) {
	list := []Block{{Key: KeyMyStatus, Type: TypeObject, Data: []byte{1, 2, 3}}}
	require.Equal(t, uint32(0), TrainerID32(list))
}

func TestTrainerID32(t *testing.T) {
	data := make([]byte, 12)
	data[0x04] = 0x78
	data[0x05] = 0x56
	data[0x06] = 0x34
	data[0x07] = 0x12
	list := []Block{{Key: KeyMyStatus, Type: TypeObject, Data: data}}
	require.Equal(t, uint32(0x12345678), TrainerID32(list))
}

func TestPaldeaRaidSlots(t *testing.T) {
	data := make([]byte, 0x10+72*raidSlotSize)
	data[0x10] = 1 // first slot enabled
	data[0x14] = 7 // areaID
	slots := PaldeaRaidSlots(data)
	require.Len(t, slots, 72)
	require.True(t, slots[0].Enabled)
	require.Equal(t, uint32(7), slots[0].AreaID)
	require.True(t, slots[0].Relevant())
}

func TestDLCRaidSlots(t *testing.T) {
	data := make([]byte, 0x1900)
	kita, blue := DLCRaidSlots(data)
	require.Len(t, kita, 100)
	require.Len(t, blue, 80)
}

func TestDenRawFlags(t *testing.T) {
	data := make([]byte, denRawSize)
	data[0x10] = 9 // clamp to 4
	data[0x12] = 2 // rare beam
	data[0x13] = 0b10
	d := parseDenRaw(data)
	require.Equal(t, uint8(4), d.Stars)
	require.True(t, d.IsActive())
	require.True(t, d.IsRare())
	require.True(t, d.IsEvent())
}
