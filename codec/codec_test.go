package codec

import (
	"testing"

	"github.com/raidkit/raidcore/blocks"
	"github.com/stretchr/testify/require"
)

// TestRoundTripEmptyBlocks mirrors the empty-blocks save scenario: two
// boolean singletons only, then the tag. encrypt(decrypt(bytes)) must
// reproduce the original bytes exactly.
func TestRoundTripEmptyBlocks(t *testing.T) {
	list := []blocks.Block{
		blocks.NewBool(0x00000001, false),
		blocks.NewBool(0x00000002, true),
	}
	encoded := Encode(list)

	decoded, err := Decode(encoded)
	require.NoError(t, err)
	require.Len(t, decoded, 2)

	reEncoded := Encode(decoded)
	require.Equal(t, encoded, reEncoded)
}

func TestRoundTripScalarsAndObjectAndArray(t *testing.T) {
	list := []blocks.Block{
		{Key: 10, Type: blocks.TypeUInt32, Data: []byte{0x78, 0x56, 0x34, 0x12}},
		{Key: 11, Type: blocks.TypeObject, Data: []byte("hello world, this is a payload")},
		{Key: 12, Type: blocks.TypeArray, SubType: blocks.TypeUInt16, Data: []byte{1, 0, 2, 0, 3, 0}},
		{Key: 13, Type: blocks.TypeDouble, Data: make([]byte, 8)},
	}
	encoded := Encode(list)

	decoded, err := Decode(encoded)
	require.NoError(t, err)
	require.Len(t, decoded, len(list))
	for i, want := range list {
		require.Equal(t, want.Key, decoded[i].Key)
		require.Equal(t, want.Type, decoded[i].Type)
		require.Equal(t, want.SubType, decoded[i].SubType)
		require.Equal(t, want.Data, decoded[i].Data)
	}

	reEncoded := Encode(decoded)
	require.Equal(t, encoded, reEncoded)
}

// TestBlockIndependence exercises P4: blocks with different keys decode
// correctly regardless of their relative order, and encoded size follows
// the documented formula.
func TestBlockIndependence(t *testing.T) {
	a := blocks.Block{Key: 1, Type: blocks.TypeByte, Data: []byte{0xFF}}
	b := blocks.Block{Key: 2, Type: blocks.TypeUInt64, Data: make([]byte, 8)}

	require.Equal(t, 4+1+1, a.EncodedSize())
	require.Equal(t, 4+1+8, b.EncodedSize())

	forward := Encode([]blocks.Block{a, b})
	backward := Encode([]blocks.Block{b, a})

	df, err := Decode(forward)
	require.NoError(t, err)
	db, err := Decode(backward)
	require.NoError(t, err)

	require.Equal(t, a.Data, mustFind(t, df, 1).Data)
	require.Equal(t, b.Data, mustFind(t, df, 2).Data)
	require.Equal(t, a.Data, mustFind(t, db, 1).Data)
	require.Equal(t, b.Data, mustFind(t, db, 2).Data)
}

func mustFind(t *testing.T, list []blocks.Block, key uint32) blocks.Block {
	t.Helper()
	b, ok := blocks.Find(list, key)
	require.True(t, ok)
	return b
}

func TestDecodeDoesNotVerifyTag(t *testing.T) {
	list := []blocks.Block{blocks.NewBool(1, true)}
	encoded := Encode(list)
	// Corrupt the trailing tag; decode must still succeed.
	encoded[len(encoded)-1] ^= 0xFF

	decoded, err := Decode(encoded)
	require.NoError(t, err)
	require.Len(t, decoded, 1)
}

func TestDecodeTruncatedObjectBlock(t *testing.T) {
	list := []blocks.Block{{Key: 1, Type: blocks.TypeObject, Data: []byte{1, 2, 3, 4, 5}}}
	encoded := Encode(list)
	// Chop the payload short, leaving the tag area intact size-wise.
	truncated := append(append([]byte{}, encoded[:len(encoded)-tagSize-3]...), encoded[len(encoded)-tagSize:]...)

	_, err := Decode(truncated)
	require.Error(t, err)
}

func TestTooShortContainer(t *testing.T) {
	_, err := Decode(make([]byte, tagSize-1))
	require.ErrorIs(t, err, ErrTooShort)
}
