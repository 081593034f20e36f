package blocks

import (
	"github.com/raidkit/raidcore/encoding"
)

// Block is a single decoded save-container entry: a key, a type tag, and
// (for Object/Array/scalar types) a decrypted payload. SubType is only
// meaningful when Type is TypeArray.
type Block struct {
	Key     uint32
	Type    Type
	SubType Type
	Data    []byte
}

// NewBool returns a boolean singleton block. It carries no payload.
func NewBool(key uint32, value bool) Block {
	if value {
		return Block{Key: key, Type: TypeBool2}
	}
	return Block{Key: key, Type: TypeBool1}
}

// Bool reports the block's boolean value and whether it was a recognized
// boolean tag at all.
func (b Block) Bool() (value bool, ok bool) {
	switch b.Type {
	case TypeBool2:
		return true, true
	case TypeBool1, TypeBool3:
		return false, true
	default:
		return false, false
	}
}

// Uint32 decodes a TypeUInt32 scalar payload. Callers must check Type first:
// the type tag is not checked here. A payload shorter than 4 bytes returns 0.
func (b Block) Uint32() uint32 {
	if len(b.Data) < 4 {
		return 0
	}
	return encoding.Read32(b.Data, 0)
}

// ArrayElemSize returns the byte width of one element of an Array block.
func (b Block) ArrayElemSize() int {
	return ElemSize(b.SubType)
}

// ArrayLen returns the number of elements in an Array block, given its
// recorded sub-type and payload length.
func (b Block) ArrayLen() int {
	sz := b.ArrayElemSize()
	if sz == 0 {
		return 0
	}
	return len(b.Data) / sz
}

// EncodedSize returns the on-disk size of this block once re-encoded: key
// (4) + type tag (1), plus whatever the type requires.
func (b Block) EncodedSize() int {
	size := 4 + 1
	switch b.Type {
	case TypeBool1, TypeBool2, TypeBool3:
		// no payload
	case TypeObject:
		size += 4 + len(b.Data)
	case TypeArray:
		size += 4 + 1 + len(b.Data)
	default:
		size += len(b.Data)
	}
	return size
}

// Find returns the first block with the given key, mirroring the codec's
// own linear lookup. Duplicate keys do not occur in well-formed saves.
func Find(list []Block, key uint32) (Block, bool) {
	for _, b := range list {
		if b.Key == key {
			return b, true
		}
	}
	return Block{}, false
}
