// Package codec implements the save container's physical layer: the
// repeating-pad XOR layer, the per-block Stream32 keystream, and the
// trailing SHA-256 integrity tag. It never verifies the tag on decode —
// the core treats saves as trusted — and it always recomputes and appends
// the tag on encode.
package codec

import (
	"errors"

	"github.com/raidkit/raidcore/blocks"
	"github.com/raidkit/raidcore/encoding"
	"github.com/raidkit/raidcore/prng"
)

// ErrTooShort means the container is smaller than the trailing tag alone.
var ErrTooShort = errors.New("codec: container shorter than integrity tag")

// Decode strips the trailing tag (without checking it), removes the
// repeating XOR pad, and parses the resulting stream into blocks in file
// order.
func Decode(container []byte) ([]blocks.Block, error) {
	if len(container) < tagSize {
		return nil, ErrTooShort
	}
	payloadLen := len(container) - tagSize
	payload := make([]byte, payloadLen)
	copy(payload, container[:payloadLen])
	applyXorpad(payload)

	var out []blocks.Block
	offset := 0
	for offset < payloadLen {
		b, n, err := decodeBlock(payload, offset)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
		offset += n
	}
	return out, nil
}

// decodeBlock reads one block starting at offset and returns it along with
// the number of bytes consumed.
func decodeBlock(payload []byte, offset int) (blocks.Block, int, error) {
	start := offset
	if offset+4 > len(payload) {
		return blocks.Block{}, 0, &blocks.ErrTruncatedBlock{Offset: start}
	}
	key := encoding.Read32(payload, offset)
	offset += 4

	stream := prng.NewStream32(key)

	if offset+1 > len(payload) {
		return blocks.Block{}, 0, &blocks.ErrTruncatedBlock{Offset: start}
	}
	typ := blocks.Type(payload[offset] ^ stream.NextByte())
	offset++

	b := blocks.Block{Key: key, Type: typ}

	switch typ {
	case blocks.TypeBool1, blocks.TypeBool2, blocks.TypeBool3:
		return b, offset - start, nil

	case blocks.TypeObject:
		if offset+4 > len(payload) {
			return blocks.Block{}, 0, &blocks.ErrTruncatedBlock{Offset: start}
		}
		n := int(encoding.Read32(payload, offset) ^ stream.Next32())
		offset += 4
		if n < 0 || offset+n > len(payload) {
			return blocks.Block{}, 0, &blocks.ErrTruncatedBlock{Offset: start}
		}
		b.Data = xorCopy(payload[offset:offset+n], stream)
		offset += n
		return b, offset - start, nil

	case blocks.TypeArray:
		if offset+4 > len(payload) {
			return blocks.Block{}, 0, &blocks.ErrTruncatedBlock{Offset: start}
		}
		count := int(encoding.Read32(payload, offset) ^ stream.Next32())
		offset += 4
		if offset+1 > len(payload) {
			return blocks.Block{}, 0, &blocks.ErrTruncatedBlock{Offset: start}
		}
		sub := blocks.Type(payload[offset] ^ stream.NextByte())
		offset++
		b.SubType = sub
		n := count * blocks.ElemSize(sub)
		if n < 0 || offset+n > len(payload) {
			return blocks.Block{}, 0, &blocks.ErrTruncatedBlock{Offset: start}
		}
		b.Data = xorCopy(payload[offset:offset+n], stream)
		offset += n
		return b, offset - start, nil

	default:
		n := blocks.ElemSize(typ)
		if offset+n > len(payload) {
			return blocks.Block{}, 0, &blocks.ErrTruncatedBlock{Offset: start}
		}
		b.Data = xorCopy(payload[offset:offset+n], stream)
		offset += n
		return b, offset - start, nil
	}
}

func xorCopy(src []byte, stream *prng.Stream32) []byte {
	out := make([]byte, len(src))
	for i, c := range src {
		out[i] = c ^ stream.NextByte()
	}
	return out
}

// Encode re-serializes blocks in their given order, applies the repeating
// XOR pad over the whole payload, and appends a freshly computed
// integrity tag. Each block restarts its own Stream32 from its own key;
// block order is load-bearing — the pad never resets between blocks, so
// reordering blocks produces a different ciphertext even though each
// block decodes independently.
func Encode(list []blocks.Block) []byte {
	total := 0
	for _, b := range list {
		total += b.EncodedSize()
	}
	payload := make([]byte, total)

	pos := 0
	for _, b := range list {
		pos += encodeBlock(payload[pos:], b)
	}

	applyXorpad(payload)
	tag := computeTag(payload)

	out := make([]byte, len(payload)+tagSize)
	copy(out, payload)
	copy(out[len(payload):], tag[:])
	return out
}

func encodeBlock(out []byte, b blocks.Block) int {
	encoding.Write32(out, 0, b.Key)
	pos := 4

	stream := prng.NewStream32(b.Key)
	out[pos] = byte(b.Type) ^ stream.NextByte()
	pos++

	switch b.Type {
	case blocks.TypeBool1, blocks.TypeBool2, blocks.TypeBool3:
		return pos

	case blocks.TypeObject:
		encoding.Write32(out, pos, uint32(len(b.Data))^stream.Next32())
		pos += 4
		pos += xorInto(out[pos:], b.Data, stream)
		return pos

	case blocks.TypeArray:
		elemSize := blocks.ElemSize(b.SubType)
		entries := 0
		if elemSize > 0 {
			entries = len(b.Data) / elemSize
		}
		encoding.Write32(out, pos, uint32(entries)^stream.Next32())
		pos += 4
		out[pos] = byte(b.SubType) ^ stream.NextByte()
		pos++
		pos += xorInto(out[pos:], b.Data, stream)
		return pos

	default:
		pos += xorInto(out[pos:], b.Data, stream)
		return pos
	}
}

func xorInto(dst, src []byte, stream *prng.Stream32) int {
	for i, c := range src {
		dst[i] = c ^ stream.NextByte()
	}
	return len(src)
}
