// Package encoding provides small little-endian byte-slice helpers shared
// by the blocks and codec packages. Every raid-related structure on disk
// and in the live game heap is little-endian, so the rest of the module
// never touches encoding/binary directly.
package encoding

import (
	"encoding/binary"
)

// Read16 reads a little-endian uint16 from bytes at the given offset
func Read16(bytes []byte, offset int) uint16 {
	return binary.LittleEndian.Uint16(bytes[offset:])
}

// Read32 reads a little-endian uint32 from bytes at the given offset
func Read32(bytes []byte, offset int) uint32 {
	return binary.LittleEndian.Uint32(bytes[offset:])
}

// Read64 reads a little-endian uint64 from bytes at the given offset
func Read64(bytes []byte, offset int) uint64 {
	return binary.LittleEndian.Uint64(bytes[offset:])
}

// Write16 writes a little-endian uint16 into bytes at the given offset
func Write16(bytes []byte, offset int, v uint16) {
	binary.LittleEndian.PutUint16(bytes[offset:], v)
}

// Write32 writes a little-endian uint32 into bytes at the given offset
func Write32(bytes []byte, offset int, v uint32) {
	binary.LittleEndian.PutUint32(bytes[offset:], v)
}

// Write64 writes a little-endian uint64 into bytes at the given offset
func Write64(bytes []byte, offset int, v uint64) {
	binary.LittleEndian.PutUint64(bytes[offset:], v)
}

// SubArray returns a slice of the input array from startIdx to endIdx (inclusive)
func SubArray(input []byte, startIdx int, endIdx int) []byte {
	size := endIdx - startIdx + 1
	output := make([]byte, size)
	copy(output, input[startIdx:endIdx+1])
	return output
}

// SubArrayFromStart returns a slice from startIdx to the end of the array
func SubArrayFromStart(input []byte, startIdx int) []byte {
	return SubArray(input, startIdx, len(input)-1)
}
