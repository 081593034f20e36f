package codec

import "crypto/sha256"

// introSalt and outroSalt bracket the payload for the trailing integrity
// tag. They are fixed constants; nothing in the core ever derives them.
var introSalt = [64]byte{
	0x9E, 0xC9, 0x9C, 0xD7, 0x0E, 0xD3, 0x3C, 0x44, 0xFB, 0x93, 0x03, 0xDC, 0xEB, 0x39, 0xB4, 0x2A,
	0x19, 0x47, 0xE9, 0x63, 0x4B, 0xA2, 0x33, 0x44, 0x16, 0xBF, 0x82, 0xA2, 0xBA, 0x63, 0x55, 0xB6,
	0x3D, 0x9D, 0xF2, 0x4B, 0x5F, 0x7B, 0x6A, 0xB2, 0x62, 0x1D, 0xC2, 0x1B, 0x68, 0xE5, 0xC8, 0xB5,
	0x3A, 0x05, 0x90, 0x00, 0xE8, 0xA8, 0x10, 0x3D, 0xE2, 0xEC, 0xF0, 0x0C, 0xB2, 0xED, 0x4F, 0x6D,
}

var outroSalt = [64]byte{
	0xD6, 0xC0, 0x1C, 0x59, 0x8B, 0xC8, 0xB8, 0xCB, 0x46, 0xE1, 0x53, 0xFC, 0x82, 0x8C, 0x75, 0x75,
	0x13, 0xE0, 0x45, 0xDF, 0x32, 0x69, 0x3C, 0x75, 0xF0, 0x59, 0xF8, 0xD9, 0xA2, 0x5F, 0xB2, 0x17,
	0xE0, 0x80, 0x52, 0xDB, 0xEA, 0x89, 0x73, 0x99, 0x75, 0x79, 0xAF, 0xCB, 0x2E, 0x80, 0x07, 0xE6,
	0xF1, 0x26, 0xE0, 0x03, 0x0A, 0xE6, 0x6F, 0xF6, 0x41, 0xBF, 0x7E, 0x59, 0xC2, 0xAE, 0x55, 0xFD,
}

// tagSize is the width of the trailing integrity tag appended to every
// container.
const tagSize = 32

// computeTag hashes intro || payload || outro with SHA-256. payload here is
// the same byte stream that sits on disk (pad- and stream-cipher-encrypted,
// not the decoded plaintext) — the game computes its tag over the bytes it
// is about to write, not over the logical block values.
func computeTag(payload []byte) [tagSize]byte {
	h := sha256.New()
	h.Write(introSalt[:])
	h.Write(payload)
	h.Write(outroSalt[:])
	var out [tagSize]byte
	copy(out[:], h.Sum(nil))
	return out
}
