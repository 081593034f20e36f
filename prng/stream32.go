package prng

import "math/bits"

// Stream32 is the 32-bit xorshift generator used exclusively by the save
// codec to derive each block's XOR keystream. It is pre-stepped
// popcount(seed) times at construction, then exposes its internal state
// four bytes at a time through a rolling output register: once all four
// bytes of a register have been consumed, the generator advances and
// refills before handing out the next byte.
type Stream32 struct {
	x   uint32
	reg [4]byte
	pos int
}

// NewStream32 seeds a Stream32 from a 32-bit key, pre-stepping it
// popcount(seed) times as the codec requires.
func NewStream32(seed uint32) *Stream32 {
	s := &Stream32{x: seed}
	for i := 0; i < bits.OnesCount32(seed); i++ {
		s.step()
	}
	s.fill()
	return s
}

func (s *Stream32) step() {
	s.x ^= s.x << 2
	s.x ^= s.x >> 15
	s.x ^= s.x << 13
}

func (s *Stream32) fill() {
	s.reg[0] = byte(s.x)
	s.reg[1] = byte(s.x >> 8)
	s.reg[2] = byte(s.x >> 16)
	s.reg[3] = byte(s.x >> 24)
	s.pos = 0
}

// NextByte returns the next byte of the rolling output register,
// advancing and refilling the register once all four bytes are consumed.
func (s *Stream32) NextByte() byte {
	if s.pos == 4 {
		s.step()
		s.fill()
	}
	b := s.reg[s.pos]
	s.pos++
	return b
}

// Next32 assembles four consecutive NextByte draws into a little-endian
// uint32, as the block codec uses to XOR length and sub-type fields.
func (s *Stream32) Next32() uint32 {
	b0 := uint32(s.NextByte())
	b1 := uint32(s.NextByte())
	b2 := uint32(s.NextByte())
	b3 := uint32(s.NextByte())
	return b0 | b1<<8 | b2<<16 | b3<<24
}
