package prng

import (
	"math/bits"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStream32Deterministic(t *testing.T) {
	s1 := NewStream32(0xCAAC8800)
	s2 := NewStream32(0xCAAC8800)

	for i := 0; i < 256; i++ {
		require.Equal(t, s1.NextByte(), s2.NextByte())
	}
}

func TestStream32DifferentSeedsDiverge(t *testing.T) {
	s1 := NewStream32(1)
	s2 := NewStream32(2)

	allSame := true
	for i := 0; i < 16; i++ {
		if s1.NextByte() != s2.NextByte() {
			allSame = false
			break
		}
	}
	require.False(t, allSame)
}

func TestStream32Next32AssemblesFourBytes(t *testing.T) {
	seed := uint32(0x12345678)
	s1 := NewStream32(seed)
	s2 := NewStream32(seed)

	b0 := uint32(s1.NextByte())
	b1 := uint32(s1.NextByte())
	b2 := uint32(s1.NextByte())
	b3 := uint32(s1.NextByte())
	want := b0 | b1<<8 | b2<<16 | b3<<24

	require.Equal(t, want, s2.Next32())
}

func TestStream32PreStepsByPopcount(t *testing.T) {
	// A seed constructed by directly pre-stepping by popcount(seed) should
	// match NewStream32's first emitted register.
	seed := uint32(0x0F0F0F0F)
	n := bits.OnesCount32(seed)

	manual := &Stream32{x: seed}
	for i := 0; i < n; i++ {
		manual.step()
	}
	manual.fill()

	fromCtor := NewStream32(seed)
	require.Equal(t, manual.reg, fromCtor.reg)
}
