package blocks

import "github.com/raidkit/raidcore/encoding"

const denRawSize = 0x18

// DenRaw is one 0x18-byte Gen8 den entry as stored in the raid block.
type DenRaw struct {
	Seed     uint64
	Stars    uint8 // clamped to 4
	RandRoll uint8
	DenType  uint8
	FlagByte uint8
}

// IsActive reports whether this den currently holds a raid.
func (d DenRaw) IsActive() bool {
	return d.DenType > 0
}

// IsRare reports whether the den rolled the rare (even, non-zero) beam.
// Inactive dens are never rare.
func (d DenRaw) IsRare() bool {
	return d.IsActive() && d.DenType%2 == 0
}

// IsEvent reports whether bit 1 of the flag byte marks this as a
// distribution encounter, which the resolver does not attempt to solve.
func (d DenRaw) IsEvent() bool {
	return (d.FlagByte>>1)&1 == 1
}

func parseDenRaw(data []byte) DenRaw {
	stars := data[0x10]
	if stars > 4 {
		stars = 4
	}
	return DenRaw{
		Seed:     encoding.Read64(data, 0x08),
		Stars:    stars,
		RandRoll: data[0x11],
		DenType:  data[0x12],
		FlagByte: data[0x13],
	}
}

// ParseDens splits a tightly packed buffer of DenRaw records.
func ParseDens(data []byte) []DenRaw {
	n := len(data) / denRawSize
	out := make([]DenRaw, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, parseDenRaw(data[i*denRawSize:]))
	}
	return out
}
