package encoding

import (
	"testing"
)

func TestRead16(t *testing.T) {
	tests := []struct {
		name     string
		data     []byte
		offset   int
		expected uint16
	}{
		{"zero", []byte{0x00, 0x00}, 0, 0x0000},
		{"little endian 0x1234", []byte{0x34, 0x12}, 0, 0x1234},
		{"max value", []byte{0xFF, 0xFF}, 0, 0xFFFF},
		{"with offset", []byte{0x00, 0x34, 0x12, 0x00}, 1, 0x1234},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Read16(tt.data, tt.offset)
			if result != tt.expected {
				t.Errorf("Read16(%v, %d) = %04X, want %04X", tt.data, tt.offset, result, tt.expected)
			}
		})
	}
}

func TestRead32(t *testing.T) {
	tests := []struct {
		name     string
		data     []byte
		offset   int
		expected uint32
	}{
		{"zero", []byte{0x00, 0x00, 0x00, 0x00}, 0, 0x00000000},
		{"little endian 0x12345678", []byte{0x78, 0x56, 0x34, 0x12}, 0, 0x12345678},
		{"max value", []byte{0xFF, 0xFF, 0xFF, 0xFF}, 0, 0xFFFFFFFF},
		{"with offset", []byte{0x00, 0x78, 0x56, 0x34, 0x12, 0x00}, 1, 0x12345678},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Read32(tt.data, tt.offset)
			if result != tt.expected {
				t.Errorf("Read32(%v, %d) = %08X, want %08X", tt.data, tt.offset, result, tt.expected)
			}
		})
	}
}

func TestRead64(t *testing.T) {
	data := []byte{0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}
	if got := Read64(data, 0); got != 1 {
		t.Errorf("Read64 = %d, want 1", got)
	}
}

func TestRoundTripRead16(t *testing.T) {
	testValues := []uint16{0, 1, 255, 256, 1000, 65535}

	for _, val := range testValues {
		data := make([]byte, 2)
		Write16(data, 0, val)
		result := Read16(data, 0)
		if result != val {
			t.Errorf("Round-trip failed for %d: got %d", val, result)
		}
	}
}

func TestRoundTripRead32(t *testing.T) {
	testValues := []uint32{0, 1, 255, 256, 65535, 65536, 0x12345678, 0xFFFFFFFF}

	for _, val := range testValues {
		data := make([]byte, 4)
		Write32(data, 0, val)
		result := Read32(data, 0)
		if result != val {
			t.Errorf("Round-trip failed for %d: got %d", val, result)
		}
	}
}

func TestRoundTripRead64(t *testing.T) {
	testValues := []uint64{0, 1, 0xFFFFFFFF, 0x0123456789ABCDEF, 0xFFFFFFFFFFFFFFFF}

	for _, val := range testValues {
		data := make([]byte, 8)
		Write64(data, 0, val)
		result := Read64(data, 0)
		if result != val {
			t.Errorf("Round-trip failed for %d: got %d", val, result)
		}
	}
}
