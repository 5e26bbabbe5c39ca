// Package bitarray provides ordered, resizable bit strings, the unit of data the Keccak state codec and the sponge
// construction operate on.
//
// Bytes map to bits least-significant bit first: bit i of a Bits produced by FromBytes is bit i%8 of byte i/8. This is
// the bit ordering FIPS 202 uses to turn byte messages into bit strings and back.
package bitarray

import (
	"encoding/hex"
	"slices"
	"strings"
)

// Bits is an ordered sequence of single-bit values. Its length need not be a multiple of eight.
type Bits []bool

// Zeros returns n zero bits.
func Zeros(n int) Bits {
	return make(Bits, n)
}

// FromBytes returns the bits of b, least-significant bit of each byte first.
func FromBytes(b []byte) Bits {
	return AppendBytes(make(Bits, 0, len(b)*8), b)
}

// AppendBytes appends the bits of b to dst, least-significant bit of each byte first, and returns the resulting
// slice.
func AppendBytes(dst Bits, b []byte) Bits {
	dst = slices.Grow(dst, len(b)*8)
	for _, v := range b {
		for i := range 8 {
			dst = append(dst, v>>i&1 == 1)
		}
	}
	return dst
}

// Bytes packs b into bytes, eight bits per byte, least-significant bit first. A trailing partial group occupies the
// low bits of the final byte.
func (b Bits) Bytes() []byte {
	return b.AppendTo(nil)
}

// AppendTo packs b into bytes as Bytes does, appending them to dst.
func (b Bits) AppendTo(dst []byte) []byte {
	n := (len(b) + 7) / 8
	dst = slices.Grow(dst, n)
	for i := 0; i < len(b); i += 8 {
		var v byte
		for j, bit := range b[i:min(i+8, len(b))] {
			if bit {
				v |= 1 << j
			}
		}
		dst = append(dst, v)
	}
	return dst
}

// Uint64 interprets up to the first 64 bits of b as an integer, bit 0 first.
func (b Bits) Uint64() uint64 {
	var v uint64
	for i, bit := range b[:min(64, len(b))] {
		if bit {
			v |= 1 << i
		}
	}
	return v
}

// Clone returns a copy of b which shares no storage with it.
func (b Bits) Clone() Bits {
	return slices.Clone(b)
}

// Equal reports whether b and o hold the same bits.
func (b Bits) Equal(o Bits) bool {
	return slices.Equal(b, o)
}

// XOR sets dst[i] = a[i] ^ b[i] for every i < len(dst). a and b must be at least as long as dst.
func XOR(dst, a, b Bits) {
	if len(a) < len(dst) || len(b) < len(dst) {
		panic("bitarray: XOR operands shorter than destination")
	}
	for i := range dst {
		dst[i] = a[i] != b[i]
	}
}

// String renders b as space-separated hex bytes.
func (b Bits) String() string {
	packed := b.Bytes()
	groups := make([]string, len(packed))
	for i := range packed {
		groups[i] = hex.EncodeToString(packed[i : i+1])
	}
	return strings.Join(groups, " ")
}
