// Package tuplehash implements cSHAKE and TupleHash from [NIST SP 800-185] over the bit-level Keccak sponge, along
// with the integer and string encodings they are defined in terms of.
//
// [NIST SP 800-185]: https://www.nist.gov/publications/sha-3-derived-functions-cshake-kmac-tuplehash-and-parallelhash
package tuplehash

import (
	"encoding/binary"
	"fmt"
	"math/bits"
	"slices"

	"github.com/codahale/bitsponge/internal/bitarray"
	"github.com/codahale/bitsponge/internal/keccak"
	"github.com/codahale/bitsponge/internal/sponge"
)

// MaxSize is the length, in bytes, of the largest encoded integer.
const MaxSize = 9

var (
	cshakeSuffix = bitarray.Bits{false, false}            //nolint:gochecknoglobals // these are constants
	shakeSuffix  = bitarray.Bits{true, true, true, true} //nolint:gochecknoglobals // these are constants
	tupleHashN   = []byte("TupleHash")                   //nolint:gochecknoglobals // these are constants
)

// CSHAKE returns outLen bytes of cSHAKE output for x at the given capacity, with function name n and customization
// string s. With both n and s empty, it is SHAKE.
func CSHAKE(x []byte, capacity int, n, s []byte, outLen int) ([]byte, error) {
	if outLen < 0 {
		return nil, fmt.Errorf("%w: %d bytes", sponge.ErrInvalidOutputLength, outLen)
	}

	rate := keccak.Width - capacity
	if rate < 8 || rate >= keccak.Width || rate%8 != 0 {
		return nil, fmt.Errorf("%w: %d", sponge.ErrInvalidRate, rate)
	}

	var in bitarray.Bits
	if len(n) == 0 && len(s) == 0 {
		in = slices.Concat(bitarray.FromBytes(x), shakeSuffix)
	} else {
		prefix := AppendBytepad(nil, AppendEncodeString(AppendEncodeString(nil, n), s), rate/8)
		in = slices.Concat(bitarray.FromBytes(prefix), bitarray.FromBytes(x), cshakeSuffix)
	}

	out, err := sponge.Sponge(keccak.F1600, sponge.Pad10x1, rate, in, outLen*8)
	if err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// Sum returns outLen bytes of TupleHash output for the tuple at the given capacity with customization string s.
// Every element is length-prefixed, so ("ab", "c") and ("a", "bc") hash differently.
func Sum(tuple [][]byte, capacity int, s []byte, outLen int) ([]byte, error) {
	if outLen < 0 {
		return nil, fmt.Errorf("%w: %d bytes", sponge.ErrInvalidOutputLength, outLen)
	}

	var z []byte
	for _, x := range tuple {
		z = AppendEncodeString(z, x)
	}
	z = AppendRightEncode(z, uint64(outLen)*8)

	return CSHAKE(z, capacity, tupleHashN, s, outLen)
}

// AppendLeftEncode encodes an integer value using NIST SP 800-185's left_encode and appends it to b.
func AppendLeftEncode(b []byte, value uint64) []byte {
	n := encodedLen(value)
	return appendBigEndian(append(b, byte(n)), value, n)
}

// AppendRightEncode encodes an integer value using NIST SP 800-185's right_encode and appends it to b.
func AppendRightEncode(b []byte, value uint64) []byte {
	n := encodedLen(value)
	return append(appendBigEndian(b, value, n), byte(n))
}

// AppendEncodeString appends left_encode(8*len(s)) || s to b.
func AppendEncodeString(b, s []byte) []byte {
	return append(AppendLeftEncode(b, uint64(len(s))*8), s...)
}

// AppendBytepad appends left_encode(w) || x to b, followed by enough zero bytes to make the appended length a
// multiple of w.
func AppendBytepad(b, x []byte, w int) []byte {
	start := len(b)
	b = append(AppendLeftEncode(b, uint64(w)), x...)
	if r := (len(b) - start) % w; r != 0 {
		b = append(b, make([]byte, w-r)...)
	}
	return b
}

// encodedLen returns the number of bytes in the shortest big-endian encoding of v, which is at least one.
func encodedLen(v uint64) int {
	return max(1, (bits.Len64(v)+7)/8)
}

func appendBigEndian(b []byte, v uint64, n int) []byte {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], v)
	return append(b, buf[8-n:]...)
}
