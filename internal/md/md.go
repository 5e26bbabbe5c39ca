// Package md implements the Merkle–Damgård hash functions SHA-1, SHA-256, and SHA-512 from FIPS 180-4 on a shared
// engine parameterized by initial hash value, block size, length encoding, and compression function.
package md

import (
	"encoding/binary"
	"slices"
)

// A Hash computes a fixed-length digest of a complete message.
type Hash interface {
	// Sum returns the digest of message.
	Sum(message []byte) []byte

	// Size returns the length of the digest in bytes.
	Size() int
}

type word interface {
	~uint32 | ~uint64
}

// engine is a Merkle–Damgård construction over W-sized words. Messages are padded with a single 1 bit, zeros, and the
// big-endian message length in bits, filling out a whole number of blocks.
type engine[W word] struct {
	iv        []W
	size      int // digest length in bytes
	blockSize int // in bytes
	lenSize   int // bytes reserved for the message length at the end of the final block
	wordSize  int // in bytes
	compress  func(h []W, block []byte)
}

func (e *engine[W]) Size() int {
	return e.size
}

func (e *engine[W]) Sum(message []byte) []byte {
	h := slices.Clone(e.iv)
	for p := e.pad(message); len(p) > 0; p = p[e.blockSize:] {
		e.compress(h, p[:e.blockSize])
	}

	out := make([]byte, 0, len(h)*e.wordSize)
	for _, v := range h {
		for i := e.wordSize - 1; i >= 0; i-- {
			out = append(out, byte(uint64(v)>>(8*i)))
		}
	}
	return out[:e.size]
}

func (e *engine[W]) pad(message []byte) []byte {
	n := len(message)
	blocks := (n + 1 + e.lenSize + e.blockSize - 1) / e.blockSize

	p := make([]byte, blocks*e.blockSize)
	copy(p, message)
	p[n] = 0x80

	// Messages are always shorter than 2^61 bytes, so any length bytes beyond the last eight stay zero.
	binary.BigEndian.PutUint64(p[len(p)-8:], uint64(n)*8) //nolint:gosec // n is never negative
	return p
}

func ch[W word](x, y, z W) W {
	return (x & y) ^ (^x & z)
}

func parity[W word](x, y, z W) W {
	return x ^ y ^ z
}

func maj[W word](x, y, z W) W {
	return (x & y) ^ (x & z) ^ (y & z)
}

var _ Hash = (*engine[uint32])(nil)
