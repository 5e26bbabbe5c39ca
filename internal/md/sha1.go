package md

import (
	"encoding/binary"
	"math/bits"
)

// SHA1 is the 160-bit SHA-1 hash function.
var SHA1 Hash = &engine[uint32]{ //nolint:gochecknoglobals // stateless
	iv:        []uint32{0x67452301, 0xefcdab89, 0x98badcfe, 0x10325476, 0xc3d2e1f0},
	size:      20,
	blockSize: 64,
	lenSize:   8,
	wordSize:  4,
	compress:  sha1Block,
}

// sha1Stages holds the constant and logical function for each run of 20 rounds.
var sha1Stages = [4]struct { //nolint:gochecknoglobals // these are constants
	k uint32
	f func(x, y, z uint32) uint32
}{
	{0x5a827999, ch[uint32]},
	{0x6ed9eba1, parity[uint32]},
	{0x8f1bbcdc, maj[uint32]},
	{0xca62c1d6, parity[uint32]},
}

func sha1Block(h []uint32, block []byte) {
	var w [80]uint32
	for t := range 16 {
		w[t] = binary.BigEndian.Uint32(block[4*t:])
	}
	for t := 16; t < 80; t++ {
		w[t] = bits.RotateLeft32(w[t-3]^w[t-8]^w[t-14]^w[t-16], 1)
	}

	a, b, c, d, e := h[0], h[1], h[2], h[3], h[4]
	for t := range 80 {
		stage := &sha1Stages[t/20]
		tmp := bits.RotateLeft32(a, 5) + stage.f(b, c, d) + e + stage.k + w[t]
		a, b, c, d, e = tmp, a, bits.RotateLeft32(b, 30), c, d
	}

	h[0] += a
	h[1] += b
	h[2] += c
	h[3] += d
	h[4] += e
}
