// Package turboshake implements TurboSHAKE128 and TurboSHAKE256 as specified in RFC 9861.
//
// TurboSHAKE is SHAKE with the permutation cut down to the last 12 rounds of Keccak-p[1600] and a caller-chosen
// domain separation byte in place of the fixed SHAKE suffix.
package turboshake

import (
	"errors"
	"fmt"
	"math/bits"
	"slices"

	"github.com/codahale/bitsponge/internal/bitarray"
	"github.com/codahale/bitsponge/internal/keccak"
	"github.com/codahale/bitsponge/internal/sponge"
)

const (
	// Rounds is the number of Keccak-p[1600] rounds TurboSHAKE applies per permutation.
	Rounds = 12

	// Capacity128 and Capacity256 are the capacities, in bits, of TurboSHAKE128 and TurboSHAKE256.
	Capacity128 = 256
	Capacity256 = 512
)

// ErrInvalidDomain is returned when the domain separation byte is outside [0x01, 0x7F].
var ErrInvalidDomain = errors.New("bitsponge/turboshake: domain separation byte must be in [0x01, 0x7F]")

// Sum returns outLen bytes of TurboSHAKE output for msg with domain separation byte ds at the given capacity.
func Sum(msg []byte, ds byte, capacity, outLen int) ([]byte, error) {
	if ds == 0 || ds > 0x7F {
		return nil, fmt.Errorf("%w: %#x", ErrInvalidDomain, ds)
	}

	if outLen < 0 {
		return nil, fmt.Errorf("%w: %d bytes", sponge.ErrInvalidOutputLength, outLen)
	}

	in := slices.Concat(bitarray.FromBytes(msg), Suffix(ds))
	out, err := sponge.Sponge(p1600, sponge.Pad10x1, keccak.Width-capacity, in, outLen*8)
	if err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// Suffix returns the domain separation bits encoded by ds: every bit below its highest set bit, least-significant
// first. The highest set bit is the first bit of pad10*1.
func Suffix(ds byte) bitarray.Bits {
	n := bits.Len8(ds) - 1
	if n < 0 {
		return bitarray.Bits{}
	}
	return bitarray.FromBytes([]byte{ds})[:n]
}

func p1600(b bitarray.Bits) (bitarray.Bits, error) {
	return keccak.Permute(b, Rounds)
}

var _ sponge.Permutation = p1600
