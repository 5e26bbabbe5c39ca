// Package bitsponge computes SHA-3 family digests with a bit-level reference implementation of the [Keccak] sponge
// construction as specified in [FIPS 202].
//
// Messages are turned into bit strings least-significant bit first, suffixed with a domain separation string, padded
// with pad10*1, and absorbed into a 1600-bit Keccak-f state at a rate of 1600 minus the capacity. Every step mapping
// operates on individual bits of a three-dimensional state, which makes bitsponge useful as an executable
// reference and for cross-checking optimized implementations. It is orders of magnitude slower than crypto/sha3
// and makes no attempt at constant-time execution.
//
// The same sponge also provides SHAKE, the reduced-round TurboSHAKE and KT128 functions of RFC 9861, and the cSHAKE
// and TupleHash functions of NIST SP 800-185.
//
// [Keccak]: https://keccak.team/keccak.html
// [FIPS 202]: https://nvlpubs.nist.gov/nistpubs/FIPS/NIST.FIPS.202.pdf
package bitsponge

import (
	"errors"

	"github.com/codahale/bitsponge/internal/sponge"
	"github.com/codahale/bitsponge/internal/turboshake"
)

// Capacities, in bits, of the four SHA-3 hash functions. A digest is half as long as its capacity.
const (
	Capacity224 = 448
	Capacity256 = 512
	Capacity384 = 768
	Capacity512 = 1024
)

// Capacities, in bits, of the two SHAKE extendable-output functions.
const (
	CapacitySHAKE128 = 256
	CapacitySHAKE256 = 512
)

var (
	// ErrInvalidCapacity is returned when a capacity is not a multiple of 16 in (0, 1600).
	ErrInvalidCapacity = errors.New("bitsponge: invalid capacity")

	// ErrInvalidOutputLength is returned when a negative output length is requested.
	ErrInvalidOutputLength = sponge.ErrInvalidOutputLength

	// ErrInvalidDomain is returned when a TurboSHAKE domain separation byte is outside [0x01, 0x7F].
	ErrInvalidDomain = turboshake.ErrInvalidDomain
)
