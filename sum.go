package bitsponge

import (
	"fmt"
	"slices"

	"github.com/codahale/bitsponge/internal/bitarray"
	"github.com/codahale/bitsponge/internal/keccak"
	"github.com/codahale/bitsponge/internal/sponge"
)

// Domain separation suffixes appended to the message bits before padding.
var (
	sha3Suffix   = bitarray.Bits{false, true}             //nolint:gochecknoglobals // these are constants
	shakeSuffix  = bitarray.Bits{true, true, true, true} //nolint:gochecknoglobals // these are constants
	keccakSuffix = bitarray.Bits{}                       //nolint:gochecknoglobals // these are constants
)

// Sum returns the SHA-3 digest of message for the given capacity in bits. The digest is capacity/2 bits long.
//
// Capacity256 and Capacity512 give SHA3-256 and SHA3-512. Any multiple of 16 in (0, 1600) is accepted; other values
// return ErrInvalidCapacity.
func Sum(message []byte, capacity int) ([]byte, error) {
	return AppendSum(nil, message, capacity)
}

// AppendSum appends the SHA-3 digest of message for the given capacity to dst and returns the resulting slice.
func AppendSum(dst, message []byte, capacity int) ([]byte, error) {
	return appendSum(dst, message, sha3Suffix, capacity, capacity/2)
}

// SumKeccak returns the digest of message for the given capacity using the original Keccak submission's padding,
// without the SHA-3 domain separation suffix. At Capacity256 this is the Keccak-256 used by Ethereum.
func SumKeccak(message []byte, capacity int) ([]byte, error) {
	return appendSum(nil, message, keccakSuffix, capacity, capacity/2)
}

// SumSHAKE returns n bytes of SHAKE output for message at the given capacity: SHAKE128 at CapacitySHAKE128 and
// SHAKE256 at CapacitySHAKE256.
func SumSHAKE(message []byte, capacity, n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d bytes", ErrInvalidOutputLength, n)
	}
	return appendSum(nil, message, shakeSuffix, capacity, n*8)
}

// Sum224 returns the SHA3-224 digest of message.
func Sum224(message []byte) (digest [28]byte) {
	mustSum(digest[:], message, Capacity224)
	return digest
}

// Sum256 returns the SHA3-256 digest of message.
func Sum256(message []byte) (digest [32]byte) {
	mustSum(digest[:], message, Capacity256)
	return digest
}

// Sum384 returns the SHA3-384 digest of message.
func Sum384(message []byte) (digest [48]byte) {
	mustSum(digest[:], message, Capacity384)
	return digest
}

// Sum512 returns the SHA3-512 digest of message.
func Sum512(message []byte) (digest [64]byte) {
	mustSum(digest[:], message, Capacity512)
	return digest
}

func mustSum(digest, message []byte, capacity int) {
	out, err := appendSum(nil, message, sha3Suffix, capacity, capacity/2)
	if err != nil {
		panic(err)
	}
	copy(digest, out)
}

// appendSum runs the Keccak[capacity] sponge over message||suffix and appends outBits bits of output to dst.
func appendSum(dst, message []byte, suffix bitarray.Bits, capacity, outBits int) ([]byte, error) {
	if err := checkCapacity(capacity); err != nil {
		return nil, err
	}

	in := slices.Concat(bitarray.FromBytes(message), suffix)
	out, err := sponge.Sponge(keccak.F1600, sponge.Pad10x1, keccak.Width-capacity, in, outBits)
	if err != nil {
		return nil, err
	}
	return out.AppendTo(dst), nil
}

func checkCapacity(capacity int) error {
	if capacity <= 0 || capacity >= keccak.Width || capacity%16 != 0 {
		return fmt.Errorf("%w: %d bits", ErrInvalidCapacity, capacity)
	}
	return nil
}
