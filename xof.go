package bitsponge

import (
	"github.com/codahale/bitsponge/internal/kt128"
	"github.com/codahale/bitsponge/internal/tuplehash"
	"github.com/codahale/bitsponge/internal/turboshake"
)

// SumTurboSHAKE returns n bytes of TurboSHAKE output for message with the domain separation byte domain, which must be
// in [0x01, 0x7F]. CapacitySHAKE128 gives TurboSHAKE128 and CapacitySHAKE256 gives TurboSHAKE256.
//
// TurboSHAKE uses the last 12 rounds of Keccak-p[1600] rather than all 24.
func SumTurboSHAKE(message []byte, domain byte, capacity, n int) ([]byte, error) {
	if err := checkCapacity(capacity); err != nil {
		return nil, err
	}
	return turboshake.Sum(message, domain, capacity, n)
}

// SumKT128 returns n bytes of KT128 (KangarooTwelve) output for message and the customization string.
//
// Messages longer than 8191 bytes are hashed as a tree of 8192-byte chunks, whose leaves are hashed concurrently.
func SumKT128(message, customization []byte, n int) ([]byte, error) {
	return kt128.Sum(message, customization, n)
}

// SumCSHAKE returns n bytes of cSHAKE output (NIST SP 800-185) for message at the given capacity, with the function
// name and customization string. With both empty, it is SumSHAKE.
func SumCSHAKE(message []byte, capacity int, function, customization []byte, n int) ([]byte, error) {
	if err := checkCapacity(capacity); err != nil {
		return nil, err
	}
	return tuplehash.CSHAKE(message, capacity, function, customization, n)
}

// SumTupleHash returns n bytes of TupleHash output (NIST SP 800-185) for the tuple at the given capacity:
// TupleHash128 at CapacitySHAKE128 and TupleHash256 at CapacitySHAKE256. Each element is length-prefixed, so the
// digest commits to how the tuple is split.
func SumTupleHash(tuple [][]byte, capacity int, customization []byte, n int) ([]byte, error) {
	if err := checkCapacity(capacity); err != nil {
		return nil, err
	}
	return tuplehash.Sum(tuple, capacity, customization, n)
}
