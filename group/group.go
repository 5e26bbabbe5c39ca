// Package group hashes messages to Ristretto255 elements and scalars using 64-byte SHA3-512 digests as uniform input.
//
// Each input is bound to a domain separation string, which should be unique to the application and the purpose of
// the hash (e.g. "com.example.vrf.point").
package group

import (
	"encoding/binary"

	"github.com/codahale/bitsponge"
	"github.com/gtank/ristretto255"
)

// HashToElement maps the domain and message to a Ristretto255 element with the one-way map of RFC 9496, section 4.3.4.
func HashToElement(domain string, message []byte) *ristretto255.Element {
	d := uniform(domain, message)
	e, err := ristretto255.NewIdentityElement().SetUniformBytes(d[:])
	if err != nil {
		panic(err) // unreachable: d is always 64 bytes
	}
	return e
}

// HashToScalar maps the domain and message to a Ristretto255 scalar by reducing a 512-bit digest modulo the group
// order.
func HashToScalar(domain string, message []byte) *ristretto255.Scalar {
	d := uniform(domain, message)
	s, err := ristretto255.NewScalar().SetUniformBytes(d[:])
	if err != nil {
		panic(err) // unreachable: d is always 64 bytes
	}
	return s
}

// uniform returns SHA3-512(LEB128(len(domain)) || domain || message).
func uniform(domain string, message []byte) [64]byte {
	input := binary.AppendUvarint(nil, uint64(len(domain)))
	input = append(input, domain...)
	input = append(input, message...)
	return bitsponge.Sum512(input)
}
