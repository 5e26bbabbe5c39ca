// Package sponge implements the sponge construction of FIPS 202, section 4, over an arbitrary 1600-bit permutation and
// padding rule.
package sponge

import (
	"errors"
	"fmt"

	"github.com/codahale/bitsponge/internal/bitarray"
)

// Width is the width b of the permutations the sponge drives, in bits.
const Width = 1600

var (
	// ErrInvalidRate is returned when the rate is not in (0, Width).
	ErrInvalidRate = errors.New("bitsponge/sponge: invalid rate")

	// ErrInvalidOutputLength is returned when the requested output length is negative.
	ErrInvalidOutputLength = errors.New("bitsponge/sponge: invalid output length")

	// ErrInvalidPadding is returned when a padding rule does not pad the input to a multiple of the rate.
	ErrInvalidPadding = errors.New("bitsponge/sponge: padding does not align input with rate")

	// ErrInvalidPermutation is returned when a permutation does not return Width bits.
	ErrInvalidPermutation = errors.New("bitsponge/sponge: permutation returned wrong number of bits")
)

// A Permutation maps a Width-bit string to another Width-bit string. It must not modify its argument.
type Permutation func(s bitarray.Bits) (bitarray.Bits, error)

// A Padding returns the bits to append to an m-bit input to make its length a multiple of the rate x.
type Padding func(x, m int) bitarray.Bits

// Sponge absorbs input into a zeroed Width-bit state, rate bits at a time, and squeezes outLen bits of output.
//
// Absorbing pads input with pad(rate, len(input)) and, for each rate-bit block, XORs the block into the first rate
// bits of the state and then applies f. Squeezing repeatedly appends the first rate bits of the state to the output,
// applying f between blocks, until outLen bits are available.
//
// input is not modified. Errors from f are returned unchanged.
func Sponge(f Permutation, pad Padding, rate int, input bitarray.Bits, outLen int) (bitarray.Bits, error) {
	if rate <= 0 || rate >= Width {
		return nil, fmt.Errorf("%w: %d", ErrInvalidRate, rate)
	}

	if outLen < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidOutputLength, outLen)
	}

	p := append(input.Clone(), pad(rate, len(input))...)
	if len(p)%rate != 0 {
		return nil, fmt.Errorf("%w: %d bits at rate %d", ErrInvalidPadding, len(p), rate)
	}

	var err error
	s := bitarray.Zeros(Width)

	// Absorb full rate blocks. XORing a block into the rate is the same as XORing in the block extended with
	// Width-rate zero bits.
	for ; len(p) > 0; p = p[rate:] {
		bitarray.XOR(s[:rate], s[:rate], p[:rate])
		if s, err = apply(f, s); err != nil {
			return nil, err
		}
	}

	// Squeeze output.
	z := make(bitarray.Bits, 0, outLen+rate)
	for {
		z = append(z, s[:rate]...)
		if len(z) >= outLen {
			return z[:outLen], nil
		}

		if s, err = apply(f, s); err != nil {
			return nil, err
		}
	}
}

func apply(f Permutation, s bitarray.Bits) (bitarray.Bits, error) {
	out, err := f(s)
	if err != nil {
		return nil, err
	}

	if len(out) != Width {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPermutation, len(out))
	}
	return out, nil
}
