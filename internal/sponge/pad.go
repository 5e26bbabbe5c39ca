package sponge

import "github.com/codahale/bitsponge/internal/bitarray"

// Pad10x1 is the multi-rate padding rule pad10*1: a one bit, j zero bits, and a one bit, with j = (-m-2) mod x chosen
// so that m+j+2 is a multiple of x. The padding is always at least two bits long.
//
// Pad10x1 panics if x is not positive or m is negative.
func Pad10x1(x, m int) bitarray.Bits {
	if x <= 0 {
		panic("bitsponge/sponge: pad10*1 rate must be positive")
	}

	if m < 0 {
		panic("bitsponge/sponge: pad10*1 input length must not be negative")
	}

	j := (-m - 2) % x
	if j < 0 {
		j += x
	}

	p := bitarray.Zeros(j + 2)
	p[0], p[j+1] = true, true
	return p
}

var _ Padding = Pad10x1
