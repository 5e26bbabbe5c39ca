package keccak

// RC returns bit t of the output of the Keccak round constant LFSR, x^8 + x^6 + x^5 + x^4 + 1 over GF(2), seeded with
// R = 10000000. The sequence has period 255, so RC(t) == RC(t mod 255) for every integer t.
func RC(t int) bool {
	t = mod(t, 255)
	if t == 0 {
		return true
	}

	// r[8] is scratch for the bit shifted out of the 8-bit register.
	var r [9]bool
	r[0] = true
	for range t {
		copy(r[1:], r[:8]) // R = 0 || R
		r[0] = r[8]
		r[4] = r[4] != r[8]
		r[5] = r[5] != r[8]
		r[6] = r[6] != r[8]
	}
	return r[0]
}

// LaneConstant returns the w-bit value Iota XORs into lane (0, 0) in round ir, with bit z of the lane as bit z of the
// result. For w = 64 and ir = 0..23 these are the 24 Keccak-f[1600] round constants.
func LaneConstant(ir, w int) uint64 {
	var rc uint64
	for j := 0; j <= log2(w); j++ {
		if RC(j + 7*ir) {
			rc |= 1 << (1<<j - 1)
		}
	}
	return rc
}
