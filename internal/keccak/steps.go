package keccak

// rhoOffsets holds, for each lane (x, y), the ρ rotation (t+1)(t+2)/2 where t is the lane's position in the walk
// (x, y) ← (y, 2x+3y) starting at (1, 0). Lane (0, 0) is never visited and keeps offset zero.
var rhoOffsets = func() (offsets [5][5]int) { //nolint:gochecknoglobals // derived once, never mutated
	x, y := 1, 0
	for t := range 24 {
		offsets[x][y] = (t + 1) * (t + 2) / 2
		x, y = y, (2*x+3*y)%5
	}
	return offsets
}()

// Theta XORs each bit with the parities of two neighbouring columns.
func Theta(a *State) *State {
	w := a.w

	var c, d [5][MaxLaneWidth]bool
	for x := range 5 {
		for z := range w {
			c[x][z] = a.Get(x, 0, z) != a.Get(x, 1, z) != a.Get(x, 2, z) != a.Get(x, 3, z) != a.Get(x, 4, z)
		}
	}
	for x := range 5 {
		for z := range w {
			d[x][z] = c[mod(x-1, 5)][z] != c[mod(x+1, 5)][mod(z-1, w)]
		}
	}

	out := a.empty()
	for x := range 5 {
		for y := range 5 {
			for z := range w {
				out.Set(x, y, z, a.Get(x, y, z) != d[x][z])
			}
		}
	}
	return out
}

// Rho rotates every lane but (0, 0) along z by its triangular-number offset.
func Rho(a *State) *State {
	out := a.empty()
	for x := range 5 {
		for y := range 5 {
			r := rhoOffsets[x][y]
			for z := range a.w {
				out.Set(x, y, z, a.Get(x, y, z-r))
			}
		}
	}
	return out
}

// Pi rearranges lanes: the output lane at (x, y) is the input lane at (x+3y, x).
func Pi(a *State) *State {
	out := a.empty()
	for x := range 5 {
		for y := range 5 {
			for z := range a.w {
				out.Set(x, y, z, a.Get(x+3*y, x, z))
			}
		}
	}
	return out
}

// PiInverse undoes Pi: the output lane at (x, y) is the input lane at (y, 2(x-y)).
func PiInverse(a *State) *State {
	out := a.empty()
	for x := range 5 {
		for y := range 5 {
			for z := range a.w {
				out.Set(x, y, z, a.Get(y, 2*(x-y), z))
			}
		}
	}
	return out
}

// Chi is the non-linear step: each bit is XORed with (NOT the next bit in its row) AND the one after that.
func Chi(a *State) *State {
	out := a.empty()
	for x := range 5 {
		for y := range 5 {
			for z := range a.w {
				out.Set(x, y, z, a.Get(x, y, z) != (!a.Get(x+1, y, z) && a.Get(x+2, y, z)))
			}
		}
	}
	return out
}

// Iota XORs the round constant for round index ir into lane (0, 0).
func Iota(a *State, ir int) *State {
	out := *a
	l := log2(a.w)
	for j := 0; j <= l; j++ {
		out.Flip(0, 0, 1<<j-1, RC(j+7*ir))
	}
	return &out
}
