package keccak

import (
	"fmt"

	"github.com/codahale/bitsponge/internal/bitarray"
)

const (
	// Width is the number of bits in the largest supported state, that of Keccak-f[1600].
	Width = 1600

	// MaxLaneWidth is the lane width w of Keccak-f[1600].
	MaxLaneWidth = Width / 25
)

// A State is the three-dimensional Keccak state: a 5x5 array of lanes, each w bits long. Bit (x, y, z) lives at
// offset x*5*w + y*w + z of a fixed 1600-bit array, of which the first 25*w bits are in use.
//
// Every accessor reduces x and y modulo 5 and z modulo w, so callers may pass x-1, z-1, and the like directly.
type State struct {
	w    int
	bits [Width]bool
}

// NewState returns a zeroed state with lanes of w bits. It returns ErrInvalidLength if 25*w is not in [25, 1600].
func NewState(w int) (*State, error) {
	if w < 1 || w > MaxLaneWidth {
		return nil, fmt.Errorf("%w: lane width %d", ErrInvalidLength, w)
	}
	return &State{w: w}, nil
}

// Encode maps a flat bit string onto a new state, placing bits[w*(5y+x)+z] at (x, y, z) where w = len(bits)/25.
//
// It returns ErrInvalidLength unless len(bits) is a positive multiple of 25 no greater than Width.
func Encode(bits bitarray.Bits) (*State, error) {
	if len(bits) == 0 || len(bits)%25 != 0 || len(bits) > Width {
		return nil, fmt.Errorf("%w: %d bits", ErrInvalidLength, len(bits))
	}

	s, err := NewState(len(bits) / 25)
	if err != nil {
		return nil, err
	}

	w := s.w
	for x := range 5 {
		for y := range 5 {
			for z := range w {
				s.Set(x, y, z, bits[w*(5*y+x)+z])
			}
		}
	}
	return s, nil
}

// Decode is the inverse of Encode: the five lanes of each plane, planes in y order, lanes in x order, each lane in z
// order.
func Decode(s *State) bitarray.Bits {
	out := make(bitarray.Bits, 0, 25*s.w)
	for y := range 5 {
		for x := range 5 {
			out = append(out, s.Lane(x, y)...)
		}
	}
	return out
}

// LaneWidth returns w, the number of bits in each lane.
func (s *State) LaneWidth() int {
	return s.w
}

// Get returns the bit at (x, y, z).
func (s *State) Get(x, y, z int) bool {
	return s.bits[s.index(x, y, z)]
}

// Set sets the bit at (x, y, z) to v.
func (s *State) Set(x, y, z int, v bool) {
	s.bits[s.index(x, y, z)] = v
}

// Flip XORs the bit at (x, y, z) with v.
func (s *State) Flip(x, y, z int, v bool) {
	s.bits[s.index(x, y, z)] = s.bits[s.index(x, y, z)] != v
}

// Lane returns a copy of the w bits at (x, y).
func (s *State) Lane(x, y int) bitarray.Bits {
	i := s.index(x, y, 0)
	return bitarray.Bits(s.bits[i : i+s.w]).Clone()
}

// Row returns the five bits at (·, y, z), in x order.
func (s *State) Row(y, z int) [5]bool {
	var r [5]bool
	for x := range r {
		r[x] = s.Get(x, y, z)
	}
	return r
}

// Column returns the five bits at (x, ·, z), in y order.
func (s *State) Column(x, z int) [5]bool {
	var c [5]bool
	for y := range c {
		c[y] = s.Get(x, y, z)
	}
	return c
}

// Plane returns the five lanes sharing y, in x order.
func (s *State) Plane(y int) [5]bitarray.Bits {
	var p [5]bitarray.Bits
	for x := range p {
		p[x] = s.Lane(x, y)
	}
	return p
}

// Sheet returns the five lanes sharing x, in y order.
func (s *State) Sheet(x int) [5]bitarray.Bits {
	var p [5]bitarray.Bits
	for y := range p {
		p[y] = s.Lane(x, y)
	}
	return p
}

// Slice returns the 25 bits sharing z, indexed [x][y].
func (s *State) Slice(z int) [5][5]bool {
	var sl [5][5]bool
	for x := range 5 {
		for y := range 5 {
			sl[x][y] = s.Get(x, y, z)
		}
	}
	return sl
}

// Equal reports whether s and o have the same lane width and contents.
func (s *State) Equal(o *State) bool {
	return s.w == o.w && s.bits == o.bits
}

// String renders the state's encoded bit string as space-separated hex bytes.
func (s *State) String() string {
	return Decode(s).String()
}

// empty returns a zeroed state with the same lane width as s.
func (s *State) empty() *State {
	return &State{w: s.w}
}

func (s *State) index(x, y, z int) int {
	return mod(x, 5)*5*s.w + mod(y, 5)*s.w + mod(z, s.w)
}

// mod returns the non-negative residue of a modulo n.
func mod(a, n int) int {
	a %= n
	if a < 0 {
		a += n
	}
	return a
}

var _ fmt.Stringer = (*State)(nil)
