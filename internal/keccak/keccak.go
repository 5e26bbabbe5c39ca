// Package keccak implements the Keccak-p family of permutations over an explicit three-dimensional bit state, as
// specified in FIPS 202, section 3.
//
// The state is kept as individual bits rather than packed 64-bit lanes so that every step mapping reads as its
// definition. It is a reference implementation, not a fast one.
package keccak

import (
	"errors"
	"fmt"
	"log/slog"
	"math/bits"

	"github.com/codahale/bitsponge/internal/bitarray"
)

var (
	// ErrInvalidLength is returned when a bit string cannot be encoded as a state, or when a state's lane width is not
	// one the permutation is defined for.
	ErrInvalidLength = errors.New("bitsponge/keccak: invalid length")

	// ErrInvalidRounds is returned when a round count is negative or exceeds the full round count for the lane width.
	ErrInvalidRounds = errors.New("bitsponge/keccak: invalid number of rounds")
)

// steps is the order in which a round applies the step mappings.
var steps = [...]struct { //nolint:gochecknoglobals // these are constants
	name string
	fn   func(a *State, ir int) *State
}{
	{"theta", func(a *State, _ int) *State { return Theta(a) }},
	{"rho", func(a *State, _ int) *State { return Rho(a) }},
	{"pi", func(a *State, _ int) *State { return Pi(a) }},
	{"chi", func(a *State, _ int) *State { return Chi(a) }},
	{"iota", Iota},
}

// Rounds returns 12+2ℓ, the number of rounds in Keccak-f for lanes of w = 2^ℓ bits.
func Rounds(w int) int {
	return 12 + 2*log2(w)
}

// F applies Keccak-f[25w], the full-round permutation, to s in place.
func F(s *State) error {
	return P(s, Rounds(s.w))
}

// P applies Keccak-p[25w, rounds] to s in place: the last rounds rounds of Keccak-f[25w], in increasing round index
// order. Fewer than the full number of rounds is useful for analysis and debugging, never for hashing.
func P(s *State, rounds int) error {
	return permute(s, rounds, nil)
}

// Trace is like P but logs the state after every step mapping of every round to log, at debug level.
func Trace(log *slog.Logger, s *State, rounds int) error {
	return permute(s, rounds, log)
}

// Permute encodes b as a state, applies Keccak-p[len(b), rounds], and returns the decoded result. b is not modified.
func Permute(b bitarray.Bits, rounds int) (bitarray.Bits, error) {
	s, err := Encode(b)
	if err != nil {
		return nil, err
	}

	if err := P(s, rounds); err != nil {
		return nil, err
	}
	return Decode(s), nil
}

// F1600 applies Keccak-f[1600] to a 1600-bit string and returns the result. b is not modified.
func F1600(b bitarray.Bits) (bitarray.Bits, error) {
	if len(b) != Width {
		return nil, fmt.Errorf("%w: Keccak-f[1600] requires %d bits, got %d", ErrInvalidLength, Width, len(b))
	}
	return Permute(b, Rounds(MaxLaneWidth))
}

func permute(s *State, rounds int, log *slog.Logger) error {
	if s.w < 1 || s.w > MaxLaneWidth || s.w&(s.w-1) != 0 {
		return fmt.Errorf("%w: unsupported lane width %d", ErrInvalidLength, s.w)
	}

	n := Rounds(s.w)
	if rounds < 0 || rounds > n {
		return fmt.Errorf("%w: %d (lane width %d allows 0..%d)", ErrInvalidRounds, rounds, s.w, n)
	}

	a := s
	for ir := n - rounds; ir < n; ir++ {
		for _, step := range steps {
			a = step.fn(a, ir)
			if log != nil {
				log.Debug("keccak step", "round", ir, "step", step.name, "state", a)
			}
		}
	}
	*s = *a
	return nil
}

// log2 returns ℓ such that 2^ℓ is the largest power of two no greater than w.
func log2(w int) int {
	return bits.Len(uint(w)) - 1 //nolint:gosec // lane widths are always positive
}
