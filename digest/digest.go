// Package digest selects among the Merkle–Damgård hash functions and the bitsponge SHA-3 functions by a numeric
// algorithm identifier.
//
// Identifiers for the Merkle–Damgård functions are their digest sizes in bits (SHA-1 being 1). SHA-3 identifiers are
// 3,000,000 plus the sponge capacity in bits, so SHA3-256 is 3000512.
package digest

import (
	"errors"
	"fmt"
	"strings"

	"github.com/codahale/bitsponge"
	"github.com/codahale/bitsponge/internal/md"
)

// An Algorithm identifies a hash function.
type Algorithm int

// Supported algorithms.
const (
	SHA1     Algorithm = 1
	SHA256   Algorithm = 256
	SHA512   Algorithm = 512
	SHA3_224 Algorithm = sha3Base + bitsponge.Capacity224
	SHA3_256 Algorithm = sha3Base + bitsponge.Capacity256
	SHA3_384 Algorithm = sha3Base + bitsponge.Capacity384
	SHA3_512 Algorithm = sha3Base + bitsponge.Capacity512
)

const sha3Base = 3_000_000

// ErrUnsupported matches every *UnsupportedError with errors.Is.
var ErrUnsupported = errors.New("bitsponge/digest: unsupported algorithm")

// UnsupportedError is returned for an algorithm identifier that names no hash function.
type UnsupportedError struct {
	Algorithm Algorithm
	Err       error // the underlying cause, if any
}

func (e *UnsupportedError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("bitsponge/digest: unsupported algorithm %d: %v", int(e.Algorithm), e.Err)
	}
	return fmt.Sprintf("bitsponge/digest: unsupported algorithm %d", int(e.Algorithm))
}

func (e *UnsupportedError) Is(target error) bool {
	return target == ErrUnsupported //nolint:errorlint // sentinel identity
}

func (e *UnsupportedError) Unwrap() error {
	return e.Err
}

// SHA3 returns the identifier of the SHA-3 function with the given capacity in bits.
func SHA3(capacity int) Algorithm {
	return Algorithm(sha3Base + capacity)
}

// Parse returns the named algorithm. Names are those returned by String for the supported constants, compared
// without regard to case.
func Parse(name string) (Algorithm, error) {
	for _, a := range []Algorithm{SHA1, SHA256, SHA512, SHA3_224, SHA3_256, SHA3_384, SHA3_512} {
		if strings.EqualFold(a.String(), name) {
			return a, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupported, name)
}

// Sum returns the digest of message using algorithm a.
func Sum(a Algorithm, message []byte) ([]byte, error) {
	if h := a.merkleDamgard(); h != nil {
		return h.Sum(message), nil
	}

	if c, ok := a.capacity(); ok {
		d, err := bitsponge.Sum(message, c)
		if err != nil {
			return nil, &UnsupportedError{Algorithm: a, Err: err}
		}
		return d, nil
	}

	return nil, &UnsupportedError{Algorithm: a}
}

// Size returns the length in bytes of a's digests, or zero if a is not supported.
func (a Algorithm) Size() int {
	if h := a.merkleDamgard(); h != nil {
		return h.Size()
	}

	if c, ok := a.capacity(); ok && a.Available() {
		return c / 16
	}
	return 0
}

// Available reports whether a names a supported hash function.
func (a Algorithm) Available() bool {
	if a.merkleDamgard() != nil {
		return true
	}

	c, ok := a.capacity()
	return ok && c > 0 && c < 1600 && c%16 == 0
}

func (a Algorithm) String() string {
	switch a {
	case SHA1:
		return "SHA-1"
	case SHA256:
		return "SHA-256"
	case SHA512:
		return "SHA-512"
	case SHA3_224:
		return "SHA3-224"
	case SHA3_256:
		return "SHA3-256"
	case SHA3_384:
		return "SHA3-384"
	case SHA3_512:
		return "SHA3-512"
	}

	if c, ok := a.capacity(); ok && a.Available() {
		return fmt.Sprintf("Keccak[c=%d]", c)
	}
	return fmt.Sprintf("Algorithm(%d)", int(a))
}

func (a Algorithm) merkleDamgard() md.Hash {
	switch a {
	case SHA1:
		return md.SHA1
	case SHA256:
		return md.SHA256
	case SHA512:
		return md.SHA512
	default:
		return nil
	}
}

func (a Algorithm) capacity() (int, bool) {
	if a <= sha3Base {
		return 0, false
	}
	return int(a - sha3Base), true
}

var _ fmt.Stringer = Algorithm(0)
