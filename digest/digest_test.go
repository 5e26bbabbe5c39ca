package digest_test

import (
	"crypto/sha3"
	"encoding/hex"
	"errors"
	"testing"

	"github.com/codahale/bitsponge"
	"github.com/codahale/bitsponge/digest"
)

func TestSum(t *testing.T) {
	for _, tc := range []struct {
		alg  digest.Algorithm
		want string
	}{
		{digest.SHA1, "aaf4c61ddcc5e8a2dabede0f3b482cd9aea9434d"},
		{digest.SHA256, "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824"},
		{digest.SHA512, "9b71d224bd62f3785d96d46ad3ea3d73319bfbc2890caadae2dff72519673ca7" +
			"2323c3d99ba5c11d7c7acc6e14b8c5da0c4663475c2e5c3adef46f73bcdec043"},
		{digest.SHA3_256, "3338be694f50c5f338814986cdf0686453a888b84f424d792af4b9202398f392"},
	} {
		t.Run(tc.alg.String(), func(t *testing.T) {
			d, err := digest.Sum(tc.alg, []byte("hello"))
			if err != nil {
				t.Fatal(err)
			}

			if got := hex.EncodeToString(d); got != tc.want {
				t.Errorf("Sum = %s, want %s", got, tc.want)
			}

			if got, want := len(d), tc.alg.Size(); got != want {
				t.Errorf("len(Sum) = %d, Size() = %d", got, want)
			}
		})
	}
}

func TestSum_SHA3(t *testing.T) {
	msg := []byte("dispatch")

	d224, _ := digest.Sum(digest.SHA3_224, msg)
	if got, want := [28]byte(d224), sha3.Sum224(msg); got != want {
		t.Errorf("SHA3-224 = %x, want %x", got, want)
	}

	d384, _ := digest.Sum(digest.SHA3_384, msg)
	if got, want := [48]byte(d384), sha3.Sum384(msg); got != want {
		t.Errorf("SHA3-384 = %x, want %x", got, want)
	}

	d512, _ := digest.Sum(digest.SHA3(bitsponge.Capacity512), msg)
	if got, want := [64]byte(d512), sha3.Sum512(msg); got != want {
		t.Errorf("SHA3-512 = %x, want %x", got, want)
	}
}

func TestSum_Unsupported(t *testing.T) {
	for _, alg := range []digest.Algorithm{0, -1, 2, 160, 384, 3_000_000, digest.SHA3(100), digest.SHA3(1600)} {
		t.Run(alg.String(), func(t *testing.T) {
			d, err := digest.Sum(alg, []byte("hello"))
			if d != nil {
				t.Errorf("Sum = %x, want nil", d)
			}

			if !errors.Is(err, digest.ErrUnsupported) {
				t.Errorf("err = %v, want = %v", err, digest.ErrUnsupported)
			}

			var unsupported *digest.UnsupportedError
			if !errors.As(err, &unsupported) {
				t.Fatalf("err = %T, want *UnsupportedError", err)
			}

			if got, want := unsupported.Algorithm, alg; got != want {
				t.Errorf("Algorithm = %d, want %d", got, want)
			}

			if alg.Available() || alg.Size() != 0 {
				t.Errorf("Available() = %v, Size() = %d", alg.Available(), alg.Size())
			}
		})
	}
}

func TestSum_UnsupportedCapacityCause(t *testing.T) {
	_, err := digest.Sum(digest.SHA3(100), nil)
	if !errors.Is(err, bitsponge.ErrInvalidCapacity) {
		t.Errorf("err = %v, want it to wrap %v", err, bitsponge.ErrInvalidCapacity)
	}
}

func TestAlgorithm_String(t *testing.T) {
	for alg, want := range map[digest.Algorithm]string{
		digest.SHA1:     "SHA-1",
		digest.SHA3_512: "SHA3-512",
		digest.SHA3(32): "Keccak[c=32]",
		digest.SHA3(33): "Algorithm(3000033)",
		7:               "Algorithm(7)",
	} {
		if got := alg.String(); got != want {
			t.Errorf("String() = %q, want %q", got, want)
		}
	}
}

func TestAlgorithm_Size(t *testing.T) {
	for alg, want := range map[digest.Algorithm]int{
		digest.SHA1:     20,
		digest.SHA256:   32,
		digest.SHA512:   64,
		digest.SHA3_224: 28,
		digest.SHA3_256: 32,
		digest.SHA3_384: 48,
		digest.SHA3_512: 64,
		digest.SHA3(32): 2,
	} {
		if got := alg.Size(); got != want {
			t.Errorf("%v.Size() = %d, want %d", alg, got, want)
		}
	}
}

func TestParse(t *testing.T) {
	for name, want := range map[string]digest.Algorithm{
		"SHA-1":    digest.SHA1,
		"sha-256":  digest.SHA256,
		"SHA3-384": digest.SHA3_384,
		"sha3-512": digest.SHA3_512,
	} {
		if got, err := digest.Parse(name); err != nil || got != want {
			t.Errorf("Parse(%q) = %v, %v, want %v", name, got, err, want)
		}
	}

	for _, name := range []string{"", "md5", "Keccak[c=32]"} {
		if _, err := digest.Parse(name); !errors.Is(err, digest.ErrUnsupported) {
			t.Errorf("Parse(%q) err = %v, want = %v", name, err, digest.ErrUnsupported)
		}
	}
}
