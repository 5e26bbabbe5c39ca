package bitsponge_test

import (
	"bytes"
	"crypto/sha3"
	"encoding/hex"
	"errors"
	"testing"

	"github.com/codahale/bitsponge"
)

func TestSumTurboSHAKE(t *testing.T) {
	t.Run("TurboSHAKE128", func(t *testing.T) {
		out, err := bitsponge.SumTurboSHAKE(nil, 0x1F, bitsponge.CapacitySHAKE128, 32)
		if err != nil {
			t.Fatal(err)
		}

		if got, want := hex.EncodeToString(out), "1e415f1c5983aff2169217277d17bb538cd945a397ddec541f1ce41af2c1b74c"; got != want {
			t.Errorf("SumTurboSHAKE = %s, want %s", got, want)
		}
	})

	t.Run("invalid domain", func(t *testing.T) {
		if _, err := bitsponge.SumTurboSHAKE(nil, 0x80, bitsponge.CapacitySHAKE128, 32); !errors.Is(err, bitsponge.ErrInvalidDomain) {
			t.Errorf("err = %v, want = %v", err, bitsponge.ErrInvalidDomain)
		}
	})

	t.Run("invalid capacity", func(t *testing.T) {
		if _, err := bitsponge.SumTurboSHAKE(nil, 0x1F, 0, 32); !errors.Is(err, bitsponge.ErrInvalidCapacity) {
			t.Errorf("err = %v, want = %v", err, bitsponge.ErrInvalidCapacity)
		}
	})

	t.Run("negative output", func(t *testing.T) {
		if _, err := bitsponge.SumTurboSHAKE(nil, 0x1F, bitsponge.CapacitySHAKE128, -1); !errors.Is(err, bitsponge.ErrInvalidOutputLength) {
			t.Errorf("err = %v, want = %v", err, bitsponge.ErrInvalidOutputLength)
		}
	})
}

func TestSumKT128(t *testing.T) {
	out, err := bitsponge.SumKT128(nil, nil, 32)
	if err != nil {
		t.Fatal(err)
	}

	if got, want := hex.EncodeToString(out), "1ac2d450fc3b4205d19da7bfca1b37513c0803577ac7167f06fe2ce1f0ef39e5"; got != want {
		t.Errorf("SumKT128 = %s, want %s", got, want)
	}

	if _, err := bitsponge.SumKT128(nil, nil, -1); !errors.Is(err, bitsponge.ErrInvalidOutputLength) {
		t.Errorf("err = %v, want = %v", err, bitsponge.ErrInvalidOutputLength)
	}
}

func TestSumCSHAKE(t *testing.T) {
	t.Run("matches SHAKE when uncustomized", func(t *testing.T) {
		got, err := bitsponge.SumCSHAKE([]byte("msg"), bitsponge.CapacitySHAKE256, nil, nil, 48)
		if err != nil {
			t.Fatal(err)
		}

		if want := sha3.SumSHAKE256([]byte("msg"), 48); !bytes.Equal(got, want) {
			t.Errorf("SumCSHAKE = %x, want %x", got, want)
		}
	})

	t.Run("customized", func(t *testing.T) {
		got, err := bitsponge.SumCSHAKE([]byte("msg"), bitsponge.CapacitySHAKE128, []byte("fn"), []byte("app"), 32)
		if err != nil {
			t.Fatal(err)
		}

		h := sha3.NewCSHAKE128([]byte("fn"), []byte("app"))
		_, _ = h.Write([]byte("msg"))
		want := make([]byte, 32)
		_, _ = h.Read(want)

		if !bytes.Equal(got, want) {
			t.Errorf("SumCSHAKE = %x, want %x", got, want)
		}
	})

	t.Run("invalid capacity", func(t *testing.T) {
		if _, err := bitsponge.SumCSHAKE(nil, 1600, nil, nil, 32); !errors.Is(err, bitsponge.ErrInvalidCapacity) {
			t.Errorf("err = %v, want = %v", err, bitsponge.ErrInvalidCapacity)
		}
	})
}

func TestSumTupleHash(t *testing.T) {
	out, err := bitsponge.SumTupleHash([][]byte{{0x00, 0x01, 0x02}, {0x10, 0x11, 0x12, 0x13, 0x14, 0x15}},
		bitsponge.CapacitySHAKE128, nil, 32)
	if err != nil {
		t.Fatal(err)
	}

	if got, want := hex.EncodeToString(out), "c5d8786c1afb9b82111ab34b65b2c0048fa64e6d48e263264ce1707d3ffc8ed1"; got != want {
		t.Errorf("SumTupleHash = %s, want %s", got, want)
	}

	if _, err := bitsponge.SumTupleHash(nil, 24, nil, 32); !errors.Is(err, bitsponge.ErrInvalidCapacity) {
		t.Errorf("err = %v, want = %v", err, bitsponge.ErrInvalidCapacity)
	}
}
