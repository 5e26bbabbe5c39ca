package turboshake_test

import (
	"bytes"
	"encoding/hex"
	"errors"
	"testing"

	"github.com/codahale/bitsponge/internal/bitarray"
	"github.com/codahale/bitsponge/internal/sponge"
	"github.com/codahale/bitsponge/internal/turboshake"
)

func TestSum(t *testing.T) {
	for _, tc := range []struct {
		name     string
		capacity int
		outLen   int
		want     string
	}{
		{
			name:     "TurboSHAKE128",
			capacity: turboshake.Capacity128,
			outLen:   32,
			want:     "1e415f1c5983aff2169217277d17bb538cd945a397ddec541f1ce41af2c1b74c",
		},
		{
			name:     "TurboSHAKE256",
			capacity: turboshake.Capacity256,
			outLen:   64,
			want: "367a329dafea871c7802ec67f905ae13c57695dc2c6663c61035f59a18f8e7db" +
				"11edc0e12e91ea60eb6b32df06dd7f002fbafabb6e13ec1cc20d995547600db0",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			out, err := turboshake.Sum(nil, 0x1F, tc.capacity, tc.outLen)
			if err != nil {
				t.Fatal(err)
			}

			if got := hex.EncodeToString(out); got != tc.want {
				t.Errorf("Sum = %s, want %s", got, tc.want)
			}
		})
	}
}

func TestSum_Prefix(t *testing.T) {
	// 200 bytes forces a second squeeze at the TurboSHAKE128 rate.
	short, err := turboshake.Sum([]byte("prefix"), 0x1F, turboshake.Capacity128, 16)
	if err != nil {
		t.Fatal(err)
	}

	long, err := turboshake.Sum([]byte("prefix"), 0x1F, turboshake.Capacity128, 200)
	if err != nil {
		t.Fatal(err)
	}

	if !bytes.Equal(short, long[:16]) {
		t.Errorf("Sum(16) = %x, want prefix of %x", short, long)
	}
}

func TestSum_DomainSeparation(t *testing.T) {
	a, _ := turboshake.Sum([]byte("msg"), 0x01, turboshake.Capacity128, 32)
	b, _ := turboshake.Sum([]byte("msg"), 0x02, turboshake.Capacity128, 32)
	if bytes.Equal(a, b) {
		t.Errorf("domains 0x01 and 0x02 both produced %x", a)
	}
}

func TestSum_InvalidDomain(t *testing.T) {
	for _, ds := range []byte{0x00, 0x80, 0xFF} {
		if _, err := turboshake.Sum(nil, ds, turboshake.Capacity128, 32); !errors.Is(err, turboshake.ErrInvalidDomain) {
			t.Errorf("Sum(ds=%#x) err = %v, want = %v", ds, err, turboshake.ErrInvalidDomain)
		}
	}
}

func TestSum_InvalidOutputLength(t *testing.T) {
	if _, err := turboshake.Sum(nil, 0x1F, turboshake.Capacity128, -1); !errors.Is(err, sponge.ErrInvalidOutputLength) {
		t.Errorf("err = %v, want = %v", err, sponge.ErrInvalidOutputLength)
	}
}

func TestSuffix(t *testing.T) {
	for ds, want := range map[byte]bitarray.Bits{
		0x01: {},
		0x06: {false, true},
		0x07: {true, true},
		0x0B: {true, true, false},
		0x1F: {true, true, true, true},
	} {
		if got := turboshake.Suffix(ds); !got.Equal(want) {
			t.Errorf("Suffix(%#x) = %v, want %v", ds, got, want)
		}
	}
}

func BenchmarkSum(b *testing.B) {
	msg := make([]byte, 1024)
	b.ReportAllocs()
	b.SetBytes(int64(len(msg)))
	for b.Loop() {
		_, _ = turboshake.Sum(msg, 0x1F, turboshake.Capacity128, 32)
	}
}
