// Package kt128 implements KT128 (KangarooTwelve) as specified in RFC 9861.
//
// KT128 is a tree-hash eXtendable-Output Function (XOF) built on TurboSHAKE128. Inputs longer than one chunk are
// split into 8192-byte chunks; the chaining values of every chunk after the first are computed concurrently and
// absorbed into the final node.
package kt128

import (
	"runtime"

	"github.com/codahale/bitsponge/internal/turboshake"
	"golang.org/x/sync/errgroup"
)

const (
	// ChunkSize is the KT128 chunk size in bytes.
	ChunkSize = 8192

	cvSize   = 32 // Chain value size.
	singleDS = 0x07
	finalDS  = 0x06
	leafDS   = 0x0B
)

// Sum returns outLen bytes of KT128(msg, custom).
func Sum(msg, custom []byte, outLen int) ([]byte, error) {
	s := make([]byte, 0, len(msg)+len(custom)+9)
	s = append(s, msg...)
	s = append(s, custom...)
	s = append(s, lengthEncode(uint64(len(custom)))...)

	if len(s) <= ChunkSize {
		return turboshake.Sum(s, singleDS, turboshake.Capacity128, outLen)
	}

	cvs, err := leafCVs(s[ChunkSize:])
	if err != nil {
		return nil, err
	}

	n := len(cvs) / cvSize
	node := make([]byte, 0, ChunkSize+len(kt12Marker)+len(cvs)+11)
	node = append(node, s[:ChunkSize]...)
	node = append(node, kt12Marker[:]...)
	node = append(node, cvs...)
	node = append(node, lengthEncode(uint64(n))...)
	node = append(node, 0xFF, 0xFF)

	return turboshake.Sum(node, finalDS, turboshake.Capacity128, outLen)
}

// leafCVs returns the concatenated chain values TurboSHAKE128(chunk, 0x0B, 32) of each chunk of data, in order.
func leafCVs(data []byte) ([]byte, error) {
	n := (len(data) + ChunkSize - 1) / ChunkSize
	cvs := make([]byte, n*cvSize)

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := range n {
		chunk := data[i*ChunkSize : min((i+1)*ChunkSize, len(data))]
		g.Go(func() error {
			cv, err := turboshake.Sum(chunk, leafDS, turboshake.Capacity128, cvSize)
			if err != nil {
				return err
			}
			copy(cvs[i*cvSize:], cv)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return cvs, nil
}

// kt12Marker is the 8-byte KangarooTwelve marker written after S_0.
var kt12Marker = [8]byte{0x03, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00} //nolint:gochecknoglobals // these are constants

// lengthEncode encodes x as in KangarooTwelve: big-endian with no leading zeros,
// followed by a byte giving the length of the encoding.
func lengthEncode(x uint64) []byte {
	if x == 0 {
		return []byte{0x00}
	}

	n := 0
	for v := x; v > 0; v >>= 8 {
		n++
	}

	buf := make([]byte, n+1)
	for i := n - 1; i >= 0; i-- {
		buf[i] = byte(x)
		x >>= 8
	}
	buf[n] = byte(n)

	return buf
}
