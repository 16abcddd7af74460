// Package sha1 implements the SHA-1 digest algorithm (FIPS 180-4).
//
// SHA-1 is cryptographically broken and should not be used where collision
// resistance matters.
package sha1

import (
	"encoding/binary"
	"hash"
	"math/bits"

	"github.com/forcebit/cryptohash-go/pkg/block"
)

const (
	// Size is the size of a SHA-1 digest in bytes.
	Size = 20
	// BlockSize is the SHA-1 block size in bytes.
	BlockSize = 64
)

type digest struct {
	s [5]uint32
	e block.Engine
}

// New returns a new hash.Hash computing the SHA-1 digest.
func New() hash.Hash {
	d := new(digest)
	d.Reset()
	return d
}

// Sum computes the SHA-1 digest of data in one call.
func Sum(data []byte) [Size]byte {
	var d digest
	d.Reset()
	d.e.Write(&d, data)
	return d.checkSum()
}

func (d *digest) Reset() {
	d.s = [5]uint32{0x67452301, 0xefcdab89, 0x98badcfe, 0x10325476, 0xc3d2e1f0}
	d.e.Reset()
}

func (d *digest) Size() int { return Size }

func (d *digest) BlockSize() int { return BlockSize }

func (d *digest) Write(p []byte) (int, error) {
	d.e.Write(d, p)
	return len(p), nil
}

func (d *digest) Sum(in []byte) []byte {
	dd := *d
	sum := dd.checkSum()
	return append(in, sum[:]...)
}

func (d *digest) checkSum() [Size]byte {
	d.e.FinishLength(d, 0x80, 8, binary.BigEndian)
	var out [Size]byte
	for i, v := range d.s {
		binary.BigEndian.PutUint32(out[i*4:], v)
	}
	return out
}

func (d *digest) Compress(p []byte) {
	var w [80]uint32
	for i := 0; i < 16; i++ {
		w[i] = binary.BigEndian.Uint32(p[i*4:])
	}
	for i := 16; i < 80; i++ {
		w[i] = bits.RotateLeft32(w[i-3]^w[i-8]^w[i-14]^w[i-16], 1)
	}

	a, b, c, dd, e := d.s[0], d.s[1], d.s[2], d.s[3], d.s[4]

	for i := 0; i < 80; i++ {
		var f, k uint32
		switch {
		case i < 20:
			f = (b & c) | (^b & dd)
			k = 0x5a827999
		case i < 40:
			f = b ^ c ^ dd
			k = 0x6ed9eba1
		case i < 60:
			f = (b & c) | (b & dd) | (c & dd)
			k = 0x8f1bbcdc
		default:
			f = b ^ c ^ dd
			k = 0xca62c1d6
		}
		t := bits.RotateLeft32(a, 5) + f + e + k + w[i]
		e = dd
		dd = c
		c = bits.RotateLeft32(b, 30)
		b = a
		a = t
	}

	d.s[0] += a
	d.s[1] += b
	d.s[2] += c
	d.s[3] += dd
	d.s[4] += e
}
