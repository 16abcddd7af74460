// Package md5 implements the MD5 digest algorithm (RFC 1321).
//
// MD5 is cryptographically broken and is provided only because file formats
// and protocols still depend on it as a checksum.
package md5

import (
	"encoding/binary"
	"hash"
	"math/bits"

	"github.com/forcebit/cryptohash-go/pkg/block"
)

const (
	// Size is the size of an MD5 digest in bytes.
	Size = 16
	// BlockSize is the MD5 block size in bytes.
	BlockSize = 64
)

type digest struct {
	s [4]uint32
	e block.Engine
}

// New returns a new hash.Hash computing the MD5 digest. The returned state
// is a plain value internally; Sum finalizes a copy, so writes may continue
// after reading an intermediate digest.
func New() hash.Hash {
	d := new(digest)
	d.Reset()
	return d
}

// Sum computes the MD5 digest of data in one call.
func Sum(data []byte) [Size]byte {
	var d digest
	d.Reset()
	d.e.Write(&d, data)
	return d.checkSum()
}

func (d *digest) Reset() {
	d.s = [4]uint32{0x67452301, 0xefcdab89, 0x98badcfe, 0x10325476}
	d.e.Reset()
}

func (d *digest) Size() int { return Size }

func (d *digest) BlockSize() int { return BlockSize }

func (d *digest) Write(p []byte) (int, error) {
	d.e.Write(d, p)
	return len(p), nil
}

func (d *digest) Sum(in []byte) []byte {
	dd := *d // finalize a copy so the caller's stream can continue
	sum := dd.checkSum()
	return append(in, sum[:]...)
}

func (d *digest) checkSum() [Size]byte {
	d.e.FinishLength(d, 0x80, 8, binary.LittleEndian)
	var out [Size]byte
	for i, v := range d.s {
		binary.LittleEndian.PutUint32(out[i*4:], v)
	}
	return out
}

// shift amounts per round, four quartiles of four repeating values.
var shifts = [64]int{
	7, 12, 17, 22, 7, 12, 17, 22, 7, 12, 17, 22, 7, 12, 17, 22,
	5, 9, 14, 20, 5, 9, 14, 20, 5, 9, 14, 20, 5, 9, 14, 20,
	4, 11, 16, 23, 4, 11, 16, 23, 4, 11, 16, 23, 4, 11, 16, 23,
	6, 10, 15, 21, 6, 10, 15, 21, 6, 10, 15, 21, 6, 10, 15, 21,
}

// additive constants, floor(2^32 * abs(sin(i+1))).
var tab = [64]uint32{
	0xd76aa478, 0xe8c7b756, 0x242070db, 0xc1bdceee,
	0xf57c0faf, 0x4787c62a, 0xa8304613, 0xfd469501,
	0x698098d8, 0x8b44f7af, 0xffff5bb1, 0x895cd7be,
	0x6b901122, 0xfd987193, 0xa679438e, 0x49b40821,
	0xf61e2562, 0xc040b340, 0x265e5a51, 0xe9b6c7aa,
	0xd62f105d, 0x02441453, 0xd8a1e681, 0xe7d3fbc8,
	0x21e1cde6, 0xc33707d6, 0xf4d50d87, 0x455a14ed,
	0xa9e3e905, 0xfcefa3f8, 0x676f02d9, 0x8d2a4c8a,
	0xfffa3942, 0x8771f681, 0x6d9d6122, 0xfde5380c,
	0xa4beea44, 0x4bdecfa9, 0xf6bb4b60, 0xbebfbc70,
	0x289b7ec6, 0xeaa127fa, 0xd4ef3085, 0x04881d05,
	0xd9d4d039, 0xe6db99e5, 0x1fa27cf8, 0xc4ac5665,
	0xf4292244, 0x432aff97, 0xab9423a7, 0xfc93a039,
	0x655b59c3, 0x8f0ccc92, 0xffeff47d, 0x85845dd1,
	0x6fa87e4f, 0xfe2ce6e0, 0xa3014314, 0x4e0811a1,
	0xf7537e82, 0xbd3af235, 0x2ad7d2bb, 0xeb86d391,
}

func (d *digest) Compress(p []byte) {
	var m [16]uint32
	for i := range m {
		m[i] = binary.LittleEndian.Uint32(p[i*4:])
	}

	a, b, c, dd := d.s[0], d.s[1], d.s[2], d.s[3]

	for i := 0; i < 64; i++ {
		var f uint32
		var g int
		switch {
		case i < 16:
			f = (b & c) | (^b & dd)
			g = i
		case i < 32:
			f = (dd & b) | (^dd & c)
			g = (5*i + 1) & 15
		case i < 48:
			f = b ^ c ^ dd
			g = (3*i + 5) & 15
		default:
			f = c ^ (b | ^dd)
			g = (7 * i) & 15
		}
		f += a + tab[i] + m[g]
		a = dd
		dd = c
		c = b
		b += bits.RotateLeft32(f, shifts[i])
	}

	d.s[0] += a
	d.s[1] += b
	d.s[2] += c
	d.s[3] += dd
}
