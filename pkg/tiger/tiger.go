// Package tiger implements the Tiger and Tiger2 digest algorithms of
// Anderson and Biham (192-bit state, 64-byte blocks, three passes over four
// 256-entry S-boxes with a key schedule between passes).
//
// Tiger/160 and Tiger/128 are plain truncations of the Tiger/192 sum, and
// Tiger2 differs from Tiger only in its padding byte (0x80, MD5-style,
// instead of 0x01).
package tiger

import (
	"encoding/binary"
	"fmt"
	"hash"

	"github.com/forcebit/cryptohash-go/pkg/block"
)

const (
	// Size is the size of a full Tiger/192 digest in bytes.
	Size = 24
	// Size160 and Size128 are the truncated digest sizes in bytes.
	Size160 = 20
	Size128 = 16
	// BlockSize is the Tiger block size in bytes.
	BlockSize = 64

	padTiger  = 0x01
	padTiger2 = 0x80
)

type digest struct {
	s    [3]uint64
	pad  byte
	size int
	e    block.Engine
}

// New returns a new hash.Hash computing the Tiger/192 digest.
func New() hash.Hash { return newDigest(padTiger, Size) }

// New2 returns a new hash.Hash computing the Tiger2/192 digest.
func New2() hash.Hash { return newDigest(padTiger2, Size) }

// NewSize returns a Tiger hash truncated to size bytes. size must be
// between 1 and 24; requesting more than the 192-bit maximum is an error.
func NewSize(size int) (hash.Hash, error) {
	if size < 1 || size > Size {
		return nil, fmt.Errorf("tiger: digest size %d out of range [1, %d]", size, Size)
	}
	return newDigest(padTiger, size), nil
}

// New2Size returns a Tiger2 hash truncated to size bytes, under the same
// constraint as NewSize.
func New2Size(size int) (hash.Hash, error) {
	if size < 1 || size > Size {
		return nil, fmt.Errorf("tiger: digest size %d out of range [1, %d]", size, Size)
	}
	return newDigest(padTiger2, size), nil
}

// Sum computes the Tiger/192 digest of data in one call.
func Sum(data []byte) [Size]byte {
	return oneShot(padTiger, data)
}

// Sum2 computes the Tiger2/192 digest of data in one call.
func Sum2(data []byte) [Size]byte {
	return oneShot(padTiger2, data)
}

func oneShot(pad byte, data []byte) [Size]byte {
	d := newDigest(pad, Size)
	d.e.Write(d, data)
	return d.checkSum()
}

func newDigest(pad byte, size int) *digest {
	sboxInit()
	d := &digest{pad: pad, size: size}
	d.Reset()
	return d
}

func (d *digest) Reset() {
	d.s = [3]uint64{0x0123456789abcdef, 0xfedcba9876543210, 0xf096a5b4c3b2e187}
	d.e.Reset()
}

func (d *digest) Size() int { return d.size }

func (d *digest) BlockSize() int { return BlockSize }

func (d *digest) Write(p []byte) (int, error) {
	d.e.Write(d, p)
	return len(p), nil
}

func (d *digest) Sum(in []byte) []byte {
	dd := *d
	sum := dd.checkSum()
	return append(in, sum[:dd.size]...)
}

func (d *digest) checkSum() [Size]byte {
	d.e.FinishLength(d, d.pad, 8, binary.LittleEndian)
	var out [Size]byte
	for i, v := range d.s {
		binary.LittleEndian.PutUint64(out[i*8:], v)
	}
	return out
}

func (d *digest) Compress(p []byte) {
	var x [8]uint64
	for i := range x {
		x[i] = binary.LittleEndian.Uint64(p[i*8:])
	}
	compress(x, &d.s)
}

// compress is the Tiger compression function. x is taken by value: the key
// schedule mutates the message words, but callers keep their block intact.
func compress(x [8]uint64, s *[3]uint64) {
	a, b, c := s[0], s[1], s[2]
	aa, bb, cc := a, b, c

	a, b, c = pass(a, b, c, &x, 5)
	keySchedule(&x)
	c, a, b = pass(c, a, b, &x, 7)
	keySchedule(&x)
	b, c, a = pass(b, c, a, &x, 9)

	s[0] = a ^ aa
	s[1] = b - bb
	s[2] = c + cc
}

func pass(a, b, c uint64, x *[8]uint64, mul uint64) (uint64, uint64, uint64) {
	a, b, c = round(a, b, c, x[0], mul)
	b, c, a = round(b, c, a, x[1], mul)
	c, a, b = round(c, a, b, x[2], mul)
	a, b, c = round(a, b, c, x[3], mul)
	b, c, a = round(b, c, a, x[4], mul)
	c, a, b = round(c, a, b, x[5], mul)
	a, b, c = round(a, b, c, x[6], mul)
	b, c, a = round(b, c, a, x[7], mul)
	return a, b, c
}

func round(a, b, c, x, mul uint64) (uint64, uint64, uint64) {
	c ^= x
	a -= t1[byte(c)] ^ t2[byte(c>>16)] ^ t3[byte(c>>32)] ^ t4[byte(c>>48)]
	b += t4[byte(c>>8)] ^ t3[byte(c>>24)] ^ t2[byte(c>>40)] ^ t1[byte(c>>56)]
	b *= mul
	return a, b, c
}

func keySchedule(x *[8]uint64) {
	x[0] -= x[7] ^ 0xa5a5a5a5a5a5a5a5
	x[1] ^= x[0]
	x[2] += x[1]
	x[3] -= x[2] ^ (^x[1] << 19)
	x[4] ^= x[3]
	x[5] += x[4]
	x[6] -= x[5] ^ (^x[4] >> 23)
	x[7] ^= x[6]
	x[0] += x[7]
	x[1] -= x[0] ^ (^x[7] << 19)
	x[2] ^= x[1]
	x[3] += x[2]
	x[4] -= x[3] ^ (^x[2] >> 23)
	x[5] ^= x[4]
	x[6] += x[5]
	x[7] -= x[6] ^ 0x0123456789abcdef
}
