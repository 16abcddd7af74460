// Package sha2 implements the SHA-2 digest family (FIPS 180-4): SHA-224,
// SHA-256, SHA-384, SHA-512, SHA-512/224 and SHA-512/256.
//
// The family shares two structural cores. The 32-bit core (64 rounds, 64-byte
// blocks) backs SHA-256 and SHA-224; the 64-bit core (80 rounds, 128-byte
// blocks, 128-bit length counter) backs SHA-512 and its truncated variants.
// Truncated variants differ only in their initial values and in how many
// state bytes are copied out.
package sha2

import (
	"encoding/binary"
	"fmt"
	"hash"

	"github.com/forcebit/cryptohash-go/pkg/block"
)

const (
	// Size224 is the size of a SHA-224 digest in bytes.
	Size224 = 28
	// Size256 is the size of a SHA-256 digest in bytes.
	Size256 = 32
	// Size384 is the size of a SHA-384 digest in bytes.
	Size384 = 48
	// Size512 is the size of a SHA-512 digest in bytes.
	Size512 = 64
	// Size512_224 is the size of a SHA-512/224 digest in bytes.
	Size512_224 = 28
	// Size512_256 is the size of a SHA-512/256 digest in bytes.
	Size512_256 = 32

	// BlockSize256 is the block size of the 32-bit core in bytes.
	BlockSize256 = 64
	// BlockSize512 is the block size of the 64-bit core in bytes.
	BlockSize512 = 128
)

var iv224 = [8]uint32{
	0xc1059ed8, 0x367cd507, 0x3070dd17, 0xf70e5939,
	0xffc00b31, 0x68581511, 0x64f98fa7, 0xbefa4fa4,
}

var iv256 = [8]uint32{
	0x6a09e667, 0xbb67ae85, 0x3c6ef372, 0xa54ff53a,
	0x510e527f, 0x9b05688c, 0x1f83d9ab, 0x5be0cd19,
}

var iv384 = [8]uint64{
	0xcbbb9d5dc1059ed8, 0x629a292a367cd507, 0x9159015a3070dd17, 0x152fecd8f70e5939,
	0x67332667ffc00b31, 0x8eb44a8768581511, 0xdb0c2e0d64f98fa7, 0x47b5481dbefa4fa4,
}

var iv512 = [8]uint64{
	0x6a09e667f3bcc908, 0xbb67ae8584caa73b, 0x3c6ef372fe94f82b, 0xa54ff53a5f1d36f1,
	0x510e527fade682d1, 0x9b05688c2b3e6c1f, 0x1f83d9abfb41bd6b, 0x5be0cd19137e2179,
}

var iv512_224 = [8]uint64{
	0x8c3d37c819544da2, 0x73e1996689dcd4d6, 0x1dfab7ae32ff9c82, 0x679dd514582f9fcf,
	0x0f6d2b697bd44da8, 0x77e36f7304c48942, 0x3f9d85a86a1d36c8, 0x1112e6ad91d692a1,
}

var iv512_256 = [8]uint64{
	0x22312194fc2bf72c, 0x9f555fa3c84c64c2, 0x2393b86b6f53b151, 0x963877195940eabd,
	0x96283ee2a88effe3, 0xbe5e1e2553863992, 0x2b0199fc2c85b8aa, 0x0eb72ddc81c52ca2,
}

type digest32 struct {
	s    [8]uint32
	iv   [8]uint32
	size int
	e    block.Engine
}

type digest64 struct {
	s    [8]uint64
	iv   [8]uint64
	size int
	e    block.Engine
}

// New224 returns a new hash.Hash computing the SHA-224 digest.
func New224() hash.Hash { return newDigest32(iv224, Size224) }

// New256 returns a new hash.Hash computing the SHA-256 digest.
func New256() hash.Hash { return newDigest32(iv256, Size256) }

// New384 returns a new hash.Hash computing the SHA-384 digest.
func New384() hash.Hash { return newDigest64(iv384, Size384) }

// New512 returns a new hash.Hash computing the SHA-512 digest.
func New512() hash.Hash { return newDigest64(iv512, Size512) }

// New512_224 returns a new hash.Hash computing the SHA-512/224 digest.
func New512_224() hash.Hash { return newDigest64(iv512_224, Size512_224) }

// New512_256 returns a new hash.Hash computing the SHA-512/256 digest.
func New512_256() hash.Hash { return newDigest64(iv512_256, Size512_256) }

// Sum224 computes the SHA-224 digest of data in one call.
func Sum224(data []byte) [Size224]byte {
	var out [Size224]byte
	sumInto(New224(), data, out[:])
	return out
}

// Sum256 computes the SHA-256 digest of data in one call.
func Sum256(data []byte) [Size256]byte {
	var out [Size256]byte
	sumInto(New256(), data, out[:])
	return out
}

// Sum384 computes the SHA-384 digest of data in one call.
func Sum384(data []byte) [Size384]byte {
	var out [Size384]byte
	sumInto(New384(), data, out[:])
	return out
}

// Sum512 computes the SHA-512 digest of data in one call.
func Sum512(data []byte) [Size512]byte {
	var out [Size512]byte
	sumInto(New512(), data, out[:])
	return out
}

// Sum512_224 computes the SHA-512/224 digest of data in one call.
func Sum512_224(data []byte) [Size512_224]byte {
	var out [Size512_224]byte
	sumInto(New512_224(), data, out[:])
	return out
}

// Sum512_256 computes the SHA-512/256 digest of data in one call.
func Sum512_256(data []byte) [Size512_256]byte {
	var out [Size512_256]byte
	sumInto(New512_256(), data, out[:])
	return out
}

func sumInto(h hash.Hash, data, out []byte) {
	h.Write(data)
	copy(out, h.Sum(nil))
}

// NewIVGen returns the SHA-512 variant used to generate initial values for
// SHA-512/t: ordinary SHA-512 with every IV word xored with
// 0xa5a5a5a5a5a5a5a5. Hashing the ASCII string "SHA-512/t" (with t written
// in decimal) yields the eight initial state words for that t.
func NewIVGen() hash.Hash {
	var iv [8]uint64
	for i, v := range iv512 {
		iv[i] = v ^ 0xa5a5a5a5a5a5a5a5
	}
	return newDigest64(iv, Size512)
}

// IVForT derives the SHA-512/t initial values for the given output bit
// length t. t must be in (0, 512) and must not be 384, for which FIPS 180-4
// prescribes the distinct SHA-384 function.
func IVForT(t int) ([8]uint64, error) {
	var iv [8]uint64
	if t <= 0 || t >= 512 || t == 384 {
		return iv, fmt.Errorf("sha2: no SHA-512/t variant for t=%d", t)
	}
	h := NewIVGen()
	fmt.Fprintf(h, "SHA-512/%d", t)
	sum := h.Sum(nil)
	for i := range iv {
		iv[i] = binary.BigEndian.Uint64(sum[i*8:])
	}
	return iv, nil
}

// New512T returns a hash.Hash computing the general SHA-512/t digest for an
// output length of t bits. t must satisfy the IVForT constraints and be a
// multiple of 8 so the digest is byte-aligned.
func New512T(t int) (hash.Hash, error) {
	if t%8 != 0 {
		return nil, fmt.Errorf("sha2: SHA-512/t output length %d is not a multiple of 8 bits", t)
	}
	iv, err := IVForT(t)
	if err != nil {
		return nil, err
	}
	return newDigest64(iv, t/8), nil
}

func newDigest32(iv [8]uint32, size int) *digest32 {
	d := &digest32{iv: iv, size: size}
	d.Reset()
	return d
}

func newDigest64(iv [8]uint64, size int) *digest64 {
	d := &digest64{iv: iv, size: size}
	d.Reset()
	return d
}

func (d *digest32) Reset() {
	d.s = d.iv
	d.e.Reset()
}

func (d *digest32) Size() int { return d.size }

func (d *digest32) BlockSize() int { return BlockSize256 }

func (d *digest32) Write(p []byte) (int, error) {
	d.e.Write(d, p)
	return len(p), nil
}

func (d *digest32) Sum(in []byte) []byte {
	dd := *d
	dd.e.FinishLength(&dd, 0x80, 8, binary.BigEndian)
	var out [Size256]byte
	for i, v := range dd.s {
		binary.BigEndian.PutUint32(out[i*4:], v)
	}
	return append(in, out[:dd.size]...)
}

func (d *digest64) Reset() {
	d.s = d.iv
	d.e.Reset()
}

func (d *digest64) Size() int { return d.size }

func (d *digest64) BlockSize() int { return BlockSize512 }

func (d *digest64) Write(p []byte) (int, error) {
	d.e.Write(d, p)
	return len(p), nil
}

func (d *digest64) Sum(in []byte) []byte {
	dd := *d
	dd.e.FinishLength(&dd, 0x80, 16, binary.BigEndian)
	var out [Size512]byte
	for i, v := range dd.s {
		binary.BigEndian.PutUint64(out[i*8:], v)
	}
	return append(in, out[:dd.size]...)
}
