// Package sha3 implements the SHA-3 fixed-output digests and the SHAKE
// extendable-output functions (FIPS 202), built on the Keccak-f[1600] sponge.
//
// All state lives in plain values; reading a digest finalizes a copy of the
// sponge, so a stream may continue to absorb input after an intermediate
// digest has been taken.
package sha3

import (
	"encoding/binary"
	"hash"

	"github.com/forcebit/cryptohash-go/pkg/block"
)

const (
	// Size224 through Size512 are the fixed digest sizes in bytes.
	Size224 = 28
	Size256 = 32
	Size384 = 48
	Size512 = 64

	// domain-separation suffixes, carrying the first bit of the 10*1 pad.
	dsSHA3  = 0x06 // SHA-3: suffix 01
	dsSHAKE = 0x1f // SHAKE: suffix 1111
)

// state is a Keccak sponge: 25 64-bit lanes absorbed at the given rate.
type state struct {
	a      [25]uint64
	rate   int  // block size: 200 - 2*capacity/8 bytes
	dsbyte byte // domain suffix appended at finalization
	size   int  // bytes produced by Sum
	e      block.Engine
}

// New224 returns a new hash.Hash computing the SHA3-224 digest.
func New224() hash.Hash { return newState(Size224, dsSHA3, Size224) }

// New256 returns a new hash.Hash computing the SHA3-256 digest.
func New256() hash.Hash { return newState(Size256, dsSHA3, Size256) }

// New384 returns a new hash.Hash computing the SHA3-384 digest.
func New384() hash.Hash { return newState(Size384, dsSHA3, Size384) }

// New512 returns a new hash.Hash computing the SHA3-512 digest.
func New512() hash.Hash { return newState(Size512, dsSHA3, Size512) }

// Sum224 computes the SHA3-224 digest of data in one call.
func Sum224(data []byte) [Size224]byte {
	var out [Size224]byte
	oneShot(New224(), data, out[:])
	return out
}

// Sum256 computes the SHA3-256 digest of data in one call.
func Sum256(data []byte) [Size256]byte {
	var out [Size256]byte
	oneShot(New256(), data, out[:])
	return out
}

// Sum384 computes the SHA3-384 digest of data in one call.
func Sum384(data []byte) [Size384]byte {
	var out [Size384]byte
	oneShot(New384(), data, out[:])
	return out
}

// Sum512 computes the SHA3-512 digest of data in one call.
func Sum512(data []byte) [Size512]byte {
	var out [Size512]byte
	oneShot(New512(), data, out[:])
	return out
}

func oneShot(h hash.Hash, data, out []byte) {
	h.Write(data)
	copy(out, h.Sum(nil))
}

// newState builds a sponge for the given capacity-defining security level:
// the rate is 200 - 2*level bytes.
func newState(level int, dsbyte byte, size int) *state {
	return &state{rate: 200 - 2*level, dsbyte: dsbyte, size: size}
}

func (s *state) Reset() {
	s.a = [25]uint64{}
	s.e.Reset()
}

func (s *state) Size() int { return s.size }

func (s *state) BlockSize() int { return s.rate }

func (s *state) Write(p []byte) (int, error) {
	s.e.Write(s, p)
	return len(p), nil
}

// Compress xors one rate-sized block into the state and permutes.
func (s *state) Compress(p []byte) {
	for i := 0; i < s.rate/8; i++ {
		s.a[i] ^= binary.LittleEndian.Uint64(p[i*8:])
	}
	keccakF1600(&s.a)
}

// Sum appends the digest to in without mutating the sponge.
func (s *state) Sum(in []byte) []byte {
	out := make([]byte, s.size)
	s.read(out)
	return append(in, out...)
}

// read finalizes a copy of the sponge and squeezes len(out) bytes from it.
func (s *state) read(out []byte) {
	ss := *s
	ss.e.FinishPad(&ss, ss.dsbyte)
	for len(out) > 0 {
		var lane [8]byte
		n := min(len(out), ss.rate)
		for i := 0; i < n; i += 8 {
			binary.LittleEndian.PutUint64(lane[:], ss.a[i/8])
			copy(out[i:n], lane[:])
		}
		out = out[n:]
		if len(out) > 0 {
			keccakF1600(&ss.a)
		}
	}
}
