package sha3

import "hash"

// Shake is a SHAKE extendable-output function. It satisfies hash.Hash with a
// conventional default output size (32 bytes for SHAKE128, 64 for SHAKE256),
// and additionally offers Digest for caller-chosen output lengths.
//
// Digest does not mutate the sponge, and squeezing N bytes then truncating
// to M < N equals squeezing M bytes directly.
type Shake struct {
	state
}

// NewShake128 returns a SHAKE128 XOF whose Sum produces 32 bytes.
func NewShake128() *Shake { return newShake(128/8, 32) }

// NewShake256 returns a SHAKE256 XOF whose Sum produces 64 bytes.
func NewShake256() *Shake { return newShake(256/8, 64) }

// NewShake128Size returns a SHAKE128 XOF whose Sum produces size bytes.
func NewShake128Size(size int) *Shake { return newShake(128/8, size) }

// NewShake256Size returns a SHAKE256 XOF whose Sum produces size bytes.
func NewShake256Size(size int) *Shake { return newShake(256/8, size) }

func newShake(level, size int) *Shake {
	return &Shake{state{rate: 200 - 2*level, dsbyte: dsSHAKE, size: size}}
}

// Digest squeezes an n-byte digest of everything written so far. The sponge
// is not mutated; writing may continue afterwards.
func (s *Shake) Digest(n int) []byte {
	out := make([]byte, n)
	s.read(out)
	return out
}

// SumShake128 computes an n-byte SHAKE128 digest of data in one call.
func SumShake128(data []byte, n int) []byte {
	s := NewShake128()
	s.Write(data)
	return s.Digest(n)
}

// SumShake256 computes an n-byte SHAKE256 digest of data in one call.
func SumShake256(data []byte, n int) []byte {
	s := NewShake256()
	s.Write(data)
	return s.Digest(n)
}

var _ hash.Hash = (*Shake)(nil)
