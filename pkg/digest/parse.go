package digest

import (
	"errors"
	"fmt"
	"hash"
	"strconv"
	"strings"

	"github.com/forcebit/cryptohash-go/pkg/sha3"
	"github.com/forcebit/cryptohash-go/pkg/tiger"
)

// ErrUnknownAlgorithm is returned when an algorithm name does not resolve.
var ErrUnknownAlgorithm = errors.New("unknown hash algorithm")

// ErrDigestLength is returned for a missing, malformed, or out-of-range
// output length (SHAKE and truncated Tiger forms).
var ErrDigestLength = errors.New("invalid digest length")

// aliases maps the accepted spellings to canonical names.
var aliases = map[string]string{
	"md-5":         MD5,
	"sha-1":        SHA1,
	"sha224":       SHA2_224,
	"sha-224":      SHA2_224,
	"sha256":       SHA2_256,
	"sha-256":      SHA2_256,
	"sha384":       SHA2_384,
	"sha-384":      SHA2_384,
	"sha512":       SHA2_512,
	"sha-512":      SHA2_512,
	"sha512/224":   SHA2_512224,
	"sha-512-224":  SHA2_512224,
	"sha2-512-224": SHA2_512224,
	"sha512/256":   SHA2_512256,
	"sha-512-256":  SHA2_512256,
	"sha2-512-256": SHA2_512256,
}

// Parse resolves an algorithm name, case-insensitively, to its descriptor.
//
// The SHAKE functions require an explicit output length in bits, given as a
// "/<bits>" suffix (for example "SHAKE128/256"); the bit count must be a
// positive multiple of 8. Tiger and Tiger2 accept an optional "/<bits>"
// suffix of at most 192 for the truncated Tiger/128 and Tiger/160 forms.
func Parse(name string) (Algorithm, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if canon, ok := aliases[n]; ok {
		n = canon
	}
	if a, ok := registry[n]; ok {
		return a, nil
	}

	base, bits, ok := strings.Cut(n, "/")
	if ok {
		switch base {
		case SHAKE128, SHAKE256:
			return shakeAlgorithm(base, bits)
		case Tiger, Tiger2:
			return tigerAlgorithm(base, bits)
		}
	}
	if n == SHAKE128 || n == SHAKE256 {
		return Algorithm{}, fmt.Errorf("%w: %s requires an output length, e.g. %s/256", ErrDigestLength, n, n)
	}
	return Algorithm{}, fmt.Errorf("%w %q", ErrUnknownAlgorithm, name)
}

func shakeAlgorithm(base, bits string) (Algorithm, error) {
	size, err := parseBits(bits)
	if err != nil {
		return Algorithm{}, err
	}
	var mk func(int) *sha3.Shake
	if base == SHAKE128 {
		mk = sha3.NewShake128Size
	} else {
		mk = sha3.NewShake256Size
	}
	return Algorithm{
		Name:      base + "/" + bits,
		Size:      size,
		BlockSize: mk(size).BlockSize(),
		New:       func() hash.Hash { return mk(size) },
	}, nil
}

func tigerAlgorithm(base, bits string) (Algorithm, error) {
	size, err := parseBits(bits)
	if err != nil {
		return Algorithm{}, err
	}
	if size > tiger.Size {
		return Algorithm{}, fmt.Errorf("%w: %s digest is limited to %d bits", ErrDigestLength, base, tiger.Size*8)
	}
	mk := tiger.NewSize
	if base == Tiger2 {
		mk = tiger.New2Size
	}
	return Algorithm{
		Name:      base + "/" + bits,
		Size:      size,
		BlockSize: tiger.BlockSize,
		New: func() hash.Hash {
			h, _ := mk(size) // size validated above
			return h
		},
	}, nil
}

// parseBits converts a decimal bit count into a byte count, requiring a
// positive multiple of 8.
func parseBits(s string) (int, error) {
	bits, err := strconv.Atoi(s)
	if err != nil || bits <= 0 {
		return 0, fmt.Errorf("%w: bad bit count %q", ErrDigestLength, s)
	}
	if bits%8 != 0 {
		return 0, fmt.Errorf("%w: output length %d is not a multiple of 8 bits", ErrDigestLength, bits)
	}
	return bits / 8, nil
}
