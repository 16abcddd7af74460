// Package digest is the uniform entry point to every hash algorithm in this
// module. It maps algorithm names (including the aliases and the
// "shake128/<bits>" length-suffix form accepted by the command-line tool) to
// streaming digest contexts, and provides one-shot computation and
// constant-time verification helpers.
package digest

import (
	"hash"

	"github.com/forcebit/cryptohash-go/pkg/md5"
	"github.com/forcebit/cryptohash-go/pkg/sha1"
	"github.com/forcebit/cryptohash-go/pkg/sha2"
	"github.com/forcebit/cryptohash-go/pkg/sha3"
	"github.com/forcebit/cryptohash-go/pkg/tiger"
)

// Canonical algorithm names.
const (
	MD5         = "md5"
	SHA1        = "sha1"
	SHA2_224    = "sha2-224"
	SHA2_256    = "sha2-256"
	SHA2_384    = "sha2-384"
	SHA2_512    = "sha2-512"
	SHA2_512224 = "sha2-512/224"
	SHA2_512256 = "sha2-512/256"
	SHA3_224    = "sha3-224"
	SHA3_256    = "sha3-256"
	SHA3_384    = "sha3-384"
	SHA3_512    = "sha3-512"
	SHAKE128    = "shake128"
	SHAKE256    = "shake256"
	Tiger       = "tiger"
	Tiger2      = "tiger2"
)

// Algorithm describes one digest algorithm: its canonical name, output and
// block sizes in bytes, and a constructor for a fresh streaming context.
// For the SHAKE functions Size is the requested output length.
type Algorithm struct {
	Name      string
	Size      int
	BlockSize int
	New       func() hash.Hash
}

// registry holds the fixed-output algorithms; SHAKE and truncated Tiger
// variants are materialized by Parse since their size is caller-chosen.
var registry = map[string]Algorithm{
	MD5:         {MD5, md5.Size, md5.BlockSize, md5.New},
	SHA1:        {SHA1, sha1.Size, sha1.BlockSize, sha1.New},
	SHA2_224:    {SHA2_224, sha2.Size224, sha2.BlockSize256, sha2.New224},
	SHA2_256:    {SHA2_256, sha2.Size256, sha2.BlockSize256, sha2.New256},
	SHA2_384:    {SHA2_384, sha2.Size384, sha2.BlockSize512, sha2.New384},
	SHA2_512:    {SHA2_512, sha2.Size512, sha2.BlockSize512, sha2.New512},
	SHA2_512224: {SHA2_512224, sha2.Size512_224, sha2.BlockSize512, sha2.New512_224},
	SHA2_512256: {SHA2_512256, sha2.Size512_256, sha2.BlockSize512, sha2.New512_256},
	SHA3_224:    {SHA3_224, sha3.Size224, 144, sha3.New224},
	SHA3_256:    {SHA3_256, sha3.Size256, 136, sha3.New256},
	SHA3_384:    {SHA3_384, sha3.Size384, 104, sha3.New384},
	SHA3_512:    {SHA3_512, sha3.Size512, 72, sha3.New512},
	Tiger:       {Tiger, tiger.Size, tiger.BlockSize, tiger.New},
	Tiger2:      {Tiger2, tiger.Size, tiger.BlockSize, tiger.New2},
}

// SupportedAlgorithms lists the canonical names of every fixed-output
// algorithm. The SHAKE functions are supported through the
// "shake128/<bits>" form and are therefore not listed here.
func SupportedAlgorithms() []string {
	return []string{
		MD5, SHA1,
		SHA2_224, SHA2_256, SHA2_384, SHA2_512, SHA2_512224, SHA2_512256,
		SHA3_224, SHA3_256, SHA3_384, SHA3_512,
		Tiger, Tiger2,
	}
}

// NewDigester creates a streaming hash.Hash for the named algorithm.
// The name is resolved with the same rules as Parse.
func NewDigester(name string) (hash.Hash, error) {
	a, err := Parse(name)
	if err != nil {
		return nil, err
	}
	return a.New(), nil
}
