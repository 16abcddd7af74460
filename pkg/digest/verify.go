package digest

import (
	"crypto/subtle"
	"fmt"
	"io"
)

// Verify compares two digests in constant time, so that the comparison does
// not leak the position of a mismatch through timing. Digests of different
// lengths compare unequal.
func Verify(a, b []byte) bool {
	return subtle.ConstantTimeCompare(a, b) == 1
}

// VerifyBytes computes the named digest of body and compares it against
// want in constant time.
func VerifyBytes(body []byte, algorithm string, want []byte) error {
	got, err := ComputeDigest(body, algorithm)
	if err != nil {
		return err
	}
	if !Verify(got, want) {
		return fmt.Errorf("digest mismatch for algorithm %q", algorithm)
	}
	return nil
}

// VerifyReader streams r through the named digest in a single pass and
// compares the result against want in constant time.
func VerifyReader(r io.Reader, algorithm string, want []byte) error {
	h, err := NewDigester(algorithm)
	if err != nil {
		return fmt.Errorf("failed to create digester: %w", err)
	}
	if _, err := io.Copy(h, r); err != nil {
		return fmt.Errorf("failed to read content: %w", err)
	}
	if !Verify(h.Sum(nil), want) {
		return fmt.Errorf("digest mismatch for algorithm %q", algorithm)
	}
	return nil
}
