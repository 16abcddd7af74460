package digest

import "fmt"

// ComputeDigest computes a digest for the entire body using the named
// algorithm. It is a convenience wrapper around NewDigester and is
// observably equivalent to the init/process/get sequence; use NewDigester
// directly for memory-efficient streaming over large inputs.
func ComputeDigest(body []byte, algorithm string) ([]byte, error) {
	h, err := NewDigester(algorithm)
	if err != nil {
		return nil, fmt.Errorf("failed to create digester: %w", err)
	}
	h.Write(body)
	return h.Sum(nil), nil
}
