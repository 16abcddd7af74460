package comparison

import "math/rand"

var rng = rand.New(rand.NewSource(42))

func fill(n int) []byte {
	b := make([]byte, n)
	rng.Read(b)
	return b
}

// Shared benchmark payloads - generated once.
var (
	payload64B  = fill(64)
	payload1KB  = fill(1024)
	payload64KB = fill(64 * 1024)
	payload1MB  = fill(1024 * 1024)
)

// sizes pairs a label with its payload for sub-benchmarks.
var sizes = []struct {
	name string
	data []byte
}{
	{"64B", payload64B},
	{"1KB", payload1KB},
	{"64KB", payload64KB},
	{"1MB", payload1MB},
}
