package hashtests

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/forcebit/cryptohash-go/pkg/codec"
	"github.com/forcebit/cryptohash-go/pkg/digest"
)

func TestFileWorkflow(t *testing.T) {
	// the command-line workflow: stream a file, print hex, verify later
	body := make([]byte, 300000)
	for i := range body {
		body[i] = byte(i * 7)
	}
	path := filepath.Join(t.TempDir(), "payload.bin")
	require.NoError(t, os.WriteFile(path, body, 0o644))

	for _, alg := range digest.SupportedAlgorithms() {
		t.Run(alg, func(t *testing.T) {
			want, err := digest.ComputeDigest(body, alg)
			require.NoError(t, err)

			f, err := os.Open(path)
			require.NoError(t, err)
			defer f.Close()

			require.NoError(t, digest.VerifyReader(f, alg, want))

			// the printed form round-trips through the hex codec
			decoded, err := codec.DecodeString(codec.EncodeToString(want))
			require.NoError(t, err)
			require.Equal(t, want, decoded)
		})
	}
}

func TestAliasesAgree(t *testing.T) {
	body := []byte("alias agreement")

	pairs := [][2]string{
		{"sha224", "sha2-224"},
		{"sha-256", "sha2-256"},
		{"sha384", "sha2-384"},
		{"SHA-512", "sha2-512"},
		{"sha512/224", "sha2-512/224"},
		{"sha-512-256", "sha2-512/256"},
		{"MD5", "md5"},
	}

	for _, p := range pairs {
		a, err := digest.ComputeDigest(body, p[0])
		require.NoError(t, err, p[0])
		b, err := digest.ComputeDigest(body, p[1])
		require.NoError(t, err, p[1])
		require.Equal(t, b, a, "%s and %s disagree", p[0], p[1])
	}
}

func TestTruncatedFamiliesAgainstFull(t *testing.T) {
	body := []byte("truncation semantics")

	// SHAKE at a shorter length is a prefix of a longer request
	long, err := digest.ComputeDigest(body, "shake256/4096")
	require.NoError(t, err)
	short, err := digest.ComputeDigest(body, "shake256/128")
	require.NoError(t, err)
	require.Equal(t, long[:16], short)

	// Tiger/160 and Tiger/128 are truncations of Tiger/192
	full, err := digest.ComputeDigest(body, "tiger")
	require.NoError(t, err)
	for _, alg := range []string{"tiger/160", "tiger/128"} {
		got, err := digest.ComputeDigest(body, alg)
		require.NoError(t, err)
		require.Equal(t, full[:len(got)], got, alg)
	}

	// SHA-512/t is NOT a truncation: distinct initial values
	t224, err := digest.ComputeDigest(body, "sha2-512/224")
	require.NoError(t, err)
	s512, err := digest.ComputeDigest(body, "sha2-512")
	require.NoError(t, err)
	require.NotEqual(t, s512[:28], t224)
}
