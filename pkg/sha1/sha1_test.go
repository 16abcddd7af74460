package sha1

import (
	"bytes"
	"encoding/hex"
	"testing"
)

var golden = []struct {
	name    string
	in      string
	wantHex string
}{
	{"empty", "", "da39a3ee5e6b4b0d3255bfef95601890afd80709"},
	{"abc", "abc", "a9993e364706816aba3e25717850c26c9cd0d89d"},
	{"two blocks", "abcdbcdecdefdefgefghfghighijhijkijkljklmklmnlmnomnopnopq",
		"84983e441c3bd26ebaae4aa1f95129e5e54670f1"},
	{"fox", "The quick brown fox jumps over the lazy dog",
		"2fd4e1c67a2d28fced849ee1bb76e7391b93eb12"},
	{"fox cog", "The quick brown fox jumps over the lazy cog",
		"de9f2c7fd25e1b3afad3e85a0bd17d9b100db4b3"},
}

func TestSum_Golden(t *testing.T) {
	for _, tt := range golden {
		t.Run(tt.name, func(t *testing.T) {
			sum := Sum([]byte(tt.in))
			if got := hex.EncodeToString(sum[:]); got != tt.wantHex {
				t.Errorf("Sum(%q) = %s, want %s", tt.in, got, tt.wantHex)
			}
		})
	}
}

func TestWrite_Chunked(t *testing.T) {
	data := []byte("abcdbcdecdefdefgefghfghighijhijkijkljklmklmnlmnomnopnopq")
	want := Sum(data)

	for _, chunk := range []int{1, 5, 13, 64} {
		h := New()
		for i := 0; i < len(data); i += chunk {
			end := i + chunk
			if end > len(data) {
				end = len(data)
			}
			h.Write(data[i:end])
		}
		if got := h.Sum(nil); !bytes.Equal(got, want[:]) {
			t.Errorf("chunk size %d: got %x, want %x", chunk, got, want)
		}
	}
}

func TestSum_DoesNotMutate(t *testing.T) {
	h := New()
	h.Write([]byte("abc"))
	mid := h.Sum(nil)
	if !bytes.Equal(mid, h.Sum(nil)) {
		t.Fatal("repeated Sum calls disagree")
	}

	h.Write([]byte("def"))
	want := Sum([]byte("abcdef"))
	if got := h.Sum(nil); !bytes.Equal(got, want[:]) {
		t.Errorf("Sum after intermediate digest = %x, want %x", got, want)
	}
}

func TestMillionA(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping million-a vector in short mode")
	}
	h := New()
	chunk := bytes.Repeat([]byte{'a'}, 1000)
	for i := 0; i < 1000; i++ {
		h.Write(chunk)
	}
	const want = "34aa973cd4c4daa4f61eeb2bdbad27316534016f"
	if got := hex.EncodeToString(h.Sum(nil)); got != want {
		t.Errorf("SHA-1 of 10^6 'a' = %s, want %s", got, want)
	}
}
