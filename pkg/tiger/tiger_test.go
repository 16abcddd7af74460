package tiger

import (
	"bytes"
	"encoding/hex"
	"testing"
)

func TestSum_Golden(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		wantHex string
	}{
		{"empty", "", "3293ac630c13f0245f92bbb1766e16167a4e58492dde73f3"},
		{"abc", "abc", "2aab1484e8c158f2bfb8c5ff41b57a525129131c957b5f93"},
		{"fox", "The quick brown fox jumps over the lazy dog",
			"6d12a41e72e644f017b6f0e2f7b44c6285f06dd5d2c5b075"},
		{"fox cog", "The quick brown fox jumps over the lazy cog",
			"a8f04b0f7201a0d728101c9d26525b31764a3493fcd8458f"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sum := Sum([]byte(tt.in))
			if got := hex.EncodeToString(sum[:]); got != tt.wantHex {
				t.Errorf("Sum(%q) = %s, want %s", tt.in, got, tt.wantHex)
			}
		})
	}
}

func TestSum2_Golden(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		wantHex string
	}{
		{"empty", "", "4441be75f6018773c206c22745374b924aa8313fef919f41"},
		{"fox", "The quick brown fox jumps over the lazy dog",
			"976abff8062a2e9dcea3a1ace966ed9c19cb85558b4976d8"},
		{"fox cog", "The quick brown fox jumps over the lazy cog",
			"09c11330283a27efb51930aa7dc1ec624ff738a8d9bdd3df"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sum := Sum2([]byte(tt.in))
			if got := hex.EncodeToString(sum[:]); got != tt.wantHex {
				t.Errorf("Sum2(%q) = %s, want %s", tt.in, got, tt.wantHex)
			}
		})
	}
}

func TestTruncatedForms(t *testing.T) {
	data := []byte("The quick brown fox jumps over the lazy dog")
	full := Sum(data)

	for _, size := range []int{Size128, Size160, Size} {
		h, err := NewSize(size)
		if err != nil {
			t.Fatalf("NewSize(%d) error: %v", size, err)
		}
		if h.Size() != size {
			t.Errorf("NewSize(%d).Size() = %d", size, h.Size())
		}
		h.Write(data)
		if got := h.Sum(nil); !bytes.Equal(got, full[:size]) {
			t.Errorf("Tiger/%d = %x, want prefix %x", size*8, got, full[:size])
		}
	}
}

func TestNewSize_Rejects(t *testing.T) {
	for _, size := range []int{-1, 0, 25, 100} {
		if _, err := NewSize(size); err == nil {
			t.Errorf("NewSize(%d) should fail", size)
		}
		if _, err := New2Size(size); err == nil {
			t.Errorf("New2Size(%d) should fail", size)
		}
	}
}

func TestWrite_Chunked(t *testing.T) {
	data := bytes.Repeat([]byte("0123456789"), 20)
	want := Sum(data)

	for _, chunk := range []int{1, 7, 63, 64, 65} {
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

func TestPaddingBoundaries(t *testing.T) {
	// around the 56-byte padding threshold and the block size
	for _, n := range []int{0, 55, 56, 57, 63, 64, 65, 128} {
		data := bytes.Repeat([]byte{'x'}, n)
		h := New()
		h.Write(data)
		want := Sum(data)
		if got := h.Sum(nil); !bytes.Equal(got, want[:]) {
			t.Errorf("length %d: streaming and one-shot disagree", n)
		}
	}
}

func TestSBoxGeneration(t *testing.T) {
	sboxInit()
	// spot-check the generated tables against the published reference values
	checks := []struct {
		idx  int
		want uint64
	}{
		{0, 0x02aab17cf7e90c5e},
		{1, 0xac424b03e243a8ec},
		{256, 0xe6a6be5a05a12138},
		{512, 0xf49fcc2ff1daf39b},
		{768, 0x5b0e608526323c55},
	}
	for _, c := range checks {
		if table[c.idx] != c.want {
			t.Errorf("table[%d] = %#016x, want %#016x", c.idx, table[c.idx], c.want)
		}
	}
}
