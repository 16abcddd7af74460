package codec

import (
	"bytes"
	"testing"
)

func TestEncodeToString(t *testing.T) {
	data := []byte{0x00, 0x1f, 0xa5, 0xff}
	if got := EncodeToString(data); got != "001fa5ff" {
		t.Errorf("EncodeToString = %q, want %q", got, "001fa5ff")
	}
	if got := EncodeToStringUpper(data); got != "001FA5FF" {
		t.Errorf("EncodeToStringUpper = %q, want %q", got, "001FA5FF")
	}
	if got := EncodeToString(nil); got != "" {
		t.Errorf("EncodeToString(nil) = %q, want empty", got)
	}
}

func TestDecodeString(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []byte
	}{
		{"empty", "", []byte{}},
		{"lower", "deadbeef", []byte{0xde, 0xad, 0xbe, 0xef}},
		{"upper", "DEADBEEF", []byte{0xde, 0xad, 0xbe, 0xef}},
		{"mixed case", "DeAdBeEf", []byte{0xde, 0xad, 0xbe, 0xef}},
		{"embedded blanks", "de ad\tbe\vef\f", []byte{0xde, 0xad, 0xbe, 0xef}},
		{"blank inside a pair", "d e a d", []byte{0xde, 0xad}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeString(tt.in)
			if err != nil {
				t.Fatalf("DecodeString(%q) error: %v", tt.in, err)
			}
			if !bytes.Equal(got, tt.want) {
				t.Errorf("DecodeString(%q) = %x, want %x", tt.in, got, tt.want)
			}
		})
	}
}

func TestDecodeString_Invalid(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"non-hex character", "dexd"},
		{"newline is not a blank", "de\nad"},
		{"odd digit count", "abc"},
		{"odd after blanks", "a b c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeString(tt.in)
			if err == nil {
				t.Fatalf("DecodeString(%q) should fail", tt.in)
			}
			if got != nil {
				t.Errorf("DecodeString(%q) returned bytes %x alongside the error", tt.in, got)
			}
		})
	}
}

func TestHexRoundTrip(t *testing.T) {
	data := make([]byte, 256)
	for i := range data {
		data[i] = byte(i)
	}
	got, err := DecodeString(EncodeToString(data))
	if err != nil {
		t.Fatalf("round trip error: %v", err)
	}
	if !bytes.Equal(got, data) {
		t.Error("hex round trip lost data")
	}
}

func TestNewBase64Encoding(t *testing.T) {
	enc, err := NewBase64Encoding('+', '/', '=')
	if err != nil {
		t.Fatalf("standard alphabet rejected: %v", err)
	}
	if got := enc.EncodeToString([]byte("any")); got != "YW55" {
		t.Errorf("standard encoding = %q, want %q", got, "YW55")
	}

	// url-safe alphabet, unpadded
	enc, err = NewBase64Encoding('-', '_', 0)
	if err != nil {
		t.Fatalf("url-safe alphabet rejected: %v", err)
	}
	if got := enc.EncodeToString([]byte{0xfb, 0xff}); got != "-_8" {
		t.Errorf("url-safe encoding = %q, want %q", got, "-_8")
	}
}

func TestNewBase64Encoding_Invalid(t *testing.T) {
	tests := []struct {
		name            string
		ch62, ch63, pad byte
	}{
		{"duplicate extras", '+', '+', '='},
		{"extra inside body", 'A', '/', '='},
		{"non-printable extra", 0x07, '/', '='},
		{"pad equals extra", '+', '/', '+'},
		{"pad inside body", '+', '/', 'A'},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewBase64Encoding(tt.ch62, tt.ch63, tt.pad); err == nil {
				t.Errorf("NewBase64Encoding(%q, %q, %q) should fail", tt.ch62, tt.ch63, tt.pad)
			}
		})
	}
}

func TestBase64RoundTrip(t *testing.T) {
	data := []byte("The quick brown fox jumps over the lazy dog")
	got, err := DecodeBase64(EncodeBase64(data))
	if err != nil {
		t.Fatalf("round trip error: %v", err)
	}
	if !bytes.Equal(got, data) {
		t.Error("base64 round trip lost data")
	}

	if _, err := DecodeBase64("!!not base64!!"); err == nil {
		t.Error("DecodeBase64 should reject malformed input")
	}
}
