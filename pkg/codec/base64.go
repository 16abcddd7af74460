package codec

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// base64Body is the fixed part of every Base64 alphabet: values 0 through 61.
const base64Body = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// NewBase64Encoding builds a Base64 encoding whose characters for the values
// 62 and 63 and whose padding character are caller-chosen. Passing '+', '/'
// and '=' yields standard RFC 4648 Base64; pad 0 disables padding. The three
// characters must be distinct, printable ASCII, and outside the fixed
// alphabet body.
func NewBase64Encoding(ch62, ch63, pad byte) (*base64.Encoding, error) {
	for _, c := range []byte{ch62, ch63} {
		if c < '!' || c > '~' || strings.IndexByte(base64Body, c) >= 0 {
			return nil, fmt.Errorf("codec: invalid base64 alphabet character %q", c)
		}
	}
	if ch62 == ch63 || pad == ch62 || pad == ch63 {
		return nil, fmt.Errorf("codec: base64 alphabet characters must be distinct")
	}
	enc := base64.NewEncoding(base64Body + string(ch62) + string(ch63))
	if pad == 0 {
		return enc.WithPadding(base64.NoPadding), nil
	}
	if pad < '!' || pad > '~' || strings.IndexByte(base64Body, pad) >= 0 {
		return nil, fmt.Errorf("codec: invalid base64 padding character %q", pad)
	}
	return enc.WithPadding(rune(pad)), nil
}

// EncodeBase64 converts data into standard RFC 4648 Base64.
func EncodeBase64(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}

// DecodeBase64 converts standard RFC 4648 Base64 into bytes, returning no
// bytes on malformed input.
func DecodeBase64(s string) ([]byte, error) {
	out, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("codec: invalid base64 input: %w", err)
	}
	return out, nil
}
