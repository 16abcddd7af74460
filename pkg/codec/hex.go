// Package codec provides the byte/string conversions used around the digest
// engine: a hexadecimal codec whose decoder tolerates embedded blanks, and
// Base64 with a customizable alphabet.
package codec

import "fmt"

const (
	lowerHex = "0123456789abcdef"
	upperHex = "0123456789ABCDEF"
)

// EncodeToString converts data into a lowercase hexadecimal string.
func EncodeToString(data []byte) string {
	return encodeHex(data, lowerHex)
}

// EncodeToStringUpper converts data into an uppercase hexadecimal string.
func EncodeToStringUpper(data []byte) string {
	return encodeHex(data, upperHex)
}

func encodeHex(data []byte, digits string) string {
	out := make([]byte, 0, 2*len(data))
	for _, b := range data {
		out = append(out, digits[b>>4], digits[b&15])
	}
	return string(out)
}

// DecodeString converts a hexadecimal string into bytes. Both cases are
// accepted, and blank characters (space, tab, vertical tab, form feed) are
// skipped anywhere in the input. Decoding stops at the first invalid
// character and returns no bytes along with the error, as does an input
// with an odd number of hex digits.
func DecodeString(s string) ([]byte, error) {
	out := make([]byte, 0, len(s)/2)
	var hi byte
	half := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		var v byte
		switch {
		case '0' <= c && c <= '9':
			v = c - '0'
		case 'a' <= c && c <= 'f':
			v = c - 'a' + 10
		case 'A' <= c && c <= 'F':
			v = c - 'A' + 10
		case c == ' ' || c == '\t' || c == '\v' || c == '\f':
			continue
		default:
			return nil, fmt.Errorf("codec: invalid hex character %q at offset %d", c, i)
		}
		if half = !half; half {
			hi = v << 4
		} else {
			out = append(out, hi|v)
		}
	}
	if half {
		return nil, fmt.Errorf("codec: odd number of hex digits")
	}
	return out, nil
}
