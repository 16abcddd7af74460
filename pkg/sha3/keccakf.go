package sha3

import "math/bits"

// rounds is the full round count of Keccak-f[1600] (12 + 2*l, l = 6).
const rounds = 24

// iota round constants.
var rc = [rounds]uint64{
	0x0000000000000001, 0x0000000000008082, 0x800000000000808a, 0x8000000080008000,
	0x000000000000808b, 0x0000000080000001, 0x8000000080008081, 0x8000000000008009,
	0x000000000000008a, 0x0000000000000088, 0x0000000080008009, 0x000000008000000a,
	0x000000008000808b, 0x800000000000008b, 0x8000000000008089, 0x8000000000008003,
	0x8000000000008002, 0x8000000000000080, 0x000000000000800a, 0x800000008000000a,
	0x8000000080008081, 0x8000000000008080, 0x0000000080000001, 0x8000000080008008,
}

// keccakF1600 applies the full 24-round Keccak-f[1600] permutation in place.
// The lane at coordinate (x, y) lives at a[5*y+x].
func keccakF1600(a *[25]uint64) { P1600(a, rounds) }

// P1600 applies the last n rounds of Keccak-p[1600, n] in place. n outside
// [0, 24] is clamped to the full permutation. The reduced form exists for
// the Keccak-p instances of FIPS 202; the SHA-3 and SHAKE sponges always use
// the full 24 rounds.
func P1600(a *[25]uint64, n int) {
	if n < 0 || n > rounds {
		n = rounds
	}
	for ir := rounds - n; ir < rounds; ir++ {
		// theta: xor each lane with the parity of two columns
		var c [5]uint64
		for x := 0; x < 5; x++ {
			c[x] = a[x] ^ a[x+5] ^ a[x+10] ^ a[x+15] ^ a[x+20]
		}
		for x := 0; x < 5; x++ {
			d := c[(x+4)%5] ^ bits.RotateLeft64(c[(x+1)%5], 1)
			for y := 0; y < 25; y += 5 {
				a[x+y] ^= d
			}
		}

		// rho: rotate each lane by its fixed offset, walking the
		// (x, y) -> (y, 2x+3y) cycle from (1, 0)
		x, y := 1, 0
		for t := 0; t < 24; t++ {
			i := 5*y + x
			a[i] = bits.RotateLeft64(a[i], ((t+1)*(t+2)/2)%64)
			x, y = y, (2*x+3*y)%5
		}

		// pi: A'[x, y] = A[x+3y, x]
		var b [25]uint64
		for x := 0; x < 5; x++ {
			for y := 0; y < 5; y++ {
				b[5*y+x] = a[5*x+(x+3*y)%5]
			}
		}

		// chi: mix each lane with its two row neighbours
		for y := 0; y < 25; y += 5 {
			for x := 0; x < 5; x++ {
				a[y+x] = b[y+x] ^ (^b[y+(x+1)%5] & b[y+(x+2)%5])
			}
		}

		// iota
		a[0] ^= rc[ir]
	}
}
