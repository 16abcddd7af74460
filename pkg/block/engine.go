// Package block implements the incremental buffering and finalization logic
// shared by every digest family in this module.
//
// Each family owns its state words and a pure compression function; this
// package owns everything else: accumulating arbitrary-length input into
// block-sized chunks, the total-length counter, and the two termination
// disciplines (Merkle–Damgård length padding and sponge domain-separated
// padding). An Engine holds no pointers, so copying the enclosing digest
// struct by value yields a fully independent context.
package block

import "encoding/binary"

// MaxBlockSize is the largest block length of any supported family
// (the SHAKE128 sponge rate, 1600/8 - 2*128/8 bytes).
const MaxBlockSize = 168

// Compressor is the per-family compression core driven by an Engine.
// Compress must treat block as read-only and consume exactly one block.
type Compressor interface {
	BlockSize() int
	Compress(block []byte)
}

// Engine accumulates input for a Compressor and tracks the total number of
// bytes processed as a 128-bit quantity so that the SHA-512 family cannot
// overflow its bit counter. After every exported call, 0 <= fill < block size.
//
// The zero value is ready for use.
type Engine struct {
	buf [MaxBlockSize]byte
	n   int
	lo  uint64 // total bytes processed, low word
	hi  uint64 // total bytes processed, high word
}

// Reset returns the engine to its initial state.
func (e *Engine) Reset() { *e = Engine{} }

// Len returns the total number of bytes written so far, as low and high
// 64-bit words.
func (e *Engine) Len() (lo, hi uint64) { return e.lo, e.hi }

// Write appends p to the block buffer, invoking c.Compress for every filled
// block. A zero-length p is a no-op. Splitting an input across any sequence
// of Write calls produces the same compression sequence as a single call.
func (e *Engine) Write(c Compressor, p []byte) {
	if len(p) == 0 {
		return
	}
	bs := c.BlockSize()

	lo := e.lo + uint64(len(p))
	if lo < e.lo {
		e.hi++
	}
	e.lo = lo

	if e.n > 0 {
		k := copy(e.buf[e.n:bs], p)
		e.n += k
		p = p[k:]
		if e.n < bs {
			return
		}
		c.Compress(e.buf[:bs])
		e.n = 0
	}
	for len(p) >= bs {
		c.Compress(p[:bs])
		p = p[bs:]
	}
	e.n = copy(e.buf[:], p)
}

// FinishLength terminates a Merkle–Damgård stream: it appends the pad byte
// (0x80 for most families, 0x01 for classic Tiger), zero-fills, and stores
// the total input length in bits in the final lenBytes bytes of the block
// using the family's wire byte order. When fewer than lenBytes bytes remain
// after the pad byte, an extra all-zero block is compressed first.
//
// FinishLength mutates the engine and the compressor state; callers that
// need the non-mutating "get" contract finalize a value copy.
func (e *Engine) FinishLength(c Compressor, pad byte, lenBytes int, bo binary.ByteOrder) {
	bs := c.BlockSize()
	bitsLo := e.lo << 3
	bitsHi := e.hi<<3 | e.lo>>61

	e.buf[e.n] = pad
	e.n++
	if e.n > bs-lenBytes {
		clear(e.buf[e.n:bs])
		c.Compress(e.buf[:bs])
		e.n = 0
	}
	clear(e.buf[e.n : bs-lenBytes])

	tail := e.buf[bs-lenBytes : bs]
	switch {
	case lenBytes == 8:
		bo.PutUint64(tail, bitsLo)
	case bo == binary.ByteOrder(binary.BigEndian):
		bo.PutUint64(tail[:8], bitsHi)
		bo.PutUint64(tail[8:], bitsLo)
	default:
		bo.PutUint64(tail[:8], bitsLo)
		bo.PutUint64(tail[8:], bitsHi)
	}
	c.Compress(e.buf[:bs])
	e.n = 0
}

// FinishPad terminates a sponge stream: it appends the domain-separation
// suffix (which carries the first bit of the 10*1 pad), zero-fills, sets the
// final 1 bit in the last byte of the block, and compresses. When the suffix
// lands on the final byte the two pad bits share it, which is the FIPS 202
// single-byte padding case.
func (e *Engine) FinishPad(c Compressor, suffix byte) {
	bs := c.BlockSize()
	e.buf[e.n] = suffix
	clear(e.buf[e.n+1 : bs])
	e.buf[bs-1] |= 0x80
	c.Compress(e.buf[:bs])
	e.n = 0
}
