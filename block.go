//
// block.go
//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package sha0

import (
	"encoding/binary"
	"fmt"
	"math/bits"
)

// Round constants for the four 20-round ranges.
const (
	_K0 = 0x5A827999
	_K1 = 0x6ED9EBA1
	_K2 = 0x8F1BBCDC
	_K3 = 0xCA62C1D6
)

// Compress applies the SHA-0 compression function to one 64-byte
// block and returns the chained state. The argument state is not
// modified. Compress panics if len(block) is not BlockSize.
func Compress(state [5]uint32, block []byte) [5]uint32 {
	if len(block) != BlockSize {
		panic(fmt.Sprintf("sha0: invalid block size %d", len(block)))
	}
	return compress(state, block)
}

// block processes p which must be a multiple of BlockSize bytes.
func block(d *Digest, p []byte) {
	for len(p) >= BlockSize {
		d.h = compress(d.h, p[:BlockSize])
		p = p[BlockSize:]
	}
}

// expand computes the message schedule of the block. Unlike SHA-1,
// the XOR of the earlier words is not rotated.
func expand(w *[80]uint32, p []byte) {
	for i := 0; i < 16; i++ {
		w[i] = binary.BigEndian.Uint32(p[i*4:])
	}
	for t := 16; t < 80; t++ {
		w[t] = w[t-3] ^ w[t-8] ^ w[t-14] ^ w[t-16]
	}
}

func compress(state [5]uint32, p []byte) [5]uint32 {
	var w [80]uint32
	expand(&w, p)

	a, b, c, d, e := state[0], state[1], state[2], state[3], state[4]

	for t := 0; t < 20; t++ {
		f := b&c | (^b)&d
		tmp := bits.RotateLeft32(a, 5) + f + e + w[t] + _K0
		a, b, c, d, e = tmp, a, bits.RotateLeft32(b, 30), c, d
	}
	for t := 20; t < 40; t++ {
		f := b ^ c ^ d
		tmp := bits.RotateLeft32(a, 5) + f + e + w[t] + _K1
		a, b, c, d, e = tmp, a, bits.RotateLeft32(b, 30), c, d
	}
	for t := 40; t < 60; t++ {
		f := ((b | c) & d) | (b & c)
		tmp := bits.RotateLeft32(a, 5) + f + e + w[t] + _K2
		a, b, c, d, e = tmp, a, bits.RotateLeft32(b, 30), c, d
	}
	for t := 60; t < 80; t++ {
		f := b ^ c ^ d
		tmp := bits.RotateLeft32(a, 5) + f + e + w[t] + _K3
		a, b, c, d, e = tmp, a, bits.RotateLeft32(b, 30), c, d
	}

	// Feed-forward onto the pre-block state.
	state[0] += a
	state[1] += b
	state[2] += c
	state[3] += d
	state[4] += e

	return state
}
