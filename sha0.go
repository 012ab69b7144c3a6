//
// sha0.go
//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

// Package sha0 implements the SHA-0 hash algorithm, the original 1993
// Secure Hash Algorithm that was withdrawn in favor of SHA-1.
//
// SHA-0 has practical collision attacks. It must not be used for
// integrity protection, signatures, or any other security purpose;
// the package exists for interoperability with legacy data and for
// study.
//
// A Digest is created with New, fed with any number of Update calls,
// and consumed with Finalize which returns the 40-character lowercase
// hexadecimal digest:
//
//	d := sha0.New()
//	d.Update([]byte("hello "))
//	d.Update([]byte("world"))
//	fmt.Println(d.Finalize())
//
// Digest also implements hash.Hash so it can be used with io.Copy and
// other standard library plumbing.
//
// The message length is counted in bits in an unsigned 64-bit
// counter. Messages longer than 2^64-1 bits are outside the domain of
// the algorithm; for such inputs the counter wraps modulo 2^64.
package sha0

import (
	"encoding/binary"
	"encoding/hex"
	"errors"
	"hash"
)

// Size is the size of a SHA-0 checksum in bytes.
const Size = 20

// BlockSize is the block size of SHA-0 in bytes.
const BlockSize = 64

const (
	init0 = 0x67452301
	init1 = 0xEFCDAB89
	init2 = 0x98BADCFE
	init3 = 0x10325476
	init4 = 0xC3D2E1F0

	// lengthOffset is the offset of the big-endian bit length in the
	// final padded block.
	lengthOffset = BlockSize - 8
)

// ErrFinalized is returned when data is written to a Digest that has
// already been finalized.
var ErrFinalized = errors.New("sha0: digest already finalized")

var _ hash.Hash = (*Digest)(nil)

// Digest holds the state of an incremental SHA-0 computation. A
// Digest must not be used concurrently from multiple goroutines;
// independent Digests need no coordination.
type Digest struct {
	h         [5]uint32
	x         [BlockSize]byte
	nx        int
	len       uint64
	finalized bool
}

// New creates a new Digest in its initial state.
func New() *Digest {
	d := new(Digest)
	d.Reset()
	return d
}

// Reset returns the digest to its initial state.
func (d *Digest) Reset() {
	d.h[0] = init0
	d.h[1] = init1
	d.h[2] = init2
	d.h[3] = init3
	d.h[4] = init4
	d.nx = 0
	d.len = 0
	d.finalized = false
}

// Size returns the number of bytes Sum will return.
func (d *Digest) Size() int { return Size }

// BlockSize returns the hash's underlying block size.
func (d *Digest) BlockSize() int { return BlockSize }

// Len returns the number of message bits processed so far, modulo
// 2^64.
func (d *Digest) Len() uint64 {
	return d.len
}

// Update adds p to the running hash. Calling Update several times is
// equivalent to calling it once with the concatenation of the
// arguments. Update panics if the digest has been finalized.
func (d *Digest) Update(p []byte) {
	if d.finalized {
		panic(ErrFinalized)
	}
	d.write(p)
}

// Write implements io.Writer. It never fails unless the digest has
// been finalized.
func (d *Digest) Write(p []byte) (int, error) {
	if d.finalized {
		return 0, ErrFinalized
	}
	d.write(p)
	return len(p), nil
}

func (d *Digest) write(p []byte) {
	d.len += uint64(len(p)) << 3

	if d.nx > 0 {
		n := copy(d.x[d.nx:], p)
		d.nx += n
		if d.nx == BlockSize {
			block(d, d.x[:])
			d.nx = 0
		}
		p = p[n:]
	}
	if len(p) >= BlockSize {
		n := len(p) &^ (BlockSize - 1)
		block(d, p[:n])
		p = p[n:]
	}
	if len(p) > 0 {
		d.nx = copy(d.x[:], p)
	}
}

// Finalize pads the message, processes the remaining blocks, and
// returns the digest as a 40-character lowercase hexadecimal string.
// The digest is consumed: any further Update, Write, Sum, or Finalize
// call is an error until the digest is Reset.
func (d *Digest) Finalize() string {
	if d.finalized {
		panic(ErrFinalized)
	}
	sum := d.checkSum()
	d.finalized = true
	return hex.EncodeToString(sum[:])
}

// Sum appends the current hash to in and returns the resulting
// slice. It does not change the underlying hash state.
func (d *Digest) Sum(in []byte) []byte {
	if d.finalized {
		panic(ErrFinalized)
	}
	d0 := *d
	hash := d0.checkSum()
	return append(in, hash[:]...)
}

// checkSum pads the pending data and drains the final block or
// blocks. It modifies d.
func (d *Digest) checkSum() [Size]byte {
	length := d.len

	// Padding: a single 1 bit, then 0 bits until the pending data is
	// 56 bytes mod 64. When the 0x80 byte does not fit in front of the
	// length, the padding spills into an extra block.
	var tmp [BlockSize]byte
	tmp[0] = 0x80
	var n int
	if d.nx < lengthOffset {
		n = lengthOffset - d.nx
	} else {
		n = BlockSize + lengthOffset - d.nx
	}
	d.write(tmp[:n])

	binary.BigEndian.PutUint64(tmp[:8], length)
	d.write(tmp[:8])

	if d.nx != 0 {
		panic("sha0: padding left a partial block")
	}

	var digest [Size]byte
	for i, s := range d.h {
		binary.BigEndian.PutUint32(digest[i*4:], s)
	}
	return digest
}

// Sum returns the SHA-0 checksum of the data.
func Sum(data []byte) [Size]byte {
	var d Digest
	d.Reset()
	d.write(data)
	return d.checkSum()
}

// SumHex returns the SHA-0 checksum of the data as a lowercase
// hexadecimal string.
func SumHex(data []byte) string {
	sum := Sum(data)
	return hex.EncodeToString(sum[:])
}
