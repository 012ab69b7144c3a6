//
// iotest.go
//
// Copyright (c) 2023-2025 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"fmt"
	"io"
	"math"

	"github.com/markkurossi/sha0"
	"github.com/markkurossi/sha0/env"
	"github.com/markkurossi/sha0/timing"
	"golang.org/x/crypto/chacha20"
)

// keystream generates a deterministic ChaCha20 keystream. The seed
// is repeated or trimmed to the 32-byte key and the nonce is zero.
type keystream struct {
	cipher *chacha20.Cipher
}

func newKeystream(seed []byte) (*keystream, error) {
	if len(seed) == 0 {
		return nil, fmt.Errorf("empty keystream seed")
	}
	key := make([]byte, chacha20.KeySize)
	for i := 0; i < len(key); i++ {
		key[i] = seed[i%len(seed)]
	}
	nonce := make([]byte, chacha20.NonceSize)
	c, err := chacha20.NewUnauthenticatedCipher(key, nonce)
	if err != nil {
		return nil, err
	}
	return &keystream{
		cipher: c,
	}, nil
}

// Read fills p with the next len(p) keystream bytes.
func (ks *keystream) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = 0
	}
	ks.cipher.XORKeyStream(p, p)
	return len(p), nil
}

// hashTestIO hashes size bytes of keystream generated from seed and
// prints a timing report to out.
func hashTestIO(config *env.Config, seed []byte, size uint64,
	out io.Writer) (string, error) {

	if size > math.MaxInt64 {
		return "", fmt.Errorf("test-io size %d exceeds the maximum %d",
			size, int64(math.MaxInt64))
	}
	ks, err := newKeystream(seed)
	if err != nil {
		return "", err
	}
	t := timing.NewTiming()

	result, err := sumReader(config, "test-io", io.LimitReader(ks,
		int64(size)))
	if err != nil {
		return "", err
	}
	addSample(t, "test-io", result)
	if result.Size != size {
		return "", fmt.Errorf("hashed %d bytes, expected %d",
			result.Size, size)
	}
	config.GetLogger().Infof("hashed %v in %d blocks, %d-byte chunks",
		timing.FileSize(result.Size), result.Blocks,
		config.GetBufferSize())
	if config.Verbose {
		t.Print(out)
	}
	if sha0.Size*2 != len(result.Digest) {
		return "", fmt.Errorf("invalid digest %q", result.Digest)
	}
	return result.Digest, nil
}
