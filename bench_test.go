//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package sha0

import (
	"testing"
)

var benchBuf = make([]byte, 8192)

func benchmarkSize(b *testing.B, size int) {
	d := New()
	b.SetBytes(int64(size))
	sum := make([]byte, 0, Size)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		d.Reset()
		d.Update(benchBuf[:size])
		d.Sum(sum[:0])
	}
}

func BenchmarkHash8Bytes(b *testing.B) {
	benchmarkSize(b, 8)
}

func BenchmarkHash320Bytes(b *testing.B) {
	benchmarkSize(b, 320)
}

func BenchmarkHash1K(b *testing.B) {
	benchmarkSize(b, 1024)
}

func BenchmarkHash8K(b *testing.B) {
	benchmarkSize(b, 8192)
}

// BenchmarkCompress measures a single block compression.
func BenchmarkCompress(b *testing.B) {
	state := initState
	b.SetBytes(BlockSize)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		state = Compress(state, benchBuf[:BlockSize])
	}
}
