//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/markkurossi/sha0"
	"github.com/markkurossi/sha0/env"
	"github.com/markkurossi/sha0/timing"
)

// Result holds the digest of one input.
type Result struct {
	Digest   string
	Size     uint64
	Blocks   uint64
	ReadTime time.Duration
	HashTime time.Duration
}

// addSample records the result as a timing sample with separate read
// and hash sub-samples.
func addSample(t *timing.Timing, name string, result *Result) *timing.Sample {
	sample := t.Sample(name, result.Size, []string{
		fmt.Sprintf("%d blocks", result.Blocks),
	})
	sample.AbsSubSample("read", result.ReadTime)
	sample.AbsSubSample("hash", result.HashTime)
	return sample
}

// sumReader feeds the bytes of in to a SHA-0 digest in chunks of the
// configured buffer size.
func sumReader(config *env.Config, name string, in io.Reader) (
	*Result, error) {

	log := config.GetLogger()
	buf := make([]byte, config.GetBufferSize())
	d := sha0.New()

	var size uint64
	var chunks int
	var readTime, hashTime time.Duration
	for {
		start := time.Now()
		n, err := in.Read(buf)
		readTime += time.Since(start)
		if n > 0 {
			start = time.Now()
			d.Update(buf[:n])
			hashTime += time.Since(start)
			size += uint64(n)
			chunks++
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("read failed: %w", err)
		}
	}
	log.Debugf("%s: %d bytes in %d chunks, %d bits", name, size, chunks,
		d.Len())

	start := time.Now()
	digest := d.Finalize()
	hashTime += time.Since(start)

	return &Result{
		Digest:   digest,
		Size:     size,
		Blocks:   (size+8)/sha0.BlockSize + 1,
		ReadTime: readTime,
		HashTime: hashTime,
	}, nil
}

// sumFile computes the digest of the named file. The name "-" refers
// to the standard input.
func sumFile(config *env.Config, name string) (*Result, error) {
	if name == "-" {
		return sumReader(config, name, os.Stdin)
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return sumReader(config, name, f)
}
