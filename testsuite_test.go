//
// Copyright (c) 2019-2025 Markku Rossi
//
// All rights reserved.
//

package sha0

import (
	"bufio"
	"bytes"
	"encoding/hex"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

const (
	testsuite = "testsuite"
)

type vector struct {
	file    string
	line    int
	repeat  int
	pattern []byte
	digest  string
	heavy   bool
}

func (v *vector) input() []byte {
	return bytes.Repeat(v.pattern, v.repeat)
}

func (v *vector) String() string {
	return fmt.Sprintf("%s:%d", v.file, v.line)
}

func TestSuite(t *testing.T) {
	err := filepath.WalkDir(testsuite,
		func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			testFile(t, path)
			return nil
		})
	if err != nil {
		t.Fatalf("failed to walk %s: %s", testsuite, err)
	}
}

func testFile(t *testing.T, file string) {
	if !strings.HasSuffix(file, ".vec") {
		return
	}
	vectors, err := parseVectors(file)
	if err != nil {
		t.Errorf("failed to parse '%s': %s", file, err)
		return
	}
	for _, v := range vectors {
		if v.heavy && testing.Short() {
			fmt.Printf("Skipping heavy test %s\n", v)
			continue
		}
		data := v.input()

		if got := SumHex(data); got != v.digest {
			t.Errorf("%s: SumHex=%s, expected %s", v, got, v.digest)
		}

		// Feed the input one pattern at a time.
		d := New()
		for i := 0; i < v.repeat; i++ {
			d.Update(v.pattern)
		}
		if got := d.Finalize(); got != v.digest {
			t.Errorf("%s: Finalize=%s, expected %s", v, got, v.digest)
		}
	}
}

func parseVectors(file string) ([]*vector, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var result []*vector
	var heavy bool
	var lineNo int

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if len(line) == 0 || line[0] == '#' {
			continue
		}
		if line == "@heavy" {
			heavy = true
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 3 {
			return nil, fmt.Errorf("%s:%d: expected 3 fields, got %d",
				file, lineNo, len(fields))
		}
		repeat, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("%s:%d: invalid repeat: %w",
				file, lineNo, err)
		}
		var pattern []byte
		if fields[1] != "-" {
			pattern, err = hex.DecodeString(fields[1])
			if err != nil {
				return nil, fmt.Errorf("%s:%d: invalid pattern: %w",
					file, lineNo, err)
			}
		}
		if len(fields[2]) != Size*2 {
			return nil, fmt.Errorf("%s:%d: invalid digest length %d",
				file, lineNo, len(fields[2]))
		}
		result = append(result, &vector{
			file:    file,
			line:    lineNo,
			repeat:  repeat,
			pattern: pattern,
			digest:  fields[2],
			heavy:   heavy,
		})
		heavy = false
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
