//
// main.go
//
// Copyright (c) 2019-2025 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"runtime/pprof"

	"github.com/markkurossi/sha0/env"
	"github.com/markkurossi/sha0/timing"
	"github.com/markkurossi/text/superscript"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command with args and returns the process exit
// status.
func run(args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("sha0sum", flag.ContinueOnError)
	flags.SetOutput(stderr)
	bufSize := flags.Int("b", env.DefaultBufferSize, "read buffer size")
	verbose := flags.Bool("v", false, "verbose output")
	fTiming := flags.Bool("timing", false, "print timing information")
	cpuprofile := flags.String("cpuprofile", "", "write cpu profile to `file`")
	testIO := flags.Uint64("test-io", 0, "hash `n` bytes of generated data")
	seed := flags.String("seed", "sha0sum", "key for generated test data")
	if err := flags.Parse(args); err != nil {
		return 2
	}

	config := &env.Config{
		BufferSize: *bufSize,
		Verbose:    *verbose,
		Log:        env.NewLogger(stderr, *verbose),
	}
	log := config.GetLogger()

	if len(*cpuprofile) > 0 {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			log.Errorf("could not create CPU profile: %s", err)
			return 1
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Errorf("could not start CPU profile: %s", err)
			return 1
		}
		defer pprof.StopCPUProfile()
	}

	log.Debugf("SHA-0 is broken; do not use it for integrity or signatures")

	if *testIO > 0 {
		digest, err := hashTestIO(config, []byte(*seed), *testIO, stdout)
		if err != nil {
			log.Error(err)
			return 1
		}
		fmt.Fprintf(stdout, "%s  test-io\n", digest)
		return 0
	}

	files := flags.Args()
	if len(files) == 0 {
		files = []string{"-"}
	}

	t := timing.NewTiming()
	var failed bool

	for _, file := range files {
		result, err := sumFile(config, file)
		if err != nil {
			log.Errorf("%s: %s", file, err)
			failed = true
			continue
		}
		addSample(t, file, result)
		fmt.Fprintf(stdout, "%s  %s\n", result.Digest, file)
	}
	if *fTiming {
		t.Print(stdout)
		fmt.Fprintf(stdout, "Message length: %d bits (mod 2%s)\n",
			t.Total()*8, superscript.Itoa(64))
	}
	if failed {
		return 1
	}
	return 0
}
