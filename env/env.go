//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

// Package env implements global environment for the SHA-0 tools.
package env

import (
	"io"

	"github.com/sirupsen/logrus"
)

// DefaultBufferSize is the default size of the read buffer used to
// feed inputs to the hasher.
const DefaultBufferSize = 4096

// Config defines the global configuration for the SHA-0 tools. Config
// must not be modified after being passed to any module.  It is safe
// for concurrent use by multiple modules as they do not modify it.
type Config struct {
	BufferSize int
	Verbose    bool
	Log        *logrus.Logger
}

// GetBufferSize returns the read buffer size for input sources.
func (config *Config) GetBufferSize() int {
	if config.BufferSize > 0 {
		return config.BufferSize
	}
	return DefaultBufferSize
}

// GetLogger returns the logger for diagnostics. The default logger
// discards all output.
func (config *Config) GetLogger() *logrus.Logger {
	if config.Log != nil {
		return config.Log
	}
	return discard
}

var discard = newDiscardLogger()

func newDiscardLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// NewLogger creates a logger that writes plain, timestamp-free lines
// to w. The logger emits debug messages if verbose is set.
func NewLogger(w io.Writer, verbose bool) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(w)
	log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		DisableQuote:     true,
	})
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	} else {
		log.SetLevel(logrus.InfoLevel)
	}
	return log
}
