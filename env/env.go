//
// Copyright (c) 2025-2026 Markku Rossi
//
// All rights reserved.
//

// Package env implements global environment for the masking system.
package env

import (
	"os"
	"sync"

	"github.com/markkurossi/masking/diag"
	"github.com/markkurossi/masking/fault"
	"github.com/markkurossi/masking/metrics"
	"github.com/markkurossi/masking/rng"
)

// Config defines the global system configuration for the masking
// system. Config must not be modified after being passed to any
// masking module. It is safe for concurrent use by multiple modules
// as they do not modify it.
type Config struct {
	// Rand is the source of entropy. It must be serialized if
	// gadgets run on several goroutines.
	Rand rng.Source

	// Sink receives diagnostic messages.
	Sink diag.Sink

	// Fault is the fail-stop policy for entropy failures.
	Fault *fault.Policy

	// Metrics records gadget counters. Optional.
	Metrics *metrics.Metrics

	// Verbose enables tracing of matrix-fill events. Values are
	// never traced.
	Verbose bool
}

var (
	defaultRandom rng.Source
	defaultSink   diag.Sink
	defaultOnce   sync.Once
)

func initDefaults() {
	defaultRandom = rng.NewLocked(rng.NewReader(nil))
	defaultSink = diag.NewLine(os.Stderr)
}

// GetRandom returns the source of entropy for the gadgets. The default
// is a process-wide serialized source reading crypto/rand.
func (config *Config) GetRandom() rng.Source {
	if config.Rand != nil {
		return config.Rand
	}
	defaultOnce.Do(initDefaults)
	return defaultRandom
}

// GetSink returns the diagnostic sink. The default writes lines to
// standard error.
func (config *Config) GetSink() diag.Sink {
	if config.Sink != nil {
		return config.Sink
	}
	defaultOnce.Do(initDefaults)
	return defaultSink
}

// GetFault returns the fault policy. The default policy emits to the
// configured sink and blocks the faulting goroutine forever.
func (config *Config) GetFault() *fault.Policy {
	if config.Fault != nil {
		return config.Fault
	}
	return &fault.Policy{
		Sink: config.GetSink(),
	}
}
