//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package rng implements the entropy sources consumed by the masking
// gadgets. The gadgets only see the Source interface: a Source either
// returns a fresh 64-bit random value or fails with
// ErrEntropyUnavailable. It never returns a partial or default value.
package rng

import (
	"errors"
	"fmt"
)

// ErrEntropyUnavailable is returned when the underlying entropy
// mechanism cannot produce a value.
var ErrEntropyUnavailable = errors.New("rng: entropy unavailable")

// Source produces fresh 64-bit random values.
type Source interface {
	Random64() (uint64, error)
}

// SourceFunc adapts a function into a Source.
type SourceFunc func() (uint64, error)

// Random64 implements Source.Random64.
func (f SourceFunc) Random64() (uint64, error) {
	return f()
}

// Word32 is a 32-bit random number generator, typically a hardware
// RNG peripheral.
type Word32 interface {
	Random32() (uint32, error)
}

// Compose creates a Source which forms each 64-bit value from two
// consecutive 32-bit draws of w. The first draw is the high word.
func Compose(w Word32) Source {
	return &composed{
		w: w,
	}
}

type composed struct {
	w Word32
}

func (c *composed) Random64() (uint64, error) {
	hi, err := c.w.Random32()
	if err != nil {
		return 0, fmt.Errorf("%w: high word: %v", ErrEntropyUnavailable, err)
	}
	lo, err := c.w.Random32()
	if err != nil {
		return 0, fmt.Errorf("%w: low word: %v", ErrEntropyUnavailable, err)
	}
	return uint64(hi)<<32 | uint64(lo), nil
}
