//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package rng

import (
	"sync"
)

// Locked serializes access to a Source. Concurrent draws from an
// unserialized hardware source could hand the same entropy to two
// randomness matrices.
type Locked struct {
	m   sync.Mutex
	src Source
}

// NewLocked creates a serialized wrapper for src.
func NewLocked(src Source) *Locked {
	return &Locked{
		src: src,
	}
}

// Random64 implements Source.Random64.
func (l *Locked) Random64() (uint64, error) {
	l.m.Lock()
	defer l.m.Unlock()
	return l.src.Random64()
}
