//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package rng

import (
	"crypto/rand"
	"encoding/binary"
	"io"
)

// Reader implements Word32 on top of an io.Reader. A short read is an
// entropy failure.
type Reader struct {
	R io.Reader
}

// Random32 implements Word32.Random32.
func (r *Reader) Random32() (uint32, error) {
	var buf [4]byte
	_, err := io.ReadFull(r.R, buf[:])
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(buf[:]), nil
}

// NewReader creates a Source reading its entropy from r. If r is nil,
// the source reads from crypto/rand.
func NewReader(r io.Reader) Source {
	if r == nil {
		r = rand.Reader
	}
	return Compose(&Reader{
		R: r,
	})
}
