//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package rng

// Counter wraps a Source and counts the draws made through it. If
// FailAt is positive, the FailAt:th draw and every draw after it fail
// with ErrEntropyUnavailable without consulting the wrapped source.
type Counter struct {
	Src    Source
	FailAt int
	Draws  int
	Fails  int
}

// Random64 implements Source.Random64.
func (c *Counter) Random64() (uint64, error) {
	c.Draws++
	if c.FailAt > 0 && c.Draws >= c.FailAt {
		c.Fails++
		return 0, ErrEntropyUnavailable
	}
	return c.Src.Random64()
}
