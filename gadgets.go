//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package masking

import (
	"fmt"

	"github.com/markkurossi/masking/diag"
	"github.com/markkurossi/masking/env"
	"github.com/markkurossi/masking/fault"
	"github.com/markkurossi/masking/metrics"
	"github.com/markkurossi/masking/rng"
)

// Gadgets binds the masking gadgets for the share vector S to an
// entropy source, diagnostic sink, and fault policy. Operations that
// need randomness raise the fault policy when the source fails and do
// not return.
type Gadgets[S Shares] struct {
	src     rng.Source
	sink    diag.Sink
	policy  *fault.Policy
	metrics *metrics.Metrics
	verbose bool
}

// New creates gadgets for the share vector S from the configuration.
func New[S Shares](config *env.Config) *Gadgets[S] {
	g := &Gadgets[S]{
		sink:    config.GetSink(),
		policy:  config.GetFault(),
		metrics: config.Metrics,
		verbose: config.Verbose,
	}
	g.src = &metered{
		src:     config.GetRandom(),
		metrics: config.Metrics,
	}
	return g
}

// N returns the share count.
func (g *Gadgets[S]) N() int {
	return NumShares[S]()
}

// Xor returns the masked XOR a^b.
func (g *Gadgets[S]) Xor(a, b *Value[S]) Value[S] {
	var z Value[S]
	z.Xor(a, b)
	g.metrics.Gadget(metrics.OpXor)
	return z
}

// Not returns the masked complement ^a.
func (g *Gadgets[S]) Not(a *Value[S]) Value[S] {
	var z Value[S]
	z.Not(a)
	g.metrics.Gadget(metrics.OpNot)
	return z
}

// And returns the masked AND a&b computed with a fresh randomness
// matrix. The matrix is wiped after its single use.
func (g *Gadgets[S]) And(a, b *Value[S]) Value[S] {
	r := g.Matrix()
	defer r.Wipe()

	var z Value[S]
	z.And(a, b, r)
	g.metrics.Gadget(metrics.OpAnd)
	return z
}

// Matrix builds a fresh randomness matrix for one AND.
func (g *Gadgets[S]) Matrix() *Matrix[S] {
	r, err := NewMatrix[S](g.src)
	if err != nil {
		g.halt("masked AND", err)
	}
	g.metrics.Matrix()
	if g.verbose {
		n := g.N()
		diag.Emitf(g.sink, "Random matrix (%dx%d) filled with %d random64 calls.",
			n, n, Pairs(n))
	}
	return r
}

// Mask returns a fresh masking of secret.
func (g *Gadgets[S]) Mask(secret uint64) Value[S] {
	z, err := Mask[S](secret, g.src)
	if err != nil {
		g.halt("mask", err)
	}
	g.metrics.Gadget(metrics.OpMask)
	return z
}

func (g *Gadgets[S]) halt(op string, err error) {
	g.metrics.Fault()
	g.policy.Raise(fmt.Sprintf("%s: %v", op, err))
	panic("masking: fault policy returned")
}

// metered counts the draws made from the entropy source.
type metered struct {
	src     rng.Source
	metrics *metrics.Metrics
}

func (m *metered) Random64() (uint64, error) {
	v, err := m.src.Random64()
	if err == nil {
		m.metrics.Draw(1)
	}
	return v, err
}
