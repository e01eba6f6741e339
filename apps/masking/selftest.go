//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"fmt"
	"os"

	"github.com/markkurossi/masking"
	"github.com/markkurossi/masking/diag"
	"github.com/markkurossi/masking/env"
	"github.com/markkurossi/masking/fault"
	"github.com/markkurossi/masking/rng"
	"github.com/markkurossi/masking/timing"
	"github.com/markkurossi/tabulate"
)

type result struct {
	property string
	err      error
}

type width struct {
	n     int
	test  func(config *env.Config, trials int) []result
	bench func(config *env.Config, iterations int, t *timing.Timing)
}

var widths = []width{
	{1, selfTest[[1]uint64], bench[[1]uint64]},
	{2, selfTest[[2]uint64], bench[[2]uint64]},
	{3, selfTest[[3]uint64], bench[[3]uint64]},
	{4, selfTest[[4]uint64], bench[[4]uint64]},
	{5, selfTest[[5]uint64], bench[[5]uint64]},
	{6, selfTest[[6]uint64], bench[[6]uint64]},
	{7, selfTest[[7]uint64], bench[[7]uint64]},
	{8, selfTest[[8]uint64], bench[[8]uint64]},
}

func selfTestAll(config *env.Config, trials int) bool {
	tab := tabulate.New(tabulate.UnicodeLight)
	tab.Header("N").SetAlign(tabulate.MR)
	tab.Header("Property").SetAlign(tabulate.ML)
	tab.Header("Result").SetAlign(tabulate.ML)

	var failed bool
	for _, w := range widths {
		for _, r := range w.test(config, trials) {
			row := tab.Row()
			row.Column(fmt.Sprintf("%d", w.n))
			row.Column(r.property)
			if r.err != nil {
				failed = true
				row.Column(r.err.Error()).SetFormat(tabulate.FmtBold)
			} else {
				row.Column("ok")
			}
		}
	}
	tab.Print(os.Stdout)
	return failed
}

func selfTest[S masking.Shares](config *env.Config, trials int) []result {
	g := masking.New[S](config)
	src := config.GetRandom()

	return []result{
		{"xor", checkXor(g, trials)},
		{"not", checkNot(g, trials)},
		{"and", checkAnd(g, trials)},
		{"matrix", checkMatrix[S](src)},
		{"fault", checkFault[S](src)},
	}
}

func boundary(i int) (uint64, uint64) {
	values := []uint64{0, ^uint64(0)}
	return values[i&1], values[(i>>1)&1]
}

func checkXor[S masking.Shares](g *masking.Gadgets[S], trials int) error {
	for i := 0; i < trials; i++ {
		x, y := boundary(i)
		if i >= 4 {
			x, y = uint64(i)*0x9e3779b97f4a7c15, uint64(i)*0xc2b2ae3d27d4eb4f
		}
		a := g.Mask(x)
		b := g.Mask(y)
		z := g.Xor(&a, &b)
		if z.Unmask() != x^y {
			return fmt.Errorf("%x^%x: got %x", x, y, z.Unmask())
		}
	}
	return nil
}

func checkNot[S masking.Shares](g *masking.Gadgets[S], trials int) error {
	for i := 0; i < trials; i++ {
		x, _ := boundary(i)
		if i >= 2 {
			x = uint64(i) * 0x9e3779b97f4a7c15
		}
		a := g.Mask(x)
		z := g.Not(&a)
		if z.Unmask() != ^x {
			return fmt.Errorf("^%x: got %x", x, z.Unmask())
		}
	}
	return nil
}

func checkAnd[S masking.Shares](g *masking.Gadgets[S], trials int) error {
	for i := 0; i < trials; i++ {
		x, y := boundary(i)
		if i >= 4 {
			x, y = uint64(i)*0x9e3779b97f4a7c15, uint64(i)*0xc2b2ae3d27d4eb4f
		}
		a := g.Mask(x)
		b := g.Mask(y)
		z := g.And(&a, &b)
		if z.Unmask() != x&y {
			return fmt.Errorf("%x&%x: got %x", x, y, z.Unmask())
		}
	}
	return nil
}

func checkMatrix[S masking.Shares](src rng.Source) error {
	n := masking.NumShares[S]()
	counter := &rng.Counter{
		Src: src,
	}
	m, err := masking.NewMatrix[S](counter)
	if err != nil {
		return err
	}
	defer m.Wipe()

	if err := m.Validate(); err != nil {
		return err
	}
	if counter.Draws != masking.Pairs(n) {
		return fmt.Errorf("%d draws: expected %d", counter.Draws,
			masking.Pairs(n))
	}
	return nil
}

// observer reports the fault instead of blinking. The faulting
// goroutine stays blocked in the fault policy.
type observer struct {
	signaled chan struct{}
}

func (o *observer) Signal() {
	o.signaled <- struct{}{}
}

func checkFault[S masking.Shares](src rng.Source) error {
	n := masking.NumShares[S]()
	for k := 1; k <= masking.Pairs(n); k++ {
		ind := &observer{
			signaled: make(chan struct{}, 1),
		}
		policy := &fault.Policy{
			Indicator: ind,
		}
		counter := &rng.Counter{
			Src:    src,
			FailAt: k,
		}
		g := masking.New[S](&env.Config{
			Rand:  counter,
			Sink:  diag.Discard,
			Fault: policy,
		})
		var a, b masking.Value[S]

		done := make(chan struct{})
		go func() {
			g.And(&a, &b)
			close(done)
		}()
		select {
		case <-done:
			return fmt.Errorf("AND returned after failed draw %d", k)
		case <-ind.signaled:
		}
		if policy.Raised() != 1 {
			return fmt.Errorf("fault raised %d times", policy.Raised())
		}
		if counter.Draws != k {
			return fmt.Errorf("%d draws after failure at %d", counter.Draws, k)
		}
	}
	return nil
}

func bench[S masking.Shares](config *env.Config, iterations int,
	t *timing.Timing) {

	g := masking.New[S](config)
	n := masking.NumShares[S]()

	a := g.Mask(0x0123456789abcdef)
	b := g.Mask(0xfedcba9876543210)
	t.Sample(fmt.Sprintf("mask N=%d", n), 2, 2*(n-1))

	for i := 0; i < iterations; i++ {
		a = g.Xor(&a, &b)
	}
	t.Sample(fmt.Sprintf("xor N=%d", n), iterations, 0)

	for i := 0; i < iterations; i++ {
		a = g.Not(&a)
	}
	t.Sample(fmt.Sprintf("not N=%d", n), iterations, 0)

	for i := 0; i < iterations; i++ {
		a = g.And(&a, &b)
	}
	t.Sample(fmt.Sprintf("and N=%d", n), iterations,
		iterations*masking.Pairs(n))
}
