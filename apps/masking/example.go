//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"fmt"
	"log"

	"github.com/markkurossi/masking"
	"github.com/markkurossi/masking/env"
	"github.com/markkurossi/text/superscript"
)

// example runs the masked AND on fixed 2-share test vectors. The
// shares are public test data; real shares must never be printed.
func example(config *env.Config) {
	a := masking.Value2{Share: [2]uint64{0x5, 0x3}}
	b := masking.Value2{Share: [2]uint64{0x9, 0x1}}

	r, err := masking.MatrixFrom([][2]uint64{
		{0, 0x77},
		{0x77, 0},
	})
	if err != nil {
		log.Fatal(err)
	}
	defer r.Wipe()

	var z masking.Value2
	z.And(&a, &b, r)

	for i := 0; i < len(a.Share); i++ {
		fmt.Printf("a%s=%#x\tb%s=%#x\tz%s=%#x\n",
			superscript.Itoa(i), a.Share[i],
			superscript.Itoa(i), b.Share[i],
			superscript.Itoa(i), z.Share[i])
	}
	fmt.Printf("a=%#x b=%#x r[0][1]=%#x\n", a.Unmask(), b.Unmask(),
		r.At(0, 1))
	fmt.Printf("a&b=%#x\n", z.Unmask())

	g := masking.New[[2]uint64](config)
	x := g.Mask(0x6)
	y := g.Mask(0x8)
	c := g.And(&x, &y)
	fmt.Printf("fresh masking: a&b=%#x\n", c.Unmask())
}
