//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package masking implements Boolean masking gadgets for 64-bit
// values in the style of Ishai, Sahai, and Wagner.
//
// A secret x is never held in the clear. It is represented as N
// shares whose XOR reconstructs it:
//
//	x = s[0] ^ s[1] ^ ... ^ s[N-1]
//
// The share count N is a compile-time parameter: it is the length of
// the share array type S. Value[[3]uint64] is a 3-share value and
// its width cannot change at run time.
//
// XOR and NOT are linear and operate share-wise without
// randomness. AND is nonlinear: every cross term a[i]&b[j] between
// two distinct shares is folded into the output together with a fresh
// pairwise random value r[i][j] from a randomness Matrix. A matrix is
// built immediately before one AND, consumed once, and wiped.
//
// Typical usage:
//
//	g := masking.New[[3]uint64](&env.Config{})
//	a := g.Mask(0x6)
//	b := g.Mask(0x8)
//	c := g.And(&a, &b)
//
// If the entropy source fails, Gadgets raises the fail-stop fault
// policy and the call never returns.
package masking
