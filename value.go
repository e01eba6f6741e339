//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package masking

import (
	"fmt"

	"github.com/markkurossi/masking/rng"
)

// Shares defines the supported share vectors. The array length is
// the share count N.
type Shares interface {
	[1]uint64 | [2]uint64 | [3]uint64 | [4]uint64 |
		[5]uint64 | [6]uint64 | [7]uint64 | [8]uint64
}

// Value is a masked 64-bit value with the share vector S. The secret
// it represents is the XOR of all shares.
type Value[S Shares] struct {
	Share S
}

// Value types for the common share counts.
type (
	Value1 = Value[[1]uint64]
	Value2 = Value[[2]uint64]
	Value3 = Value[[3]uint64]
	Value4 = Value[[4]uint64]
	Value5 = Value[[5]uint64]
)

// NumShares returns the share count N of the share vector S.
func NumShares[S Shares]() int {
	var s S
	return len(s)
}

// Xor sets z to the masked XOR a^b and returns z. The operation is
// share-wise and consumes no randomness.
func (z *Value[S]) Xor(a, b *Value[S]) *Value[S] {
	for i := 0; i < len(z.Share); i++ {
		z.Share[i] = a.Share[i] ^ b.Share[i]
	}
	return z
}

// Not sets z to the masked complement ^a and returns z. Every share
// is complemented and share 0 is corrected so that the XOR of the
// result is the complement of the XOR of a for both odd and even
// share counts.
func (z *Value[S]) Not(a *Value[S]) *Value[S] {
	var orig, inv uint64

	for i := 0; i < len(a.Share); i++ {
		orig ^= a.Share[i]
	}
	for i := 0; i < len(z.Share); i++ {
		z.Share[i] = ^a.Share[i]
		inv ^= z.Share[i]
	}
	z.Share[0] ^= inv ^ ^orig

	return z
}

// Unmask reconstructs the secret by XORing all shares. It is meant
// for verification; production code keeps secrets masked.
func (z *Value[S]) Unmask() uint64 {
	var v uint64
	for i := 0; i < len(z.Share); i++ {
		v ^= z.Share[i]
	}
	return v
}

// Mask creates a fresh masking of secret. It draws N-1 random shares
// from src and sets the last share so that the shares XOR to secret.
// If any draw fails, Mask returns an error and no value.
func Mask[S Shares](secret uint64, src rng.Source) (Value[S], error) {
	var z Value[S]

	n := len(z.Share)
	acc := secret
	for i := 0; i < n-1; i++ {
		v, err := src.Random64()
		if err != nil {
			z.Wipe()
			return Value[S]{}, fmt.Errorf("masking: share %d/%d: %w",
				i, n, err)
		}
		z.Share[i] = v
		acc ^= v
	}
	z.Share[n-1] = acc

	return z, nil
}

// Wipe zeroes all shares of z.
func (z *Value[S]) Wipe() {
	var zero S
	z.Share = zero
}
