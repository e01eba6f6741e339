//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package masking

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/markkurossi/masking/rng"
	"github.com/stretchr/testify/require"
)

const trials = 2000

const ones = ^uint64(0)

func allWidths(t *testing.T, fns ...func(t *testing.T)) {
	for idx, fn := range fns {
		t.Run(fmt.Sprintf("N=%d", idx+1), fn)
	}
}

func seeded(t *testing.T, seed byte) rng.Source {
	src, err := rng.NewChaChaSource(bytes.Repeat([]byte{seed}, 32))
	require.NoError(t, err)
	return src
}

func draw(t *testing.T, src rng.Source) uint64 {
	v, err := src.Random64()
	require.NoError(t, err)
	return v
}

func randomValue[S Shares](t *testing.T, src rng.Source) Value[S] {
	var v Value[S]
	for i := 0; i < len(v.Share); i++ {
		v.Share[i] = draw(t, src)
	}
	return v
}

func filled[S Shares](share uint64) Value[S] {
	var v Value[S]
	for i := 0; i < len(v.Share); i++ {
		v.Share[i] = share
	}
	return v
}

// boundary returns share assignments built from 0 and all-ones.
func boundary[S Shares](t *testing.T, src rng.Source) []Value[S] {
	z, err := Mask[S](0, src)
	require.NoError(t, err)
	o, err := Mask[S](ones, src)
	require.NoError(t, err)

	return []Value[S]{
		filled[S](0),
		filled[S](ones),
		z,
		o,
	}
}
