//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package env

import (
	"bytes"
	"testing"

	"github.com/markkurossi/masking/diag"
	"github.com/markkurossi/masking/fault"
	"github.com/markkurossi/masking/rng"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	config := &Config{}

	src := config.GetRandom()
	require.NotNil(t, src)
	require.Same(t, src, (&Config{}).GetRandom())

	_, err := src.Random64()
	require.NoError(t, err)

	require.NotNil(t, config.GetSink())

	p := config.GetFault()
	require.NotNil(t, p)
	require.Same(t, config.GetSink(), p.Sink)
}

func TestOverrides(t *testing.T) {
	var buf bytes.Buffer
	src := rng.SourceFunc(func() (uint64, error) {
		return 1, nil
	})
	sink := diag.NewLine(&buf)
	policy := &fault.Policy{}

	config := &Config{
		Rand:  src,
		Sink:  sink,
		Fault: policy,
	}
	v, err := config.GetRandom().Random64()
	require.NoError(t, err)
	require.Equal(t, uint64(1), v)
	require.Same(t, sink, config.GetSink())
	require.Same(t, policy, config.GetFault())
}
