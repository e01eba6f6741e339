//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.Draw(6)
	m.Matrix()
	m.Gadget(OpAnd)
	m.Gadget(OpAnd)
	m.Gadget(OpXor)
	m.Fault()

	require.Equal(t, 6.0, testutil.ToFloat64(m.Draws))
	require.Equal(t, 1.0, testutil.ToFloat64(m.Matrices))
	require.Equal(t, 2.0, testutil.ToFloat64(m.Gadgets.WithLabelValues(OpAnd)))
	require.Equal(t, 1.0, testutil.ToFloat64(m.Gadgets.WithLabelValues(OpXor)))
	require.Equal(t, 1.0, testutil.ToFloat64(m.Faults))

	count, err := testutil.GatherAndCount(reg)
	require.NoError(t, err)
	require.Equal(t, 5, count)
}

func TestNilMetrics(t *testing.T) {
	var m *Metrics
	m.Draw(1)
	m.Matrix()
	m.Gadget(OpNot)
	m.Fault()
}
