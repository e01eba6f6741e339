//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package metrics provides Prometheus instrumentation for the masking
// gadgets. Only event counts are recorded; random values and share
// contents are never exported.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	// Namespace is the Prometheus namespace for all masking metrics.
	Namespace = "masking"

	// LabelOp is the gadget operation label.
	LabelOp = "op"

	// Gadget operation names.
	OpXor  = "xor"
	OpNot  = "not"
	OpAnd  = "and"
	OpMask = "mask"
)

// Metrics holds the masking counters.
type Metrics struct {
	Draws    prometheus.Counter
	Matrices prometheus.Counter
	Gadgets  *prometheus.CounterVec
	Faults   prometheus.Counter
}

// New creates the masking counters and registers them with reg. If
// reg is nil, the counters are not registered.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Draws: f.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "random_draws_total",
			Help:      "Total number of 64-bit random draws",
		}),
		Matrices: f.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "matrices_total",
			Help:      "Total number of randomness matrices built",
		}),
		Gadgets: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "gadgets_total",
			Help:      "Total number of gadget invocations by operation",
		}, []string{LabelOp}),
		Faults: f.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "faults_total",
			Help:      "Total number of entropy faults",
		}),
	}
}

// Draw records n random draws.
func (m *Metrics) Draw(n int) {
	if m == nil {
		return
	}
	m.Draws.Add(float64(n))
}

// Matrix records a built randomness matrix.
func (m *Metrics) Matrix() {
	if m == nil {
		return
	}
	m.Matrices.Inc()
}

// Gadget records a gadget invocation.
func (m *Metrics) Gadget(op string) {
	if m == nil {
		return
	}
	m.Gadgets.WithLabelValues(op).Inc()
}

// Fault records an entropy fault.
func (m *Metrics) Fault() {
	if m == nil {
		return
	}
	m.Faults.Inc()
}
