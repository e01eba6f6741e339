//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package fault

import (
	"bytes"
	"runtime"
	"sync/atomic"
	"testing"
	"time"

	"github.com/markkurossi/masking/diag"
	"github.com/stretchr/testify/require"
)

type irq struct {
	disabled bool
}

func (i *irq) Disable() {
	i.disabled = true
}

// pin toggles until limit and then terminates the goroutine running
// the blinker.
type pin struct {
	toggles int
	limit   int
}

func (p *pin) Toggle() {
	p.toggles++
	if p.toggles >= p.limit {
		runtime.Goexit()
	}
}

type panicSink struct{}

func (panicSink) Emit(msg string) {
	panic("uart not initialized")
}

func raise(p *Policy, context string) (returned bool) {
	done := make(chan bool)
	go func() {
		var after bool
		defer func() {
			done <- after
		}()
		p.Raise(context)
		after = true
	}()
	return <-done
}

func TestRaise(t *testing.T) {
	var buf bytes.Buffer
	var periods []time.Duration

	interrupts := &irq{}
	led := &pin{
		limit: 4,
	}
	p := &Policy{
		Sink:       diag.NewLine(&buf),
		Interrupts: interrupts,
		Indicator: &Blinker{
			Pin: led,
			Sleep: func(d time.Duration) {
				periods = append(periods, d)
			},
		},
	}

	require.False(t, raise(p, "matrix 2x2"))
	require.Equal(t, 1, p.Raised())
	require.True(t, interrupts.disabled)
	require.Equal(t, 4, led.toggles)
	require.Len(t, periods, 3)
	for _, d := range periods {
		require.Equal(t, BlinkPeriod, d)
	}
	require.Equal(t, Message+" matrix 2x2\r\n", buf.String())
}

func TestRaiseBrokenSink(t *testing.T) {
	led := &pin{
		limit: 1,
	}
	interrupts := &irq{}
	p := &Policy{
		Sink:       panicSink{},
		Interrupts: interrupts,
		Indicator:  NewBlinker(led),
	}
	require.False(t, raise(p, ""))
	require.True(t, interrupts.disabled)
	require.Equal(t, 1, led.toggles)
}

// signaler reports Signal on a channel and returns.
type signaler struct {
	signaled chan struct{}
}

func newSignaler() *signaler {
	return &signaler{
		signaled: make(chan struct{}, 1),
	}
}

func (s *signaler) Signal() {
	s.signaled <- struct{}{}
}

func TestRaiseIndicatorReturns(t *testing.T) {
	ind := newSignaler()
	p := &Policy{
		Indicator: ind,
	}

	var deferred atomic.Bool
	returned := make(chan struct{})
	go func() {
		defer func() {
			deferred.Store(true)
		}()
		p.Raise("ctx")
		close(returned)
	}()

	<-ind.signaled
	select {
	case <-returned:
		t.Fatal("Raise returned")
	case <-time.After(50 * time.Millisecond):
	}
	require.False(t, deferred.Load(), "caller's deferred function ran")
	require.Equal(t, 1, p.Raised())
}

type stalledSink struct {
	release chan struct{}
}

func (s *stalledSink) Emit(msg string) {
	<-s.release
}

func TestRaiseStalledSink(t *testing.T) {
	sink := &stalledSink{
		release: make(chan struct{}),
	}
	defer close(sink.release)

	interrupts := &irq{}
	led := &pin{
		limit: 1,
	}
	p := &Policy{
		Sink:       diag.NewLine(&blockingWriter{sink.release}),
		Interrupts: interrupts,
		Indicator:  NewBlinker(led),
	}

	start := time.Now()
	require.False(t, raise(p, "stalled uart"))
	require.GreaterOrEqual(t, time.Since(start), EmitTimeout)
	require.True(t, interrupts.disabled)
	require.Equal(t, 1, led.toggles)

	p = &Policy{
		Sink:      sink,
		Indicator: NewBlinker(&pin{limit: 1}),
	}
	require.False(t, raise(p, ""))
}

type blockingWriter struct {
	release chan struct{}
}

func (w *blockingWriter) Write(p []byte) (int, error) {
	<-w.release
	return len(p), nil
}
