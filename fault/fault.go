//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package fault implements the fail-stop policy for unrecoverable
// entropy failures. Raise does not return: once a fault is raised,
// no code path depending on the missing randomness runs again on the
// calling goroutine, including its deferred functions.
package fault

import (
	"sync/atomic"
	"time"

	"github.com/markkurossi/masking/diag"
)

// Message is the diagnostic emitted when a fault is raised.
const Message = "ERROR: RNG failure detected - halting."

// EmitTimeout bounds the time Raise waits for the diagnostic sink
// before entering the failure state.
const EmitTimeout = 100 * time.Millisecond

// Interrupts controls interrupt-driven work of the host.
type Interrupts interface {
	Disable()
}

// Indicator enters the externally observable failure state. A
// production indicator never returns from Signal. An indicator that
// returns is only meant for tests observing the fault; Raise blocks
// the faulting goroutine after it returns.
type Indicator interface {
	Signal()
}

// Policy implements the fail-stop fault policy.
type Policy struct {
	Sink       diag.Sink
	Interrupts Interrupts
	Indicator  Indicator

	raised atomic.Int32
}

// Raise disables interrupts, emits a best-effort diagnostic, and
// enters the terminal failure state. It never returns to its caller
// and the caller's deferred functions never run.
func (p *Policy) Raise(context string) {
	p.raised.Add(1)

	if p.Interrupts != nil {
		p.Interrupts.Disable()
	}
	p.emit(context)

	if p.Indicator != nil {
		p.Indicator.Signal()
	}
	select {}
}

// emit writes the diagnostic on a separate goroutine and waits for it
// at most EmitTimeout. A panicking or stalled sink does not prevent
// the halt.
func (p *Policy) emit(context string) {
	if p.Sink == nil {
		return
	}
	done := make(chan struct{})
	go func() {
		defer close(done)
		defer func() {
			recover()
		}()
		if len(context) > 0 {
			diag.Emitf(p.Sink, "%s %s", Message, context)
		} else {
			p.Sink.Emit(Message)
		}
	}()

	timer := time.NewTimer(EmitTimeout)
	defer timer.Stop()

	select {
	case <-done:
	case <-timer.C:
	}
}

// Raised returns the number of times Raise has been called.
func (p *Policy) Raised() int {
	return int(p.raised.Load())
}
