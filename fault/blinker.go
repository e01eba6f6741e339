//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package fault

import (
	"time"
)

// BlinkPeriod is the LED toggle period of the failure indication.
const BlinkPeriod = 200 * time.Millisecond

// Pin is a GPIO output pin driving the error LED.
type Pin interface {
	Toggle()
}

// Blinker is an Indicator toggling an LED pin forever.
type Blinker struct {
	Pin    Pin
	Period time.Duration
	Sleep  func(d time.Duration)
}

// NewBlinker creates a new blinker for the pin with the default
// period.
func NewBlinker(pin Pin) *Blinker {
	return &Blinker{
		Pin:    pin,
		Period: BlinkPeriod,
		Sleep:  time.Sleep,
	}
}

// Signal implements Indicator.Signal. It does not return.
func (b *Blinker) Signal() {
	sleep := b.Sleep
	if sleep == nil {
		sleep = time.Sleep
	}
	period := b.Period
	if period <= 0 {
		period = BlinkPeriod
	}
	for {
		b.Pin.Toggle()
		sleep(period)
	}
}
