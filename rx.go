//go:build tinygo

package irheli

import (
	. "machine"
	"time"
)

// RxDevice watches a demodulating IR receiver's output pin and turns edge
// timings into TimePairs for an RxStateMachine. The common 38kHz receiver
// modules idle high and pull the line low while carrier is present.
type RxDevice struct {
	pin          Pin
	inverted     bool
	lastEdge     time.Time
	lastHigh     time.Duration
	stateMachine RxStateMachine
}

func NewRxDevice(pin Pin, rsm RxStateMachine) *RxDevice {
	// the most common receivers have a pull up pin builtin
	// but in the future, may want to add the option to use PinPullupInput
	pin.Configure(PinConfig{Mode: PinInput})
	return &RxDevice{
		pin:          pin,
		stateMachine: rsm,
	}
}

func (rx *RxDevice) handleEdge(interruptPin Pin) {
	etime := time.Now()
	since := time.Since(rx.lastEdge)
	if interruptPin.Get() != rx.inverted {
		// completing a pair; hand it off
		rx.stateMachine.HandleTimePair(TimePair{rx.lastHigh, since})
	} else {
		rx.lastHigh = since
	}
	rx.lastEdge = etime
}

// Start sets the interrupt handler and thus starts processing signals.
// Use Start() if your RxStateMachine uses on-off pairs, e.g. Syma or Hexbug.
func (rx *RxDevice) Start() {
	rx.inverted = false
	rx.pin.SetInterrupt(PinFalling|PinRising, rx.handleEdge)
}

// StartInverted sets the interrupt handler and thus starts processing signals.
// Use StartInverted if your RxStateMachine uses off-on pairs, e.g. NEC.
func (rx *RxDevice) StartInverted() {
	rx.inverted = true
	rx.pin.SetInterrupt(PinFalling|PinRising, rx.handleEdge)
}

// Stop disables the interrupt handler.
func (rx *RxDevice) Stop() {
	rx.pin.SetInterrupt(PinFalling|PinRising, nil)
}
