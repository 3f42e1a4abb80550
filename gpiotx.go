//go:build linux && !tinygo

package irheli

import (
	"time"

	"github.com/davecheney/gpio"
)

// GPIOTx bit-bangs the carrier on a sysfs/memory-mapped GPIO pin, for driving
// an IR LED from a Raspberry Pi or similar SBC. There is no PWM peripheral
// behind it, so every half cycle is an explicit toggle; the default delay
// backend is Spin because OS sleeps are far too coarse for a 13us half cycle.
type GPIOTx struct {
	pin   gpio.Pin
	half  time.Duration
	sleep SleepFunc
}

// NewGPIOTx wraps an already-opened output pin. The caller keeps ownership
// of the pin and should Close it when done.
func NewGPIOTx(pin gpio.Pin, cyclePeriod time.Duration) *GPIOTx {
	return &GPIOTx{
		pin:   pin,
		half:  cyclePeriod / 2,
		sleep: Spin,
	}
}

// SetSleep swaps the delay backend.
func (tx *GPIOTx) SetSleep(fn SleepFunc) {
	tx.sleep = fn
}

// Pulse toggles the pin through cycles full high/low cycles.
func (tx *GPIOTx) Pulse(cycles int) {
	for ; cycles > 0; cycles-- {
		tx.pin.Set()
		tx.sleep(tx.half)
		tx.pin.Clear()
		tx.sleep(tx.half)
	}
}

// Rest holds the pin low for d.
func (tx *GPIOTx) Rest(d time.Duration) {
	tx.sleep(d)
}

// SendPair transmits one carrier-on/carrier-off pair by toggling for the
// whole on duration.
func (tx *GPIOTx) SendPair(pair TimePair) {
	tx.Pulse(int(pair[0] / (2 * tx.half)))
	tx.sleep(pair[1])
}

func (tx *GPIOTx) SendPairs(pairs ...TimePair) {
	for _, p := range pairs {
		tx.SendPair(p)
	}
}

func (tx *GPIOTx) SendFrame(fm FrameMarshaller) {
	tx.SendPairs(fm.MarshalFrame()...)
}
