//go:build tinygo

package irheli

import (
	. "machine"
	"time"

	"github.com/sparques/pwm"
)

// TxDevice transmits through an IR LED driven by a PWM peripheral. The PWM
// supplies the carrier toggling; transmitting is just gating the duty cycle
// between 50% and 0 at the right times, so a cycle-counted burst is the
// carrier held on for cycles*period.
type TxDevice struct {
	pin    Pin
	pgroup pwm.Group
	ch     uint8
	duty   uint32
	period time.Duration
	sleep  SleepFunc
}

// NewTxDevice configures pin for PWM output at the given carrier cycle
// period. Protocol packages export their period, e.g. syma.CyclePeriod.
func NewTxDevice(pin Pin, cyclePeriod time.Duration) *TxDevice {
	pin.Configure(PinConfig{Mode: PinPWM})
	pgroup := pwm.Get(pin)
	pgroup.Configure(PWMConfig{Period: uint64(cyclePeriod.Nanoseconds())})
	ch, _ := pgroup.Channel(pin)
	pgroup.Set(ch, 0)
	return &TxDevice{
		pin:    pin,
		pgroup: pgroup,
		ch:     ch,
		duty:   pgroup.Top() / 2,
		period: cyclePeriod,
		sleep:  time.Sleep,
	}
}

// SetSleep swaps the delay backend. time.Sleep is the default; on targets
// where the scheduler is too coarse, pass Spin.
func (tx *TxDevice) SetSleep(fn SleepFunc) {
	tx.sleep = fn
}

// Pulse emits cycles full carrier cycles, then leaves the output low.
func (tx *TxDevice) Pulse(cycles int) {
	tx.pgroup.Set(tx.ch, tx.duty)
	tx.sleep(time.Duration(cycles) * tx.period)
	tx.pgroup.Set(tx.ch, 0)
}

// Rest holds the output low for d.
func (tx *TxDevice) Rest(d time.Duration) {
	tx.sleep(d)
}

// SendPair transmits one carrier-on/carrier-off pair.
func (tx *TxDevice) SendPair(pair TimePair) {
	tx.pgroup.Set(tx.ch, tx.duty)
	tx.sleep(pair[0])
	tx.pgroup.Set(tx.ch, 0)
	tx.sleep(pair[1])
}

func (tx *TxDevice) SendPairs(pairs ...TimePair) {
	for _, p := range pairs {
		tx.SendPair(p)
	}
}

func (tx *TxDevice) SendFrame(fm FrameMarshaller) {
	tx.SendPairs(fm.MarshalFrame()...)
}

func (tx *TxDevice) SendFrames(fms ...FrameMarshaller) {
	for _, fm := range fms {
		tx.SendFrame(fm)
	}
}
