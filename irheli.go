// Package irheli sends and receives the IR control signals used by cheap
// helicopter and robot toys. The root package holds the hardware-facing
// pieces; each supported protocol lives in its own subpackage.
package irheli

import "time"

const (
	// Freq38Khz is the most commonly used carrier frequency for IR remotes.
	Freq38Khz = 38000
)

// TimePair encodes two durations used to encode an on-off or off-on amount of time.
type TimePair [2]time.Duration

// FrameMarshaller defines an interface for marshalling data to a slice of TimePairs.
type FrameMarshaller interface {
	MarshalFrame() []TimePair
}

// Emitter is the transmit primitive protocol packages build on. Pulse drives
// the carrier output through the given number of full high/low cycles at the
// device's cycle period; Rest holds the output low. Receivers demodulate the
// carrier with a very literal decoder, so implementations must not let other
// timing-sensitive work interleave with an active Pulse.
type Emitter interface {
	Pulse(cycles int)
	Rest(d time.Duration)
}

// RxStateMachine consumes on/off TimePairs from a receiver, one pair per
// carrier burst, and decodes them into whatever the protocol carries.
type RxStateMachine interface {
	HandleTimePair(TimePair)
}

type multiRxStateMachine []RxStateMachine

func (mrsm multiRxStateMachine) HandleTimePair(pair TimePair) {
	for i := range mrsm {
		mrsm[i].HandleTimePair(pair)
	}
}

// MultiRxStateMachine accepts a list of RxStateMachines and returns an object
// that also implements RxStateMachine. When HandleTimePair is called against it,
// it calls HandleTimePair against all the RxStateMachines used to define it.
// In this way, you can effectively multiplex multiple RxStateMachines under
// a single IR receiver.
// E.G.:
//
//	mult := irheli.MultiRxStateMachine(syma.NewStateMachine(symaHandler), nec.NewStateMachine(necHandler))
//	rxd := irheli.NewRxDevice(pin, mult)
func MultiRxStateMachine(rsm ...RxStateMachine) multiRxStateMachine {
	return multiRxStateMachine(rsm)
}
