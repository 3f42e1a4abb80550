package irheli

import "time"

// SleepFunc is the precise-delay backend a transmit device uses between
// output transitions. The protocol logic never calls time.Sleep directly;
// swapping the backend (OS sleep, hardware timer, spin loop) is a device
// concern, not a protocol one.
type SleepFunc func(time.Duration)

// Spin busy-waits until d has elapsed. On a hosted OS the scheduler cannot
// honor microsecond sleeps, so sub-millisecond IR timing needs to burn the
// core instead. On microcontrollers time.Sleep is usually fine and cheaper.
func Spin(d time.Duration) {
	deadline := time.Now().Add(d)
	for time.Now().Before(deadline) {
	}
}
