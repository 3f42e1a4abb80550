package syma

import (
	"log/slog"
	"time"

	"github.com/sparques/irheli"
)

// Source supplies command updates to a Driver. Poll is a non-blocking check
// for a fresh command; Ready is called once per transmission cycle, after
// pacing, to grant the producer a send credit. Link and Mailbox both
// implement it.
type Source interface {
	Poll() (Command, bool)
	Ready() error
}

// Driver runs the transmit loop: poll for a new command, frame and emit it,
// rest out the remainder of the packet period, signal ready, repeat. The
// command cell has exactly one writer (the poll) and one reader (the
// framer), both on the loop's goroutine, so a swap can never land mid-frame.
type Driver struct {
	tx  *Transmitter
	src Source
	cmd Command

	sleep irheli.SleepFunc
	log   *slog.Logger

	overruns uint
}

// NewDriver returns a Driver transmitting on em and fed by src, starting
// from the Neutral command.
func NewDriver(em irheli.Emitter, src Source) *Driver {
	return &Driver{
		tx:    NewTransmitter(em),
		src:   src,
		cmd:   Neutral(),
		sleep: time.Sleep,
	}
}

// SetSleep swaps the pacing delay backend. This is the inter-packet rest,
// tens of milliseconds, so plain time.Sleep is the right default; the
// emitter's own delay backend handles the microsecond-scale symbol timing.
func (d *Driver) SetSleep(fn irheli.SleepFunc) {
	d.sleep = fn
}

// SetLogger enables diagnostics (timing overruns, handshake write failures).
// Without one the Driver stays silent and only counts.
func (d *Driver) SetLogger(l *slog.Logger) {
	d.log = l
}

// Command returns the command currently being transmitted.
func (d *Driver) Command() Command {
	return d.cmd
}

// Overruns returns how many packets have exceeded the packet period. With
// the stock protocol constants a packet tops out around 36ms against a
// 100ms period, so a nonzero count means the emitter's delay backend is
// overshooting badly.
func (d *Driver) Overruns() uint {
	return d.overruns
}

// Step runs one transmission cycle.
func (d *Driver) Step() {
	if cmd, ok := d.src.Poll(); ok {
		d.cmd = cmd
	}

	elapsed := d.tx.Transmit(d.cmd)
	d.pace(elapsed)

	if err := d.src.Ready(); err != nil && d.log != nil {
		d.log.Error("ready signal failed", "err", err)
	}
}

// pace rests out the remainder of the packet period. A non-positive
// residual is an overrun: count it, log it, keep flying. Stopping the
// stream is the one thing this loop must never do.
func (d *Driver) pace(elapsed time.Duration) {
	residual := PacketPeriod - elapsed
	if residual <= 0 {
		d.overruns++
		if d.log != nil {
			d.log.Warn("packet overran period", "elapsed", elapsed, "period", PacketPeriod)
		}
		return
	}
	d.sleep(residual)
}

// Run transmits forever. The helicopter free-falls the moment the stream
// stops, so there is no cancellation; returning is not something this loop
// does.
func (d *Driver) Run() {
	for {
		d.Step()
	}
}
