package syma

import (
	"time"

	"github.com/sparques/irheli"
)

// Transmitter frames commands onto an IR emitter. It is not safe for
// concurrent use; a frame must be emitted as one unbroken sequence or the
// helicopter's demodulator loses sync, so there is never a reason to share
// one across goroutines anyway.
type Transmitter struct {
	em     irheli.Emitter
	ones   int
	zeroes int
}

func NewTransmitter(em irheli.Emitter) *Transmitter {
	return &Transmitter{em: em}
}

// Transmit emits one complete packet for cmd and returns the time the packet
// occupied on the wire, computed from the symbol tallies (not measured; the
// component durations are protocol constants, so arithmetic is exact where a
// clock read would just add noise).
func (t *Transmitter) Transmit(cmd Command) time.Duration {
	t.ones, t.zeroes = 0, 0

	t.em.Pulse(HeaderCycles)
	t.em.Rest(HeaderRest)

	for _, b := range cmd.bytes() {
		for mask := uint8(0x80); mask != 0; mask >>= 1 {
			if t.sendBit(b&mask != 0) {
				t.ones++
			} else {
				t.zeroes++
			}
		}
	}

	t.em.Pulse(FooterCycles)

	return PacketTime(t.ones, t.zeroes)
}

// sendBit emits one symbol: the bit-start burst, then the silence whose
// length encodes the bit. Reports whether a one was sent.
func (t *Transmitter) sendBit(bit bool) bool {
	t.em.Pulse(BitCycles)
	if bit {
		t.em.Rest(OneRest)
		return true
	}
	t.em.Rest(ZeroRest)
	return false
}

// Counts returns the symbol tallies of the most recent Transmit.
func (t *Transmitter) Counts() (ones, zeroes int) {
	return t.ones, t.zeroes
}

// PacketTime returns the on-wire duration of a packet that carried the given
// symbol tallies. Header, footer and the 32 bit-start bursts are fixed; only
// the one/zero split varies.
func PacketTime(ones, zeroes int) time.Duration {
	header := HeaderCycles*CyclePeriod + HeaderRest
	footer := FooterCycles * CyclePeriod
	bitStarts := BitCycles * CyclePeriod * BitsPerPacket
	return header + footer + bitStarts +
		time.Duration(ones)*OneRest + time.Duration(zeroes)*ZeroRest
}

// ResidualDelay returns how long to rest after a packet with the given
// symbol tallies so that headers stay PacketPeriod apart. More ones means a
// longer packet and a shorter rest. The value is signed; a non-positive
// result means the packet overran the period and the caller should not rest
// at all.
func ResidualDelay(ones, zeroes int) time.Duration {
	return PacketPeriod - PacketTime(ones, zeroes)
}
