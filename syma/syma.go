/*
# syma

syma implements the IR uplink protocol of the Syma S107 toy helicopter: an
encoder/pacer for acting as the transmitter, and an irheli.RxStateMachine for
eavesdropping on (or standing in for) the helicopter side.

The protocol is an open-loop broadcast. The remote sends the same
four-byte command over and over at a fixed 10 packets per second, and the
helicopter just obeys the last packet it heard. There are no acks, no
checksums, no retransmits; robustness comes entirely from repetition.

## Wire format

The carrier is toggled at roughly 38kHz, one full cycle every 26us (13us
high, 13us low). A packet is:

	Header:  77 carrier cycles (2002us of carrier) then 1998us of silence.
	Bits:    12 carrier cycles (312us) to mark the start of every bit, then
	         688us of silence for a 1 or 288us for a 0.
	Footer:  12 carrier cycles, no trailing silence.

The payload is 4 bytes, each sent most-significant bit first:

	    Yaw     Pitch   Throttle   Trim
	   Byte 1   Byte 2   Byte 3   Byte 4
	H 0YYYYYYY 0PPPPPPP CTTTTTTT 0AAAAAAA F

Yaw, pitch and trim are 7-bit values with 63 as center; throttle is 7 bits
with 0 meaning rotors off. The C bit on the throttle byte selects between
the two channels (A/B) so two helicopters can fly in the same room.

## Pacing

Because a 1 bit takes 400us longer on the wire than a 0 bit, packet duration
depends on payload, ranging from about 23.5ms (all zeroes) to 36.3ms (all
ones). The receiver expects headers 100ms apart regardless, so the
transmitter counts the ones and zeroes it actually sent, computes the exact
time the packet occupied, and rests for the remainder of the 100ms period.
A fixed inter-packet delay would drift with stick position.

## Host link

The device-side loop pulls fresh commands from a byte channel (a UART in
practice) using a one-credit handshake: after every transmitted packet the
device writes the sentinel byte 129, and the host answers each sentinel with
at most one four-byte update. See Link and Host.
*/
package syma

import "time"

// Carrier and packet structure.
const (
	// CyclePeriod is one full high/low carrier cycle.
	CyclePeriod = 26 * time.Microsecond

	HeaderCycles = 77
	BitCycles    = 12
	FooterCycles = 12

	// HeaderRest is the silence after the header burst.
	HeaderRest = 1998 * time.Microsecond
	// OneRest and ZeroRest are the per-bit silences; their difference is
	// what distinguishes the two symbols.
	OneRest  = 688 * time.Microsecond
	ZeroRest = 288 * time.Microsecond

	BytesPerPacket = 4
	BitsPerByte    = 8
	BitsPerPacket  = BytesPerPacket * BitsPerByte
)

// Pacing.
const (
	PacketsPerSecond = 10
	// PacketPeriod is the nominal header-to-header interval.
	PacketPeriod = time.Second / PacketsPerSecond
)

// ReadyByte is the handshake sentinel the device writes to the host after
// each transmission cycle, meaning "ready for the next update".
const ReadyByte = 129
