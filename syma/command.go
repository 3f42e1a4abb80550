package syma

import "github.com/sparques/irheli"

// Channel selects which of the two radio... well, IR channels a command is
// addressed to. The flag rides in the throttle byte's top bit.
type Channel uint8

const (
	ChannelA Channel = iota
	ChannelB
)

const (
	channelMask = 0x80
	valueMask   = 0x7f
)

// Command is one four-byte control update. Fields are the raw wire bytes in
// wire order; the helicopter reads yaw, pitch and trim as 7-bit values and
// the throttle byte as the channel flag plus 7 throttle bits. The fields are
// exported so a host byte stream can map onto them directly; use the setters
// when constructing values programmatically to get explicit 7-bit truncation
// instead of relying on byte wraparound.
type Command struct {
	Yaw      uint8
	Pitch    uint8
	Throttle uint8
	Trim     uint8
}

// Neutral returns the power-on command: sticks centered, rotors off.
func Neutral() Command {
	return Command{Yaw: 63, Pitch: 63, Throttle: 0, Trim: 63}
}

// SetYaw stores a 7-bit yaw value, truncating v to its low 7 bits.
func (c *Command) SetYaw(v uint8) { c.Yaw = v & valueMask }

// SetPitch stores a 7-bit pitch value, truncating v to its low 7 bits.
func (c *Command) SetPitch(v uint8) { c.Pitch = v & valueMask }

// SetTrim stores a 7-bit trim value, truncating v to its low 7 bits.
func (c *Command) SetTrim(v uint8) { c.Trim = v & valueMask }

// SetThrottle stores a 7-bit throttle value, preserving the channel flag.
func (c *Command) SetThrottle(v uint8) {
	c.Throttle = c.Throttle&channelMask | v&valueMask
}

// SetChannel sets the channel flag, preserving the throttle bits.
func (c *Command) SetChannel(ch Channel) {
	if ch == ChannelB {
		c.Throttle |= channelMask
	} else {
		c.Throttle &^= channelMask
	}
}

// Chan reports which channel the command is addressed to.
func (c Command) Chan() Channel {
	if c.Throttle&channelMask != 0 {
		return ChannelB
	}
	return ChannelA
}

// bytes returns the payload in wire order.
func (c Command) bytes() [BytesPerPacket]uint8 {
	return [BytesPerPacket]uint8{c.Yaw, c.Pitch, c.Throttle, c.Trim}
}

var (
	headerPair = irheli.TimePair{HeaderCycles * CyclePeriod, HeaderRest}
	onePair    = irheli.TimePair{BitCycles * CyclePeriod, OneRest}
	zeroPair   = irheli.TimePair{BitCycles * CyclePeriod, ZeroRest}
	// the footer has no trailing silence of its own; the inter-packet rest
	// belongs to the pacing loop, not the frame
	footerPair = irheli.TimePair{FooterCycles * CyclePeriod, 0}
)

// MarshalFrame implements irheli.FrameMarshaller: header, 32 bit pairs
// MSB-first in wire byte order, footer.
func (c Command) MarshalFrame() []irheli.TimePair {
	out := make([]irheli.TimePair, 0, BitsPerPacket+2)
	out = append(out, headerPair)
	for _, b := range c.bytes() {
		for mask := uint8(0x80); mask != 0; mask >>= 1 {
			if b&mask != 0 {
				out = append(out, onePair)
			} else {
				out = append(out, zeroPair)
			}
		}
	}
	return append(out, footerPair)
}
