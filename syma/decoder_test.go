package syma

import (
	"testing"
	"time"

	"github.com/sparques/irheli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func feedFrame(sm *StateMachine, pairs []irheli.TimePair) {
	for _, p := range pairs {
		sm.HandleTimePair(p)
	}
}

func TestDecodeRoundTrip(t *testing.T) {
	for _, cmd := range []Command{
		Neutral(),
		{},
		{Yaw: 0xff, Pitch: 0xff, Throttle: 0xff, Trim: 0xff},
		{Yaw: 0x81, Pitch: 0x42, Throttle: 0xa5, Trim: 0x18},
		{Yaw: 1, Pitch: 2, Throttle: 4, Trim: 8},
	} {
		var got []Command
		sm := NewStateMachine(func(c Command) { got = append(got, c) })

		feedFrame(sm, cmd.MarshalFrame())

		require.Len(t, got, 1)
		assert.Equal(t, cmd, got[0])
	}
}

func TestDecodeTransmitterOutput(t *testing.T) {
	// full loop: frame through the Emitter, decode what came out the LED
	cmd := Command{Yaw: 63, Pitch: 17, Throttle: 0x80 | 42, Trim: 63}
	rec := &emitRecorder{}
	NewTransmitter(rec).Transmit(cmd)

	var got []Command
	sm := NewStateMachine(func(c Command) { got = append(got, c) })
	feedFrame(sm, rec.pairs())

	require.Len(t, got, 1)
	assert.Equal(t, cmd, got[0])
	assert.Equal(t, ChannelB, got[0].Chan())
}

func TestDecodeIgnoresNoiseBeforeHeader(t *testing.T) {
	var got []Command
	sm := NewStateMachine(func(c Command) { got = append(got, c) })

	// bit-sized pairs with no header in sight must not produce anything
	for i := 0; i < 100; i++ {
		sm.HandleTimePair(irheli.TimePair{312 * time.Microsecond, 688 * time.Microsecond})
	}
	assert.Empty(t, got)

	// a real frame still decodes afterwards
	feedFrame(sm, Neutral().MarshalFrame())
	require.Len(t, got, 1)
	assert.Equal(t, Neutral(), got[0])
}

func TestDecodeTruncatedFrameDiscarded(t *testing.T) {
	var got []Command
	sm := NewStateMachine(func(c Command) { got = append(got, c) })

	frame := Command{Yaw: 0xff}.MarshalFrame()
	feedFrame(sm, frame[:10]) // header plus 9 bits, then the signal dies
	assert.Empty(t, got)

	// the next header resyncs; the partial bits must not leak into this one
	feedFrame(sm, Neutral().MarshalFrame())
	require.Len(t, got, 1)
	assert.Equal(t, Neutral(), got[0])
}

func TestDecodeBackToBackFrames(t *testing.T) {
	var got []Command
	sm := NewStateMachine(func(c Command) { got = append(got, c) })

	a := Command{Yaw: 10, Pitch: 20, Throttle: 30, Trim: 40}
	b := Command{Yaw: 0x7f, Pitch: 0, Throttle: 0x80, Trim: 0x55}
	feedFrame(sm, a.MarshalFrame())
	feedFrame(sm, b.MarshalFrame())

	require.Len(t, got, 2)
	assert.Equal(t, []Command{a, b}, got)
}
