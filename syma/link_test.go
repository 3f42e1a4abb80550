package syma

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// byteQueue is one direction of an in-memory serial line.
type byteQueue struct {
	b []byte
}

// pipeEnd gives one party a ByteChannel view over a crossed pair of queues.
type pipeEnd struct {
	rd, wr *byteQueue
}

func (p *pipeEnd) Buffered() int {
	return len(p.rd.b)
}

func (p *pipeEnd) ReadByte() (byte, error) {
	if len(p.rd.b) == 0 {
		return 0, io.EOF
	}
	v := p.rd.b[0]
	p.rd.b = p.rd.b[1:]
	return v, nil
}

func (p *pipeEnd) WriteByte(b byte) error {
	p.wr.b = append(p.wr.b, b)
	return nil
}

// newPipe returns the device and host ends of an in-memory serial line.
func newPipe() (device, host *pipeEnd) {
	toDevice := &byteQueue{}
	toHost := &byteQueue{}
	return &pipeEnd{rd: toDevice, wr: toHost}, &pipeEnd{rd: toHost, wr: toDevice}
}

func TestLinkPollNeedsFullUpdate(t *testing.T) {
	device, host := newPipe()
	link := NewLink(device)

	_, ok := link.Poll()
	assert.False(t, ok)

	// two bytes buffered is not an update; nothing may be consumed
	host.WriteByte(1)
	host.WriteByte(2)
	_, ok = link.Poll()
	assert.False(t, ok)
	assert.Equal(t, 2, device.Buffered())

	host.WriteByte(3)
	host.WriteByte(4)
	cmd, ok := link.Poll()
	require.True(t, ok)
	assert.Equal(t, Command{Yaw: 1, Pitch: 2, Throttle: 3, Trim: 4}, cmd)
	assert.Equal(t, 0, device.Buffered())
}

func TestLinkPollConsumesExactlyFour(t *testing.T) {
	device, host := newPipe()
	link := NewLink(device)

	for _, b := range []byte{10, 20, 30, 40, 50} {
		host.WriteByte(b)
	}
	cmd, ok := link.Poll()
	require.True(t, ok)
	assert.Equal(t, Command{Yaw: 10, Pitch: 20, Throttle: 30, Trim: 40}, cmd)
	// the fifth byte belongs to the next update
	assert.Equal(t, 1, device.Buffered())
}

func TestLinkReadySentinel(t *testing.T) {
	device, host := newPipe()
	link := NewLink(device)

	require.NoError(t, link.Ready())
	v, err := host.ReadByte()
	require.NoError(t, err)
	assert.Equal(t, byte(ReadyByte), v)
	assert.Equal(t, byte(129), v)
}

func TestHostOneUpdatePerCredit(t *testing.T) {
	deviceEnd, hostEnd := newPipe()
	link := NewLink(deviceEnd)
	h := NewHost(hostEnd)

	h.Queue(Command{Yaw: 1, Pitch: 2, Throttle: 3, Trim: 4})
	h.Queue(Command{Yaw: 5, Pitch: 6, Throttle: 7, Trim: 8})

	// no credit yet, nothing flows
	require.NoError(t, h.Pump())
	assert.Equal(t, 0, deviceEnd.Buffered())
	assert.Equal(t, 2, h.Pending())

	// one credit releases exactly the oldest update
	require.NoError(t, link.Ready())
	require.NoError(t, h.Pump())
	assert.Equal(t, BytesPerPacket, deviceEnd.Buffered())
	assert.Equal(t, 1, h.Pending())

	cmd, ok := link.Poll()
	require.True(t, ok)
	assert.Equal(t, Command{Yaw: 1, Pitch: 2, Throttle: 3, Trim: 4}, cmd)

	require.NoError(t, link.Ready())
	require.NoError(t, h.Pump())
	cmd, ok = link.Poll()
	require.True(t, ok)
	assert.Equal(t, Command{Yaw: 5, Pitch: 6, Throttle: 7, Trim: 8}, cmd)
	assert.Equal(t, 0, h.Pending())
}

func TestHostCreditWithEmptyQueue(t *testing.T) {
	deviceEnd, hostEnd := newPipe()
	link := NewLink(deviceEnd)
	h := NewHost(hostEnd)

	// a credit with nothing queued is dropped, not banked; the device
	// offers a fresh one every cycle anyway
	require.NoError(t, link.Ready())
	require.NoError(t, h.Pump())
	assert.Equal(t, 0, deviceEnd.Buffered())
}
