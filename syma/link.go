package syma

// ByteChannel is the byte-oriented channel between device and host. It is
// deliberately the subset of methods a TinyGo machine.Serial (UART) already
// provides, so on hardware you pass machine.Serial straight in.
type ByteChannel interface {
	Buffered() int
	ReadByte() (byte, error)
	WriteByte(b byte) error
}

// Link is the device side of the host handshake. The host streams four-byte
// command updates; the device answers every transmitted packet with
// ReadyByte so the host knows it may send the next one.
type Link struct {
	ch ByteChannel
}

func NewLink(ch ByteChannel) *Link {
	return &Link{ch: ch}
}

// Poll consumes exactly one four-byte update if one has fully arrived.
// With fewer than four bytes buffered nothing is consumed and ok is false;
// the caller keeps flying on its previous command.
func (l *Link) Poll() (cmd Command, ok bool) {
	if l.ch.Buffered() < BytesPerPacket {
		return Command{}, false
	}
	var b [BytesPerPacket]byte
	for i := range b {
		v, err := l.ch.ReadByte()
		if err != nil {
			// Buffered lied to us; treat as not-yet-arrived
			return Command{}, false
		}
		b[i] = v
	}
	return Command{Yaw: b[0], Pitch: b[1], Throttle: b[2], Trim: b[3]}, true
}

// Ready writes the handshake sentinel, granting the host one send credit.
func (l *Link) Ready() error {
	return l.ch.WriteByte(ReadyByte)
}

// Host is the other end of the Link: it queues command updates and releases
// one per ready sentinel, so the device's input buffer never builds up a
// backlog of stale commands. This is the flow control a virtual remote
// control (rendering sticks at 20fps against a 10 packets/second device)
// needs.
type Host struct {
	ch    ByteChannel
	queue []Command
}

func NewHost(ch ByteChannel) *Host {
	return &Host{ch: ch}
}

// Queue appends a command update to be sent on a future credit.
func (h *Host) Queue(cmd Command) {
	h.queue = append(h.queue, cmd)
}

// Pending returns how many queued updates have not been released yet.
func (h *Host) Pending() int {
	return len(h.queue)
}

// Pump drains any ready sentinels from the device and answers each with the
// oldest queued update. Non-blocking; call it from the host's render loop.
func (h *Host) Pump() error {
	for h.ch.Buffered() > 0 {
		v, err := h.ch.ReadByte()
		if err != nil {
			return err
		}
		if v != ReadyByte || len(h.queue) == 0 {
			continue
		}
		cmd := h.queue[0]
		h.queue = h.queue[1:]
		for _, b := range cmd.bytes() {
			if err := h.ch.WriteByte(b); err != nil {
				return err
			}
		}
	}
	return nil
}
