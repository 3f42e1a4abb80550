package syma

import (
	"time"

	"github.com/sparques/irheli"
)

// Decoding thresholds. The header burst (2002us) is miles away from a bit
// start (312us), and the one/zero silences (688us/288us) are split down the
// middle, so generous margins survive the receivers' timing slop.
const (
	headerBurstMin = 1200 * time.Microsecond
	oneRestMin     = 500 * time.Microsecond
)

// StateMachine implements irheli.RxStateMachine, decoding Syma S107 packets
// from on/off TimePairs. When a full packet has been received, cmdHandler is
// called. This call comes from an interrupt handler so you cannot make any
// blocking calls and should try to keep it as quick as possible; pass the
// command off to a control loop (a Mailbox works).
type StateMachine struct {
	cmdHandler func(Command)
	buf        [BytesPerPacket]uint8
	bitcount   int
	synced     bool
}

func NewStateMachine(cmdHandler func(Command)) *StateMachine {
	return &StateMachine{
		cmdHandler: cmdHandler,
	}
}

// SetCmdHandler lets you change the callback for when a command is received.
func (sm *StateMachine) SetCmdHandler(cmdHandler func(Command)) {
	sm.cmdHandler = cmdHandler
}

// HandleTimePair implements the irheli.RxStateMachine interface.
func (sm *StateMachine) HandleTimePair(pair irheli.TimePair) {
	on, off := pair[0], pair[1]

	if on > headerBurstMin {
		// header; start of packet
		sm.buf = [BytesPerPacket]uint8{}
		sm.bitcount = 0
		sm.synced = true
		return
	}

	if !sm.synced {
		return
	}

	// bits arrive MSB first, so shift up from the bottom
	i := sm.bitcount / BitsPerByte
	sm.buf[i] <<= 1
	if off > oneRestMin {
		sm.buf[i] |= 1
	}
	sm.bitcount++

	if sm.bitcount == BitsPerPacket {
		sm.cmdHandler(Command{
			Yaw:      sm.buf[0],
			Pitch:    sm.buf[1],
			Throttle: sm.buf[2],
			Trim:     sm.buf[3],
		})
		// drop sync so the footer burst is ignored
		sm.synced = false
	}
}
