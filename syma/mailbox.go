package syma

import "sync"

// Mailbox is a single-slot, last-write-wins command cell for feeding a
// Driver from another goroutine or an interrupt handler (say, a
// StateMachine relaying packets from a real remote). Put never blocks and
// overwrites any unconsumed command; the transmit loop only ever wants the
// freshest value, never a backlog.
type Mailbox struct {
	mu   sync.Mutex
	cmd  Command
	full bool
}

// Put stores cmd, replacing any previous unconsumed value.
func (m *Mailbox) Put(cmd Command) {
	m.mu.Lock()
	m.cmd = cmd
	m.full = true
	m.mu.Unlock()
}

// Poll takes the stored command, if a fresh one is present.
func (m *Mailbox) Poll() (Command, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.full {
		return Command{}, false
	}
	m.full = false
	return m.cmd, true
}

// Ready implements Source; a Mailbox has no host to signal.
func (m *Mailbox) Ready() error {
	return nil
}
