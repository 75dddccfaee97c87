package snap

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"
)

// LockExpiredMsg is delivered when a transition lock's window has elapsed.
type LockExpiredMsg struct {
	owner uint64
	gen   uint64
}

// TransitionLock blocks triggers while a section transition is on screen.
// The wait runs in a command; expiry is applied when the resulting message
// reaches Update, so the lock only ever changes on the event loop.
type TransitionLock struct {
	owner  uint64
	gen    uint64
	locked bool
	cancel context.CancelFunc
	closed bool
}

// NewTransitionLock creates an unlocked lock. owner tags expiry messages so
// that a replaced model ignores its predecessor's timers.
func NewTransitionLock(owner uint64) *TransitionLock {
	return &TransitionLock{owner: owner}
}

// Begin locks for d and returns the command that reports expiry. A pending
// timer is superseded; only the latest one can unlock.
func (l *TransitionLock) Begin(d time.Duration) tea.Cmd {
	if l.closed {
		return nil
	}
	l.stop()
	if d <= 0 {
		l.locked = false
		return nil
	}
	l.gen++
	l.locked = true
	ctx, cancel := context.WithCancel(context.Background())
	l.cancel = cancel
	msg := LockExpiredMsg{owner: l.owner, gen: l.gen}
	return func() tea.Msg {
		timer := time.NewTimer(d)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil
		case <-timer.C:
			return msg
		}
	}
}

// Expire unlocks if msg belongs to the current timer.
func (l *TransitionLock) Expire(msg LockExpiredMsg) bool {
	if l.closed || msg.owner != l.owner || msg.gen != l.gen || !l.locked {
		return false
	}
	l.locked = false
	l.stop()
	return true
}

// Locked reports whether transitions are blocked.
func (l *TransitionLock) Locked() bool {
	return l.locked
}

// Close cancels any pending timer. Later calls to Begin are no-ops.
func (l *TransitionLock) Close() {
	l.stop()
	l.locked = false
	l.closed = true
}

func (l *TransitionLock) stop() {
	if l.cancel != nil {
		l.cancel()
		l.cancel = nil
	}
}
