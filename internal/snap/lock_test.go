package snap

import (
	"testing"
	"time"
)

func TestLockBeginAndExpire(t *testing.T) {
	l := NewTransitionLock(7)
	cmd := l.Begin(5 * time.Millisecond)
	if cmd == nil {
		t.Fatal("expected expiry command")
	}
	if !l.Locked() {
		t.Fatal("expected lock engaged")
	}
	msg, ok := cmd().(LockExpiredMsg)
	if !ok {
		t.Fatal("expected LockExpiredMsg")
	}
	if !l.Expire(msg) {
		t.Fatal("expected expiry to unlock")
	}
	if l.Locked() {
		t.Fatal("expected lock released")
	}
}

func TestLockSupersededTimerIsStale(t *testing.T) {
	l := NewTransitionLock(1)
	first := l.Begin(time.Hour)
	second := l.Begin(5 * time.Millisecond)

	if msg := first(); msg != nil {
		t.Fatalf("superseded timer should be cancelled, got %v", msg)
	}
	stale := LockExpiredMsg{owner: 1, gen: 1}
	if l.Expire(stale) {
		t.Fatal("stale expiry must not unlock")
	}
	if !l.Locked() {
		t.Fatal("lock should still be held by the second timer")
	}
	msg := second().(LockExpiredMsg)
	if !l.Expire(msg) {
		t.Fatal("current expiry should unlock")
	}
}

func TestLockIgnoresOtherOwner(t *testing.T) {
	a := NewTransitionLock(1)
	b := NewTransitionLock(2)
	cmd := a.Begin(5 * time.Millisecond)
	b.Begin(time.Hour)
	msg := cmd().(LockExpiredMsg)
	if b.Expire(msg) {
		t.Fatal("expiry from another owner must be ignored")
	}
	b.Close()
}

func TestLockCloseCancelsTimer(t *testing.T) {
	l := NewTransitionLock(3)
	cmd := l.Begin(time.Hour)
	l.Close()

	done := make(chan any, 1)
	go func() { done <- cmd() }()
	select {
	case msg := <-done:
		if msg != nil {
			t.Fatalf("cancelled timer should produce no message, got %v", msg)
		}
	case <-time.After(time.Second):
		t.Fatal("cancelled timer did not return")
	}
	if l.Locked() {
		t.Fatal("closed lock should not be locked")
	}
	if l.Begin(time.Second) != nil {
		t.Fatal("Begin after Close should be a no-op")
	}
}

func TestLockZeroDurationDoesNotLock(t *testing.T) {
	l := NewTransitionLock(4)
	if cmd := l.Begin(0); cmd != nil {
		t.Fatal("zero duration should not schedule a timer")
	}
	if l.Locked() {
		t.Fatal("zero duration should not lock")
	}
}
