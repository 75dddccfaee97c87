// Package snap turns noisy scroll input into discrete section transitions.
//
// A Model owns one sequence of sections. While it is capturing, wheel deltas
// are folded by an Accumulator into triggers, gated by a TransitionLock, and
// applied by a Controller. An Observer watches the region geometry reported by
// the host and decides when capture starts again after a release. Every
// mutation happens inside the bubbletea Update loop; the only asynchronous
// piece is the lock timer, which reports back through a message.
package snap

import "time"

// Policy holds the tunable constants of the scroll capture.
type Policy struct {
	// Threshold is the accumulated absolute delta that must be exceeded
	// before a trigger fires. Default: 50
	Threshold float64
	// LockDuration is the minimum time between two transitions, matching the
	// visual transition of the host. Default: 700ms
	LockDuration time.Duration
	// VisibleFraction is the share of the region that must be inside the
	// viewport before capture resumes. Default: 0.6
	VisibleFraction float64
	// ConfirmRelease requires a second boundary-exceeding trigger before
	// control is handed back to native scrolling.
	ConfirmRelease bool
}

const (
	DefaultThreshold       = 50
	DefaultLockDuration    = 700 * time.Millisecond
	DefaultVisibleFraction = 0.6
)

// DefaultPolicy returns the canonical policy.
func DefaultPolicy() Policy {
	return Policy{
		Threshold:       DefaultThreshold,
		LockDuration:    DefaultLockDuration,
		VisibleFraction: DefaultVisibleFraction,
	}
}

// withDefaults replaces zero or out-of-range values with defaults.
func (p Policy) withDefaults() Policy {
	if p.Threshold <= 0 {
		p.Threshold = DefaultThreshold
	}
	if p.LockDuration <= 0 {
		p.LockDuration = DefaultLockDuration
	}
	if p.VisibleFraction <= 0 || p.VisibleFraction > 1 {
		p.VisibleFraction = DefaultVisibleFraction
	}
	return p
}
