package snap

import (
	"math"

	"github.com/andyrewlee/snapscroll/internal/section"
)

// Gate reports whether new triggers are currently blocked.
type Gate interface {
	Locked() bool
}

// Trigger is a discrete navigation intent.
type Trigger struct {
	Direction section.Direction
}

// Accumulator folds raw wheel deltas into triggers. Magnitudes are summed
// regardless of sign; the triggering delta decides the direction.
type Accumulator struct {
	threshold   float64
	accumulated float64
	gate        Gate
}

// NewAccumulator creates an accumulator gated by gate (which may be nil).
func NewAccumulator(threshold float64, gate Gate) *Accumulator {
	return &Accumulator{threshold: threshold, gate: gate}
}

// Observe adds delta and reports a trigger once the sum exceeds the threshold.
// Input is discarded while the gate is locked.
func (a *Accumulator) Observe(delta float64) (Trigger, bool) {
	if a.Locked() {
		return Trigger{}, false
	}
	if delta == 0 || math.IsNaN(delta) || math.IsInf(delta, 0) {
		return Trigger{}, false
	}
	a.accumulated += math.Abs(delta)
	if a.accumulated <= a.threshold {
		return Trigger{}, false
	}
	a.accumulated = 0
	dir := section.Forward
	if delta < 0 {
		dir = section.Backward
	}
	return Trigger{Direction: dir}, true
}

// Locked mirrors the gate.
func (a *Accumulator) Locked() bool {
	return a.gate != nil && a.gate.Locked()
}

// Accumulated returns the pending magnitude.
func (a *Accumulator) Accumulated() float64 { return a.accumulated }

// Threshold returns the trigger threshold.
func (a *Accumulator) Threshold() float64 { return a.threshold }

// Reset discards the pending magnitude.
func (a *Accumulator) Reset() { a.accumulated = 0 }
