package snap

import (
	"github.com/andyrewlee/snapscroll/internal/section"
)

// NoIndex marks the absence of a previous index.
const NoIndex = -1

// Entry is the side from which native scrolling re-entered the region.
type Entry int

const (
	FromAbove Entry = iota
	FromBelow
)

func (e Entry) String() string {
	if e == FromBelow {
		return "below"
	}
	return "above"
}

// State is a read-only snapshot of a controller.
type State struct {
	ActiveIndex   int
	PreviousIndex int
	Direction     section.Direction
	Capturing     bool
	Boundary      section.Boundary
}

// Outcome classifies what an input did to the controller.
type Outcome int

const (
	// Unhandled: the input does not apply (inert sequence or not capturing).
	Unhandled Outcome = iota
	// Moved: the active index changed, or an explicit jump re-targeted it.
	Moved
	// Held: an explicit jump to the active index; only the lock is engaged.
	Held
	// Armed: a boundary trigger under ConfirmRelease that did not release yet.
	Armed
	// Released: capture ended at a boundary.
	Released
	// Entered: capture resumed after re-entry.
	Entered
)

func (o Outcome) String() string {
	switch o {
	case Moved:
		return "moved"
	case Held:
		return "held"
	case Armed:
		return "armed"
	case Released:
		return "released"
	case Entered:
		return "entered"
	default:
		return "unhandled"
	}
}

// Result describes one applied input.
type Result struct {
	Outcome    Outcome
	From       int
	To         int
	Direction  section.Direction
	Recaptured bool
}

// Controller is the section state machine. It holds no timers; callers
// engage the lock according to the returned Result.
type Controller struct {
	count          int
	confirmRelease bool
	state          State

	pending    bool
	pendingDir section.Direction
}

// NewController creates a controller for count sections, not capturing.
func NewController(count int, confirmRelease bool) *Controller {
	if count < 0 {
		count = 0
	}
	return &Controller{
		count:          count,
		confirmRelease: confirmRelease,
		state: State{
			ActiveIndex:   0,
			PreviousIndex: NoIndex,
			Direction:     section.Forward,
			Boundary:      section.Inside,
		},
	}
}

// State returns the current state.
func (c *Controller) State() State { return c.state }

// Count returns the number of sections.
func (c *Controller) Count() int { return c.count }

func (c *Controller) last() int { return c.count - 1 }

func (c *Controller) clamp(i int) int {
	if i < 0 {
		return 0
	}
	if i > c.last() {
		return c.last()
	}
	return i
}

func (c *Controller) boundaryFor(i int) section.Boundary {
	switch {
	case i == c.last():
		return section.AtEnd
	case i == 0:
		return section.AtStart
	default:
		return section.Inside
	}
}

// JumpTo moves to section i (clamped). It is permitted regardless of the
// lock, and re-captures input if the controller had released.
func (c *Controller) JumpTo(i int) Result {
	if c.count == 0 {
		return Result{Outcome: Unhandled}
	}
	target := c.clamp(i)
	from := c.state.ActiveIndex
	recaptured := !c.state.Capturing
	c.state.Capturing = true
	c.pending = false

	if target == from {
		return Result{Outcome: Held, From: from, To: from, Direction: c.state.Direction, Recaptured: recaptured}
	}

	dir := section.Backward
	if target > from {
		dir = section.Forward
	}
	c.state.PreviousIndex = from
	c.state.ActiveIndex = target
	c.state.Direction = dir
	c.state.Boundary = c.boundaryFor(target)
	return Result{Outcome: Moved, From: from, To: target, Direction: dir, Recaptured: recaptured}
}

// Trigger applies one discrete step. Steps while not capturing are unhandled
// so the host can scroll natively.
func (c *Controller) Trigger(dir section.Direction) Result {
	if c.count == 0 || !c.state.Capturing {
		return Result{Outcome: Unhandled}
	}
	from := c.state.ActiveIndex

	if dir == section.Forward && from < c.last() {
		c.step(from, from+1, dir)
		if from+1 == c.last() {
			c.state.Boundary = section.AtEnd
		}
		return Result{Outcome: Moved, From: from, To: from + 1, Direction: dir}
	}
	if dir == section.Backward && from > 0 {
		c.step(from, from-1, dir)
		if from-1 == 0 {
			c.state.Boundary = section.AtStart
		}
		return Result{Outcome: Moved, From: from, To: from - 1, Direction: dir}
	}

	// At the end matching dir: release, possibly after a confirmation step.
	boundary := section.AtEnd
	if dir == section.Backward {
		boundary = section.AtStart
	}
	c.state.Boundary = boundary
	if c.confirmRelease && !(c.pending && c.pendingDir == dir) {
		c.pending = true
		c.pendingDir = dir
		return Result{Outcome: Armed, From: from, To: from, Direction: dir}
	}
	c.pending = false
	c.state.Capturing = false
	return Result{Outcome: Released, From: from, To: from, Direction: dir}
}

func (c *Controller) step(from, to int, dir section.Direction) {
	c.pending = false
	c.state.PreviousIndex = from
	c.state.ActiveIndex = to
	c.state.Direction = dir
	c.state.Boundary = section.Inside
}

// ForceEnter resumes capture at index after native scrolling re-entered the
// region from the given side.
func (c *Controller) ForceEnter(index int, from Entry) Result {
	if c.count == 0 {
		return Result{Outcome: Unhandled}
	}
	prev := c.state.ActiveIndex
	target := c.clamp(index)
	dir := section.Forward
	if from == FromBelow {
		dir = section.Backward
	}
	c.pending = false
	c.state = State{
		ActiveIndex:   target,
		PreviousIndex: NoIndex,
		Direction:     dir,
		Capturing:     true,
		Boundary:      section.Inside,
	}
	return Result{Outcome: Entered, From: prev, To: target, Direction: dir, Recaptured: true}
}

// Suspend stops capturing without touching the index or boundary. It reports
// whether capture was active.
func (c *Controller) Suspend() bool {
	was := c.state.Capturing
	c.state.Capturing = false
	c.pending = false
	return was
}
