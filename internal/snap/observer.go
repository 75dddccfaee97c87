package snap

// Geometry describes the section region relative to the viewport, in rows.
// RegionTop is negative when the region starts above the viewport.
type Geometry struct {
	RegionTop      int
	RegionHeight   int
	ViewportHeight int
}

// Valid reports whether both the region and the viewport have height.
func (g Geometry) Valid() bool {
	return g.RegionHeight > 0 && g.ViewportHeight > 0
}

// VisibleFraction is the share of the region inside the viewport.
func (g Geometry) VisibleFraction() float64 {
	if !g.Valid() {
		return 0
	}
	top := max(g.RegionTop, 0)
	bottom := min(g.RegionTop+g.RegionHeight, g.ViewportHeight)
	if bottom <= top {
		return 0
	}
	return float64(bottom-top) / float64(g.RegionHeight)
}

// ActionKind is what the observer asks the controller to do.
type ActionKind int

const (
	ActionNone ActionKind = iota
	// ActionEnter resumes capture at Index.
	ActionEnter
	// ActionFailOpen drops capture because the layout cannot be measured.
	ActionFailOpen
)

// Action is the observer's verdict for one geometry sample.
type Action struct {
	Kind  ActionKind
	Index int
	From  Entry
}

// Observer decides when native scrolling has brought the region back into
// view. After capture ends it waits until the region has mostly left the
// viewport before it will capture again, so a release is never immediately
// undone by the same layout.
type Observer struct {
	count     int
	threshold float64

	armed   bool
	failed  bool
	closed  bool
	lastTop int
	hasLast bool
}

// NewObserver creates an armed observer: the first sufficiently visible
// sample captures.
func NewObserver(count int, visibleFraction float64) *Observer {
	return &Observer{count: count, threshold: visibleFraction, armed: true}
}

// Observe evaluates one geometry sample given the controller's capture state.
func (o *Observer) Observe(g Geometry, capturing bool) Action {
	if o.closed || o.count == 0 {
		return Action{Kind: ActionNone}
	}
	if !g.Valid() {
		o.failed = true
		o.hasLast = false
		return Action{Kind: ActionFailOpen}
	}
	o.failed = false

	moved := 0
	if o.hasLast {
		moved = g.RegionTop - o.lastTop
	}
	o.lastTop = g.RegionTop
	o.hasLast = true

	if capturing {
		o.armed = false
		return Action{Kind: ActionNone}
	}

	visible := g.VisibleFraction()
	if !o.armed {
		if visible < o.threshold {
			o.armed = true
		}
		return Action{Kind: ActionNone}
	}
	if visible < o.threshold {
		return Action{Kind: ActionNone}
	}

	o.armed = false
	// The region moving down the screen means the user is scrolling up,
	// i.e. arriving from below.
	if moved > 0 || (moved == 0 && g.RegionTop < 0) {
		return Action{Kind: ActionEnter, Index: o.count - 1, From: FromBelow}
	}
	return Action{Kind: ActionEnter, Index: 0, From: FromAbove}
}

// Failed reports whether the last sample could not be measured.
func (o *Observer) Failed() bool { return o.failed }

// Armed reports whether the next visible sample will capture.
func (o *Observer) Armed() bool { return o.armed }

// Close unsubscribes the observer; later samples are ignored.
func (o *Observer) Close() { o.closed = true }
