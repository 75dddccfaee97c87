package snap

import (
	"sync/atomic"

	tea "charm.land/bubbletea/v2"

	"github.com/andyrewlee/snapscroll/internal/logging"
	"github.com/andyrewlee/snapscroll/internal/messages"
	"github.com/andyrewlee/snapscroll/internal/perf"
	"github.com/andyrewlee/snapscroll/internal/section"
	"github.com/andyrewlee/snapscroll/internal/ui/common"
)

var owners atomic.Uint64

// Option configures a Model.
type Option func(*Model)

// WithTitles overrides section titles; empty entries keep the section's own.
func WithTitles(titles []string) Option {
	return func(m *Model) {
		m.titles = section.ResolveTitles(m.sections, titles)
	}
}

// Model is the navigation surface of one section sequence. The host feeds it
// wheel deltas, key steps, jumps and geometry, reads State, and receives
// SectionChanged, CaptureChanged and SequenceExhausted messages.
type Model struct {
	id       uint64
	sections []section.Section
	titles   []string
	policy   Policy

	ctrl     *Controller
	acc      *Accumulator
	lock     *TransitionLock
	observer *Observer

	closed bool
}

// New creates a model for sections. It starts without capturing; the first
// Observe with the region in view captures.
func New(sections []section.Section, policy Policy, opts ...Option) *Model {
	policy = policy.withDefaults()
	id := owners.Add(1)
	lock := NewTransitionLock(id)
	m := &Model{
		id:       id,
		sections: sections,
		titles:   section.ResolveTitles(sections, nil),
		policy:   policy,
		ctrl:     NewController(len(sections), policy.ConfirmRelease),
		acc:      NewAccumulator(policy.Threshold, lock),
		lock:     lock,
		observer: NewObserver(len(sections), policy.VisibleFraction),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Init implements tea.Model-style initialization.
func (m *Model) Init() tea.Cmd { return nil }

// Update handles lock expiry and jump requests.
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	if m.closed {
		return m, nil
	}
	switch msg := msg.(type) {
	case LockExpiredMsg:
		if m.lock.Expire(msg) {
			logging.Debug("snap: transition lock released at section %d", m.ctrl.State().ActiveIndex)
		}
	case messages.JumpToSection:
		return m, m.JumpTo(msg.Index)
	}
	return m, nil
}

// Wheel feeds one raw scroll delta (positive is forward). handled is false
// when the sequence is not capturing and the host should scroll natively.
func (m *Model) Wheel(delta float64) (bool, tea.Cmd) {
	if m.closed || !m.ctrl.State().Capturing {
		return false, nil
	}
	if m.acc.Locked() {
		perf.Count("snap.drop_locked", 1)
		return true, nil
	}
	trig, ok := m.acc.Observe(delta)
	if !ok {
		perf.Count("snap.accumulate", 1)
		return true, nil
	}
	perf.Count("snap.trigger", 1)
	return true, m.apply(m.ctrl.Trigger(trig.Direction))
}

// Step applies a discrete step such as a key press. It is gated by the lock
// but bypasses accumulation.
func (m *Model) Step(dir section.Direction) (bool, tea.Cmd) {
	if m.closed || !m.ctrl.State().Capturing {
		return false, nil
	}
	if m.lock.Locked() {
		perf.Count("snap.drop_locked", 1)
		return true, nil
	}
	m.acc.Reset()
	return true, m.apply(m.ctrl.Trigger(dir))
}

// JumpTo navigates explicitly to section i, clamped to the sequence.
func (m *Model) JumpTo(i int) tea.Cmd {
	if m.closed {
		return nil
	}
	m.acc.Reset()
	return m.apply(m.ctrl.JumpTo(i))
}

// Observe evaluates the region geometry reported by the host.
func (m *Model) Observe(g Geometry) tea.Cmd {
	if m.closed {
		return nil
	}
	action := m.observer.Observe(g, m.ctrl.State().Capturing)
	switch action.Kind {
	case ActionEnter:
		m.acc.Reset()
		logging.Debug("snap: re-entered from %s at section %d", action.From, action.Index)
		return m.apply(m.ctrl.ForceEnter(action.Index, action.From))
	case ActionFailOpen:
		if m.ctrl.Suspend() {
			logging.Warn("snap: region geometry unavailable (%+v), releasing capture", g)
			st := m.ctrl.State()
			return notify(messages.CaptureChanged{Capturing: false, Boundary: st.Boundary})
		}
	}
	return nil
}

func (m *Model) apply(r Result) tea.Cmd {
	st := m.ctrl.State()
	switch r.Outcome {
	case Moved:
		logging.Debug("snap: section %d -> %d (%s)", r.From, r.To, r.Direction)
		cmds := []tea.Cmd{
			m.lock.Begin(m.policy.LockDuration),
			notify(messages.SectionChanged{
				Index:     st.ActiveIndex,
				Previous:  st.PreviousIndex,
				Direction: st.Direction,
				Title:     m.Title(st.ActiveIndex),
			}),
		}
		if r.Recaptured {
			cmds = append(cmds, notify(messages.CaptureChanged{Capturing: true, Boundary: st.Boundary}))
		}
		return common.SafeBatch(cmds...)
	case Held:
		cmds := []tea.Cmd{m.lock.Begin(m.policy.LockDuration)}
		if r.Recaptured {
			cmds = append(cmds, notify(messages.CaptureChanged{Capturing: true, Boundary: st.Boundary}))
		}
		return common.SafeBatch(cmds...)
	case Armed:
		logging.Debug("snap: release armed at %s", st.Boundary)
		return m.lock.Begin(m.policy.LockDuration)
	case Released:
		logging.Info("snap: sequence exhausted %s at section %d", r.Direction, r.From)
		perf.Count("snap.release", 1)
		return common.SafeBatch(
			notify(messages.CaptureChanged{Capturing: false, Boundary: st.Boundary}),
			notify(messages.SequenceExhausted{Direction: r.Direction}),
		)
	case Entered:
		perf.Count("snap.enter", 1)
		return common.SafeBatch(
			notify(messages.CaptureChanged{Capturing: true, Boundary: st.Boundary}),
			notify(messages.SectionChanged{
				Index:     st.ActiveIndex,
				Previous:  st.PreviousIndex,
				Direction: st.Direction,
				Title:     m.Title(st.ActiveIndex),
			}),
		)
	}
	return nil
}

func notify(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}

// State returns the controller state.
func (m *Model) State() State { return m.ctrl.State() }

// Capturing reports whether scroll input is being intercepted.
func (m *Model) Capturing() bool { return !m.closed && m.ctrl.State().Capturing }

// Locked reports whether a transition is in flight.
func (m *Model) Locked() bool { return m.lock.Locked() }

// Count returns the number of sections.
func (m *Model) Count() int { return len(m.sections) }

// Section returns section i.
func (m *Model) Section(i int) (section.Section, bool) {
	if i < 0 || i >= len(m.sections) {
		return section.Section{}, false
	}
	return m.sections[i], true
}

// Title returns the resolved title of section i.
func (m *Model) Title(i int) string {
	if i < 0 || i >= len(m.titles) {
		return ""
	}
	return m.titles[i]
}

// Titles returns all resolved titles.
func (m *Model) Titles() []string {
	out := make([]string, len(m.titles))
	copy(out, m.titles)
	return out
}

// Policy returns the effective policy.
func (m *Model) Policy() Policy { return m.policy }

// Close cancels the pending lock timer and unsubscribes the observer.
// Every method is a no-op afterwards.
func (m *Model) Close() {
	if m.closed {
		return
	}
	m.closed = true
	m.lock.Close()
	m.observer.Close()
	logging.Debug("snap: model %d closed", m.id)
}

// Closed reports whether Close has been called.
func (m *Model) Closed() bool { return m.closed }
