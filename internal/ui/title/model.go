package title

import (
	"fmt"

	"github.com/charmbracelet/x/ansi"

	"github.com/andyrewlee/snapscroll/internal/messages"
	"github.com/andyrewlee/snapscroll/internal/section"
	"github.com/andyrewlee/snapscroll/internal/ui/common"
)

// Model is the title widget.
type Model struct {
	titles        []string
	active        int
	previous      int
	direction     section.Direction
	transitioning bool

	styles common.Styles
}

// New creates a title widget for the resolved titles.
func New(titles []string) *Model {
	return &Model{titles: titles, previous: -1, styles: common.DefaultStyles()}
}

// SetStyles sets the styles.
func (m *Model) SetStyles(s common.Styles) { m.styles = s }

// SetTitles replaces the titles and resets the position.
func (m *Model) SetTitles(titles []string) {
	m.titles = titles
	m.active = 0
	m.previous = -1
	m.transitioning = false
}

// Apply records a section change.
func (m *Model) Apply(msg messages.SectionChanged) {
	m.active = msg.Index
	m.previous = msg.Previous
	m.direction = msg.Direction
	m.transitioning = msg.Previous >= 0 && msg.Previous != msg.Index
}

// Settle ends the transition styling.
func (m *Model) Settle() { m.transitioning = false }

// Transitioning reports whether the outgoing title is shown.
func (m *Model) Transitioning() bool { return m.transitioning }

func (m *Model) titleAt(i int) string {
	if i < 0 || i >= len(m.titles) {
		return ""
	}
	return m.titles[i]
}

// View renders the title line truncated to width.
func (m *Model) View(width int) string {
	if len(m.titles) == 0 || width <= 0 {
		return ""
	}
	counter := m.styles.Muted.Render(fmt.Sprintf("%d/%d", m.active+1, len(m.titles)))
	line := m.styles.Title.Render(m.titleAt(m.active)) + "  " + counter
	if m.transitioning {
		arrow := "↓"
		if m.direction == section.Backward {
			arrow = "↑"
		}
		line = m.styles.PreviousTitle.Render(m.titleAt(m.previous)) + " " + m.styles.Arrow.Render(arrow) + " " + line
	}
	return ansi.Truncate(line, width, "…")
}
