package indicator

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	zone "github.com/lrstanley/bubblezone"

	"github.com/andyrewlee/snapscroll/internal/messages"
	"github.com/andyrewlee/snapscroll/internal/ui/common"
)

const (
	dotActive   = "●"
	dotInactive = "○"

	// ColumnWidth is the width of the rendered dot column.
	ColumnWidth = 3
)

// Model renders one dot per section.
type Model struct {
	count  int
	active int

	// Screen position of the column's top-left cell, set by the host.
	originX int
	originY int
	hits    common.RowTargets

	styles common.Styles
	zone   *zone.Manager
}

// New creates an indicator for count sections.
func New(count int) *Model {
	return &Model{count: count, styles: common.DefaultStyles()}
}

// SetZone sets the shared zone manager.
func (m *Model) SetZone(z *zone.Manager) { m.zone = z }

// SetStyles sets the styles used for dots.
func (m *Model) SetStyles(s common.Styles) { m.styles = s }

// SetCount replaces the number of sections.
func (m *Model) SetCount(count int) {
	m.count = count
	if m.active >= count {
		m.active = 0
	}
}

// SetActive highlights section i.
func (m *Model) SetActive(i int) {
	if i >= 0 && i < m.count {
		m.active = i
	}
}

// Active returns the highlighted index.
func (m *Model) Active() int { return m.active }

// SetOrigin records where the host placed the column on screen.
func (m *Model) SetOrigin(x, y int) { m.originX, m.originY = x, y }

func zoneID(i int) string { return fmt.Sprintf("indicator-dot-%d", i) }

// Column renders the dot column as exactly height lines of ColumnWidth cells,
// vertically centered. Dots that do not fit are dropped.
func (m *Model) Column(height int) []string {
	if height < 0 {
		height = 0
	}
	blank := strings.Repeat(" ", ColumnWidth)
	lines := make([]string, height)
	for i := range lines {
		lines[i] = blank
	}
	m.hits = m.hits[:0]
	n := min(m.count, height)
	top := (height - n) / 2
	for i := 0; i < n; i++ {
		style, glyph := m.styles.Dot, dotInactive
		if i == m.active {
			style, glyph = m.styles.ActiveDot, dotActive
		}
		dot := style.Render(glyph)
		if m.zone != nil {
			dot = m.zone.Mark(zoneID(i), dot)
		}
		lines[top+i] = " " + dot + " "
		m.hits = append(m.hits, common.RowTarget{Index: i, Row: top + i, Width: ColumnWidth})
	}
	return lines
}

// HitTest maps a screen position to a section index. Zone bounds win once a
// frame has been scanned; before that the recorded rows are used.
func (m *Model) HitTest(x, y int) (int, bool) {
	if m.zone != nil {
		scanned := false
		for _, h := range m.hits {
			z := m.zone.Get(zoneID(h.Index))
			if z == nil || z.IsZero() {
				continue
			}
			scanned = true
			if x >= z.StartX && x <= z.EndX && y >= z.StartY && y <= z.EndY {
				return h.Index, true
			}
		}
		if scanned {
			return 0, false
		}
	}
	return m.hits.At(x-m.originX, y-m.originY)
}

// Update turns left clicks on a dot into a jump request.
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	click, ok := msg.(tea.MouseClickMsg)
	if !ok || click.Button != tea.MouseLeft {
		return m, nil
	}
	idx, hit := m.HitTest(click.X, click.Y)
	if !hit {
		return m, nil
	}
	return m, func() tea.Msg { return messages.JumpToSection{Index: idx} }
}
