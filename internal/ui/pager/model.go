package pager

import (
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/andyrewlee/snapscroll/internal/snap"
)

// Model holds the document layout and the native scroll offset.
type Model struct {
	intro []string
	outro []string

	width  int
	height int
	offset int
}

// New creates an empty pager.
func New() *Model { return &Model{} }

// SetSize sets the viewport dimensions. The region always fills the viewport.
func (m *Model) SetSize(width, height int) {
	m.width = max(width, 0)
	m.height = max(height, 0)
	m.clamp()
}

// SetBlocks replaces the rendered intro and outro lines.
func (m *Model) SetBlocks(intro, outro []string) {
	m.intro = intro
	m.outro = outro
	m.clamp()
}

// Width returns the viewport width.
func (m *Model) Width() int { return m.width }

// Height returns the viewport height, which is also the region height.
func (m *Model) Height() int { return m.height }

// Offset returns the native scroll offset in rows.
func (m *Model) Offset() int { return m.offset }

// RegionStart is the document row where the region begins.
func (m *Model) RegionStart() int { return len(m.intro) }

// RegionScreenTop is the viewport row of the region's first line.
func (m *Model) RegionScreenTop() int { return m.RegionStart() - m.offset }

func (m *Model) total() int { return len(m.intro) + m.height + len(m.outro) }

func (m *Model) maxOffset() int { return max(m.total()-m.height, 0) }

func (m *Model) clamp() {
	m.offset = min(max(m.offset, 0), m.maxOffset())
}

// ScrollBy scrolls natively by rows and reports whether the offset changed.
func (m *Model) ScrollBy(rows int) bool {
	before := m.offset
	m.offset += rows
	m.clamp()
	return m.offset != before
}

// ScrollTo moves to an absolute offset.
func (m *Model) ScrollTo(offset int) {
	m.offset = offset
	m.clamp()
}

// ScrollToBottom moves to the end of the document.
func (m *Model) ScrollToBottom() { m.ScrollTo(m.maxOffset()) }

// SnapToRegion aligns the region with the viewport.
func (m *Model) SnapToRegion() { m.ScrollTo(m.RegionStart()) }

// Geometry reports the region relative to the viewport.
func (m *Model) Geometry() snap.Geometry {
	return snap.Geometry{
		RegionTop:      m.RegionScreenTop(),
		RegionHeight:   m.height,
		ViewportHeight: m.height,
	}
}

// View renders the visible window. region supplies the region's lines; it is
// only called when part of the region is visible.
func (m *Model) View(region func(height int) []string) string {
	if m.height == 0 {
		return ""
	}
	start := m.RegionStart()
	var regionLines []string
	if top := m.RegionScreenTop(); top < m.height && top+m.height > 0 && region != nil {
		regionLines = region(m.height)
	}

	out := make([]string, 0, m.height)
	for row := m.offset; row < m.offset+m.height; row++ {
		var line string
		switch {
		case row < start:
			line = m.intro[row]
		case row < start+m.height:
			if i := row - start; i < len(regionLines) {
				line = regionLines[i]
			}
		default:
			if i := row - start - m.height; i < len(m.outro) {
				line = m.outro[i]
			}
		}
		out = append(out, ansi.Truncate(line, m.width, ""))
	}
	return strings.Join(out, "\n")
}
