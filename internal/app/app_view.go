package app

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/andyrewlee/snapscroll/internal/messages"
	"github.com/andyrewlee/snapscroll/internal/perf"
	"github.com/andyrewlee/snapscroll/internal/ui/indicator"
)

// layout recomputes the page for the current size and document.
func (a *App) layout() {
	if !a.ready {
		return
	}
	a.pager.SetSize(a.width, max(a.height-1, 0))
	a.pager.SetBlocks(
		a.content.Lines(a.doc.Intro, a.width),
		a.content.Lines(a.doc.Outro, a.width),
	)
	a.placeDots()
}

func (a *App) placeDots() {
	a.dots.SetOrigin(max(a.width-indicator.ColumnWidth, 0), a.pager.RegionScreenTop())
}

func (a *App) contentWidth() int {
	return max(a.width-indicator.ColumnWidth, 1)
}

// View renders the page and the status line.
func (a *App) View() tea.View {
	defer perf.Time("view")()

	var view tea.View
	view.AltScreen = true
	view.MouseMode = tea.MouseModeCellMotion

	if a.quitting {
		view.SetContent("")
		return view
	}
	if !a.ready {
		view.SetContent("Loading...")
		return view
	}

	a.placeDots()
	page := a.pager.View(a.renderRegion)
	view.SetContent(a.zone.Scan(page + "\n" + a.renderStatus()))
	return view
}

// renderRegion draws the active section with the title on top and the
// position dots on the right edge.
func (a *App) renderRegion(height int) []string {
	width := a.contentWidth()
	lines := make([]string, 0, height)
	if a.nav.Count() == 0 {
		lines = append(lines, a.styles.Muted.Render("No sections"))
	} else {
		lines = append(lines, a.title.View(width), "")
		if sec, ok := a.nav.Section(a.nav.State().ActiveIndex); ok {
			lines = append(lines, a.content.Lines(sec.Content, width)...)
		}
	}

	dots := a.dots.Column(height)
	out := make([]string, height)
	for i := range out {
		var line string
		if i < len(lines) {
			line = ansi.Truncate(lines[i], width, "")
		}
		if pad := width - lipgloss.Width(line); pad > 0 {
			line += strings.Repeat(" ", pad)
		}
		if i < len(dots) {
			line += dots[i]
		}
		out[i] = line
	}
	return out
}

func (a *App) renderStatus() string {
	var parts []string
	st := a.nav.State()
	if a.nav.Capturing() {
		parts = append(parts, a.styles.StatusCapture.Render(fmt.Sprintf("SNAP %d/%d", st.ActiveIndex+1, a.nav.Count())))
	} else {
		parts = append(parts, a.styles.StatusNative.Render("SCROLL"))
	}

	switch {
	case a.err != nil:
		parts = append(parts, a.styles.Error.Render(a.err.Error()))
	case a.toast != nil:
		style := a.styles.Status
		switch a.toast.Level {
		case messages.ToastSuccess:
			style = a.styles.Success
		case messages.ToastError:
			style = a.styles.Error
		}
		parts = append(parts, style.Render(a.toast.Message))
	}

	if a.showHints {
		var hints []string
		for _, b := range a.keymap.HintBindings() {
			h := b.Help()
			hints = append(hints, a.styles.HelpKey.Render(h.Key)+" "+a.styles.HelpDesc.Render(h.Desc))
		}
		parts = append(parts, strings.Join(hints, a.styles.Muted.Render(" • ")))
	}
	return ansi.Truncate(strings.Join(parts, " "), a.width, "…")
}
