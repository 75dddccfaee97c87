package app

import (
	"fmt"
	"runtime/debug"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/andyrewlee/snapscroll/internal/logging"
	"github.com/andyrewlee/snapscroll/internal/messages"
	"github.com/andyrewlee/snapscroll/internal/perf"
	"github.com/andyrewlee/snapscroll/internal/section"
	"github.com/andyrewlee/snapscroll/internal/snap"
	"github.com/andyrewlee/snapscroll/internal/ui/common"
)

// Update handles all messages with panic recovery.
func (a *App) Update(msg tea.Msg) (model tea.Model, cmd tea.Cmd) {
	defer func() {
		if r := recover(); r != nil {
			logging.Error("panic in app.Update: %v\n%s", r, debug.Stack())
			a.err = fmt.Errorf("internal error: %v", r)
			model = a
			cmd = nil
		}
	}()
	return a.update(msg)
}

func (a *App) update(msg tea.Msg) (tea.Model, tea.Cmd) {
	defer perf.Time("update")()

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		a.layout()
		return a, a.observe()

	case tea.KeyPressMsg:
		return a, a.handleKey(msg)

	case tea.MouseWheelMsg:
		return a, a.handleWheel(msg)

	case tea.MouseClickMsg:
		if msg.Button != tea.MouseLeft {
			return a, nil
		}
		if a.err != nil {
			a.err = nil
			return a, nil
		}
		var cmd tea.Cmd
		a.dots, cmd = a.dots.Update(msg)
		return a, common.SafeCmd(cmd)

	case snap.LockExpiredMsg:
		var cmd tea.Cmd
		a.nav, cmd = a.nav.Update(msg)
		if !a.nav.Locked() {
			a.title.Settle()
		}
		return a, cmd

	case messages.JumpToSection:
		return a, a.jump(msg.Index)

	case messages.SectionChanged:
		a.title.Apply(msg)
		a.dots.SetActive(msg.Index)
		logging.Debug("section %d (%s) active", msg.Index, msg.Title)
		return a, nil

	case messages.CaptureChanged:
		if msg.Capturing {
			a.pager.SnapToRegion()
		} else {
			a.title.Settle()
		}
		return a, nil

	case messages.SequenceExhausted:
		// The releasing gesture carries on as one native step.
		rows := a.nativeStep()
		if msg.Direction == section.Backward {
			rows = -rows
		}
		a.pager.ScrollBy(rows)
		return a, a.observe()

	case messages.DocumentChanged:
		return a, common.SafeBatch(a.reloadDocument(msg.Path), a.waitForDocumentChange())

	case messages.DocumentReloaded:
		a.setDocument(msg.Document)
		logging.Info("Reloaded document %s (%d sections)", msg.Path, a.nav.Count())
		return a, common.SafeBatch(
			a.observe(),
			a.showToast(fmt.Sprintf("Reloaded %d sections", a.nav.Count()), messages.ToastSuccess),
		)

	case messages.Toast:
		return a, a.showToast(msg.Message, msg.Level)

	case toastExpiredMsg:
		if msg.token == a.toastToken {
			a.toast = nil
		}
		return a, nil

	case messages.Error:
		if !msg.Logged {
			logging.Error("%s: %v", msg.Context, msg.Err)
		}
		a.err = msg
		return a, nil
	}
	return a, nil
}

func (a *App) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	km := a.keymap
	switch {
	case key.Matches(msg, km.Quit):
		a.quitting = true
		return tea.Quit
	case key.Matches(msg, km.Help):
		a.showHints = !a.showHints
		a.config.UI.ShowKeymapHints = a.showHints
		if err := a.config.SaveUISettings(); err != nil {
			logging.WithError(err, "save ui settings")
		}
		return nil
	case key.Matches(msg, km.CopyTitle):
		return a.copyTitle()
	case key.Matches(msg, km.Next):
		return a.step(section.Forward, 1)
	case key.Matches(msg, km.Prev):
		return a.step(section.Backward, 1)
	case key.Matches(msg, km.PageDown):
		return a.step(section.Forward, a.pager.Height())
	case key.Matches(msg, km.PageUp):
		return a.step(section.Backward, a.pager.Height())
	case key.Matches(msg, km.Top):
		if a.nav.Capturing() {
			return a.jump(0)
		}
		a.pager.ScrollTo(0)
		return a.observe()
	case key.Matches(msg, km.Bottom):
		if a.nav.Capturing() {
			return a.jump(a.nav.Count() - 1)
		}
		a.pager.ScrollToBottom()
		return a.observe()
	}
	for i, b := range km.Jump {
		if key.Matches(msg, b) {
			if i >= a.nav.Count() {
				return nil
			}
			return a.jump(i)
		}
	}
	return nil
}

func (a *App) handleWheel(msg tea.MouseWheelMsg) tea.Cmd {
	var dir section.Direction
	switch msg.Button {
	case tea.MouseWheelDown:
		dir = section.Forward
	case tea.MouseWheelUp:
		dir = section.Backward
	default:
		return nil
	}
	delta := a.config.WheelDelta
	if dir == section.Backward {
		delta = -delta
	}
	if handled, cmd := a.nav.Wheel(delta); handled {
		return cmd
	}
	rows := a.nativeStep()
	if dir == section.Backward {
		rows = -rows
	}
	a.pager.ScrollBy(rows)
	return a.observe()
}

// step applies a key intent: one section while capturing, otherwise rows of
// native scrolling.
func (a *App) step(dir section.Direction, rows int) tea.Cmd {
	if handled, cmd := a.nav.Step(dir); handled {
		return cmd
	}
	if dir == section.Backward {
		rows = -rows
	}
	a.pager.ScrollBy(rows)
	return a.observe()
}

func (a *App) jump(i int) tea.Cmd {
	var cmd tea.Cmd
	a.nav, cmd = a.nav.Update(messages.JumpToSection{Index: i})
	a.pager.SnapToRegion()
	return cmd
}

// observe reports the region geometry after the page moved or resized.
func (a *App) observe() tea.Cmd {
	if !a.ready {
		return nil
	}
	return a.nav.Observe(a.pager.Geometry())
}

func (a *App) nativeStep() int {
	return common.ScrollDeltaForHeight(a.pager.Height(), wheelScrollFactor)
}

func (a *App) copyTitle() tea.Cmd {
	st := a.nav.State()
	text := a.nav.Title(st.ActiveIndex)
	if text == "" {
		return nil
	}
	copied, err := common.CopyLine(text)
	if err != nil {
		logging.WithError(err, "copy title")
		return a.showToast("Copy failed", messages.ToastError)
	}
	return a.showToast(fmt.Sprintf("Copied %q", common.TruncatePlain(copied, 32, "…")), messages.ToastSuccess)
}

func (a *App) showToast(text string, level messages.ToastLevel) tea.Cmd {
	a.toastToken++
	token := a.toastToken
	a.toast = &messages.Toast{Message: text, Level: level}
	return common.ExpireAfter(toastDuration, toastExpiredMsg{token: token})
}
