package app

import (
	"context"
	"sync"

	tea "charm.land/bubbletea/v2"
	zone "github.com/lrstanley/bubblezone"

	"github.com/andyrewlee/snapscroll/internal/config"
	"github.com/andyrewlee/snapscroll/internal/keymap"
	"github.com/andyrewlee/snapscroll/internal/logging"
	"github.com/andyrewlee/snapscroll/internal/messages"
	"github.com/andyrewlee/snapscroll/internal/section"
	"github.com/andyrewlee/snapscroll/internal/snap"
	"github.com/andyrewlee/snapscroll/internal/supervisor"
	"github.com/andyrewlee/snapscroll/internal/ui/common"
	"github.com/andyrewlee/snapscroll/internal/ui/content"
	"github.com/andyrewlee/snapscroll/internal/ui/indicator"
	"github.com/andyrewlee/snapscroll/internal/ui/pager"
	"github.com/andyrewlee/snapscroll/internal/ui/title"
)

// toastExpiredMsg clears the status message it was scheduled for.
type toastExpiredMsg struct {
	token int
}

// App is the root Bubbletea model: a scrollable page hosting one section
// sequence.
type App struct {
	// Configuration
	config *config.Config
	keymap keymap.KeyMap
	styles common.Styles

	// Document
	docPath string
	doc     *section.Document

	// UI Components
	nav     *snap.Model
	pager   *pager.Model
	title   *title.Model
	dots    *indicator.Model
	content *content.Renderer
	zone    *zone.Manager

	// State
	width     int
	height    int
	ready     bool
	quitting  bool
	showHints bool
	err       error

	toast      *messages.Toast
	toastToken int

	// Background workers
	supervisor   *supervisor.Supervisor
	watcher      *docWatcher
	watcherCh    chan messages.DocumentChanged
	shutdownOnce sync.Once
}

// New creates the application for doc. docPath is watched for edits when set.
func New(cfg *config.Config, docPath string, doc *section.Document) *App {
	if doc == nil {
		doc = &section.Document{}
	}
	styles := common.StylesFor(common.ThemeID(cfg.UI.Theme))
	a := &App{
		config:    cfg,
		keymap:    keymap.FromConfig(cfg.KeyMap),
		styles:    styles,
		docPath:   docPath,
		pager:     pager.New(),
		title:     title.New(nil),
		dots:      indicator.New(0),
		content:   content.NewRenderer(cfg.UI.MarkdownStyle),
		zone:      zone.New(),
		showHints: cfg.UI.ShowKeymapHints,
	}
	a.title.SetStyles(styles)
	a.dots.SetStyles(styles)
	a.dots.SetZone(a.zone)
	a.setDocument(doc)

	if docPath != "" {
		a.startWatcher()
	}
	return a
}

func (a *App) startWatcher() {
	ch := make(chan messages.DocumentChanged, documentEventBuffer)
	path := a.docPath
	watcher, err := newDocWatcher(path, func() {
		select {
		case ch <- messages.DocumentChanged{Path: path}:
		default:
		}
	})
	if err != nil {
		logging.Warn("Document watcher disabled: %v", err)
		return
	}
	a.watcher = watcher
	a.watcherCh = ch
	a.supervisor = supervisor.New(context.Background())
	a.supervisor.OnError(func(name string, err error) {
		logging.Warn("%s failed: %v", name, err)
	})
	a.supervisor.Start("app.doc_watcher", watcher.Run, supervisor.WithBackoff(supervisorBackoff, 4*supervisorBackoff))
}

// setDocument tears down the current sequence and builds one for doc.
func (a *App) setDocument(doc *section.Document) {
	if a.nav != nil {
		a.nav.Close()
	}
	a.doc = doc
	a.nav = snap.New(doc.Sections, a.config.Policy, snap.WithTitles(doc.Titles))
	a.title.SetTitles(a.nav.Titles())
	a.dots.SetCount(a.nav.Count())
	a.content.Invalidate()
	a.layout()
}

// Init starts waiting for document changes.
func (a *App) Init() tea.Cmd {
	return a.waitForDocumentChange()
}

// waitForDocumentChange blocks until the watcher reports an edit.
func (a *App) waitForDocumentChange() tea.Cmd {
	if a.watcher == nil || a.watcherCh == nil {
		return nil
	}
	ch := a.watcherCh
	return func() tea.Msg {
		return <-ch
	}
}

// Navigation exposes the active section sequence.
func (a *App) Navigation() *snap.Model { return a.nav }

// Document returns the document being shown.
func (a *App) Document() *section.Document { return a.doc }

// Shutdown releases resources that may outlive the Bubble Tea program.
func (a *App) Shutdown() {
	a.shutdownOnce.Do(func() {
		if a.supervisor != nil {
			a.supervisor.Stop()
		}
		if a.watcher != nil {
			_ = a.watcher.Close()
		}
		if a.nav != nil {
			a.nav.Close()
		}
		a.zone.Close()
	})
}
