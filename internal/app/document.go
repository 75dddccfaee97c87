package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/andyrewlee/snapscroll/internal/messages"
	"github.com/andyrewlee/snapscroll/internal/section"
	"github.com/andyrewlee/snapscroll/internal/validation"
)

// reloadDocument reads path off the update loop.
func (a *App) reloadDocument(path string) tea.Cmd {
	if path == "" {
		return nil
	}
	return func() tea.Msg {
		doc, err := section.Load(path)
		if err == nil {
			err = validation.ValidateDocument(doc)
		}
		if err != nil {
			return messages.Error{Err: err, Context: "reload document"}
		}
		return messages.DocumentReloaded{Path: path, Document: doc}
	}
}
