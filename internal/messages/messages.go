package messages

import (
	"github.com/andyrewlee/snapscroll/internal/section"
)

// SectionChanged is sent whenever the active section index changes.
type SectionChanged struct {
	Index     int
	Previous  int // -1 when there is no previous index
	Direction section.Direction
	Title     string
}

// CaptureChanged is sent when the sequence starts or stops intercepting
// scroll input. The host decides whether to suppress its own scrolling.
type CaptureChanged struct {
	Capturing bool
	Boundary  section.Boundary
}

// SequenceExhausted is sent once per release when the user scrolls past an
// end of the sequence.
type SequenceExhausted struct {
	Direction section.Direction
}

// JumpToSection requests explicit navigation, e.g. from a position indicator.
type JumpToSection struct {
	Index int
}

// DocumentReloaded carries a freshly parsed document after its file changed.
type DocumentReloaded struct {
	Path     string
	Document *section.Document
}

// DocumentChanged is sent by the document watcher; the app reloads on receipt.
type DocumentChanged struct {
	Path string
}

// ToastLevel identifies the type of toast notification to display.
type ToastLevel string

const (
	ToastInfo    ToastLevel = "info"
	ToastSuccess ToastLevel = "success"
	ToastError   ToastLevel = "error"
)

// Toast requests a transient status line message.
type Toast struct {
	Message string
	Level   ToastLevel
}

// Error is sent when an error occurs
type Error struct {
	Err     error
	Context string
	Logged  bool
}

func (e Error) Error() string {
	if e.Context != "" {
		return e.Context + ": " + e.Err.Error()
	}
	return e.Err.Error()
}
