package content

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/muesli/termenv"

	"github.com/andyrewlee/snapscroll/internal/logging"
)

// DetectStyle picks the dark or light glamour style from the terminal
// background. It queries the terminal, so call it before the program starts.
func DetectStyle() string {
	if termenv.HasDarkBackground() {
		return "dark"
	}
	return "light"
}

// Renderer renders markdown at a given width, caching results until the width
// changes.
type Renderer struct {
	style string
	width int
	term  *glamour.TermRenderer
	cache map[string]string
}

// NewRenderer creates a renderer using a glamour standard style name.
// An empty style means "dark".
func NewRenderer(style string) *Renderer {
	if strings.TrimSpace(style) == "" {
		style = "dark"
	}
	return &Renderer{style: style, cache: make(map[string]string)}
}

// Style returns the glamour style in use.
func (r *Renderer) Style() string { return r.style }

// Render returns markdown rendered to width columns. On renderer failure the
// source text is returned unchanged.
func (r *Renderer) Render(markdown string, width int) string {
	if width < 1 {
		width = 1
	}
	if width != r.width || r.term == nil {
		r.reset(width)
	}
	if out, ok := r.cache[markdown]; ok {
		return out
	}
	out := markdown
	if r.term != nil {
		rendered, err := r.term.Render(markdown)
		if err != nil {
			logging.WithError(err, "render markdown")
		} else {
			out = strings.Trim(rendered, "\n")
		}
	}
	r.cache[markdown] = out
	return out
}

// Lines renders markdown and splits it into lines.
func (r *Renderer) Lines(markdown string, width int) []string {
	if strings.TrimSpace(markdown) == "" {
		return nil
	}
	return strings.Split(r.Render(markdown, width), "\n")
}

// Invalidate drops cached output, e.g. after the document reloaded.
func (r *Renderer) Invalidate() {
	r.cache = make(map[string]string)
}

func (r *Renderer) reset(width int) {
	r.width = width
	r.cache = make(map[string]string)
	term, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(r.style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		logging.WithError(err, "create markdown renderer")
		r.term = nil
		return
	}
	r.term = term
}
