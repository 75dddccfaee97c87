package content

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestRenderContainsText(t *testing.T) {
	r := NewRenderer("notty")
	out := ansi.Strip(r.Render("# Heading\n\nsome body text", 40))
	if !strings.Contains(out, "Heading") || !strings.Contains(out, "some body text") {
		t.Fatalf("unexpected render output %q", out)
	}
}

func TestRenderCachesPerWidth(t *testing.T) {
	r := NewRenderer("notty")
	first := r.Render("- item", 30)
	if len(r.cache) != 1 {
		t.Fatalf("expected one cached entry, got %d", len(r.cache))
	}
	if r.Render("- item", 30) != first {
		t.Fatal("cached render should be stable")
	}
	r.Render("- item", 50)
	if len(r.cache) != 1 || r.width != 50 {
		t.Fatal("width change should reset the cache")
	}
	r.Invalidate()
	if len(r.cache) != 0 {
		t.Fatal("invalidate should clear the cache")
	}
}

func TestLinesEmpty(t *testing.T) {
	r := NewRenderer("")
	if r.Style() != "dark" {
		t.Fatalf("expected dark default, got %q", r.Style())
	}
	if lines := r.Lines("  \n", 20); lines != nil {
		t.Fatalf("blank markdown should have no lines, got %v", lines)
	}
}
