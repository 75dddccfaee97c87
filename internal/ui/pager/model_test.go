package pager

import (
	"strings"
	"testing"

	"github.com/andyrewlee/snapscroll/internal/snap"
)

func lines(prefix string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = prefix
	}
	return out
}

func newPager() *Model {
	m := New()
	m.SetBlocks(lines("intro", 6), lines("outro", 4))
	m.SetSize(20, 10)
	return m
}

func TestGeometryTracksOffset(t *testing.T) {
	m := newPager()
	want := snap.Geometry{RegionTop: 6, RegionHeight: 10, ViewportHeight: 10}
	if g := m.Geometry(); g != want {
		t.Fatalf("Geometry() = %+v, want %+v", g, want)
	}
	m.ScrollBy(9)
	if g := m.Geometry(); g.RegionTop != -3 {
		t.Fatalf("expected region top -3, got %+v", g)
	}
}

func TestScrollClamps(t *testing.T) {
	m := newPager()
	if m.ScrollBy(-5) {
		t.Fatal("scrolling above the top should not move")
	}
	m.ScrollBy(1000)
	if m.Offset() != 10 {
		t.Fatalf("expected max offset 10, got %d", m.Offset())
	}
	m.ScrollTo(0)
	m.ScrollToBottom()
	if m.Offset() != 10 {
		t.Fatalf("expected bottom offset 10, got %d", m.Offset())
	}
}

func TestSnapToRegion(t *testing.T) {
	m := newPager()
	m.ScrollBy(2)
	m.SnapToRegion()
	if g := m.Geometry(); g.RegionTop != 0 || g.VisibleFraction() != 1 {
		t.Fatalf("expected aligned region, got %+v", g)
	}
}

func TestViewComposesBlocks(t *testing.T) {
	m := newPager()
	m.ScrollBy(3)
	calls := 0
	out := m.View(func(h int) []string {
		calls++
		return lines("region", h)
	})
	rows := strings.Split(out, "\n")
	if len(rows) != 10 {
		t.Fatalf("expected 10 rows, got %d", len(rows))
	}
	if rows[0] != "intro" || rows[2] != "intro" || rows[3] != "region" || rows[9] != "region" {
		t.Fatalf("unexpected composition %q", rows)
	}
	if calls != 1 {
		t.Fatalf("expected region rendered once, got %d", calls)
	}

	m.ScrollToBottom()
	rows = strings.Split(m.View(func(h int) []string { return lines("region", h) }), "\n")
	if rows[9] != "outro" || rows[5] != "region" || rows[6] != "outro" {
		t.Fatalf("unexpected bottom composition %q", rows)
	}
}

func TestViewSkipsHiddenRegion(t *testing.T) {
	m := New()
	m.SetBlocks(lines("intro", 30), nil)
	m.SetSize(20, 10)
	m.View(func(int) []string {
		t.Fatal("region should not render while off screen")
		return nil
	})
}

func TestZeroHeightGeometryIsInvalid(t *testing.T) {
	m := New()
	m.SetSize(20, 0)
	if m.Geometry().Valid() {
		t.Fatal("zero-height layout must not report valid geometry")
	}
	if m.View(nil) != "" {
		t.Fatal("zero-height view should be empty")
	}
}
