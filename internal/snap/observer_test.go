package snap

import "testing"

func TestGeometryVisibleFraction(t *testing.T) {
	tests := []struct {
		name string
		g    Geometry
		want float64
	}{
		{name: "aligned", g: Geometry{RegionTop: 0, RegionHeight: 20, ViewportHeight: 20}, want: 1},
		{name: "half below", g: Geometry{RegionTop: 10, RegionHeight: 20, ViewportHeight: 20}, want: 0.5},
		{name: "quarter above", g: Geometry{RegionTop: -15, RegionHeight: 20, ViewportHeight: 20}, want: 0.25},
		{name: "off screen", g: Geometry{RegionTop: 30, RegionHeight: 20, ViewportHeight: 20}, want: 0},
		{name: "invalid", g: Geometry{RegionTop: 0, RegionHeight: 0, ViewportHeight: 20}, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.g.VisibleFraction(); got != tt.want {
				t.Fatalf("VisibleFraction() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestObserverInitialCaptureFromAbove(t *testing.T) {
	o := NewObserver(3, 0.6)
	if a := o.Observe(Geometry{RegionTop: 15, RegionHeight: 20, ViewportHeight: 20}, false); a.Kind != ActionNone {
		t.Fatalf("mostly hidden region should not capture, got %+v", a)
	}
	a := o.Observe(Geometry{RegionTop: 4, RegionHeight: 20, ViewportHeight: 20}, false)
	if a.Kind != ActionEnter || a.Index != 0 || a.From != FromAbove {
		t.Fatalf("expected entry at 0 from above, got %+v", a)
	}
}

func TestObserverReleaseNeedsDepartureBeforeReentry(t *testing.T) {
	o := NewObserver(3, 0.6)
	full := Geometry{RegionTop: 0, RegionHeight: 20, ViewportHeight: 20}
	o.Observe(full, true)

	// Released at the end with the region still filling the screen.
	if a := o.Observe(full, false); a.Kind != ActionNone {
		t.Fatalf("release must not be undone in place, got %+v", a)
	}
	// Native scroll carries the region up and out.
	o.Observe(Geometry{RegionTop: -6, RegionHeight: 20, ViewportHeight: 20}, false)
	o.Observe(Geometry{RegionTop: -12, RegionHeight: 20, ViewportHeight: 20}, false)
	if !o.Armed() {
		t.Fatal("observer should arm once the region left the viewport")
	}
	// Scrolling back up brings it in from below.
	a := o.Observe(Geometry{RegionTop: -6, RegionHeight: 20, ViewportHeight: 20}, false)
	if a.Kind != ActionEnter || a.Index != 2 || a.From != FromBelow {
		t.Fatalf("expected entry at last from below, got %+v", a)
	}
}

func TestObserverReentryFromAboveAfterStartRelease(t *testing.T) {
	o := NewObserver(4, 0.6)
	o.Observe(Geometry{RegionTop: 0, RegionHeight: 20, ViewportHeight: 20}, true)
	o.Observe(Geometry{RegionTop: 12, RegionHeight: 20, ViewportHeight: 20}, false)
	a := o.Observe(Geometry{RegionTop: 6, RegionHeight: 20, ViewportHeight: 20}, false)
	if a.Kind != ActionEnter || a.Index != 0 || a.From != FromAbove {
		t.Fatalf("expected entry at 0 from above, got %+v", a)
	}
}

func TestObserverFailsOpen(t *testing.T) {
	o := NewObserver(3, 0.6)
	for _, g := range []Geometry{
		{RegionTop: 0, RegionHeight: 0, ViewportHeight: 20},
		{RegionTop: 0, RegionHeight: 20, ViewportHeight: 0},
	} {
		if a := o.Observe(g, true); a.Kind != ActionFailOpen {
			t.Fatalf("expected fail open for %+v, got %+v", g, a)
		}
		if !o.Failed() {
			t.Fatal("expected failed state")
		}
	}
	if a := o.Observe(Geometry{RegionTop: 0, RegionHeight: 20, ViewportHeight: 20}, false); a.Kind != ActionEnter {
		t.Fatalf("valid geometry should resume normal evaluation, got %+v", a)
	}
	if o.Failed() {
		t.Fatal("expected failure cleared")
	}
}

func TestObserverClosedAndEmpty(t *testing.T) {
	full := Geometry{RegionTop: 0, RegionHeight: 20, ViewportHeight: 20}
	o := NewObserver(3, 0.6)
	o.Close()
	if a := o.Observe(full, false); a.Kind != ActionNone {
		t.Fatalf("closed observer must be inert, got %+v", a)
	}
	if a := NewObserver(0, 0.6).Observe(full, false); a.Kind != ActionNone {
		t.Fatalf("empty sequence must never capture, got %+v", a)
	}
}
