package snap

import (
	"math/rand"
	"testing"

	"github.com/andyrewlee/snapscroll/internal/section"
)

func capturedController(count int) *Controller {
	c := NewController(count, false)
	c.ForceEnter(0, FromAbove)
	return c
}

func TestControllerIndexStaysInRange(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for _, count := range []int{1, 2, 3, 7} {
		c := capturedController(count)
		for i := 0; i < 500; i++ {
			switch rng.Intn(4) {
			case 0:
				c.Trigger(section.Forward)
			case 1:
				c.Trigger(section.Backward)
			case 2:
				c.JumpTo(rng.Intn(count*3) - count)
			case 3:
				c.ForceEnter(rng.Intn(count), FromBelow)
			}
			st := c.State()
			if st.ActiveIndex < 0 || st.ActiveIndex >= count {
				t.Fatalf("count %d: active index %d out of range", count, st.ActiveIndex)
			}
		}
	}
}

func TestControllerRoundTrip(t *testing.T) {
	c := capturedController(5)
	c.JumpTo(2)
	c.Trigger(section.Forward)
	c.Trigger(section.Backward)
	st := c.State()
	if st.ActiveIndex != 2 {
		t.Fatalf("expected to return to 2, got %d", st.ActiveIndex)
	}
	if st.PreviousIndex != 3 || st.Direction != section.Backward || st.Boundary != section.Inside {
		t.Fatalf("unexpected state after round trip: %+v", st)
	}
}

func TestControllerForwardToLastSetsAtEnd(t *testing.T) {
	c := capturedController(3)
	r := c.Trigger(section.Forward)
	if r.Outcome != Moved || c.State().Boundary != section.Inside {
		t.Fatalf("expected inside move, got %v %+v", r.Outcome, c.State())
	}
	c.Trigger(section.Forward)
	if st := c.State(); st.ActiveIndex != 2 || st.Boundary != section.AtEnd || !st.Capturing {
		t.Fatalf("expected captured at last section, got %+v", st)
	}
}

func TestControllerBoundaryRelease(t *testing.T) {
	c := capturedController(3)
	c.JumpTo(2)

	r := c.Trigger(section.Forward)
	if r.Outcome != Released {
		t.Fatalf("expected release, got %v", r.Outcome)
	}
	st := c.State()
	if st.ActiveIndex != 2 || st.Boundary != section.AtEnd || st.Capturing {
		t.Fatalf("unexpected state after release: %+v", st)
	}

	if r := c.Trigger(section.Forward); r.Outcome != Unhandled {
		t.Fatalf("triggers after release must be unhandled, got %v", r.Outcome)
	}
	if c.State().ActiveIndex != 2 {
		t.Fatal("input must not move a released controller")
	}
}

func TestControllerReleaseAtStart(t *testing.T) {
	c := capturedController(3)
	r := c.Trigger(section.Backward)
	if r.Outcome != Released {
		t.Fatalf("expected release upward, got %v", r.Outcome)
	}
	if st := c.State(); st.Boundary != section.AtStart || st.Capturing || st.ActiveIndex != 0 {
		t.Fatalf("unexpected state: %+v", st)
	}
}

func TestControllerReEntry(t *testing.T) {
	c := capturedController(4)
	c.JumpTo(3)
	c.Trigger(section.Forward)

	r := c.ForceEnter(3, FromBelow)
	if r.Outcome != Entered {
		t.Fatalf("expected entered, got %v", r.Outcome)
	}
	st := c.State()
	if !st.Capturing || st.Boundary != section.Inside || st.ActiveIndex != 3 || st.PreviousIndex != NoIndex {
		t.Fatalf("unexpected state after re-entry: %+v", st)
	}
}

func TestControllerSingleSection(t *testing.T) {
	for _, dir := range []section.Direction{section.Forward, section.Backward} {
		c := capturedController(1)
		r := c.Trigger(dir)
		if r.Outcome != Released {
			t.Fatalf("%v: expected immediate release, got %v", dir, r.Outcome)
		}
		st := c.State()
		want := section.AtEnd
		if dir == section.Backward {
			want = section.AtStart
		}
		if st.ActiveIndex != 0 || st.Capturing || st.Boundary != want {
			t.Fatalf("%v: unexpected state %+v", dir, st)
		}
	}
}

func TestControllerEmptyIsInert(t *testing.T) {
	c := NewController(0, false)
	if c.ForceEnter(0, FromAbove).Outcome != Unhandled {
		t.Fatal("empty controller cannot enter")
	}
	if c.JumpTo(3).Outcome != Unhandled {
		t.Fatal("empty controller cannot jump")
	}
	if c.Trigger(section.Forward).Outcome != Unhandled {
		t.Fatal("empty controller cannot move")
	}
	if c.State().Capturing {
		t.Fatal("empty controller must never capture")
	}
}

func TestControllerJumpToClampsAndSetsBoundary(t *testing.T) {
	tests := []struct {
		name     string
		target   int
		want     int
		boundary section.Boundary
		dir      section.Direction
	}{
		{name: "past end", target: 99, want: 4, boundary: section.AtEnd, dir: section.Forward},
		{name: "before start", target: -3, want: 0, boundary: section.AtStart, dir: section.Backward},
		{name: "middle", target: 3, want: 3, boundary: section.Inside, dir: section.Forward},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := capturedController(5)
			c.JumpTo(2)
			r := c.JumpTo(tt.target)
			if r.Outcome != Moved {
				t.Fatalf("expected move, got %v", r.Outcome)
			}
			st := c.State()
			if st.ActiveIndex != tt.want || st.Boundary != tt.boundary || st.Direction != tt.dir || st.PreviousIndex != 2 {
				t.Fatalf("unexpected state %+v", st)
			}
		})
	}
}

func TestControllerJumpToActiveIsIdempotent(t *testing.T) {
	c := capturedController(5)
	c.JumpTo(2)
	before := c.State()
	r := c.JumpTo(2)
	if r.Outcome != Held {
		t.Fatalf("expected held, got %v", r.Outcome)
	}
	if c.State() != before {
		t.Fatalf("state changed: %+v -> %+v", before, c.State())
	}
}

func TestControllerJumpRecapturesAfterRelease(t *testing.T) {
	c := capturedController(3)
	c.JumpTo(2)
	c.Trigger(section.Forward)

	r := c.JumpTo(1)
	if !r.Recaptured || !c.State().Capturing {
		t.Fatalf("explicit jump should recapture, got %+v", c.State())
	}
}

func TestControllerConfirmRelease(t *testing.T) {
	c := NewController(2, true)
	c.ForceEnter(1, FromBelow)

	if r := c.Trigger(section.Forward); r.Outcome != Armed {
		t.Fatalf("first boundary trigger should arm, got %v", r.Outcome)
	}
	if st := c.State(); !st.Capturing || st.Boundary != section.AtEnd {
		t.Fatalf("armed controller should keep capturing, got %+v", st)
	}
	if r := c.Trigger(section.Forward); r.Outcome != Released {
		t.Fatalf("second boundary trigger should release, got %v", r.Outcome)
	}

	c.ForceEnter(1, FromBelow)
	c.Trigger(section.Forward)
	c.Trigger(section.Backward)
	c.Trigger(section.Forward)
	if r := c.Trigger(section.Forward); r.Outcome != Armed {
		t.Fatalf("moving away should disarm, got %v", r.Outcome)
	}
}

func TestControllerSuspend(t *testing.T) {
	c := capturedController(3)
	if !c.Suspend() {
		t.Fatal("expected suspend to report prior capture")
	}
	if c.Suspend() {
		t.Fatal("second suspend should report no capture")
	}
}
