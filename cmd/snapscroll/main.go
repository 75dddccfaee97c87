package main

import (
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
)

// Version info set via ldflags
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

var (
	lastMouseMotionEvent   time.Time
	lastMouseX, lastMouseY int
)

// mouseEventFilter throttles repeated motion events. Wheel events always pass:
// dropping them would starve the scroll accumulator.
func mouseEventFilter(m tea.Model, msg tea.Msg) tea.Msg {
	motion, ok := msg.(tea.MouseMotionMsg)
	if !ok {
		return msg
	}
	if motion.X != lastMouseX || motion.Y != lastMouseY {
		lastMouseX = motion.X
		lastMouseY = motion.Y
		lastMouseMotionEvent = time.Now()
		return msg
	}
	now := time.Now()
	if now.Sub(lastMouseMotionEvent) < 15*time.Millisecond {
		return nil
	}
	lastMouseMotionEvent = now
	return msg
}
