package osd

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/termkey/termkey/internal/keymap"
)

func TestButtonsEmpty(t *testing.T) {
	tr := NewMouseButtonTracker()
	assert.Equal(t, "", tr.ActiveLabel())
	assert.Equal(t, 0, tr.ActiveCount())
}

func TestButtonsSimultaneousAscendingOrder(t *testing.T) {
	tr := NewMouseButtonTracker()
	now := time.Now()

	// Right pressed first; the label still lists ascending ids.
	tr.Press(keymap.ButtonRight, now)
	tr.Press(keymap.ButtonLeft, now.Add(10*time.Millisecond))
	assert.Equal(t, "LEFT CLICK + RIGHT CLICK", tr.ActiveLabel())
	assert.Equal(t, 2, tr.ActiveCount())
}

func TestButtonsReleaseUpdatesSet(t *testing.T) {
	tr := NewMouseButtonTracker()
	now := time.Now()

	tr.Press(keymap.ButtonLeft, now)
	tr.Press(keymap.ButtonRight, now.Add(10*time.Millisecond))
	tr.Release(keymap.ButtonLeft)
	assert.Equal(t, "RIGHT CLICK", tr.ActiveLabel())

	tr.Release(keymap.ButtonRight)
	assert.Equal(t, "", tr.ActiveLabel())
}

func TestButtonsPressIsIdempotentWithinWindow(t *testing.T) {
	tr := NewMouseButtonTracker()
	now := time.Now()

	tr.Press(keymap.ButtonLeft, now)
	tr.Press(keymap.ButtonLeft, now.Add(20*time.Millisecond))
	assert.Equal(t, 1, tr.ActiveCount())
}

func TestButtonsStaleGestureRecovery(t *testing.T) {
	tr := NewMouseButtonTracker()
	now := time.Now()

	// Releases for both buttons are lost.
	tr.Press(keymap.ButtonLeft, now)
	tr.Press(keymap.ButtonRight, now.Add(10*time.Millisecond))

	// A fresh press of an already-"held" button past the window discards
	// the stale gesture.
	tr.Press(keymap.ButtonLeft, now.Add(500*time.Millisecond))
	assert.Equal(t, "LEFT CLICK", tr.ActiveLabel())
}

func TestButtonsAccumulateAcrossSlowPressesWhileHeld(t *testing.T) {
	tr := NewMouseButtonTracker()
	now := time.Now()

	// Holding left, then pressing middle well past the window still joins
	// the gesture.
	tr.Press(keymap.ButtonLeft, now)
	tr.Press(keymap.ButtonMiddle, now.Add(300*time.Millisecond))
	assert.Equal(t, "LEFT CLICK + MIDDLE CLICK", tr.ActiveLabel())
}
