package osd

import (
	"sort"
	"strings"
	"time"

	"github.com/termkey/termkey/internal/keymap"
)

// GestureWindow bounds how far apart presses may be and still join the same
// multi-button gesture when nothing is held anymore.
const GestureWindow = 50 * time.Millisecond

// MouseButtonTracker maintains the set of currently pressed mouse buttons.
// Presses accumulate while buttons are held; once everything has been
// released and the window has elapsed, the next press starts a new gesture.
type MouseButtonTracker struct {
	held      map[int]struct{}
	lastPress time.Time
}

func NewMouseButtonTracker() *MouseButtonTracker {
	return &MouseButtonTracker{held: make(map[int]struct{})}
}

// Press adds the button to the held set. Seeing a press for a button the
// tracker still considers held means its release was lost; past the gesture
// window that stale state is discarded and a new gesture begins.
func (t *MouseButtonTracker) Press(id int, now time.Time) {
	if _, stale := t.held[id]; stale && now.Sub(t.lastPress) > GestureWindow {
		clear(t.held)
	}
	t.held[id] = struct{}{}
	t.lastPress = now
}

// Release removes the button from the held set.
func (t *MouseButtonTracker) Release(id int) {
	delete(t.held, id)
}

// ActiveCount returns the number of currently held buttons.
func (t *MouseButtonTracker) ActiveCount() int {
	return len(t.held)
}

// ActiveLabel builds a "+"-joined list of button names in ascending id
// order, or "" when nothing is held.
func (t *MouseButtonTracker) ActiveLabel() string {
	if len(t.held) == 0 {
		return ""
	}
	ids := make([]int, 0, len(t.held))
	for id := range t.held {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	names := make([]string, len(ids))
	for i, id := range ids {
		names[i] = keymap.ButtonName(id)
	}
	return strings.Join(names, " + ")
}
