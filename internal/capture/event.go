// Package capture intercepts keyboard and mouse input system-wide and
// delivers it as a normalized event stream. Backends exist for Linux
// (evdev) and Windows (low-level hooks); the rest of the program never
// sees platform event formats.
package capture

import (
	"time"

	"github.com/termkey/termkey/internal/keymap"
)

// Kind classifies a normalized input event.
type Kind uint8

const (
	KeyDown Kind = iota
	KeyUp
	ButtonDown
	ButtonUp
)

func (k Kind) String() string {
	switch k {
	case KeyDown:
		return "key-down"
	case KeyUp:
		return "key-up"
	case ButtonDown:
		return "button-down"
	case ButtonUp:
		return "button-up"
	}
	return "unknown"
}

// Event is one normalized input transition. For key events Code carries the
// platform key code; for button events it carries the X11-style button id
// (1..15). Wheel ticks arrive as a momentary ButtonDown/ButtonUp pair.
type Event struct {
	Kind Kind
	Code keymap.Code
	When time.Time
}

// Source delivers intercepted input events until closed. Close is
// best-effort and idempotent.
type Source interface {
	Events() <-chan Event
	Close() error
}
