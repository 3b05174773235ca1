// Package osd holds the display-state engine: it tracks held modifiers and
// mouse buttons, composes the human-readable label for the current input,
// and decides when to re-render.
package osd

import "github.com/termkey/termkey/internal/keymap"

// ModifierState is a snapshot of which modifier keys are held, indexed by
// keymap.ModifierID. The index order is the label composition order.
type ModifierState [keymap.NumModifiers]bool

// ModifierTracker maintains the pressed state of each modifier key. It is
// mutated only from the single event-handling path, so it needs no locking.
type ModifierTracker struct {
	layout *keymap.Layout
	state  ModifierState
}

func NewModifierTracker(layout *keymap.Layout) *ModifierTracker {
	return &ModifierTracker{layout: layout}
}

// Update sets the slot for the code's modifier, if it has one. Non-modifier
// codes are a no-op.
func (t *ModifierTracker) Update(c keymap.Code, pressed bool) {
	if id, ok := t.layout.ModifierOf(c); ok {
		t.state[id] = pressed
	}
}

// Snapshot returns a copy of the current state for composition.
func (t *ModifierTracker) Snapshot() ModifierState {
	return t.state
}

// IsModifier reports whether the code maps to a modifier slot.
func (t *ModifierTracker) IsModifier(c keymap.Code) bool {
	return t.layout.IsModifier(c)
}
