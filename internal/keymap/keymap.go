// Package keymap converts platform key and button codes into the canonical
// uppercase display names used on screen.
package keymap

import "strings"

// Code is a platform-specific key identifier (evdev code on Linux,
// virtual-key code on Windows). Button codes are normalized to small
// X11-style ids (1..15) before they reach this package.
type Code uint16

// ModifierID enumerates the tracked modifier keys. The declaration order is
// the order modifiers appear in composed labels and must not change.
type ModifierID int

const (
	ModCtrlL ModifierID = iota
	ModCtrlR
	ModAltL
	ModAltR
	ModShiftL
	ModShiftR
	ModMetaL
	ModMetaR
	ModAltGr
	ModSuperL
	ModSuperR
	NumModifiers
)

var modifierNames = [NumModifiers]string{
	"CONTROL_L", "CONTROL_R",
	"ALT_L", "ALT_R",
	"SHIFT_L", "SHIFT_R",
	"META_L", "META_R",
	"ALTGR",
	"SUPER_L", "SUPER_R",
}

func (m ModifierID) String() string {
	if m < 0 || m >= NumModifiers {
		return "UNKNOWN"
	}
	return modifierNames[m]
}

// Layout carries the per-platform key tables. KeyName resolution is a pure
// function of the code: override table first, then the platform's default
// symbolic name, then "UNKNOWN".
type Layout struct {
	// Overrides names keys whose default platform name is obscure
	// (modifiers, punctuation, arrows).
	Overrides map[Code]string
	// Fallback returns the platform's default symbolic name for a code,
	// or "" if the code has none.
	Fallback func(Code) string
	// Modifiers maps key codes to their modifier slot.
	Modifiers map[Code]ModifierID
}

// Resolve returns the canonical uppercase display name for a key code, or
// false when neither the override table nor the platform fallback knows the
// code. Callers that need a total function use KeyName.
func (l *Layout) Resolve(c Code) (string, bool) {
	if name, ok := l.Overrides[c]; ok {
		return name, true
	}
	if l.Fallback != nil {
		if name := l.Fallback(c); name != "" {
			return strings.ToUpper(name), true
		}
	}
	return "", false
}

// KeyName resolves a key code to its canonical uppercase display name.
// It never fails; codes with no symbol yield "UNKNOWN".
func (l *Layout) KeyName(c Code) string {
	if name, ok := l.Resolve(c); ok {
		return name
	}
	return "UNKNOWN"
}

// ModifierOf reports the modifier slot for a key code, if it has one.
func (l *Layout) ModifierOf(c Code) (ModifierID, bool) {
	id, ok := l.Modifiers[c]
	return id, ok
}

// IsModifier reports whether the code is a modifier key.
func (l *Layout) IsModifier(c Code) bool {
	_, ok := l.Modifiers[c]
	return ok
}

// Mouse button ids follow the X11 numbering: 1..3 are the main buttons,
// 4/5 are wheel ticks, 8/9 are the side buttons.
const (
	ButtonLeft      = 1
	ButtonMiddle    = 2
	ButtonRight     = 3
	ButtonWheelUp   = 4
	ButtonWheelDown = 5
	ButtonBack      = 8
	ButtonForward   = 9
)

var buttonNames = map[int]string{
	ButtonLeft:      "LEFT CLICK",
	ButtonMiddle:    "MIDDLE CLICK",
	ButtonRight:     "RIGHT CLICK",
	ButtonWheelUp:   "WHEEL UP",
	ButtonWheelDown: "WHEEL DOWN",
	ButtonBack:      "BACK CLICK",
	ButtonForward:   "FORWARD CLICK",
}

// ButtonName returns the canonical display name for a mouse button id.
func ButtonName(id int) string {
	if name, ok := buttonNames[id]; ok {
		return name
	}
	return "UNKNOWN BUTTON"
}
