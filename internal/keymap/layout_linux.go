//go:build linux

package keymap

import (
	"strings"

	"github.com/holoplot/go-evdev"
)

// SystemLayout returns the evdev-based key tables for Linux. The fallback
// derives names from the kernel's KEY_* identifiers, so every code known to
// evdev resolves to something readable.
func SystemLayout() *Layout {
	return &Layout{
		Overrides: linuxOverrides,
		Fallback: func(c Code) string {
			name, ok := evdev.KEYToString[evdev.EvCode(c)]
			if !ok {
				return ""
			}
			return strings.TrimPrefix(name, "KEY_")
		},
		Modifiers: linuxModifiers,
	}
}

// evdev reports AltGr as KEY_RIGHTALT and has no Meta key codes; whether the
// right Alt acts as AltGr is decided by the active layout, which is invisible
// at this level. The ALTGR and META_L/META_R slots are therefore never
// produced from this table.
var linuxModifiers = map[Code]ModifierID{
	Code(evdev.KEY_LEFTCTRL):   ModCtrlL,
	Code(evdev.KEY_RIGHTCTRL):  ModCtrlR,
	Code(evdev.KEY_LEFTALT):    ModAltL,
	Code(evdev.KEY_RIGHTALT):   ModAltR,
	Code(evdev.KEY_LEFTSHIFT):  ModShiftL,
	Code(evdev.KEY_RIGHTSHIFT): ModShiftR,
	Code(evdev.KEY_LEFTMETA):   ModSuperL,
	Code(evdev.KEY_RIGHTMETA):  ModSuperR,
}

// Keys whose KEY_* identifier reads badly on screen. Punctuation carries the
// glyph in parentheses so viewers do not have to know the key name.
var linuxOverrides = map[Code]string{
	Code(evdev.KEY_LEFTSHIFT):  "SHIFT_L",
	Code(evdev.KEY_RIGHTSHIFT): "SHIFT_R",
	Code(evdev.KEY_LEFTCTRL):   "CONTROL_L",
	Code(evdev.KEY_RIGHTCTRL):  "CONTROL_R",
	Code(evdev.KEY_LEFTALT):    "ALT_L",
	Code(evdev.KEY_RIGHTALT):   "ALT_R",
	Code(evdev.KEY_LEFTMETA):   "SUPER_L",
	Code(evdev.KEY_RIGHTMETA):  "SUPER_R",

	Code(evdev.KEY_APOSTROPHE): "APOSTROPHE (')",
	Code(evdev.KEY_SLASH):      "SLASH (/)",
	Code(evdev.KEY_BACKSLASH):  "BACKSLASH (\\)",
	Code(evdev.KEY_GRAVE):      "GRAVE (`)",
	Code(evdev.KEY_LEFT):       "ARROW LEFT",
	Code(evdev.KEY_RIGHT):      "ARROW RIGHT",
	Code(evdev.KEY_UP):         "ARROW UP",
	Code(evdev.KEY_DOWN):       "ARROW DOWN",
	Code(evdev.KEY_KPSLASH):    "KP_DIVIDE (/)",
	Code(evdev.KEY_KPASTERISK): "KP_MULTIPLY (*)",
	Code(evdev.KEY_KPMINUS):    "KP_SUBTRACT (-)",
	Code(evdev.KEY_KPPLUS):     "KP_ADD (+)",
	Code(evdev.KEY_LEFTBRACE):  "BRACKETLEFT ([)",
	Code(evdev.KEY_RIGHTBRACE): "BRACKETRIGHT (])",
	Code(evdev.KEY_COMMA):      "COMMA (,)",
	Code(evdev.KEY_DOT):        "PERIOD (.)",
	Code(evdev.KEY_MINUS):      "MINUS (-)",
	Code(evdev.KEY_EQUAL):      "EQUAL (=)",
	Code(evdev.KEY_SEMICOLON):  "SEMICOLON (;)",
	Code(evdev.KEY_PAGEUP):     "PAGE UP",
	Code(evdev.KEY_PAGEDOWN):   "PAGE DOWN",
	Code(evdev.KEY_HOME):       "HOME",
	Code(evdev.KEY_END):        "END",
	Code(evdev.KEY_SPACE):      "SPACE",
	Code(evdev.KEY_ENTER):      "ENTER",
	Code(evdev.KEY_KPENTER):    "KP_ENTER",
	Code(evdev.KEY_BACKSPACE):  "BACKSPACE",
	Code(evdev.KEY_TAB):        "TAB",
	Code(evdev.KEY_ESC):        "ESCAPE",
	Code(evdev.KEY_DELETE):     "DELETE",
	Code(evdev.KEY_INSERT):     "INSERT",
	Code(evdev.KEY_CAPSLOCK):   "CAPS LOCK",
	Code(evdev.KEY_NUMLOCK):    "NUM LOCK",
	Code(evdev.KEY_SCROLLLOCK): "SCROLL LOCK",
	Code(evdev.KEY_PAUSE):      "PAUSE",
	Code(evdev.KEY_SYSRQ):      "PRINT SCREEN",
}
