//go:build windows

package keymap

import "fmt"

// Win32 virtual-key codes referenced by the layout tables.
const (
	vkBack      = 0x08
	vkTab       = 0x09
	vkReturn    = 0x0D
	vkPause     = 0x13
	vkCapital   = 0x14
	vkEscape    = 0x1B
	vkSpace     = 0x20
	vkPrior     = 0x21
	vkNext      = 0x22
	vkEnd       = 0x23
	vkHome      = 0x24
	vkLeft      = 0x25
	vkUp        = 0x26
	vkRight     = 0x27
	vkDown      = 0x28
	vkSnapshot  = 0x2C
	vkInsert    = 0x2D
	vkDelete    = 0x2E
	vkLWin      = 0x5B
	vkRWin      = 0x5C
	vkNumpad0   = 0x60
	vkNumpad9   = 0x69
	vkMultiply  = 0x6A
	vkAdd       = 0x6B
	vkSubtract  = 0x6D
	vkDivide    = 0x6F
	vkF1        = 0x70
	vkF24       = 0x87
	vkNumlock   = 0x90
	vkScroll    = 0x91
	vkLShift    = 0xA0
	vkRShift    = 0xA1
	vkLControl  = 0xA2
	vkRControl  = 0xA3
	vkLMenu     = 0xA4
	vkRMenu     = 0xA5
	vkOem1      = 0xBA // ;:
	vkOemPlus   = 0xBB
	vkOemComma  = 0xBC
	vkOemMinus  = 0xBD
	vkOemPeriod = 0xBE
	vkOem2      = 0xBF // /?
	vkOem3      = 0xC0 // `~
	vkOem4      = 0xDB // [{
	vkOem5      = 0xDC // \|
	vkOem6      = 0xDD // ]}
	vkOem7      = 0xDE // '"
)

// SystemLayout returns the virtual-key tables for Windows. The fallback
// covers alphanumerics, function keys and the numeric keypad; everything
// else either has an override or shows as UNKNOWN.
func SystemLayout() *Layout {
	return &Layout{
		Overrides: windowsOverrides,
		Fallback: func(c Code) string {
			switch {
			case (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9'):
				return string(rune(c))
			case c >= vkF1 && c <= vkF24:
				return fmt.Sprintf("F%d", c-vkF1+1)
			case c >= vkNumpad0 && c <= vkNumpad9:
				return fmt.Sprintf("KP_%d", c-vkNumpad0)
			}
			return ""
		},
		Modifiers: windowsModifiers,
	}
}

// Win32 reports AltGr as VK_RMENU (preceded by a synthetic VK_LCONTROL) and
// defines no Meta keys, so the ALTGR and META_L/META_R slots are never
// produced from this table.
var windowsModifiers = map[Code]ModifierID{
	vkLControl: ModCtrlL,
	vkRControl: ModCtrlR,
	vkLMenu:    ModAltL,
	vkRMenu:    ModAltR,
	vkLShift:   ModShiftL,
	vkRShift:   ModShiftR,
	vkLWin:     ModSuperL,
	vkRWin:     ModSuperR,
}

var windowsOverrides = map[Code]string{
	vkLShift:   "SHIFT_L",
	vkRShift:   "SHIFT_R",
	vkLControl: "CONTROL_L",
	vkRControl: "CONTROL_R",
	vkLMenu:    "ALT_L",
	vkRMenu:    "ALT_R",
	vkLWin:     "SUPER_L",
	vkRWin:     "SUPER_R",

	vkOem7:      "APOSTROPHE (')",
	vkOem2:      "SLASH (/)",
	vkOem5:      "BACKSLASH (\\)",
	vkOem3:      "GRAVE (`)",
	vkLeft:      "ARROW LEFT",
	vkRight:     "ARROW RIGHT",
	vkUp:        "ARROW UP",
	vkDown:      "ARROW DOWN",
	vkDivide:    "KP_DIVIDE (/)",
	vkMultiply:  "KP_MULTIPLY (*)",
	vkSubtract:  "KP_SUBTRACT (-)",
	vkAdd:       "KP_ADD (+)",
	vkOem4:      "BRACKETLEFT ([)",
	vkOem6:      "BRACKETRIGHT (])",
	vkOemComma:  "COMMA (,)",
	vkOemPeriod: "PERIOD (.)",
	vkOemMinus:  "MINUS (-)",
	vkOemPlus:   "EQUAL (=)",
	vkOem1:      "SEMICOLON (;)",
	vkPrior:     "PAGE UP",
	vkNext:      "PAGE DOWN",
	vkHome:      "HOME",
	vkEnd:       "END",
	vkSpace:     "SPACE",
	vkReturn:    "ENTER",
	vkBack:      "BACKSPACE",
	vkTab:       "TAB",
	vkEscape:    "ESCAPE",
	vkDelete:    "DELETE",
	vkInsert:    "INSERT",
	vkCapital:   "CAPS LOCK",
	vkNumlock:   "NUM LOCK",
	vkScroll:    "SCROLL LOCK",
	vkPause:     "PAUSE",
	vkSnapshot:  "PRINT SCREEN",
}
