// Package display renders composed labels centered on the terminal using
// tcell, with optional blink and per-character text coloring.
package display

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// Colors is the immutable color configuration selected at startup.
type Colors struct {
	Enabled bool
	Bg      tcell.Color
	Fg      tcell.Color
	Text    tcell.Color
	HasText bool
}

// The recognized names map onto the standard ANSI palette so the label
// follows the user's terminal theme.
var colorNames = map[string]tcell.Color{
	"black":   tcell.PaletteColor(0),
	"red":     tcell.PaletteColor(1),
	"green":   tcell.PaletteColor(2),
	"yellow":  tcell.PaletteColor(3),
	"blue":    tcell.PaletteColor(4),
	"magenta": tcell.PaletteColor(5),
	"cyan":    tcell.PaletteColor(6),
	"white":   tcell.PaletteColor(7),
	"default": tcell.ColorDefault,
}

func lookupColor(name string) (tcell.Color, error) {
	c, ok := colorNames[name]
	if !ok {
		return tcell.ColorDefault, fmt.Errorf("unrecognized color name %q (expected one of black, red, green, yellow, blue, magenta, cyan, white, default)", name)
	}
	return c, nil
}

// ParseColors validates the configured color names and builds the render
// configuration. Any non-empty color name implies color mode. Validation
// happens before any input source is opened, so a bad name fails fast.
func ParseColors(enabled bool, bg, fg, text string) (Colors, error) {
	c := Colors{Enabled: enabled || bg != "" || fg != "" || text != ""}
	if !c.Enabled {
		return c, nil
	}

	if bg == "" {
		bg = "default"
	}
	if fg == "" {
		fg = "default"
	}

	var err error
	if c.Bg, err = lookupColor(bg); err != nil {
		return Colors{}, fmt.Errorf("--bg: %w", err)
	}
	if c.Fg, err = lookupColor(fg); err != nil {
		return Colors{}, fmt.Errorf("--fg: %w", err)
	}
	if text != "" {
		if c.Text, err = lookupColor(text); err != nil {
			return Colors{}, fmt.Errorf("--text: %w", err)
		}
		c.HasText = true
	}
	return c, nil
}
