package display

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// Presenter writes a single label centered on the screen. It is driven only
// from the event-handling loop, so it keeps no locks; the blink toggle flips
// on every colored render.
type Presenter struct {
	screen tcell.Screen
	colors Colors
	toggle bool
}

func NewPresenter(screen tcell.Screen, colors Colors) *Presenter {
	return &Presenter{screen: screen, colors: colors}
}

// Show clears the screen and writes the label at the center, flushing
// synchronously so the label is visible before the next event is handled.
func (p *Presenter) Show(label string) {
	cols, rows := p.screen.Size()
	runes := []rune(label)

	row := rows / 2
	col := (cols - len(runes)) / 2
	if col < 0 {
		col = 0
	}

	base := tcell.StyleDefault
	if p.colors.Enabled {
		bg, fg := p.colors.Bg, p.colors.Fg
		if p.toggle {
			bg, fg = fg, bg
		}
		base = base.Background(bg).Foreground(fg)
		p.toggle = !p.toggle
	}

	p.screen.Clear()
	for i, r := range runes {
		st := base
		if p.colors.Enabled && p.colors.HasText && isGraphic(r) {
			st = base.Foreground(p.colors.Text)
		}
		p.screen.SetContent(col+i, row, r, nil, st)
	}
	p.screen.Show()
}

// isGraphic mirrors C's isgraph: printable and not a space, so the text
// color never paints the gaps between words.
func isGraphic(r rune) bool {
	return unicode.IsGraphic(r) && !unicode.IsSpace(r)
}
