package osd

import (
	"fmt"
	"strings"
	"time"

	"github.com/termkey/termkey/internal/keymap"
)

// RepeatWindow is the largest gap between identical key presses that still
// counts as platform auto-repeat. Slower re-presses restart the counter.
const RepeatWindow = 100 * time.Millisecond

// Options selects the composer's optional features. Both default to on in
// the shipped binary; tests exercise the reduced configurations.
type Options struct {
	CombineButtons  bool
	CompressRepeats bool
}

// Primary describes the key that triggered a render.
type Primary struct {
	Code keymap.Code
	Name string
	// Modifier is the key's own modifier slot, or keymap.NumModifiers if
	// the key is not a modifier.
	Modifier keymap.ModifierID
}

// LabelComposer merges modifier state, the primary key and held mouse
// buttons into one display string, compressing auto-repeated keys into a
// "[xN]" suffix.
type LabelComposer struct {
	opts Options

	lastLabel string
	lastCode  keymap.Code
	lastKeyed bool
	lastAt    time.Time
	repeats   int
}

func NewLabelComposer(opts Options) *LabelComposer {
	return &LabelComposer{opts: opts}
}

// Compose builds the label for the current input state. p is nil for pure
// mouse events. mouseLabel is the held-buttons label ("" when none).
func (c *LabelComposer) Compose(p *Primary, mods ModifierState, mouseLabel string, now time.Time) string {
	if !c.opts.CombineButtons && mouseLabel != "" {
		// Single-button mode shows only the lowest-numbered held button.
		if i := strings.Index(mouseLabel, " + "); i >= 0 {
			mouseLabel = mouseLabel[:i]
		}
	}

	if p == nil {
		c.remember("", 0, false, now)
		return mouseLabel
	}

	var parts []string
	for id := keymap.ModifierID(0); id < keymap.NumModifiers; id++ {
		// A modifier must never describe itself.
		if mods[id] && id != p.Modifier {
			parts = append(parts, id.String())
		}
	}
	label := p.Name
	if len(parts) > 0 {
		label = strings.Join(parts, " + ") + " + " + p.Name
	}
	if mouseLabel != "" {
		label = mouseLabel + " + " + label
	}

	if !c.opts.CompressRepeats || p.Modifier != keymap.NumModifiers {
		c.remember(label, p.Code, true, now)
		return label
	}

	if c.lastKeyed && c.lastLabel == label && c.lastCode == p.Code && now.Sub(c.lastAt) <= RepeatWindow {
		c.repeats++
		c.lastAt = now
		return fmt.Sprintf("%s [x%d]", label, c.repeats)
	}

	c.remember(label, p.Code, true, now)
	return label
}

func (c *LabelComposer) remember(label string, code keymap.Code, keyed bool, now time.Time) {
	c.lastLabel = label
	c.lastCode = code
	c.lastKeyed = keyed
	c.lastAt = now
	c.repeats = 1
}
