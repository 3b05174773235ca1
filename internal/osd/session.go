package osd

import (
	"log/slog"
	"time"

	"github.com/termkey/termkey/internal/capture"
	"github.com/termkey/termkey/internal/keymap"
)

// Renderer is the session's output: something that can put a label on
// screen. The display package provides the tcell implementation.
type Renderer interface {
	Show(label string)
}

// Session owns all display state and consumes the normalized event stream
// strictly sequentially. Key and button presses render; releases mutate
// state silently, except that releasing one button of a held multi-button
// gesture re-renders the remaining buttons.
type Session struct {
	layout   *keymap.Layout
	mods     *ModifierTracker
	buttons  *MouseButtonTracker
	composer *LabelComposer
	out      Renderer
	logger   *slog.Logger

	last string

	// now is the event clock; overridable in tests.
	now func() time.Time
}

func NewSession(layout *keymap.Layout, out Renderer, logger *slog.Logger, opts Options) *Session {
	return &Session{
		layout:   layout,
		mods:     NewModifierTracker(layout),
		buttons:  NewMouseButtonTracker(),
		composer: NewLabelComposer(opts),
		out:      out,
		logger:   logger,
		now:      time.Now,
	}
}

// Banner renders a fixed label before the first event arrives.
func (s *Session) Banner(text string) {
	s.render(text)
}

// Handle processes one input event and re-renders if it changed what the
// viewer should see.
func (s *Session) Handle(ev capture.Event) {
	when := ev.When
	if when.IsZero() {
		when = s.now()
	}

	switch ev.Kind {
	case capture.KeyDown, capture.KeyUp:
		s.handleKey(ev.Code, ev.Kind == capture.KeyDown, when)
	case capture.ButtonDown:
		s.buttons.Press(int(ev.Code), when)
		if label := s.composer.Compose(nil, s.mods.Snapshot(), s.buttons.ActiveLabel(), when); label != "" {
			s.render(label)
		}
	case capture.ButtonUp:
		s.buttons.Release(int(ev.Code))
		if s.buttons.ActiveCount() > 0 {
			s.render(s.composer.Compose(nil, s.mods.Snapshot(), s.buttons.ActiveLabel(), when))
		}
	default:
		s.logger.Debug("dropping event of unknown kind", "kind", int(ev.Kind))
	}
}

func (s *Session) handleKey(code keymap.Code, pressed bool, when time.Time) {
	s.mods.Update(code, pressed)
	if !pressed {
		return
	}

	name, ok := s.layout.Resolve(code)
	if !ok {
		// Codes with no name never reach the screen.
		s.logger.Debug("dropping unresolvable key code", "code", int(code))
		return
	}

	p := &Primary{
		Code:     code,
		Name:     name,
		Modifier: keymap.NumModifiers,
	}
	if id, ok := s.layout.ModifierOf(code); ok {
		p.Modifier = id
	}
	s.render(s.composer.Compose(p, s.mods.Snapshot(), s.buttons.ActiveLabel(), when))
}

// Redraw re-renders the most recent label, e.g. after a terminal resize.
// Tracked state is untouched.
func (s *Session) Redraw() {
	if s.last != "" {
		s.out.Show(s.last)
	}
}

func (s *Session) render(label string) {
	s.last = label
	s.out.Show(label)
}
