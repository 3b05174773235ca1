package keymap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testLayout() *Layout {
	return &Layout{
		Overrides: map[Code]string{
			10: "SHIFT_L",
			20: "ARROW LEFT",
		},
		Fallback: func(c Code) string {
			switch c {
			case 30:
				return "a"
			case 40:
				return "Tab"
			}
			return ""
		},
		Modifiers: map[Code]ModifierID{
			10: ModShiftL,
		},
	}
}

func TestKeyNameResolution(t *testing.T) {
	l := testLayout()

	tests := []struct {
		name string
		code Code
		want string
	}{
		{"override wins", 10, "SHIFT_L"},
		{"override for non-modifier", 20, "ARROW LEFT"},
		{"fallback uppercased", 30, "A"},
		{"mixed-case fallback uppercased", 40, "TAB"},
		{"no symbol yields UNKNOWN", 9999, "UNKNOWN"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, l.KeyName(tt.code))
		})
	}
}

func TestResolveReportsUnknownCodes(t *testing.T) {
	l := testLayout()

	name, ok := l.Resolve(10)
	assert.True(t, ok)
	assert.Equal(t, "SHIFT_L", name)

	name, ok = l.Resolve(30)
	assert.True(t, ok)
	assert.Equal(t, "A", name)

	_, ok = l.Resolve(9999)
	assert.False(t, ok)
}

func TestKeyNameIsTotalAndPure(t *testing.T) {
	l := testLayout()
	for c := Code(0); c < 512; c++ {
		first := l.KeyName(c)
		assert.NotEmpty(t, first, "code %d resolved to an empty name", c)
		assert.Equal(t, first, l.KeyName(c), "code %d did not resolve deterministically", c)
	}
}

func TestKeyNameWithoutFallback(t *testing.T) {
	l := &Layout{}
	assert.Equal(t, "UNKNOWN", l.KeyName(30))
}

func TestModifierOf(t *testing.T) {
	l := testLayout()

	id, ok := l.ModifierOf(10)
	assert.True(t, ok)
	assert.Equal(t, ModShiftL, id)
	assert.True(t, l.IsModifier(10))

	_, ok = l.ModifierOf(30)
	assert.False(t, ok)
	assert.False(t, l.IsModifier(30))
}

func TestModifierOrderAndNames(t *testing.T) {
	// The slot order is the label composition order.
	want := []string{
		"CONTROL_L", "CONTROL_R",
		"ALT_L", "ALT_R",
		"SHIFT_L", "SHIFT_R",
		"META_L", "META_R",
		"ALTGR",
		"SUPER_L", "SUPER_R",
	}
	for i, name := range want {
		assert.Equal(t, name, ModifierID(i).String())
	}
	assert.Equal(t, len(want), int(NumModifiers))
	assert.Equal(t, "UNKNOWN", NumModifiers.String())
}

func TestButtonName(t *testing.T) {
	assert.Equal(t, "LEFT CLICK", ButtonName(ButtonLeft))
	assert.Equal(t, "MIDDLE CLICK", ButtonName(ButtonMiddle))
	assert.Equal(t, "RIGHT CLICK", ButtonName(ButtonRight))
	assert.Equal(t, "WHEEL UP", ButtonName(ButtonWheelUp))
	assert.Equal(t, "WHEEL DOWN", ButtonName(ButtonWheelDown))
	assert.Equal(t, "UNKNOWN BUTTON", ButtonName(15))
}
